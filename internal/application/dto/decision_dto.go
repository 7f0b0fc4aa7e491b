package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

// DecideApplicationRequest is the input DTO for the DecideApplication use
// case. Field names follow the public API contract.
type DecideApplicationRequest struct {
	ApplicantID          string  `json:"applicant_id"`
	AnnualIncome         float64 `json:"annual_income"`
	SelfReportedDebt     float64 `json:"self_reported_debt"`
	SelfReportedExpenses float64 `json:"self_reported_expenses"`
	RequestedAmount      float64 `json:"requested_amount"`
	Age                  int     `json:"age"`
	Province             string  `json:"province"`
	EmploymentStatus     string  `json:"employment_status"`
	MonthsEmployed       int     `json:"months_employed"`
	CreditScore          int     `json:"credit_score"`
	TotalCreditLimit     float64 `json:"total_credit_limit"`
	CreditUtilization    float64 `json:"credit_utilization"`
	NumOpenAccounts      int     `json:"num_open_accounts"`
	NumCreditInquiries   int     `json:"num_credit_inquiries"`
	PaymentHistory       string  `json:"payment_history"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
}

// DecisionResponse is the output DTO for a completed or retrieved decision.
// approval_status, credit_limit, interest_rate and reason are the contract
// keys consumed by clients; id and created_at identify the stored record.
type DecisionResponse struct {
	CreatedAt      time.Time `json:"created_at"`
	ApplicantID    string    `json:"applicant_id"`
	Reason         string    `json:"reason"`
	ID             uuid.UUID `json:"id"`
	CreditLimit    float64   `json:"credit_limit"`
	InterestRate   float64   `json:"interest_rate"`
	ApprovalStatus bool      `json:"approval_status"`
}

// GetDecisionRequest is the input DTO for retrieving a stored decision.
type GetDecisionRequest struct {
	DecisionID uuid.UUID `json:"decision_id"`
}

// ListDecisionsRequest is the input DTO for listing an applicant's decisions.
type ListDecisionsRequest struct {
	ApplicantID string `json:"applicant_id"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
}

// ListDecisionsResponse wraps a page of decisions, newest first.
type ListDecisionsResponse struct {
	Decisions []DecisionResponse `json:"decisions"`
}

// FromRecord maps a stored decision record to the response DTO.
func FromRecord(r *model.DecisionRecord) DecisionResponse {
	return DecisionResponse{
		ID:             r.ID(),
		ApplicantID:    r.ApplicantID(),
		ApprovalStatus: r.Decision().ApprovalStatus(),
		CreditLimit:    r.Decision().CreditLimit(),
		InterestRate:   r.Decision().InterestRate(),
		Reason:         r.Decision().Reason(),
		CreatedAt:      r.CreatedAt(),
	}
}
