package event

import (
	"github.com/google/uuid"

	"github.com/sindhuatluri/LOC/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const (
	// EventTypeDecisionReached is raised for every completed decision,
	// approved or denied.
	EventTypeDecisionReached = "decision.reached"

	// EventTypeDecisionDenied is raised in addition to decision.reached
	// when the application is denied. Downstream consumers that only care
	// about adverse outcomes subscribe to this one.
	EventTypeDecisionDenied = "decision.denied"
)

// aggregateTypeDecisionRecord is the aggregate type recorded on every event.
const aggregateTypeDecisionRecord = "DecisionRecord"

// DecisionReached is raised when an application has been evaluated and a
// decision recorded.
type DecisionReached struct {
	events.BaseEvent
	ApplicantID    string  `json:"applicant_id"`
	ApprovalStatus bool    `json:"approval_status"`
	CreditLimit    float64 `json:"credit_limit"`
	InterestRate   float64 `json:"interest_rate"`
	Reason         string  `json:"reason"`
}

// NewDecisionReached builds a DecisionReached event for the given decision record.
func NewDecisionReached(
	decisionID uuid.UUID,
	applicantID string,
	approvalStatus bool,
	creditLimit, interestRate float64,
	reason string,
) DecisionReached {
	return DecisionReached{
		BaseEvent:      events.NewBaseEvent(EventTypeDecisionReached, decisionID, aggregateTypeDecisionRecord),
		ApplicantID:    applicantID,
		ApprovalStatus: approvalStatus,
		CreditLimit:    creditLimit,
		InterestRate:   interestRate,
		Reason:         reason,
	}
}

// DecisionDenied is raised when an application is denied.
type DecisionDenied struct {
	events.BaseEvent
	ApplicantID string  `json:"applicant_id"`
	Reason      string  `json:"reason"`
	CreditScore int     `json:"credit_score"`
	DTIRatio    float64 `json:"dti_ratio"`
}

// NewDecisionDenied builds a DecisionDenied event carrying the denial reason
// and the two inputs adverse-action reporting most often needs.
func NewDecisionDenied(
	decisionID uuid.UUID,
	applicantID, reason string,
	creditScore int,
	dtiRatio float64,
) DecisionDenied {
	return DecisionDenied{
		BaseEvent:   events.NewBaseEvent(EventTypeDecisionDenied, decisionID, aggregateTypeDecisionRecord),
		ApplicantID: applicantID,
		Reason:      reason,
		CreditScore: creditScore,
		DTIRatio:    dtiRatio,
	}
}
