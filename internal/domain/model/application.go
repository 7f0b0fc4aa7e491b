package model

import (
	"fmt"

	"github.com/sindhuatluri/LOC/internal/domain/valueobject"
)

// Hard range invariants for application fields. Enforced once at
// construction; the decision engine assumes they hold.
const (
	minAnnualIncome         = 20000
	maxAnnualIncome         = 200000
	maxSelfReportedDebt     = 10000
	maxSelfReportedExpenses = 10000
	minRequestedAmount      = 1000
	maxRequestedAmount      = 50000
	minAge                  = 19
	maxAge                  = 100
	maxMonthsEmployed       = 600
	minCreditScore          = 300
	maxCreditScore          = 900
	maxTotalCreditLimit     = 50000
	maxCreditUtilization    = 100
	maxOpenAccounts         = 20
	maxCreditInquiries      = 10
	maxMonthlyExpenses      = 10000
	maxApplicantIDLen       = 50
)

// ApplicationParams carries the raw, untrusted input for a new application.
type ApplicationParams struct {
	ApplicantID          string
	AnnualIncome         float64
	SelfReportedDebt     float64
	SelfReportedExpenses float64
	RequestedAmount      float64
	Age                  int
	Province             string
	EmploymentStatus     string
	MonthsEmployed       int
	CreditScore          int
	TotalCreditLimit     float64
	CreditUtilization    float64
	NumOpenAccounts      int
	NumCreditInquiries   int
	PaymentHistory       string
	MonthlyExpenses      float64
}

// Application is a validated line-of-credit application. Immutable once
// constructed; it lives for a single decision request.
type Application struct {
	applicantID          string
	annualIncome         float64
	selfReportedDebt     float64
	selfReportedExpenses float64
	requestedAmount      float64
	age                  int
	province             valueobject.Province
	employmentStatus     valueobject.EmploymentStatus
	monthsEmployed       int
	creditScore          int
	totalCreditLimit     float64
	creditUtilization    float64
	numOpenAccounts      int
	numCreditInquiries   int
	paymentHistory       valueobject.PaymentHistory
	monthlyExpenses      float64
}

// NewApplication validates the raw params and constructs an Application.
// Every field is checked so the caller receives the complete list of
// violations in a single *ValidationError.
func NewApplication(p ApplicationParams) (Application, error) {
	verr := &ValidationError{}

	if p.ApplicantID == "" {
		verr.add("applicant_id", "is required")
	} else if len(p.ApplicantID) > maxApplicantIDLen {
		verr.add("applicant_id", fmt.Sprintf("must be at most %d characters", maxApplicantIDLen))
	}
	if p.AnnualIncome < minAnnualIncome || p.AnnualIncome > maxAnnualIncome {
		verr.add("annual_income", fmt.Sprintf("must be between %d and %d", minAnnualIncome, maxAnnualIncome))
	}
	if p.SelfReportedDebt < 0 || p.SelfReportedDebt > maxSelfReportedDebt {
		verr.add("self_reported_debt", fmt.Sprintf("must be between 0 and %d", maxSelfReportedDebt))
	}
	if p.SelfReportedExpenses < 0 || p.SelfReportedExpenses > maxSelfReportedExpenses {
		verr.add("self_reported_expenses", fmt.Sprintf("must be between 0 and %d", maxSelfReportedExpenses))
	}
	if p.RequestedAmount < minRequestedAmount || p.RequestedAmount > maxRequestedAmount {
		verr.add("requested_amount", fmt.Sprintf("must be between %d and %d", minRequestedAmount, maxRequestedAmount))
	}
	if p.Age < minAge || p.Age > maxAge {
		verr.add("age", fmt.Sprintf("must be between %d and %d", minAge, maxAge))
	}

	province, err := valueobject.ProvinceFromString(p.Province)
	if err != nil {
		verr.add("province", err.Error())
	}
	employment, err := valueobject.EmploymentStatusFromString(p.EmploymentStatus)
	if err != nil {
		verr.add("employment_status", err.Error())
	}

	if p.MonthsEmployed < 0 || p.MonthsEmployed > maxMonthsEmployed {
		verr.add("months_employed", fmt.Sprintf("must be between 0 and %d", maxMonthsEmployed))
	}
	if p.CreditScore < minCreditScore || p.CreditScore > maxCreditScore {
		verr.add("credit_score", fmt.Sprintf("must be between %d and %d", minCreditScore, maxCreditScore))
	}
	if p.TotalCreditLimit < 0 || p.TotalCreditLimit > maxTotalCreditLimit {
		verr.add("total_credit_limit", fmt.Sprintf("must be between 0 and %d", maxTotalCreditLimit))
	}
	if p.CreditUtilization < 0 || p.CreditUtilization > maxCreditUtilization {
		verr.add("credit_utilization", fmt.Sprintf("must be between 0 and %d", maxCreditUtilization))
	}
	if p.NumOpenAccounts < 0 || p.NumOpenAccounts > maxOpenAccounts {
		verr.add("num_open_accounts", fmt.Sprintf("must be between 0 and %d", maxOpenAccounts))
	}
	if p.NumCreditInquiries < 0 || p.NumCreditInquiries > maxCreditInquiries {
		verr.add("num_credit_inquiries", fmt.Sprintf("must be between 0 and %d", maxCreditInquiries))
	}

	payment, err := valueobject.PaymentHistoryFromString(p.PaymentHistory)
	if err != nil {
		verr.add("payment_history", err.Error())
	}

	if p.MonthlyExpenses < 0 || p.MonthlyExpenses > maxMonthlyExpenses {
		verr.add("monthly_expenses", fmt.Sprintf("must be between 0 and %d", maxMonthlyExpenses))
	}

	if len(verr.Fields) > 0 {
		return Application{}, verr
	}

	return Application{
		applicantID:          p.ApplicantID,
		annualIncome:         p.AnnualIncome,
		selfReportedDebt:     p.SelfReportedDebt,
		selfReportedExpenses: p.SelfReportedExpenses,
		requestedAmount:      p.RequestedAmount,
		age:                  p.Age,
		province:             province,
		employmentStatus:     employment,
		monthsEmployed:       p.MonthsEmployed,
		creditScore:          p.CreditScore,
		totalCreditLimit:     p.TotalCreditLimit,
		creditUtilization:    p.CreditUtilization,
		numOpenAccounts:      p.NumOpenAccounts,
		numCreditInquiries:   p.NumCreditInquiries,
		paymentHistory:       payment,
		monthlyExpenses:      p.MonthlyExpenses,
	}, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a Application) ApplicantID() string                            { return a.applicantID }
func (a Application) AnnualIncome() float64                          { return a.annualIncome }
func (a Application) SelfReportedDebt() float64                      { return a.selfReportedDebt }
func (a Application) SelfReportedExpenses() float64                  { return a.selfReportedExpenses }
func (a Application) RequestedAmount() float64                       { return a.requestedAmount }
func (a Application) Age() int                                       { return a.age }
func (a Application) Province() valueobject.Province                 { return a.province }
func (a Application) EmploymentStatus() valueobject.EmploymentStatus { return a.employmentStatus }
func (a Application) MonthsEmployed() int                            { return a.monthsEmployed }
func (a Application) CreditScore() int                               { return a.creditScore }
func (a Application) TotalCreditLimit() float64                      { return a.totalCreditLimit }
func (a Application) CreditUtilization() float64                     { return a.creditUtilization }
func (a Application) NumOpenAccounts() int                           { return a.numOpenAccounts }
func (a Application) NumCreditInquiries() int                        { return a.numCreditInquiries }
func (a Application) PaymentHistory() valueobject.PaymentHistory     { return a.paymentHistory }
func (a Application) MonthlyExpenses() float64                       { return a.monthlyExpenses }
