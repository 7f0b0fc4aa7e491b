package model_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

func validParams() model.ApplicationParams {
	return model.ApplicationParams{
		ApplicantID:          "applicant-0001",
		AnnualIncome:         200000,
		SelfReportedDebt:     1000,
		SelfReportedExpenses: 2000,
		RequestedAmount:      10000,
		Age:                  35,
		Province:             "ON",
		EmploymentStatus:     "Full-time",
		MonthsEmployed:       24,
		CreditScore:          700,
		TotalCreditLimit:     15000,
		CreditUtilization:    30,
		NumOpenAccounts:      3,
		NumCreditInquiries:   1,
		PaymentHistory:       "On Time",
		MonthlyExpenses:      2500,
	}
}

func TestNewApplication_Valid(t *testing.T) {
	app, err := model.NewApplication(validParams())
	require.NoError(t, err)

	assert.Equal(t, "applicant-0001", app.ApplicantID())
	assert.Equal(t, 200000.0, app.AnnualIncome())
	assert.Equal(t, 1000.0, app.SelfReportedDebt())
	assert.Equal(t, 2000.0, app.SelfReportedExpenses())
	assert.Equal(t, 10000.0, app.RequestedAmount())
	assert.Equal(t, 35, app.Age())
	assert.Equal(t, "ON", app.Province().String())
	assert.Equal(t, "Full-time", app.EmploymentStatus().String())
	assert.Equal(t, 24, app.MonthsEmployed())
	assert.Equal(t, 700, app.CreditScore())
	assert.Equal(t, 15000.0, app.TotalCreditLimit())
	assert.Equal(t, 30.0, app.CreditUtilization())
	assert.Equal(t, 3, app.NumOpenAccounts())
	assert.Equal(t, 1, app.NumCreditInquiries())
	assert.Equal(t, "On Time", app.PaymentHistory().String())
	assert.Equal(t, 2500.0, app.MonthlyExpenses())
}

func TestNewApplication_Boundaries(t *testing.T) {
	p := validParams()
	p.AnnualIncome = 20000
	p.SelfReportedDebt = 0
	p.SelfReportedExpenses = 10000
	p.RequestedAmount = 1000
	p.Age = 19
	p.MonthsEmployed = 600
	p.CreditScore = 300
	p.TotalCreditLimit = 50000
	p.CreditUtilization = 100
	p.NumOpenAccounts = 20
	p.NumCreditInquiries = 10
	p.MonthlyExpenses = 0

	_, err := model.NewApplication(p)
	assert.NoError(t, err, "boundary values are inclusive")
}

func TestNewApplication_FieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(p *model.ApplicationParams)
		field string
	}{
		{
			name:  "missing applicant ID",
			tweak: func(p *model.ApplicationParams) { p.ApplicantID = "" },
			field: "applicant_id",
		},
		{
			name:  "applicant ID too long",
			tweak: func(p *model.ApplicationParams) { p.ApplicantID = strings.Repeat("x", 51) },
			field: "applicant_id",
		},
		{
			name:  "annual income below minimum",
			tweak: func(p *model.ApplicationParams) { p.AnnualIncome = 19999 },
			field: "annual_income",
		},
		{
			name:  "annual income above maximum",
			tweak: func(p *model.ApplicationParams) { p.AnnualIncome = 200001 },
			field: "annual_income",
		},
		{
			name:  "negative self reported debt",
			tweak: func(p *model.ApplicationParams) { p.SelfReportedDebt = -1 },
			field: "self_reported_debt",
		},
		{
			name:  "self reported expenses above maximum",
			tweak: func(p *model.ApplicationParams) { p.SelfReportedExpenses = 10001 },
			field: "self_reported_expenses",
		},
		{
			name:  "requested amount below minimum",
			tweak: func(p *model.ApplicationParams) { p.RequestedAmount = 999 },
			field: "requested_amount",
		},
		{
			name:  "requested amount above maximum",
			tweak: func(p *model.ApplicationParams) { p.RequestedAmount = 50001 },
			field: "requested_amount",
		},
		{
			name:  "age below minimum",
			tweak: func(p *model.ApplicationParams) { p.Age = 18 },
			field: "age",
		},
		{
			name:  "age above maximum",
			tweak: func(p *model.ApplicationParams) { p.Age = 101 },
			field: "age",
		},
		{
			name:  "unknown province",
			tweak: func(p *model.ApplicationParams) { p.Province = "XX" },
			field: "province",
		},
		{
			name:  "unknown employment status",
			tweak: func(p *model.ApplicationParams) { p.EmploymentStatus = "Retired" },
			field: "employment_status",
		},
		{
			name:  "months employed above maximum",
			tweak: func(p *model.ApplicationParams) { p.MonthsEmployed = 601 },
			field: "months_employed",
		},
		{
			name:  "credit score below minimum",
			tweak: func(p *model.ApplicationParams) { p.CreditScore = 299 },
			field: "credit_score",
		},
		{
			name:  "credit score above maximum",
			tweak: func(p *model.ApplicationParams) { p.CreditScore = 901 },
			field: "credit_score",
		},
		{
			name:  "total credit limit above maximum",
			tweak: func(p *model.ApplicationParams) { p.TotalCreditLimit = 50001 },
			field: "total_credit_limit",
		},
		{
			name:  "credit utilization above maximum",
			tweak: func(p *model.ApplicationParams) { p.CreditUtilization = 100.5 },
			field: "credit_utilization",
		},
		{
			name:  "too many open accounts",
			tweak: func(p *model.ApplicationParams) { p.NumOpenAccounts = 21 },
			field: "num_open_accounts",
		},
		{
			name:  "too many credit inquiries",
			tweak: func(p *model.ApplicationParams) { p.NumCreditInquiries = 11 },
			field: "num_credit_inquiries",
		},
		{
			name:  "unknown payment history",
			tweak: func(p *model.ApplicationParams) { p.PaymentHistory = "Never" },
			field: "payment_history",
		},
		{
			name:  "negative monthly expenses",
			tweak: func(p *model.ApplicationParams) { p.MonthlyExpenses = -100 },
			field: "monthly_expenses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.tweak(&p)

			_, err := model.NewApplication(p)
			require.Error(t, err)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Details(), tt.field)
		})
	}
}

func TestNewApplication_CollectsAllViolations(t *testing.T) {
	p := validParams()
	p.AnnualIncome = 0
	p.CreditScore = 1000
	p.Province = "ZZ"
	p.PaymentHistory = "Sometimes"

	_, err := model.NewApplication(p)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4, "all violations reported in one pass")

	details := verr.Details()
	assert.Contains(t, details, "annual_income")
	assert.Contains(t, details, "credit_score")
	assert.Contains(t, details, "province")
	assert.Contains(t, details, "payment_history")
}

func TestValidationError_Message(t *testing.T) {
	p := validParams()
	p.Age = 5

	_, err := model.NewApplication(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid application")
	assert.Contains(t, err.Error(), "age: must be between 19 and 100")
}

func TestValidationError_IsNotScoringUnavailable(t *testing.T) {
	p := validParams()
	p.Age = 5

	_, err := model.NewApplication(p)
	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrScoringUnavailable))
}
