package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/service"
)

func newApplication(t *testing.T, tweak func(p *model.ApplicationParams)) model.Application {
	t.Helper()
	p := model.ApplicationParams{
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
	if tweak != nil {
		tweak(&p)
	}
	app, err := model.NewApplication(p)
	require.NoError(t, err)
	return app
}

func TestDerive_DTIFormula(t *testing.T) {
	// total_credit_limit=15000, utilization=30, self_reported_debt=1000,
	// annual_income=200000.
	app := newApplication(t, nil)

	derived := service.NewFeatureDeriver().Derive(app)

	// estimated_debt = 15000 * 30 * 0.03 / 100
	assert.Equal(t, 135.0, derived.EstimatedDebt)
	// dti_ratio = ((1000 + 135) / (200000 / 12)) * 100
	assert.InDelta(t, 6.81, derived.DTIRatio, 1e-9)
}

func TestDerive_Deterministic(t *testing.T) {
	app := newApplication(t, nil)
	deriver := service.NewFeatureDeriver()

	first := deriver.Derive(app)
	second := deriver.Derive(app)

	// Bit-identical, not merely close.
	assert.Equal(t, first, second)
}

func TestDerive_ZeroUtilization(t *testing.T) {
	app := newApplication(t, func(p *model.ApplicationParams) {
		p.CreditUtilization = 0
		p.SelfReportedDebt = 0
	})

	derived := service.NewFeatureDeriver().Derive(app)

	assert.Equal(t, 0.0, derived.EstimatedDebt)
	assert.Equal(t, 0.0, derived.DTIRatio)
}

func TestDerive_HighUtilizationDrivesDTI(t *testing.T) {
	app := newApplication(t, func(p *model.ApplicationParams) {
		p.AnnualIncome = 24000
		p.SelfReportedDebt = 900
		p.TotalCreditLimit = 20000
		p.CreditUtilization = 80
	})

	derived := service.NewFeatureDeriver().Derive(app)

	// estimated_debt = 20000 * 80 * 0.03 / 100 = 480
	assert.InDelta(t, 480.0, derived.EstimatedDebt, 1e-9)
	// dti = ((900 + 480) / 2000) * 100 = 69
	assert.InDelta(t, 69.0, derived.DTIRatio, 1e-9)
}
