package model

import "github.com/sindhuatluri/LOC/internal/domain/valueobject"

// DerivedFeatures holds the fields computed from a validated application.
// A pure function of the application: recomputing on the same input yields
// bit-identical values.
type DerivedFeatures struct {
	// EstimatedDebt models the minimum monthly payment on revolving debt
	// as 3% of the utilized balance.
	EstimatedDebt float64
	// DTIRatio is the percentage of monthly income consumed by debt service.
	DTIRatio float64
}

// FeatureVector is the exact and complete input surface to every scoring
// function: the application attributes plus the derived features. No scorer
// sees a subset or a superset.
type FeatureVector struct {
	AnnualIncome         float64
	SelfReportedDebt     float64
	SelfReportedExpenses float64
	RequestedAmount      float64
	Age                  int
	Province             valueobject.Province
	EmploymentStatus     valueobject.EmploymentStatus
	MonthsEmployed       int
	CreditScore          int
	TotalCreditLimit     float64
	CreditUtilization    float64
	NumOpenAccounts      int
	NumCreditInquiries   int
	PaymentHistory       valueobject.PaymentHistory
	MonthlyExpenses      float64
	EstimatedDebt        float64
	DTIRatio             float64
}

// NewFeatureVector assembles the scoring input from an application and its
// derived features.
func NewFeatureVector(app Application, derived DerivedFeatures) FeatureVector {
	return FeatureVector{
		AnnualIncome:         app.AnnualIncome(),
		SelfReportedDebt:     app.SelfReportedDebt(),
		SelfReportedExpenses: app.SelfReportedExpenses(),
		RequestedAmount:      app.RequestedAmount(),
		Age:                  app.Age(),
		Province:             app.Province(),
		EmploymentStatus:     app.EmploymentStatus(),
		MonthsEmployed:       app.MonthsEmployed(),
		CreditScore:          app.CreditScore(),
		TotalCreditLimit:     app.TotalCreditLimit(),
		CreditUtilization:    app.CreditUtilization(),
		NumOpenAccounts:      app.NumOpenAccounts(),
		NumCreditInquiries:   app.NumCreditInquiries(),
		PaymentHistory:       app.PaymentHistory(),
		MonthlyExpenses:      app.MonthlyExpenses(),
		EstimatedDebt:        derived.EstimatedDebt,
		DTIRatio:             derived.DTIRatio,
	}
}
