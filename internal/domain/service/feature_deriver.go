package service

import "github.com/sindhuatluri/LOC/internal/domain/model"

// FeatureDeriver computes derived credit features from a validated application.
type FeatureDeriver struct{}

// NewFeatureDeriver creates a new FeatureDeriver instance.
func NewFeatureDeriver() *FeatureDeriver {
	return &FeatureDeriver{}
}

// Derive computes the estimated monthly debt payment and the debt-to-income
// ratio. Pure and total: the same application always yields bit-identical
// results, and division by monthly income is safe because annual income is
// validated to be at least 20000.
func (d *FeatureDeriver) Derive(app model.Application) model.DerivedFeatures {
	// Minimum monthly payment on revolving debt, modeled as 3% of the
	// utilized balance.
	estimatedDebt := app.TotalCreditLimit() * app.CreditUtilization() * 0.03 / 100

	monthlyIncome := app.AnnualIncome() / 12
	dtiRatio := ((app.SelfReportedDebt() + estimatedDebt) / monthlyIncome) * 100

	return model.DerivedFeatures{
		EstimatedDebt: estimatedDebt,
		DTIRatio:      dtiRatio,
	}
}
