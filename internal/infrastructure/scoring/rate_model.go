package scoring

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

type rateParams struct {
	PaymentAdjustments       map[string]float64 `json:"payment_adjustments"`
	Version                  int                `json:"version"`
	BaseRate                 float64            `json:"base_rate"`
	CreditScorePivot         int                `json:"credit_score_pivot"`
	CreditAdjustmentPerPoint float64            `json:"credit_adjustment_per_point"`
	MaxCreditAdjustment      float64            `json:"max_credit_adjustment"`
	DTIPivot                 float64            `json:"dti_pivot"`
	DTIAdjustmentPerPoint    float64            `json:"dti_adjustment_per_point"`
	MaxDTIAdjustment         float64            `json:"max_dti_adjustment"`
	MinRate                  float64            `json:"min_rate"`
	MaxRate                  float64            `json:"max_rate"`
}

// RateModel prices an approved line: a base rate discounted per credit
// score point above the pivot, loaded per DTI point above the pivot and
// per payment history tier, then clamped to the configured band.
type RateModel struct {
	params rateParams
}

func newRateModel(raw []byte) (*RateModel, error) {
	var params rateParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("failed to parse rate rules: %w", err)
	}
	if params.MaxRate < params.MinRate {
		return nil, fmt.Errorf("rate rules have max rate %v below min rate %v", params.MaxRate, params.MinRate)
	}
	return &RateModel{params: params}, nil
}

// ScoreRate returns the clamped adjusted rate for the features.
func (m *RateModel) ScoreRate(features model.FeatureVector) (float64, error) {
	creditAdj := math.Min(m.params.MaxCreditAdjustment,
		math.Max(0, float64(features.CreditScore-m.params.CreditScorePivot))*m.params.CreditAdjustmentPerPoint)
	dtiAdj := math.Min(m.params.MaxDTIAdjustment,
		math.Max(0, features.DTIRatio-m.params.DTIPivot)*m.params.DTIAdjustmentPerPoint)
	paymentAdj := m.params.PaymentAdjustments[features.PaymentHistory.String()]

	rate := m.params.BaseRate - creditAdj + dtiAdj + paymentAdj
	return math.Min(m.params.MaxRate, math.Max(m.params.MinRate, rate)), nil
}
