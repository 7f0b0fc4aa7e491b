package scoring

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

type limitParams struct {
	Version          int     `json:"version"`
	IncomeFactor     float64 `json:"income_factor"`
	CreditScorePivot int     `json:"credit_score_pivot"`
	CreditScoreBonus float64 `json:"credit_score_bonus"`
}

// LimitModel estimates the credit limit as the requested amount capped by
// repayment capacity: a share of monthly income plus a bonus per credit
// score point above the pivot.
type LimitModel struct {
	params limitParams
}

func newLimitModel(raw []byte) (*LimitModel, error) {
	var params limitParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("failed to parse limit rules: %w", err)
	}
	if params.IncomeFactor <= 0 {
		return nil, fmt.Errorf("limit rules require a positive income factor")
	}
	return &LimitModel{params: params}, nil
}

// ScoreLimit returns min(requested, income capacity + credit score bonus).
func (m *LimitModel) ScoreLimit(features model.FeatureVector) (float64, error) {
	bonus := math.Max(0, float64(features.CreditScore-m.params.CreditScorePivot)) * m.params.CreditScoreBonus
	capacity := features.AnnualIncome*m.params.IncomeFactor/12 + bonus
	return math.Min(features.RequestedAmount, capacity), nil
}
