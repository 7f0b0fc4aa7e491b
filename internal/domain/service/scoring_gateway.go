package service

import (
	"fmt"

	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/port"
)

// ScoringGateway invokes the three scoring functions behind a uniform
// interface. The engine depends only on this gateway, never on what each
// scoring function actually is.
type ScoringGateway struct {
	approval port.ApprovalScorer
	limit    port.LimitScorer
	rate     port.RateScorer
}

// NewScoringGateway creates a gateway over the three scorers.
func NewScoringGateway(approval port.ApprovalScorer, limit port.LimitScorer, rate port.RateScorer) *ScoringGateway {
	return &ScoringGateway{
		approval: approval,
		limit:    limit,
		rate:     rate,
	}
}

// ScoreApproval predicts whether the application should be approved. A
// scorer failure is reported as ErrScoringUnavailable, distinct from a
// denial.
func (g *ScoringGateway) ScoreApproval(features model.FeatureVector) (bool, error) {
	approved, err := g.approval.ScoreApproval(features)
	if err != nil {
		return false, fmt.Errorf("approval scorer: %w: %w", model.ErrScoringUnavailable, err)
	}
	return approved, nil
}

// ScoreLimit estimates the credit limit for an approved application.
func (g *ScoringGateway) ScoreLimit(features model.FeatureVector) (float64, error) {
	limit, err := g.limit.ScoreLimit(features)
	if err != nil {
		return 0, fmt.Errorf("limit scorer: %w: %w", model.ErrScoringUnavailable, err)
	}
	return limit, nil
}

// ScoreRate estimates the interest rate for an approved application.
func (g *ScoringGateway) ScoreRate(features model.FeatureVector) (float64, error) {
	rate, err := g.rate.ScoreRate(features)
	if err != nil {
		return 0, fmt.Errorf("rate scorer: %w: %w", model.ErrScoringUnavailable, err)
	}
	return rate, nil
}
