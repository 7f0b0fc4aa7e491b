package port

import (
	"github.com/sindhuatluri/LOC/internal/domain/model"
)

// The three scoring functions are opaque to the engine: a rule table, a
// remote model or a cached lookup all satisfy the same contract. Every
// scorer consumes the complete FeatureVector, never a subset.

// ApprovalScorer predicts whether an application should be approved.
type ApprovalScorer interface {
	ScoreApproval(features model.FeatureVector) (bool, error)
}

// LimitScorer estimates the credit limit for an approved application.
type LimitScorer interface {
	ScoreLimit(features model.FeatureVector) (float64, error)
}

// RateScorer estimates the interest rate for an approved application.
type RateScorer interface {
	ScoreRate(features model.FeatureVector) (float64, error)
}
