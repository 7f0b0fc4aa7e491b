package service

import (
	"github.com/shopspring/decimal"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

// DecisionEngine sequences a single credit decision: derive features, score
// approval, then either price the line or explain the denial.
//
// The engine is stateless and purely computational; any number of callers
// may invoke Decide concurrently without synchronization. It performs no
// logging and no retries.
type DecisionEngine struct {
	deriver   *FeatureDeriver
	gateway   *ScoringGateway
	explainer *DenialExplainer
}

// NewDecisionEngine creates an engine over the given collaborators.
func NewDecisionEngine(deriver *FeatureDeriver, gateway *ScoringGateway, explainer *DenialExplainer) *DecisionEngine {
	return &DecisionEngine{
		deriver:   deriver,
		gateway:   gateway,
		explainer: explainer,
	}
}

// Decide evaluates one application and returns the decision.
//
// Fail-fast: any scorer failure aborts the whole call with an error
// matching model.ErrScoringUnavailable. No partial decision is ever
// returned; an approval with an unpriced limit would violate the decision
// invariant and could not be made sense of downstream.
func (e *DecisionEngine) Decide(app model.Application) (model.Decision, error) {
	features := model.NewFeatureVector(app, e.deriver.Derive(app))

	approved, err := e.gateway.ScoreApproval(features)
	if err != nil {
		return model.Decision{}, err
	}

	if !approved {
		return model.NewDeniedDecision(e.explainer.Explain(features)), nil
	}

	limit, err := e.gateway.ScoreLimit(features)
	if err != nil {
		return model.Decision{}, err
	}

	rate, err := e.gateway.ScoreRate(features)
	if err != nil {
		return model.Decision{}, err
	}

	return model.NewApprovedDecision(roundToCents(limit), roundToCents(rate)), nil
}

// roundToCents bounds the precision exposed in a decision to two decimal
// places. Part of the output contract: it fixes what users and
// equality-based consumers see, independent of scorer internals.
func roundToCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
