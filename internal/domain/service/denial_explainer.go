package service

import (
	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/valueobject"
)

// Denial reasons, in rule priority order.
const (
	ReasonLowCreditScore  = "Denied due to low credit score"
	ReasonHighDTI         = "Denied due to high debt-to-income ratio"
	ReasonPaymentHistory  = "Denied due to payment history"
	ReasonMultipleFactors = "Denied based on multiple factors"
)

// Explainer rule thresholds.
const (
	lowCreditScoreCeiling = 660
	highDTIFloor          = 50.0
)

// DenialExplainer produces a human-readable reason for a denied application.
//
// The rules are a fixed-priority approximation of the approval scorer's
// decision boundary, not a derivation of its actual reasoning. On some
// inputs the stated reason and the scorer's true driver will disagree (a
// denial driven by income alone falls through to the catch-all); that
// mismatch is accepted, the explanation is best-effort.
type DenialExplainer struct{}

// NewDenialExplainer creates a new DenialExplainer instance.
func NewDenialExplainer() *DenialExplainer {
	return &DenialExplainer{}
}

// Explain returns the highest-priority rule that matches the features.
// First match wins; the ordering is policy, not incidental. Total: it
// never fails.
func (e *DenialExplainer) Explain(features model.FeatureVector) string {
	switch {
	case features.CreditScore < lowCreditScoreCeiling:
		return ReasonLowCreditScore
	case features.DTIRatio > highDTIFloor:
		return ReasonHighDTI
	case features.PaymentHistory.Equal(valueobject.PaymentLateOver60):
		return ReasonPaymentHistory
	default:
		return ReasonMultipleFactors
	}
}
