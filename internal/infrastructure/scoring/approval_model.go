package scoring

import (
	"encoding/json"
	"fmt"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

type approvalTier struct {
	MinCreditScore     int     `json:"min_credit_score"`
	MaxDTIRatio        float64 `json:"max_dti_ratio"`
	MaxPaymentSeverity int     `json:"max_payment_severity"`
}

type approvalParams struct {
	Version int            `json:"version"`
	Tiers   []approvalTier `json:"tiers"`
}

// ApprovalModel is a tiered rule table: an application is approved when any
// tier admits its credit score, DTI ratio and payment history severity.
// Tiers trade a higher credit score floor for more tolerance on the other
// two axes.
type ApprovalModel struct {
	params approvalParams
}

func newApprovalModel(raw []byte) (*ApprovalModel, error) {
	var params approvalParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("failed to parse approval rules: %w", err)
	}
	if len(params.Tiers) == 0 {
		return nil, fmt.Errorf("approval rules contain no tiers")
	}
	return &ApprovalModel{params: params}, nil
}

// ScoreApproval reports whether any tier admits the features.
func (m *ApprovalModel) ScoreApproval(features model.FeatureVector) (bool, error) {
	severity := features.PaymentHistory.Severity()
	for _, tier := range m.params.Tiers {
		if features.CreditScore >= tier.MinCreditScore &&
			features.DTIRatio <= tier.MaxDTIRatio &&
			severity <= tier.MaxPaymentSeverity {
			return true, nil
		}
	}
	return false, nil
}
