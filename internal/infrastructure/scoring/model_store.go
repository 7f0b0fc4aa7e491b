// Package scoring provides the rule-table implementations of the three
// scoring functions, loaded from versioned JSON artifacts. Defaults are
// compiled in; a directory of replacement artifacts can be supplied to
// retune the tables without a rebuild.
package scoring

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names, fixed across embedded defaults and override
// directories.
const (
	ApprovalArtifact = "approval_rules.json"
	LimitArtifact    = "limit_rules.json"
	RateArtifact     = "rate_rules.json"
)

//go:embed artifacts/*.json
var defaults embed.FS

// ModelStore holds the three loaded scoring models. Loading is all or
// nothing: the engine never operates with a partial set.
type ModelStore struct {
	approval *ApprovalModel
	limit    *LimitModel
	rate     *RateModel
}

// LoadModelStore loads the three scoring artifacts. An empty dir selects
// the embedded defaults; otherwise every artifact is read from dir. Models
// are read-only and safe for concurrent use once loaded.
func LoadModelStore(dir string) (*ModelStore, error) {
	approvalRaw, err := readArtifact(dir, ApprovalArtifact)
	if err != nil {
		return nil, err
	}
	limitRaw, err := readArtifact(dir, LimitArtifact)
	if err != nil {
		return nil, err
	}
	rateRaw, err := readArtifact(dir, RateArtifact)
	if err != nil {
		return nil, err
	}

	approval, err := newApprovalModel(approvalRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ApprovalArtifact, err)
	}
	limit, err := newLimitModel(limitRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", LimitArtifact, err)
	}
	rate, err := newRateModel(rateRaw)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", RateArtifact, err)
	}

	return &ModelStore{
		approval: approval,
		limit:    limit,
		rate:     rate,
	}, nil
}

func readArtifact(dir, name string) ([]byte, error) {
	if dir == "" {
		return defaults.ReadFile("artifacts/" + name)
	}
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring artifact: %w", err)
	}
	return raw, nil
}

func (s *ModelStore) Approval() *ApprovalModel { return s.approval }
func (s *ModelStore) Limit() *LimitModel       { return s.limit }
func (s *ModelStore) Rate() *RateModel         { return s.rate }
