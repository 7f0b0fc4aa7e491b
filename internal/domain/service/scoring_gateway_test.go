package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/service"
)

// stubScorer satisfies all three scorer ports so one instance can back a
// whole gateway in tests.
type stubScorer struct {
	approvalErr error
	limitErr    error
	rateErr     error
	limit       float64
	rate        float64
	approved    bool
}

func (s *stubScorer) ScoreApproval(_ model.FeatureVector) (bool, error) {
	return s.approved, s.approvalErr
}

func (s *stubScorer) ScoreLimit(_ model.FeatureVector) (float64, error) {
	return s.limit, s.limitErr
}

func (s *stubScorer) ScoreRate(_ model.FeatureVector) (float64, error) {
	return s.rate, s.rateErr
}

func TestScoringGateway_PassesThroughResults(t *testing.T) {
	stub := &stubScorer{approved: true, limit: 7500, rate: 7.5}
	gateway := service.NewScoringGateway(stub, stub, stub)

	approved, err := gateway.ScoreApproval(model.FeatureVector{})
	require.NoError(t, err)
	assert.True(t, approved)

	limit, err := gateway.ScoreLimit(model.FeatureVector{})
	require.NoError(t, err)
	assert.Equal(t, 7500.0, limit)

	rate, err := gateway.ScoreRate(model.FeatureVector{})
	require.NoError(t, err)
	assert.Equal(t, 7.5, rate)
}

func TestScoringGateway_WrapsFailuresAsUnavailable(t *testing.T) {
	cause := fmt.Errorf("artifact not loaded")

	tests := []struct {
		name string
		stub *stubScorer
		call func(g *service.ScoringGateway) error
	}{
		{
			name: "approval scorer down",
			stub: &stubScorer{approvalErr: cause},
			call: func(g *service.ScoringGateway) error {
				_, err := g.ScoreApproval(model.FeatureVector{})
				return err
			},
		},
		{
			name: "limit scorer down",
			stub: &stubScorer{limitErr: cause},
			call: func(g *service.ScoringGateway) error {
				_, err := g.ScoreLimit(model.FeatureVector{})
				return err
			},
		},
		{
			name: "rate scorer down",
			stub: &stubScorer{rateErr: cause},
			call: func(g *service.ScoringGateway) error {
				_, err := g.ScoreRate(model.FeatureVector{})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := service.NewScoringGateway(tt.stub, tt.stub, tt.stub)

			err := tt.call(gateway)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrScoringUnavailable))
			assert.True(t, errors.Is(err, cause), "underlying cause stays in the chain")
		})
	}
}
