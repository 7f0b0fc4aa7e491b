package usecase

import (
	"context"
	"fmt"

	"github.com/sindhuatluri/LOC/internal/application/dto"
	"github.com/sindhuatluri/LOC/internal/domain/port"
)

// GetDecision is the use case for retrieving a stored decision.
type GetDecision struct {
	repo port.DecisionRepository
}

// NewGetDecision creates a new GetDecision use case.
func NewGetDecision(repo port.DecisionRepository) *GetDecision {
	return &GetDecision{repo: repo}
}

// Execute retrieves a decision record by ID.
func (uc *GetDecision) Execute(ctx context.Context, req dto.GetDecisionRequest) (dto.DecisionResponse, error) {
	record, err := uc.repo.FindByID(ctx, req.DecisionID)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("failed to find decision: %w", err)
	}

	return dto.FromRecord(record), nil
}
