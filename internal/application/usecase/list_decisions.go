package usecase

import (
	"context"
	"fmt"

	"github.com/sindhuatluri/LOC/internal/application/dto"
	"github.com/sindhuatluri/LOC/internal/domain/model"
	"github.com/sindhuatluri/LOC/internal/domain/port"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ListDecisions is the use case for listing an applicant's decision history.
type ListDecisions struct {
	repo port.DecisionRepository
}

// NewListDecisions creates a new ListDecisions use case.
func NewListDecisions(repo port.DecisionRepository) *ListDecisions {
	return &ListDecisions{repo: repo}
}

// Execute lists decisions for an applicant, newest first, with pagination.
func (uc *ListDecisions) Execute(ctx context.Context, req dto.ListDecisionsRequest) (dto.ListDecisionsResponse, error) {
	if req.ApplicantID == "" {
		return dto.ListDecisionsResponse{}, &model.ValidationError{
			Fields: []model.FieldError{{Field: "applicant_id", Message: "is required"}},
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	records, err := uc.repo.FindByApplicantID(ctx, req.ApplicantID, limit, offset)
	if err != nil {
		return dto.ListDecisionsResponse{}, fmt.Errorf("failed to list decisions: %w", err)
	}

	responses := make([]dto.DecisionResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.FromRecord(record))
	}

	return dto.ListDecisionsResponse{Decisions: responses}, nil
}
