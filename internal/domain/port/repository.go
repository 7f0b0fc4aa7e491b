package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

// DecisionRepository defines the persistence port for decision records.
type DecisionRepository interface {
	// Save persists a decision record and stages its domain events for
	// publication in the same transaction.
	Save(ctx context.Context, record *model.DecisionRecord) error

	// FindByID retrieves a decision record by its unique identifier.
	// Returns model.ErrDecisionNotFound when no record exists.
	FindByID(ctx context.Context, id uuid.UUID) (*model.DecisionRecord, error)

	// FindByApplicantID retrieves decisions for an applicant, most recent first.
	FindByApplicantID(ctx context.Context, applicantID string, limit, offset int) ([]*model.DecisionRecord, error)
}
