package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sindhuatluri/LOC/internal/domain/event"
	"github.com/sindhuatluri/LOC/pkg/events"
)

// DecisionRecord is the aggregate root for credit decisions. It snapshots the
// scoring inputs alongside the outcome so a decision can be audited later
// exactly as it was made.
type DecisionRecord struct {
	events.EventCollector
	createdAt   time.Time
	applicantID string
	features    FeatureVector
	decision    Decision
	id          uuid.UUID
}

// NewDecisionRecord creates a record for a completed decision and raises the
// corresponding domain events: decision.reached always, decision.denied
// additionally for denials.
func NewDecisionRecord(applicantID string, features FeatureVector, decision Decision) (*DecisionRecord, error) {
	if applicantID == "" {
		return nil, fmt.Errorf("applicant ID is required")
	}

	rec := &DecisionRecord{
		id:          uuid.New(),
		applicantID: applicantID,
		features:    features,
		decision:    decision,
		createdAt:   time.Now().UTC(),
	}

	rec.Record(event.NewDecisionReached(
		rec.id, rec.applicantID,
		decision.ApprovalStatus(), decision.CreditLimit(), decision.InterestRate(),
		decision.Reason(),
	))

	if !decision.ApprovalStatus() {
		rec.Record(event.NewDecisionDenied(
			rec.id, rec.applicantID, decision.Reason(),
			features.CreditScore, features.DTIRatio,
		))
	}

	return rec, nil
}

// ReconstructDecisionRecord rebuilds a DecisionRecord from persisted data
// (no validation, no events).
func ReconstructDecisionRecord(
	id uuid.UUID,
	applicantID string,
	features FeatureVector,
	decision Decision,
	createdAt time.Time,
) *DecisionRecord {
	return &DecisionRecord{
		id:          id,
		applicantID: applicantID,
		features:    features,
		decision:    decision,
		createdAt:   createdAt,
	}
}

// --- Accessors ---

func (r *DecisionRecord) ID() uuid.UUID           { return r.id }
func (r *DecisionRecord) ApplicantID() string     { return r.applicantID }
func (r *DecisionRecord) Features() FeatureVector { return r.features }
func (r *DecisionRecord) Decision() Decision      { return r.decision }
func (r *DecisionRecord) CreatedAt() time.Time    { return r.createdAt }
