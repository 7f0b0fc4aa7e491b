package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxEntry represents a domain event stored in the outbox table,
// awaiting publication to the message broker.
type OutboxEntry struct {
	ID            uuid.UUID
	AggregateID   uuid.UUID
	AggregateType string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
	PublishedAt   *time.Time
}

// NewOutboxEntry creates an OutboxEntry from a DomainEvent. The payload is
// produced by JSON-marshalling the event itself.
func NewOutboxEntry(event DomainEvent) OutboxEntry {
	payload, _ := json.Marshal(event)
	return OutboxEntry{
		ID:            event.EventID(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		EventType:     event.EventType(),
		Payload:       payload,
		CreatedAt:     event.OccurredAt(),
		PublishedAt:   nil,
	}
}

// OutboxRepository is the read side of the transactional outbox: entries
// are written by the owning aggregate's repository in the same transaction
// as the aggregate itself, and drained by a relay through this port.
type OutboxRepository interface {
	FetchUnpublished(ctx context.Context, batchSize int) ([]OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}
