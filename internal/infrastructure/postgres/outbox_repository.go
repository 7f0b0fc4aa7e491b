package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sindhuatluri/LOC/pkg/events"
	pkgpostgres "github.com/sindhuatluri/LOC/pkg/postgres"
)

// InsertOutboxEntry stages one domain event in the outbox. Callers pass the
// transaction that persists the owning aggregate, which is what makes the
// outbox transactional.
func InsertOutboxEntry(ctx context.Context, q pkgpostgres.Querier, evt events.DomainEvent) error {
	entry := events.NewOutboxEntry(evt)

	_, err := q.Exec(ctx, `
		INSERT INTO outbox (id, aggregate_id, aggregate_type, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		entry.ID,
		entry.AggregateID,
		entry.AggregateType,
		entry.EventType,
		entry.Payload,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to stage outbox entry: %w", err)
	}
	return nil
}

// OutboxRepository implements events.OutboxRepository using PostgreSQL. It
// is the read side of the outbox; entries are written by InsertOutboxEntry
// inside aggregate save transactions.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

// NewOutboxRepository creates a new PostgreSQL-backed outbox repository.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// FetchUnpublished returns up to batchSize unpublished entries in
// insertion order, so publication preserves the order events were staged.
func (r *OutboxRepository) FetchUnpublished(ctx context.Context, batchSize int) ([]events.OutboxEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, aggregate_id, aggregate_type, event_type, payload, created_at, published_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY ordinal
		LIMIT $1
	`, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query outbox: %w", err)
	}
	defer rows.Close()

	var entries []events.OutboxEntry
	for rows.Next() {
		var entry events.OutboxEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.AggregateID,
			&entry.AggregateType,
			&entry.EventType,
			&entry.Payload,
			&entry.CreatedAt,
			&entry.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outbox entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate outbox: %w", err)
	}

	return entries, nil
}

// MarkPublished stamps the given entries as published.
func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.pool.Exec(ctx,
		`UPDATE outbox SET published_at = now() WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("failed to mark outbox entries published: %w", err)
	}
	return nil
}
