// Package messaging drains the transactional outbox to Kafka.
package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sindhuatluri/LOC/pkg/events"
	"github.com/sindhuatluri/LOC/pkg/kafka"
)

const (
	defaultPollInterval = time.Second
	defaultBatchSize    = 100
)

// Publisher is the slice of pkg/kafka.Producer the relay needs.
type Publisher interface {
	Publish(ctx context.Context, topic string, messages ...kafka.Message) error
}

// OutboxRelay polls the outbox for staged domain events and publishes them
// to Kafka. Events are published in staging order; a publish failure stops
// the current batch so the failed entry is retried before anything behind
// it. At-least-once: an entry published but not yet marked may be sent
// again after a crash, consumers deduplicate on the event_id header.
type OutboxRelay struct {
	outbox    events.OutboxRepository
	publisher Publisher
	logger    *slog.Logger
	topic     string
	interval  time.Duration
	batchSize int
}

// NewOutboxRelay creates a relay publishing outbox entries to topic.
func NewOutboxRelay(outbox events.OutboxRepository, publisher Publisher, topic string, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		outbox:    outbox,
		publisher: publisher,
		logger:    logger,
		topic:     topic,
		interval:  defaultPollInterval,
		batchSize: defaultBatchSize,
	}
}

// Run polls until ctx is cancelled. Intended to be started as a goroutine
// from main.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started", "topic", r.topic, "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			r.Drain(ctx)
		}
	}
}

// Drain runs one poll-publish-mark pass. Exposed so callers can flush the
// outbox on demand; Run calls it on every tick.
func (r *OutboxRelay) Drain(ctx context.Context) {
	entries, err := r.outbox.FetchUnpublished(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch outbox entries", "error", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	published := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		msg := kafka.Message{
			Key:   []byte(entry.AggregateID.String()),
			Value: entry.Payload,
			Headers: map[string]string{
				"event_type": entry.EventType,
				"event_id":   entry.ID.String(),
			},
		}
		if err := r.publisher.Publish(ctx, r.topic, msg); err != nil {
			r.logger.Error("failed to publish outbox entry",
				"event_id", entry.ID, "event_type", entry.EventType, "error", err)
			break
		}
		published = append(published, entry.ID)
	}

	if len(published) == 0 {
		return
	}

	if err := r.outbox.MarkPublished(ctx, published); err != nil {
		r.logger.Error("failed to mark outbox entries published", "error", err)
		return
	}

	r.logger.Debug("published outbox entries", "count", len(published))
}
