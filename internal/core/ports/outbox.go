package ports

import (
	"context"
	"time"

	"requisitions/internal/core/domain/model/kernel"
)

// OutboxMessage is a notification waiting to be relayed to the message broker.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	Topic       string
	Key         string
	Payload     []byte
	CreatedAt   time.Time
}

// OutboxRepository stores notifications in the same transaction as the
// change that produced them.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnsent returns up to limit unsent messages, oldest first, locking them
	// so that concurrent relays skip them.
	GetUnsent(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, ids []kernel.UUID, sentAt time.Time) error
}

// MessagePublisher delivers relayed outbox messages.
type MessagePublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
