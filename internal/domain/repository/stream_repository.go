package repository

import (
	"context"

	"github.com/garden-planner/internal/domain"
)

// StreamRepository defines the Redis stream transport between the API and
// the calendar worker.
type StreamRepository interface {
	// PublishToStream publishes a JSON-serializable payload.
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup creates the consumer group, tolerating existence.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages without blocking.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges one processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
