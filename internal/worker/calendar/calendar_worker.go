package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/worker"
)

const (
	maxBatchSize    = 20                     // messages read per iteration
	emptyQueueSleep = 100 * time.Millisecond // pause when the stream is empty
)

// CalendarGenerator is the slice of the calendar use case the worker needs.
type CalendarGenerator interface {
	GenerateForCulture(ctx context.Context, cultureID int64) (int, error)
}

// CalendarWorker consumes culture-created events and generates the
// culture's care calendar.
type CalendarWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	calendarUC   CalendarGenerator
	consumerName string
	maxRetries   int
}

// NewCalendarWorker creates a new CalendarWorker
func NewCalendarWorker(
	streamRepo repository.StreamRepository,
	calendarUC CalendarGenerator,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *CalendarWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &CalendarWorker{
		BaseWorker:   worker.NewBaseWorker("calendar-generation", consumerGroup, logger),
		streamRepo:   streamRepo,
		calendarUC:   calendarUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until stopped
func (w *CalendarWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CalendarWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCultureCreated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and handles one batch of messages. Returns the
// number of messages consumed from the stream.
func (w *CalendarWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamCultureCreated,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ack malformed messages so they do not stay pending forever
			_ = w.streamRepo.AckMessage(ctx, domain.StreamCultureCreated, w.ConsumerGroup(), msg.ID)
			continue
		}

		count, err := w.generateWithRetries(ctx, event, msg.ID)
		if err != nil {
			w.deadLetter(ctx, msg)
			continue
		}

		logger.Info("Calendar generated",
			zap.Int64("culture_id", event.CultureID),
			zap.Int64("bed_id", event.BedID),
			zap.Int("events", count))

		if err := w.streamRepo.AckMessage(ctx, domain.StreamCultureCreated, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// generateWithRetries attempts calendar generation up to maxRetries times.
func (w *CalendarWorker) generateWithRetries(ctx context.Context, event *domain.CultureCreatedEvent, messageID string) (int, error) {
	logger := w.Logger()

	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		count, err := w.calendarUC.GenerateForCulture(ctx, event.CultureID)
		if err == nil {
			return count, nil
		}

		lastErr = err
		logger.Error("Calendar generation failed",
			zap.String("message_id", messageID),
			zap.Int64("culture_id", event.CultureID),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries),
			zap.Error(err))
	}

	return 0, lastErr
}

// deadLetter moves an exhausted message to the failed stream and acks it,
// so a stuck culture does not block the consumer group.
func (w *CalendarWorker) deadLetter(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	// RawMessage keeps the original payload byte-for-byte on the failed stream
	if err := w.streamRepo.PublishToStream(ctx, domain.StreamCultureFailed, json.RawMessage(msg.Data)); err != nil {
		logger.Error("Failed to dead-letter message, leaving it pending",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	logger.Warn("Message moved to dead-letter stream",
		zap.String("message_id", msg.ID),
		zap.String("stream", domain.StreamCultureFailed))

	if err := w.streamRepo.AckMessage(ctx, domain.StreamCultureCreated, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack dead-lettered message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}

// parseMessage decodes a stream message into a CultureCreatedEvent
func (w *CalendarWorker) parseMessage(msg domain.StreamMessage) (*domain.CultureCreatedEvent, error) {
	var event domain.CultureCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
