package repository

import (
	"context"
	"time"

	"github.com/garden-planner/internal/domain"
)

// CalendarRepository defines persistence for generated calendar events.
type CalendarRepository interface {
	// ListRange returns events scheduled within [from, to], ordered by date.
	ListRange(ctx context.Context, from, to time.Time, includeCompleted bool) ([]*domain.CalendarEvent, error)

	// ListForCulture returns all events of one culture.
	ListForCulture(ctx context.Context, cultureID int64) ([]*domain.CalendarEvent, error)

	// InsertBatch inserts the events and fills their IDs.
	InsertBatch(ctx context.Context, events []*domain.CalendarEvent) error

	// MarkCompleted marks one event done on the given date.
	MarkCompleted(ctx context.Context, id int64, completedDate time.Time) (*domain.CalendarEvent, error)
}
