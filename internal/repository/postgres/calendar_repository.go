package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/pkg/errors"
)

type calendarRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCalendarRepository(db *DB) repository.CalendarRepository {
	return &calendarRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *calendarRepository) ListRange(ctx context.Context, from, to time.Time, includeCompleted bool) ([]*domain.CalendarEvent, error) {
	query := `
		SELECT id, culture_id, treatment_id, care_action_id, scheduled_date,
		       completed, completed_date, notes, created_at
		FROM calendar_events
		WHERE scheduled_date BETWEEN $1 AND $2 AND ($3 OR NOT completed)
		ORDER BY scheduled_date, id
	`

	var events []*domain.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, from, to, includeCompleted); err != nil {
		r.logger.Error("Failed to list calendar events",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return events, nil
}

func (r *calendarRepository) ListForCulture(ctx context.Context, cultureID int64) ([]*domain.CalendarEvent, error) {
	query := `
		SELECT id, culture_id, treatment_id, care_action_id, scheduled_date,
		       completed, completed_date, notes, created_at
		FROM calendar_events
		WHERE culture_id = $1
		ORDER BY scheduled_date, id
	`

	var events []*domain.CalendarEvent
	if err := r.db.SelectContext(ctx, &events, query, cultureID); err != nil {
		r.logger.Error("Failed to list culture events", zap.Int64("culture_id", cultureID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return events, nil
}

func (r *calendarRepository) InsertBatch(ctx context.Context, events []*domain.CalendarEvent) error {
	if len(events) == 0 {
		return nil
	}

	// Reject the whole batch before touching the database so a bad event
	// surfaces as a domain error instead of a constraint failure mid-tx.
	for _, ev := range events {
		if err := ev.Validate(); err != nil {
			r.logger.Warn("Rejected calendar batch",
				zap.Int64("culture_id", ev.CultureID),
				zap.Error(err))
			return err
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO calendar_events (culture_id, treatment_id, care_action_id, scheduled_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed, created_at
	`

	for _, ev := range events {
		err = tx.QueryRowContext(ctx, query,
			ev.CultureID, ev.TreatmentID, ev.CareActionID, ev.ScheduledDate, ev.Notes,
		).Scan(&ev.ID, &ev.Completed, &ev.CreatedAt)
		if err != nil {
			r.logger.Error("Failed to insert calendar event",
				zap.Int64("culture_id", ev.CultureID),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit calendar batch", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *calendarRepository) MarkCompleted(ctx context.Context, id int64, completedDate time.Time) (*domain.CalendarEvent, error) {
	query := `
		UPDATE calendar_events
		SET completed = TRUE, completed_date = $2
		WHERE id = $1
		RETURNING id, culture_id, treatment_id, care_action_id, scheduled_date,
		          completed, completed_date, notes, created_at
	`

	var event domain.CalendarEvent
	err := r.db.GetContext(ctx, &event, query, id, completedDate)
	if err == sql.ErrNoRows {
		return nil, errors.ErrEventNotFound
	}
	if err != nil {
		r.logger.Error("Failed to mark event completed", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &event, nil
}
