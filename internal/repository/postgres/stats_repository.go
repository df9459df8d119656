package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/pkg/errors"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) GetSummary(ctx context.Context) (*domain.GardenSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM raised_beds WHERE is_active)                AS active_beds,
			(SELECT COUNT(*) FROM plants)                                      AS plants,
			(SELECT COUNT(*) FROM cultures WHERE is_active)                    AS active_cultures,
			(SELECT COUNT(*) FROM pests)                                       AS pests,
			(SELECT COUNT(*) FROM treatments)                                  AS treatments,
			(SELECT COUNT(*) FROM calendar_events
			 WHERE NOT completed
			   AND scheduled_date BETWEEN CURRENT_DATE AND CURRENT_DATE + 7)   AS upcoming_events
	`

	var summary domain.GardenSummary
	if err := r.db.GetContext(ctx, &summary, query); err != nil {
		r.logger.Error("Failed to get garden summary", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &summary, nil
}
