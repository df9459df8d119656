package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/pkg/errors"
)

type bedRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBedRepository(db *DB) repository.BedRepository {
	return &bedRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *bedRepository) List(ctx context.Context, includeInactive bool) ([]*domain.Bed, error) {
	query := `
		SELECT id, name, description, location, is_active, created_at
		FROM raised_beds
		WHERE ($1 OR is_active)
		ORDER BY name
	`

	var beds []*domain.Bed
	if err := r.db.SelectContext(ctx, &beds, query, includeInactive); err != nil {
		r.logger.Error("Failed to list beds", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return beds, nil
}

func (r *bedRepository) GetByID(ctx context.Context, id int64) (*domain.Bed, error) {
	query := `
		SELECT id, name, description, location, is_active, created_at
		FROM raised_beds
		WHERE id = $1
	`

	var bed domain.Bed
	err := r.db.GetContext(ctx, &bed, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrBedNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get bed by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &bed, nil
}

func (r *bedRepository) Create(ctx context.Context, bed *domain.Bed) error {
	query := `
		INSERT INTO raised_beds (name, description, location)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at
	`

	err := r.db.QueryRowContext(ctx, query, bed.Name, bed.Description, bed.Location).
		Scan(&bed.ID, &bed.IsActive, &bed.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to create bed", zap.String("name", bed.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *bedRepository) Update(ctx context.Context, bed *domain.Bed) error {
	query := `
		UPDATE raised_beds
		SET name = $2, description = $3, location = $4, is_active = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, bed.ID, bed.Name, bed.Description, bed.Location, bed.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to update bed", zap.Int64("id", bed.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrBedNotFound
	}
	return nil
}

func (r *bedRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE raised_beds SET is_active = FALSE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to deactivate bed", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrBedNotFound
	}
	return nil
}
