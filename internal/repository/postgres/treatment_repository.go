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

type treatmentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTreatmentRepository(db *DB) repository.TreatmentRepository {
	return &treatmentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *treatmentRepository) List(ctx context.Context) ([]*domain.Treatment, error) {
	query := `
		SELECT id, name, description, application_method, frequency_days, is_ecological, created_at
		FROM treatments
		ORDER BY name
	`

	var treatments []*domain.Treatment
	if err := r.db.SelectContext(ctx, &treatments, query); err != nil {
		r.logger.Error("Failed to list treatments", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return treatments, nil
}

func (r *treatmentRepository) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	query := `
		SELECT id, name, description, application_method, frequency_days, is_ecological, created_at
		FROM treatments
		WHERE id = $1
	`

	var treatment domain.Treatment
	err := r.db.GetContext(ctx, &treatment, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTreatmentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get treatment by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &treatment, nil
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *domain.Treatment) error {
	query := `
		INSERT INTO treatments (name, description, application_method, frequency_days, is_ecological)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		treatment.Name, treatment.Description, treatment.ApplicationMethod,
		treatment.FrequencyDays, treatment.IsEcological,
	).Scan(&treatment.ID, &treatment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to create treatment", zap.String("name", treatment.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *domain.Treatment) error {
	query := `
		UPDATE treatments
		SET name = $2, description = $3, application_method = $4,
		    frequency_days = $5, is_ecological = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		treatment.ID, treatment.Name, treatment.Description, treatment.ApplicationMethod,
		treatment.FrequencyDays, treatment.IsEcological,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to update treatment", zap.Int64("id", treatment.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrTreatmentNotFound
	}
	return nil
}
