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

type careRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCareRepository(db *DB) repository.CareRepository {
	return &careRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *careRepository) List(ctx context.Context) ([]*domain.CareAction, error) {
	query := `
		SELECT id, name, description, action_type, created_at
		FROM care_actions
		ORDER BY name
	`

	var actions []*domain.CareAction
	if err := r.db.SelectContext(ctx, &actions, query); err != nil {
		r.logger.Error("Failed to list care actions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return actions, nil
}

func (r *careRepository) GetByID(ctx context.Context, id int64) (*domain.CareAction, error) {
	query := `
		SELECT id, name, description, action_type, created_at
		FROM care_actions
		WHERE id = $1
	`

	var action domain.CareAction
	err := r.db.GetContext(ctx, &action, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCareActionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get care action by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &action, nil
}

func (r *careRepository) Create(ctx context.Context, action *domain.CareAction) error {
	query := `
		INSERT INTO care_actions (name, description, action_type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		action.Name, action.Description, action.ActionType,
	).Scan(&action.ID, &action.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to create care action", zap.String("name", action.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *careRepository) Update(ctx context.Context, action *domain.CareAction) error {
	query := `
		UPDATE care_actions
		SET name = $2, description = $3, action_type = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		action.ID, action.Name, action.Description, action.ActionType,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to update care action", zap.Int64("id", action.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrCareActionNotFound
	}
	return nil
}
