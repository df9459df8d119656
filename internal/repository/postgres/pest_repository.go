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

type pestRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPestRepository(db *DB) repository.PestRepository {
	return &pestRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *pestRepository) List(ctx context.Context) ([]*domain.Pest, error) {
	query := `
		SELECT id, name, scientific_name, description, symptoms, created_at
		FROM pests
		ORDER BY name
	`

	var pests []*domain.Pest
	if err := r.db.SelectContext(ctx, &pests, query); err != nil {
		r.logger.Error("Failed to list pests", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return pests, nil
}

func (r *pestRepository) GetByID(ctx context.Context, id int64) (*domain.Pest, error) {
	query := `
		SELECT id, name, scientific_name, description, symptoms, created_at
		FROM pests
		WHERE id = $1
	`

	var pest domain.Pest
	err := r.db.GetContext(ctx, &pest, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPestNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get pest by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &pest, nil
}

func (r *pestRepository) Create(ctx context.Context, pest *domain.Pest) error {
	query := `
		INSERT INTO pests (name, scientific_name, description, symptoms)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		pest.Name, pest.ScientificName, pest.Description, pest.Symptoms,
	).Scan(&pest.ID, &pest.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to create pest", zap.String("name", pest.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *pestRepository) Update(ctx context.Context, pest *domain.Pest) error {
	query := `
		UPDATE pests
		SET name = $2, scientific_name = $3, description = $4, symptoms = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		pest.ID, pest.Name, pest.ScientificName, pest.Description, pest.Symptoms,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to update pest", zap.Int64("id", pest.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrPestNotFound
	}
	return nil
}

func (r *pestRepository) LinkTreatment(ctx context.Context, link *domain.PestTreatment) error {
	query := `
		INSERT INTO pest_treatments (pest_id, treatment_id, effectiveness, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		link.PestID, link.TreatmentID, link.Effectiveness, link.Notes,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateLink
		}
		r.logger.Error("Failed to link pest to treatment",
			zap.Int64("pest_id", link.PestID),
			zap.Int64("treatment_id", link.TreatmentID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *pestRepository) UnlinkTreatment(ctx context.Context, pestID, treatmentID int64) error {
	query := `DELETE FROM pest_treatments WHERE pest_id = $1 AND treatment_id = $2`

	result, err := r.db.ExecContext(ctx, query, pestID, treatmentID)
	if err != nil {
		r.logger.Error("Failed to unlink pest treatment",
			zap.Int64("pest_id", pestID),
			zap.Int64("treatment_id", treatmentID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrLinkNotFound
	}
	return nil
}

func (r *pestRepository) TreatmentsForPest(ctx context.Context, pestID int64) ([]*domain.PestTreatmentInfo, error) {
	query := `
		SELECT t.id, t.name, t.description, t.application_method,
		       t.frequency_days, t.is_ecological, t.created_at,
		       pt.effectiveness, pt.notes
		FROM pest_treatments pt
		JOIN treatments t ON t.id = pt.treatment_id
		WHERE pt.pest_id = $1
		ORDER BY t.name
	`

	rows, err := r.db.QueryContext(ctx, query, pestID)
	if err != nil {
		r.logger.Error("Failed to get treatments for pest", zap.Int64("pest_id", pestID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var infos []*domain.PestTreatmentInfo
	for rows.Next() {
		var info domain.PestTreatmentInfo
		err := rows.Scan(
			&info.Treatment.ID, &info.Treatment.Name, &info.Treatment.Description,
			&info.Treatment.ApplicationMethod, &info.Treatment.FrequencyDays,
			&info.Treatment.IsEcological, &info.Treatment.CreatedAt,
			&info.Effectiveness, &info.Notes,
		)
		if err != nil {
			continue
		}
		infos = append(infos, &info)
	}

	return infos, nil
}
