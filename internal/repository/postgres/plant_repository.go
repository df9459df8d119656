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

type plantRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlantRepository(db *DB) repository.PlantRepository {
	return &plantRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *plantRepository) List(ctx context.Context) ([]*domain.Plant, error) {
	query := `
		SELECT id, name, scientific_name, description, icon,
		       growth_days, harvest_period_days, notes, created_at
		FROM plants
		ORDER BY name
	`

	var plants []*domain.Plant
	if err := r.db.SelectContext(ctx, &plants, query); err != nil {
		r.logger.Error("Failed to list plants", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return plants, nil
}

func (r *plantRepository) GetByID(ctx context.Context, id int64) (*domain.Plant, error) {
	query := `
		SELECT id, name, scientific_name, description, icon,
		       growth_days, harvest_period_days, notes, created_at
		FROM plants
		WHERE id = $1
	`

	var plant domain.Plant
	err := r.db.GetContext(ctx, &plant, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlantNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get plant by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &plant, nil
}

func (r *plantRepository) Create(ctx context.Context, plant *domain.Plant) error {
	query := `
		INSERT INTO plants (name, scientific_name, description, icon,
		                    growth_days, harvest_period_days, notes)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), '🌱'), $5, $6, $7)
		RETURNING id, icon, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		plant.Name, plant.ScientificName, plant.Description, plant.Icon,
		plant.GrowthDays, plant.HarvestPeriodDays, plant.Notes,
	).Scan(&plant.ID, &plant.Icon, &plant.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to create plant", zap.String("name", plant.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *plantRepository) Update(ctx context.Context, plant *domain.Plant) error {
	query := `
		UPDATE plants
		SET name = $2, scientific_name = $3, description = $4, icon = $5,
		    growth_days = $6, harvest_period_days = $7, notes = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		plant.ID, plant.Name, plant.ScientificName, plant.Description, plant.Icon,
		plant.GrowthDays, plant.HarvestPeriodDays, plant.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateName
		}
		r.logger.Error("Failed to update plant", zap.Int64("id", plant.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrPlantNotFound
	}
	return nil
}

func (r *plantRepository) LinkPest(ctx context.Context, link *domain.PlantPest) error {
	query := `
		INSERT INTO plant_pests (plant_id, pest_id, severity, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, link.PlantID, link.PestID, link.Severity, link.Notes).
		Scan(&link.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateLink
		}
		r.logger.Error("Failed to link plant to pest",
			zap.Int64("plant_id", link.PlantID),
			zap.Int64("pest_id", link.PestID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *plantRepository) UnlinkPest(ctx context.Context, plantID, pestID int64) error {
	query := `DELETE FROM plant_pests WHERE plant_id = $1 AND pest_id = $2`

	result, err := r.db.ExecContext(ctx, query, plantID, pestID)
	if err != nil {
		r.logger.Error("Failed to unlink plant pest",
			zap.Int64("plant_id", plantID),
			zap.Int64("pest_id", pestID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrLinkNotFound
	}
	return nil
}

func (r *plantRepository) PestsForPlant(ctx context.Context, plantID int64) ([]*domain.PlantPestInfo, error) {
	query := `
		SELECT p.id, p.name, p.scientific_name, p.description, p.symptoms, p.created_at,
		       pp.severity, pp.notes
		FROM plant_pests pp
		JOIN pests p ON p.id = pp.pest_id
		WHERE pp.plant_id = $1
		ORDER BY p.name
	`

	rows, err := r.db.QueryContext(ctx, query, plantID)
	if err != nil {
		r.logger.Error("Failed to get pests for plant", zap.Int64("plant_id", plantID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var infos []*domain.PlantPestInfo
	for rows.Next() {
		var info domain.PlantPestInfo
		err := rows.Scan(
			&info.Pest.ID, &info.Pest.Name, &info.Pest.ScientificName,
			&info.Pest.Description, &info.Pest.Symptoms, &info.Pest.CreatedAt,
			&info.Severity, &info.Notes,
		)
		if err != nil {
			continue
		}
		infos = append(infos, &info)
	}

	return infos, nil
}

func (r *plantRepository) LinkCare(ctx context.Context, link *domain.PlantCare) error {
	query := `
		INSERT INTO plant_cares (plant_id, care_action_id, days_after_planting, frequency_days, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		link.PlantID, link.CareActionID, link.DaysAfterPlanting, link.FrequencyDays, link.Notes,
	).Scan(&link.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateLink
		}
		r.logger.Error("Failed to link plant to care action",
			zap.Int64("plant_id", link.PlantID),
			zap.Int64("care_action_id", link.CareActionID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *plantRepository) UnlinkCare(ctx context.Context, plantID, careActionID int64) error {
	query := `DELETE FROM plant_cares WHERE plant_id = $1 AND care_action_id = $2`

	result, err := r.db.ExecContext(ctx, query, plantID, careActionID)
	if err != nil {
		r.logger.Error("Failed to unlink plant care",
			zap.Int64("plant_id", plantID),
			zap.Int64("care_action_id", careActionID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrLinkNotFound
	}
	return nil
}

func (r *plantRepository) CaresForPlant(ctx context.Context, plantID int64) ([]*domain.PlantCareInfo, error) {
	query := `
		SELECT ca.id, ca.name, ca.description, ca.action_type, ca.created_at,
		       pc.days_after_planting, pc.frequency_days, pc.notes
		FROM plant_cares pc
		JOIN care_actions ca ON ca.id = pc.care_action_id
		WHERE pc.plant_id = $1
		ORDER BY pc.days_after_planting NULLS LAST, ca.name
	`

	rows, err := r.db.QueryContext(ctx, query, plantID)
	if err != nil {
		r.logger.Error("Failed to get cares for plant", zap.Int64("plant_id", plantID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var infos []*domain.PlantCareInfo
	for rows.Next() {
		var info domain.PlantCareInfo
		err := rows.Scan(
			&info.CareAction.ID, &info.CareAction.Name, &info.CareAction.Description,
			&info.CareAction.ActionType, &info.CareAction.CreatedAt,
			&info.DaysAfterPlanting, &info.FrequencyDays, &info.Notes,
		)
		if err != nil {
			continue
		}
		infos = append(infos, &info)
	}

	return infos, nil
}

func (r *plantRepository) CareLinks(ctx context.Context, plantID int64) ([]*domain.PlantCare, error) {
	query := `
		SELECT id, plant_id, care_action_id, days_after_planting, frequency_days, notes
		FROM plant_cares
		WHERE plant_id = $1
	`

	var links []*domain.PlantCare
	if err := r.db.SelectContext(ctx, &links, query, plantID); err != nil {
		r.logger.Error("Failed to get care links", zap.Int64("plant_id", plantID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return links, nil
}
