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

type cultureRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCultureRepository(db *DB) repository.CultureRepository {
	return &cultureRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *cultureRepository) ListActive(ctx context.Context) ([]*domain.Culture, error) {
	query := `
		SELECT id, bed_id, start_date, end_date, start_type, notes, is_active, created_at
		FROM cultures
		WHERE is_active
		ORDER BY start_date DESC, id DESC
	`

	var cultures []*domain.Culture
	if err := r.db.SelectContext(ctx, &cultures, query); err != nil {
		r.logger.Error("Failed to list active cultures", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return cultures, nil
}

func (r *cultureRepository) GetByID(ctx context.Context, id int64) (*domain.Culture, error) {
	query := `
		SELECT id, bed_id, start_date, end_date, start_type, notes, is_active, created_at
		FROM cultures
		WHERE id = $1
	`

	var culture domain.Culture
	err := r.db.GetContext(ctx, &culture, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCultureNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get culture by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &culture, nil
}

func (r *cultureRepository) ListByBed(ctx context.Context, bedID int64, includeInactive bool) ([]*domain.Culture, error) {
	query := `
		SELECT id, bed_id, start_date, end_date, start_type, notes, is_active, created_at
		FROM cultures
		WHERE bed_id = $1 AND ($2 OR is_active)
		ORDER BY start_date DESC, id DESC
	`

	var cultures []*domain.Culture
	if err := r.db.SelectContext(ctx, &cultures, query, bedID, includeInactive); err != nil {
		r.logger.Error("Failed to list cultures by bed", zap.Int64("bed_id", bedID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return cultures, nil
}

func (r *cultureRepository) Create(ctx context.Context, culture *domain.Culture, plants []*domain.CulturePlant) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	cultureQuery := `
		INSERT INTO cultures (bed_id, start_date, start_type, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`

	err = tx.QueryRowContext(ctx, cultureQuery,
		culture.BedID, culture.StartDate, culture.StartType, culture.Notes,
	).Scan(&culture.ID, &culture.IsActive, &culture.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert culture", zap.Int64("bed_id", culture.BedID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	plantQuery := `
		INSERT INTO culture_plants (culture_id, plant_id, quantity_planted, quantity_grown,
		                            row_position, spacing_cm, alignment, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	for _, cp := range plants {
		cp.CultureID = culture.ID
		err = tx.QueryRowContext(ctx, plantQuery,
			cp.CultureID, cp.PlantID, cp.QuantityPlanted, cp.QuantityGrown,
			cp.RowPosition, cp.SpacingCm, cp.Alignment, cp.Notes,
		).Scan(&cp.ID)
		if err != nil {
			r.logger.Error("Failed to insert culture plant",
				zap.Int64("culture_id", culture.ID),
				zap.Int64("plant_id", cp.PlantID),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit culture transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *cultureRepository) Close(ctx context.Context, id int64, endDate time.Time) error {
	query := `
		UPDATE cultures
		SET is_active = FALSE, end_date = $2
		WHERE id = $1 AND is_active
	`

	result, err := r.db.ExecContext(ctx, query, id, endDate)
	if err != nil {
		r.logger.Error("Failed to close culture", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		// Either missing or already closed; the caller distinguishes.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return errors.ErrCultureClosed
	}
	return nil
}

func (r *cultureRepository) Delete(ctx context.Context, id int64) error {
	// culture_plants, schedules and calendar_events cascade
	query := `DELETE FROM cultures WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete culture", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrCultureNotFound
	}
	return nil
}

func (r *cultureRepository) PlantsForCulture(ctx context.Context, cultureID int64) ([]*domain.CulturePlantDetail, error) {
	query := `
		SELECT cp.id, cp.culture_id, cp.plant_id, cp.quantity_planted, cp.quantity_grown,
		       cp.row_position, cp.spacing_cm, cp.alignment, cp.notes,
		       p.id, p.name, p.scientific_name, p.description, p.icon,
		       p.growth_days, p.harvest_period_days, p.notes, p.created_at
		FROM culture_plants cp
		JOIN plants p ON p.id = cp.plant_id
		WHERE cp.culture_id = $1
		ORDER BY cp.id
	`

	rows, err := r.db.QueryContext(ctx, query, cultureID)
	if err != nil {
		r.logger.Error("Failed to get plants for culture", zap.Int64("culture_id", cultureID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var details []*domain.CulturePlantDetail
	for rows.Next() {
		var d domain.CulturePlantDetail
		err := rows.Scan(
			&d.ID, &d.CultureID, &d.PlantID, &d.QuantityPlanted, &d.QuantityGrown,
			&d.RowPosition, &d.SpacingCm, &d.Alignment, &d.Notes,
			&d.Plant.ID, &d.Plant.Name, &d.Plant.ScientificName, &d.Plant.Description,
			&d.Plant.Icon, &d.Plant.GrowthDays, &d.Plant.HarvestPeriodDays,
			&d.Plant.Notes, &d.Plant.CreatedAt,
		)
		if err != nil {
			continue
		}
		details = append(details, &d)
	}

	return details, nil
}

func (r *cultureRepository) UpdatePlantLayout(ctx context.Context, cp *domain.CulturePlant) error {
	query := `
		UPDATE culture_plants
		SET quantity_planted = $2, quantity_grown = $3,
		    row_position = $4, spacing_cm = $5, alignment = $6, notes = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		cp.ID, cp.QuantityPlanted, cp.QuantityGrown,
		cp.RowPosition, cp.SpacingCm, cp.Alignment, cp.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to update culture plant layout", zap.Int64("id", cp.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		return errors.ErrCultureNotFound
	}
	return nil
}

func (r *cultureRepository) ScheduleTreatment(ctx context.Context, ct *domain.CultureTreatment) error {
	query := `
		INSERT INTO culture_treatments (culture_id, treatment_id, start_date, frequency_days, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		ct.CultureID, ct.TreatmentID, ct.StartDate, ct.FrequencyDays, ct.Notes,
	).Scan(&ct.ID, &ct.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateLink
		}
		r.logger.Error("Failed to schedule treatment",
			zap.Int64("culture_id", ct.CultureID),
			zap.Int64("treatment_id", ct.TreatmentID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *cultureRepository) ScheduleCare(ctx context.Context, cc *domain.CultureCare) error {
	query := `
		INSERT INTO culture_cares (culture_id, care_action_id, scheduled_date, frequency_days, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		cc.CultureID, cc.CareActionID, cc.ScheduledDate, cc.FrequencyDays, cc.Notes,
	).Scan(&cc.ID, &cc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicateLink
		}
		r.logger.Error("Failed to schedule care",
			zap.Int64("culture_id", cc.CultureID),
			zap.Int64("care_action_id", cc.CareActionID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *cultureRepository) Treatments(ctx context.Context, cultureID int64) ([]*domain.CultureTreatment, error) {
	query := `
		SELECT id, culture_id, treatment_id, start_date, frequency_days, notes, created_at
		FROM culture_treatments
		WHERE culture_id = $1
		ORDER BY start_date
	`

	var treatments []*domain.CultureTreatment
	if err := r.db.SelectContext(ctx, &treatments, query, cultureID); err != nil {
		r.logger.Error("Failed to list culture treatments", zap.Int64("culture_id", cultureID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return treatments, nil
}

func (r *cultureRepository) Cares(ctx context.Context, cultureID int64) ([]*domain.CultureCare, error) {
	query := `
		SELECT id, culture_id, care_action_id, scheduled_date, frequency_days, notes, created_at
		FROM culture_cares
		WHERE culture_id = $1
		ORDER BY scheduled_date
	`

	var cares []*domain.CultureCare
	if err := r.db.SelectContext(ctx, &cares, query, cultureID); err != nil {
		r.logger.Error("Failed to list culture cares", zap.Int64("culture_id", cultureID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return cares, nil
}
