package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/pkg/errors"
	"github.com/garden-planner/internal/usecase/dto"
)

const dateLayout = "2006-01-02"

// CultureUseCase handles business logic for plantings
type CultureUseCase struct {
	cultureRepo   repository.CultureRepository
	bedRepo       repository.BedRepository
	plantRepo     repository.PlantRepository
	treatmentRepo repository.TreatmentRepository
	careRepo      repository.CareRepository
	calendarRepo  repository.CalendarRepository
	cacheRepo     repository.CacheRepository
	streamRepo    repository.StreamRepository
	logger        *zap.Logger
}

// NewCultureUseCase creates a new CultureUseCase instance
func NewCultureUseCase(
	cultureRepo repository.CultureRepository,
	bedRepo repository.BedRepository,
	plantRepo repository.PlantRepository,
	treatmentRepo repository.TreatmentRepository,
	careRepo repository.CareRepository,
	calendarRepo repository.CalendarRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *CultureUseCase {
	return &CultureUseCase{
		cultureRepo:   cultureRepo,
		bedRepo:       bedRepo,
		plantRepo:     plantRepo,
		treatmentRepo: treatmentRepo,
		careRepo:      careRepo,
		calendarRepo:  calendarRepo,
		cacheRepo:     cacheRepo,
		streamRepo:    streamRepo,
		logger:        logger,
	}
}

// ListActive returns all currently growing cultures
func (uc *CultureUseCase) ListActive(ctx context.Context) ([]*domain.Culture, error) {
	return uc.cultureRepo.ListActive(ctx)
}

// Get returns a culture with its plants, growth progress and the
// treatments and cares scheduled on it
func (uc *CultureUseCase) Get(ctx context.Context, id int64) (*dto.CultureDetailResponse, error) {
	culture, err := uc.cultureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plants, err := uc.cultureRepo.PlantsForCulture(ctx, id)
	if err != nil {
		return nil, err
	}

	treatments, err := uc.cultureRepo.Treatments(ctx, id)
	if err != nil {
		return nil, err
	}

	cares, err := uc.cultureRepo.Cares(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.CultureDetailResponse{
		Culture:    culture,
		Plants:     []dto.CulturePlantView{},
		Treatments: treatments,
		Cares:      cares,
	}
	today := time.Now()
	for _, p := range plants {
		growthDays := 0
		if p.Plant.GrowthDays != nil {
			growthDays = *p.Plant.GrowthDays
		}
		detail.Plants = append(detail.Plants, dto.CulturePlantView{
			ID:              p.ID,
			Plant:           p.Plant,
			QuantityPlanted: p.QuantityPlanted,
			QuantityGrown:   p.QuantityGrown,
			RowPosition:     p.RowPosition,
			SpacingCm:       p.SpacingCm,
			Alignment:       p.Alignment,
			Notes:           p.Notes,
			GrowthProgress:  culture.GrowthProgress(growthDays, today),
		})
	}

	return detail, nil
}

// Create starts a planting in a bed and notifies the calendar worker.
// The bed and every referenced plant must exist.
func (uc *CultureUseCase) Create(ctx context.Context, req *dto.CreateCultureRequest) (*domain.Culture, error) {
	bed, err := uc.bedRepo.GetByID(ctx, req.BedID)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, errors.ErrInvalidDateRange
	}

	startType := req.StartType
	if startType == "" {
		startType = domain.StartTypeSeed
	}
	if !domain.IsValidStartType(startType) {
		return nil, errors.ErrInvalidStartType
	}

	plants := make([]*domain.CulturePlant, 0, len(req.Plants))
	for _, p := range req.Plants {
		if _, err := uc.plantRepo.GetByID(ctx, p.PlantID); err != nil {
			return nil, err
		}
		if p.Quantity <= 0 {
			return nil, errors.ErrInvalidQuantity
		}
		if !domain.IsStandardSpacing(p.SpacingCm) {
			return nil, errors.ErrInvalidSpacing
		}

		rowPosition := p.RowPosition
		if rowPosition == "" {
			rowPosition = "middle"
		}
		alignment := p.Alignment
		if alignment == "" {
			alignment = "center"
		}

		plants = append(plants, &domain.CulturePlant{
			PlantID:         p.PlantID,
			QuantityPlanted: p.Quantity,
			RowPosition:     rowPosition,
			SpacingCm:       p.SpacingCm,
			Alignment:       alignment,
			Notes:           p.Notes,
		})
	}

	culture := &domain.Culture{
		BedID:     bed.ID,
		StartDate: startDate,
		StartType: startType,
		Notes:     req.Notes,
	}

	if err := uc.cultureRepo.Create(ctx, culture, plants); err != nil {
		return nil, err
	}

	uc.invalidateDiagrams(ctx, bed.ID)

	event := domain.CultureCreatedEvent{
		EventID:   uuid.New(),
		CultureID: culture.ID,
		BedID:     bed.ID,
		StartDate: startDate,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamCultureCreated, event); err != nil {
		// Planting succeeded; the calendar just stays empty until retry
		uc.logger.Warn("Failed to publish culture created event",
			zap.Int64("culture_id", culture.ID),
			zap.Error(err))
	}

	uc.logger.Info("Culture created",
		zap.Int64("id", culture.ID),
		zap.Int64("bed_id", bed.ID),
		zap.Int("plants", len(plants)))
	return culture, nil
}

// Close ends a planting, freeing the bed for a new one
func (uc *CultureUseCase) Close(ctx context.Context, id int64, req *dto.CloseCultureRequest) (*domain.Culture, error) {
	endDate := time.Now()
	if req != nil && req.EndDate != "" {
		parsed, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, errors.ErrInvalidDateRange
		}
		endDate = parsed
	}

	culture, err := uc.cultureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if endDate.Before(culture.StartDate) {
		return nil, errors.ErrInvalidDateRange
	}

	if err := uc.cultureRepo.Close(ctx, id, endDate); err != nil {
		return nil, err
	}

	uc.invalidateDiagrams(ctx, culture.BedID)

	culture.IsActive = false
	culture.EndDate = &endDate
	return culture, nil
}

// Delete removes a culture entirely, including its plants, schedules and
// calendar events. Closing keeps the history; delete is for mistakes.
func (uc *CultureUseCase) Delete(ctx context.Context, id int64) error {
	culture, err := uc.cultureRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.cultureRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateDiagrams(ctx, culture.BedID)

	uc.logger.Info("Culture deleted",
		zap.Int64("id", id),
		zap.Int64("bed_id", culture.BedID))
	return nil
}

// UpdatePlantLayout adjusts quantities and layout of one culture plant
func (uc *CultureUseCase) UpdatePlantLayout(ctx context.Context, cultureID, culturePlantID int64, req *dto.UpdatePlantLayoutRequest) error {
	culture, err := uc.cultureRepo.GetByID(ctx, cultureID)
	if err != nil {
		return err
	}

	if !domain.IsStandardSpacing(req.SpacingCm) {
		return errors.ErrInvalidSpacing
	}
	if req.QuantityPlanted <= 0 || req.QuantityGrown < 0 {
		return errors.ErrInvalidQuantity
	}

	rowPosition := req.RowPosition
	if rowPosition == "" {
		rowPosition = "middle"
	}
	alignment := req.Alignment
	if alignment == "" {
		alignment = "center"
	}

	cp := &domain.CulturePlant{
		ID:              culturePlantID,
		CultureID:       cultureID,
		QuantityPlanted: req.QuantityPlanted,
		QuantityGrown:   req.QuantityGrown,
		RowPosition:     rowPosition,
		SpacingCm:       req.SpacingCm,
		Alignment:       alignment,
		Notes:           req.Notes,
	}

	if err := uc.cultureRepo.UpdatePlantLayout(ctx, cp); err != nil {
		return err
	}

	uc.invalidateDiagrams(ctx, culture.BedID)
	return nil
}

// ScheduleTreatment attaches a treatment to an active culture and puts its
// first application on the calendar
func (uc *CultureUseCase) ScheduleTreatment(ctx context.Context, cultureID int64, req *dto.ScheduleTreatmentRequest) (*domain.CultureTreatment, error) {
	culture, err := uc.cultureRepo.GetByID(ctx, cultureID)
	if err != nil {
		return nil, err
	}
	if !culture.IsActive {
		return nil, errors.ErrCultureClosed
	}

	treatment, err := uc.treatmentRepo.GetByID(ctx, req.TreatmentID)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, errors.ErrInvalidDateRange
	}

	ct := &domain.CultureTreatment{
		CultureID:     cultureID,
		TreatmentID:   treatment.ID,
		StartDate:     startDate,
		FrequencyDays: req.FrequencyDays,
		Notes:         req.Notes,
	}

	if err := uc.cultureRepo.ScheduleTreatment(ctx, ct); err != nil {
		return nil, err
	}

	treatmentID := treatment.ID
	event := &domain.CalendarEvent{
		CultureID:     cultureID,
		TreatmentID:   &treatmentID,
		ScheduledDate: startDate,
		Notes:         req.Notes,
	}
	if err := uc.calendarRepo.InsertBatch(ctx, []*domain.CalendarEvent{event}); err != nil {
		uc.logger.Warn("Failed to insert treatment event",
			zap.Int64("culture_id", cultureID),
			zap.Error(err))
	}

	return ct, nil
}

// ScheduleCare attaches a care action to an active culture and puts it on
// the calendar
func (uc *CultureUseCase) ScheduleCare(ctx context.Context, cultureID int64, req *dto.ScheduleCareRequest) (*domain.CultureCare, error) {
	culture, err := uc.cultureRepo.GetByID(ctx, cultureID)
	if err != nil {
		return nil, err
	}
	if !culture.IsActive {
		return nil, errors.ErrCultureClosed
	}

	action, err := uc.careRepo.GetByID(ctx, req.CareActionID)
	if err != nil {
		return nil, err
	}

	scheduledDate, err := time.Parse(dateLayout, req.ScheduledDate)
	if err != nil {
		return nil, errors.ErrInvalidDateRange
	}

	cc := &domain.CultureCare{
		CultureID:     cultureID,
		CareActionID:  action.ID,
		ScheduledDate: scheduledDate,
		FrequencyDays: req.FrequencyDays,
		Notes:         req.Notes,
	}

	if err := uc.cultureRepo.ScheduleCare(ctx, cc); err != nil {
		return nil, err
	}

	actionID := action.ID
	event := &domain.CalendarEvent{
		CultureID:     cultureID,
		CareActionID:  &actionID,
		ScheduledDate: scheduledDate,
		Notes:         req.Notes,
	}
	if err := uc.calendarRepo.InsertBatch(ctx, []*domain.CalendarEvent{event}); err != nil {
		uc.logger.Warn("Failed to insert care event",
			zap.Int64("culture_id", cultureID),
			zap.Error(err))
	}

	return cc, nil
}

func (uc *CultureUseCase) invalidateDiagrams(ctx context.Context, bedID int64) {
	if err := uc.cacheRepo.InvalidateDiagrams(ctx, bedID); err != nil {
		uc.logger.Warn("Failed to invalidate diagram cache", zap.Int64("bed_id", bedID), zap.Error(err))
	}
}
