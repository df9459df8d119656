package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/usecase/dto"
)

// BedUseCase handles business logic for raised beds
type BedUseCase struct {
	bedRepo     repository.BedRepository
	cultureRepo repository.CultureRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
}

// NewBedUseCase creates a new BedUseCase instance
func NewBedUseCase(
	bedRepo repository.BedRepository,
	cultureRepo repository.CultureRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *BedUseCase {
	return &BedUseCase{
		bedRepo:     bedRepo,
		cultureRepo: cultureRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// List returns raised beds, active ones by default
func (uc *BedUseCase) List(ctx context.Context, includeInactive bool) ([]*domain.Bed, error) {
	return uc.bedRepo.List(ctx, includeInactive)
}

// Get returns a bed together with its active cultures and their plants
func (uc *BedUseCase) Get(ctx context.Context, id int64) (*dto.BedDetailResponse, error) {
	bed, err := uc.bedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cultures, err := uc.cultureRepo.ListByBed(ctx, id, false)
	if err != nil {
		return nil, err
	}

	resp := &dto.BedDetailResponse{Bed: bed, Cultures: []*dto.CultureDetailResponse{}}
	today := time.Now()
	for _, culture := range cultures {
		detail, err := uc.cultureDetail(ctx, culture, today)
		if err != nil {
			return nil, err
		}
		resp.Cultures = append(resp.Cultures, detail)
	}

	return resp, nil
}

// History returns all cultures ever grown in a bed, closed ones included
func (uc *BedUseCase) History(ctx context.Context, id int64) ([]*domain.Culture, error) {
	if _, err := uc.bedRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.cultureRepo.ListByBed(ctx, id, true)
}

// Create registers a new raised bed
func (uc *BedUseCase) Create(ctx context.Context, req *dto.CreateBedRequest) (*domain.Bed, error) {
	bed := &domain.Bed{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}

	if err := uc.bedRepo.Create(ctx, bed); err != nil {
		return nil, err
	}

	uc.logger.Info("Bed created", zap.Int64("id", bed.ID), zap.String("name", bed.Name))
	return bed, nil
}

// Update saves a bed's fields
func (uc *BedUseCase) Update(ctx context.Context, id int64, req *dto.UpdateBedRequest) (*domain.Bed, error) {
	bed, err := uc.bedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bed.Name = req.Name
	bed.Description = req.Description
	bed.Location = req.Location

	if err := uc.bedRepo.Update(ctx, bed); err != nil {
		return nil, err
	}

	return bed, nil
}

// Deactivate retires a bed without deleting its history
func (uc *BedUseCase) Deactivate(ctx context.Context, id int64) error {
	if err := uc.bedRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	if err := uc.cacheRepo.InvalidateDiagrams(ctx, id); err != nil {
		uc.logger.Warn("Failed to invalidate diagram cache", zap.Int64("bed_id", id), zap.Error(err))
	}

	uc.logger.Info("Bed deactivated", zap.Int64("id", id))
	return nil
}

func (uc *BedUseCase) cultureDetail(ctx context.Context, culture *domain.Culture, today time.Time) (*dto.CultureDetailResponse, error) {
	plants, err := uc.cultureRepo.PlantsForCulture(ctx, culture.ID)
	if err != nil {
		return nil, err
	}

	detail := &dto.CultureDetailResponse{Culture: culture, Plants: []dto.CulturePlantView{}}
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
