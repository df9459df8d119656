package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/usecase/dto"
)

// PlantUseCase handles business logic for the plant catalog
type PlantUseCase struct {
	plantRepo repository.PlantRepository
	pestRepo  repository.PestRepository
	careRepo  repository.CareRepository
	logger    *zap.Logger
}

// NewPlantUseCase creates a new PlantUseCase instance
func NewPlantUseCase(
	plantRepo repository.PlantRepository,
	pestRepo repository.PestRepository,
	careRepo repository.CareRepository,
	logger *zap.Logger,
) *PlantUseCase {
	return &PlantUseCase{
		plantRepo: plantRepo,
		pestRepo:  pestRepo,
		careRepo:  careRepo,
		logger:    logger,
	}
}

// List returns the whole plant catalog
func (uc *PlantUseCase) List(ctx context.Context) ([]*domain.Plant, error) {
	return uc.plantRepo.List(ctx)
}

// Get returns a plant with its pest and care links
func (uc *PlantUseCase) Get(ctx context.Context, id int64) (*dto.PlantDetailResponse, error) {
	plant, err := uc.plantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pests, err := uc.plantRepo.PestsForPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	cares, err := uc.plantRepo.CaresForPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	if pests == nil {
		pests = []*domain.PlantPestInfo{}
	}
	if cares == nil {
		cares = []*domain.PlantCareInfo{}
	}

	return &dto.PlantDetailResponse{Plant: plant, Pests: pests, Cares: cares}, nil
}

// Create adds a plant to the catalog
func (uc *PlantUseCase) Create(ctx context.Context, req *dto.CreatePlantRequest) (*domain.Plant, error) {
	plant := &domain.Plant{
		Name:              req.Name,
		ScientificName:    req.ScientificName,
		Description:       req.Description,
		Icon:              req.Icon,
		GrowthDays:        req.GrowthDays,
		HarvestPeriodDays: req.HarvestPeriodDays,
		Notes:             req.Notes,
	}

	if err := uc.plantRepo.Create(ctx, plant); err != nil {
		return nil, err
	}

	uc.logger.Info("Plant created", zap.Int64("id", plant.ID), zap.String("name", plant.Name))
	return plant, nil
}

// Update saves a catalog plant's fields
func (uc *PlantUseCase) Update(ctx context.Context, id int64, req *dto.UpdatePlantRequest) (*domain.Plant, error) {
	plant, err := uc.plantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plant.Name = req.Name
	plant.ScientificName = req.ScientificName
	plant.Description = req.Description
	if req.Icon != "" {
		plant.Icon = req.Icon
	}
	plant.GrowthDays = req.GrowthDays
	plant.HarvestPeriodDays = req.HarvestPeriodDays
	plant.Notes = req.Notes

	if err := uc.plantRepo.Update(ctx, plant); err != nil {
		return nil, err
	}

	return plant, nil
}

// LinkPest marks a plant as susceptible to a pest
func (uc *PlantUseCase) LinkPest(ctx context.Context, plantID int64, req *dto.LinkPlantPestRequest) (*domain.PlantPest, error) {
	if _, err := uc.plantRepo.GetByID(ctx, plantID); err != nil {
		return nil, err
	}
	if _, err := uc.pestRepo.GetByID(ctx, req.PestID); err != nil {
		return nil, err
	}

	link := &domain.PlantPest{
		PlantID:  plantID,
		PestID:   req.PestID,
		Severity: req.Severity,
		Notes:    req.Notes,
	}

	if err := uc.plantRepo.LinkPest(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// UnlinkPest removes a plant-pest link
func (uc *PlantUseCase) UnlinkPest(ctx context.Context, plantID, pestID int64) error {
	if _, err := uc.plantRepo.GetByID(ctx, plantID); err != nil {
		return err
	}
	return uc.plantRepo.UnlinkPest(ctx, plantID, pestID)
}

// LinkCare attaches a care recommendation to a plant. New cultures of this
// plant will get the recommendation into their calendar.
func (uc *PlantUseCase) LinkCare(ctx context.Context, plantID int64, req *dto.LinkPlantCareRequest) (*domain.PlantCare, error) {
	if _, err := uc.plantRepo.GetByID(ctx, plantID); err != nil {
		return nil, err
	}
	if _, err := uc.careRepo.GetByID(ctx, req.CareActionID); err != nil {
		return nil, err
	}

	link := &domain.PlantCare{
		PlantID:           plantID,
		CareActionID:      req.CareActionID,
		DaysAfterPlanting: req.DaysAfterPlanting,
		FrequencyDays:     req.FrequencyDays,
		Notes:             req.Notes,
	}

	if err := uc.plantRepo.LinkCare(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// UnlinkCare removes a care recommendation from a plant. Calendars already
// generated keep their events.
func (uc *PlantUseCase) UnlinkCare(ctx context.Context, plantID, careActionID int64) error {
	if _, err := uc.plantRepo.GetByID(ctx, plantID); err != nil {
		return err
	}
	return uc.plantRepo.UnlinkCare(ctx, plantID, careActionID)
}
