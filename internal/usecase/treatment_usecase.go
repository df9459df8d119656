package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/usecase/dto"
)

// TreatmentUseCase handles business logic for the treatment catalog
type TreatmentUseCase struct {
	treatmentRepo repository.TreatmentRepository
	logger        *zap.Logger
}

// NewTreatmentUseCase creates a new TreatmentUseCase instance
func NewTreatmentUseCase(treatmentRepo repository.TreatmentRepository, logger *zap.Logger) *TreatmentUseCase {
	return &TreatmentUseCase{
		treatmentRepo: treatmentRepo,
		logger:        logger,
	}
}

// List returns the whole treatment catalog
func (uc *TreatmentUseCase) List(ctx context.Context) ([]*domain.Treatment, error) {
	return uc.treatmentRepo.List(ctx)
}

// Get returns one treatment
func (uc *TreatmentUseCase) Get(ctx context.Context, id int64) (*domain.Treatment, error) {
	return uc.treatmentRepo.GetByID(ctx, id)
}

// Create adds a treatment to the catalog. Treatments are ecological unless
// stated otherwise.
func (uc *TreatmentUseCase) Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*domain.Treatment, error) {
	isEcological := true
	if req.IsEcological != nil {
		isEcological = *req.IsEcological
	}

	treatment := &domain.Treatment{
		Name:              req.Name,
		Description:       req.Description,
		ApplicationMethod: req.ApplicationMethod,
		FrequencyDays:     req.FrequencyDays,
		IsEcological:      isEcological,
	}

	if err := uc.treatmentRepo.Create(ctx, treatment); err != nil {
		return nil, err
	}

	uc.logger.Info("Treatment created", zap.Int64("id", treatment.ID), zap.String("name", treatment.Name))
	return treatment, nil
}

// Update saves a catalog treatment's fields
func (uc *TreatmentUseCase) Update(ctx context.Context, id int64, req *dto.UpdateTreatmentRequest) (*domain.Treatment, error) {
	treatment, err := uc.treatmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	treatment.Name = req.Name
	treatment.Description = req.Description
	treatment.ApplicationMethod = req.ApplicationMethod
	treatment.FrequencyDays = req.FrequencyDays
	if req.IsEcological != nil {
		treatment.IsEcological = *req.IsEcological
	}

	if err := uc.treatmentRepo.Update(ctx, treatment); err != nil {
		return nil, err
	}

	return treatment, nil
}
