package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/usecase/dto"
)

// PestUseCase handles business logic for the pest catalog
type PestUseCase struct {
	pestRepo      repository.PestRepository
	treatmentRepo repository.TreatmentRepository
	logger        *zap.Logger
}

// NewPestUseCase creates a new PestUseCase instance
func NewPestUseCase(
	pestRepo repository.PestRepository,
	treatmentRepo repository.TreatmentRepository,
	logger *zap.Logger,
) *PestUseCase {
	return &PestUseCase{
		pestRepo:      pestRepo,
		treatmentRepo: treatmentRepo,
		logger:        logger,
	}
}

// List returns the whole pest catalog
func (uc *PestUseCase) List(ctx context.Context) ([]*domain.Pest, error) {
	return uc.pestRepo.List(ctx)
}

// Get returns a pest with the treatments effective against it
func (uc *PestUseCase) Get(ctx context.Context, id int64) (*dto.PestDetailResponse, error) {
	pest, err := uc.pestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	treatments, err := uc.pestRepo.TreatmentsForPest(ctx, id)
	if err != nil {
		return nil, err
	}
	if treatments == nil {
		treatments = []*domain.PestTreatmentInfo{}
	}

	return &dto.PestDetailResponse{Pest: pest, Treatments: treatments}, nil
}

// Create adds a pest to the catalog
func (uc *PestUseCase) Create(ctx context.Context, req *dto.CreatePestRequest) (*domain.Pest, error) {
	pest := &domain.Pest{
		Name:           req.Name,
		ScientificName: req.ScientificName,
		Description:    req.Description,
		Symptoms:       req.Symptoms,
	}

	if err := uc.pestRepo.Create(ctx, pest); err != nil {
		return nil, err
	}

	uc.logger.Info("Pest created", zap.Int64("id", pest.ID), zap.String("name", pest.Name))
	return pest, nil
}

// Update saves a catalog pest's fields
func (uc *PestUseCase) Update(ctx context.Context, id int64, req *dto.UpdatePestRequest) (*domain.Pest, error) {
	pest, err := uc.pestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pest.Name = req.Name
	pest.ScientificName = req.ScientificName
	pest.Description = req.Description
	pest.Symptoms = req.Symptoms

	if err := uc.pestRepo.Update(ctx, pest); err != nil {
		return nil, err
	}

	return pest, nil
}

// LinkTreatment marks a treatment as effective against a pest
func (uc *PestUseCase) LinkTreatment(ctx context.Context, pestID int64, req *dto.LinkPestTreatmentRequest) (*domain.PestTreatment, error) {
	if _, err := uc.pestRepo.GetByID(ctx, pestID); err != nil {
		return nil, err
	}
	if _, err := uc.treatmentRepo.GetByID(ctx, req.TreatmentID); err != nil {
		return nil, err
	}

	link := &domain.PestTreatment{
		PestID:        pestID,
		TreatmentID:   req.TreatmentID,
		Effectiveness: req.Effectiveness,
		Notes:         req.Notes,
	}

	if err := uc.pestRepo.LinkTreatment(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// UnlinkTreatment removes a pest-treatment link
func (uc *PestUseCase) UnlinkTreatment(ctx context.Context, pestID, treatmentID int64) error {
	if _, err := uc.pestRepo.GetByID(ctx, pestID); err != nil {
		return err
	}
	return uc.pestRepo.UnlinkTreatment(ctx, pestID, treatmentID)
}
