package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/pkg/errors"
	"github.com/garden-planner/internal/usecase/dto"
)

// CareUseCase handles business logic for the care action catalog
type CareUseCase struct {
	careRepo repository.CareRepository
	logger   *zap.Logger
}

// NewCareUseCase creates a new CareUseCase instance
func NewCareUseCase(careRepo repository.CareRepository, logger *zap.Logger) *CareUseCase {
	return &CareUseCase{
		careRepo: careRepo,
		logger:   logger,
	}
}

// List returns the whole care action catalog
func (uc *CareUseCase) List(ctx context.Context) ([]*domain.CareAction, error) {
	return uc.careRepo.List(ctx)
}

// Get returns one care action
func (uc *CareUseCase) Get(ctx context.Context, id int64) (*domain.CareAction, error) {
	return uc.careRepo.GetByID(ctx, id)
}

// Create adds a care action to the catalog
func (uc *CareUseCase) Create(ctx context.Context, req *dto.CreateCareActionRequest) (*domain.CareAction, error) {
	if !domain.IsValidActionType(req.ActionType) {
		return nil, errors.ErrInvalidActionType
	}

	action := &domain.CareAction{
		Name:        req.Name,
		Description: req.Description,
		ActionType:  req.ActionType,
	}

	if err := uc.careRepo.Create(ctx, action); err != nil {
		return nil, err
	}

	uc.logger.Info("Care action created", zap.Int64("id", action.ID), zap.String("name", action.Name))
	return action, nil
}

// Update saves a care action's fields
func (uc *CareUseCase) Update(ctx context.Context, id int64, req *dto.UpdateCareActionRequest) (*domain.CareAction, error) {
	if !domain.IsValidActionType(req.ActionType) {
		return nil, errors.ErrInvalidActionType
	}

	action, err := uc.careRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action.Name = req.Name
	action.Description = req.Description
	action.ActionType = req.ActionType

	if err := uc.careRepo.Update(ctx, action); err != nil {
		return nil, err
	}

	return action, nil
}
