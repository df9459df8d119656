package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/pkg/errors"
	"github.com/garden-planner/internal/pkg/utils"
	"github.com/garden-planner/internal/pkg/validator"
	"github.com/garden-planner/internal/usecase"
	"github.com/garden-planner/internal/usecase/dto"
)

// CareHandler handles care action catalog requests
type CareHandler struct {
	careUC *usecase.CareUseCase
	logger *zap.Logger
}

// NewCareHandler creates a new CareHandler instance
func NewCareHandler(careUC *usecase.CareUseCase, logger *zap.Logger) *CareHandler {
	return &CareHandler{
		careUC: careUC,
		logger: logger,
	}
}

// List godoc
// @Summary List the care action catalog
// @Tags CareActions
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CareAction}
// @Router /api/v1/care-actions [get]
func (h *CareHandler) List(c *fiber.Ctx) error {
	actions, err := h.careUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, actions, &utils.Meta{Total: len(actions)})
}

// Get godoc
// @Summary Get one care action
// @Tags CareActions
// @Produce json
// @Param id path int true "Care action ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.CareAction}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/care-actions/{id} [get]
func (h *CareHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	action, err := h.careUC.Get(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, action, nil)
}

// Create godoc
// @Summary Add a care action to the catalog
// @Tags CareActions
// @Accept json
// @Produce json
// @Param request body dto.CreateCareActionRequest true "Care action fields"
// @Success 201 {object} utils.SuccessResponse{data=domain.CareAction}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/care-actions [post]
func (h *CareHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCareActionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	action, err := h.careUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, action)
}

// Update godoc
// @Summary Update a catalog care action
// @Tags CareActions
// @Accept json
// @Produce json
// @Param id path int true "Care action ID"
// @Param request body dto.UpdateCareActionRequest true "Care action fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.CareAction}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/care-actions/{id} [put]
func (h *CareHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateCareActionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	action, err := h.careUC.Update(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, action, nil)
}
