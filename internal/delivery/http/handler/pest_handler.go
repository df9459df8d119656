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

// PestHandler handles pest catalog requests
type PestHandler struct {
	pestUC *usecase.PestUseCase
	logger *zap.Logger
}

// NewPestHandler creates a new PestHandler instance
func NewPestHandler(pestUC *usecase.PestUseCase, logger *zap.Logger) *PestHandler {
	return &PestHandler{
		pestUC: pestUC,
		logger: logger,
	}
}

// List godoc
// @Summary List the pest catalog
// @Tags Pests
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Pest}
// @Router /api/v1/pests [get]
func (h *PestHandler) List(c *fiber.Ctx) error {
	pests, err := h.pestUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pests, &utils.Meta{Total: len(pests)})
}

// Get godoc
// @Summary Get a pest with its effective treatments
// @Tags Pests
// @Produce json
// @Param id path int true "Pest ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.PestDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/pests/{id} [get]
func (h *PestHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	pest, err := h.pestUC.Get(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pest, nil)
}

// Create godoc
// @Summary Add a pest to the catalog
// @Tags Pests
// @Accept json
// @Produce json
// @Param request body dto.CreatePestRequest true "Pest fields"
// @Success 201 {object} utils.SuccessResponse{data=domain.Pest}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/pests [post]
func (h *PestHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	pest, err := h.pestUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, pest)
}

// Update godoc
// @Summary Update a catalog pest
// @Tags Pests
// @Accept json
// @Produce json
// @Param id path int true "Pest ID"
// @Param request body dto.UpdatePestRequest true "Pest fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.Pest}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/pests/{id} [put]
func (h *PestHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdatePestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	pest, err := h.pestUC.Update(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, pest, nil)
}

// LinkTreatment godoc
// @Summary Mark a treatment as effective against a pest
// @Tags Pests
// @Accept json
// @Produce json
// @Param id path int true "Pest ID"
// @Param request body dto.LinkPestTreatmentRequest true "Treatment link"
// @Success 201 {object} utils.SuccessResponse{data=domain.PestTreatment}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/pests/{id}/treatments [post]
func (h *PestHandler) LinkTreatment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.LinkPestTreatmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	link, err := h.pestUC.LinkTreatment(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, link)
}

// UnlinkTreatment godoc
// @Summary Remove a treatment from a pest
// @Tags Pests
// @Produce json
// @Param id path int true "Pest ID"
// @Param treatment_id path int true "Treatment ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/pests/{id}/treatments/{treatment_id} [delete]
func (h *PestHandler) UnlinkTreatment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	treatmentID, err := c.ParamsInt("treatment_id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.pestUC.UnlinkTreatment(c.Context(), int64(id), int64(treatmentID)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"unlinked": true}, nil)
}
