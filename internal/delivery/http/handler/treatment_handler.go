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

// TreatmentHandler handles treatment catalog requests
type TreatmentHandler struct {
	treatmentUC *usecase.TreatmentUseCase
	logger      *zap.Logger
}

// NewTreatmentHandler creates a new TreatmentHandler instance
func NewTreatmentHandler(treatmentUC *usecase.TreatmentUseCase, logger *zap.Logger) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUC: treatmentUC,
		logger:      logger,
	}
}

// List godoc
// @Summary List the treatment catalog
// @Tags Treatments
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Treatment}
// @Router /api/v1/treatments [get]
func (h *TreatmentHandler) List(c *fiber.Ctx) error {
	treatments, err := h.treatmentUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, treatments, &utils.Meta{Total: len(treatments)})
}

// Get godoc
// @Summary Get one treatment
// @Tags Treatments
// @Produce json
// @Param id path int true "Treatment ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Treatment}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/treatments/{id} [get]
func (h *TreatmentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	treatment, err := h.treatmentUC.Get(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, treatment, nil)
}

// Create godoc
// @Summary Add a treatment to the catalog
// @Tags Treatments
// @Accept json
// @Produce json
// @Param request body dto.CreateTreatmentRequest true "Treatment fields"
// @Success 201 {object} utils.SuccessResponse{data=domain.Treatment}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/treatments [post]
func (h *TreatmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTreatmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	treatment, err := h.treatmentUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, treatment)
}

// Update godoc
// @Summary Update a catalog treatment
// @Tags Treatments
// @Accept json
// @Produce json
// @Param id path int true "Treatment ID"
// @Param request body dto.UpdateTreatmentRequest true "Treatment fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.Treatment}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/treatments/{id} [put]
func (h *TreatmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateTreatmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	treatment, err := h.treatmentUC.Update(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, treatment, nil)
}
