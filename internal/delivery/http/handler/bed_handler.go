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

// BedHandler handles raised bed requests
type BedHandler struct {
	bedUC     *usecase.BedUseCase
	diagramUC *usecase.DiagramUseCase
	logger    *zap.Logger
}

// NewBedHandler creates a new BedHandler instance
func NewBedHandler(bedUC *usecase.BedUseCase, diagramUC *usecase.DiagramUseCase, logger *zap.Logger) *BedHandler {
	return &BedHandler{
		bedUC:     bedUC,
		diagramUC: diagramUC,
		logger:    logger,
	}
}

// List godoc
// @Summary List raised beds
// @Tags Beds
// @Produce json
// @Param include_inactive query bool false "Include retired beds"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Bed}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/beds [get]
func (h *BedHandler) List(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("include_inactive", false)

	beds, err := h.bedUC.List(c.Context(), includeInactive)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, beds, &utils.Meta{Total: len(beds)})
}

// Get godoc
// @Summary Get a bed with its active cultures
// @Tags Beds
// @Produce json
// @Param id path int true "Bed ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.BedDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/beds/{id} [get]
func (h *BedHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	bed, err := h.bedUC.Get(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, bed, nil)
}

// History godoc
// @Summary List every culture ever grown in a bed
// @Tags Beds
// @Produce json
// @Param id path int true "Bed ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Culture}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/beds/{id}/history [get]
func (h *BedHandler) History(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	cultures, err := h.bedUC.History(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, cultures, &utils.Meta{Total: len(cultures)})
}

// Create godoc
// @Summary Register a raised bed
// @Tags Beds
// @Accept json
// @Produce json
// @Param request body dto.CreateBedRequest true "Bed fields"
// @Success 201 {object} utils.SuccessResponse{data=domain.Bed}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/beds [post]
func (h *BedHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBedRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	bed, err := h.bedUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, bed)
}

// Update godoc
// @Summary Update a raised bed
// @Tags Beds
// @Accept json
// @Produce json
// @Param id path int true "Bed ID"
// @Param request body dto.UpdateBedRequest true "Bed fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.Bed}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/beds/{id} [put]
func (h *BedHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdateBedRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	bed, err := h.bedUC.Update(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, bed, nil)
}

// Deactivate godoc
// @Summary Retire a bed, keeping its history
// @Tags Beds
// @Produce json
// @Param id path int true "Bed ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/beds/{id} [delete]
func (h *BedHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.bedUC.Deactivate(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deactivated": true}, nil)
}

// Diagram godoc
// @Summary Render the bed's planting diagram
// @Description Returns the computed plant positions of every active culture,
// @Description as coordinate JSON or as an SVG image.
// @Tags Beds
// @Produce json
// @Produce image/svg+xml
// @Param id path int true "Bed ID"
// @Param format query string false "json or svg" default(json)
// @Success 200 {object} layout.Rendering
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/beds/{id}/diagram [get]
func (h *BedHandler) Diagram(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	format := c.Query("format", usecase.DiagramFormatJSON)

	data, err := h.diagramUC.Render(c.Context(), int64(id), format)
	if err != nil {
		return utils.SendError(c, err)
	}

	if format == usecase.DiagramFormatSVG {
		c.Set(fiber.HeaderContentType, "image/svg+xml")
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return c.Send(data)
}
