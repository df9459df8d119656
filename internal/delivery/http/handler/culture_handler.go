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

// CultureHandler handles planting requests
type CultureHandler struct {
	cultureUC  *usecase.CultureUseCase
	calendarUC *usecase.CalendarUseCase
	logger     *zap.Logger
}

// NewCultureHandler creates a new CultureHandler instance
func NewCultureHandler(cultureUC *usecase.CultureUseCase, calendarUC *usecase.CalendarUseCase, logger *zap.Logger) *CultureHandler {
	return &CultureHandler{
		cultureUC:  cultureUC,
		calendarUC: calendarUC,
		logger:     logger,
	}
}

// ListActive godoc
// @Summary List all growing cultures
// @Tags Cultures
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Culture}
// @Router /api/v1/cultures [get]
func (h *CultureHandler) ListActive(c *fiber.Ctx) error {
	cultures, err := h.cultureUC.ListActive(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, cultures, &utils.Meta{Total: len(cultures)})
}

// Get godoc
// @Summary Get a culture with plants and growth progress
// @Tags Cultures
// @Produce json
// @Param id path int true "Culture ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.CultureDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id} [get]
func (h *CultureHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	culture, err := h.cultureUC.Get(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, culture, nil)
}

// Create godoc
// @Summary Start a planting in a bed
// @Description Creates the culture with its plant rows and queues the care
// @Description calendar generation.
// @Tags Cultures
// @Accept json
// @Produce json
// @Param request body dto.CreateCultureRequest true "Culture with plants"
// @Success 201 {object} utils.SuccessResponse{data=domain.Culture}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cultures [post]
func (h *CultureHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCultureRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	culture, err := h.cultureUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, culture)
}

// Close godoc
// @Summary End a planting
// @Tags Cultures
// @Accept json
// @Produce json
// @Param id path int true "Culture ID"
// @Param request body dto.CloseCultureRequest false "Optional end date"
// @Success 200 {object} utils.SuccessResponse{data=domain.Culture}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id}/close [post]
func (h *CultureHandler) Close(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.CloseCultureRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		if err := validator.Validate(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	culture, err := h.cultureUC.Close(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, culture, nil)
}

// Delete godoc
// @Summary Delete a planting and everything scheduled for it
// @Tags Cultures
// @Produce json
// @Param id path int true "Culture ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id} [delete]
func (h *CultureHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.cultureUC.Delete(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// UpdatePlantLayout godoc
// @Summary Adjust quantities and layout of one culture plant
// @Tags Cultures
// @Accept json
// @Produce json
// @Param id path int true "Culture ID"
// @Param plant_id path int true "Culture plant row ID"
// @Param request body dto.UpdatePlantLayoutRequest true "Layout fields"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id}/plants/{plant_id} [put]
func (h *CultureHandler) UpdatePlantLayout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	plantRowID, err := c.ParamsInt("plant_id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdatePlantLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.cultureUC.UpdatePlantLayout(c.Context(), int64(id), int64(plantRowID), &req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"updated": true}, nil)
}

// ScheduleTreatment godoc
// @Summary Schedule a treatment for a culture
// @Tags Cultures
// @Accept json
// @Produce json
// @Param id path int true "Culture ID"
// @Param request body dto.ScheduleTreatmentRequest true "Treatment schedule"
// @Success 201 {object} utils.SuccessResponse{data=domain.CultureTreatment}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id}/treatments [post]
func (h *CultureHandler) ScheduleTreatment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.ScheduleTreatmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	ct, err := h.cultureUC.ScheduleTreatment(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, ct)
}

// ScheduleCare godoc
// @Summary Schedule a care action for a culture
// @Tags Cultures
// @Accept json
// @Produce json
// @Param id path int true "Culture ID"
// @Param request body dto.ScheduleCareRequest true "Care schedule"
// @Success 201 {object} utils.SuccessResponse{data=domain.CultureCare}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id}/cares [post]
func (h *CultureHandler) ScheduleCare(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.ScheduleCareRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	cc, err := h.cultureUC.ScheduleCare(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, cc)
}

// Calendar godoc
// @Summary List every calendar event of a culture
// @Tags Cultures
// @Produce json
// @Param id path int true "Culture ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.CalendarResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id}/calendar [get]
func (h *CultureHandler) Calendar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.calendarUC.ListForCulture(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// GenerateCalendar godoc
// @Summary Regenerate the calendar for a culture
// @Description Builds calendar events from the culture's plant care schedules. Normally done by the worker; this endpoint covers missed stream events.
// @Tags Cultures
// @Produce json
// @Param id path int true "Culture ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cultures/{id}/calendar/generate [post]
func (h *CultureHandler) GenerateCalendar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	count, err := h.calendarUC.GenerateForCulture(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"generated": count}, nil)
}
