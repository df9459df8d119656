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

// CalendarHandler handles care calendar requests
type CalendarHandler struct {
	calendarUC *usecase.CalendarUseCase
	logger     *zap.Logger
}

// NewCalendarHandler creates a new CalendarHandler instance
func NewCalendarHandler(calendarUC *usecase.CalendarUseCase, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarUC: calendarUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List calendar events within a date range
// @Description Returns scheduled treatments and care events. Defaults to the next 30 days.
// @Tags Calendar
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param include_completed query bool false "Include completed events"
// @Success 200 {object} utils.SuccessResponse{data=dto.CalendarResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/calendar [get]
func (h *CalendarHandler) List(c *fiber.Ctx) error {
	req := dto.CalendarRangeRequest{
		From:             c.Query("from"),
		To:               c.Query("to"),
		IncludeCompleted: c.QueryBool("include_completed"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.calendarUC.ListRange(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// Complete godoc
// @Summary Mark a calendar event as completed
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.CompleteEventRequest false "Completion date override"
// @Success 200 {object} utils.SuccessResponse{data=domain.CalendarEvent}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/calendar/{id}/complete [post]
func (h *CalendarHandler) Complete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.CompleteEventRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
		if err := validator.Validate(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	event, err := h.calendarUC.Complete(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, event, nil)
}
