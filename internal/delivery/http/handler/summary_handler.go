package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/pkg/utils"
	"github.com/garden-planner/internal/usecase"
)

// SummaryHandler handles garden summary requests
type SummaryHandler struct {
	summaryUC *usecase.SummaryUseCase
	logger    *zap.Logger
}

// NewSummaryHandler creates a new SummaryHandler instance
func NewSummaryHandler(summaryUC *usecase.SummaryUseCase, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: summaryUC,
		logger:    logger,
	}
}

// GetSummary godoc
// @Summary Garden-wide counters
// @Description Returns aggregate counts across beds, plants, cultures, pests, treatments and upcoming events
// @Tags Summary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.GardenSummary}
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.summaryUC.GetSummary(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, nil)
}
