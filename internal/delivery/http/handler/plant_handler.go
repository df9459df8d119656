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

// PlantHandler handles plant catalog requests
type PlantHandler struct {
	plantUC *usecase.PlantUseCase
	logger  *zap.Logger
}

// NewPlantHandler creates a new PlantHandler instance
func NewPlantHandler(plantUC *usecase.PlantUseCase, logger *zap.Logger) *PlantHandler {
	return &PlantHandler{
		plantUC: plantUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List the plant catalog
// @Tags Plants
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Plant}
// @Router /api/v1/plants [get]
func (h *PlantHandler) List(c *fiber.Ctx) error {
	plants, err := h.plantUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, plants, &utils.Meta{Total: len(plants)})
}

// Get godoc
// @Summary Get a plant with its pest and care links
// @Tags Plants
// @Produce json
// @Param id path int true "Plant ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlantDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/plants/{id} [get]
func (h *PlantHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	plant, err := h.plantUC.Get(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, plant, nil)
}

// Create godoc
// @Summary Add a plant to the catalog
// @Tags Plants
// @Accept json
// @Produce json
// @Param request body dto.CreatePlantRequest true "Plant fields"
// @Success 201 {object} utils.SuccessResponse{data=domain.Plant}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/plants [post]
func (h *PlantHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	plant, err := h.plantUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, plant)
}

// Update godoc
// @Summary Update a catalog plant
// @Tags Plants
// @Accept json
// @Produce json
// @Param id path int true "Plant ID"
// @Param request body dto.UpdatePlantRequest true "Plant fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.Plant}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/plants/{id} [put]
func (h *PlantHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.UpdatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	plant, err := h.plantUC.Update(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, plant, nil)
}

// LinkPest godoc
// @Summary Mark a plant as susceptible to a pest
// @Tags Plants
// @Accept json
// @Produce json
// @Param id path int true "Plant ID"
// @Param request body dto.LinkPlantPestRequest true "Pest link"
// @Success 201 {object} utils.SuccessResponse{data=domain.PlantPest}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/plants/{id}/pests [post]
func (h *PlantHandler) LinkPest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.LinkPlantPestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	link, err := h.plantUC.LinkPest(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, link)
}

// UnlinkPest godoc
// @Summary Remove a pest from a plant
// @Tags Plants
// @Produce json
// @Param id path int true "Plant ID"
// @Param pest_id path int true "Pest ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/plants/{id}/pests/{pest_id} [delete]
func (h *PlantHandler) UnlinkPest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	pestID, err := c.ParamsInt("pest_id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.plantUC.UnlinkPest(c.Context(), int64(id), int64(pestID)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"unlinked": true}, nil)
}

// LinkCare godoc
// @Summary Attach a care recommendation to a plant
// @Tags Plants
// @Accept json
// @Produce json
// @Param id path int true "Plant ID"
// @Param request body dto.LinkPlantCareRequest true "Care link"
// @Success 201 {object} utils.SuccessResponse{data=domain.PlantCare}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/plants/{id}/cares [post]
func (h *PlantHandler) LinkCare(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	var req dto.LinkPlantCareRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	link, err := h.plantUC.LinkCare(c.Context(), int64(id), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, link)
}

// UnlinkCare godoc
// @Summary Remove a care recommendation from a plant
// @Tags Plants
// @Produce json
// @Param id path int true "Plant ID"
// @Param care_id path int true "Care action ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/plants/{id}/cares/{care_id} [delete]
func (h *PlantHandler) UnlinkCare(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	careID, err := c.ParamsInt("care_id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.plantUC.UnlinkCare(c.Context(), int64(id), int64(careID)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"unlinked": true}, nil)
}
