package repository

import (
	"context"

	"github.com/garden-planner/internal/domain"
)

// PlantRepository defines persistence for the plant catalog and its links.
type PlantRepository interface {
	// List returns the whole catalog ordered by name.
	List(ctx context.Context) ([]*domain.Plant, error)

	// GetByID returns one plant.
	GetByID(ctx context.Context, id int64) (*domain.Plant, error)

	// Create inserts a plant and fills its ID.
	Create(ctx context.Context, plant *domain.Plant) error

	// Update saves a plant's fields.
	Update(ctx context.Context, plant *domain.Plant) error

	// LinkPest links the plant to a pest it is susceptible to.
	LinkPest(ctx context.Context, link *domain.PlantPest) error

	// UnlinkPest removes a plant-pest link.
	UnlinkPest(ctx context.Context, plantID, pestID int64) error

	// PestsForPlant returns the pests affecting a plant with severity.
	PestsForPlant(ctx context.Context, plantID int64) ([]*domain.PlantPestInfo, error)

	// LinkCare links the plant to a recommended care action with timing.
	LinkCare(ctx context.Context, link *domain.PlantCare) error

	// UnlinkCare removes a plant-care link.
	UnlinkCare(ctx context.Context, plantID, careActionID int64) error

	// CaresForPlant returns the plant's care recommendations.
	CaresForPlant(ctx context.Context, plantID int64) ([]*domain.PlantCareInfo, error)

	// CareLinks returns the raw plant-care rows used by calendar generation.
	CareLinks(ctx context.Context, plantID int64) ([]*domain.PlantCare, error)
}
