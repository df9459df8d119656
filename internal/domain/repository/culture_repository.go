package repository

import (
	"context"
	"time"

	"github.com/garden-planner/internal/domain"
)

// CultureRepository defines persistence for plantings and their plants.
type CultureRepository interface {
	// ListActive returns active cultures, newest first.
	ListActive(ctx context.Context) ([]*domain.Culture, error)

	// GetByID returns one culture.
	GetByID(ctx context.Context, id int64) (*domain.Culture, error)

	// ListByBed returns a bed's cultures, optionally including closed ones.
	ListByBed(ctx context.Context, bedID int64, includeInactive bool) ([]*domain.Culture, error)

	// Create inserts the culture and its plant rows in one transaction
	// and fills the generated IDs.
	Create(ctx context.Context, culture *domain.Culture, plants []*domain.CulturePlant) error

	// Close marks a culture inactive with the given end date.
	Close(ctx context.Context, id int64, endDate time.Time) error

	// Delete removes a culture and everything hanging off it.
	Delete(ctx context.Context, id int64) error

	// PlantsForCulture returns the culture's plants joined with the catalog.
	PlantsForCulture(ctx context.Context, cultureID int64) ([]*domain.CulturePlantDetail, error)

	// UpdatePlantLayout saves quantity and layout fields of one culture plant.
	UpdatePlantLayout(ctx context.Context, cp *domain.CulturePlant) error

	// ScheduleTreatment attaches a treatment schedule to a culture.
	ScheduleTreatment(ctx context.Context, ct *domain.CultureTreatment) error

	// ScheduleCare attaches a care schedule to a culture.
	ScheduleCare(ctx context.Context, cc *domain.CultureCare) error

	// Treatments returns a culture's scheduled treatments.
	Treatments(ctx context.Context, cultureID int64) ([]*domain.CultureTreatment, error)

	// Cares returns a culture's scheduled care actions.
	Cares(ctx context.Context, cultureID int64) ([]*domain.CultureCare, error)
}
