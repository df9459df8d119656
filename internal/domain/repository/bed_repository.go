package repository

import (
	"context"

	"github.com/garden-planner/internal/domain"
)

// BedRepository defines persistence for raised beds.
type BedRepository interface {
	// List returns beds ordered by name; inactive beds only when requested.
	List(ctx context.Context, includeInactive bool) ([]*domain.Bed, error)

	// GetByID returns one bed.
	GetByID(ctx context.Context, id int64) (*domain.Bed, error)

	// Create inserts a bed and fills its ID.
	Create(ctx context.Context, bed *domain.Bed) error

	// Update saves a bed's descriptive fields.
	Update(ctx context.Context, bed *domain.Bed) error

	// Deactivate marks a bed inactive. Beds are never deleted.
	Deactivate(ctx context.Context, id int64) error
}
