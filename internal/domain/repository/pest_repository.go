package repository

import (
	"context"

	"github.com/garden-planner/internal/domain"
)

// PestRepository defines persistence for the pest catalog and its links.
type PestRepository interface {
	List(ctx context.Context) ([]*domain.Pest, error)
	GetByID(ctx context.Context, id int64) (*domain.Pest, error)
	Create(ctx context.Context, pest *domain.Pest) error
	Update(ctx context.Context, pest *domain.Pest) error

	// LinkTreatment marks a treatment as effective against the pest.
	LinkTreatment(ctx context.Context, link *domain.PestTreatment) error

	// UnlinkTreatment removes a pest-treatment link.
	UnlinkTreatment(ctx context.Context, pestID, treatmentID int64) error

	// TreatmentsForPest returns the treatments effective against a pest.
	TreatmentsForPest(ctx context.Context, pestID int64) ([]*domain.PestTreatmentInfo, error)
}
