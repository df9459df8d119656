package repository

import (
	"context"

	"github.com/garden-planner/internal/domain"
)

// TreatmentRepository defines persistence for the treatment catalog.
type TreatmentRepository interface {
	List(ctx context.Context) ([]*domain.Treatment, error)
	GetByID(ctx context.Context, id int64) (*domain.Treatment, error)
	Create(ctx context.Context, treatment *domain.Treatment) error
	Update(ctx context.Context, treatment *domain.Treatment) error
}
