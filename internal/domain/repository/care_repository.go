package repository

import (
	"context"

	"github.com/garden-planner/internal/domain"
)

// CareRepository defines persistence for the care action catalog.
type CareRepository interface {
	List(ctx context.Context) ([]*domain.CareAction, error)
	GetByID(ctx context.Context, id int64) (*domain.CareAction, error)
	Create(ctx context.Context, action *domain.CareAction) error
	Update(ctx context.Context, action *domain.CareAction) error
}
