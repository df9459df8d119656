package repository

import (
	"context"

	"github.com/garden-planner/internal/domain"
)

// StatsRepository defines the aggregate count queries for the dashboard.
type StatsRepository interface {
	// GetSummary returns current garden-wide counts.
	GetSummary(ctx context.Context) (*domain.GardenSummary, error)
}
