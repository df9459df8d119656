package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
)

const (
	summaryCacheKey = "summary:current"
	summaryCacheTTL = 5 * time.Minute
)

// SummaryUseCase serves the dashboard counters, cached briefly
type SummaryUseCase struct {
	statsRepo repository.StatsRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewSummaryUseCase creates a new SummaryUseCase instance
func NewSummaryUseCase(
	statsRepo repository.StatsRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *SummaryUseCase {
	return &SummaryUseCase{
		statsRepo: statsRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetSummary returns garden-wide counts, using the cache when possible
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*domain.GardenSummary, error) {
	cached, err := uc.cacheRepo.Get(ctx, summaryCacheKey)
	if err != nil {
		uc.logger.Warn("Failed to get summary from cache", zap.Error(err))
	}
	if cached != nil {
		var summary domain.GardenSummary
		if err := json.Unmarshal(cached, &summary); err == nil {
			uc.logger.Debug("Summary served from cache")
			return &summary, nil
		}
	}

	summary, err := uc.statsRepo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("get garden summary: %w", err)
	}

	if data, err := json.Marshal(summary); err == nil {
		if err := uc.cacheRepo.Set(ctx, summaryCacheKey, data, summaryCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache summary", zap.Error(err))
		}
	}

	return summary, nil
}
