package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/layout"
	"github.com/garden-planner/internal/pkg/errors"
)

// Diagram output formats
const (
	DiagramFormatJSON = "json"
	DiagramFormatSVG  = "svg"
)

// markerPalette colors the groups of a polyculture apart from each other.
// Cycled in registration order.
var markerPalette = []string{
	"#2e7d32", "#c62828", "#1565c0", "#ef6c00", "#6a1b9a", "#00838f",
}

// DiagramUseCase renders bed diagrams, caching the result per bed and format
type DiagramUseCase struct {
	bedRepo     repository.BedRepository
	cultureRepo repository.CultureRepository
	cacheRepo   repository.CacheRepository
	cfg         layout.Config
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewDiagramUseCase creates a new DiagramUseCase instance
func NewDiagramUseCase(
	bedRepo repository.BedRepository,
	cultureRepo repository.CultureRepository,
	cacheRepo repository.CacheRepository,
	cfg layout.Config,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DiagramUseCase {
	return &DiagramUseCase{
		bedRepo:     bedRepo,
		cultureRepo: cultureRepo,
		cacheRepo:   cacheRepo,
		cfg:         cfg,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Render returns the bed's diagram in the requested format, serving from
// cache when possible. The diagram shows every plant of every active
// culture at its computed position.
func (uc *DiagramUseCase) Render(ctx context.Context, bedID int64, format string) ([]byte, error) {
	if format != DiagramFormatJSON && format != DiagramFormatSVG {
		return nil, errors.ErrInvalidRequest
	}

	cached, err := uc.cacheRepo.GetDiagram(ctx, bedID, format)
	if err == nil && cached != nil {
		uc.logger.Debug("Diagram served from cache",
			zap.Int64("bed_id", bedID),
			zap.String("format", format))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get diagram from cache", zap.Error(err))
	}

	rendering, err := uc.build(ctx, bedID)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case DiagramFormatSVG:
		data = layout.RenderSVG(*rendering)
	default:
		data, err = json.Marshal(rendering)
		if err != nil {
			return nil, fmt.Errorf("marshal diagram: %w", err)
		}
	}

	if err := uc.cacheRepo.SetDiagram(ctx, bedID, format, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache diagram", zap.Int64("bed_id", bedID), zap.Error(err))
	}

	return data, nil
}

func (uc *DiagramUseCase) build(ctx context.Context, bedID int64) (*layout.Rendering, error) {
	if _, err := uc.bedRepo.GetByID(ctx, bedID); err != nil {
		return nil, err
	}

	diagram, err := layout.NewDiagram(uc.cfg)
	if err != nil {
		return nil, err
	}

	cultures, err := uc.cultureRepo.ListByBed(ctx, bedID, false)
	if err != nil {
		return nil, err
	}

	colorIndex := 0
	for _, culture := range cultures {
		plants, err := uc.cultureRepo.PlantsForCulture(ctx, culture.ID)
		if err != nil {
			return nil, err
		}

		for _, p := range plants {
			diagram.Register(layout.Group{
				Quantity:  p.QuantityPlanted,
				SpacingCm: float64(p.SpacingCm),
				Row:       layout.ParseRow(p.RowPosition),
				Alignment: layout.ParseAlignment(p.Alignment),
				Label:     p.Plant.Name,
				Icon:      p.Plant.Icon,
				Color:     markerPalette[colorIndex%len(markerPalette)],
			})
			colorIndex++
		}
	}

	rendering := diagram.Build()
	return &rendering, nil
}
