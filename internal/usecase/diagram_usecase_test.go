package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/layout"
	"github.com/garden-planner/internal/usecase"
)

func diagramFixtures() (*domain.Bed, []*domain.Culture, []*domain.CulturePlantDetail) {
	bed := &domain.Bed{ID: 1, Name: "Bed A", IsActive: true}
	cultures := []*domain.Culture{
		{ID: 10, BedID: 1, StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
	}
	plants := []*domain.CulturePlantDetail{
		{
			CulturePlant: domain.CulturePlant{
				ID: 100, CultureID: 10, PlantID: 5,
				QuantityPlanted: 3, RowPosition: "middle", SpacingCm: 30, Alignment: "center",
			},
			Plant: domain.Plant{ID: 5, Name: "Tomato", Icon: "🍅"},
		},
	}
	return bed, cultures, plants
}

func TestDiagramUseCase_Render(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cache hit short-circuits building", func(t *testing.T) {
		mockBed := &MockBedRepository{}
		mockCulture := &MockCultureRepository{}
		mockCache := &MockCacheRepository{}

		cached := []byte(`{"width":800}`)
		mockCache.On("GetDiagram", ctx, int64(1), "json").Return(cached, nil)

		uc := usecase.NewDiagramUseCase(mockBed, mockCulture, mockCache, layout.DefaultConfig(), time.Minute, logger)

		data, err := uc.Render(ctx, 1, "json")
		require.NoError(t, err)
		assert.Equal(t, cached, data)
		mockBed.AssertNotCalled(t, "GetByID")
	})

	t.Run("cache miss builds the diagram and caches it", func(t *testing.T) {
		bed, cultures, plants := diagramFixtures()

		mockBed := &MockBedRepository{}
		mockCulture := &MockCultureRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetDiagram", ctx, int64(1), "json").Return(nil, nil)
		mockBed.On("GetByID", ctx, int64(1)).Return(bed, nil)
		mockCulture.On("ListByBed", ctx, int64(1), false).Return(cultures, nil)
		mockCulture.On("PlantsForCulture", ctx, int64(10)).Return(plants, nil)
		mockCache.On("SetDiagram", ctx, int64(1), "json", mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewDiagramUseCase(mockBed, mockCulture, mockCache, layout.DefaultConfig(), time.Minute, logger)

		data, err := uc.Render(ctx, 1, "json")
		require.NoError(t, err)

		var rendering layout.Rendering
		require.NoError(t, json.Unmarshal(data, &rendering))
		assert.Equal(t, 800.0, rendering.Width)
		assert.Equal(t, 200.0, rendering.Height)
		require.Len(t, rendering.Groups, 1)
		assert.Equal(t, "Tomato", rendering.Groups[0].Label)

		// Three tomatoes at 30 cm spacing, centered: 170/200/230 cm,
		// doubled by the 800x200 surface
		require.Len(t, rendering.Groups[0].Points, 3)
		assert.InDelta(t, 340.0, rendering.Groups[0].Points[0].X, 0.001)
		assert.InDelta(t, 400.0, rendering.Groups[0].Points[1].X, 0.001)
		assert.InDelta(t, 460.0, rendering.Groups[0].Points[2].X, 0.001)
		assert.InDelta(t, 100.0, rendering.Groups[0].Points[0].Y, 0.001)

		mockCache.AssertExpectations(t)
	})

	t.Run("svg format renders markup", func(t *testing.T) {
		bed, cultures, plants := diagramFixtures()

		mockBed := &MockBedRepository{}
		mockCulture := &MockCultureRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetDiagram", ctx, int64(1), "svg").Return(nil, nil)
		mockBed.On("GetByID", ctx, int64(1)).Return(bed, nil)
		mockCulture.On("ListByBed", ctx, int64(1), false).Return(cultures, nil)
		mockCulture.On("PlantsForCulture", ctx, int64(10)).Return(plants, nil)
		mockCache.On("SetDiagram", ctx, int64(1), "svg", mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewDiagramUseCase(mockBed, mockCulture, mockCache, layout.DefaultConfig(), time.Minute, logger)

		data, err := uc.Render(ctx, 1, "svg")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("<svg ")))
		assert.Contains(t, string(data), "Tomato")
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		mockBed := &MockBedRepository{}
		mockCulture := &MockCultureRepository{}
		mockCache := &MockCacheRepository{}

		uc := usecase.NewDiagramUseCase(mockBed, mockCulture, mockCache, layout.DefaultConfig(), time.Minute, logger)

		_, err := uc.Render(ctx, 1, "png")
		assert.Error(t, err)
	})

	t.Run("empty bed renders with no groups", func(t *testing.T) {
		bed, _, _ := diagramFixtures()

		mockBed := &MockBedRepository{}
		mockCulture := &MockCultureRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("GetDiagram", ctx, int64(1), "json").Return(nil, nil)
		mockBed.On("GetByID", ctx, int64(1)).Return(bed, nil)
		mockCulture.On("ListByBed", ctx, int64(1), false).Return([]*domain.Culture{}, nil)
		mockCache.On("SetDiagram", ctx, int64(1), "json", mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewDiagramUseCase(mockBed, mockCulture, mockCache, layout.DefaultConfig(), time.Minute, logger)

		data, err := uc.Render(ctx, 1, "json")
		require.NoError(t, err)

		var rendering layout.Rendering
		require.NoError(t, json.Unmarshal(data, &rendering))
		assert.Empty(t, rendering.Groups)
		assert.Len(t, rendering.RowDividers, 2)
	})
}
