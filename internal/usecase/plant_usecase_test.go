package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain"
	pkgerrors "github.com/garden-planner/internal/pkg/errors"
	"github.com/garden-planner/internal/usecase"
)

type plantMocks struct {
	plant *MockPlantRepository
	pest  *MockPestRepository
	care  *MockCareRepository
}

func newPlantUseCase() (*usecase.PlantUseCase, *plantMocks) {
	m := &plantMocks{
		plant: &MockPlantRepository{},
		pest:  &MockPestRepository{},
		care:  &MockCareRepository{},
	}
	uc := usecase.NewPlantUseCase(m.plant, m.pest, m.care, zap.NewNop())
	return uc, m
}

func TestPlantUseCase_UnlinkPest(t *testing.T) {
	ctx := context.Background()
	plant := &domain.Plant{ID: 5, Name: "Tomato"}

	t.Run("success removes the link", func(t *testing.T) {
		uc, m := newPlantUseCase()

		m.plant.On("GetByID", ctx, int64(5)).Return(plant, nil)
		m.plant.On("UnlinkPest", ctx, int64(5), int64(2)).Return(nil)

		err := uc.UnlinkPest(ctx, 5, 2)
		assert.NoError(t, err)
		m.plant.AssertExpectations(t)
	})

	t.Run("unknown plant fails", func(t *testing.T) {
		uc, m := newPlantUseCase()
		m.plant.On("GetByID", ctx, int64(99)).Return(nil, pkgerrors.ErrPlantNotFound)

		err := uc.UnlinkPest(ctx, 99, 2)
		assert.ErrorIs(t, err, pkgerrors.ErrPlantNotFound)
		m.plant.AssertNotCalled(t, "UnlinkPest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing link reports not found", func(t *testing.T) {
		uc, m := newPlantUseCase()

		m.plant.On("GetByID", ctx, int64(5)).Return(plant, nil)
		m.plant.On("UnlinkPest", ctx, int64(5), int64(2)).Return(pkgerrors.ErrLinkNotFound)

		err := uc.UnlinkPest(ctx, 5, 2)
		assert.ErrorIs(t, err, pkgerrors.ErrLinkNotFound)
	})
}

func TestPlantUseCase_UnlinkCare(t *testing.T) {
	ctx := context.Background()
	plant := &domain.Plant{ID: 5, Name: "Tomato"}

	t.Run("success removes the link", func(t *testing.T) {
		uc, m := newPlantUseCase()

		m.plant.On("GetByID", ctx, int64(5)).Return(plant, nil)
		m.plant.On("UnlinkCare", ctx, int64(5), int64(7)).Return(nil)

		err := uc.UnlinkCare(ctx, 5, 7)
		assert.NoError(t, err)
		m.plant.AssertExpectations(t)
	})

	t.Run("missing link reports not found", func(t *testing.T) {
		uc, m := newPlantUseCase()

		m.plant.On("GetByID", ctx, int64(5)).Return(plant, nil)
		m.plant.On("UnlinkCare", ctx, int64(5), int64(7)).Return(pkgerrors.ErrLinkNotFound)

		err := uc.UnlinkCare(ctx, 5, 7)
		assert.ErrorIs(t, err, pkgerrors.ErrLinkNotFound)
	})
}
