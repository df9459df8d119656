package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	pkgerrors "github.com/garden-planner/internal/pkg/errors"
	"github.com/garden-planner/internal/repository/postgres/testhelpers"
)

type CultureRepositoryTestSuite struct {
	suite.Suite
	testDB  *testhelpers.TestDB
	repo    repository.CultureRepository
	ctx     context.Context
	bedID   int64
	plantID int64
}

func (s *CultureRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	_ = testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.repo = testhelpers.NewCultureRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *CultureRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *CultureRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))

	var err error
	s.bedID, err = testhelpers.InsertBed(s.testDB.DB.DB, "Bed A")
	s.NoError(err)
	s.plantID, err = testhelpers.InsertPlant(s.testDB.DB.DB, "Tomato")
	s.NoError(err)
}

func (s *CultureRepositoryTestSuite) newCulture() (*domain.Culture, []*domain.CulturePlant) {
	culture := &domain.Culture{
		BedID:     s.bedID,
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		StartType: domain.StartTypeSeedling,
	}
	plants := []*domain.CulturePlant{
		{
			PlantID:         s.plantID,
			QuantityPlanted: 3,
			RowPosition:     "middle",
			SpacingCm:       30,
			Alignment:       "center",
		},
	}
	return culture, plants
}

func (s *CultureRepositoryTestSuite) TestCreate_WithPlants() {
	culture, plants := s.newCulture()

	err := s.repo.Create(s.ctx, culture, plants)

	s.NoError(err)
	s.NotZero(culture.ID)
	s.True(culture.IsActive)
	s.NotZero(plants[0].ID)
	s.Equal(culture.ID, plants[0].CultureID)
}

func (s *CultureRepositoryTestSuite) TestPlantsForCulture_JoinsCatalog() {
	culture, plants := s.newCulture()
	s.NoError(s.repo.Create(s.ctx, culture, plants))

	details, err := s.repo.PlantsForCulture(s.ctx, culture.ID)

	s.NoError(err)
	s.Len(details, 1)
	s.Equal("Tomato", details[0].Plant.Name)
	s.Equal(3, details[0].QuantityPlanted)
	s.Equal("middle", details[0].RowPosition)
	s.Equal(30, details[0].SpacingCm)
}

func (s *CultureRepositoryTestSuite) TestClose_MarksInactive() {
	culture, plants := s.newCulture()
	s.NoError(s.repo.Create(s.ctx, culture, plants))

	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s.NoError(s.repo.Close(s.ctx, culture.ID, end))

	got, err := s.repo.GetByID(s.ctx, culture.ID)
	s.NoError(err)
	s.False(got.IsActive)
	s.NotNil(got.EndDate)

	// Closing twice reports the already-closed state
	err = s.repo.Close(s.ctx, culture.ID, end)
	s.ErrorIs(err, pkgerrors.ErrCultureClosed)
}

func (s *CultureRepositoryTestSuite) TestClose_NotFound() {
	err := s.repo.Close(s.ctx, 99999, time.Now())
	s.ErrorIs(err, pkgerrors.ErrCultureNotFound)
}

func (s *CultureRepositoryTestSuite) TestListByBed_FiltersClosed() {
	culture, plants := s.newCulture()
	s.NoError(s.repo.Create(s.ctx, culture, plants))
	s.NoError(s.repo.Close(s.ctx, culture.ID, time.Now()))

	active, err := s.repo.ListByBed(s.ctx, s.bedID, false)
	s.NoError(err)
	s.Empty(active)

	all, err := s.repo.ListByBed(s.ctx, s.bedID, true)
	s.NoError(err)
	s.Len(all, 1)
}

func (s *CultureRepositoryTestSuite) TestUpdatePlantLayout() {
	culture, plants := s.newCulture()
	s.NoError(s.repo.Create(s.ctx, culture, plants))

	cp := plants[0]
	cp.QuantityGrown = 2
	cp.RowPosition = "top"
	cp.Alignment = "left"
	s.NoError(s.repo.UpdatePlantLayout(s.ctx, cp))

	details, err := s.repo.PlantsForCulture(s.ctx, culture.ID)
	s.NoError(err)
	s.Len(details, 1)
	s.Equal(2, details[0].QuantityGrown)
	s.Equal("top", details[0].RowPosition)
	s.Equal("left", details[0].Alignment)
}

func TestCultureRepositorySuite(t *testing.T) {
	suite.Run(t, new(CultureRepositoryTestSuite))
}
