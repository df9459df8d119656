package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/garden-planner/internal/domain"
	"github.com/garden-planner/internal/domain/repository"
	pkgerrors "github.com/garden-planner/internal/pkg/errors"
	"github.com/garden-planner/internal/repository/postgres/testhelpers"
)

type BedRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.BedRepository
	ctx    context.Context
}

func (s *BedRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	// Migrations are idempotent, existing tables are kept
	_ = testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")

	s.repo = testhelpers.NewBedRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *BedRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *BedRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err, "Failed to cleanup test database")
}

func (s *BedRepositoryTestSuite) TestCreate_Success() {
	desc := "South facing, partial shade"
	bed := &domain.Bed{Name: "Bed A", Description: &desc}

	err := s.repo.Create(s.ctx, bed)

	s.NoError(err)
	s.NotZero(bed.ID)
	s.True(bed.IsActive)
	s.NotZero(bed.CreatedAt)
}

func (s *BedRepositoryTestSuite) TestCreate_DuplicateName() {
	err := s.repo.Create(s.ctx, &domain.Bed{Name: "Bed A"})
	s.NoError(err)

	err = s.repo.Create(s.ctx, &domain.Bed{Name: "Bed A"})
	s.ErrorIs(err, pkgerrors.ErrDuplicateName)
}

func (s *BedRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, 99999)
	s.ErrorIs(err, pkgerrors.ErrBedNotFound)
}

func (s *BedRepositoryTestSuite) TestList_ActiveOnly() {
	active := &domain.Bed{Name: "Active bed"}
	s.NoError(s.repo.Create(s.ctx, active))

	retired := &domain.Bed{Name: "Retired bed"}
	s.NoError(s.repo.Create(s.ctx, retired))
	s.NoError(s.repo.Deactivate(s.ctx, retired.ID))

	beds, err := s.repo.List(s.ctx, false)
	s.NoError(err)
	s.Len(beds, 1)
	s.Equal("Active bed", beds[0].Name)

	all, err := s.repo.List(s.ctx, true)
	s.NoError(err)
	s.Len(all, 2)
}

func (s *BedRepositoryTestSuite) TestUpdate_Success() {
	bed := &domain.Bed{Name: "Bed A"}
	s.NoError(s.repo.Create(s.ctx, bed))

	loc := "Near the greenhouse"
	bed.Name = "Bed A renamed"
	bed.Location = &loc
	s.NoError(s.repo.Update(s.ctx, bed))

	got, err := s.repo.GetByID(s.ctx, bed.ID)
	s.NoError(err)
	s.Equal("Bed A renamed", got.Name)
	s.NotNil(got.Location)
	s.Equal(loc, *got.Location)
}

func (s *BedRepositoryTestSuite) TestDeactivate_NotFound() {
	err := s.repo.Deactivate(s.ctx, 99999)
	s.ErrorIs(err, pkgerrors.ErrBedNotFound)
}

func TestBedRepositorySuite(t *testing.T) {
	suite.Run(t, new(BedRepositoryTestSuite))
}
