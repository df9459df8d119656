package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/garden-planner/internal/domain/repository"
	"github.com/garden-planner/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewBedRepositoryForTest creates a bed repository with test database and logger
func NewBedRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BedRepository {
	return postgres.NewBedRepository(NewDBForTest(db, logger))
}

// NewPlantRepositoryForTest creates a plant repository with test database and logger
func NewPlantRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PlantRepository {
	return postgres.NewPlantRepository(NewDBForTest(db, logger))
}

// NewCultureRepositoryForTest creates a culture repository with test database and logger
func NewCultureRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CultureRepository {
	return postgres.NewCultureRepository(NewDBForTest(db, logger))
}

// NewCalendarRepositoryForTest creates a calendar repository with test database and logger
func NewCalendarRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CalendarRepository {
	return postgres.NewCalendarRepository(NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger))
}
