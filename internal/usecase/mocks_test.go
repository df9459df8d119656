package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/garden-planner/internal/domain"
)

// MockBedRepository is a mock of BedRepository
type MockBedRepository struct {
	mock.Mock
}

func (m *MockBedRepository) List(ctx context.Context, includeInactive bool) ([]*domain.Bed, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Bed), args.Error(1)
}

func (m *MockBedRepository) GetByID(ctx context.Context, id int64) (*domain.Bed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bed), args.Error(1)
}

func (m *MockBedRepository) Create(ctx context.Context, bed *domain.Bed) error {
	args := m.Called(ctx, bed)
	return args.Error(0)
}

func (m *MockBedRepository) Update(ctx context.Context, bed *domain.Bed) error {
	args := m.Called(ctx, bed)
	return args.Error(0)
}

func (m *MockBedRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlantRepository is a mock of PlantRepository
type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) List(ctx context.Context) ([]*domain.Plant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Plant), args.Error(1)
}

func (m *MockPlantRepository) GetByID(ctx context.Context, id int64) (*domain.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *MockPlantRepository) Create(ctx context.Context, plant *domain.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}

func (m *MockPlantRepository) Update(ctx context.Context, plant *domain.Plant) error {
	args := m.Called(ctx, plant)
	return args.Error(0)
}

func (m *MockPlantRepository) LinkPest(ctx context.Context, link *domain.PlantPest) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockPlantRepository) PestsForPlant(ctx context.Context, plantID int64) ([]*domain.PlantPestInfo, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlantPestInfo), args.Error(1)
}

func (m *MockPlantRepository) LinkCare(ctx context.Context, link *domain.PlantCare) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockPlantRepository) CaresForPlant(ctx context.Context, plantID int64) ([]*domain.PlantCareInfo, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlantCareInfo), args.Error(1)
}

func (m *MockPlantRepository) UnlinkPest(ctx context.Context, plantID, pestID int64) error {
	args := m.Called(ctx, plantID, pestID)
	return args.Error(0)
}

func (m *MockPlantRepository) UnlinkCare(ctx context.Context, plantID, careActionID int64) error {
	args := m.Called(ctx, plantID, careActionID)
	return args.Error(0)
}

func (m *MockPlantRepository) CareLinks(ctx context.Context, plantID int64) ([]*domain.PlantCare, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlantCare), args.Error(1)
}

// MockCultureRepository is a mock of CultureRepository
type MockCultureRepository struct {
	mock.Mock
}

func (m *MockCultureRepository) ListActive(ctx context.Context) ([]*domain.Culture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Culture), args.Error(1)
}

func (m *MockCultureRepository) GetByID(ctx context.Context, id int64) (*domain.Culture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Culture), args.Error(1)
}

func (m *MockCultureRepository) ListByBed(ctx context.Context, bedID int64, includeInactive bool) ([]*domain.Culture, error) {
	args := m.Called(ctx, bedID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Culture), args.Error(1)
}

func (m *MockCultureRepository) Create(ctx context.Context, culture *domain.Culture, plants []*domain.CulturePlant) error {
	args := m.Called(ctx, culture, plants)
	return args.Error(0)
}

func (m *MockCultureRepository) Close(ctx context.Context, id int64, endDate time.Time) error {
	args := m.Called(ctx, id, endDate)
	return args.Error(0)
}

func (m *MockCultureRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCultureRepository) PlantsForCulture(ctx context.Context, cultureID int64) ([]*domain.CulturePlantDetail, error) {
	args := m.Called(ctx, cultureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CulturePlantDetail), args.Error(1)
}

func (m *MockCultureRepository) UpdatePlantLayout(ctx context.Context, cp *domain.CulturePlant) error {
	args := m.Called(ctx, cp)
	return args.Error(0)
}

func (m *MockCultureRepository) ScheduleTreatment(ctx context.Context, ct *domain.CultureTreatment) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockCultureRepository) ScheduleCare(ctx context.Context, cc *domain.CultureCare) error {
	args := m.Called(ctx, cc)
	return args.Error(0)
}

func (m *MockCultureRepository) Treatments(ctx context.Context, cultureID int64) ([]*domain.CultureTreatment, error) {
	args := m.Called(ctx, cultureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CultureTreatment), args.Error(1)
}

func (m *MockCultureRepository) Cares(ctx context.Context, cultureID int64) ([]*domain.CultureCare, error) {
	args := m.Called(ctx, cultureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CultureCare), args.Error(1)
}

// MockPestRepository is a mock of PestRepository
type MockPestRepository struct {
	mock.Mock
}

func (m *MockPestRepository) List(ctx context.Context) ([]*domain.Pest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pest), args.Error(1)
}

func (m *MockPestRepository) GetByID(ctx context.Context, id int64) (*domain.Pest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pest), args.Error(1)
}

func (m *MockPestRepository) Create(ctx context.Context, pest *domain.Pest) error {
	args := m.Called(ctx, pest)
	return args.Error(0)
}

func (m *MockPestRepository) Update(ctx context.Context, pest *domain.Pest) error {
	args := m.Called(ctx, pest)
	return args.Error(0)
}

func (m *MockPestRepository) LinkTreatment(ctx context.Context, link *domain.PestTreatment) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockPestRepository) UnlinkTreatment(ctx context.Context, pestID, treatmentID int64) error {
	args := m.Called(ctx, pestID, treatmentID)
	return args.Error(0)
}

func (m *MockPestRepository) TreatmentsForPest(ctx context.Context, pestID int64) ([]*domain.PestTreatmentInfo, error) {
	args := m.Called(ctx, pestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PestTreatmentInfo), args.Error(1)
}

// MockTreatmentRepository is a mock of TreatmentRepository
type MockTreatmentRepository struct {
	mock.Mock
}

func (m *MockTreatmentRepository) List(ctx context.Context) ([]*domain.Treatment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) Create(ctx context.Context, treatment *domain.Treatment) error {
	args := m.Called(ctx, treatment)
	return args.Error(0)
}

func (m *MockTreatmentRepository) Update(ctx context.Context, treatment *domain.Treatment) error {
	args := m.Called(ctx, treatment)
	return args.Error(0)
}

// MockCareRepository is a mock of CareRepository
type MockCareRepository struct {
	mock.Mock
}

func (m *MockCareRepository) List(ctx context.Context) ([]*domain.CareAction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CareAction), args.Error(1)
}

func (m *MockCareRepository) GetByID(ctx context.Context, id int64) (*domain.CareAction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareAction), args.Error(1)
}

func (m *MockCareRepository) Create(ctx context.Context, action *domain.CareAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MockCareRepository) Update(ctx context.Context, action *domain.CareAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// MockCalendarRepository is a mock of CalendarRepository
type MockCalendarRepository struct {
	mock.Mock
}

func (m *MockCalendarRepository) ListRange(ctx context.Context, from, to time.Time, includeCompleted bool) ([]*domain.CalendarEvent, error) {
	args := m.Called(ctx, from, to, includeCompleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CalendarEvent), args.Error(1)
}

func (m *MockCalendarRepository) ListForCulture(ctx context.Context, cultureID int64) ([]*domain.CalendarEvent, error) {
	args := m.Called(ctx, cultureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CalendarEvent), args.Error(1)
}

func (m *MockCalendarRepository) InsertBatch(ctx context.Context, events []*domain.CalendarEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockCalendarRepository) MarkCompleted(ctx context.Context, id int64, completedDate time.Time) (*domain.CalendarEvent, error) {
	args := m.Called(ctx, id, completedDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalendarEvent), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetDiagram(ctx context.Context, bedID int64, format string) ([]byte, error) {
	args := m.Called(ctx, bedID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetDiagram(ctx context.Context, bedID int64, format string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, bedID, format, data, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateDiagrams(ctx context.Context, bedID int64) error {
	args := m.Called(ctx, bedID)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetSummary(ctx context.Context) (*domain.GardenSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GardenSummary), args.Error(1)
}
