package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// MockCacheRepository - мок для CacheRepository
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

func (m *MockCacheRepository) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

// MockStreamRepository - мок для StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string, count int64) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs ...string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}

// MockBookingRepository - мок для BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) (*domain.BookingList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingList), args.Error(1)
}

func (m *MockBookingRepository) ListByTourist(ctx context.Context, touristID string) (*domain.BookingList, error) {
	args := m.Called(ctx, touristID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingList), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, payload domain.BookingCreate) (*domain.BookingCreated, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingCreated), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, id string, payload domain.BookingUpdate) (record.Record, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) (record.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

// MockLocationRepository - мок для LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) List(ctx context.Context, locationType domain.LocationType) ([]domain.Location, error) {
	args := m.Called(ctx, locationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockLocationRepository) ListByVariant(ctx context.Context, locationType domain.LocationType) ([]domain.Location, error) {
	args := m.Called(ctx, locationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, locationType domain.LocationType, id string) (*domain.Location, error) {
	args := m.Called(ctx, locationType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) Create(ctx context.Context, locationType domain.LocationType, payload domain.LocationPayload) (record.Record, error) {
	args := m.Called(ctx, locationType, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockLocationRepository) Update(ctx context.Context, locationType domain.LocationType, id string, payload domain.LocationPayload) (record.Record, error) {
	args := m.Called(ctx, locationType, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id string) (record.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockLocationRepository) Nearby(ctx context.Context, query domain.NearbyQuery) ([]domain.NearbyLocation, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NearbyLocation), args.Error(1)
}

// MockTransportRepository - мок для TransportRepository
type MockTransportRepository struct {
	mock.Mock
}

func (m *MockTransportRepository) List(ctx context.Context, kind domain.TransportKind) ([]domain.Transport, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transport), args.Error(1)
}

func (m *MockTransportRepository) GetByID(ctx context.Context, id string) (*domain.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transport), args.Error(1)
}

func (m *MockTransportRepository) Create(ctx context.Context, kind domain.TransportKind, payload any) (record.Record, error) {
	args := m.Called(ctx, kind, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockTransportRepository) Update(ctx context.Context, id string, payload domain.TransportUpdate) (record.Record, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockTransportRepository) Delete(ctx context.Context, id string) (record.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockTransportRepository) Search(ctx context.Context, term string) ([]domain.Transport, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transport), args.Error(1)
}

func (m *MockTransportRepository) Ranking(ctx context.Context, ranking domain.TransportRanking) ([]domain.Transport, error) {
	args := m.Called(ctx, ranking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transport), args.Error(1)
}

// MockPlannerRepository - мок для PlannerRepository
type MockPlannerRepository struct {
	mock.Mock
}

func (m *MockPlannerRepository) ListActivities(ctx context.Context, activityType string) (*domain.ActivityList, error) {
	args := m.Called(ctx, activityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityList), args.Error(1)
}

func (m *MockPlannerRepository) CompareActivities(ctx context.Context, activity1, activity2 string) (any, error) {
	args := m.Called(ctx, activity1, activity2)
	return args.Get(0), args.Error(1)
}

func (m *MockPlannerRepository) OptimizeTrip(ctx context.Context, req domain.TripRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

func (m *MockPlannerRepository) GenerateItinerary(ctx context.Context, req domain.ItineraryRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

// MockAuditRepository - мок для AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) InsertBatch(ctx context.Context, entries []domain.AuditEntry) (int64, error) {
	args := m.Called(ctx, entries)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}
