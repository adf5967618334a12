package repository

import (
	"context"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// BookingRepository - бронирования в travel API
type BookingRepository interface {
	List(ctx context.Context) (*domain.BookingList, error)
	ListByTourist(ctx context.Context, touristID string) (*domain.BookingList, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Create(ctx context.Context, payload domain.BookingCreate) (*domain.BookingCreated, error)
	Update(ctx context.Context, id string, payload domain.BookingUpdate) (record.Record, error)
	Delete(ctx context.Context, id string) (record.Record, error)
}

// LocationRepository - локации в travel API
type LocationRepository interface {
	// List возвращает все локации, type пустой - без фильтра
	List(ctx context.Context, locationType domain.LocationType) ([]domain.Location, error)
	// ListByVariant читает коллекцию варианта (/locations/cities и т.д.)
	ListByVariant(ctx context.Context, locationType domain.LocationType) ([]domain.Location, error)
	GetByID(ctx context.Context, locationType domain.LocationType, id string) (*domain.Location, error)
	Create(ctx context.Context, locationType domain.LocationType, payload domain.LocationPayload) (record.Record, error)
	Update(ctx context.Context, locationType domain.LocationType, id string, payload domain.LocationPayload) (record.Record, error)
	Delete(ctx context.Context, id string) (record.Record, error)
	Nearby(ctx context.Context, query domain.NearbyQuery) ([]domain.NearbyLocation, error)
}

// TransportRepository - транспорт в travel API
type TransportRepository interface {
	List(ctx context.Context, kind domain.TransportKind) ([]domain.Transport, error)
	GetByID(ctx context.Context, id string) (*domain.Transport, error)
	// Create принимает одно из BikePayload, ElectricVehiclePayload, PublicTransportPayload
	Create(ctx context.Context, kind domain.TransportKind, payload any) (record.Record, error)
	Update(ctx context.Context, id string, payload domain.TransportUpdate) (record.Record, error)
	Delete(ctx context.Context, id string) (record.Record, error)
	Search(ctx context.Context, term string) ([]domain.Transport, error)
	Ranking(ctx context.Context, ranking domain.TransportRanking) ([]domain.Transport, error)
}

// PlannerRepository - одиночные вызовы сравнения, оптимизации и генерации маршрута.
// Ответы возвращаются как есть, нормализация выполняется в usecase.
type PlannerRepository interface {
	// ListActivities - активности для выбора, activityType пустой - все типы
	ListActivities(ctx context.Context, activityType string) (*domain.ActivityList, error)
	CompareActivities(ctx context.Context, activity1, activity2 string) (any, error)
	OptimizeTrip(ctx context.Context, req domain.TripRequest) (any, error)
	GenerateItinerary(ctx context.Context, req domain.ItineraryRequest) (any, error)
}
