package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/mapping"
	"github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/record"
	"github.com/ecotravel-admin/internal/pkg/utils"
	"github.com/ecotravel-admin/internal/pkg/validator"
	"github.com/ecotravel-admin/internal/usecase/dto"
)

// DefaultNearbyRadiusKm - радиус поиска, если он не задан
const DefaultNearbyRadiusKm = 50.0

// LocationUseCase - use case для страницы локаций
type LocationUseCase struct {
	locationRepo repository.LocationRepository
	cache        *listCache
	events       *eventPublisher
	logger       *zap.Logger
}

// NewLocationUseCase - создание нового LocationUseCase
func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
		cache:        newListCache(cacheRepo, cacheTTL, logger),
		events:       newEventPublisher(streamRepo, logger),
		logger:       logger,
	}
}

func parseLocationType(value string, required bool) (domain.LocationType, error) {
	t := domain.LocationType(strings.TrimSpace(value))
	if t == "" && !required {
		return "", nil
	}
	if !t.IsValid() {
		return "", errors.ErrInvalidLocationType
	}
	return t, nil
}

// List - все локации, опционально одного типа
func (uc *LocationUseCase) List(ctx context.Context, locationType string) (*dto.LocationListResponse, error) {
	t, err := parseLocationType(locationType, false)
	if err != nil {
		return nil, err
	}

	key := cachePrefixLocations + "all:" + string(t)
	var cached dto.LocationListResponse
	if uc.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	locations, err := uc.locationRepo.List(ctx, t)
	if err != nil {
		uc.logger.Error("Failed to list locations", zap.String("type", string(t)), zap.Error(err))
		return nil, err
	}

	resp := &dto.LocationListResponse{Locations: locations, Count: len(locations), Type: string(t)}
	uc.cache.set(ctx, key, resp)
	return resp, nil
}

// ListByVariant - коллекция одного варианта (cities, natural-sites, regions)
func (uc *LocationUseCase) ListByVariant(ctx context.Context, locationType string) (*dto.LocationListResponse, error) {
	t, err := parseLocationType(locationType, true)
	if err != nil {
		return nil, err
	}

	key := cachePrefixLocations + "variant:" + string(t)
	var cached dto.LocationListResponse
	if uc.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	locations, err := uc.locationRepo.ListByVariant(ctx, t)
	if err != nil {
		uc.logger.Error("Failed to list locations by variant", zap.String("type", string(t)), zap.Error(err))
		return nil, err
	}

	resp := &dto.LocationListResponse{Locations: locations, Count: len(locations), Type: string(t)}
	uc.cache.set(ctx, key, resp)
	return resp, nil
}

// Get - одна локация
func (uc *LocationUseCase) Get(ctx context.Context, locationType, id string) (*domain.Location, error) {
	t, err := parseLocationType(locationType, true)
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Location ID is required")
	}

	loc, err := uc.locationRepo.GetByID(ctx, t, id)
	if err != nil {
		uc.logger.Error("Failed to get location", zap.String("type", string(t)), zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return loc, nil
}

// validateLocationForm проверяет общие поля формы и возвращает её тип
func validateLocationForm(form record.Record) (domain.LocationType, error) {
	t, err := parseLocationType(form.String("type"), true)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(form.String("name")) == "" {
		return "", errors.ErrValidationFailed.WithMessage("Validation errors: name is required")
	}
	point := domain.Point{Lat: form.Float("latitude"), Lon: form.Float("longitude")}
	if !utils.ValidateCoordinates(point) {
		return "", errors.ErrInvalidCoordinates
	}
	if t == domain.LocationTypeRegion {
		if climate := form.String("climateType"); climate != "" && !isClimateType(climate) {
			return "", errors.ErrValidationFailed.WithMessage(
				"Validation errors: climateType must be one of [" + strings.Join(domain.ClimateTypes, " ") + "]")
		}
	}
	return t, nil
}

func isClimateType(value string) bool {
	for _, c := range domain.ClimateTypes {
		if c == value {
			return true
		}
	}
	return false
}

// Create - создание локации из формы
func (uc *LocationUseCase) Create(ctx context.Context, form record.Record) (*dto.MutationResponse, error) {
	t, err := validateLocationForm(form)
	if err != nil {
		return nil, err
	}

	payload := mapping.LocationToBackend(form)
	result, err := uc.locationRepo.Create(ctx, t, payload)
	if err != nil {
		uc.logger.Error("Failed to create location", zap.String("type", string(t)), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixLocations)
	uc.events.publish(ctx, domain.ResourceLocation, domain.ActionCreate, payload.LocationID, record.FromStruct(payload).Keys())

	return &dto.MutationResponse{
		ID:      payload.LocationID,
		Message: string(t) + " created successfully",
		Result:  result,
	}, nil
}

// Update - изменение локации. Тип берётся из поля type формы.
func (uc *LocationUseCase) Update(ctx context.Context, id string, form record.Record) (*dto.MutationResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Location ID is required")
	}
	t, err := validateLocationForm(form)
	if err != nil {
		return nil, err
	}

	payload := mapping.LocationUpdateToBackend(form)
	result, err := uc.locationRepo.Update(ctx, t, id, payload)
	if err != nil {
		uc.logger.Error("Failed to update location", zap.String("type", string(t)), zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixLocations)
	uc.events.publish(ctx, domain.ResourceLocation, domain.ActionUpdate, id, record.FromStruct(payload).Keys())

	return &dto.MutationResponse{ID: id, Message: string(t) + " updated successfully", Result: result}, nil
}

// Delete - удаление локации
func (uc *LocationUseCase) Delete(ctx context.Context, id string) (*dto.MutationResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Location ID is required")
	}

	result, err := uc.locationRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete location", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixLocations)
	uc.events.publish(ctx, domain.ResourceLocation, domain.ActionDelete, id, nil)

	return &dto.MutationResponse{ID: id, Message: "Location deleted successfully", Result: result}, nil
}

// Nearby - локации в радиусе от точки
func (uc *LocationUseCase) Nearby(ctx context.Context, req dto.NearbyRequest) (*dto.NearbyResponse, error) {
	center := domain.Point{Lat: req.Lat, Lon: req.Lon}
	if !utils.ValidateCoordinates(center) {
		return nil, errors.ErrInvalidCoordinates
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = DefaultNearbyRadiusKm
	}
	if !utils.ValidateRadius(radius) {
		return nil, errors.ErrInvalidRequest.WithMessage("radius_km must be between 0 and 20037.5")
	}

	query := domain.NearbyQuery{
		Center:   center,
		RadiusKm: radius,
		Type:     domain.LocationType(req.Type),
	}
	locations, err := uc.locationRepo.Nearby(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to search nearby locations",
			zap.Float64("lat", center.Lat),
			zap.Float64("lon", center.Lon),
			zap.Float64("radius_km", radius),
			zap.Error(err))
		return nil, err
	}

	return &dto.NearbyResponse{
		Center:    center,
		RadiusKm:  radius,
		Locations: locations,
		Count:     len(locations),
	}, nil
}
