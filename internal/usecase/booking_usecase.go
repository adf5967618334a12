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
	"github.com/ecotravel-admin/internal/pkg/validator"
	"github.com/ecotravel-admin/internal/usecase/dto"
)

// BookingUseCase - use case для страницы бронирований
type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	cache       *listCache
	events      *eventPublisher
	logger      *zap.Logger
}

// NewBookingUseCase - создание нового BookingUseCase
func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		cache:       newListCache(cacheRepo, cacheTTL, logger),
		events:      newEventPublisher(streamRepo, logger),
		logger:      logger,
	}
}

// List - все бронирования
func (uc *BookingUseCase) List(ctx context.Context) (*domain.BookingList, error) {
	key := cachePrefixBookings + "all"
	var cached domain.BookingList
	if uc.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	list, err := uc.bookingRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list bookings", zap.Error(err))
		return nil, err
	}

	uc.cache.set(ctx, key, list)
	return list, nil
}

// ListByTourist - бронирования туриста. Принимает id или URI туриста,
// от URI остаётся только фрагмент. Префикс Tourist_ не срезается.
func (uc *BookingUseCase) ListByTourist(ctx context.Context, touristID string) (*domain.BookingList, error) {
	id := mapping.ExtractFragment(strings.TrimSpace(touristID))
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Tourist ID is required")
	}

	key := cachePrefixBookings + "tourist:" + id
	var cached domain.BookingList
	if uc.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	list, err := uc.bookingRepo.ListByTourist(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to list tourist bookings", zap.String("tourist_id", id), zap.Error(err))
		return nil, err
	}

	uc.cache.set(ctx, key, list)
	return list, nil
}

// Get - одно бронирование
func (uc *BookingUseCase) Get(ctx context.Context, id string) (*domain.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Booking ID is required")
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get booking", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}
	return booking, nil
}

// Create - создание бронирования из формы
func (uc *BookingUseCase) Create(ctx context.Context, req dto.BookingRequest) (*domain.BookingCreated, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	form := req.ToForm()
	touristID := mapping.StripTouristPrefix(mapping.ExtractFragment(mapping.FormTouristID(form)))
	if touristID == "" {
		return nil, errors.ErrValidationFailed.WithMessage("Tourist ID is required")
	}
	form.TouristID = touristID
	form.Tourist = ""
	form.TouristURI = ""

	payload := mapping.BookingToBackend(form)
	created, err := uc.bookingRepo.Create(ctx, payload)
	if err != nil {
		uc.logger.Error("Failed to create booking",
			zap.String("tourist_id", touristID),
			zap.Error(err))
		return nil, err
	}

	entityID := created.BookingID
	if entityID == "" {
		entityID = payload.BookingID
	}
	uc.cache.invalidate(ctx, cachePrefixBookings)
	uc.events.publish(ctx, domain.ResourceBooking, domain.ActionCreate, entityID, record.FromStruct(payload).Keys())

	return created, nil
}

// Update - изменение даты и статуса бронирования
func (uc *BookingUseCase) Update(ctx context.Context, id string, req dto.BookingUpdateRequest) (*dto.MutationResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Booking ID is required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	payload := mapping.BookingUpdateToBackend(req.ToForm())
	if payload.IsEmpty() {
		return nil, errors.ErrInvalidRequest.WithMessage("Nothing to update")
	}
	payload.BookingDate = normalizeOptionalDate(payload.BookingDate)

	result, err := uc.bookingRepo.Update(ctx, id, payload)
	if err != nil {
		uc.logger.Error("Failed to update booking", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixBookings)
	uc.events.publish(ctx, domain.ResourceBooking, domain.ActionUpdate, id, record.FromStruct(payload).Keys())

	return &dto.MutationResponse{ID: id, Message: "Booking updated successfully", Result: result}, nil
}

// Delete - удаление бронирования
func (uc *BookingUseCase) Delete(ctx context.Context, id string) (*dto.MutationResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Booking ID is required")
	}

	result, err := uc.bookingRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete booking", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixBookings)
	uc.events.publish(ctx, domain.ResourceBooking, domain.ActionDelete, id, nil)

	return &dto.MutationResponse{ID: id, Message: "Booking deleted successfully", Result: result}, nil
}

// normalizeOptionalDate приводит непустую дату к дате-времени, пустую оставляет пустой
func normalizeOptionalDate(value string) string {
	if value == "" {
		return ""
	}
	return mapping.NormalizeDateTime(value)
}
