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
	"github.com/ecotravel-admin/internal/usecase/dto"
)

// TransportUseCase - use case для страницы транспорта
type TransportUseCase struct {
	transportRepo repository.TransportRepository
	cache         *listCache
	rankingCache  *listCache
	events        *eventPublisher
	logger        *zap.Logger
}

// NewTransportUseCase - создание нового TransportUseCase.
// Рейтинги кешируются отдельно и дольше, чем списки.
func NewTransportUseCase(
	transportRepo repository.TransportRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	rankingTTL time.Duration,
) *TransportUseCase {
	return &TransportUseCase{
		transportRepo: transportRepo,
		cache:         newListCache(cacheRepo, cacheTTL, logger),
		rankingCache:  newListCache(cacheRepo, rankingTTL, logger),
		events:        newEventPublisher(streamRepo, logger),
		logger:        logger,
	}
}

func parseTransportKind(value string, required bool) (domain.TransportKind, error) {
	k := domain.TransportKind(strings.TrimSpace(value))
	if k == "" && !required {
		return "", nil
	}
	if !k.IsValid() {
		return "", errors.ErrInvalidTransportKind
	}
	return k, nil
}

func transportList(items []domain.Transport) *dto.TransportListResponse {
	return &dto.TransportListResponse{Transports: items, Count: len(items)}
}

// List - весь транспорт, опционально одного вида
func (uc *TransportUseCase) List(ctx context.Context, kind string) (*dto.TransportListResponse, error) {
	k, err := parseTransportKind(kind, false)
	if err != nil {
		return nil, err
	}

	key := cachePrefixTransports + "all:" + string(k)
	var cached dto.TransportListResponse
	if uc.cache.get(ctx, key, &cached) {
		return &cached, nil
	}

	items, err := uc.transportRepo.List(ctx, k)
	if err != nil {
		uc.logger.Error("Failed to list transports", zap.String("kind", string(k)), zap.Error(err))
		return nil, err
	}

	resp := transportList(items)
	uc.cache.set(ctx, key, resp)
	return resp, nil
}

// Get - один транспорт
func (uc *TransportUseCase) Get(ctx context.Context, id string) (*domain.Transport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Transport ID is required")
	}

	t, err := uc.transportRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get transport", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return t, nil
}

// Create - создание транспорта выбранного вида из формы
func (uc *TransportUseCase) Create(ctx context.Context, kind string, form record.Record) (*dto.MutationResponse, error) {
	k, err := parseTransportKind(kind, true)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(form.String("transportName")) == "" {
		return nil, errors.ErrValidationFailed.WithMessage("Validation errors: transportName is required")
	}
	if form.Float("pricePerKm") < 0 || form.Float("carbonEmissionPerKm") < 0 {
		return nil, errors.ErrValidationFailed.WithMessage("Validation errors: prices and emissions must not be negative")
	}

	payload := mapping.TransportToBackend(k, form)
	fields := record.FromStruct(payload)
	id := fields.String("transportId")

	result, err := uc.transportRepo.Create(ctx, k, payload)
	if err != nil {
		uc.logger.Error("Failed to create transport", zap.String("kind", string(k)), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixTransports)
	uc.events.publish(ctx, domain.ResourceTransport, domain.ActionCreate, id, fields.Keys())

	return &dto.MutationResponse{ID: id, Message: "Transport created successfully", Result: result}, nil
}

// Update - изменение названия, доступности, цены и часов работы
func (uc *TransportUseCase) Update(ctx context.Context, id string, form record.Record) (*dto.MutationResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Transport ID is required")
	}

	payload := mapping.TransportUpdateToBackend(form)
	fields := record.FromStruct(payload).Keys()
	if len(fields) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("Nothing to update")
	}
	if payload.PricePerKm != nil && *payload.PricePerKm < 0 {
		return nil, errors.ErrValidationFailed.WithMessage("Validation errors: pricePerKm must not be negative")
	}

	result, err := uc.transportRepo.Update(ctx, id, payload)
	if err != nil {
		uc.logger.Error("Failed to update transport", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixTransports)
	uc.events.publish(ctx, domain.ResourceTransport, domain.ActionUpdate, id, fields)

	return &dto.MutationResponse{ID: id, Message: "Transport updated successfully", Result: result}, nil
}

// Delete - удаление транспорта
func (uc *TransportUseCase) Delete(ctx context.Context, id string) (*dto.MutationResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Transport ID is required")
	}

	result, err := uc.transportRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete transport", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.cache.invalidate(ctx, cachePrefixTransports)
	uc.events.publish(ctx, domain.ResourceTransport, domain.ActionDelete, id, nil)

	return &dto.MutationResponse{ID: id, Message: "Transport deleted successfully", Result: result}, nil
}

// Search - поиск транспорта по строке
func (uc *TransportUseCase) Search(ctx context.Context, term string) (*dto.TransportListResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Search term is required")
	}

	items, err := uc.transportRepo.Search(ctx, term)
	if err != nil {
		uc.logger.Error("Failed to search transports", zap.String("term", term), zap.Error(err))
		return nil, err
	}
	return transportList(items), nil
}

// Ranking - готовая выборка: zero-emission, cheapest, fastest, eco-score
func (uc *TransportUseCase) Ranking(ctx context.Context, ranking string) (*dto.TransportListResponse, error) {
	r := domain.TransportRanking(ranking)
	if r.Path() == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Ranking must be one of zero-emission, cheapest, fastest, eco-score")
	}

	key := cachePrefixTransports + "ranking:" + string(r)
	var cached dto.TransportListResponse
	if uc.rankingCache.get(ctx, key, &cached) {
		return &cached, nil
	}

	items, err := uc.transportRepo.Ranking(ctx, r)
	if err != nil {
		uc.logger.Error("Failed to load transport ranking", zap.String("ranking", string(r)), zap.Error(err))
		return nil, err
	}

	resp := transportList(items)
	uc.rankingCache.set(ctx, key, resp)
	return resp, nil
}
