package usecase

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/normalize"
	"github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/validator"
	"github.com/ecotravel-admin/internal/usecase/dto"
)

// PlannerUseCase - сравнение активностей, оптимизация поездки и генерация маршрута.
// Сами вычисления выполняет travel API, здесь только проверка входа и нормализация ответа.
type PlannerUseCase struct {
	plannerRepo repository.PlannerRepository
	logger      *zap.Logger
}

// NewPlannerUseCase - создание нового PlannerUseCase
func NewPlannerUseCase(plannerRepo repository.PlannerRepository, logger *zap.Logger) *PlannerUseCase {
	return &PlannerUseCase{
		plannerRepo: plannerRepo,
		logger:      logger,
	}
}

// ListActivities - активности для выбора на странице сравнения.
// activityType пустой или один из domain.ActivityTypes.
func (uc *PlannerUseCase) ListActivities(ctx context.Context, activityType string) (*domain.ActivityList, error) {
	activityType = strings.TrimSpace(activityType)
	if activityType != "" && !slices.Contains(domain.ActivityTypes, activityType) {
		return nil, errors.ErrInvalidRequest.WithMessage("Unknown activity type: " + activityType)
	}

	list, err := uc.plannerRepo.ListActivities(ctx, activityType)
	if err != nil {
		uc.logger.Error("Failed to list activities", zap.String("type", activityType), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// Compare - сравнение двух активностей
func (uc *PlannerUseCase) Compare(ctx context.Context, req dto.CompareRequest) (*domain.Comparison, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	data, err := uc.plannerRepo.CompareActivities(ctx, req.ActivityID1, req.ActivityID2)
	if err != nil {
		uc.logger.Error("Failed to compare activities",
			zap.String("activity1", req.ActivityID1),
			zap.String("activity2", req.ActivityID2),
			zap.Error(err))
		return nil, err
	}

	result := normalize.NormalizeComparison(data,
		domain.ComparedActivity{ID: req.ActivityID1, Name: req.Activity1Name},
		domain.ComparedActivity{ID: req.ActivityID2, Name: req.Activity2Name},
	)
	if result.Source != domain.ComparisonSourceSchema {
		uc.logger.Warn("Comparison response does not match schema",
			zap.String("source", result.Source),
			zap.Bool("available", result.Available))
	}
	return &result, nil
}

// OptimizeTrip - оптимизация поездки по углеродному следу
func (uc *PlannerUseCase) OptimizeTrip(ctx context.Context, req dto.TripRequest) (*domain.OptimizedTrip, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	tripReq := req.ToDomain()
	data, err := uc.plannerRepo.OptimizeTrip(ctx, tripReq)
	if err != nil {
		uc.logger.Error("Failed to optimize trip",
			zap.String("tourist_id", tripReq.TouristID),
			zap.String("mode", string(tripReq.OptimizationMode)),
			zap.Error(err))
		return nil, err
	}

	trip := normalize.NormalizeTrip(data, tripReq)
	if !trip.SchemaValid {
		_, problems := normalize.TripSchema.Check(data)
		uc.logger.Warn("Trip optimizer response does not match schema", zap.Strings("problems", problems))
	}
	return &trip, nil
}

// GenerateItinerary - трёхдневный маршрут
func (uc *PlannerUseCase) GenerateItinerary(ctx context.Context, req dto.ItineraryRequest) (*domain.Itinerary, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	itReq := req.ToDomain()
	data, err := uc.plannerRepo.GenerateItinerary(ctx, itReq)
	if err != nil {
		uc.logger.Error("Failed to generate itinerary",
			zap.String("start_date", itReq.StartDate),
			zap.String("difficulty", itReq.Difficulty),
			zap.Error(err))
		return nil, err
	}

	itinerary := normalize.NormalizeItinerary(data, itReq)
	if !itinerary.SchemaValid {
		uc.logger.Warn("Itinerary response does not match schema", zap.String("query", itinerary.Query))
	}
	return &itinerary, nil
}
