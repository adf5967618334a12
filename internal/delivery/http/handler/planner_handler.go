package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/utils"
	"github.com/ecotravel-admin/internal/usecase"
	"github.com/ecotravel-admin/internal/usecase/dto"
	"github.com/ecotravel-admin/internal/usecase/page"
)

// PlannerHandler - сравнение активностей, оптимизация поездки и маршрут на три дня
type PlannerHandler struct {
	plannerUC *usecase.PlannerUseCase
	pages     *page.Registry
	logger    *zap.Logger
}

// NewPlannerHandler - создание нового PlannerHandler
func NewPlannerHandler(plannerUC *usecase.PlannerUseCase, pages *page.Registry, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: plannerUC,
		pages:     pages,
		logger:    logger,
	}
}

// ListActivities godoc
// @Summary List activities for the comparison pickers
// @Tags Planner
// @Produce json
// @Param type query string false "AdventureActivity, CulturalActivity or NatureActivity"
// @Success 200 {object} utils.SuccessResponse{data=domain.ActivityList}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/activities [get]
func (h *PlannerHandler) ListActivities(c *fiber.Ctx) error {
	activityType := c.Query("type")

	res, meta, err := runPage(c, h.pages, pageCompare, "fetch-activities",
		func(ctx context.Context) (*domain.ActivityList, string, error) {
			res, err := h.plannerUC.ListActivities(ctx, activityType)
			if err != nil {
				return nil, "", err
			}
			return res, "Activities loaded", nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	meta.Total = res.Count
	return utils.SendSuccess(c, res, meta)
}

// Compare godoc
// @Summary Compare two activities
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Activities"
// @Success 200 {object} utils.SuccessResponse{data=domain.Comparison}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/activities/compare [post]
func (h *PlannerHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	res, meta, err := runPage(c, h.pages, pageCompare, "compare",
		func(ctx context.Context) (*domain.Comparison, string, error) {
			res, err := h.plannerUC.Compare(ctx, req)
			if err != nil {
				return nil, "", err
			}
			if !res.Available {
				return res, "No comparison data available", nil
			}
			return res, "Comparison ready", nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, meta)
}

// OptimizeTrip godoc
// @Summary Optimize a trip for carbon footprint
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body dto.TripRequest true "Trip"
// @Success 200 {object} utils.SuccessResponse{data=domain.OptimizedTrip}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/trips/optimize [post]
func (h *PlannerHandler) OptimizeTrip(c *fiber.Ctx) error {
	var req dto.TripRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	res, meta, err := runPage(c, h.pages, pageTrip, "optimize",
		func(ctx context.Context) (*domain.OptimizedTrip, string, error) {
			res, err := h.plannerUC.OptimizeTrip(ctx, req)
			if err != nil {
				return nil, "", err
			}
			return res, "Trip optimized", nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, meta)
}

// GenerateItinerary godoc
// @Summary Generate a three-day itinerary
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body dto.ItineraryRequest true "Itinerary parameters"
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/itineraries/three-day [post]
func (h *PlannerHandler) GenerateItinerary(c *fiber.Ctx) error {
	var req dto.ItineraryRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	res, meta, err := runPage(c, h.pages, pageItinerary, "generate",
		func(ctx context.Context) (*domain.Itinerary, string, error) {
			res, err := h.plannerUC.GenerateItinerary(ctx, req)
			if err != nil {
				return nil, "", err
			}
			return res, "Itinerary generated", nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	meta.Total = len(res.Days)
	return utils.SendSuccess(c, res, meta)
}
