package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/record"
	"github.com/ecotravel-admin/internal/pkg/utils"
	"github.com/ecotravel-admin/internal/usecase"
	"github.com/ecotravel-admin/internal/usecase/dto"
	"github.com/ecotravel-admin/internal/usecase/page"
)

// LocationHandler - страница локаций (City, NaturalSite, Region)
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	pages      *page.Registry
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, pages *page.Registry, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		pages:      pages,
		logger:     logger,
	}
}

// List godoc
// @Summary List locations
// @Tags Locations
// @Produce json
// @Param type query string false "City, NaturalSite or Region"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locationType := c.Query("type")

	list, meta, err := runPage(c, h.pages, pageLocations, "fetch-list",
		func(ctx context.Context) (*dto.LocationListResponse, string, error) {
			list, err := h.locationUC.List(ctx, locationType)
			if err != nil {
				return nil, "", err
			}
			return list, fmt.Sprintf("Loaded %d locations", list.Count), nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}

	meta.Total = list.Count
	return utils.SendSuccess(c, list, meta)
}

// ListByVariant godoc
// @Summary List locations of one variant
// @Description Читает коллекцию варианта (/locations/cities, natural-sites, regions)
// @Tags Locations
// @Produce json
// @Param type path string true "City, NaturalSite or Region"
// @Success 200 {object} utils.SuccessResponse{data=dto.LocationListResponse}
// @Router /api/v1/locations/variants/{type} [get]
func (h *LocationHandler) ListByVariant(c *fiber.Ctx) error {
	locationType := c.Params("type")

	list, meta, err := runPage(c, h.pages, pageLocations, "fetch-list",
		func(ctx context.Context) (*dto.LocationListResponse, string, error) {
			list, err := h.locationUC.ListByVariant(ctx, locationType)
			if err != nil {
				return nil, "", err
			}
			return list, fmt.Sprintf("Loaded %d locations", list.Count), nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}

	meta.Total = list.Count
	return utils.SendSuccess(c, list, meta)
}

// Get godoc
// @Summary Get location
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Param type query string false "City (default), NaturalSite or Region"
// @Success 200 {object} utils.SuccessResponse{data=domain.Location}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/locations/{id} [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	locationType := c.Query("type", string(domain.LocationTypeCity))

	loc, meta, err := runPage(c, h.pages, pageLocations, "fetch-one",
		func(ctx context.Context) (*domain.Location, string, error) {
			loc, err := h.locationUC.Get(ctx, locationType, id)
			return loc, "", err
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, loc, meta)
}

// Create godoc
// @Summary Create location
// @Description Форма локации; поле type выбирает вариант и набор полей
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Location form"
// @Success 201 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	form, err := parseForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	res, meta, err := runPage(c, h.pages, pageLocations, "create",
		func(ctx context.Context) (*dto.MutationResponse, string, error) {
			res, err := h.locationUC.Create(ctx, form)
			if err != nil {
				return nil, "", err
			}
			return res, res.Message, nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, res, meta)
}

// Update godoc
// @Summary Update location
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body map[string]interface{} true "Location form"
// @Success 200 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Router /api/v1/locations/{id} [put]
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	form, err := parseForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	res, meta, err := runPage(c, h.pages, pageLocations, "update",
		func(ctx context.Context) (*dto.MutationResponse, string, error) {
			res, err := h.locationUC.Update(ctx, id, form)
			if err != nil {
				return nil, "", err
			}
			return res, res.Message, nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, meta)
}

// Delete godoc
// @Summary Delete location
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Router /api/v1/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res, meta, err := runPage(c, h.pages, pageLocations, "delete",
		func(ctx context.Context) (*dto.MutationResponse, string, error) {
			res, err := h.locationUC.Delete(ctx, id)
			if err != nil {
				return nil, "", err
			}
			return res, res.Message, nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, meta)
}

// Nearby godoc
// @Summary Locations within a radius
// @Tags Locations
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius_km query number false "Radius in km, default 50"
// @Param location_type query string false "City, NaturalSite or Region"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locations/nearby [get]
func (h *LocationHandler) Nearby(c *fiber.Ctx) error {
	var req dto.NearbyRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates.Wrap(err))
	}

	res, meta, err := runPage(c, h.pages, pageLocations, "nearby",
		func(ctx context.Context) (*dto.NearbyResponse, string, error) {
			res, err := h.locationUC.Nearby(ctx, req)
			if err != nil {
				return nil, "", err
			}
			return res, fmt.Sprintf("Found %d locations within %.0f km", res.Count, res.RadiusKm), nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}

	meta.Total = res.Count
	return utils.SendSuccess(c, res, meta)
}

// parseForm читает тело формы как есть; поля разбирает usecase
func parseForm(c *fiber.Ctx) (record.Record, error) {
	decoded, err := record.Decode(c.Body())
	if err != nil {
		return nil, apperrors.ErrInvalidRequest.WithMessage("Invalid request body").Wrap(err)
	}
	form, ok := record.From(decoded)
	if !ok {
		return nil, apperrors.ErrInvalidRequest.WithMessage("Request body must be a JSON object")
	}
	return form, nil
}
