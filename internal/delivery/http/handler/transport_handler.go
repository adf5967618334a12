package handler

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/utils"
	"github.com/ecotravel-admin/internal/usecase"
	"github.com/ecotravel-admin/internal/usecase/dto"
	"github.com/ecotravel-admin/internal/usecase/page"
)

// TransportHandler - страница транспорта
type TransportHandler struct {
	transportUC *usecase.TransportUseCase
	pages       *page.Registry
	logger      *zap.Logger
}

// NewTransportHandler - создание нового TransportHandler
func NewTransportHandler(transportUC *usecase.TransportUseCase, pages *page.Registry, logger *zap.Logger) *TransportHandler {
	return &TransportHandler{
		transportUC: transportUC,
		pages:       pages,
		logger:      logger,
	}
}

func (h *TransportHandler) sendList(c *fiber.Ctx, operation string, fn func(ctx context.Context) (*dto.TransportListResponse, error)) error {
	list, meta, err := runPage(c, h.pages, pageTransports, operation,
		func(ctx context.Context) (*dto.TransportListResponse, string, error) {
			list, err := fn(ctx)
			if err != nil {
				return nil, "", err
			}
			return list, fmt.Sprintf("Loaded %d transports", list.Count), nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}

	meta.Total = list.Count
	return utils.SendSuccess(c, list, meta)
}

func (h *TransportHandler) sendMutation(c *fiber.Ctx, operation string, status int, fn func(ctx context.Context) (*dto.MutationResponse, error)) error {
	res, meta, err := runPage(c, h.pages, pageTransports, operation,
		func(ctx context.Context) (*dto.MutationResponse, string, error) {
			res, err := fn(ctx)
			if err != nil {
				return nil, "", err
			}
			return res, res.Message, nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	if status == fiber.StatusCreated {
		return utils.SendCreated(c, res, meta)
	}
	return utils.SendSuccess(c, res, meta)
}

// List godoc
// @Summary List transports
// @Tags Transports
// @Produce json
// @Param kind query string false "bike, electric-vehicle or public-transport"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransportListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/transports [get]
func (h *TransportHandler) List(c *fiber.Ctx) error {
	kind := c.Query("kind")
	return h.sendList(c, "fetch-list", func(ctx context.Context) (*dto.TransportListResponse, error) {
		return h.transportUC.List(ctx, kind)
	})
}

// Search godoc
// @Summary Search transports
// @Tags Transports
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransportListResponse}
// @Router /api/v1/transports/search [get]
func (h *TransportHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	return h.sendList(c, "search", func(ctx context.Context) (*dto.TransportListResponse, error) {
		return h.transportUC.Search(ctx, term)
	})
}

// Ranking godoc
// @Summary Transport ranking
// @Tags Transports
// @Produce json
// @Param ranking path string true "zero-emission, cheapest, fastest or eco-score"
// @Success 200 {object} utils.SuccessResponse{data=dto.TransportListResponse}
// @Router /api/v1/transports/rankings/{ranking} [get]
func (h *TransportHandler) Ranking(c *fiber.Ctx) error {
	ranking := c.Params("ranking")
	return h.sendList(c, "ranking", func(ctx context.Context) (*dto.TransportListResponse, error) {
		return h.transportUC.Ranking(ctx, ranking)
	})
}

// Get godoc
// @Summary Get transport
// @Tags Transports
// @Produce json
// @Param id path string true "Transport ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Transport}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/transports/{id} [get]
func (h *TransportHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	tr, meta, err := runPage(c, h.pages, pageTransports, "fetch-one",
		func(ctx context.Context) (*domain.Transport, string, error) {
			tr, err := h.transportUC.Get(ctx, id)
			return tr, "", err
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tr, meta)
}

// Create godoc
// @Summary Create transport
// @Tags Transports
// @Accept json
// @Produce json
// @Param kind path string true "bike, electric-vehicle or public-transport"
// @Param request body map[string]interface{} true "Transport form"
// @Success 201 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/transports/{kind} [post]
func (h *TransportHandler) Create(c *fiber.Ctx) error {
	kind := c.Params("kind")
	form, err := parseForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.sendMutation(c, "create", fiber.StatusCreated, func(ctx context.Context) (*dto.MutationResponse, error) {
		return h.transportUC.Create(ctx, kind, form)
	})
}

// Update godoc
// @Summary Update transport
// @Description Изменяются transportName, availability, pricePerKm, operatingHours
// @Tags Transports
// @Accept json
// @Produce json
// @Param id path string true "Transport ID"
// @Param request body map[string]interface{} true "Changed fields"
// @Success 200 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Router /api/v1/transports/{id} [put]
func (h *TransportHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	form, err := parseForm(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.sendMutation(c, "update", fiber.StatusOK, func(ctx context.Context) (*dto.MutationResponse, error) {
		return h.transportUC.Update(ctx, id, form)
	})
}

// Delete godoc
// @Summary Delete transport
// @Tags Transports
// @Produce json
// @Param id path string true "Transport ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Router /api/v1/transports/{id} [delete]
func (h *TransportHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.sendMutation(c, "delete", fiber.StatusOK, func(ctx context.Context) (*dto.MutationResponse, error) {
		return h.transportUC.Delete(ctx, id)
	})
}
