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

// BookingHandler - страница бронирований
type BookingHandler struct {
	bookingUC *usecase.BookingUseCase
	pages     *page.Registry
	logger    *zap.Logger
}

// NewBookingHandler - создание нового BookingHandler
func NewBookingHandler(bookingUC *usecase.BookingUseCase, pages *page.Registry, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		pages:     pages,
		logger:    logger,
	}
}

// List godoc
// @Summary List bookings
// @Description Все бронирования или бронирования туриста (tourist_id, допускается URI)
// @Tags Bookings
// @Produce json
// @Param tourist_id query string false "Tourist ID or URI"
// @Param X-Session-ID header string false "Admin session"
// @Success 200 {object} utils.SuccessResponse{data=domain.BookingList}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	touristID := c.Query("tourist_id")

	list, meta, err := runPage(c, h.pages, pageBookings, "fetch-list",
		func(ctx context.Context) (*domain.BookingList, string, error) {
			var (
				list *domain.BookingList
				err  error
			)
			if touristID != "" {
				list, err = h.bookingUC.ListByTourist(ctx, touristID)
			} else {
				list, err = h.bookingUC.List(ctx)
			}
			if err != nil {
				return nil, "", err
			}
			return list, fmt.Sprintf("Loaded %d bookings", list.Count), nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}

	meta.Total = list.Count
	return utils.SendSuccess(c, list, meta)
}

// Get godoc
// @Summary Get booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Booking}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	booking, meta, err := runPage(c, h.pages, pageBookings, "fetch-one",
		func(ctx context.Context) (*domain.Booking, string, error) {
			b, err := h.bookingUC.Get(ctx, id)
			return b, "", err
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, meta)
}

// Create godoc
// @Summary Create booking
// @Description Поля формы в именовании админки, переводятся в формат travel API
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.BookingRequest true "Booking form"
// @Success 201 {object} utils.SuccessResponse{data=domain.BookingCreated}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	created, meta, err := runPage(c, h.pages, pageBookings, "create",
		func(ctx context.Context) (*domain.BookingCreated, string, error) {
			res, err := h.bookingUC.Create(ctx, req)
			if err != nil {
				return nil, "", err
			}
			message := res.Message
			if message == "" {
				message = "Booking created successfully"
			}
			return res, message, nil
		})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, created, meta)
}

// Update godoc
// @Summary Update booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.BookingUpdateRequest true "Changed fields"
// @Success 200 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.BookingUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	res, meta, err := runPage(c, h.pages, pageBookings, "update",
		func(ctx context.Context) (*dto.MutationResponse, string, error) {
			res, err := h.bookingUC.Update(ctx, id, req)
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
// @Summary Delete booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.MutationResponse}
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res, meta, err := runPage(c, h.pages, pageBookings, "delete",
		func(ctx context.Context) (*dto.MutationResponse, string, error) {
			res, err := h.bookingUC.Delete(ctx, id)
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
