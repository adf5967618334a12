package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ecotravel-admin/internal/delivery/http/middleware"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/utils"
	"github.com/ecotravel-admin/internal/usecase/page"
)

// Страницы админки, по которым ведётся состояние
const (
	pageBookings   = "bookings"
	pageLocations  = "locations"
	pageTransports = "transports"
	pageCompare    = "compare"
	pageTrip       = "trip-optimizer"
	pageItinerary  = "itinerary"
)

// runPage выполняет операцию как текущую операцию страницы сессии запроса
// и возвращает meta с итоговым состоянием страницы
func runPage[T any](
	c *fiber.Ctx,
	pages *page.Registry,
	pageName, operation string,
	fn func(ctx context.Context) (T, string, error),
) (T, *utils.Meta, error) {
	ctrl := pages.Controller(middleware.SessionID(c), pageName)
	res, err := page.Run(c.UserContext(), ctrl, operation, fn)

	st := ctrl.State()
	meta := &utils.Meta{
		Page:      pageName,
		Status:    string(st.Status),
		Message:   st.Message,
		RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
	}
	return res, meta, err
}

func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.ErrInvalidRequest.WithMessage("Invalid request body").Wrap(err)
	}
	return nil
}
