package backend

import (
	"context"
	"net/http"

	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/domain/repository"
	"github.com/ecotravel-admin/internal/mapping"
	"github.com/ecotravel-admin/internal/normalize"
	"github.com/ecotravel-admin/internal/pkg/record"
)

type bookingClient struct {
	*Client
}

// NewBookingClient создает клиент бронирований
func NewBookingClient(c *Client) repository.BookingRepository {
	return &bookingClient{Client: c}
}

func (c *bookingClient) List(ctx context.Context) (*domain.BookingList, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: "/bookings/all"})
	if err != nil {
		return nil, err
	}
	return bookingList(body, ""), nil
}

func (c *bookingClient) ListByTourist(ctx context.Context, touristID string) (*domain.BookingList, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: "/bookings/by-tourist/" + segment(touristID)})
	if err != nil {
		return nil, err
	}
	return bookingList(body, touristID), nil
}

func bookingList(body any, touristID string) *domain.BookingList {
	bookings := mapping.BookingsFromBackend(normalize.ExtractList(body, normalize.BookingListKeys...))
	return &domain.BookingList{
		Bookings:  bookings,
		Count:     normalize.ListCount(body, len(bookings)),
		TouristID: touristID,
	}
}

func (c *bookingClient) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	body, err := c.do(ctx, request{method: http.MethodGet, path: "/bookings/" + segment(id)})
	if err != nil {
		return nil, err
	}
	obj, err := object(body, "booking")
	if err != nil {
		return nil, err
	}
	booking := mapping.BookingFromBackend(obj)
	return &booking, nil
}

func (c *bookingClient) Create(ctx context.Context, payload domain.BookingCreate) (*domain.BookingCreated, error) {
	body, err := c.do(ctx, request{method: http.MethodPost, path: "/bookings/create", body: payload})
	if err != nil {
		return nil, err
	}
	obj := result(body)
	created := &domain.BookingCreated{
		Status:           obj.String("status"),
		BookingID:        obj.String("booking_id"),
		ConfirmationCode: obj.String("confirmation_code"),
		Message:          obj.String("message"),
	}
	if created.BookingID == "" {
		created.BookingID = payload.BookingID
	}
	return created, nil
}

func (c *bookingClient) Update(ctx context.Context, id string, payload domain.BookingUpdate) (record.Record, error) {
	body, err := c.do(ctx, request{method: http.MethodPut, path: "/bookings/" + segment(id), body: payload})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}

func (c *bookingClient) Delete(ctx context.Context, id string) (record.Record, error) {
	body, err := c.do(ctx, request{method: http.MethodDelete, path: "/bookings/" + segment(id)})
	if err != nil {
		return nil, err
	}
	return result(body), nil
}
