package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

type BookingClient struct {
	client *Client
}

func NewBookingClient(client *Client) *BookingClient {
	return &BookingClient{client: client}
}

type bookingPayload struct {
	ShowtimeID  int      `json:"showtimeId" validate:"required,gt=0"`
	SeatIDs     []string `json:"seatIds" validate:"required,min=1,dive,notblank"`
	UserID      string   `json:"userId" validate:"required,notblank"`
	BookingTime string   `json:"bookingTime" validate:"required,notblank"`
	TotalPrice  float64  `json:"totalPrice" validate:"required,gt=0"`
}

func (b *BookingClient) List(ctx context.Context) ([]domain.Booking, error) {
	return b.list(ctx, nil)
}

func (b *BookingClient) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.NewInvalidInputError("invalid user ID provided")
	}

	query := url.Values{}
	query.Set("userId", userID)

	return b.list(ctx, query)
}

func (b *BookingClient) list(ctx context.Context, query url.Values) ([]domain.Booking, error) {
	var bookings []domain.Booking

	err := b.client.get(ctx, "/bookings", query, &bookings)
	if err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}

	return bookings, nil
}

func (b *BookingClient) Get(ctx context.Context, id int) (*domain.Booking, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("invalid booking ID provided")
	}

	var booking domain.Booking

	err := b.client.get(ctx, fmt.Sprintf("/bookings/%d", id), nil, &booking)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (b *BookingClient) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	payload := bookingPayload{
		ShowtimeID:  booking.ShowtimeID,
		SeatIDs:     booking.SeatIDs,
		UserID:      strings.TrimSpace(booking.UserID),
		BookingTime: strings.TrimSpace(booking.BookingTime),
		TotalPrice:  booking.TotalPrice,
	}
	if payload.BookingTime == "" {
		payload.BookingTime = time.Now().UTC().Format(time.RFC3339)
	}

	if err := b.client.validatePayload(payload, "booking"); err != nil {
		return nil, err
	}

	var created domain.Booking

	err := b.client.send(ctx, http.MethodPost, "/bookings", payload, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (b *BookingClient) Update(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	if booking.ID <= 0 {
		return nil, domain.NewInvalidInputError("invalid booking ID for update")
	}

	payload := bookingPayload{
		ShowtimeID:  booking.ShowtimeID,
		SeatIDs:     booking.SeatIDs,
		UserID:      strings.TrimSpace(booking.UserID),
		BookingTime: strings.TrimSpace(booking.BookingTime),
		TotalPrice:  booking.TotalPrice,
	}

	if err := b.client.validatePayload(payload, "booking"); err != nil {
		return nil, err
	}

	var updated domain.Booking

	err := b.client.send(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d", booking.ID), payload, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (b *BookingClient) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.NewInvalidInputError("invalid booking ID provided")
	}

	return b.client.remove(ctx, fmt.Sprintf("/bookings/%d", id))
}
