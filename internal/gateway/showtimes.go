package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

type ShowtimeClient struct {
	client *Client
}

func NewShowtimeClient(client *Client) *ShowtimeClient {
	return &ShowtimeClient{client: client}
}

func (s *ShowtimeClient) List(ctx context.Context) ([]domain.Showtime, error) {
	return s.list(ctx, nil)
}

func (s *ShowtimeClient) ListByRoom(ctx context.Context, roomID int) ([]domain.Showtime, error) {
	if roomID <= 0 {
		return nil, domain.NewInvalidInputError("invalid room ID provided")
	}

	query := url.Values{}
	query.Set("roomId", strconv.Itoa(roomID))

	return s.list(ctx, query)
}

func (s *ShowtimeClient) list(ctx context.Context, query url.Values) ([]domain.Showtime, error) {
	var showtimes []domain.Showtime

	err := s.client.get(ctx, "/showtimes", query, &showtimes)
	if err != nil {
		return nil, err
	}

	if showtimes == nil {
		showtimes = []domain.Showtime{}
	}

	return showtimes, nil
}

func (s *ShowtimeClient) Get(ctx context.Context, id int) (*domain.Showtime, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("invalid showtime ID provided")
	}

	var showtime domain.Showtime

	err := s.client.get(ctx, fmt.Sprintf("/showtimes/%d", id), nil, &showtime)
	if err != nil {
		return nil, err
	}

	return &showtime, nil
}

// Update writes a full showtime record back to the store. The booking flow
// uses this solely to mutate the bookedSeats list; there is no partial-update
// operation on the store.
func (s *ShowtimeClient) Update(ctx context.Context, showtime domain.Showtime) (*domain.Showtime, error) {
	if showtime.ID <= 0 {
		return nil, domain.NewInvalidInputError("invalid showtime ID provided")
	}

	if showtime.BookedSeats == nil {
		showtime.BookedSeats = []string{}
	}

	var updated domain.Showtime

	err := s.client.send(ctx, http.MethodPut, fmt.Sprintf("/showtimes/%d", showtime.ID), showtime, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
