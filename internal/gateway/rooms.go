package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

type RoomClient struct {
	client *Client
}

func NewRoomClient(client *Client) *RoomClient {
	return &RoomClient{client: client}
}

type roomPayload struct {
	Name        string        `json:"name" validate:"required,notblank"`
	Color       string        `json:"color" validate:"required,notblank"`
	Rows        int           `json:"rows" validate:"required,gt=0"`
	SeatsPerRow int           `json:"seatsPerRow" validate:"required,gt=0"`
	Seats       []domain.Seat `json:"seats"`
}

func (r *RoomClient) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room

	err := r.client.get(ctx, "/rooms", nil, &rooms)
	if err != nil {
		return nil, err
	}

	if rooms == nil {
		rooms = []domain.Room{}
	}

	return rooms, nil
}

func (r *RoomClient) Get(ctx context.Context, id int) (*domain.Room, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("invalid room ID provided")
	}

	var room domain.Room

	err := r.client.get(ctx, fmt.Sprintf("/rooms/%d", id), nil, &room)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *RoomClient) Create(ctx context.Context, room domain.Room) (*domain.Room, error) {
	payload := roomPayload{
		Name:        strings.TrimSpace(room.Name),
		Color:       strings.TrimSpace(room.Color),
		Rows:        room.Rows,
		SeatsPerRow: room.SeatsPerRow,
		Seats:       room.Seats,
	}
	if payload.Seats == nil {
		payload.Seats = []domain.Seat{}
	}

	if err := r.client.validatePayload(payload, "room"); err != nil {
		return nil, err
	}

	var created domain.Room

	err := r.client.send(ctx, http.MethodPost, "/rooms", payload, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *RoomClient) Update(ctx context.Context, room domain.Room) (*domain.Room, error) {
	if room.ID <= 0 {
		return nil, domain.NewInvalidInputError("invalid room ID for update")
	}

	room.Name = strings.TrimSpace(room.Name)
	room.Color = strings.TrimSpace(room.Color)
	if room.Seats == nil {
		room.Seats = []domain.Seat{}
	}

	var updated domain.Room

	err := r.client.send(ctx, http.MethodPut, fmt.Sprintf("/rooms/%d", room.ID), room, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *RoomClient) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.NewInvalidInputError("invalid room ID provided")
	}

	return r.client.remove(ctx, fmt.Sprintf("/rooms/%d", id))
}
