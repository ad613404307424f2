package domain

import "context"

// Seat is one addressable position inside a room's layout. Seats are fixed
// once the room is created; availability is a per-showtime projection, not a
// property of the seat itself.
type Seat struct {
	SeatID string `json:"seatId"`
	Row    string `json:"row"`
	Number int    `json:"number"`
}

type Room struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seatsPerRow"`
	Seats       []Seat `json:"seats"`
}

// SeatWithAvailability is a derived view of a seat for one showtime. It is
// never persisted and is recomputed on every seat-selection read.
type SeatWithAvailability struct {
	Seat
	Available bool `json:"isAvailable"`
}

type RoomGateway interface {
	List(ctx context.Context) ([]Room, error)
	Get(ctx context.Context, id int) (*Room, error)
	Create(ctx context.Context, room Room) (*Room, error)
	Update(ctx context.Context, room Room) (*Room, error)
	Delete(ctx context.Context, id int) error
}
