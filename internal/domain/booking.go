package domain

import "context"

// Booking is a user's claim on a set of seats for a showtime. Bookings are
// created and deleted, never updated in place by the booking flow; Update
// exists only as admin pass-through.
type Booking struct {
	ID          int      `json:"id"`
	ShowtimeID  int      `json:"showtimeId"`
	SeatIDs     []string `json:"seatIds"`
	UserID      string   `json:"userId"`
	BookingTime string   `json:"bookingTime"`
	TotalPrice  float64  `json:"totalPrice"`
}

type BookingGateway interface {
	List(ctx context.Context) ([]Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	Get(ctx context.Context, id int) (*Booking, error)
	Create(ctx context.Context, booking Booking) (*Booking, error)
	Update(ctx context.Context, booking Booking) (*Booking, error)
	Delete(ctx context.Context, id int) error
}
