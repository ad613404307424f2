// Package api defines the request and response shapes of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Seat struct {
	SeatId string `json:"seatId"`
	Row    string `json:"row"`
	Number int    `json:"number"`
}

type SeatWithAvailability struct {
	SeatId      string `json:"seatId"`
	Row         string `json:"row"`
	Number      int    `json:"number"`
	IsAvailable bool   `json:"isAvailable"`
}

type Room struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seatsPerRow"`
	Seats       []Seat `json:"seats"`
}

type RoomRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Color       string `json:"color" validate:"required,notblank"`
	Rows        int    `json:"rows" validate:"required,gt=0"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,gt=0"`
	Seats       []Seat `json:"seats"`
}

type Movie struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	PosterUrl   string `json:"posterUrl"`
}

type MovieRequest struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	PosterUrl   string `json:"posterUrl" validate:"required,notblank"`
}

// ShowtimeMovie carries the joined movie plus its source tag, so clients can
// tell a placeholder from a catalog record without inspecting the title.
type ShowtimeMovie struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	PosterUrl   string `json:"posterUrl"`
	Source      string `json:"source"`
}

type Showtime struct {
	Id          int           `json:"id"`
	MovieId     int           `json:"movieId"`
	RoomId      int           `json:"roomId"`
	StartTime   string        `json:"startTime"`
	EndTime     string        `json:"endTime"`
	Date        string        `json:"date"`
	Price       float64       `json:"price"`
	BookedSeats []string      `json:"bookedSeats"`
	Movie       ShowtimeMovie `json:"movie"`
}

type SeatMapResponse struct {
	ShowtimeId  int                    `json:"showtimeId"`
	RoomId      int                    `json:"roomId"`
	RoomName    string                 `json:"roomName"`
	Rows        int                    `json:"rows"`
	SeatsPerRow int                    `json:"seatsPerRow"`
	Price       float64                `json:"price"`
	Movie       ShowtimeMovie          `json:"movie"`
	Seats       []SeatWithAvailability `json:"seats"`
}

type Booking struct {
	Id          int      `json:"id"`
	ShowtimeId  int      `json:"showtimeId"`
	SeatIds     []string `json:"seatIds"`
	UserId      string   `json:"userId"`
	BookingTime string   `json:"bookingTime"`
	TotalPrice  float64  `json:"totalPrice"`
}

type CreateBookingRequest struct {
	ShowtimeId  int      `json:"showtimeId" validate:"required,gt=0"`
	SeatIds     []string `json:"seatIds" validate:"required,min=1,dive,notblank"`
	UserId      string   `json:"userId"`
	BookingTime string   `json:"bookingTime"`
}

// BookingOutcomeResponse reports how far a booking or cancellation flow got.
// Status "partial_success" means the durable first step committed while the
// seat-ledger update did not; Reference identifies the attempt for support.
type BookingOutcomeResponse struct {
	Status    string   `json:"status"`
	Booking   *Booking `json:"booking,omitempty"`
	Reference string   `json:"reference"`
	Warning   string   `json:"warning,omitempty"`
}
