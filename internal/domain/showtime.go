package domain

import "context"

// Showtime is a scheduled screening of a movie in a room. BookedSeats is
// semantically a set but is stored as a list by the resource store; writers
// must deduplicate, readers must tolerate duplicates in existing data.
type Showtime struct {
	ID          int      `json:"id"`
	MovieID     int      `json:"movieId"`
	RoomID      int      `json:"roomId"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Date        string   `json:"date"`
	Price       float64  `json:"price"`
	BookedSeats []string `json:"bookedSeats"`
}

// ShowtimeWithMovie is a showtime joined with its movie, which is either the
// real catalog record or a placeholder (see Movie.Source). It is a read-only
// projection and is never written back to the store.
type ShowtimeWithMovie struct {
	Showtime
	Movie Movie `json:"movie"`
}

type ShowtimeGateway interface {
	List(ctx context.Context) ([]Showtime, error)
	ListByRoom(ctx context.Context, roomID int) ([]Showtime, error)
	Get(ctx context.Context, id int) (*Showtime, error)
	Update(ctx context.Context, showtime Showtime) (*Showtime, error)
}
