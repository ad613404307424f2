// Package booking holds the reconciliation core of the application: joining
// showtimes with movies, deriving seat availability, and running the two-step
// booking and cancellation flows against a resource store that offers no
// cross-resource transactions.
package booking

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

// ShowtimeService assembles showtime read models. Movie lookups are treated
// as non-critical: a showtime is always returned renderable, with a
// placeholder movie when the catalog cannot deliver the real one.
type ShowtimeService struct {
	showtimes domain.ShowtimeGateway
	movies    domain.MovieGateway
	rooms     domain.RoomGateway
	logger    *slog.Logger
}

func NewShowtimeService(
	showtimes domain.ShowtimeGateway,
	movies domain.MovieGateway,
	rooms domain.RoomGateway,
	logger *slog.Logger,
) *ShowtimeService {
	return &ShowtimeService{
		showtimes: showtimes,
		movies:    movies,
		rooms:     rooms,
		logger:    logger,
	}
}

// ListByRoom returns the room's showtimes joined with their movies.
func (s *ShowtimeService) ListByRoom(ctx context.Context, roomID int) ([]domain.ShowtimeWithMovie, error) {
	showtimes, err := s.showtimes.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return s.joinMovies(ctx, showtimes), nil
}

// Get returns one showtime joined with its movie. A missing showtime is a
// hard failure; a missing movie is not.
func (s *ShowtimeService) Get(ctx context.Context, id int) (*domain.ShowtimeWithMovie, error) {
	showtime, err := s.showtimes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.Get(ctx, showtime.MovieID)
	if err != nil || movie == nil {
		s.logger.Warn("movie lookup failed, substituting placeholder",
			"showtime_id", id, "movie_id", showtime.MovieID, "error", err)

		placeholder := domain.NewNotFoundMovie(showtime.MovieID)

		return &domain.ShowtimeWithMovie{Showtime: *showtime, Movie: placeholder}, nil
	}

	movie.Source = domain.MovieSourceCatalog

	return &domain.ShowtimeWithMovie{Showtime: *showtime, Movie: *movie}, nil
}

// joinMovies attaches a movie to every showtime in the batch. Each distinct
// movie id is fetched exactly once, concurrently; a failed fetch yields a
// not-found placeholder for that id instead of failing the batch.
func (s *ShowtimeService) joinMovies(ctx context.Context, showtimes []domain.Showtime) []domain.ShowtimeWithMovie {
	var movieIDs []int

	seen := make(map[int]bool)
	for _, showtime := range showtimes {
		if !seen[showtime.MovieID] {
			seen[showtime.MovieID] = true
			movieIDs = append(movieIDs, showtime.MovieID)
		}
	}

	fetched := make([]domain.Movie, len(movieIDs))

	var wg sync.WaitGroup
	for i, movieID := range movieIDs {
		wg.Add(1)

		go func(i, movieID int) {
			defer wg.Done()

			movie, err := s.movies.Get(ctx, movieID)
			if err != nil || movie == nil {
				s.logger.Warn("movie lookup failed, substituting placeholder",
					"movie_id", movieID, "error", err)

				fetched[i] = domain.NewNotFoundMovie(movieID)
				return
			}

			movie.Source = domain.MovieSourceCatalog
			fetched[i] = *movie
		}(i, movieID)
	}
	wg.Wait()

	// Keyed by the id the store reported, not the id requested, so a record
	// answering under the wrong id falls through to the unknown placeholder.
	moviesByID := make(map[int]domain.Movie, len(fetched))
	for _, movie := range fetched {
		moviesByID[movie.ID] = movie
	}

	joined := make([]domain.ShowtimeWithMovie, len(showtimes))
	for i, showtime := range showtimes {
		movie, ok := moviesByID[showtime.MovieID]
		if !ok {
			movie = domain.NewUnknownMovie(showtime.MovieID)
		}

		joined[i] = domain.ShowtimeWithMovie{Showtime: showtime, Movie: movie}
	}

	return joined
}

// SeatMap is the seat-selection read model for one showtime.
type SeatMap struct {
	Showtime domain.ShowtimeWithMovie
	Room     domain.Room
	Seats    []domain.SeatWithAvailability
}

// SeatMap loads the showtime and its room and annotates every seat with
// availability. It is recomputed from store state on every call.
func (s *ShowtimeService) SeatMap(ctx context.Context, showtimeID int) (*SeatMap, error) {
	showtime, err := s.Get(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.Get(ctx, showtime.RoomID)
	if err != nil {
		return nil, err
	}

	return &SeatMap{
		Showtime: *showtime,
		Room:     *room,
		Seats:    AnnotateSeats(room.Seats, showtime.BookedSeats),
	}, nil
}
