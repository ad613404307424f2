package domain

import "context"

// MovieSource tags where a movie value came from, so callers can tell a real
// catalog record apart from a placeholder without matching on titles.
type MovieSource string

const (
	MovieSourceCatalog  MovieSource = "catalog"
	MovieSourceNotFound MovieSource = "not_found"
	MovieSourceUnknown  MovieSource = "unknown"
)

// PlaceholderPosterURL is served for any movie that could not be resolved.
const PlaceholderPosterURL = "/assets/images/movie-placeholder.svg"

type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	PosterUrl   string `json:"posterUrl"`

	Source MovieSource `json:"-"`
}

// NewNotFoundMovie builds the substitute record used when a movie lookup
// fails. A failed lookup must never block rendering the showtime it belongs
// to.
func NewNotFoundMovie(id int) Movie {
	return Movie{
		ID:          id,
		Title:       "Movie Not Found",
		Description: "This movie information is currently unavailable.",
		Duration:    0,
		PosterUrl:   PlaceholderPosterURL,
		Source:      MovieSourceNotFound,
	}
}

// NewUnknownMovie builds the fallback used when a showtime's movie id matches
// nothing in the fetched batch at all.
func NewUnknownMovie(id int) Movie {
	return Movie{
		ID:          id,
		Title:       "Unknown Movie",
		Description: "Movie information unavailable",
		Duration:    0,
		PosterUrl:   PlaceholderPosterURL,
		Source:      MovieSourceUnknown,
	}
}

type MovieGateway interface {
	List(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie Movie) (*Movie, error)
	Update(ctx context.Context, movie Movie) (*Movie, error)
	Delete(ctx context.Context, id int) error
}
