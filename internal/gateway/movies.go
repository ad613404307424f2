package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

type MovieClient struct {
	client *Client
}

func NewMovieClient(client *Client) *MovieClient {
	return &MovieClient{client: client}
}

type moviePayload struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Duration    int    `json:"duration" validate:"required,gt=0"`
	PosterUrl   string `json:"posterUrl" validate:"required,notblank"`
}

func (m *MovieClient) List(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie

	err := m.client.get(ctx, "/movies", nil, &movies)
	if err != nil {
		return nil, err
	}

	if movies == nil {
		movies = []domain.Movie{}
	}

	return movies, nil
}

func (m *MovieClient) Get(ctx context.Context, id int) (*domain.Movie, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("invalid movie ID provided")
	}

	var movie domain.Movie

	err := m.client.get(ctx, fmt.Sprintf("/movies/%d", id), nil, &movie)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

func (m *MovieClient) Create(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	payload := moviePayload{
		Title:       strings.TrimSpace(movie.Title),
		Description: strings.TrimSpace(movie.Description),
		Duration:    movie.Duration,
		PosterUrl:   strings.TrimSpace(movie.PosterUrl),
	}

	if err := m.client.validatePayload(payload, "movie"); err != nil {
		return nil, err
	}

	var created domain.Movie

	err := m.client.send(ctx, http.MethodPost, "/movies", payload, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (m *MovieClient) Update(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	if movie.ID <= 0 {
		return nil, domain.NewInvalidInputError("invalid movie ID for update")
	}

	movie.Title = strings.TrimSpace(movie.Title)
	movie.Description = strings.TrimSpace(movie.Description)
	movie.PosterUrl = strings.TrimSpace(movie.PosterUrl)

	var updated domain.Movie

	err := m.client.send(ctx, http.MethodPut, fmt.Sprintf("/movies/%d", movie.ID), movie, &updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (m *MovieClient) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.NewInvalidInputError("invalid movie ID provided")
	}

	return m.client.remove(ctx, fmt.Sprintf("/movies/%d", id))
}
