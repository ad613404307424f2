package app

import (
	"net/http"

	"github.com/Huseelk/cinema-booking-app/api"
	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

func (app *application) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieGateway.List(r.Context())
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	resp := make([]api.Movie, len(movies))
	for i, movie := range movies {
		resp[i] = toApiMovie(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieGateway.Get(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(*movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	created, err := app.movieGateway.Create(r.Context(), toDomainMovie(0, input))
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiMovie(*created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.MovieRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	updated, err := app.movieGateway.Update(r.Context(), toDomainMovie(id, input))
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(*updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieGateway.Delete(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDomainMovie(id int, input api.MovieRequest) domain.Movie {
	return domain.Movie{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		PosterUrl:   input.PosterUrl,
	}
}

func toApiMovie(movie domain.Movie) api.Movie {
	return api.Movie{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		PosterUrl:   movie.PosterUrl,
	}
}
