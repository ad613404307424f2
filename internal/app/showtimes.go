package app

import (
	"net/http"

	"github.com/Huseelk/cinema-booking-app/api"
	"github.com/Huseelk/cinema-booking-app/internal/booking"
	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

func (app *application) ListShowtimesByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := app.readIDParam(r, "roomId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtimes, err := app.showtimeService.ListByRoom(r.Context(), roomID)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	resp := make([]api.Showtime, len(showtimes))
	for i, showtime := range showtimes {
		resp[i] = toApiShowtime(showtime)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeService.Get(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiShowtime(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seatMap, err := app.showtimeService.SeatMap(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSeatMap(seatMap), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowtime(showtime domain.ShowtimeWithMovie) api.Showtime {
	bookedSeats := showtime.BookedSeats
	if bookedSeats == nil {
		bookedSeats = []string{}
	}

	return api.Showtime{
		Id:          showtime.ID,
		MovieId:     showtime.MovieID,
		RoomId:      showtime.RoomID,
		StartTime:   showtime.StartTime,
		EndTime:     showtime.EndTime,
		Date:        showtime.Date,
		Price:       showtime.Price,
		BookedSeats: bookedSeats,
		Movie:       toApiShowtimeMovie(showtime.Movie),
	}
}

func toApiShowtimeMovie(movie domain.Movie) api.ShowtimeMovie {
	return api.ShowtimeMovie{
		Id:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		PosterUrl:   movie.PosterUrl,
		Source:      string(movie.Source),
	}
}

func toApiSeatMap(seatMap *booking.SeatMap) api.SeatMapResponse {
	seats := make([]api.SeatWithAvailability, len(seatMap.Seats))
	for i, seat := range seatMap.Seats {
		seats[i] = api.SeatWithAvailability{
			SeatId:      seat.SeatID,
			Row:         seat.Row,
			Number:      seat.Number,
			IsAvailable: seat.Available,
		}
	}

	return api.SeatMapResponse{
		ShowtimeId:  seatMap.Showtime.ID,
		RoomId:      seatMap.Room.ID,
		RoomName:    seatMap.Room.Name,
		Rows:        seatMap.Room.Rows,
		SeatsPerRow: seatMap.Room.SeatsPerRow,
		Price:       seatMap.Showtime.Price,
		Movie:       toApiShowtimeMovie(seatMap.Showtime.Movie),
		Seats:       seats,
	}
}
