package app

import (
	"net/http"

	"github.com/Huseelk/cinema-booking-app/api"
	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

func (app *application) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := app.roomGateway.List(r.Context())
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	resp := make([]api.Room, len(rooms))
	for i, room := range rooms {
		resp[i] = toApiRoom(room)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "roomId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	room, err := app.roomGateway.Get(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiRoom(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var input api.RoomRequest

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

	created, err := app.roomGateway.Create(r.Context(), toDomainRoom(0, input))
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiRoom(*created), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "roomId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.RoomRequest

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

	updated, err := app.roomGateway.Update(r.Context(), toDomainRoom(id, input))
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiRoom(*updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "roomId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.roomGateway.Delete(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDomainRoom(id int, input api.RoomRequest) domain.Room {
	seats := make([]domain.Seat, len(input.Seats))
	for i, seat := range input.Seats {
		seats[i] = domain.Seat{SeatID: seat.SeatId, Row: seat.Row, Number: seat.Number}
	}

	return domain.Room{
		ID:          id,
		Name:        input.Name,
		Color:       input.Color,
		Rows:        input.Rows,
		SeatsPerRow: input.SeatsPerRow,
		Seats:       seats,
	}
}

func toApiRoom(room domain.Room) api.Room {
	seats := make([]api.Seat, len(room.Seats))
	for i, seat := range room.Seats {
		seats[i] = api.Seat{SeatId: seat.SeatID, Row: seat.Row, Number: seat.Number}
	}

	return api.Room{
		Id:          room.ID,
		Name:        room.Name,
		Color:       room.Color,
		Rows:        room.Rows,
		SeatsPerRow: room.SeatsPerRow,
		Seats:       seats,
	}
}
