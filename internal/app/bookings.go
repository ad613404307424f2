package app

import (
	"net/http"
	"strings"

	"github.com/Huseelk/cinema-booking-app/api"
	"github.com/Huseelk/cinema-booking-app/internal/booking"
	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

func (app *application) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		userID = GuestUserID
	}

	bookings, err := app.bookingGateway.ListByUser(r.Context(), userID)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	resp := make([]api.Booking, len(bookings))
	for i, b := range bookings {
		resp[i] = toApiBooking(b)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	b, err := app.bookingGateway.Get(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiBooking(*b), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	userID := strings.TrimSpace(input.UserId)
	if userID == "" {
		userID = GuestUserID
	}

	outcome := app.bookingService.Create(r.Context(), booking.CreateBookingRequest{
		ShowtimeID:  input.ShowtimeId,
		SeatIDs:     input.SeatIds,
		UserID:      userID,
		BookingTime: input.BookingTime,
	})

	app.writeOutcome(w, r, outcome, http.StatusCreated)
}

func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	outcome := app.bookingService.Cancel(r.Context(), id)

	app.writeOutcome(w, r, outcome, http.StatusOK)
}

// writeOutcome translates a flow outcome into HTTP. Partial success is a
// distinct, explicit response: the durable step committed, the ledger write
// did not, and the client has to know the difference.
func (app *application) writeOutcome(w http.ResponseWriter, r *http.Request, outcome booking.Outcome, doneStatus int) {
	switch outcome.Status {
	case booking.StatusDone:
		resp := api.BookingOutcomeResponse{
			Status:    string(outcome.Status),
			Booking:   toApiBookingPtr(outcome.Booking),
			Reference: outcome.Reference,
		}

		err := app.writeJSON(w, doneStatus, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

	case booking.StatusPartialSuccess:
		resp := api.BookingOutcomeResponse{
			Status:    string(outcome.Status),
			Booking:   toApiBookingPtr(outcome.Booking),
			Reference: outcome.Reference,
			Warning:   outcome.Err.Error(),
		}

		err := app.writeJSON(w, http.StatusAccepted, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

	case booking.StatusRejectedInput:
		app.errorResponse(w, r, http.StatusUnprocessableEntity, outcome.Err.Error())

	default:
		app.handleDomainError(w, r, outcome.Err)
	}
}

func toApiBooking(b domain.Booking) api.Booking {
	seatIds := b.SeatIDs
	if seatIds == nil {
		seatIds = []string{}
	}

	return api.Booking{
		Id:          b.ID,
		ShowtimeId:  b.ShowtimeID,
		SeatIds:     seatIds,
		UserId:      b.UserID,
		BookingTime: b.BookingTime,
		TotalPrice:  b.TotalPrice,
	}
}

func toApiBookingPtr(b *domain.Booking) *api.Booking {
	if b == nil {
		return nil
	}

	resp := toApiBooking(*b)

	return &resp
}
