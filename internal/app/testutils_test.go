package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/Huseelk/cinema-booking-app/internal/mocks"
	appvalidator "github.com/Huseelk/cinema-booking-app/internal/validator"
)

type testGateways struct {
	rooms     *mocks.MockRoomGateway
	movies    *mocks.MockMovieGateway
	showtimes *mocks.MockShowtimeGateway
	bookings  *mocks.MockBookingGateway
}

func newTestApplication() (*application, *testGateways) {
	gateways := &testGateways{
		rooms:     new(mocks.MockRoomGateway),
		movies:    new(mocks.MockMovieGateway),
		showtimes: new(mocks.MockShowtimeGateway),
		bookings:  new(mocks.MockBookingGateway),
	}

	app := &application{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:       appvalidator.NewValidator(),
		roomGateway:     gateways.rooms,
		movieGateway:    gateways.movies,
		showtimeGateway: gateways.showtimes,
		bookingGateway:  gateways.bookings,
	}
	app.initServices()

	return app, gateways
}

// executeRequest drives the full router so URL parameters and middleware
// behave exactly as they do in production.
func executeRequest(t *testing.T, app *application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)

	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.NewDecoder(rr.Body).Decode(dst); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}
