package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

func TestShowtimeListByRoomAddsEqualityFilter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/showtimes", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("roomId"))

		w.Write([]byte(`[{"id": 1, "movieId": 10, "roomId": 3, "price": 12.5, "bookedSeats": ["A1"]}]`))
	}))

	showtimes, err := NewShowtimeClient(client).ListByRoom(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, showtimes, 1)
	assert.Equal(t, 3, showtimes[0].RoomID)
}

func TestShowtimeListByRoomRejectsInvalidRoomID(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler())

	_, err := NewShowtimeClient(client).ListByRoom(context.Background(), -1)

	assert.True(t, domain.IsInvalidInput(err))
}

func TestShowtimeUpdateWritesEmptyArrayForNilSeats(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/showtimes/7", r.URL.Path)

		var payload map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		// json-server replaces the whole record; an absent or null field would
		// erase the booked-seat list instead of emptying it.
		assert.JSONEq(t, "[]", string(payload["bookedSeats"]))

		w.Write([]byte(`{"id": 7, "movieId": 10, "roomId": 3, "bookedSeats": []}`))
	}))

	updated, err := NewShowtimeClient(client).Update(context.Background(), domain.Showtime{
		ID:      7,
		MovieID: 10,
		RoomID:  3,
	})

	require.NoError(t, err)
	assert.NotNil(t, updated.BookedSeats)
}
