package booking

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

func TestAnnotateSeats(t *testing.T) {
	seats := []domain.Seat{
		{SeatID: "A1", Row: "A", Number: 1},
		{SeatID: "A2", Row: "A", Number: 2},
		{SeatID: "B1", Row: "B", Number: 1},
		{SeatID: "B2", Row: "B", Number: 2},
	}

	tests := []struct {
		name        string
		seats       []domain.Seat
		bookedSeats []string
		want        []domain.SeatWithAvailability
	}{
		{
			name:        "marks booked seats unavailable and keeps order",
			seats:       seats,
			bookedSeats: []string{"A2", "B1"},
			want: []domain.SeatWithAvailability{
				{Seat: seats[0], Available: true},
				{Seat: seats[1], Available: false},
				{Seat: seats[2], Available: false},
				{Seat: seats[3], Available: true},
			},
		},
		{
			name:        "all seats available when nothing is booked",
			seats:       seats,
			bookedSeats: nil,
			want: []domain.SeatWithAvailability{
				{Seat: seats[0], Available: true},
				{Seat: seats[1], Available: true},
				{Seat: seats[2], Available: true},
				{Seat: seats[3], Available: true},
			},
		},
		{
			name:        "booked ids not present in the room are ignored",
			seats:       seats[:2],
			bookedSeats: []string{"Z9", "A1"},
			want: []domain.SeatWithAvailability{
				{Seat: seats[0], Available: false},
				{Seat: seats[1], Available: true},
			},
		},
		{
			name:        "duplicate booked entries collapse to one unavailable seat",
			seats:       seats[:2],
			bookedSeats: []string{"A1", "A1", "A1"},
			want: []domain.SeatWithAvailability{
				{Seat: seats[0], Available: false},
				{Seat: seats[1], Available: true},
			},
		},
		{
			name:        "membership is exact, no normalization",
			seats:       seats[:1],
			bookedSeats: []string{"a1", " A1"},
			want: []domain.SeatWithAvailability{
				{Seat: seats[0], Available: true},
			},
		},
		{
			name:        "empty seat list yields empty result",
			seats:       []domain.Seat{},
			bookedSeats: []string{"A1"},
			want:        []domain.SeatWithAvailability{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnotateSeats(tt.seats, tt.bookedSeats)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AnnotateSeats() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnnotateSeatsIsIdempotent(t *testing.T) {
	seats := []domain.Seat{
		{SeatID: "A1", Row: "A", Number: 1},
		{SeatID: "A2", Row: "A", Number: 2},
	}
	bookedSeats := []string{"A2"}

	first := AnnotateSeats(seats, bookedSeats)
	second := AnnotateSeats(seats, bookedSeats)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calls disagree (-first +second):\n%s", diff)
	}
}

func TestAnnotateSeatsDoesNotMutateInputs(t *testing.T) {
	seats := []domain.Seat{
		{SeatID: "A1", Row: "A", Number: 1},
		{SeatID: "A2", Row: "A", Number: 2},
	}
	bookedSeats := []string{"A1"}

	AnnotateSeats(seats, bookedSeats)

	wantSeats := []domain.Seat{
		{SeatID: "A1", Row: "A", Number: 1},
		{SeatID: "A2", Row: "A", Number: 2},
	}

	if diff := cmp.Diff(wantSeats, seats); diff != "" {
		t.Errorf("seat input was mutated (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"A1"}, bookedSeats); diff != "" {
		t.Errorf("booked-seat input was mutated (-want +got):\n%s", diff)
	}
}
