package booking

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

// AnnotateSeats marks each of a room's seats as available or not for one
// showtime. A seat is available iff its identifier is absent from the
// showtime's booked-seat list; membership is exact string equality.
//
// The result preserves the room's seat order and has the same length as the
// input, whatever the room's declared rows/seatsPerRow say. Inputs are not
// mutated.
func AnnotateSeats(seats []domain.Seat, bookedSeats []string) []domain.SeatWithAvailability {
	booked := mapset.NewThreadUnsafeSet(bookedSeats...)

	annotated := make([]domain.SeatWithAvailability, len(seats))
	for i, seat := range seats {
		annotated[i] = domain.SeatWithAvailability{
			Seat:      seat,
			Available: !booked.Contains(seat.SeatID),
		}
	}

	return annotated
}
