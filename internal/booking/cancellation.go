package booking

import (
	"context"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

// Cancel runs the cancellation flow: delete the booking, then remove its
// seats from the showtime's booked-seat list. Mirrors Create: the first step
// is durable, the second is best-effort and independently failable.
//
// When seat release fails the booking stays cancelled and the outcome is
// StatusPartialSuccess; the caller is expected to refresh, not to expect an
// automatic retry here.
func (s *BookingService) Cancel(ctx context.Context, bookingID int) Outcome {
	reference := uuid.NewString()
	logger := s.logger.With("reference", reference, "booking_id", bookingID)

	if bookingID <= 0 {
		return Outcome{
			Status:    StatusRejectedInput,
			Reference: reference,
			Err:       domain.NewInvalidInputError("invalid booking ID provided"),
		}
	}

	// The booking record carries the showtime id and seats needed for the
	// release step, so it must be read before it is deleted.
	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return Outcome{Status: StatusFailed, Reference: reference, Err: err}
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		logger.Error("booking not cancelled", "error", err)

		return Outcome{Status: StatusFailed, Booking: booking, Reference: reference, Err: err}
	}

	logger.Info("booking deleted", "showtime_id", booking.ShowtimeID)

	err = s.releaseSeats(ctx, booking.ShowtimeID, booking.SeatIDs)
	if err != nil {
		logger.Error("failed to free seats after cancellation", "showtime_id", booking.ShowtimeID, "error", err)

		return Outcome{
			Status:    StatusPartialSuccess,
			Booking:   booking,
			Reference: reference,
			Err:       fmt.Errorf("booking %d was cancelled but its seats were not freed: %w", bookingID, err),
		}
	}

	logger.Info("cancellation completed")

	return Outcome{Status: StatusDone, Booking: booking, Reference: reference}
}

// releaseSeats removes the cancelled booking's seats from the showtime's
// booked-seat list by set difference, never by position.
func (s *BookingService) releaseSeats(ctx context.Context, showtimeID int, seatIDs []string) error {
	showtime, err := s.showtimes.Get(ctx, showtimeID)
	if err != nil {
		return fmt.Errorf("re-reading showtime %d: %w", showtimeID, err)
	}

	remaining := mapset.NewThreadUnsafeSet(showtime.BookedSeats...).
		Difference(mapset.NewThreadUnsafeSet(seatIDs...))

	bookedSeats := remaining.ToSlice()
	sort.Strings(bookedSeats)
	showtime.BookedSeats = bookedSeats

	_, err = s.showtimes.Update(ctx, *showtime)
	if err != nil {
		return fmt.Errorf("writing booked seats for showtime %d: %w", showtimeID, err)
	}

	return nil
}
