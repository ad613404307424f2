package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

// Status is the terminal state of a booking or cancellation flow.
type Status string

const (
	// StatusDone means every step committed.
	StatusDone Status = "done"
	// StatusRejectedInput means the request was refused before any remote
	// write happened.
	StatusRejectedInput Status = "rejected_input"
	// StatusFailed means the first durable step itself failed; nothing needs
	// compensating.
	StatusFailed Status = "failed"
	// StatusPartialSuccess means the durable first step committed but the
	// dependent second step did not. The caller must surface this as its own
	// outcome: the remedy (refresh, retry the second step) differs from both
	// full success and full failure.
	StatusPartialSuccess Status = "partial_success"
)

// Outcome is the single result value of the two-step flows. Reference is a
// per-invocation correlation id, logged on every step; on a partial success
// it is the handle support needs to reconcile the ledger by hand.
type Outcome struct {
	Status    Status
	Booking   *domain.Booking
	Reference string
	Err       error
}

type CreateBookingRequest struct {
	ShowtimeID  int
	SeatIDs     []string
	UserID      string
	BookingTime string
}

// BookingService runs booking creation and cancellation. Both are sequences
// of dependent remote calls against a store with no transactions, so both
// own an explicit partial-failure contract instead of pretending atomicity.
type BookingService struct {
	bookings  domain.BookingGateway
	showtimes domain.ShowtimeGateway
	logger    *slog.Logger
}

func NewBookingService(bookings domain.BookingGateway, showtimes domain.ShowtimeGateway, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookings:  bookings,
		showtimes: showtimes,
		logger:    logger,
	}
}

// Create runs the booking flow: validate, create the booking record, then
// propagate the new seats into the showtime's booked-seat list. The create
// always happens before the showtime write, so a booking record exists before
// its seats show as claimed anywhere.
//
// If propagation fails the booking deliberately stays created — durability of
// the claim wins over ledger freshness — and the outcome is
// StatusPartialSuccess, never plain success or plain failure.
//
// The propagation step is a read-modify-write without any conditional update;
// two concurrent calls for overlapping seats can both succeed. The store
// offers nothing to close that window with, so it is documented rather than
// hidden.
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) Outcome {
	reference := uuid.NewString()
	logger := s.logger.With("reference", reference, "showtime_id", req.ShowtimeID)

	// Validating
	if len(req.SeatIDs) == 0 {
		return Outcome{
			Status:    StatusRejectedInput,
			Reference: reference,
			Err:       domain.NewInvalidInputError("at least one seat must be selected"),
		}
	}

	if req.ShowtimeID <= 0 {
		return Outcome{
			Status:    StatusRejectedInput,
			Reference: reference,
			Err:       domain.NewInvalidInputError("invalid showtime ID provided"),
		}
	}

	if strings.TrimSpace(req.UserID) == "" {
		return Outcome{
			Status:    StatusRejectedInput,
			Reference: reference,
			Err:       domain.NewInvalidInputError("invalid user ID provided"),
		}
	}

	showtime, err := s.showtimes.Get(ctx, req.ShowtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || domain.IsInvalidInput(err) {
			return Outcome{
				Status:    StatusRejectedInput,
				Reference: reference,
				Err:       fmt.Errorf("showtime %d is unavailable: %w", req.ShowtimeID, err),
			}
		}

		return Outcome{Status: StatusFailed, Reference: reference, Err: err}
	}

	if showtime.RoomID <= 0 {
		return Outcome{
			Status:    StatusRejectedInput,
			Reference: reference,
			Err:       domain.NewInvalidInputError("room context unavailable for showtime"),
		}
	}

	totalPrice := decimal.NewFromFloat(showtime.Price).Mul(decimal.NewFromInt(int64(len(req.SeatIDs))))
	if totalPrice.Sign() <= 0 {
		return Outcome{
			Status:    StatusRejectedInput,
			Reference: reference,
			Err:       domain.NewInvalidInputError("total price must be greater than zero"),
		}
	}

	bookingTime := strings.TrimSpace(req.BookingTime)
	if bookingTime == "" {
		bookingTime = time.Now().UTC().Format(time.RFC3339)
	}

	// Creating
	price, _ := totalPrice.Float64()
	created, err := s.bookings.Create(ctx, domain.Booking{
		ShowtimeID:  req.ShowtimeID,
		SeatIDs:     req.SeatIDs,
		UserID:      strings.TrimSpace(req.UserID),
		BookingTime: bookingTime,
		TotalPrice:  price,
	})
	if err != nil {
		logger.Error("booking not created", "error", err)

		status := StatusFailed
		if domain.IsInvalidInput(err) {
			status = StatusRejectedInput
		}

		return Outcome{Status: status, Reference: reference, Err: err}
	}

	logger.Info("booking created", "booking_id", created.ID, "seats", len(req.SeatIDs))

	// PropagatingSeats
	err = s.propagateSeats(ctx, req.ShowtimeID, req.SeatIDs)
	if err != nil {
		logger.Error("seat propagation failed after booking creation", "booking_id", created.ID, "error", err)

		return Outcome{
			Status:    StatusPartialSuccess,
			Booking:   created,
			Reference: reference,
			Err:       fmt.Errorf("booking %d was created but seat availability may be stale: %w", created.ID, err),
		}
	}

	logger.Info("booking completed", "booking_id", created.ID)

	return Outcome{Status: StatusDone, Booking: created, Reference: reference}
}

// propagateSeats merges the newly booked seats into the showtime's
// booked-seat list. The list is semantically a set: the merge deduplicates,
// and the result is written back sorted so repeated writes are byte-stable.
func (s *BookingService) propagateSeats(ctx context.Context, showtimeID int, seatIDs []string) error {
	showtime, err := s.showtimes.Get(ctx, showtimeID)
	if err != nil {
		return fmt.Errorf("re-reading showtime %d: %w", showtimeID, err)
	}

	merged := mapset.NewThreadUnsafeSet(showtime.BookedSeats...)
	merged.Append(seatIDs...)

	bookedSeats := merged.ToSlice()
	sort.Strings(bookedSeats)
	showtime.BookedSeats = bookedSeats

	_, err = s.showtimes.Update(ctx, *showtime)
	if err != nil {
		return fmt.Errorf("writing booked seats for showtime %d: %w", showtimeID, err)
	}

	return nil
}
