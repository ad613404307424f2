package booking

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
	"github.com/Huseelk/cinema-booking-app/internal/mocks"
)

type CancellationTestSuite struct {
	suite.Suite
	bookingGateway  *mocks.MockBookingGateway
	showtimeGateway *mocks.MockShowtimeGateway
	service         *BookingService
}

func (s *CancellationTestSuite) SetupTest() {
	s.bookingGateway = new(mocks.MockBookingGateway)
	s.showtimeGateway = new(mocks.MockShowtimeGateway)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewBookingService(s.bookingGateway, s.showtimeGateway, logger)
}

func TestCancellationSuite(t *testing.T) {
	suite.Run(t, new(CancellationTestSuite))
}

func bookingFixture() domain.Booking {
	return domain.Booking{
		ID:          42,
		ShowtimeID:  7,
		SeatIDs:     []string{"C3", "C4"},
		UserID:      "user123",
		BookingTime: "2025-06-01T10:00:00Z",
		TotalPrice:  25,
	}
}

func (s *CancellationTestSuite) TestCancelRejectsInvalidIDWithoutRemoteCalls() {
	outcome := s.service.Cancel(context.Background(), 0)

	s.Equal(StatusRejectedInput, outcome.Status)
	s.True(domain.IsInvalidInput(outcome.Err))
	s.NotEmpty(outcome.Reference)

	s.bookingGateway.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
	s.bookingGateway.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *CancellationTestSuite) TestCancelDeletesBookingAndFreesSeats() {
	booking := bookingFixture()
	s.bookingGateway.On("Get", mock.Anything, 42).Return(&booking, nil)
	s.bookingGateway.On("Delete", mock.Anything, 42).Return(nil)

	showtime := showtimeFixture(7, 10)
	showtime.BookedSeats = []string{"A1", "C3", "C4"}
	s.showtimeGateway.On("Get", mock.Anything, 7).Return(&showtime, nil)

	updated := showtime
	s.showtimeGateway.On("Update", mock.Anything, mock.MatchedBy(func(st domain.Showtime) bool {
		return st.ID == 7 && slices.Equal(st.BookedSeats, []string{"A1"})
	})).Return(&updated, nil)

	outcome := s.service.Cancel(context.Background(), 42)

	s.Equal(StatusDone, outcome.Status)
	s.NoError(outcome.Err)
	s.Equal(42, outcome.Booking.ID)

	s.showtimeGateway.AssertNumberOfCalls(s.T(), "Update", 1)
}

func (s *CancellationTestSuite) TestCancelIgnoresSeatsAbsentFromShowtime() {
	booking := bookingFixture()
	s.bookingGateway.On("Get", mock.Anything, 42).Return(&booking, nil)
	s.bookingGateway.On("Delete", mock.Anything, 42).Return(nil)

	// The showtime no longer lists C4; releasing it must not fail or
	// disturb the remaining entries.
	showtime := showtimeFixture(7, 10)
	showtime.BookedSeats = []string{"A1", "C3"}
	s.showtimeGateway.On("Get", mock.Anything, 7).Return(&showtime, nil)

	updated := showtime
	s.showtimeGateway.On("Update", mock.Anything, mock.MatchedBy(func(st domain.Showtime) bool {
		return slices.Equal(st.BookedSeats, []string{"A1"})
	})).Return(&updated, nil)

	outcome := s.service.Cancel(context.Background(), 42)

	s.Equal(StatusDone, outcome.Status)
}

func (s *CancellationTestSuite) TestCancelFailsWhenBookingUnreadable() {
	s.bookingGateway.On("Get", mock.Anything, 42).Return(nil, domain.ErrRecordNotFound)

	outcome := s.service.Cancel(context.Background(), 42)

	s.Equal(StatusFailed, outcome.Status)
	s.ErrorIs(outcome.Err, domain.ErrRecordNotFound)

	s.bookingGateway.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	s.showtimeGateway.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *CancellationTestSuite) TestCancelFailsWhenDeleteFails() {
	booking := bookingFixture()
	s.bookingGateway.On("Get", mock.Anything, 42).Return(&booking, nil)
	s.bookingGateway.On("Delete", mock.Anything, 42).
		Return(&domain.GatewayError{Message: "delete failed"})

	outcome := s.service.Cancel(context.Background(), 42)

	s.Equal(StatusFailed, outcome.Status)
	s.Error(outcome.Err)

	// The booking still exists, so its seats must stay claimed.
	s.showtimeGateway.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
	s.showtimeGateway.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *CancellationTestSuite) TestCancelReportsPartialSuccessWhenReleaseFails() {
	booking := bookingFixture()
	s.bookingGateway.On("Get", mock.Anything, 42).Return(&booking, nil)
	s.bookingGateway.On("Delete", mock.Anything, 42).Return(nil)

	showtime := showtimeFixture(7, 10)
	s.showtimeGateway.On("Get", mock.Anything, 7).Return(&showtime, nil)
	s.showtimeGateway.On("Update", mock.Anything, mock.Anything).
		Return(nil, &domain.GatewayError{Message: "write failed"})

	outcome := s.service.Cancel(context.Background(), 42)

	s.Equal(StatusPartialSuccess, outcome.Status)
	s.Error(outcome.Err)
	s.NotNil(outcome.Booking)
}

func (s *CancellationTestSuite) TestCancelReportsPartialSuccessWhenReReadFails() {
	booking := bookingFixture()
	s.bookingGateway.On("Get", mock.Anything, 42).Return(&booking, nil)
	s.bookingGateway.On("Delete", mock.Anything, 42).Return(nil)

	s.showtimeGateway.On("Get", mock.Anything, 7).
		Return(nil, &domain.GatewayError{Message: "read failed"})

	outcome := s.service.Cancel(context.Background(), 42)

	s.Equal(StatusPartialSuccess, outcome.Status)
	s.showtimeGateway.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}
