package booking

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
	"github.com/Huseelk/cinema-booking-app/internal/mocks"
)

type ShowtimesTestSuite struct {
	suite.Suite
	showtimeGateway *mocks.MockShowtimeGateway
	movieGateway    *mocks.MockMovieGateway
	roomGateway     *mocks.MockRoomGateway
	service         *ShowtimeService
}

func (s *ShowtimesTestSuite) SetupTest() {
	s.showtimeGateway = new(mocks.MockShowtimeGateway)
	s.movieGateway = new(mocks.MockMovieGateway)
	s.roomGateway = new(mocks.MockRoomGateway)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewShowtimeService(s.showtimeGateway, s.movieGateway, s.roomGateway, logger)
}

func TestShowtimesSuite(t *testing.T) {
	suite.Run(t, new(ShowtimesTestSuite))
}

func showtimeFixture(id, movieID int) domain.Showtime {
	return domain.Showtime{
		ID:          id,
		MovieID:     movieID,
		RoomID:      1,
		StartTime:   "18:00",
		EndTime:     "20:00",
		Date:        "2025-06-01",
		Price:       12.5,
		BookedSeats: []string{"A1"},
	}
}

func movieFixture(id int) domain.Movie {
	return domain.Movie{
		ID:          id,
		Title:       fmt.Sprintf("Movie %d", id),
		Description: "desc",
		Duration:    120,
		PosterUrl:   "/posters/movie.jpg",
	}
}

func (s *ShowtimesTestSuite) TestListByRoomFetchesEachDistinctMovieOnce() {
	showtimes := []domain.Showtime{
		showtimeFixture(1, 10),
		showtimeFixture(2, 20),
		showtimeFixture(3, 10),
		showtimeFixture(4, 20),
	}

	s.showtimeGateway.On("ListByRoom", mock.Anything, 1).Return(showtimes, nil)

	movie10 := movieFixture(10)
	movie20 := movieFixture(20)
	s.movieGateway.On("Get", mock.Anything, 10).Return(&movie10, nil).Once()
	s.movieGateway.On("Get", mock.Anything, 20).Return(&movie20, nil).Once()

	joined, err := s.service.ListByRoom(context.Background(), 1)

	s.NoError(err)
	s.Len(joined, 4)

	s.movieGateway.AssertNumberOfCalls(s.T(), "Get", 2)

	for _, sw := range joined {
		s.Equal(sw.MovieID, sw.Movie.ID)
		s.Equal(domain.MovieSourceCatalog, sw.Movie.Source)
	}
}

func (s *ShowtimesTestSuite) TestListByRoomSubstitutesPlaceholderOnLookupFailure() {
	showtimes := []domain.Showtime{
		showtimeFixture(1, 10),
		showtimeFixture(2, 20),
	}

	s.showtimeGateway.On("ListByRoom", mock.Anything, 1).Return(showtimes, nil)

	movie10 := movieFixture(10)
	s.movieGateway.On("Get", mock.Anything, 10).Return(&movie10, nil)
	s.movieGateway.On("Get", mock.Anything, 20).
		Return(nil, &domain.GatewayError{Message: "the resource store could not be reached"})

	joined, err := s.service.ListByRoom(context.Background(), 1)

	s.NoError(err)
	s.Len(joined, 2)

	s.Equal(domain.MovieSourceCatalog, joined[0].Movie.Source)

	placeholder := joined[1].Movie
	s.Equal(domain.MovieSourceNotFound, placeholder.Source)
	s.Equal("Movie Not Found", placeholder.Title)
	s.Equal(0, placeholder.Duration)
	s.Equal(domain.PlaceholderPosterURL, placeholder.PosterUrl)
	s.Equal(20, placeholder.ID)

	// The showtime itself must come through untouched.
	if diff := cmp.Diff(showtimes[1], joined[1].Showtime); diff != "" {
		s.T().Errorf("showtime fields changed (-want +got):\n%s", diff)
	}
}

func (s *ShowtimesTestSuite) TestListByRoomFallsBackToUnknownMovieOnIdMismatch() {
	showtimes := []domain.Showtime{showtimeFixture(1, 10)}

	s.showtimeGateway.On("ListByRoom", mock.Anything, 1).Return(showtimes, nil)

	// Store answers the lookup with a record carrying a different id.
	rogue := movieFixture(99)
	s.movieGateway.On("Get", mock.Anything, 10).Return(&rogue, nil)

	joined, err := s.service.ListByRoom(context.Background(), 1)

	s.NoError(err)
	s.Len(joined, 1)
	s.Equal(domain.MovieSourceUnknown, joined[0].Movie.Source)
	s.Equal("Unknown Movie", joined[0].Movie.Title)
	s.Equal(10, joined[0].Movie.ID)
}

func (s *ShowtimesTestSuite) TestListByRoomPropagatesShowtimeListFailure() {
	s.showtimeGateway.On("ListByRoom", mock.Anything, 1).
		Return(nil, &domain.GatewayError{Message: "boom"})

	_, err := s.service.ListByRoom(context.Background(), 1)

	s.Error(err)
	s.movieGateway.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *ShowtimesTestSuite) TestGetJoinsMovie() {
	showtime := showtimeFixture(5, 10)
	movie := movieFixture(10)

	s.showtimeGateway.On("Get", mock.Anything, 5).Return(&showtime, nil)
	s.movieGateway.On("Get", mock.Anything, 10).Return(&movie, nil)

	got, err := s.service.Get(context.Background(), 5)

	s.NoError(err)
	s.Equal(domain.MovieSourceCatalog, got.Movie.Source)
	s.Equal(movie.Title, got.Movie.Title)
}

func (s *ShowtimesTestSuite) TestGetMissingShowtimeIsHardFailure() {
	s.showtimeGateway.On("Get", mock.Anything, 5).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Get(context.Background(), 5)

	s.ErrorIs(err, domain.ErrRecordNotFound)
	s.movieGateway.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *ShowtimesTestSuite) TestGetMissingMovieIsNotAFailure() {
	showtime := showtimeFixture(5, 10)

	s.showtimeGateway.On("Get", mock.Anything, 5).Return(&showtime, nil)
	s.movieGateway.On("Get", mock.Anything, 10).Return(nil, domain.ErrRecordNotFound)

	got, err := s.service.Get(context.Background(), 5)

	s.NoError(err)
	s.Equal(domain.MovieSourceNotFound, got.Movie.Source)
	s.Equal("Movie Not Found", got.Movie.Title)
}

func (s *ShowtimesTestSuite) TestSeatMapAnnotatesRoomSeats() {
	showtime := showtimeFixture(5, 10)
	showtime.BookedSeats = []string{"A2"}
	movie := movieFixture(10)
	room := domain.Room{
		ID:          1,
		Name:        "Main Hall",
		Rows:        1,
		SeatsPerRow: 2,
		Seats: []domain.Seat{
			{SeatID: "A1", Row: "A", Number: 1},
			{SeatID: "A2", Row: "A", Number: 2},
		},
	}

	s.showtimeGateway.On("Get", mock.Anything, 5).Return(&showtime, nil)
	s.movieGateway.On("Get", mock.Anything, 10).Return(&movie, nil)
	s.roomGateway.On("Get", mock.Anything, 1).Return(&room, nil)

	seatMap, err := s.service.SeatMap(context.Background(), 5)

	s.NoError(err)
	s.Len(seatMap.Seats, 2)
	s.True(seatMap.Seats[0].Available)
	s.False(seatMap.Seats[1].Available)
	s.Equal(room.Name, seatMap.Room.Name)
}

func (s *ShowtimesTestSuite) TestSeatMapFailsWhenRoomIsMissing() {
	showtime := showtimeFixture(5, 10)
	movie := movieFixture(10)

	s.showtimeGateway.On("Get", mock.Anything, 5).Return(&showtime, nil)
	s.movieGateway.On("Get", mock.Anything, 10).Return(&movie, nil)
	s.roomGateway.On("Get", mock.Anything, 1).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.SeatMap(context.Background(), 5)

	s.ErrorIs(err, domain.ErrRecordNotFound)
}
