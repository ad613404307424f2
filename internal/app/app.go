// Package app wires the HTTP surface of the application. Handlers here are
// deliberately thin: they translate requests into calls on the gateways and
// the booking core, and translate results back into JSON.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"

	"github.com/Huseelk/cinema-booking-app/internal/booking"
	"github.com/Huseelk/cinema-booking-app/internal/cache"
	"github.com/Huseelk/cinema-booking-app/internal/domain"
	"github.com/Huseelk/cinema-booking-app/internal/gateway"
	appvalidator "github.com/Huseelk/cinema-booking-app/internal/validator"
	"github.com/Huseelk/cinema-booking-app/internal/vcs"
)

var (
	version = vcs.Version()
)

// GuestUserID stands in for authenticated identity until a real auth
// collaborator exists. Booking endpoints accept an explicit user id and fall
// back to this one.
const GuestUserID = "user123"

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate

	roomGateway     domain.RoomGateway
	movieGateway    domain.MovieGateway
	showtimeGateway domain.ShowtimeGateway
	bookingGateway  domain.BookingGateway

	showtimeService *booking.ShowtimeService
	bookingService  *booking.BookingService
}

type config struct {
	port  int
	env   string
	store struct {
		url     string
		timeout time.Duration
	}
	redis struct {
		url string
		ttl time.Duration
	}
	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.store.url, "store-url", "http://localhost:3000", "Resource store base URL")
	flag.DurationVar(&cfg.store.timeout, "store-timeout", 10*time.Second, "Resource store request timeout")

	flag.StringVar(&cfg.redis.url, "redis-url", "", "Redis URL for the movie cache (empty disables caching)")
	flag.DurationVar(&cfg.redis.ttl, "movie-cache-ttl", 5*time.Minute, "Movie cache entry TTL")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL (empty disables tracing)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	store := gateway.New(cfg.store.url, cfg.store.timeout, validator, logger)

	var movieGateway domain.MovieGateway = gateway.NewMovieClient(store)

	if cfg.redis.url != "" {
		redisClient, err := newRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		movieGateway = cache.NewMovieCache(movieGateway, redisClient, cfg.redis.ttl, logger)
	}

	app := &application{
		config:          cfg,
		logger:          logger,
		validator:       validator,
		roomGateway:     gateway.NewRoomClient(store),
		movieGateway:    movieGateway,
		showtimeGateway: gateway.NewShowtimeClient(store),
		bookingGateway:  gateway.NewBookingClient(store),
	}
	app.initServices()

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

// initServices builds the booking core on top of whatever gateways the
// application carries; tests swap in mocks before calling it.
func (app *application) initServices() {
	app.showtimeService = booking.NewShowtimeService(app.showtimeGateway, app.movieGateway, app.roomGateway, app.logger)
	app.bookingService = booking.NewBookingService(app.bookingGateway, app.showtimeGateway, app.logger)
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.redis.url,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	if app.config.otelCollectorUrl != "" {
		r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))
	}

	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", app.ListRooms)
		r.Post("/", app.CreateRoom)

		r.Route("/{roomId}", func(r chi.Router) {
			r.Get("/", app.GetRoom)
			r.Put("/", app.UpdateRoom)
			r.Delete("/", app.DeleteRoom)
			r.Get("/showtimes", app.ListShowtimesByRoom)
		})
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.ListMovies)
		r.Post("/", app.CreateMovie)

		r.Route("/{movieId}", func(r chi.Router) {
			r.Get("/", app.GetMovie)
			r.Put("/", app.UpdateMovie)
			r.Delete("/", app.DeleteMovie)
		})
	})

	r.Route("/showtimes/{showtimeId}", func(r chi.Router) {
		r.Get("/", app.GetShowtime)
		r.Get("/seat-map", app.GetSeatMap)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", app.ListBookings)
		r.Post("/", app.CreateBooking)

		r.Route("/{bookingId}", func(r chi.Router) {
			r.Get("/", app.GetBooking)
			r.Delete("/", app.CancelBooking)
		})
	})

	return r
}
