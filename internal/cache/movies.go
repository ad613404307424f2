// Package cache provides a read-through Redis cache for movie metadata.
// Movie records change rarely and are fetched on every showtime join, which
// makes them the one collection worth caching in front of the resource store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Huseelk/cinema-booking-app/internal/domain"
)

// MovieCache decorates a MovieGateway. Cache trouble is never an error:
// every failure path degrades to a direct store lookup.
type MovieCache struct {
	gateway domain.MovieGateway
	redis   redis.UniversalClient
	ttl     time.Duration
	logger  *slog.Logger
}

func NewMovieCache(gateway domain.MovieGateway, client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *MovieCache {
	return &MovieCache{
		gateway: gateway,
		redis:   client,
		ttl:     ttl,
		logger:  logger,
	}
}

func movieKey(id int) string {
	return fmt.Sprintf("movie:%d", id)
}

func (c *MovieCache) Get(ctx context.Context, id int) (*domain.Movie, error) {
	if id <= 0 {
		return c.gateway.Get(ctx, id)
	}

	data, err := c.redis.Get(ctx, movieKey(id)).Bytes()
	if err == nil {
		var movie domain.Movie
		if err := json.Unmarshal(data, &movie); err == nil {
			return &movie, nil
		}

		c.logger.Warn("discarding unreadable cached movie", "movie_id", id)
	} else if err != redis.Nil {
		c.logger.Warn("movie cache read failed", "movie_id", id, "error", err)
	}

	movie, err := c.gateway.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(movie); err == nil {
		if err := c.redis.Set(ctx, movieKey(id), data, c.ttl).Err(); err != nil {
			c.logger.Warn("movie cache write failed", "movie_id", id, "error", err)
		}
	}

	return movie, nil
}

func (c *MovieCache) List(ctx context.Context) ([]domain.Movie, error) {
	return c.gateway.List(ctx)
}

func (c *MovieCache) Create(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	return c.gateway.Create(ctx, movie)
}

func (c *MovieCache) Update(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	updated, err := c.gateway.Update(ctx, movie)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, movie.ID)

	return updated, nil
}

func (c *MovieCache) Delete(ctx context.Context, id int) error {
	err := c.gateway.Delete(ctx, id)
	if err != nil {
		return err
	}

	c.invalidate(ctx, id)

	return nil
}

func (c *MovieCache) invalidate(ctx context.Context, id int) {
	if err := c.redis.Del(ctx, movieKey(id)).Err(); err != nil {
		c.logger.Warn("movie cache invalidation failed", "movie_id", id, "error", err)
	}
}
