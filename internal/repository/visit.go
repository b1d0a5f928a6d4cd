package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const visitsKey = "visits:total"

type VisitRepository interface {
	// Hit increments the counter and returns the value it had before.
	Hit(ctx context.Context) (int64, error)
	Get(ctx context.Context) (int64, error)
}

type dbVisit struct {
	client *redis.Client
}

func NewVisitRepository(client *redis.Client) VisitRepository {
	return &dbVisit{
		client: client,
	}
}

func (that *dbVisit) Hit(ctx context.Context) (int64, error) {
	total, err := that.client.Incr(ctx, visitsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment visits: %w", err)
	}

	return total - 1, nil
}

func (that *dbVisit) Get(ctx context.Context) (int64, error) {
	total, err := that.client.Get(ctx, visitsKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get visits: %w", err)
	}

	return total, nil
}
