// Package redis stores raw block bodies in Redis, one string key per block.
package redis

import (
	"context"

	"github.com/gabapcia/aethersight/internal/pkg/logger"
	"github.com/gabapcia/aethersight/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and pings it, retrying with backoff while the
// server is not reachable yet.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	r := retry.New(retry.WithOnRetry(func(attempt uint, err error) {
		logger.Warn(ctx, "redis ping failed", "addr", addr, "attempt", attempt+1, "error", err)
	}))

	err := r.Execute(ctx, func() error {
		return conn.Ping(ctx).Err()
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
