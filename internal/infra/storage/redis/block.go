package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

// blockKeyPrefix is the key namespace for cached block bodies.
const blockKeyPrefix = "block"

// blockKey returns the key holding block n.
//
// Format: "block:{n}"
func blockKey(n uint64) string {
	return fmt.Sprintf("%s:%d", blockKeyPrefix, n)
}

// LoadBlock implements blockcache.BlockStorage with a GET. Missing keys and
// connection failures both read as a miss.
func (c *client) LoadBlock(ctx context.Context, n uint64) ([]byte, bool) {
	raw, err := c.conn.Get(ctx, blockKey(n)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Debug(ctx, "failed to read cached block", "error", err)
		}
		return nil, false
	}

	return raw, true
}

// SaveBlock implements blockcache.BlockStorage with a SET without expiry.
// Block bodies never change once a block exists.
func (c *client) SaveBlock(ctx context.Context, n uint64, raw []byte) error {
	return c.conn.Set(ctx, blockKey(n), raw, 0).Err()
}

// Compile-time assertion to ensure *client satisfies the blockcache.BlockStorage interface
var _ blockcache.BlockStorage = new(client)
