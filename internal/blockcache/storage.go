package blockcache

import (
	"context"
)

// BlockStorage persists raw block bodies keyed by block number.
type BlockStorage interface {
	// LoadBlock returns the stored body for block n. ok is false when the
	// block is absent or cannot be read; implementations never surface read
	// failures.
	LoadBlock(ctx context.Context, n uint64) (raw []byte, ok bool)

	// SaveBlock stores raw for block n, replacing any previous value. The
	// error is informational only: callers log and discard it.
	SaveBlock(ctx context.Context, n uint64, raw []byte) error
}

// nopStorage is a BlockStorage that stores nothing.
type nopStorage struct{}

var _ BlockStorage = nopStorage{}

func (nopStorage) LoadBlock(context.Context, uint64) ([]byte, bool) {
	return nil, false
}

func (nopStorage) SaveBlock(context.Context, uint64, []byte) error {
	return nil
}
