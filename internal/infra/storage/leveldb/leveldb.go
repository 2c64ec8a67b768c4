// Package leveldb stores raw block bodies in an embedded LevelDB database,
// keyed by "block:<decimal number>".
package leveldb

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/pkg/logger"

	"github.com/syndtr/goleveldb/leveldb"
)

const keyPrefix = "block:"

func blockKey(n uint64) []byte {
	return []byte(keyPrefix + strconv.FormatUint(n, 10))
}

type storage struct {
	db *leveldb.DB
}

var _ blockcache.BlockStorage = (*storage)(nil)

func (s *storage) LoadBlock(ctx context.Context, n uint64) ([]byte, bool) {
	raw, err := s.db.Get(blockKey(n), nil)
	if err != nil {
		if !errors.Is(err, leveldb.ErrNotFound) {
			logger.Debug(ctx, "failed to read cached block", "error", err)
		}
		return nil, false
	}

	return raw, true
}

func (s *storage) SaveBlock(_ context.Context, n uint64, raw []byte) error {
	return s.db.Put(blockKey(n), raw, nil)
}

// Close releases the database.
func (s *storage) Close() error {
	return s.db.Close()
}

// Open opens (or creates) the database at path.
func Open(path string) (*storage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB: %w", err)
	}

	return &storage{db: db}, nil
}
