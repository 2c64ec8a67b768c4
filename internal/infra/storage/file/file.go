// Package file stores raw block bodies as one JSON file per block:
// <dir>/<decimal block number>.json.
package file

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gabapcia/aethersight/internal/blockcache"
	"github.com/gabapcia/aethersight/internal/pkg/logger"
)

type storage struct {
	dir string
}

var _ blockcache.BlockStorage = (*storage)(nil)

func (s *storage) path(n uint64) string {
	return filepath.Join(s.dir, strconv.FormatUint(n, 10)+".json")
}

func (s *storage) LoadBlock(ctx context.Context, n uint64) ([]byte, bool) {
	raw, err := os.ReadFile(s.path(n))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug(ctx, "failed to read cached block", "error", err)
		}
		return nil, false
	}

	return raw, true
}

// SaveBlock writes raw to a temporary file in the same directory and renames
// it into place, so readers never see a partial body.
func (s *storage) SaveBlock(_ context.Context, n uint64, raw []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, strconv.FormatUint(n, 10)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path(n))
}

// New returns a block storage rooted at dir. The directory is created on the
// first write.
func New(dir string) *storage {
	return &storage{dir: dir}
}
