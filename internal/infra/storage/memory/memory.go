// Package memory keeps raw block bodies in process memory.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/gabapcia/aethersight/internal/blockcache"
)

type storage struct {
	mu     sync.RWMutex
	blocks map[uint64][]byte
}

var _ blockcache.BlockStorage = (*storage)(nil)

func (s *storage) LoadBlock(_ context.Context, n uint64) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.blocks[n]
	if !ok {
		return nil, false
	}

	return slices.Clone(raw), true
}

func (s *storage) SaveBlock(_ context.Context, n uint64, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks[n] = slices.Clone(raw)
	return nil
}

// Len returns the number of stored blocks.
func (s *storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.blocks)
}

// New returns an empty in-memory block storage.
func New() *storage {
	return &storage{blocks: make(map[uint64][]byte)}
}
