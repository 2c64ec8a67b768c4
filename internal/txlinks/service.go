package txlinks

import (
	"context"

	"github.com/gabapcia/aethersight/internal/blockcache"
)

// Service resolves blocks and returns their edges ready to be sent over the
// wire.
type Service interface {
	// Block returns the edges of block n in the legacy shape, without hashes.
	Block(ctx context.Context, n uint64) (EdgeList, error)

	// Range returns the edges of blocks [start, end] in the structured shape,
	// with hashes, in ascending block order.
	Range(ctx context.Context, start, end uint64) (EdgeList, error)
}

type service struct {
	blocks blockcache.Service
}

var _ Service = (*service)(nil)

func (s *service) Block(ctx context.Context, n uint64) (EdgeList, error) {
	record, err := s.blocks.Resolve(ctx, n)
	if err != nil {
		return EdgeList{}, err
	}

	edges, err := Extract(record)
	if err != nil {
		return EdgeList{}, blockcache.Unexpected(err)
	}

	return EdgeList{Shape: ShapeLegacy, Edges: edges}, nil
}

func (s *service) Range(ctx context.Context, start, end uint64) (EdgeList, error) {
	records, err := s.blocks.ResolveRange(ctx, start, end)
	if err != nil {
		return EdgeList{}, err
	}

	edges, err := ExtractRange(records, WithHashes())
	if err != nil {
		return EdgeList{}, blockcache.Unexpected(err)
	}

	return EdgeList{Shape: ShapeStructured, Edges: edges}, nil
}

// NewService returns a Service reading blocks from blocks.
func NewService(blocks blockcache.Service) *service {
	return &service{
		blocks: blocks,
	}
}
