// Package edgeexport publishes the transfer edges of a block range to an
// external stream, in batches and in extraction order.
package edgeexport

import (
	"context"
	"errors"

	"github.com/gabapcia/aethersight/internal/pkg/logger"
	"github.com/gabapcia/aethersight/internal/txlinks"
)

// ErrInvalidBatchSize is returned by NewService for a non-positive batch size.
var ErrInvalidBatchSize = errors.New("batch size must be positive")

// Publisher delivers records to the stream. A returned error means none of
// the batch can be assumed delivered.
type Publisher interface {
	Publish(ctx context.Context, records []Record) error
}

// Service exports edges.
type Service interface {
	// Export extracts the edges of [start, end] and publishes them. It
	// returns how many records were published before any failure.
	Export(ctx context.Context, start, end uint64) (int, error)
}

type config struct {
	batchSize int
}

// Option configures the export service.
type Option func(*config)

// WithBatchSize sets how many records are published per call.
//
// Default: 500.
func WithBatchSize(n int) Option {
	return func(c *config) {
		c.batchSize = n
	}
}

type service struct {
	links     txlinks.Service
	publisher Publisher
	batchSize int
}

var _ Service = (*service)(nil)

func (s *service) Export(ctx context.Context, start, end uint64) (int, error) {
	ctx = logger.Derive(ctx, "start_block", start, "end_block", end)

	list, err := s.links.Range(ctx, start, end)
	if err != nil {
		return 0, err
	}

	records := newRecords(start, end, list.Edges)

	published := 0
	for len(records) > 0 {
		batch := records[:min(s.batchSize, len(records))]
		records = records[len(batch):]

		if err := s.publisher.Publish(ctx, batch); err != nil {
			logger.Error(ctx, "failed to publish edges", "published", published, "error", err)
			return published, err
		}

		published += len(batch)
		logger.Debug(ctx, "published edge batch", "size", len(batch))
	}

	logger.Info(ctx, "edges exported", "count", published)
	return published, nil
}

// NewService returns an export service reading edges from links.
func NewService(links txlinks.Service, publisher Publisher, opts ...Option) (*service, error) {
	cfg := config{
		batchSize: 500,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.batchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}

	return &service{
		links:     links,
		publisher: publisher,
		batchSize: cfg.batchSize,
	}, nil
}
