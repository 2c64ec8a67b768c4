// Package blockcache resolves block numbers to raw block records, reading
// through a persistent store before falling back to the remote provider.
package blockcache

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/aethersight/internal/pkg/logger"
	"github.com/gabapcia/aethersight/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Service resolves blocks by number.
type Service interface {
	// Resolve returns block n, from storage when present, otherwise from the
	// provider with one request. A successful fetch is written back to
	// storage; write failures are logged and ignored.
	Resolve(ctx context.Context, n uint64) (Record, error)

	// ResolveRange resolves every block in [start, end] sequentially and in
	// ascending order, stopping at the first failure.
	ResolveRange(ctx context.Context, start, end uint64) ([]Record, error)
}

type service struct {
	provider Provider
	storage  BlockStorage

	tracer  trace.Tracer
	metrics instruments
}

var _ Service = (*service)(nil)

func (s *service) load(ctx context.Context, n uint64) (json.RawMessage, bool) {
	raw, ok := s.storage.LoadBlock(ctx, n)
	if !ok {
		return nil, false
	}

	if !readable(raw) {
		logger.Debug(ctx, "ignoring unreadable cache entry")
		return nil, false
	}

	return raw, true
}

func (s *service) Resolve(ctx context.Context, n uint64) (Record, error) {
	ctx, span := s.tracer.Start(ctx, "blockcache.Resolve", trace.WithAttributes(
		attribute.Int64("block.number", int64(n)),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "block_number", n)

	if raw, ok := s.load(ctx, n); ok {
		s.metrics.recordLookup(ctx, lookupHit)
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return Record{Number: n, Raw: raw}, nil
	}

	s.metrics.recordLookup(ctx, lookupMiss)
	span.SetAttributes(attribute.Bool("cache.hit", false))

	raw, err := s.provider.FetchBlock(ctx, n)
	if err != nil {
		err = Unexpected(err)
		s.metrics.recordUpstream(ctx, kindLabel(KindOf(err)))

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "failed to fetch block", "kind", kindLabel(KindOf(err)), "error", err)
		return Record{}, err
	}

	s.metrics.recordUpstream(ctx, upstreamSuccess)

	if err := s.storage.SaveBlock(ctx, n, raw); err != nil {
		logger.Warn(ctx, "failed to write block to cache", "error", err)
	}

	return Record{Number: n, Raw: raw}, nil
}

func (s *service) ResolveRange(ctx context.Context, start, end uint64) ([]Record, error) {
	if start > end {
		return nil, NewError(ErrMalformedInput, "start_block must be less than or equal to end_block", nil)
	}

	ctx, span := s.tracer.Start(ctx, "blockcache.ResolveRange", trace.WithAttributes(
		attribute.Int64("block.start", int64(start)),
		attribute.Int64("block.end", int64(end)),
	))
	defer span.End()

	records := make([]Record, 0, min(end-start+1, 1024))
	for n := start; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, Unexpected(err)
		}

		record, err := s.Resolve(ctx, n)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		records = append(records, record)

		if n == end {
			break
		}
	}

	return records, nil
}

// config holds optional dependencies of the service.
type config struct {
	storage BlockStorage
	tracer  trace.Tracer
	meter   metric.Meter
}

// Option configures the service.
type Option func(*config)

// WithStorage sets the persistent store consulted before the provider.
// Default: no storage, every call goes to the provider.
func WithStorage(storage BlockStorage) Option {
	return func(c *config) {
		c.storage = storage
	}
}

// WithTracer overrides the tracer. Default: the global aethersight tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeter overrides the meter. Default: the global aethersight meter.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}

// New returns a Service that fetches missing blocks from provider.
func New(provider Provider, opts ...Option) *service {
	cfg := config{
		storage: nopStorage{},
		tracer:  telemetry.Tracer(),
		meter:   telemetry.Meter(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		provider: provider,
		storage:  cfg.storage,
		tracer:   cfg.tracer,
		metrics:  newInstruments(cfg.meter),
	}
}
