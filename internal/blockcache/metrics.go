package blockcache

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	lookupHit  = "hit"
	lookupMiss = "miss"

	upstreamSuccess = "success"
)

// instruments groups the counters recorded by the service.
type instruments struct {
	lookups  metric.Int64Counter
	upstream metric.Int64Counter
}

func newInstruments(meter metric.Meter) instruments {
	lookups, err := meter.Int64Counter(
		"blockcache.lookups",
		metric.WithDescription("Block storage lookups by result"),
	)
	if err != nil {
		lookups = noop.Int64Counter{}
	}

	upstream, err := meter.Int64Counter(
		"blockcache.upstream.requests",
		metric.WithDescription("Provider requests by outcome"),
	)
	if err != nil {
		upstream = noop.Int64Counter{}
	}

	return instruments{
		lookups:  lookups,
		upstream: upstream,
	}
}

func (i instruments) recordLookup(ctx context.Context, result string) {
	i.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (i instruments) recordUpstream(ctx context.Context, outcome string) {
	i.upstream.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
