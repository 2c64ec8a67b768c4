// Package telemetry wires OpenTelemetry tracing and metrics for aethersight.
// When enabled it exports both signals with OTLP over gRPC (endpoint and
// headers come from the standard OTEL_EXPORTER_OTLP_* variables); when
// disabled the global no-op providers stay in place, so instrumented code can
// call Tracer and Meter unconditionally.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes every tracer and meter created by this module.
const instrumentationName = "github.com/gabapcia/aethersight"

// Tracer returns the module-scoped tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// Meter returns the module-scoped meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// startMetrics installs a global meter provider that pushes cache counters
// and fetch latencies to the OTLP collector on a fixed period.
func startMetrics(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exp, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
	)
	otel.SetMeterProvider(provider)

	return provider, nil
}

// startTraces installs a global tracer provider that batches block fetch
// spans to the OTLP collector.
func startTraces(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exp, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("otlp trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exp),
	)
	otel.SetTracerProvider(provider)

	return provider, nil
}

// serviceResource describes this process to the collector.
func serviceResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc flushes and stops the telemetry providers.
type ShutdownFunc func(ctx context.Context) error

// nopShutdown is returned when telemetry is disabled.
func nopShutdown(context.Context) error { return nil }

// Init configures metrics and traces for serviceName. If enabled is false it
// leaves the global no-op providers untouched and returns a no-op
// ShutdownFunc.
//
// The returned ShutdownFunc must be called on application exit so pending
// spans and metric points are flushed.
func Init(ctx context.Context, serviceName string, enabled bool) (ShutdownFunc, error) {
	if !enabled {
		return nopShutdown, nil
	}

	res, err := serviceResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}

	mp, err := startMetrics(ctx, res)
	if err != nil {
		return nil, err
	}

	tp, err := startTraces(ctx, res)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		)
	}, nil
}
