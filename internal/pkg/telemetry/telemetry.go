// Package telemetry sets up OpenTelemetry tracing for the service.
package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Options configures Setup.
type Options struct {
	ServiceName    string
	ServiceVersion string

	// Enabled turns on span export to Endpoint. When false, spans are
	// created but never exported.
	Enabled  bool
	Endpoint string

	// SampleRate is the ratio of root traces kept, from 0 to 1.
	SampleRate   float64
	BatchTimeout time.Duration
}

// Setup installs the global tracer provider and propagator.
// If it does not return an error, make sure to call shutdown for proper cleanup.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	var shutdownFuncs []func(context.Context) error

	// shutdown calls cleanup functions registered via shutdownFuncs.
	// The errors from the calls are joined.
	// Each registered cleanup will be invoked once.
	shutdown = func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(opts.ServiceName),
			semconv.ServiceVersionKey.String(opts.ServiceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	otel.SetTextMapPropagator(newPropagator())

	tracerProvider, err := newTraceProvider(ctx, opts, res)
	if err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	return shutdown, nil
}

//nolint:ireturn
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newTraceProvider(
	ctx context.Context,
	opts Options,
	res *resource.Resource,
) (*trace.TracerProvider, error) {
	if !opts.Enabled {
		return trace.NewTracerProvider(trace.WithResource(res)), nil
	}

	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(opts.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(opts.BatchTimeout)),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(opts.SampleRate))),
		trace.WithResource(res),
	), nil
}
