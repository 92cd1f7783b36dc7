// Package telemetry installs the OpenTelemetry tracer provider and propagator.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"clothly/internal/config"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Option customises SetupTracing.
type Option func(*options)

type options struct {
	stdout io.Writer
}

// WithStdoutWriter sends stdout exporter output to w.
func WithStdoutWriter(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// SetupTracing registers the W3C trace-context propagator and, unless the
// exporter is "none", a global tracer provider exporting to the configured
// backend. The returned function must be called on shutdown.
func SetupTracing(ctx context.Context, cfg config.TracingConfig, logger logrus.FieldLogger, opts ...Option) (ShutdownFunc, error) {
	o := options{stdout: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	exporter, err := newExporter(ctx, cfg, o)
	if err != nil {
		return nil, err
	}
	if exporter == nil {
		logger.Debug("Tracing disabled")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
		resource.WithFromEnv(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace resource: %w", err)
	}

	tp := NewTracerProvider(res, sdktrace.NewBatchSpanProcessor(exporter), newSampler(cfg.SampleRatio))
	otel.SetTracerProvider(tp)
	logger.WithFields(logrus.Fields{
		"exporter":     cfg.Exporter,
		"sample_ratio": cfg.SampleRatio,
	}).Info("Tracer provider registered")

	return tp.Shutdown, nil
}

// NewTracerProvider builds a tracer provider around a span processor.
func NewTracerProvider(res *resource.Resource, processor sdktrace.SpanProcessor, sampler sdktrace.Sampler) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sampler),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(processor),
	)
}

func newSampler(ratio float64) sdktrace.Sampler {
	if ratio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

func newExporter(ctx context.Context, cfg config.TracingConfig, o options) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case config.TraceExporterNone, "":
		return nil, nil
	case config.TraceExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(o.stdout))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}
		return exp, nil
	case config.TraceExporterOTLP:
		clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
		}
		exp, err := otlptracegrpc.New(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}
		return exp, nil
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", cfg.Exporter)
	}
}
