// Package telemetry installs the OpenTelemetry SDK providers behind the
// otel.Meter and otel.Tracer calls made by the astar package.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Exporter names accepted in Config.
const (
	ExporterNone       = "none"
	ExporterPrometheus = "prometheus"
	ExporterStdout     = "stdout"
)

var (
	// ErrNilContext is returned by Init when ctx is nil.
	ErrNilContext = errors.New("telemetry: nil context")

	// ErrUnknownExporter is returned for an exporter name Init does not know.
	ErrUnknownExporter = errors.New("telemetry: unknown exporter")
)

// Config controls telemetry behavior.
type Config struct {
	// ServiceName identifies this process in traces and metrics.
	ServiceName string

	// ServiceVersion is the version string reported with the resource.
	ServiceVersion string

	// MetricExporter is "none", "prometheus" or "stdout".
	MetricExporter string

	// TraceExporter is "none" or "stdout".
	TraceExporter string

	// Writer receives stdout exporter output. Defaults to os.Stdout.
	Writer io.Writer
}

// DefaultConfig returns a configuration with both exporters off.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "astar",
		ServiceVersion: "dev",
		MetricExporter: ExporterNone,
		TraceExporter:  ExporterNone,
	}
}

// Telemetry holds the installed providers.
type Telemetry struct {
	// MeterProvider is nil when metrics are off.
	MeterProvider *metric.MeterProvider

	// TracerProvider is nil when traces are off.
	TracerProvider *trace.TracerProvider

	// MetricsHandler serves the Prometheus exposition format; nil unless
	// the prometheus exporter is selected.
	MetricsHandler http.Handler

	shutdownFuncs []func(context.Context) error
}

// Init builds the providers cfg asks for and installs them as the otel
// globals. Call Shutdown on exit to flush the exporters.
//
// The prometheus exporter uses its own registry, so repeated Init calls
// never collide on collector registration.
func Init(ctx context.Context, cfg Config) (*Telemetry, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)
	t := &Telemetry{}

	switch cfg.TraceExporter {
	case ExporterNone, "":
	case ExporterStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cfg.Writer))
		if err != nil {
			return nil, fmt.Errorf("telemetry: create stdout trace exporter: %w", err)
		}
		t.TracerProvider = trace.NewTracerProvider(
			trace.WithBatcher(exporter),
			trace.WithResource(res),
			trace.WithSampler(trace.AlwaysSample()),
		)
		otel.SetTracerProvider(t.TracerProvider)
		t.shutdownFuncs = append(t.shutdownFuncs, t.TracerProvider.Shutdown)
	default:
		return nil, fmt.Errorf("%w: trace %q", ErrUnknownExporter, cfg.TraceExporter)
	}

	var reader metric.Reader
	switch cfg.MetricExporter {
	case ExporterNone, "":
	case ExporterPrometheus:
		reg := prometheus.NewRegistry()
		exporter, err := promexporter.New(promexporter.WithRegisterer(reg))
		if err != nil {
			t.rollback(ctx)
			return nil, fmt.Errorf("telemetry: create prometheus exporter: %w", err)
		}
		reader = exporter
		t.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	case ExporterStdout:
		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.Writer))
		if err != nil {
			t.rollback(ctx)
			return nil, fmt.Errorf("telemetry: create stdout metric exporter: %w", err)
		}
		reader = metric.NewPeriodicReader(exporter)
	default:
		t.rollback(ctx)
		return nil, fmt.Errorf("%w: metric %q", ErrUnknownExporter, cfg.MetricExporter)
	}
	if reader != nil {
		t.MeterProvider = metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(reader),
		)
		otel.SetMeterProvider(t.MeterProvider)
		t.shutdownFuncs = append(t.shutdownFuncs, t.MeterProvider.Shutdown)
	}

	return t, nil
}

// Shutdown flushes and stops every provider, reporting all failures.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range t.shutdownFuncs {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	t.shutdownFuncs = nil

	return errors.Join(errs...)
}

func (t *Telemetry) rollback(ctx context.Context) {
	_ = t.Shutdown(ctx)
}
