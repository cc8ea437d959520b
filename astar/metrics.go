package astar

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for search runs.
var (
	tracer = otel.Tracer("astarlab.astar")
	meter  = otel.Meter("astarlab.astar")
)

// Metrics for search runs.
var (
	runsTotal        metric.Int64Counter
	expansionsTotal  metric.Int64Counter
	relaxationsTotal metric.Int64Counter
	runDuration      metric.Float64Histogram
	pathCost         metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runsTotal, err = meter.Int64Counter(
			"astar_runs_total",
			metric.WithDescription("Total number of finished search runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		expansionsTotal, err = meter.Int64Counter(
			"astar_expansions_total",
			metric.WithDescription("Total number of node expansions"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		relaxationsTotal, err = meter.Int64Counter(
			"astar_relaxations_total",
			metric.WithDescription("Total number of successful relaxations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runDuration, err = meter.Float64Histogram(
			"astar_run_duration_seconds",
			metric.WithDescription("Wall-clock duration of search runs, pacing included"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pathCost, err = meter.Float64Histogram(
			"astar_path_cost",
			metric.WithDescription("Total cost of found paths"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRunMetrics records one finished run.
func recordRunMetrics(ctx context.Context, s *Stepper, duration time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}

	res := s.Result()
	attrs := metric.WithAttributes(
		attribute.String("outcome", res.Status.String()),
		attribute.String("heuristic", s.Heuristic().String()),
	)
	runsTotal.Add(ctx, 1, attrs)
	expansionsTotal.Add(ctx, int64(res.Iterations), attrs)
	relaxationsTotal.Add(ctx, int64(s.Relaxations()), attrs)
	runDuration.Record(ctx, duration.Seconds(), attrs)
	if res.Status == Found {
		pathCost.Record(ctx, res.Path.Cost, attrs)
	}
}

// startRunSpan creates a span covering one run.
func startRunSpan(ctx context.Context, runID, start, goal string, s *Stepper) (context.Context, trace.Span) {
	return tracer.Start(ctx, "astar.Run",
		trace.WithAttributes(
			attribute.String("astar.run_id", runID),
			attribute.String("astar.start", start),
			attribute.String("astar.goal", goal),
			attribute.String("astar.heuristic", s.Heuristic().String()),
		),
	)
}

// setRunSpanResult sets the outcome attributes on a run span.
func setRunSpanResult(span trace.Span, res Result) {
	span.SetAttributes(
		attribute.String("astar.outcome", res.Status.String()),
		attribute.Int("astar.iterations", res.Iterations),
	)
	if res.Status == Found {
		span.SetAttributes(
			attribute.Float64("astar.path_cost", res.Path.Cost),
			attribute.Int("astar.path_links", res.Path.Len()),
		)
	}
	if res.Status == Error && res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}
}
