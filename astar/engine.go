// SPDX-License-Identifier: MIT
// File: engine.go
// Role: Run controller. Owns one Stepper at a time and drives it from a
// dedicated goroutine, continuously or one Advance at a time.
//
// Pacing:
//   - StepDelay is enforced by a token bucket (golang.org/x/time/rate) with
//     burst 1, so it is a minimum spacing between expansions, never an input
//     to the algorithm.
//   - StepByStep parks the worker until Advance is called.
//
// Concurrency:
//   - All public methods are safe for concurrent use.
//   - Observer callbacks run on the worker goroutine, in order.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/heuristic"
)

// Engine is the steppable, cancellable controller over a SearchSpace.
type Engine struct {
	space *core.SearchSpace

	mu      sync.Mutex
	opts    Options
	status  Status
	runID   string
	stepper *Stepper
	cancel  context.CancelFunc
	done    chan struct{}
	result  Result

	// advance carries one reply channel per Advance call, so a reply the
	// caller gave up on is never read by the next call.
	advance chan chan Status
	wake    chan struct{} // pacing changed while parked

	// stepMu serialises Step against Snapshot.
	stepMu  sync.Mutex
	limiter *rate.Limiter
}

// NewEngine returns an Idle engine over space.
func NewEngine(space *core.SearchSpace, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		space:   space,
		opts:    cfg,
		status:  Idle,
		wake:    make(chan struct{}, 1),
		limiter: rate.NewLimiter(limitFor(cfg.Pacing.StepDelay), 1),
	}
}

func limitFor(d time.Duration) rate.Limit {
	if d <= 0 {
		return rate.Inf
	}

	return rate.Every(d)
}

// Status returns the engine's state. A cancelled run leaves it Idle.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.status
}

// Heuristic returns the configured strategy.
func (e *Engine) Heuristic() heuristic.Kind {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts.Heuristic
}

// SetHeuristic changes the strategy for the next run. Rejected while a run is live.
func (e *Engine) SetHeuristic(kind heuristic.Kind) error {
	if _, err := heuristic.New(kind); err != nil {
		return fmt.Errorf("%w: %w", ErrHeuristicUnset, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == Running {
		return ErrNotIdle
	}
	e.opts.Heuristic = kind

	return nil
}

// SetPacing changes step mode and delay. Allowed at any time; a parked
// worker re-evaluates immediately.
func (e *Engine) SetPacing(p Pacing) {
	if p.StepDelay < 0 {
		p.StepDelay = 0
	}
	e.mu.Lock()
	e.opts.Pacing = p
	e.mu.Unlock()
	e.limiter.SetLimit(limitFor(p.StepDelay))
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Pacing returns the current pacing.
func (e *Engine) Pacing() Pacing {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts.Pacing
}

// Start validates the configuration synchronously and launches the run.
//
// Implementation:
//   - Stage 1: Reject a live run (ErrAlreadyRunning).
//   - Stage 2: Undo the previous run's marks (traveled flags, run-disabled links).
//   - Stage 3: Build the Stepper; configuration errors are returned here and
//     the engine stays in its previous state.
//   - Stage 4: Enter Running and start the worker goroutine.
//
// The run stops when it reaches a terminal state, when Cancel/Reset is
// called, or when ctx is done.
func (e *Engine) Start(ctx context.Context, start, goal string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == Running {
		return ErrAlreadyRunning
	}
	if e.space == nil {
		return ErrNilSpace
	}
	st, err := newStepper(e.space, start, goal, e.opts)
	if err != nil {
		return err
	}
	if e.stepper != nil {
		e.stepper.Restore()
	} else {
		e.space.ClearTraveled()
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.stepper = st
	e.status = Running
	e.runID = uuid.NewString()
	e.cancel = cancel
	e.done = make(chan struct{})
	e.result = Result{}
	e.advance = make(chan chan Status)
	// Drain a stale wake signal from a previous run.
	select {
	case <-e.wake:
	default:
	}

	e.opts.Logger.Info("astar run started",
		slog.String("run_id", e.runID),
		slog.String("start", start),
		slog.String("goal", goal),
		slog.String("heuristic", e.opts.Heuristic.String()),
		slog.Bool("step_by_step", e.opts.Pacing.StepByStep),
		slog.Duration("step_delay", e.opts.Pacing.StepDelay),
	)

	go e.run(runCtx, st, e.runID, start, goal, e.done, e.advance)

	return nil
}

// run is the worker loop of one run.
func (e *Engine) run(ctx context.Context, st *Stepper, runID, start, goal string,
	done chan struct{}, advance <-chan chan Status) {
	defer close(done)

	began := time.Now()
	spanCtx, span := startRunSpan(ctx, runID, start, goal, st)
	defer span.End()

	for {
		var reply chan<- Status
		if e.Pacing().StepByStep {
			select {
			case <-ctx.Done():
				e.finish(spanCtx, span, st, runID, began, ctx.Err())
				return
			case <-e.wake:
				continue
			case reply = <-advance:
			}
		}

		if err := e.limiter.Wait(ctx); err != nil {
			e.finish(spanCtx, span, st, runID, began, err)
			return
		}

		e.stepMu.Lock()
		status, err := st.Step(ctx)
		e.stepMu.Unlock()

		if reply != nil {
			reply <- status
		}
		if err != nil && status == Running {
			// Cancelled between steps.
			e.finish(spanCtx, span, st, runID, began, err)
			return
		}
		if status.Terminal() {
			e.finish(spanCtx, span, st, runID, began, nil)
			return
		}
	}
}

// finish publishes the result of a run. cause is non-nil for cancellations.
func (e *Engine) finish(ctx context.Context, span trace.Span, st *Stepper, runID string, began time.Time, cause error) {
	e.stepMu.Lock()
	if cause != nil {
		if !errors.Is(cause, context.Canceled) && !errors.Is(cause, context.DeadlineExceeded) {
			cause = fmt.Errorf("%w: %w", context.Canceled, cause)
		}
		st.Abort(cause)
	}
	res := st.Result()
	e.stepMu.Unlock()
	res.RunID = runID

	setRunSpanResult(span, res)
	// Record against a detached context: the run context may already be cancelled.
	recordRunMetrics(context.WithoutCancel(ctx), st, time.Since(began))

	e.mu.Lock()
	e.result = res
	if res.Status == Cancelled {
		e.status = Idle
	} else {
		e.status = res.Status
	}
	logger := e.opts.Logger
	e.mu.Unlock()

	attrs := []any{
		slog.String("run_id", runID),
		slog.String("outcome", res.Status.String()),
		slog.Int("iterations", res.Iterations),
		slog.Duration("elapsed", time.Since(began)),
	}
	switch res.Status {
	case Found:
		logger.Info("astar run finished", append(attrs,
			slog.String("path", res.Path.String()),
			slog.Float64("cost", res.Path.Cost))...)
	case Error:
		logger.Error("astar run failed", append(attrs, slog.Any("error", res.Err))...)
	default:
		logger.Info("astar run finished", attrs...)
	}
}

// Advance performs exactly one step in step-by-step mode and returns the
// status after it. It blocks until the step is done.
func (e *Engine) Advance(ctx context.Context) (Status, error) {
	e.mu.Lock()
	status, step := e.status, e.opts.Pacing.StepByStep
	advance, done := e.advance, e.done
	e.mu.Unlock()

	if status != Running {
		return status, ErrNotRunning
	}
	if !step {
		return status, ErrNotStepMode
	}

	reply := make(chan Status, 1)
	select {
	case advance <- reply:
	case <-done:
		return e.Status(), nil
	case <-ctx.Done():
		return Running, ctx.Err()
	}

	select {
	case s := <-reply:
		if s.Terminal() {
			// Let finish publish the result before reporting.
			<-done
		}
		return s, nil
	case <-done:
		return e.Status(), nil
	case <-ctx.Done():
		return Running, ctx.Err()
	}
}

// Cancel stops a live run. The engine returns to Idle once the worker has
// observed the cancellation (within one step boundary); use Wait to block.
func (e *Engine) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != Running {
		return ErrNotRunning
	}
	e.cancel()

	return nil
}

// Reset cancels a live run, waits for it, and returns the engine to Idle
// with traveled markers cleared and run-disabled links re-enabled.
func (e *Engine) Reset() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stepper != nil {
		e.stepper.Restore()
		e.stepper = nil
	}
	e.status = Idle
	e.result = Result{}
	e.cancel = nil
}

// Wait blocks until the current run ends and returns its Result.
// A cancelled run yields Status Cancelled and its cancellation error.
func (e *Engine) Wait(ctx context.Context) (Result, error) {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done == nil {
		return Result{}, ErrNotRunning
	}

	select {
	case <-done:
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	res := e.result
	switch res.Status {
	case Cancelled, Error:
		return res, res.Err
	}

	return res, nil
}

// Result returns the last finished run's result (zero while running).
func (e *Engine) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.result
}

// Snapshot returns the live run's open/closed sets between steps.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	st := e.stepper
	e.mu.Unlock()
	if st == nil {
		return Snapshot{Status: Idle}
	}
	e.stepMu.Lock()
	defer e.stepMu.Unlock()

	return st.Snapshot()
}

// RunID returns the identifier of the current or last run.
func (e *Engine) RunID() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.runID
}
