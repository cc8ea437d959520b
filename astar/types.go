// SPDX-License-Identifier: MIT
// Package astar defines the run configuration, status machine, results and
// sentinel errors of the steppable A* engine.
//
// Options:
//
//	– Heuristic: cost strategy (heuristic.FewestLinks by default).
//	– TieBreak:  open-set order among equal totals (openset.OldestFirst by default).
//	– Pacing:    step-by-step mode and minimum delay between steps (Engine only).
//	– Observer:  receives every search event in order (NopObserver by default).
//	– Logger:    lifecycle logging (slog.Default() by default).
//
// Errors (sentinel):
//
//	– ErrNilSpace        the search space is nil.
//	– ErrEmptyLabel      start or goal label is empty.
//	– ErrStartNotFound   start label does not name a node.
//	– ErrGoalNotFound    goal label does not name a node.
//	– ErrHeuristicUnset  heuristic.Unset (or an unknown kind) was configured.
//	– ErrAlreadyRunning  Start called while a run is live.
//	– ErrNotIdle         SetHeuristic called while a run is live.
//	– ErrNotRunning      Advance called with no live run.
//	– ErrNotStepMode     Advance called while not in step-by-step mode.
//	– ErrFinished        Step called after the run reached a terminal state.
//	– ErrStructural      a neighbor reference has no backing link.
//	– ErrNoPath          a path was requested from a run that did not find one.
package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/astarlab/heuristic"
	"github.com/katalvlaran/astarlab/openset"
)

// Sentinel errors returned by the engine.
var (
	ErrNilSpace       = errors.New("astar: search space is nil")
	ErrEmptyLabel     = errors.New("astar: start or goal label is empty")
	ErrStartNotFound  = errors.New("astar: start node not found")
	ErrGoalNotFound   = errors.New("astar: goal node not found")
	ErrHeuristicUnset = errors.New("astar: heuristic is not set")
	ErrAlreadyRunning = errors.New("astar: a run is already in progress")
	ErrNotIdle        = errors.New("astar: engine is not idle")
	ErrNotRunning     = errors.New("astar: no run in progress")
	ErrNotStepMode    = errors.New("astar: engine is not in step-by-step mode")
	ErrFinished       = errors.New("astar: run already finished")
	ErrStructural     = errors.New("astar: search space is structurally inconsistent")
	ErrNoPath         = errors.New("astar: no path available")
)

// StructuralError reports the neighbor pair that has no backing link.
// It matches ErrStructural under errors.Is.
type StructuralError struct {
	From, To string
	Err      error // underlying cause, may be nil
}

func (e *StructuralError) Error() string {
	msg := fmt.Sprintf("%s: %s->%s has no link", ErrStructural, e.From, e.To)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrStructural and the underlying cause.
func (e *StructuralError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStructural}
	}

	return []error{ErrStructural, e.Err}
}

// Status is a state of the search state machine.
//
//	Idle -> Running -> {Found, Exhausted, Error}
//
// Cancelled is never the engine's own state: a cancelled run returns the
// engine to Idle and its Result carries Cancelled.
type Status int

const (
	Idle Status = iota
	Running
	Found
	Exhausted
	Error
	Cancelled
)

var statusNames = [...]string{"idle", "running", "found", "exhausted", "error", "cancelled"}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool {
	return s == Found || s == Exhausted || s == Error || s == Cancelled
}

// Pacing controls presentation speed. It never changes which path is found.
type Pacing struct {
	// StepByStep makes the engine wait for Advance before every expansion.
	StepByStep bool
	// StepDelay is the minimum wall-clock time between two expansions.
	StepDelay time.Duration
}

// Options configures a run.
type Options struct {
	Heuristic heuristic.Kind
	TieBreak  openset.TieBreak
	Pacing    Pacing
	Observer  Observer
	Logger    *slog.Logger
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithHeuristic selects the cost strategy.
func WithHeuristic(kind heuristic.Kind) Option {
	return func(o *Options) { o.Heuristic = kind }
}

// WithTieBreak selects the open-set order among equal totals.
func WithTieBreak(tb openset.TieBreak) Option {
	return func(o *Options) { o.TieBreak = tb }
}

// WithPacing sets step-by-step mode and the minimum step delay.
// Panics on a negative delay.
func WithPacing(p Pacing) Option {
	if p.StepDelay < 0 {
		panic("astar: negative step delay")
	}

	return func(o *Options) { o.Pacing = p }
}

// WithObserver installs the event sink. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger sets the lifecycle logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("astar: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the defaults described in the package comment.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.FewestLinks,
		TieBreak:  openset.OldestFirst,
		Observer:  NopObserver{},
		Logger:    slog.Default(),
	}
}

// Result is the outcome of one run.
type Result struct {
	// RunID identifies the run in logs and metrics (empty for bare Stepper runs).
	RunID string
	// Status is Found, Exhausted, Error or Cancelled.
	Status Status
	// Path is set only when Status == Found.
	Path Path
	// Iterations counts expansions, the goal expansion included.
	Iterations int
	// Err is set when Status is Error or Cancelled.
	Err error
}

// Snapshot is a read-only view of a run between steps.
type Snapshot struct {
	Status     Status
	Current    string   // label of the node expanded last
	Open       []string // open set, in pop order
	Closed     []string // closed set, in closing order
	Iterations int
}
