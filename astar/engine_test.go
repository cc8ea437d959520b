// SPDX-License-Identifier: MIT
package astar_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/katalvlaran/astarlab/astar"
	"github.com/katalvlaran/astarlab/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func TestEngine_ContinuousRun(t *testing.T) {
	space := newDiamond(t)
	e := astar.NewEngine(space, astar.WithLogger(quietLogger()))
	assert.Equal(t, astar.Idle, e.Status())

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	res, err := e.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.Status)
	assert.Equal(t, []string{"S", "A", "G"}, res.Path.Labels)
	assert.Equal(t, e.RunID(), res.RunID)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, astar.Found, e.Status())
	assert.Equal(t, res, e.Result())

	// A terminal engine accepts a new run.
	require.NoError(t, e.Start(context.Background(), "B", "G"))
	res, err = e.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "G"}, res.Path.Labels)
}

func TestEngine_StepByStep(t *testing.T) {
	space := newDiamond(t)
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepByStep: true}))
	ctx := waitCtx(t)

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	snap := e.Snapshot()
	assert.Equal(t, astar.Running, snap.Status)
	assert.Equal(t, []string{"S"}, snap.Open)
	assert.Zero(t, snap.Iterations)

	status, err := e.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, astar.Running, status)
	snap = e.Snapshot()
	assert.Equal(t, "S", snap.Current)
	assert.Equal(t, []string{"A", "B"}, snap.Open)
	assert.Equal(t, []string{"S"}, snap.Closed)
	assert.Equal(t, 1, snap.Iterations)

	for _, want := range []astar.Status{astar.Running, astar.Running, astar.Found} {
		status, err = e.Advance(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, status)
	}
	assert.Equal(t, astar.Found, e.Status())
	assert.Equal(t, []string{"S", "A", "G"}, e.Result().Path.Labels)

	_, err = e.Advance(ctx)
	assert.ErrorIs(t, err, astar.ErrNotRunning)
}

func TestEngine_AdvanceErrors(t *testing.T) {
	space := newDiamond(t)
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepDelay: time.Hour}))

	_, err := e.Advance(context.Background())
	assert.ErrorIs(t, err, astar.ErrNotRunning)
	_, err = e.Wait(context.Background())
	assert.ErrorIs(t, err, astar.ErrNotRunning)
	assert.ErrorIs(t, e.Cancel(), astar.ErrNotRunning)

	// One step runs immediately, the second waits an hour.
	require.NoError(t, e.Start(context.Background(), "S", "G"))
	_, err = e.Advance(context.Background())
	assert.ErrorIs(t, err, astar.ErrNotStepMode)

	require.NoError(t, e.Cancel())
	res, err := e.Wait(waitCtx(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, astar.Cancelled, res.Status)
}

func TestEngine_CancelRestoresIdle(t *testing.T) {
	space := newDiamond(t)
	require.NoError(t, space.SetNodeEnabled("A", false))
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepByStep: true}))
	ctx := waitCtx(t)

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	_, err := e.Advance(ctx)
	require.NoError(t, err)
	l, _ := space.FindLink("S", "A")
	require.False(t, l.Enabled(), "link into the disabled node is switched off by the run")
	require.NotZero(t, space.Stats().Traveled)

	require.NoError(t, e.Cancel())
	res, err := e.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, astar.Cancelled, res.Status)
	assert.Empty(t, res.Path.Labels)
	assert.Equal(t, astar.Idle, e.Status())
	assert.Zero(t, space.Stats().Traveled)
	assert.True(t, l.Enabled())
}

func TestEngine_ParentContextCancel(t *testing.T) {
	space := newDiamond(t)
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepByStep: true}))
	parent, cancel := context.WithCancel(context.Background())

	require.NoError(t, e.Start(parent, "S", "G"))
	cancel()
	res, err := e.Wait(waitCtx(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, astar.Cancelled, res.Status)
	assert.Equal(t, astar.Idle, e.Status())
}

func TestEngine_ConfigurationRules(t *testing.T) {
	space := newDiamond(t)
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepByStep: true}))

	err := e.Start(context.Background(), "S", "X")
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)
	assert.Equal(t, astar.Idle, e.Status())

	assert.ErrorIs(t, e.SetHeuristic(heuristic.Unset), astar.ErrHeuristicUnset)
	require.NoError(t, e.SetHeuristic(heuristic.ShortestDistance))
	assert.Equal(t, heuristic.ShortestDistance, e.Heuristic())

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	assert.ErrorIs(t, e.Start(context.Background(), "S", "G"), astar.ErrAlreadyRunning)
	assert.ErrorIs(t, e.SetHeuristic(heuristic.FewestLinks), astar.ErrNotIdle)
	assert.Equal(t, heuristic.ShortestDistance, e.Heuristic())

	e.Reset()
	assert.Equal(t, astar.Idle, e.Status())
	require.NoError(t, e.SetHeuristic(heuristic.FewestLinks))

	nilEngine := astar.NewEngine(nil)
	assert.ErrorIs(t, nilEngine.Start(context.Background(), "S", "G"), astar.ErrNilSpace)
}

func TestEngine_ResetReplaysIdentically(t *testing.T) {
	space := newDiamond(t)
	rec := &astar.Recorder{}
	e := astar.NewEngine(space, astar.WithLogger(quietLogger()), astar.WithObserver(rec))

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	first, err := e.Wait(waitCtx(t))
	require.NoError(t, err)
	events := rec.Strings()
	traveled := space.Stats().Traveled

	e.Reset()
	assert.Zero(t, space.Stats().Traveled)
	rec.Reset()

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	second, err := e.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, events, rec.Strings())
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, traveled, space.Stats().Traveled)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestEngine_StepDelay(t *testing.T) {
	space := newDiamond(t)
	const delay = 20 * time.Millisecond
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepDelay: delay}))

	began := time.Now()
	require.NoError(t, e.Start(context.Background(), "S", "G"))
	res, err := e.Wait(waitCtx(t))
	require.NoError(t, err)
	// Four expansions, three enforced gaps.
	assert.GreaterOrEqual(t, time.Since(began), 3*delay-5*time.Millisecond)
	assert.Equal(t, []string{"S", "A", "G"}, res.Path.Labels, "pacing never changes the result")
}

func TestEngine_SetPacingReleasesParkedRun(t *testing.T) {
	space := newDiamond(t)
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepByStep: true}))

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	_, err := e.Advance(waitCtx(t))
	require.NoError(t, err)

	e.SetPacing(astar.Pacing{})
	assert.False(t, e.Pacing().StepByStep)
	res, err := e.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.Status)
	assert.Equal(t, 4, res.Iterations)
}

// TestEngine_AdvanceAfterAbandonedStep gives up on one Advance while its
// step is still paced; the next Advance must perform a step of its own.
func TestEngine_AdvanceAfterAbandonedStep(t *testing.T) {
	space := newDiamond(t)
	e := astar.NewEngine(space,
		astar.WithLogger(quietLogger()),
		astar.WithPacing(astar.Pacing{StepByStep: true, StepDelay: 100 * time.Millisecond}))
	ctx := waitCtx(t)

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	_, err := e.Advance(ctx)
	require.NoError(t, err)

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = e.Advance(short)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Eventually(t, func() bool { return e.Snapshot().Iterations == 2 },
		2*time.Second, 5*time.Millisecond, "the abandoned step still completes")

	status, err := e.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, astar.Running, status)
	assert.Equal(t, 3, e.Snapshot().Iterations)

	status, err = e.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, astar.Found, status)
}

// TestEngine_StructuralErrorEndsRun removes a link the worker is about to
// relax; the run ends in Error and Wait reports the structural error.
func TestEngine_StructuralErrorEndsRun(t *testing.T) {
	space := newDiamond(t)
	obs := &linkCutter{Recorder: &astar.Recorder{}, space: space, after: [2]string{"S", "A"}, cut: [2]string{"S", "B"}}
	e := astar.NewEngine(space, astar.WithLogger(quietLogger()), astar.WithObserver(obs))

	require.NoError(t, e.Start(context.Background(), "S", "G"))
	res, err := e.Wait(waitCtx(t))
	require.ErrorIs(t, err, astar.ErrStructural)
	assert.Equal(t, astar.Error, res.Status)
	assert.ErrorIs(t, res.Err, astar.ErrStructural)
	assert.Equal(t, astar.Error, e.Status())
	assert.Empty(t, res.Path.Labels)

	events := obs.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, astar.EvSearchError, events[len(events)-1].Kind)

	// An engine in Error accepts a new run.
	require.NoError(t, e.Start(context.Background(), "S", "G"))
	res, err = e.Wait(waitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "G"}, res.Path.Labels)
}
