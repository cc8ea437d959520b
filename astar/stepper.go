// SPDX-License-Identifier: MIT
// File: stepper.go
// Role: Synchronous A* state machine; one Step is one node expansion.
//
// Determinism:
//   - Children are examined in link-insertion order.
//   - The open set is re-sorted stably after each expansion; ties follow Options.TieBreak.
//
// Concurrency:
//   - A Stepper is driven by one goroutine. Node/link flags and positions are
//     read fresh at every check, so toggles made between (or during) steps
//     take effect at the next read.
package astar

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/heuristic"
	"github.com/katalvlaran/astarlab/openset"
)

// nodeState is the per-run bookkeeping of one node. It lives in the run's
// arena, never on core.Node, so separate runs cannot leak parents.
type nodeState struct {
	node   *core.Node
	label  string
	g      float64 // cost from start
	h      float64 // estimate to goal
	parent string  // empty for the start node
	via    float64 // parent's g when this route was recorded
}

func (st *nodeState) total() float64 { return st.g + st.h }

// Stepper runs one A* search step by step.
type Stepper struct {
	space *core.SearchSpace
	start *core.Node
	goal  *core.Node
	h     heuristic.Heuristic
	obs   Observer

	status Status
	err    error
	path   Path

	arena       map[string]*nodeState
	discovered  []*nodeState // discovery order; drives deterministic repair
	open        *openset.Set[*nodeState]
	closed      map[string]*nodeState
	closedOrder []*nodeState

	current     string
	iterations  int
	relaxations int

	// runDisabled holds links this run switched off because their target was disabled.
	runDisabled []*core.Link
}

// NewStepper validates the configuration and seeds the open set with start.
//
// Errors (synchronous, the run never enters Running):
//   - ErrNilSpace, ErrEmptyLabel, ErrStartNotFound, ErrGoalNotFound, ErrHeuristicUnset.
func NewStepper(space *core.SearchSpace, start, goal string, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newStepper(space, start, goal, cfg)
}

func newStepper(space *core.SearchSpace, start, goal string, cfg Options) (*Stepper, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if start == "" || goal == "" {
		return nil, ErrEmptyLabel
	}
	sn, ok := space.FindNode(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	gn, ok := space.FindNode(goal)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}
	h, err := heuristic.New(cfg.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHeuristicUnset, err)
	}
	obs := cfg.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	s := &Stepper{
		space:  space,
		start:  sn,
		goal:   gn,
		h:      h,
		obs:    obs,
		status: Running,
		arena:  make(map[string]*nodeState),
		closed: make(map[string]*nodeState),
		open:   openset.NewWithTieBreak((*nodeState).total, cfg.TieBreak),
	}
	seed := &nodeState{
		node:  sn,
		label: sn.Label(),
		h:     h.Estimate(sn.Position(), gn.Position()),
	}
	s.arena[seed.label] = seed
	s.discovered = append(s.discovered, seed)
	s.open.Insert(seed)

	return s, nil
}

// Status returns the current state.
func (s *Stepper) Status() Status { return s.status }

// Heuristic returns the strategy resolved for this run.
func (s *Stepper) Heuristic() heuristic.Kind { return s.h.Kind() }

// Path returns the found path, or ErrNoPath unless the run ended in Found.
func (s *Stepper) Path() (Path, error) {
	if s.status != Found {
		return Path{}, ErrNoPath
	}

	return s.path, nil
}

// Result summarises the run so far.
func (s *Stepper) Result() Result {
	r := Result{Status: s.status, Iterations: s.iterations, Err: s.err}
	if s.status == Found {
		r.Path = s.path
	}

	return r
}

// Snapshot returns the open set, closed set and last expanded node.
func (s *Stepper) Snapshot() Snapshot {
	snap := Snapshot{Status: s.status, Current: s.current, Iterations: s.iterations}
	for _, st := range s.open.Items() {
		snap.Open = append(snap.Open, st.label)
	}
	for _, st := range s.closedOrder {
		snap.Closed = append(snap.Closed, st.label)
	}

	return snap
}

// CostFromStart reports the recorded cost of label in this run.
func (s *Stepper) CostFromStart(label string) (float64, bool) {
	st, ok := s.arena[label]
	if !ok {
		return 0, false
	}

	return st.g, true
}

// Step performs one expansion.
//
// Implementation:
//   - Stage 1: Honour cancellation (ctx.Err is returned unchanged, state untouched).
//   - Stage 2: Pop the cheapest node; an empty open set ends the run in Exhausted.
//     A popped node whose recorded route crosses something disabled since it
//     was recorded triggers repair() and the next node is popped.
//   - Stage 3: Goal reached => reconstruct the path, Found.
//   - Stage 4: Relax every child in insertion order, close the node, resort.
//
// Returns:
//   - Status after the step; ErrFinished if the run had already ended;
//     a *StructuralError (Status Error) on a missing link.
func (s *Stepper) Step(ctx context.Context) (Status, error) {
	if s.status != Running {
		return s.status, ErrFinished
	}
	if err := ctx.Err(); err != nil {
		return s.status, err
	}

	var cur *nodeState
	for cur == nil {
		st, err := s.open.RemoveCheapest()
		if errors.Is(err, openset.ErrEmpty) {
			s.status = Exhausted
			s.obs.NoPathExists()

			return s.status, nil
		}
		memo := make(map[string]bool)
		if s.routeValid(st, memo) {
			cur = st
			continue
		}
		s.repair(memo)
	}

	s.iterations++
	s.current = cur.label
	s.obs.NodeExpanding(cur.label)

	if cur.node == s.goal {
		path, err := reconstruct(s.arena, cur.label)
		if err != nil {
			return s.fail(err)
		}
		s.close(cur)
		s.path = path
		s.status = Found
		s.obs.GoalFound(path)

		return s.status, nil
	}

	children, err := s.space.Children(cur.label)
	if err != nil {
		return s.fail(&StructuralError{From: cur.label, Err: err})
	}
	curPos := cur.node.Position()
	goalPos := s.goal.Position()
	for _, child := range children {
		if err = s.relax(cur, child, curPos, goalPos); err != nil {
			return s.fail(err)
		}
	}

	s.close(cur)
	s.open.Resort()
	s.obs.NodeExpanded(cur.label)

	return s.status, nil
}

// relax examines the link a -> b.
func (s *Stepper) relax(a *nodeState, b *core.Node, aPos, goalPos core.Position) error {
	label := b.Label()
	link, ok := s.space.FindLink(a.label, label)
	if !ok {
		return &StructuralError{From: a.label, To: label}
	}
	link.SetTraveled(true)
	s.obs.LinkTraversed(a.label, label)

	if !link.Enabled() || !b.Enabled() {
		if link.Enabled() {
			link.SetEnabled(false)
			s.runDisabled = append(s.runDisabled, link)
		}
		s.obs.LinkDisabledEncountered(a.label, label)

		return nil
	}

	bPos := b.Position()
	tentative := a.g + s.h.EdgeCost(aPos, bPos)
	bs, known := s.arena[label]
	// A recorded route that is no longer traversable does not count as a bound.
	if known && tentative >= bs.g && s.routeValid(bs, nil) {
		s.obs.NodeNoImprovement(label)

		return nil
	}

	if !known {
		bs = &nodeState{node: b, label: label}
		s.arena[label] = bs
		s.discovered = append(s.discovered, bs)
	}
	bs.g = tentative
	bs.h = s.h.Estimate(bPos, goalPos)
	bs.parent = a.label
	bs.via = a.g
	s.unclose(bs)
	s.open.Insert(bs)
	s.relaxations++
	s.obs.NodeRelaxed(label, bs.g, bs.h)

	return nil
}

// routeValid walks st's parent chain back to the start and reports whether
// every hop is still an enabled link into an enabled node and was recorded
// against the parent's current g. A node re-routed at a different cost
// therefore invalidates its descendants. memo may be nil.
func (s *Stepper) routeValid(st *nodeState, memo map[string]bool) bool {
	var chain []string
	valid := true
	for cur := st; ; {
		if v, ok := memo[cur.label]; ok {
			valid = v
			break
		}
		if cur.parent == "" {
			valid = cur.node == s.start
			break
		}
		chain = append(chain, cur.label)
		parent, ok := s.arena[cur.parent]
		if !ok || len(chain) > len(s.arena) || !s.hopHolds(parent, cur) {
			valid = false
			break
		}
		cur = parent
	}
	if memo != nil {
		for _, l := range chain {
			memo[l] = valid
		}
	}

	return valid
}

func (s *Stepper) hopHolds(from, to *nodeState) bool {
	if to.via != from.g {
		return false
	}
	l, ok := s.space.FindLink(from.label, to.label)

	return ok && l.Enabled() && to.node.Enabled()
}

// repair drops every state whose route is no longer valid and reopens each
// closed node that still has a usable link into a dropped node, so the
// dropped region is rediscovered through routes that exist now.
func (s *Stepper) repair(memo map[string]bool) {
	dropped := make(map[string]struct{})
	kept := make([]*nodeState, 0, len(s.discovered))
	for _, st := range s.discovered {
		if s.routeValid(st, memo) {
			kept = append(kept, st)
			continue
		}
		dropped[st.label] = struct{}{}
		s.open.Remove(st)
		s.unclose(st)
		delete(s.arena, st.label)
		s.obs.NodeInvalidated(st.label)
	}
	s.discovered = kept

	for _, st := range slices.Clone(s.closedOrder) {
		children, err := s.space.Children(st.label)
		if err != nil {
			continue
		}
		for _, c := range children {
			if _, gone := dropped[c.Label()]; !gone || !c.Enabled() {
				continue
			}
			if l, ok := s.space.FindLink(st.label, c.Label()); ok && l.Enabled() {
				s.unclose(st)
				s.open.Insert(st)
				s.obs.NodeReopened(st.label)

				break
			}
		}
	}
}

func (s *Stepper) close(st *nodeState) {
	if _, ok := s.closed[st.label]; ok {
		return
	}
	s.closed[st.label] = st
	s.closedOrder = append(s.closedOrder, st)
}

func (s *Stepper) unclose(st *nodeState) {
	if _, ok := s.closed[st.label]; !ok {
		return
	}
	delete(s.closed, st.label)
	s.closedOrder = slices.DeleteFunc(s.closedOrder, func(x *nodeState) bool { return x == st })
}

func (s *Stepper) fail(err error) (Status, error) {
	s.status = Error
	s.err = err
	s.obs.SearchError(err)

	return s.status, err
}

// Run steps until the run ends or ctx is cancelled. On cancellation the
// partial state is discarded (see Abort) and the Result carries Cancelled.
func (s *Stepper) Run(ctx context.Context) (Result, error) {
	for s.status == Running {
		if _, err := s.Step(ctx); err != nil {
			// Step only fails while still Running when ctx is done.
			if s.status == Running {
				s.Abort(err)
			}

			return s.Result(), err
		}
	}

	return s.Result(), nil
}

// Abort discards the open/closed sets, clears traveled markers and
// re-enables links the run disabled. The Stepper ends in Cancelled.
func (s *Stepper) Abort(cause error) {
	s.open.Clear()
	s.closed = make(map[string]*nodeState)
	s.closedOrder = nil
	s.arena = make(map[string]*nodeState)
	s.discovered = nil
	s.status = Cancelled
	if cause == nil {
		cause = context.Canceled
	}
	s.err = cause
	s.Restore()
}

// Restore clears traveled markers and re-enables the links this run
// disabled, leaving user-disabled links alone.
func (s *Stepper) Restore() {
	s.space.ClearTraveled()
	s.reenable()
}

func (s *Stepper) reenable() {
	for _, l := range s.runDisabled {
		l.SetEnabled(true)
	}
	s.runDisabled = nil
}

// Relaxations counts successful relaxations so far.
func (s *Stepper) Relaxations() int { return s.relaxations }
