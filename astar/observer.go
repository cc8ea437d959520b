package astar

import (
	"fmt"
	"sync"
)

// Observer receives search events. Events of one run are delivered in strict
// order from the goroutine executing the run; implementations must not block
// for long and must not mutate the search space structurally.
type Observer interface {
	// NodeExpanding is emitted when a node is popped for expansion.
	NodeExpanding(label string)
	// LinkTraversed is emitted when a link is examined and marked traveled.
	LinkTraversed(from, to string)
	// LinkDisabledEncountered is emitted when the link or its target is disabled.
	LinkDisabledEncountered(from, to string)
	// NodeRelaxed is emitted when a node receives a new parent and cost.
	NodeRelaxed(label string, costFromStart, estimate float64)
	// NodeNoImprovement is emitted when a route does not beat the recorded one.
	NodeNoImprovement(label string)
	// NodeExpanded is emitted after all children of a node were examined.
	NodeExpanded(label string)
	// NodeInvalidated is emitted when a node's recorded route crosses a
	// link or node disabled after it was recorded; its state is dropped.
	NodeInvalidated(label string)
	// NodeReopened is emitted when a closed node moves back into the open set
	// so it can re-relax an invalidated neighbor.
	NodeReopened(label string)
	// GoalFound ends a successful run.
	GoalFound(path Path)
	// NoPathExists ends a run whose open set ran dry.
	NoPathExists()
	// SearchError ends a run on a fatal inconsistency.
	SearchError(err error)
}

// NopObserver ignores every event. Embed it to implement a subset of Observer.
type NopObserver struct{}

func (NopObserver) NodeExpanding(string)                   {}
func (NopObserver) LinkTraversed(string, string)           {}
func (NopObserver) LinkDisabledEncountered(string, string) {}
func (NopObserver) NodeRelaxed(string, float64, float64)   {}
func (NopObserver) NodeNoImprovement(string)               {}
func (NopObserver) NodeExpanded(string)                    {}
func (NopObserver) NodeInvalidated(string)                 {}
func (NopObserver) NodeReopened(string)                    {}
func (NopObserver) GoalFound(Path)                         {}
func (NopObserver) NoPathExists()                          {}
func (NopObserver) SearchError(error)                      {}

// EventKind enumerates recorded events.
type EventKind int

const (
	EvNodeExpanding EventKind = iota
	EvLinkTraversed
	EvLinkDisabled
	EvNodeRelaxed
	EvNodeNoImprovement
	EvNodeExpanded
	EvNodeInvalidated
	EvNodeReopened
	EvGoalFound
	EvNoPathExists
	EvSearchError
)

var eventNames = [...]string{
	"expanding", "traversed", "disabled", "relaxed", "no-improvement",
	"expanded", "invalidated", "reopened", "goal-found", "no-path", "error",
}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}

	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one recorded observer callback.
type Event struct {
	Kind     EventKind
	Node     string  // node label, or link source
	To       string  // link target for link events
	Cost     float64 // cost from start (relaxed) or path cost (goal found)
	Estimate float64 // estimate to goal (relaxed)
	Path     []string
	Err      error
}

// String renders the event compactly, e.g. "relaxed B g=1 h=1".
func (e Event) String() string {
	switch e.Kind {
	case EvLinkTraversed, EvLinkDisabled:
		return fmt.Sprintf("%s %s->%s", e.Kind, e.Node, e.To)
	case EvNodeRelaxed:
		return fmt.Sprintf("%s %s g=%g h=%g", e.Kind, e.Node, e.Cost, e.Estimate)
	case EvGoalFound:
		return fmt.Sprintf("%s %v cost=%g", e.Kind, e.Path, e.Cost)
	case EvNoPathExists:
		return e.Kind.String()
	case EvSearchError:
		return fmt.Sprintf("%s %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("%s %s", e.Kind, e.Node)
}

// Recorder is an Observer that stores every event. Safe for concurrent reads.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Strings renders every recorded event with Event.String.
func (r *Recorder) Strings() []string {
	evs := r.Events()
	out := make([]string, len(evs))
	for i, e := range evs {
		out[i] = e.String()
	}

	return out
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

func (r *Recorder) NodeExpanding(l string) { r.add(Event{Kind: EvNodeExpanding, Node: l}) }
func (r *Recorder) LinkTraversed(f, t string) {
	r.add(Event{Kind: EvLinkTraversed, Node: f, To: t})
}
func (r *Recorder) LinkDisabledEncountered(f, t string) {
	r.add(Event{Kind: EvLinkDisabled, Node: f, To: t})
}
func (r *Recorder) NodeRelaxed(l string, g, h float64) {
	r.add(Event{Kind: EvNodeRelaxed, Node: l, Cost: g, Estimate: h})
}
func (r *Recorder) NodeNoImprovement(l string) { r.add(Event{Kind: EvNodeNoImprovement, Node: l}) }
func (r *Recorder) NodeExpanded(l string)      { r.add(Event{Kind: EvNodeExpanded, Node: l}) }
func (r *Recorder) NodeInvalidated(l string)   { r.add(Event{Kind: EvNodeInvalidated, Node: l}) }
func (r *Recorder) NodeReopened(l string)      { r.add(Event{Kind: EvNodeReopened, Node: l}) }
func (r *Recorder) GoalFound(p Path) {
	r.add(Event{Kind: EvGoalFound, Path: append([]string(nil), p.Labels...), Cost: p.Cost})
}
func (r *Recorder) NoPathExists()         { r.add(Event{Kind: EvNoPathExists}) }
func (r *Recorder) SearchError(err error) { r.add(Event{Kind: EvSearchError, Err: err}) }

// Observers fans every event out to each member in order.
type Observers []Observer

func (m Observers) NodeExpanding(l string) {
	for _, o := range m {
		o.NodeExpanding(l)
	}
}

func (m Observers) LinkTraversed(f, t string) {
	for _, o := range m {
		o.LinkTraversed(f, t)
	}
}

func (m Observers) LinkDisabledEncountered(f, t string) {
	for _, o := range m {
		o.LinkDisabledEncountered(f, t)
	}
}

func (m Observers) NodeRelaxed(l string, g, h float64) {
	for _, o := range m {
		o.NodeRelaxed(l, g, h)
	}
}

func (m Observers) NodeNoImprovement(l string) {
	for _, o := range m {
		o.NodeNoImprovement(l)
	}
}

func (m Observers) NodeExpanded(l string) {
	for _, o := range m {
		o.NodeExpanded(l)
	}
}

func (m Observers) NodeInvalidated(l string) {
	for _, o := range m {
		o.NodeInvalidated(l)
	}
}

func (m Observers) NodeReopened(l string) {
	for _, o := range m {
		o.NodeReopened(l)
	}
}

func (m Observers) GoalFound(p Path) {
	for _, o := range m {
		o.GoalFound(p)
	}
}

func (m Observers) NoPathExists() {
	for _, o := range m {
		o.NoPathExists()
	}
}

func (m Observers) SearchError(err error) {
	for _, o := range m {
		o.SearchError(err)
	}
}

var (
	_ Observer = NopObserver{}
	_ Observer = (*Recorder)(nil)
	_ Observer = Observers(nil)
)
