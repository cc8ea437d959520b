package logging

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/astarlab/astar"
)

// EventObserver writes every search event as one log record. Per-link events
// go out at debug, expansions and outcomes at info, errors at error.
type EventObserver struct {
	log *slog.Logger
}

// NewEventObserver returns an observer writing to l, or slog.Default() if l is nil.
func NewEventObserver(l *slog.Logger) *EventObserver {
	if l == nil {
		l = slog.Default()
	}

	return &EventObserver{log: l}
}

var _ astar.Observer = (*EventObserver)(nil)

func (o *EventObserver) NodeExpanding(label string) {
	o.log.Info("Expanding node, checking neighbours.", "node", label)
}

func (o *EventObserver) LinkTraversed(from, to string) {
	o.log.Debug("Link traversed.", "from", from, "to", to)
}

func (o *EventObserver) LinkDisabledEncountered(from, to string) {
	o.log.Info("Neighbour is disabled and cannot be part of the path.", "from", from, "to", to)
}

func (o *EventObserver) NodeRelaxed(label string, costFromStart, estimate float64) {
	o.log.Info("Node added to the available nodes.",
		"node", label,
		"from_start", costFromStart,
		"est_to_goal", estimate,
		"total", costFromStart+estimate,
	)
}

func (o *EventObserver) NodeNoImprovement(label string) {
	o.log.Debug("Node already reached at lower or equal cost.", "node", label)
}

func (o *EventObserver) NodeExpanded(label string) {
	o.log.Debug("Node expanded.", "node", label)
}

func (o *EventObserver) NodeInvalidated(label string) {
	o.log.Info("Node route crosses a disabled element, dropping it.", "node", label)
}

func (o *EventObserver) NodeReopened(label string) {
	o.log.Info("Node re-added to the search because a cheaper route may exist.", "node", label)
}

func (o *EventObserver) GoalFound(path astar.Path) {
	o.log.Info("Found goal.",
		"path", path.String(),
		"links", path.Len(),
		"cost", path.Cost,
	)
}

func (o *EventObserver) NoPathExists() {
	o.log.Info("No path to the goal exists.")
}

func (o *EventObserver) SearchError(err error) {
	o.log.LogAttrs(context.Background(), slog.LevelError, "Search failed.", slog.Any("error", err))
}
