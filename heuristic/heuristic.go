// Package heuristic defines the cost model used by the A* search: the cost
// of traversing one link and the estimated remaining cost to the goal.
//
// Two strategies are provided:
//
//	FewestLinks      - every link costs 1; the estimate is the constant 1.
//	                   Minimises hop count. The constant estimate overestimates
//	                   by one at the goal itself, which only affects ordering:
//	                   relaxation compares costs from start, never totals.
//	ShortestDistance - link cost and estimate are Euclidean distances between
//	                   node positions. Admissible and consistent.
//
// A strategy is resolved once per run with New(kind) and is then called
// through the Heuristic interface, never switched on per relaxation.
package heuristic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/astarlab/core"
)

// ErrUnknownKind indicates a heuristic name or Kind that is not recognised.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Heuristic supplies edge costs and goal estimates. Implementations must be
// non-negative and safe for concurrent use.
type Heuristic interface {
	// EdgeCost is the cost of the link between nodes at from and to.
	EdgeCost(from, to core.Position) float64

	// Estimate is the estimated cost from a node at n to a goal at goal.
	Estimate(n, goal core.Position) float64

	// Kind identifies the strategy.
	Kind() Kind
}

// Kind enumerates the built-in strategies.
type Kind int

const (
	// Unset is the zero Kind; a run configured with it is rejected.
	Unset Kind = iota
	// FewestLinks minimises the number of links on the path.
	FewestLinks
	// ShortestDistance minimises the Euclidean length of the path.
	ShortestDistance
)

var kindNames = map[Kind]string{
	FewestLinks:      "fewest-links",
	ShortestDistance: "shortest-distance",
}

// Kinds lists the selectable strategies in display order.
func Kinds() []Kind { return []Kind{FewestLinks, ShortestDistance} }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "fewest-links" or "shortest-distance" (case-insensitive;
// underscores and the short forms "links"/"distance" are tolerated).
func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "fewest-links", "links", "hops":
		return FewestLinks, nil
	case "shortest-distance", "distance", "euclidean":
		return ShortestDistance, nil
	}

	return Unset, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// New resolves kind to its strategy.
func New(kind Kind) (Heuristic, error) {
	switch kind {
	case FewestLinks:
		return fewestLinks{}, nil
	case ShortestDistance:
		return shortestDistance{}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

type fewestLinks struct{}

func (fewestLinks) EdgeCost(_, _ core.Position) float64 { return 1 }
func (fewestLinks) Estimate(_, _ core.Position) float64 { return 1 }
func (fewestLinks) Kind() Kind                          { return FewestLinks }

type shortestDistance struct{}

func (shortestDistance) EdgeCost(from, to core.Position) float64 { return from.Distance(to) }
func (shortestDistance) Estimate(n, goal core.Position) float64  { return n.Distance(goal) }
func (shortestDistance) Kind() Kind                              { return ShortestDistance }
