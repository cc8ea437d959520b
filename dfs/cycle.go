package dfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/astarlab/core"
)

// DetectCycles reports the cycles closed by back links of a depth-first
// walk over every link of s, enabled or not. Each cycle is returned closed
// ([v0, v1, ..., v0]) in its lexicographically minimal rotation, and the list
// is sorted by signature. A self-loop yields [v, v].
//
// Returns (false, nil, nil) for a nil or acyclic space.
//
// Complexity: Time O(V + E + C·L), Memory O(V + L_max).
func DetectCycles(s *core.SearchSpace) (bool, [][]string, error) {
	if s == nil {
		return false, nil, nil
	}

	nodes := s.Nodes()
	d := &cycleDetector{
		space: s,
		state: make(map[string]int, len(nodes)),
		path:  make([]string, 0, len(nodes)),
		seen:  make(map[string]struct{}),
	}
	for _, n := range nodes {
		if d.state[n.Label()] != White {
			continue
		}
		if err := d.visit(n.Label()); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	if len(d.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(d.cycles, func(a, b []string) int {
		return strings.Compare(JoinSig(a), JoinSig(b))
	})

	return true, d.cycles, nil
}

type cycleDetector struct {
	space  *core.SearchSpace
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

func (d *cycleDetector) visit(label string) error {
	d.state[label] = Gray
	d.path = append(d.path, label)

	children, err := d.space.Children(label)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, child := range children {
		next := child.Label()
		switch d.state[next] {
		case White:
			if err = d.visit(next); err != nil {
				return err
			}
		case Gray:
			d.record(next)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[label] = Black

	return nil
}

// record stores the cycle running from start to the top of the path stack.
func (d *cycleDetector) record(start string) {
	idx := slices.Index(d.path, start)
	base := slices.Clone(d.path[idx:])

	rot := MinimalRotation(base)
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}
