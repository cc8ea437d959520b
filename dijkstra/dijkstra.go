// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// enabled part of a core.SearchSpace.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E).
//
// Notes on implementation choices:
//
//   - The solver snapshots SearchSpace.EnabledView() first, so flags toggled
//     concurrently by an editor cannot change the topology mid-run.
//   - Costs come from the EdgeCost option and are checked for negativity at
//     relaxation time (ErrNegativeCost).
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/astarlab/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of
// the enabled subgraph of s.
//
// Returns:
//
//   - dist: label → minimum distance (+Inf if unreachable).
//   - prev: label → predecessor on one shortest path ("" for source and
//     unreachable nodes); nil unless WithReturnPath() was given.
//   - err:  a sentinel error on invalid input or a negative cost.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. s must be non-nil (ErrNilSpace).
//  3. Source must exist and be enabled (ErrSourceNotFound).
func Dijkstra(s *core.SearchSpace, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if s == nil {
		return nil, nil, ErrNilSpace
	}

	view := s.EnabledView()
	if !view.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	nodes := view.Nodes()
	r := &runner{
		view:    view,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
		pq:      make(nodePQ, 0, len(nodes)),
	}
	r.init(nodes)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source..target label sequence from a predecessor map.
func PathTo(dist map[string]float64, prev map[string]string, target string) ([]string, error) {
	d, ok := dist[target]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}
	path := []string{target}
	for cur := target; prev[cur] != ""; cur = prev[cur] {
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: predecessor cycle at %q", ErrUnreachable, cur)
		}
		path = append(path, prev[cur])
	}
	slices.Reverse(path)

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view    *core.SearchSpace  // enabled-only snapshot; read-only here.
	options Options            // Configuration options (Source, cap, cost).
	dist    map[string]float64 // label → current best distance from Source.
	prev    map[string]string  // label → predecessor on the shortest path.
	visited map[string]bool    // Tracks if a node's distance is finalized.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +Inf and pushes Source at distance 0.
func (r *runner) init(nodes []*core.Node) {
	for _, n := range nodes {
		r.dist[n.Label()] = math.Inf(1)
		r.prev[n.Label()] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process extracts the closest unsettled node until the heap empties or the
// minimum exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve each child of u through u.
func (r *runner) relax(u string) error {
	children, err := r.view.Children(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get children of %q: %w", u, err)
	}
	un, _ := r.view.FindNode(u)
	uPos := un.Position()

	for _, child := range children {
		v := child.Label()
		w := r.options.Cost(uPos, child.Position())
		if w < 0 {
			return fmt.Errorf("%w: %s weight=%g", ErrNegativeCost, core.LinkLabel(u, v), w)
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
