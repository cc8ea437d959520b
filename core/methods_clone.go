// File: methods_clone.go
// Role: Copies, filtered views, statistics and consistency checks.
//
// Concurrency:
//   - Read lock on the source; results are fresh SearchSpace instances.
//   - Flags are sampled once per node/link, so a copy is a point-in-time view
//     even while another goroutine toggles them.
package core

import "fmt"

// Clone returns a deep copy: nodes, links, flags, positions and neighbor order.
//
// Complexity: O(V + E)
func (s *SearchSpace) Clone() *SearchSpace {
	return s.copyFiltered(func(*Node) bool { return true }, func(*Link) bool { return true }, true)
}

// EnabledView returns a new SearchSpace holding only enabled nodes and the
// enabled links whose endpoints are both enabled. Traveled markers are not copied.
//
// Reference solvers run on this view so a concurrent editor cannot change
// the topology under them.
func (s *SearchSpace) EnabledView() *SearchSpace {
	return s.copyFiltered((*Node).Enabled, (*Link).Enabled, false)
}

func (s *SearchSpace) copyFiltered(keepNode func(*Node) bool, keepLink func(*Link) bool, withTraveled bool) *SearchSpace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := NewSearchSpace()
	for _, n := range s.nodeOrder {
		if !keepNode(n) {
			continue
		}
		nn := &Node{label: n.label, pos: n.Position()}
		nn.enabled.Store(n.Enabled())
		if len(n.attrs) > 0 {
			nn.attrs = make(map[string]string, len(n.attrs))
			for k, v := range n.attrs {
				nn.attrs[k] = v
			}
		}
		out.nodes[nn.label] = nn
		out.nodeOrder = append(out.nodeOrder, nn)
	}

	// Neighbor lists follow link insertion order, so rebuilding from linkOrder
	// reproduces children/parents order exactly.
	for _, l := range s.linkOrder {
		src, okF := out.nodes[l.from]
		dst, okT := out.nodes[l.to]
		if !okF || !okT || !keepLink(l) {
			continue
		}
		nl := &Link{from: l.from, to: l.to}
		nl.enabled.Store(l.Enabled())
		if withTraveled {
			nl.traveled.Store(l.Traveled())
		}
		out.links[linkKey{from: l.from, to: l.to}] = nl
		out.linkOrder = append(out.linkOrder, nl)
		src.children = append(src.children, dst)
		dst.parents = append(dst.parents, src)
	}

	return out
}

// Clear drops every node and link.
func (s *SearchSpace) Clear() {
	s.mu.Lock()
	s.nodes = make(map[string]*Node)
	s.nodeOrder = nil
	s.links = make(map[linkKey]*Link)
	s.linkOrder = nil
	s.mu.Unlock()
}

// Stats counts nodes, links, and their flags.
func (s *SearchSpace) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Nodes: len(s.nodeOrder), Links: len(s.linkOrder)}
	for _, n := range s.nodeOrder {
		if n.Enabled() {
			st.EnabledNodes++
		}
	}
	for _, l := range s.linkOrder {
		if l.Enabled() {
			st.EnabledLinks++
		}
		if l.Traveled() {
			st.Traveled++
		}
	}

	return st
}

// Validate checks that every child/parent reference is backed by a link and
// every link appears in both neighbor lists. Returns ErrInconsistent on the first mismatch.
func (s *SearchSpace) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := 0
	for _, n := range s.nodeOrder {
		for _, c := range n.children {
			if _, ok := s.links[linkKey{from: n.label, to: c.label}]; !ok {
				return fmt.Errorf("%w: child %s has no link", ErrInconsistent, LinkLabel(n.label, c.label))
			}
			refs++
		}
		for _, p := range n.parents {
			if _, ok := s.links[linkKey{from: p.label, to: n.label}]; !ok {
				return fmt.Errorf("%w: parent %s has no link", ErrInconsistent, LinkLabel(p.label, n.label))
			}
		}
	}
	if refs != len(s.links) {
		return fmt.Errorf("%w: %d links but %d child references", ErrInconsistent, len(s.links), refs)
	}

	return nil
}
