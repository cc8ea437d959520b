// File: methods_links.go
// Role: Link lifecycle, flag maintenance & queries.
//
// Determinism:
//   - Links() returns links in insertion order.
//   - AddLink appends to the source's children and the target's parents,
//     so neighbor order mirrors link insertion order.
package core

import (
	"fmt"
	"slices"
)

// AddLink inserts the directed link from -> to. Both endpoints must exist.
//
// Implementation:
//   - Stage 1: Validate labels (ErrEmptyLabel).
//   - Stage 2: Under mu, resolve both endpoints (ErrNodeNotFound) and reject
//     a second link for the same ordered pair (ErrLinkExists).
//   - Stage 3: Register the link (enabled, not traveled) and wire neighbor lists.
//
// Notes:
//   - Self-loops are accepted; the search never improves a node through one.
//   - The reverse link to -> from is a distinct link.
//
// Complexity:
//   - Time O(1) amortized.
func (s *SearchSpace) AddLink(from, to string, opts ...LinkOption) (*Link, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.nodes[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	dst, ok := s.nodes[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	key := linkKey{from: from, to: to}
	if _, exists := s.links[key]; exists {
		return nil, fmt.Errorf("%w: %s", ErrLinkExists, LinkLabel(from, to))
	}

	l := &Link{from: from, to: to}
	l.enabled.Store(true)
	for _, opt := range opts {
		opt(l)
	}
	s.links[key] = l
	s.linkOrder = append(s.linkOrder, l)
	src.children = append(src.children, dst)
	dst.parents = append(dst.parents, src)

	return l, nil
}

// RemoveLink deletes the link from -> to and its neighbor references.
func (s *SearchSpace) RemoveLink(from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, okF := s.nodes[from]
	dst, okT := s.nodes[to]
	if !okF || !okT {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, LinkLabel(from, to))
	}
	if _, ok := s.links[linkKey{from: from, to: to}]; !ok {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, LinkLabel(from, to))
	}
	s.unlinkLocked(src, dst)

	return nil
}

// unlinkLocked drops the src -> dst link. Caller holds mu for writing.
func (s *SearchSpace) unlinkLocked(src, dst *Node) {
	key := linkKey{from: src.label, to: dst.label}
	l, ok := s.links[key]
	if ok {
		delete(s.links, key)
		s.linkOrder = slices.DeleteFunc(s.linkOrder, func(x *Link) bool { return x == l })
	}
	if i := slices.Index(src.children, dst); i >= 0 {
		src.children = slices.Delete(src.children, i, i+1)
	}
	if i := slices.Index(dst.parents, src); i >= 0 {
		dst.parents = slices.Delete(dst.parents, i, i+1)
	}
}

// FindLink returns the link from -> to. A miss is reported by ok=false.
func (s *SearchSpace) FindLink(from, to string) (*Link, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.links[linkKey{from: from, to: to}]

	return l, ok
}

// HasLink reports whether the link from -> to exists.
func (s *SearchSpace) HasLink(from, to string) bool {
	_, ok := s.FindLink(from, to)

	return ok
}

// Links returns a snapshot of all links in insertion order.
func (s *SearchSpace) Links() []*Link {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.linkOrder)
}

// LinkCount returns the number of links.
func (s *SearchSpace) LinkCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.linkOrder)
}

// SetLinkEnabled toggles the enabled flag of the link from -> to.
func (s *SearchSpace) SetLinkEnabled(from, to string, enabled bool) error {
	l, ok := s.FindLink(from, to)
	if !ok {
		return fmt.Errorf("%w: %s", ErrLinkNotFound, LinkLabel(from, to))
	}
	l.SetEnabled(enabled)

	return nil
}

// ResetLinks returns every link to its default state (enabled, not traveled).
func (s *SearchSpace) ResetLinks() {
	for _, l := range s.Links() {
		l.ResetToDefault()
	}
}

// ClearTraveled clears the traveled marker on every link, leaving enabled flags untouched.
func (s *SearchSpace) ClearTraveled() {
	for _, l := range s.Links() {
		l.SetTraveled(false)
	}
}
