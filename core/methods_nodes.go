// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//
// Concurrency:
//   - Catalog and neighbor lists protected by mu.
//   - Enabled/Position are per-node and may be changed without mu.
package core

import (
	"fmt"
	"slices"
)

// AddNode inserts a new node labelled label at position pos.
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyLabel).
//   - Stage 2: Under mu write lock, reject duplicates (ErrNodeExists).
//   - Stage 3: Allocate the node (enabled by default), apply options, register it.
//
// Returns:
//   - *Node: the inserted node.
//   - error: ErrEmptyLabel or ErrNodeExists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (s *SearchSpace) AddNode(label string, pos Position, opts ...NodeOption) (*Node, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[label]; exists {
		return nil, fmt.Errorf("%w: %q", ErrNodeExists, label)
	}

	n := &Node{label: label, pos: pos}
	n.enabled.Store(true)
	for _, opt := range opts {
		opt(n)
	}
	s.nodes[label] = n
	s.nodeOrder = append(s.nodeOrder, n)

	return n, nil
}

// RemoveNode deletes a node together with every link that touches it.
//
// Must not be called while a search over this space is running.
// Complexity: O(V + E) in the worst case (order slices are compacted).
func (s *SearchSpace) RemoveNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[label]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}

	// Detach outgoing then incoming links; a self-loop is handled by the first pass.
	for _, child := range slices.Clone(n.children) {
		s.unlinkLocked(n, child)
	}
	for _, parent := range slices.Clone(n.parents) {
		s.unlinkLocked(parent, n)
	}

	delete(s.nodes, label)
	s.nodeOrder = slices.DeleteFunc(s.nodeOrder, func(x *Node) bool { return x == n })

	return nil
}

// FindNode returns the node labelled label. A miss is reported by ok=false, never by error.
func (s *SearchSpace) FindNode(label string) (*Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[label]

	return n, ok
}

// HasNode reports whether label exists (empty label => false).
func (s *SearchSpace) HasNode(label string) bool {
	if label == "" {
		return false
	}
	_, ok := s.FindNode(label)

	return ok
}

// Nodes returns a snapshot of all nodes in insertion order.
func (s *SearchSpace) Nodes() []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.nodeOrder)
}

// NodeCount returns the number of nodes.
func (s *SearchSpace) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodeOrder)
}

// SetNodeEnabled toggles the enabled flag of the node labelled label.
func (s *SearchSpace) SetNodeEnabled(label string, enabled bool) error {
	n, ok := s.FindNode(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}
	n.SetEnabled(enabled)

	return nil
}

// MoveNode relocates the node labelled label.
func (s *SearchSpace) MoveNode(label string, pos Position) error {
	n, ok := s.FindNode(label)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}
	n.SetPosition(pos)

	return nil
}

// Children returns the outgoing neighbors of label in link-insertion order.
func (s *SearchSpace) Children(label string) ([]*Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}

	return slices.Clone(n.children), nil
}

// Parents returns the incoming neighbors of label in link-insertion order.
func (s *SearchSpace) Parents(label string) ([]*Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}

	return slices.Clone(n.parents), nil
}
