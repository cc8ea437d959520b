// Package openset implements the A* frontier: a set kept in ascending order
// of total cost (cost from start + estimate to goal).
//
// Ordering contract:
//
//   - OldestFirst (default): Insert places an item before the first element
//     whose total cost is strictly greater, so among equal totals the item
//     inserted earlier is popped first.
//   - NewestFirst: Insert places an item before the first element whose total
//     cost is greater than or equal, so the newest of equal items leads.
//   - Resort is a stable sort; items with equal totals keep their relative order.
//
// Costs are read through the function supplied to New every time ordering is
// evaluated, so a relaxation that lowers an item's cost takes effect at the
// next Resort. The set holds at most one copy of each item.
//
// Complexity:
//
//   - Insert O(n), RemoveCheapest O(n) (slice shift), Contains O(1),
//     Remove O(n), Resort O(n log n).
//
// A binary heap would lower Insert/RemoveCheapest to O(log n) but would lose
// the insertion tie-break; at a few hundred nodes the linear form is cheaper.
package openset

import (
	"cmp"
	"errors"
	"slices"
)

// ErrEmpty is returned by RemoveCheapest on an empty set.
var ErrEmpty = errors.New("openset: set is empty")

// TieBreak selects where Insert places an item among equal totals.
type TieBreak int

const (
	// OldestFirst keeps earlier-inserted items ahead of equal newcomers.
	OldestFirst TieBreak = iota
	// NewestFirst puts a newcomer ahead of equal items already present.
	NewestFirst
)

// String implements fmt.Stringer.
func (tb TieBreak) String() string {
	if tb == NewestFirst {
		return "newest-first"
	}

	return "oldest-first"
}

// Set is an ordered frontier. Not safe for concurrent use; the engine owns it.
type Set[T comparable] struct {
	total  func(T) float64
	tie    TieBreak
	items  []T
	member map[T]struct{}
}

// New returns an empty Set ordered by total with the OldestFirst tie-break.
// Panics if total is nil.
func New[T comparable](total func(T) float64) *Set[T] {
	return NewWithTieBreak(total, OldestFirst)
}

// NewWithTieBreak returns an empty Set ordered by total using tie.
func NewWithTieBreak[T comparable](total func(T) float64, tie TieBreak) *Set[T] {
	if total == nil {
		panic("openset: total cost function is nil")
	}

	return &Set[T]{total: total, tie: tie, member: make(map[T]struct{})}
}

// TieBreak reports the tie-break rule in use.
func (s *Set[T]) TieBreak() TieBreak { return s.tie }

// Insert adds item at its ordered position. It reports false if item is already present.
func (s *Set[T]) Insert(item T) bool {
	if _, ok := s.member[item]; ok {
		return false
	}
	c := s.total(item)
	i := len(s.items)
	for j, other := range s.items {
		oc := s.total(other)
		if c < oc || (c == oc && s.tie == NewestFirst) {
			i = j
			break
		}
	}
	s.items = slices.Insert(s.items, i, item)
	s.member[item] = struct{}{}

	return true
}

// RemoveCheapest pops the head of the set.
func (s *Set[T]) RemoveCheapest() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	head := s.items[0]
	s.items[0] = zero
	s.items = s.items[1:]
	delete(s.member, head)

	return head, nil
}

// Peek returns the head without removing it.
func (s *Set[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[0], true
}

// Contains reports membership.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.member[item]

	return ok
}

// Remove deletes item, reporting whether it was present.
func (s *Set[T]) Remove(item T) bool {
	if _, ok := s.member[item]; !ok {
		return false
	}
	delete(s.member, item)
	s.items = slices.DeleteFunc(s.items, func(x T) bool { return x == item })

	return true
}

// Resort restores ascending order after costs changed, preserving the
// relative order of items with equal totals.
func (s *Set[T]) Resort() {
	slices.SortStableFunc(s.items, func(a, b T) int {
		return cmp.Compare(s.total(a), s.total(b))
	})
}

// Len returns the number of items.
func (s *Set[T]) Len() int { return len(s.items) }

// Items returns a snapshot of the items in order.
func (s *Set[T]) Items() []T { return slices.Clone(s.items) }

// Clear empties the set.
func (s *Set[T]) Clear() {
	s.items = nil
	s.member = make(map[T]struct{})
}
