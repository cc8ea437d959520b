// Package core provides the mutable, thread-safe directed graph that every
// search in this module runs over: Node, Link and SearchSpace.
//
// A SearchSpace S = (N, L) holds:
//
//   - Nodes identified by a unique, case-sensitive label, carrying an
//     enabled flag and a 2-D Position used only by distance heuristics.
//   - Directed links From->To, at most one per ordered pair, each with an
//     enabled flag and a traveled marker set when a search examines it.
//   - Per-node children (outgoing) and parents (incoming) in link-insertion order.
//
// Why a dedicated type instead of a generic graph?
//
//   - Flags live on the elements so an editor can toggle them while a search
//     is running; the search reads them fresh at every relaxation.
//   - Enumeration is in insertion order, which fixes the order in which a
//     search visits children and hence its tie-breaking.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label string, pos Position, opts ...NodeOption) (*Node, error) // O(1)
//	RemoveNode(label string) error                                        // O(V+E)
//	FindNode(label string) (*Node, bool)                                  // O(1)
//	SetNodeEnabled(label string, enabled bool) error                      // O(1)
//	MoveNode(label string, pos Position) error                            // O(1)
//
//	// Link lifecycle
//	AddLink(from, to string, opts ...LinkOption) (*Link, error)           // O(1)
//	RemoveLink(from, to string) error                                     // O(E)
//	FindLink(from, to string) (*Link, bool)                               // O(1)
//	SetLinkEnabled(from, to string, enabled bool) error                   // O(1)
//	ResetLinks() / ClearTraveled()                                        // O(E)
//
//	// Query
//	Nodes() []*Node, Links() []*Link                                      // insertion order
//	Children(label), Parents(label) ([]*Node, error)
//	Stats() Stats, Validate() error
//
//	// Copies
//	Clone() *SearchSpace         // deep copy, flags included
//	EnabledView() *SearchSpace   // enabled nodes + enabled links only
//
// Concurrency contract:
//
//   - Structural mutation (Add*/Remove*/Clear) must not overlap a running search.
//   - SetEnabled, SetTraveled and SetPosition are safe at any time.
//
// Errors:
//
//	ErrEmptyLabel, ErrNodeExists, ErrNodeNotFound,
//	ErrLinkExists, ErrLinkNotFound, ErrInconsistent
package core
