// SPDX-License-Identifier: MIT
// Package core declares Node, Link, Position, SearchSpace, their options,
// sentinel errors, and the NewSearchSpace constructor.
//
// Errors:
//
//	ErrEmptyLabel     - node label is the empty string.
//	ErrNodeExists     - a node with the same label is already present.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrLinkExists     - a link for the same ordered pair is already present.
//	ErrLinkNotFound   - requested link does not exist.
//	ErrInconsistent   - neighbor lists and the link catalog disagree.
package core

import (
	"errors"
	"maps"
	"math"
	"sync"
	"sync/atomic"
)

// Sentinel errors for search space operations.
var (
	// ErrEmptyLabel indicates that a node label is empty.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrNodeExists indicates an attempt to add a node whose label is taken.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkExists indicates an attempt to add a second link for the same ordered pair.
	ErrLinkExists = errors.New("core: link already exists")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrInconsistent indicates that a neighbor reference has no backing link (or vice versa).
	ErrInconsistent = errors.New("core: search space is inconsistent")
)

// LinkSeparator joins the endpoint labels of a link into its label ("A->B").
const LinkSeparator = "->"

// Position is a point on the 2-D canvas. It only feeds distance heuristics.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Node is a labelled vertex of a SearchSpace.
//
// Label is immutable. Enabled and Position may be changed at any time,
// including while a search is running; both are individually synchronised.
// Children and parents are owned by the SearchSpace and guarded by its lock.
type Node struct {
	label   string
	enabled atomic.Bool

	muPos sync.RWMutex
	pos   Position

	// attrs carries importer metadata (e.g. state names); read-only after insert.
	attrs map[string]string

	children []*Node // outgoing neighbors, insertion order
	parents  []*Node // incoming neighbors, insertion order
}

// Label returns the node's unique, case-sensitive label.
func (n *Node) Label() string { return n.label }

// Enabled reports whether the node may be traversed.
func (n *Node) Enabled() bool { return n.enabled.Load() }

// SetEnabled toggles traversability. Safe during a run.
func (n *Node) SetEnabled(enabled bool) { n.enabled.Store(enabled) }

// Position returns the node's current canvas coordinates.
func (n *Node) Position() Position {
	n.muPos.RLock()
	defer n.muPos.RUnlock()

	return n.pos
}

// SetPosition relocates the node. Safe during a run.
func (n *Node) SetPosition(p Position) {
	n.muPos.Lock()
	n.pos = p
	n.muPos.Unlock()
}

// Attr returns importer metadata stored under key.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]

	return v, ok
}

// Attrs returns a copy of the importer metadata (nil when there is none).
func (n *Node) Attrs() map[string]string {
	if len(n.attrs) == 0 {
		return nil
	}

	return maps.Clone(n.attrs)
}

// String implements fmt.Stringer.
func (n *Node) String() string { return n.label }

// Link is a directed connection From -> To.
//
// Enabled and Traveled are atomic so the engine and an editor may touch them concurrently.
type Link struct {
	from     string
	to       string
	enabled  atomic.Bool
	traveled atomic.Bool
}

// From returns the source node label.
func (l *Link) From() string { return l.from }

// To returns the destination node label.
func (l *Link) To() string { return l.to }

// Label returns "From->To".
func (l *Link) Label() string { return LinkLabel(l.from, l.to) }

// Enabled reports whether the link may be traversed.
func (l *Link) Enabled() bool { return l.enabled.Load() }

// SetEnabled toggles traversability.
func (l *Link) SetEnabled(enabled bool) { l.enabled.Store(enabled) }

// Traveled reports whether a search has examined this link.
func (l *Link) Traveled() bool { return l.traveled.Load() }

// SetTraveled sets the traveled marker.
func (l *Link) SetTraveled(traveled bool) { l.traveled.Store(traveled) }

// ResetToDefault sets enabled=true and traveled=false.
func (l *Link) ResetToDefault() {
	l.enabled.Store(true)
	l.traveled.Store(false)
}

// String implements fmt.Stringer.
func (l *Link) String() string { return l.Label() }

// LinkLabel formats the label of the link from -> to.
func LinkLabel(from, to string) string { return from + LinkSeparator + to }

// linkKey indexes the link catalog by ordered pair.
type linkKey struct {
	from, to string
}

// NodeOption configures a node when added.
type NodeOption func(*Node)

// WithNodeEnabled sets the initial enabled flag (default true).
func WithNodeEnabled(enabled bool) NodeOption {
	return func(n *Node) { n.enabled.Store(enabled) }
}

// WithAttr attaches importer metadata to the node.
func WithAttr(key, value string) NodeOption {
	return func(n *Node) {
		if n.attrs == nil {
			n.attrs = make(map[string]string)
		}
		n.attrs[key] = value
	}
}

// LinkOption configures a link when added.
type LinkOption func(*Link)

// WithLinkEnabled sets the initial enabled flag (default true).
func WithLinkEnabled(enabled bool) LinkOption {
	return func(l *Link) { l.enabled.Store(enabled) }
}

// SearchSpace owns a set of nodes and directed links.
//
// At most one node per label and at most one link per ordered pair.
// Enumeration follows insertion order. mu guards the catalogs and every
// node's neighbor lists; per-node and per-link flags are atomic.
type SearchSpace struct {
	mu sync.RWMutex

	nodes     map[string]*Node
	nodeOrder []*Node

	links     map[linkKey]*Link
	linkOrder []*Link
}

// NewSearchSpace creates an empty SearchSpace.
// Complexity: O(1)
func NewSearchSpace() *SearchSpace {
	return &SearchSpace{
		nodes: make(map[string]*Node),
		links: make(map[linkKey]*Link),
	}
}

// Stats summarises a SearchSpace at one instant.
type Stats struct {
	Nodes        int
	Links        int
	EnabledNodes int
	EnabledLinks int
	Traveled     int
}
