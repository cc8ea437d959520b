// Package graphfile reads and writes search spaces as files.
//
// Formats, picked by extension:
//
//	.yaml .yml .json  node/link lists (gopkg.in/yaml.v3, strict fields)
//	.hcl              node/link blocks with var.* expressions (hashicorp/hcl/v2)
//	.xdsl             GeNIe network structure; positions are generated
//
// All formats decode to a Document, which Build turns into a
// core.SearchSpace. FromSpace goes the other way for export.
package graphfile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

var (
	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("graphfile: unknown file format")

	// ErrInvalidDocument indicates a document that cannot become a search space.
	ErrInvalidDocument = errors.New("graphfile: invalid document")

	// ErrUnknownParent indicates an xdsl node listing a parent not declared before it.
	ErrUnknownParent = errors.New("graphfile: unknown parent")
)

// Document is the format-neutral description of a search space.
type Document struct {
	Nodes []NodeSpec `yaml:"nodes" json:"nodes"`
	Links []LinkSpec `yaml:"links,omitempty" json:"links,omitempty"`
}

// NodeSpec describes one node. Enabled defaults to true when absent.
type NodeSpec struct {
	Label   string            `yaml:"label" json:"label"`
	X       float64           `yaml:"x" json:"x"`
	Y       float64           `yaml:"y" json:"y"`
	Enabled *bool             `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Attrs   map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// LinkSpec describes one directed link, or a pair when Bidirectional is set.
type LinkSpec struct {
	From          string `yaml:"from" json:"from"`
	To            string `yaml:"to" json:"to"`
	Enabled       *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Bidirectional bool   `yaml:"bidirectional,omitempty" json:"bidirectional,omitempty"`
}

func enabled(p *bool) bool { return p == nil || *p }

// Build creates a new search space holding the document's nodes and links,
// both in document order. A bidirectional link adds from->to, then to->from.
func (d *Document) Build() (*core.SearchSpace, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	s := core.NewSearchSpace()
	for i, n := range d.Nodes {
		opts := []core.NodeOption{core.WithNodeEnabled(enabled(n.Enabled))}
		for k, v := range n.Attrs {
			opts = append(opts, core.WithAttr(k, v))
		}
		if _, err := s.AddNode(n.Label, core.Position{X: n.X, Y: n.Y}, opts...); err != nil {
			return nil, fmt.Errorf("%w: node #%d: %w", ErrInvalidDocument, i, err)
		}
	}
	for i, l := range d.Links {
		on := core.WithLinkEnabled(enabled(l.Enabled))
		if _, err := s.AddLink(l.From, l.To, on); err != nil {
			return nil, fmt.Errorf("%w: link #%d: %w", ErrInvalidDocument, i, err)
		}
		if !l.Bidirectional {
			continue
		}
		if _, err := s.AddLink(l.To, l.From, on); err != nil {
			return nil, fmt.Errorf("%w: link #%d reverse: %w", ErrInvalidDocument, i, err)
		}
	}

	return s, nil
}

// FromSpace describes s as a Document. Flags are written only when false;
// traveled markers are run state and are not exported.
func FromSpace(s *core.SearchSpace) *Document {
	d := &Document{}
	off := false
	for _, n := range s.Nodes() {
		p := n.Position()
		spec := NodeSpec{Label: n.Label(), X: p.X, Y: p.Y, Attrs: n.Attrs()}
		if !n.Enabled() {
			spec.Enabled = &off
		}
		d.Nodes = append(d.Nodes, spec)
	}
	for _, l := range s.Links() {
		spec := LinkSpec{From: l.From(), To: l.To()}
		if !l.Enabled() {
			spec.Enabled = &off
		}
		d.Links = append(d.Links, spec)
	}

	return d
}
