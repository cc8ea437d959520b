package graphfile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"hash/fnv"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/katalvlaran/astarlab/dfs"
)

// Positions generated for xdsl nodes fall in [XDSLMinCoord, XDSLMaxCoord].
const (
	XDSLMinCoord = 100
	XDSLMaxCoord = 700
)

// Attribute keys set on nodes imported from xdsl.
const (
	AttrStates        = "states"
	AttrProbabilities = "probabilities"
)

type xdslNetwork struct {
	XMLName xml.Name  `xml:"smile"`
	ID      string    `xml:"id,attr"`
	CPTs    []xdslCPT `xml:"nodes>cpt"`
}

type xdslCPT struct {
	ID            string      `xml:"id,attr"`
	States        []xdslState `xml:"state"`
	Parents       string      `xml:"parents"`
	Probabilities string      `xml:"probabilities"`
}

type xdslState struct {
	ID string `xml:"id,attr"`
}

// DecodeXDSL imports the structure of a GeNIe network: every cpt becomes a
// node and every listed parent a parent->child link. States and the
// probability table are kept as node attributes and never evaluated.
//
// The file carries no layout, so each node gets an integer position drawn
// from a generator seeded with a hash of the file content: the same file
// always lays out the same way.
//
// Parents may be declared anywhere in the file. A parent that is never
// declared yields ErrUnknownParent; a cyclic network is rejected with an
// error matching dfs.ErrCycleDetected.
func DecodeXDSL(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read xdsl: %w", err)
	}

	var net xdslNetwork
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	if err = dec.Decode(&net); err != nil {
		return nil, fmt.Errorf("graphfile: decode xdsl: %w", err)
	}

	h := fnv.New64a()
	_, _ = h.Write(data)
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	coord := func() float64 {
		return float64(XDSLMinCoord + rng.IntN(XDSLMaxCoord-XDSLMinCoord+1))
	}

	doc := &Document{Nodes: make([]NodeSpec, 0, len(net.CPTs))}
	declared := make(map[string]bool, len(net.CPTs))
	for _, cpt := range net.CPTs {
		probs, err := normaliseProbabilities(cpt.Probabilities)
		if err != nil {
			return nil, fmt.Errorf("%w: cpt %q: %w", ErrInvalidDocument, cpt.ID, err)
		}
		states := make([]string, 0, len(cpt.States))
		for _, st := range cpt.States {
			states = append(states, st.ID)
		}
		doc.Nodes = append(doc.Nodes, NodeSpec{
			Label: cpt.ID,
			X:     coord(),
			Y:     coord(),
			Attrs: map[string]string{
				AttrStates:        strings.Join(states, " "),
				AttrProbabilities: probs,
			},
		})
		declared[cpt.ID] = true
	}
	for _, cpt := range net.CPTs {
		for _, parent := range strings.Fields(cpt.Parents) {
			if !declared[parent] {
				return nil, fmt.Errorf("%w: %q listed by %q", ErrUnknownParent, parent, cpt.ID)
			}
			doc.Links = append(doc.Links, LinkSpec{From: parent, To: cpt.ID})
		}
	}

	s, err := doc.Build()
	if err != nil {
		return nil, err
	}
	if _, err = dfs.TopologicalSort(s); err != nil {
		return nil, fmt.Errorf("%w: network %q: %w", ErrInvalidDocument, net.ID, err)
	}

	return doc, nil
}

// normaliseProbabilities checks that every field is a number and rejoins
// them with single spaces.
func normaliseProbabilities(raw string) (string, error) {
	fields := strings.Fields(raw)
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return "", fmt.Errorf("probability %q: %w", f, err)
		}
	}

	return strings.Join(fields, " "), nil
}

// charsetReader accepts the single-byte charsets GeNIe writes. Each byte of
// ISO-8859-1 is the code point of the same value.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "iso-8859-1", "latin1", "us-ascii":
	default:
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	raw, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}

	return strings.NewReader(b.String()), nil
}
