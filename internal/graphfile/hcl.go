package graphfile

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclHeader decodes the variable blocks and leaves everything else for the
// second pass, which needs the variables in scope.
type hclHeader struct {
	Variables []*hclVariable `hcl:"variable,block"`
	Remain    hcl.Body       `hcl:",remain"`
}

type hclVariable struct {
	Name    string    `hcl:"name,label"`
	Default cty.Value `hcl:"default,optional"`
}

type hclGraph struct {
	Nodes []*hclNode `hcl:"node,block"`
	Links []*hclLink `hcl:"link,block"`
}

type hclNode struct {
	Label   string            `hcl:"label,label"`
	X       float64           `hcl:"x"`
	Y       float64           `hcl:"y"`
	Enabled *bool             `hcl:"enabled,optional"`
	Attrs   map[string]string `hcl:"attrs,optional"`
}

type hclLink struct {
	From          string `hcl:"from"`
	To            string `hcl:"to"`
	Enabled       *bool  `hcl:"enabled,optional"`
	Bidirectional bool   `hcl:"bidirectional,optional"`
}

// DecodeHCL reads a Document from HCL source. Attribute expressions may
// reference var.NAME; values come from overrides first, then from the
// variable block's default. overrides that parse as numbers or booleans are
// passed as such, anything else as a string.
//
//	variable "step" {
//	  default = 10
//	}
//	node "A" {
//	  x = var.step
//	  y = 0
//	}
//	link {
//	  from = "S"
//	  to   = "A"
//	}
func DecodeHCL(src []byte, filename string, overrides map[string]string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse HCL file %s: %w", filename, diags)
	}

	var header hclHeader
	if diags = gohcl.DecodeBody(file.Body, nil, &header); diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to decode variables in %s: %w", filename, diags)
	}
	evalCtx, err := variableContext(header.Variables, overrides)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
	}

	var graph hclGraph
	if diags = gohcl.DecodeBody(header.Remain, evalCtx, &graph); diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to decode HCL file %s: %w", filename, diags)
	}

	doc := &Document{
		Nodes: make([]NodeSpec, 0, len(graph.Nodes)),
		Links: make([]LinkSpec, 0, len(graph.Links)),
	}
	for _, n := range graph.Nodes {
		doc.Nodes = append(doc.Nodes, NodeSpec{
			Label: n.Label, X: n.X, Y: n.Y, Enabled: n.Enabled, Attrs: n.Attrs,
		})
	}
	for _, l := range graph.Links {
		doc.Links = append(doc.Links, LinkSpec{
			From: l.From, To: l.To, Enabled: l.Enabled, Bidirectional: l.Bidirectional,
		})
	}

	return doc, nil
}

// variableContext builds the evaluation context exposing var.*.
func variableContext(decls []*hclVariable, overrides map[string]string) (*hcl.EvalContext, error) {
	vals := make(map[string]cty.Value, len(decls)+len(overrides))
	for _, v := range decls {
		if !v.Default.IsNull() {
			vals[v.Name] = v.Default
		}
	}
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		vals[name] = overrideValue(overrides[name])
	}
	for _, v := range decls {
		if _, ok := vals[v.Name]; !ok {
			return nil, fmt.Errorf("%w: variable %q has no value", ErrInvalidDocument, v.Name)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(vals)},
	}, nil
}

func overrideValue(raw string) cty.Value {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return cty.NumberFloatVal(f)
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return cty.BoolVal(b)
	}

	return cty.StringVal(raw)
}
