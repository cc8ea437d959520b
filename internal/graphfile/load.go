package graphfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/internal/logging"
)

// Format names a supported file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
	FormatXDSL Format = "xdsl"
)

// DetectFormat maps a file extension to its Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	case ".xdsl":
		return FormatXDSL, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// LoadOption configures LoadDocument and Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	vars map[string]string
}

// WithVariables sets HCL var.* overrides. Other formats ignore them.
func WithVariables(vars map[string]string) LoadOption {
	return func(o *loadOptions) {
		o.vars = vars
	}
}

// LoadDocument reads and decodes the file at path.
func LoadDocument(ctx context.Context, path string, opts ...LoadOption) (*Document, error) {
	logger := logging.FromContext(ctx).With("path", path)

	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	logger.Debug("Graph file read.", "format", format, "bytes", len(data))

	var doc *Document
	switch format {
	case FormatYAML:
		doc, err = DecodeYAML(bytes.NewReader(data))
	case FormatHCL:
		doc, err = DecodeHCL(data, path, o.vars)
	case FormatXDSL:
		doc, err = DecodeXDSL(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("Graph file decoded.", "nodes", len(doc.Nodes), "links", len(doc.Links))

	return doc, nil
}

// Load reads the file at path and builds its search space.
func Load(ctx context.Context, path string, opts ...LoadOption) (*core.SearchSpace, error) {
	doc, err := LoadDocument(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	s, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
