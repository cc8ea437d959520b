package main

import (
	"fmt"
	"math/rand"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarlab/builder"
	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/gridgraph"
	"github.com/katalvlaran/astarlab/internal/graphfile"
)

// generateKinds lists the topologies generate can emit.
var generateKinds = []string{"path", "cycle", "star", "complete", "grid", "random", "terrain"}

type generateFlags struct {
	n             int
	rows, cols    int
	p             float64
	seed          int64
	spacing       float64
	bidirectional bool
	letters       bool
	disabledLinks float64
	water         float64
	conn8         bool
	bridge        bool
	output        string
}

func (a *app) generateCommand() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate KIND",
		Short: "Write a generated graph as YAML",
		Long: `generate builds a graph of the given kind and writes it as a YAML graph
file that run, compare, reach and inspect accept.

Kinds: ` + strings.Join(generateKinds, ", ") + `

terrain draws a random rows x cols height map where water cells become
disabled nodes; --bridge enables the cheapest water crossing between the
first two islands.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := generateSpace(args[0], f)
			if err != nil {
				return err
			}
			a.logger.Debug("Graph generated.", "kind", args[0], "nodes", space.NodeCount(), "links", space.LinkCount())

			w := a.out
			if f.output != "" {
				file, err := os.Create(f.output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			return graphfile.EncodeYAML(w, graphfile.FromSpace(space))
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.n, "nodes", "n", 5, "node count (path, cycle, star, complete, random)")
	fl.IntVar(&f.rows, "rows", 3, "rows (grid, terrain)")
	fl.IntVar(&f.cols, "cols", 3, "columns (grid, terrain)")
	fl.Float64VarP(&f.p, "probability", "p", 0.3, "link probability (random)")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.Float64Var(&f.spacing, "spacing", 10, "plane distance between neighbours")
	fl.BoolVar(&f.bidirectional, "bidirectional", false, "add the reverse of every link")
	fl.BoolVar(&f.letters, "letters", false, "label nodes A, B, ..., AA instead of 0, 1, ...")
	fl.Float64Var(&f.disabledLinks, "disabled-links", 0, "share of links to disable, in [0,1]")
	fl.Float64Var(&f.water, "water", 0.3, "share of water cells (terrain)")
	fl.BoolVar(&f.conn8, "conn8", false, "link diagonal neighbours too (terrain)")
	fl.BoolVar(&f.bridge, "bridge", false, "connect the first two islands (terrain)")
	fl.StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

func generateSpace(kind string, f generateFlags) (*core.SearchSpace, error) {
	if !slices.Contains(generateKinds, kind) {
		return nil, usageError("unknown kind %q (want one of %s)", kind, strings.Join(generateKinds, ", "))
	}
	if f.spacing <= 0 {
		return nil, usageError("--spacing must be > 0, got %g", f.spacing)
	}
	if f.disabledLinks < 0 || f.disabledLinks > 1 {
		return nil, usageError("--disabled-links must be in [0,1], got %g", f.disabledLinks)
	}
	if kind == "terrain" {
		return terrain(f)
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithSpacing(f.spacing),
		builder.WithDisabledLinks(f.disabledLinks),
	}
	if f.bidirectional {
		opts = append(opts, builder.WithBidirectional())
	}
	if f.letters {
		opts = append(opts, builder.WithLetterIDs())
	}

	var con builder.Constructor
	switch kind {
	case "path":
		con = builder.Path(f.n)
	case "cycle":
		con = builder.Cycle(f.n)
	case "star":
		con = builder.Star(f.n)
	case "complete":
		con = builder.Complete(f.n)
	case "grid":
		con = builder.Grid(f.rows, f.cols)
	case "random":
		con = builder.RandomSparse(f.n, f.p)
	}

	space, err := builder.BuildSpace(opts, con)
	if err != nil {
		return nil, usageError("generate %s: %v", kind, err)
	}

	return space, nil
}

// terrain draws a seeded height map and converts it with gridgraph.
func terrain(f generateFlags) (*core.SearchSpace, error) {
	if f.rows < 1 || f.cols < 1 {
		return nil, usageError("terrain needs --rows and --cols >= 1")
	}
	if f.water < 0 || f.water > 1 {
		return nil, usageError("--water must be in [0,1], got %g", f.water)
	}

	rng := rand.New(rand.NewSource(f.seed))
	values := make([][]int, f.rows)
	for y := range values {
		values[y] = make([]int, f.cols)
		for x := range values[y] {
			if rng.Float64() >= f.water {
				values[y][x] = 1 + rng.Intn(9)
			}
		}
	}

	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = f.spacing
	if f.conn8 {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}
	space, err := gg.ToSearchSpace()
	if err != nil {
		return nil, err
	}
	if f.bridge && len(gg.ConnectedComponents()) > 1 {
		crossing, err := gg.ExpandIsland(0, 1)
		if err != nil {
			return nil, fmt.Errorf("bridge islands: %w", err)
		}
		if err = gridgraph.Bridge(space, crossing); err != nil {
			return nil, err
		}
	}

	return space, nil
}
