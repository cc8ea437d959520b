package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarlab/bfs"
	"github.com/katalvlaran/astarlab/core"
)

func (a *app) reachCommand() *cobra.Command {
	var (
		from     string
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "reach [GRAPH]",
		Short: "List the nodes reachable from a node and their link distance",
		Long: `reach runs a breadth-first search over the enabled part of the graph.
A goal missing from the list is one every A* run reports as exhausted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = a.cfg.Start
			}
			if from == "" {
				return usageError("reach needs --from or a configured start")
			}
			if maxDepth < 0 {
				return usageError("--max-depth must be >= 0, got %d", maxDepth)
			}
			space, err := a.loadGraph(cmd.Context(), args)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(space, from,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}
			writeReach(a.out, space, res)

			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "node to search from (default: configured start)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop at this many links (0 means no limit)")

	return cmd
}

func writeReach(w io.Writer, space *core.SearchSpace, res *bfs.BFSResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDEPTH\tPARENT")
	for _, label := range res.Order {
		parent := res.Parent[label]
		if parent == "" {
			parent = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", label, res.Depth[label], parent)
	}
	_ = tw.Flush()

	var unreached []string
	for _, n := range space.Nodes() {
		if res.Reached(n.Label()) {
			continue
		}
		if n.Enabled() {
			unreached = append(unreached, n.Label())
		} else {
			unreached = append(unreached, n.Label()+" (disabled)")
		}
	}
	if len(unreached) > 0 {
		fmt.Fprintf(w, "unreached: %s\n", strings.Join(unreached, ", "))
	}
}
