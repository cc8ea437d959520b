package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/dfs"
)

func (a *app) inspectCommand() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "inspect [GRAPH]",
		Short: "Print counts, cycles and a topological order of a graph",
		Long: `inspect validates the graph and summarises its structure. Cycles and
the topological order consider every link, enabled or not. With --from it
also prints the depth-first post-order of the enabled part reachable from
that node.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			space, err := a.loadGraph(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err = space.Validate(); err != nil {
				return err
			}

			return a.inspect(cmd, space, from)
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "also print the depth-first post-order from this node")

	return cmd
}

func (a *app) inspect(cmd *cobra.Command, space *core.SearchSpace, from string) error {
	st := space.Stats()
	fmt.Fprintf(a.out, "nodes: %d (%d enabled)\n", st.Nodes, st.EnabledNodes)
	fmt.Fprintf(a.out, "links: %d (%d enabled)\n", st.Links, st.EnabledLinks)

	hasCycle, cycles, err := dfs.DetectCycles(space)
	if err != nil {
		return err
	}
	writeCycles(a.out, cycles)

	if !hasCycle {
		order, err := dfs.TopologicalSort(space, dfs.WithCancelContext(cmd.Context()))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "topological order: %s\n", strings.Join(order, " "))
	}

	if from != "" {
		res, err := dfs.DFS(space, from, dfs.WithContext(cmd.Context()))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "depth-first from %s: %s\n", from, strings.Join(res.Order, " "))
	}

	return nil
}

func writeCycles(w io.Writer, cycles [][]string) {
	if len(cycles) == 0 {
		fmt.Fprintln(w, "cycles: none")
		return
	}
	fmt.Fprintf(w, "cycles: %d\n", len(cycles))
	for _, c := range cycles {
		fmt.Fprintf(w, "  %s\n", strings.Join(c, " -> "))
	}
}
