package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarlab/astar"
	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/dijkstra"
	"github.com/katalvlaran/astarlab/heuristic"
)

// comparison is one row of the compare table.
type comparison struct {
	Solver     string
	Status     string
	Path       []string
	Cost       float64
	Iterations int // -1 when the solver does not count expansions
}

func (a *app) compareCommand() *cobra.Command {
	var start, goal string
	cmd := &cobra.Command{
		Use:   "compare [GRAPH]",
		Short: "Run every heuristic and the Dijkstra reference on one graph",
		Long: `compare runs A* once per heuristic, then Dijkstra with unit and
euclidean link costs, and prints one row per solver. A* with fewest-links
must match dijkstra/unit and A* with shortest-distance must match
dijkstra/euclidean.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("start") {
				cfg.Start = start
			}
			if cmd.Flags().Changed("goal") {
				cfg.Goal = goal
			}
			if err := validateRun(&cfg); err != nil {
				return err
			}
			space, err := a.loadGraph(cmd.Context(), args)
			if err != nil {
				return err
			}
			rows, err := a.compare(cmd.Context(), space, cfg.Start, cfg.Goal)
			if err != nil {
				return err
			}
			writeComparisons(a.out, rows)

			return nil
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "start node label")
	cmd.Flags().StringVarP(&goal, "goal", "g", "", "goal node label")

	return cmd
}

func (a *app) compare(ctx context.Context, space *core.SearchSpace, start, goal string) ([]comparison, error) {
	rows := make([]comparison, 0, len(heuristic.Kinds())+2)
	for _, kind := range heuristic.Kinds() {
		res, err := astar.FindPath(ctx, space, start, goal,
			astar.WithHeuristic(kind),
			astar.WithLogger(a.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("astar/%s: %w", kind, err)
		}
		rows = append(rows, comparison{
			Solver:     "astar/" + kind.String(),
			Status:     res.Status.String(),
			Path:       res.Path.Labels,
			Cost:       res.Path.Cost,
			Iterations: res.Iterations,
		})
	}

	costs := []struct {
		name string
		fn   dijkstra.EdgeCost
	}{
		{"dijkstra/unit", dijkstra.UnitCost},
		{"dijkstra/euclidean", dijkstra.EuclideanCost},
	}
	for _, c := range costs {
		dist, prev, err := dijkstra.Dijkstra(space,
			dijkstra.Source(start),
			dijkstra.WithReturnPath(),
			dijkstra.WithEdgeCost(c.fn),
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		row := comparison{Solver: c.name, Iterations: -1}
		path, err := dijkstra.PathTo(dist, prev, goal)
		switch {
		case errors.Is(err, dijkstra.ErrUnreachable):
			row.Status = astar.Exhausted.String()
		case err != nil:
			return nil, fmt.Errorf("%s: %w", c.name, err)
		default:
			row.Status = astar.Found.String()
			row.Path = path
			row.Cost = dist[goal]
		}
		rows = append(rows, row)
	}
	a.logger.Debug("Comparison finished.", "start", start, "goal", goal, "solvers", len(rows))

	return rows, nil
}

func writeComparisons(w io.Writer, rows []comparison) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOLVER\tSTATUS\tLINKS\tCOST\tEXPANDED\tPATH")
	for _, r := range rows {
		links, cost, path := "-", "-", "-"
		if len(r.Path) > 0 {
			links = strconv.Itoa(len(r.Path) - 1)
			cost = formatCost(r.Cost)
			path = strings.Join(r.Path, " -> ")
		}
		expanded := "-"
		if r.Iterations >= 0 {
			expanded = strconv.Itoa(r.Iterations)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Solver, r.Status, links, cost, expanded, path)
	}
	_ = tw.Flush()
}
