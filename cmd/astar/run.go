package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/astarlab/astar"
	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/internal/config"
	"github.com/katalvlaran/astarlab/internal/logging"
	"github.com/katalvlaran/astarlab/internal/telemetry"
	"github.com/katalvlaran/astarlab/openset"
)

type runFlags struct {
	start        string
	goal         string
	heuristic    string
	tieBreak     string
	step         bool
	delay        time.Duration
	disableNodes []string
	disableLinks []string
	linger       time.Duration
}

func (a *app) runCommand() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [GRAPH]",
		Short: "Search a path from start to goal with the A* engine",
		Long: `run searches a path from --start to --goal and prints the result.

Every search event is logged. With --step the engine waits for a line on
stdin before each expansion; "q" cancels the run and end of input lets it
finish unpaced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.start, "start", "s", "", "start node label")
	fl.StringVarP(&f.goal, "goal", "g", "", "goal node label")
	fl.StringVar(&f.heuristic, "heuristic", "", "cost strategy: fewest-links, shortest-distance")
	fl.StringVar(&f.tieBreak, "tie-break", openset.OldestFirst.String(), "order among equal totals: oldest-first, newest-first")
	fl.BoolVar(&f.step, "step", false, "wait for a stdin line before each expansion")
	fl.DurationVar(&f.delay, "delay", 0, "minimum time between two expansions")
	fl.StringSliceVar(&f.disableNodes, "disable-node", nil, "disable a node before the run (repeatable)")
	fl.StringSliceVar(&f.disableLinks, "disable-link", nil, `disable a link "FROM->TO" before the run (repeatable)`)
	fl.DurationVar(&f.linger, "linger", 0, "keep the prometheus endpoint up this long after the run")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, args []string, f runFlags) error {
	ctx := cmd.Context()
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = f.start
	}
	if flags.Changed("goal") {
		cfg.Goal = f.goal
	}
	if flags.Changed("heuristic") {
		cfg.Heuristic = f.heuristic
	}
	if flags.Changed("step") {
		cfg.Pacing.StepByStep = f.step
	}
	if flags.Changed("delay") {
		cfg.Pacing.StepDelay = f.delay
	}
	if err := validateRun(&cfg); err != nil {
		return err
	}
	tie, err := parseTieBreak(f.tieBreak)
	if err != nil {
		return err
	}

	space, err := a.loadGraph(ctx, args)
	if err != nil {
		return err
	}
	if err = disableElements(space, f.disableNodes, f.disableLinks); err != nil {
		return err
	}

	engine := astar.NewEngine(space,
		astar.WithHeuristic(cfg.HeuristicKind()),
		astar.WithTieBreak(tie),
		astar.WithPacing(cfg.AstarPacing()),
		astar.WithObserver(logging.NewEventObserver(a.logger)),
		astar.WithLogger(a.logger),
	)

	g, gctx := errgroup.WithContext(ctx)
	serveCtx, stopServe := context.WithCancel(gctx)
	defer stopServe()

	handler := a.tel.MetricsHandler
	if handler != nil {
		g.Go(func() error {
			return telemetry.Serve(serveCtx, cfg.Telemetry.MetricsAddr, handler)
		})
	}

	var res astar.Result
	g.Go(func() error {
		defer stopServe()
		var searchErr error
		res, searchErr = a.search(gctx, engine, cfg)
		if searchErr != nil {
			return searchErr
		}
		if handler != nil && f.linger > 0 {
			a.logger.Info("Keeping metrics endpoint up.", "addr", cfg.Telemetry.MetricsAddr, "for", f.linger)
			select {
			case <-time.After(f.linger):
			case <-gctx.Done():
			}
		}

		return nil
	})

	err = g.Wait()
	if res.Status != astar.Idle {
		writeResult(a.out, res)
	}
	if res.Status == astar.Cancelled {
		return &ExitError{Code: exitFailure, Message: "run cancelled"}
	}
	if err != nil {
		return err
	}
	if res.Status == astar.Exhausted {
		return &ExitError{Code: exitNoPath, Message: fmt.Sprintf("no path from %s to %s", cfg.Start, cfg.Goal)}
	}

	return nil
}

// search starts the run and, in step mode, feeds it from stdin.
func (a *app) search(ctx context.Context, e *astar.Engine, cfg config.Config) (astar.Result, error) {
	if err := e.Start(ctx, cfg.Start, cfg.Goal); err != nil {
		return astar.Result{}, err
	}
	if cfg.Pacing.StepByStep {
		if err := a.stepThrough(ctx, e, cfg.Pacing.StepDelay); err != nil {
			_ = e.Cancel()
			res, _ := e.Wait(ctx)
			return res, err
		}
	}

	return e.Wait(ctx)
}

// stepThrough advances e once per input line until the run ends. At end of
// input the remaining steps run unpaced by hand.
func (a *app) stepThrough(ctx context.Context, e *astar.Engine, delay time.Duration) error {
	sc := bufio.NewScanner(a.in)
	fmt.Fprintln(a.out, "step mode: press Enter to expand the next node, q to quit")
	for {
		writeSnapshot(a.out, e.Snapshot())
		if !sc.Scan() {
			e.SetPacing(astar.Pacing{StepDelay: delay})
			return sc.Err()
		}
		if strings.EqualFold(strings.TrimSpace(sc.Text()), "q") {
			if err := e.Cancel(); err != nil && !errors.Is(err, astar.ErrNotRunning) {
				return err
			}
			return nil
		}

		status, err := e.Advance(ctx)
		if errors.Is(err, astar.ErrNotRunning) {
			return nil
		}
		if err != nil {
			return err
		}
		if status.Terminal() {
			return nil
		}
	}
}

func validateRun(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return usageError("%v", err)
	}
	if err := cfg.RequireEndpoints(); err != nil {
		return usageError("%v", err)
	}

	return nil
}

func parseTieBreak(s string) (openset.TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oldest", openset.OldestFirst.String():
		return openset.OldestFirst, nil
	case "newest", openset.NewestFirst.String():
		return openset.NewestFirst, nil
	}

	return openset.OldestFirst, usageError("unknown tie-break %q (want %s or %s)",
		s, openset.OldestFirst, openset.NewestFirst)
}

// disableElements switches off the named nodes and "FROM->TO" links.
func disableElements(space *core.SearchSpace, nodes, links []string) error {
	for _, label := range nodes {
		if err := space.SetNodeEnabled(label, false); err != nil {
			return usageError("disable node %q: %v", label, err)
		}
	}
	for _, raw := range links {
		from, to, ok := strings.Cut(raw, core.LinkSeparator)
		if !ok || from == "" || to == "" {
			return usageError("disable link %q: want FROM%sTO", raw, core.LinkSeparator)
		}
		if err := space.SetLinkEnabled(from, to, false); err != nil {
			return usageError("disable link %q: %v", raw, err)
		}
	}

	return nil
}

func writeSnapshot(w io.Writer, snap astar.Snapshot) {
	current := snap.Current
	if current == "" {
		current = "-"
	}
	fmt.Fprintf(w, "step %d: current=%s open=[%s] closed=[%s]\n",
		snap.Iterations, current, strings.Join(snap.Open, " "), strings.Join(snap.Closed, " "))
}

func writeResult(w io.Writer, res astar.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "status:\t%s\n", res.Status)
	if res.Status == astar.Found {
		fmt.Fprintf(tw, "path:\t%s\n", res.Path)
		fmt.Fprintf(tw, "links:\t%d\n", res.Path.Len())
		fmt.Fprintf(tw, "cost:\t%s\n", formatCost(res.Path.Cost))
	}
	fmt.Fprintf(tw, "iterations:\t%d\n", res.Iterations)
	if res.Err != nil {
		fmt.Fprintf(tw, "error:\t%v\n", res.Err)
	}
	fmt.Fprintf(tw, "run:\t%s\n", res.RunID)
	_ = tw.Flush()
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
