package main

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/internal/config"
	"github.com/katalvlaran/astarlab/internal/graphfile"
	"github.com/katalvlaran/astarlab/internal/logging"
	"github.com/katalvlaran/astarlab/internal/telemetry"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// persistent flags
	configPath  string
	logLevel    string
	logFormat   string
	metrics     string
	metricsAddr string
	trace       string
	vars        map[string]string

	cfg    config.Config
	logger *slog.Logger
	tel    *telemetry.Telemetry
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:     in,
		out:    out,
		errOut: errOut,
		logger: slog.Default(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "astar",
		Short: "Steppable A* path finding over directed graphs",
		Long: `astar loads a graph (YAML, JSON, HCL or XDSL) and searches it.

Settings are merged from defaults, the --config file, ASTAR_* environment
variables and flags, in increasing priority.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (YAML or JSON)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: "+strings.Join(logging.Levels, ", "))
	pf.StringVar(&a.logFormat, "log-format", "", "log format: "+strings.Join(logging.Formats, ", "))
	pf.StringVar(&a.metrics, "metrics", "", "metric exporter: none, prometheus, stdout")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "listen address of the prometheus endpoint")
	pf.StringVar(&a.trace, "trace", "", "trace exporter: none, stdout")
	pf.StringToStringVar(&a.vars, "var", nil, "HCL variable override, name=value (repeatable)")

	root.AddCommand(
		a.runCommand(),
		a.compareCommand(),
		a.reachCommand(),
		a.inspectCommand(),
		a.generateCommand(),
	)

	return root
}

// setup merges configuration, then installs the logger and telemetry every
// command runs with.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return usageError("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics") {
		cfg.Telemetry.Metrics = a.metrics
	}
	if flags.Changed("metrics-addr") {
		cfg.Telemetry.MetricsAddr = a.metricsAddr
	}
	if flags.Changed("trace") {
		cfg.Telemetry.Trace = a.trace
	}
	if len(a.vars) > 0 {
		merged := make(map[string]string, len(cfg.Vars)+len(a.vars))
		maps.Copy(merged, cfg.Vars)
		maps.Copy(merged, a.vars)
		cfg.Vars = merged
	}
	if err = cfg.Validate(); err != nil {
		return usageError("%v", err)
	}
	a.cfg = cfg

	a.logger = logging.New(cfg.Log.Level, cfg.Log.Format, a.errOut)
	slog.SetDefault(a.logger)
	ctx := logging.WithLogger(cmd.Context(), a.logger)

	a.tel, err = telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "astar",
		ServiceVersion: version,
		MetricExporter: cfg.Telemetry.Metrics,
		TraceExporter:  cfg.Telemetry.Trace,
		Writer:         a.errOut,
	})
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	a.logger.Debug("Configuration loaded.",
		"config", a.configPath,
		"heuristic", cfg.Heuristic,
		"metrics", cfg.Telemetry.Metrics,
		"trace", cfg.Telemetry.Trace,
	)

	return nil
}

// shutdown flushes the exporters installed by setup.
func (a *app) shutdown() error {
	if a.tel == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return a.tel.Shutdown(ctx)
}

// loadGraph reads the graph named by the first argument, falling back to
// the configured graph path.
func (a *app) loadGraph(ctx context.Context, args []string) (*core.SearchSpace, error) {
	path := a.cfg.Graph
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, usageError("no graph file: pass it as an argument, set graph in the config file or %sGRAPH", config.EnvPrefix)
	}

	return graphfile.Load(ctx, path, graphfile.WithVariables(a.cfg.Vars))
}
