// Package config loads the settings of an astar CLI run.
//
// Priority: flags > ASTAR_* environment > config file > defaults. Flags are
// applied by the command layer; this package handles the rest and validates
// the merged result with go-playground/validator.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/astarlab/astar"
	"github.com/katalvlaran/astarlab/heuristic"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ASTAR_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains everything a run needs besides the graph itself.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after Validate.
type Config struct {
	// Graph is the path of the graph file.
	Graph string `json:"graph" yaml:"graph"`

	// Start and Goal label the endpoints of the search.
	Start string `json:"start" yaml:"start"`
	Goal  string `json:"goal" yaml:"goal"`

	// Heuristic names the cost strategy, see heuristic.ParseKind.
	Heuristic string `json:"heuristic" yaml:"heuristic" validate:"heuristic"`

	Pacing    PacingConfig    `json:"pacing" yaml:"pacing"`
	Log       LogConfig       `json:"log" yaml:"log"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`

	// Vars are HCL var.* overrides for the graph file.
	Vars map[string]string `json:"vars,omitempty" yaml:"vars,omitempty"`
}

// PacingConfig mirrors astar.Pacing.
type PacingConfig struct {
	StepByStep bool          `json:"step_by_step" yaml:"step_by_step"`
	StepDelay  time.Duration `json:"step_delay" yaml:"step_delay" validate:"gte=0"`
}

// LogConfig selects the process logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
}

// TelemetryConfig selects the metric and trace exporters.
type TelemetryConfig struct {
	// Metrics is "none", "prometheus" (served on MetricsAddr) or "stdout".
	Metrics     string `json:"metrics" yaml:"metrics" validate:"oneof=none prometheus stdout"`
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr" validate:"required_if=Metrics prometheus,omitempty,hostname_port"`
	// Trace is "none" or "stdout".
	Trace string `json:"trace" yaml:"trace" validate:"oneof=none stdout"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Heuristic: heuristic.FewestLinks.String(),
		Log:       LogConfig{Level: "info", Format: "text"},
		Telemetry: TelemetryConfig{
			Metrics:     "none",
			MetricsAddr: ":9464",
			Trace:       "none",
		},
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("heuristic", func(fl validator.FieldLevel) bool {
		_, err := heuristic.ParseKind(fl.Field().String())
		return err == nil
	})
}

// Load merges defaults, the file at path (skipped when path is empty) and
// the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadFile decodes YAML (or JSON, a YAML subset) over cfg. Unknown keys are errors.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}

	return nil
}

// loadEnv applies ASTAR_* overrides. Malformed values are reported together.
func loadEnv(cfg *Config) error {
	var errs []error
	str := func(name string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	str("GRAPH", &cfg.Graph)
	str("START", &cfg.Start)
	str("GOAL", &cfg.Goal)
	str("HEURISTIC", &cfg.Heuristic)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("METRICS", &cfg.Telemetry.Metrics)
	str("METRICS_ADDR", &cfg.Telemetry.MetricsAddr)
	str("TRACE", &cfg.Telemetry.Trace)

	if v := os.Getenv(EnvPrefix + "STEP_BY_STEP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSTEP_BY_STEP: %w", EnvPrefix, err))
		}
		cfg.Pacing.StepByStep = b
	}
	if v := os.Getenv(EnvPrefix + "STEP_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSTEP_DELAY: %w", EnvPrefix, err))
		}
		cfg.Pacing.StepDelay = d
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Validate checks the struct tags. Run endpoints are not required here:
// commands that need them check with RequireEndpoints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// RequireEndpoints reports whether Start and Goal are set.
func (c *Config) RequireEndpoints() error {
	if c.Start == "" || c.Goal == "" {
		return fmt.Errorf("%w: start and goal are required", ErrInvalid)
	}

	return nil
}

// HeuristicKind resolves Heuristic. Valid after Validate.
func (c *Config) HeuristicKind() heuristic.Kind {
	k, err := heuristic.ParseKind(c.Heuristic)
	if err != nil {
		return heuristic.Unset
	}

	return k
}

// AstarPacing converts Pacing for the engine.
func (c *Config) AstarPacing() astar.Pacing {
	return astar.Pacing{StepByStep: c.Pacing.StepByStep, StepDelay: c.Pacing.StepDelay}
}
