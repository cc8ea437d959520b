package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarlab/astar"
	"github.com/katalvlaran/astarlab/heuristic"
	"github.com/katalvlaran/astarlab/internal/config"
)

// writeFile stores body in a temp file and returns its path.
func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, heuristic.FewestLinks, cfg.HeuristicKind())
	assert.Equal(t, astar.Pacing{}, cfg.AstarPacing())
	assert.ErrorIs(t, cfg.RequireEndpoints(), config.ErrInvalid)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "S", cfg.Start)
	assert.Equal(t, "G", cfg.Goal)
	assert.Equal(t, heuristic.ShortestDistance, cfg.HeuristicKind())
	assert.Equal(t, 100*time.Millisecond, cfg.Pacing.StepDelay)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "localhost:9100", cfg.Telemetry.MetricsAddr)
	assert.Equal(t, map[string]string{"size": "20"}, cfg.Vars)
	require.NoError(t, cfg.RequireEndpoints())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("ASTAR_GOAL", "A")
	t.Setenv("ASTAR_HEURISTIC", "links")
	t.Setenv("ASTAR_STEP_BY_STEP", "true")
	t.Setenv("ASTAR_STEP_DELAY", "250ms")
	t.Setenv("ASTAR_LOG_LEVEL", "warn")

	cfg, err := config.Load(filepath.Join("testdata", "run.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "S", cfg.Start)
	assert.Equal(t, "A", cfg.Goal)
	assert.Equal(t, heuristic.FewestLinks, cfg.HeuristicKind())
	assert.Equal(t, astar.Pacing{StepByStep: true, StepDelay: 250 * time.Millisecond}, cfg.AstarPacing())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown heuristic": "heuristic: zigzag\n",
		"bad log format":    "log:\n  format: xml\n",
		"bad log level":     "log:\n  level: loud\n",
		"bad metrics":       "telemetry:\n  metrics: statsd\n",
		"bad addr":          "telemetry:\n  metrics: prometheus\n  metrics_addr: nope\n",
		"missing addr":      "telemetry:\n  metrics: prometheus\n  metrics_addr: \"\"\n",
		"negative delay":    "pacing:\n  step_delay: -1s\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "colour: red\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedEnv(t *testing.T) {
	t.Setenv("ASTAR_STEP_DELAY", "soon")
	t.Setenv("ASTAR_STEP_BY_STEP", "maybe")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "ASTAR_STEP_DELAY")
	assert.Contains(t, err.Error(), "ASTAR_STEP_BY_STEP")
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
