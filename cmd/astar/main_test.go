package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarlab/internal/graphfile"
)

const detour = "testdata/detour.yaml"

// execute runs one command line and returns what it wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), strings.NewReader(stdin), &out, &errOut, args)

	return out.String(), errOut.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code)

	return exitErr
}

func TestRun_Heuristics(t *testing.T) {
	tests := []struct {
		name      string
		heuristic string
		path      string
		cost      string
	}{
		{"fewest links takes the detour", "fewest-links", "S -> X -> G", "2"},
		{"shortest distance follows the axis", "shortest-distance", "S -> A -> B -> G", "20"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "", "run", detour, "-s", "S", "-g", "G", "--heuristic", tc.heuristic)
			require.NoError(t, err)
			assert.Regexp(t, `status:\s+found`, out)
			assert.Regexp(t, `path:\s+`+tc.path+`\n`, out)
			assert.Regexp(t, `cost:\s+`+tc.cost+`\n`, out)
			assert.Regexp(t, `run:\s+[0-9a-f-]{36}`, out)
		})
	}
}

func TestRun_Exhausted(t *testing.T) {
	out, _, err := execute(t, "", "run", detour, "-s", "S", "-g", "D")
	exitErr := requireExitCode(t, err, exitNoPath)
	assert.Equal(t, "no path from S to D", exitErr.Message)
	assert.Regexp(t, `status:\s+exhausted`, out)
	assert.NotContains(t, out, "path:")
}

func TestRun_DisabledElements(t *testing.T) {
	out, _, err := execute(t, "", "run", detour, "-s", "S", "-g", "G", "--disable-link", "X->G")
	require.NoError(t, err)
	assert.Regexp(t, `path:\s+S -> A -> B -> G\n`, out)

	out, _, err = execute(t, "", "run", detour, "-s", "S", "-g", "G",
		"--heuristic", "shortest-distance", "--disable-node", "A")
	require.NoError(t, err)
	assert.Regexp(t, `path:\s+S -> X -> G\n`, out)
}

func TestRun_TieBreak(t *testing.T) {
	for _, tb := range []string{"oldest-first", "newest", "NEWEST-FIRST"} {
		out, _, err := execute(t, "", "run", detour, "-s", "S", "-g", "G", "--tie-break", tb)
		require.NoError(t, err, tb)
		assert.Regexp(t, `links:\s+2\n`, out, tb)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing goal", []string{"run", detour, "-s", "S"}},
		{"unknown heuristic", []string{"run", detour, "-s", "S", "-g", "G", "--heuristic", "manhattan"}},
		{"unknown tie-break", []string{"run", detour, "-s", "S", "-g", "G", "--tie-break", "random"}},
		{"malformed link", []string{"run", detour, "-s", "S", "-g", "G", "--disable-link", "SX"}},
		{"unknown link", []string{"run", detour, "-s", "S", "-g", "G", "--disable-link", "G->S"}},
		{"unknown node", []string{"run", detour, "-s", "S", "-g", "G", "--disable-node", "Z"}},
		{"no graph", []string{"run", "-s", "S", "-g", "G"}},
		{"bad exporter", []string{"run", detour, "-s", "S", "-g", "G", "--metrics", "statsd"}},
		{"bad log level", []string{"reach", detour, "--from", "S", "--log-level", "trace"}},
		{"unknown flag", []string{"run", detour, "--fast"}},
		{"negative delay", []string{"run", detour, "-s", "S", "-g", "G", "--delay=-1s"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, "", tc.args...)
			requireExitCode(t, err, exitUsage)
		})
	}
}

func TestRun_MissingGraphFile(t *testing.T) {
	_, _, err := execute(t, "", "run", "testdata/nope.yaml", "-s", "S", "-g", "G")
	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestRun_StepMode(t *testing.T) {
	out, _, err := execute(t, "\n", "run", detour, "-s", "S", "-g", "G", "--step")
	require.NoError(t, err)
	assert.Contains(t, out, "step mode:")
	assert.Contains(t, out, "step 0: current=- open=[S] closed=[]\n")
	assert.Contains(t, out, "step 1: current=S ")
	assert.Regexp(t, `path:\s+S -> X -> G\n`, out)
}

func TestRun_StepQuit(t *testing.T) {
	out, _, err := execute(t, "\nq\n", "run", detour, "-s", "S", "-g", "G", "--step")
	exitErr := requireExitCode(t, err, exitFailure)
	assert.Equal(t, "run cancelled", exitErr.Message)
	assert.Regexp(t, `status:\s+cancelled`, out)
}

func TestRun_ConfigEnvAndFlags(t *testing.T) {
	graph, err := filepath.Abs(detour)
	require.NoError(t, err)
	cfgPath := filepath.Join(t.TempDir(), "astar.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"graph: "+graph+"\nstart: S\ngoal: G\nheuristic: shortest-distance\n"), 0o600))

	out, _, err := execute(t, "", "run", "-c", cfgPath)
	require.NoError(t, err)
	assert.Regexp(t, `path:\s+S -> A -> B -> G\n`, out)

	t.Setenv("ASTAR_HEURISTIC", "fewest-links")
	out, _, err = execute(t, "", "run", "-c", cfgPath)
	require.NoError(t, err)
	assert.Regexp(t, `path:\s+S -> X -> G\n`, out)

	out, _, err = execute(t, "", "run", "-c", cfgPath, "--heuristic", "distance")
	require.NoError(t, err)
	assert.Regexp(t, `path:\s+S -> A -> B -> G\n`, out)

	_, _, err = execute(t, "", "run", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	requireExitCode(t, err, exitUsage)
}

func TestRun_HCLVariables(t *testing.T) {
	args := []string{"run", "testdata/loop.hcl", "-s", "P", "-g", "R", "--heuristic", "shortest-distance"}

	out, _, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Regexp(t, `cost:\s+20\n`, out)

	out, _, err = execute(t, "", append(args, "--var", "step=5")...)
	require.NoError(t, err)
	assert.Regexp(t, `cost:\s+10\n`, out)
}

func TestRun_LogsSearchEvents(t *testing.T) {
	_, logs, err := execute(t, "", "run", detour, "-s", "S", "-g", "G",
		"--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"Expanding node, checking neighbours."`)
	assert.Contains(t, logs, `"msg":"Found goal."`)
	assert.Contains(t, logs, `"path":"S -> X -> G"`)
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "", "compare", detour, "-s", "S", "-g", "G")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Regexp(t, `^SOLVER\s+STATUS\s+LINKS\s+COST\s+EXPANDED\s+PATH$`, lines[0])
	assert.Regexp(t, `^astar/fewest-links\s+found\s+2\s+2\s+\d+\s+S -> X -> G$`, lines[1])
	assert.Regexp(t, `^astar/shortest-distance\s+found\s+3\s+20\s+\d+\s+S -> A -> B -> G$`, lines[2])
	assert.Regexp(t, `^dijkstra/unit\s+found\s+2\s+2\s+-\s+S -> X -> G$`, lines[3])
	assert.Regexp(t, `^dijkstra/euclidean\s+found\s+3\s+20\s+-\s+S -> A -> B -> G$`, lines[4])
}

func TestCompare_Unreachable(t *testing.T) {
	out, _, err := execute(t, "", "compare", detour, "-s", "S", "-g", "D")
	require.NoError(t, err)
	assert.Regexp(t, `astar/fewest-links\s+exhausted\s+-\s+-`, out)
	assert.Regexp(t, `dijkstra/euclidean\s+exhausted\s+-\s+-\s+-\s+-`, out)
}

func TestReach(t *testing.T) {
	out, _, err := execute(t, "", "reach", detour, "--from", "S")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Regexp(t, `^S\s+0\s+-$`, lines[1])
	assert.Regexp(t, `^X\s+1\s+S$`, lines[2])
	assert.Regexp(t, `^A\s+1\s+S$`, lines[3])
	assert.Regexp(t, `^G\s+2\s+X$`, lines[4])
	assert.Regexp(t, `^B\s+2\s+A$`, lines[5])
	assert.Equal(t, "unreached: D", lines[6])
}

func TestReach_MaxDepthAndDisabled(t *testing.T) {
	out, _, err := execute(t, "", "reach", detour, "-f", "S", "--max-depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "unreached: B, G, D\n")

	_, _, err = execute(t, "", "reach", detour)
	requireExitCode(t, err, exitUsage)
}

func TestInspect(t *testing.T) {
	out, _, err := execute(t, "", "inspect", detour, "--from", "S")
	require.NoError(t, err)
	assert.Equal(t, "nodes: 6 (6 enabled)\n"+
		"links: 5 (5 enabled)\n"+
		"cycles: none\n"+
		"topological order: D S A B X G\n"+
		"depth-first from S: G X B A S\n", out)
}

func TestInspect_Cycle(t *testing.T) {
	out, _, err := execute(t, "", "inspect", "testdata/loop.hcl")
	require.NoError(t, err)
	assert.Contains(t, out, "cycles: 1\n  P -> Q -> R -> P\n")
	assert.NotContains(t, out, "topological order")
}

func TestGenerate_RoundTrip(t *testing.T) {
	out, _, err := execute(t, "", "generate", "path", "-n", "3", "--letters")
	require.NoError(t, err)
	assert.Contains(t, out, "label: C")

	file := filepath.Join(t.TempDir(), "path.yaml")
	_, _, err = execute(t, "", "generate", "path", "-n", "3", "--letters", "-o", file)
	require.NoError(t, err)

	out, _, err = execute(t, "", "run", file, "-s", "A", "-g", "C", "--heuristic", "shortest-distance")
	require.NoError(t, err)
	assert.Regexp(t, `path:\s+A -> B -> C\n`, out)
	assert.Regexp(t, `cost:\s+20\n`, out)
}

func TestGenerate_Terrain(t *testing.T) {
	out, _, err := execute(t, "", "generate", "terrain", "--rows", "3", "--cols", "4", "--seed", "7", "--bridge")
	require.NoError(t, err)

	doc, err := graphfile.DecodeYAML(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 12)
	assert.NotEmpty(t, doc.Links)
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := execute(t, "", "generate", "hypercube")
	requireExitCode(t, err, exitUsage)

	_, _, err = execute(t, "", "generate", "path", "-n", "1")
	requireExitCode(t, err, exitUsage)

	_, _, err = execute(t, "", "generate", "random", "--disabled-links", "2")
	requireExitCode(t, err, exitUsage)

	_, _, err = execute(t, "", "generate")
	require.Error(t, err)
}
