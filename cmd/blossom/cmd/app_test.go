package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/cmd/blossom/cmd"
)

// run executes the CLI with stdin and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := cmd.NewApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"blossom"}, args...))

	return out.String(), errOut.String(), err
}

func TestMatch_Text(t *testing.T) {
	out, _, err := run(t, "1 2\n2 3\n1 3\n3 4\n4 5\n", "match")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "size 2", lines[0])
}

func TestMatch_JSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c5.dimacs")
	require.NoError(t, os.WriteFile(path, []byte("p edge 5 5\ne 1 2\ne 2 3\ne 3 4\ne 4 5\ne 5 1\n"), 0o644))

	out, _, err := run(t, "", "match", "--input", path, "--format", "json")
	require.NoError(t, err)

	var report cmd.MatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.Vertices)
	assert.Equal(t, 5, report.Edges)
	assert.Equal(t, 2, report.Size)
	assert.Len(t, report.Pairs, 2)
}

func TestMatch_Components(t *testing.T) {
	in := "1 2\n3 4\n"
	_, _, err := run(t, in, "match")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--components")

	out, _, err := run(t, in, "match", "--components", "--jobs", "2")
	require.NoError(t, err)
	assert.Equal(t, "size 2\n1 2\n3 4\n", out)
}

func TestMatch_DebugLogging(t *testing.T) {
	_, logs, err := run(t, "1 2\n2 3\n3 4\n4 5\n5 1\n", "match", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs, "phase opened")
	assert.Contains(t, logs, "blossom labeled")
	assert.Contains(t, logs, "augmenting path")
}

func TestMatch_Errors(t *testing.T) {
	_, _, err := run(t, "1 2\n", "match", "--format", "yaml")
	assert.Error(t, err)

	_, _, err = run(t, "1 2\n", "match", "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = run(t, "1 1\n", "match")
	assert.Error(t, err)

	_, _, err = run(t, "", "match", "--input", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestGenerate_PipesIntoMatch(t *testing.T) {
	graph, _, err := run(t, "", "generate", "--kind", "petersen")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(graph, "p edge 10 15\n"))

	out, _, err := run(t, graph, "match", "--format", "json")
	require.NoError(t, err)
	var report cmd.MatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 5, report.Size)
}

func TestGenerate_Random(t *testing.T) {
	a, _, err := run(t, "", "generate", "--kind", "random", "--n", "30", "--p", "0.1", "--seed", "4")
	require.NoError(t, err)
	b, _, err := run(t, "", "generate", "--kind", "random", "--n", "30", "--p", "0.1", "--seed", "4")
	require.NoError(t, err)
	assert.Equal(t, a, b, "seeded output must be stable")

	_, _, err = run(t, "", "generate", "--kind", "random", "--p", "2")
	assert.Error(t, err)

	_, _, err = run(t, "", "generate", "--kind", "hypercube")
	assert.Error(t, err)
}
