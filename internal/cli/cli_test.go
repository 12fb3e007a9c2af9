// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/internal/cli"
	"github.com/katalvlaran/algokit/sorting"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "SEED", "SIZE", "MAX_VALUE", "PIVOT", "DUPLICATES", "METRICS"} {
		t.Setenv("ALGOKIT_"+k, "")
		require.NoError(t, os.Unsetenv("ALGOKIT_"+k))
	}

	var stdout, stderr bytes.Buffer
	root := cli.NewRootCommand(&stdout, &stderr)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestSort_AllAlgorithms(t *testing.T) {
	out, logs, err := run(t, "sort", "--algo", "all", "5", "3", "8", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("[1 2 3 5 8]")), out)
	for _, name := range []string{"bubble_sort took", "quick_sort took", "merge_sort took"} {
		assert.Contains(t, logs, name)
	}
	assert.Contains(t, logs, "run=")
}

func TestSort_GeneratedWithPivot(t *testing.T) {
	out, _, err := run(t, "sort", "--algo", "quick", "--pivot", "random", "--size", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "...]")
}

func TestSort_UnknownAlgorithm(t *testing.T) {
	_, _, err := run(t, "sort", "--algo", "heap", "1")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	_, _, err = run(t, "sort", "1", "two")
	assert.Error(t, err)
}

func TestSizeMustBeNonNegative(t *testing.T) {
	for _, cmd := range []string{"sort", "search", "demo"} {
		_, _, err := run(t, cmd, "--size", "-1")
		require.Error(t, err, cmd)
		assert.Contains(t, err.Error(), "--size must be non-negative", cmd)
	}

	out, _, err := run(t, "sort", "--size", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}

func TestSearch_ModeIsCaseInsensitive(t *testing.T) {
	out, logs, err := run(t, "search", "--mode", "ALL", "--target", "3", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "index 2")
	assert.Contains(t, logs, "linear_search took")
	assert.Contains(t, logs, "binary_search took")

	_, _, err = run(t, "search", "--mode", "Binary", "--target", "3", "1", "2", "3")
	require.NoError(t, err)
}

func TestSearch_Binary(t *testing.T) {
	out, _, err := run(t, "search", "--mode", "binary", "--target", "5", "1", "2", "3", "5", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "index 3")

	out, _, err = run(t, "search", "--mode", "binary", "--target", "9", "1", "2", "3", "5", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "not found")

	out, _, err = run(t, "search", "--mode", "binary", "--duplicates", "last", "--target", "2", "2", "1", "2", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "index 3")
}

func TestSearch_LinearRandomTarget(t *testing.T) {
	out, logs, err := run(t, "search", "--size", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "linear")
	assert.Contains(t, out, "binary")
	assert.NotContains(t, out, "not found", "a random element of the input is always found")
	assert.Contains(t, logs, "linear_search took")
}

func TestDijkstra_SampleGraph(t *testing.T) {
	out, logs, err := run(t, "dijkstra", "--source", "A", "--to", "D")
	require.NoError(t, err)
	assert.Contains(t, out, "A→D")
	assert.Contains(t, out, "A → B → C → D")
	assert.Contains(t, logs, "dijkstra took")
}

func TestDijkstra_GraphFileAndErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
directed = true
vertices = ["island"]

[[edge]]
from = "depot"
to = "shop"
weight = 4
`), 0o600))

	out, _, err := run(t, "dijkstra", "--graph", path, "--source", "depot", "--to", "island")
	require.NoError(t, err)
	assert.Contains(t, out, "∞")
	assert.Contains(t, out, "unreachable")

	_, logs, err := run(t, "dijkstra", "--source", "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.Contains(t, logs, "WARN", "failed calls are still timed")
}

func TestDemo_WithMetrics(t *testing.T) {
	out, _, err := run(t, "--metrics", "demo", "--size", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "== sorting ==")
	assert.Contains(t, out, "== shortest paths ==")
	assert.Contains(t, out, "algokit_operation_duration_seconds")
	assert.Contains(t, out, `operation="dijkstra"`)
}

func TestConfigFromEnvFile(t *testing.T) {
	env := filepath.Join(t.TempDir(), "algokit.env")
	require.NoError(t, os.WriteFile(env, []byte("ALGOKIT_PIVOT=bogus\n"), 0o600))

	var stdout, stderr bytes.Buffer
	root := cli.NewRootCommand(&stdout, &stderr)
	root.SetArgs([]string{"--env-file", env, "sort", "1"})
	t.Setenv("ALGOKIT_PIVOT", "")
	require.NoError(t, os.Unsetenv("ALGOKIT_PIVOT"))

	err := root.ExecuteContext(context.Background())
	assert.Error(t, err, "invalid pivot in env file must fail config loading")
}
