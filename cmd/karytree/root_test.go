package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/g-m-twostay/karytree/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(EnvLogLevel, "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_InOrder(t *testing.T) {
	out, _, err := execute(t, "-k", "2", "--root", "5", "-e", "5:3", "-e", "5:8", "-o", "in")
	require.NoError(t, err)
	assert.Equal(t, "in-order: 3, 5, 8\n", out)
}

func TestRoot_All(t *testing.T) {
	out, _, err := execute(t, "-k", "1", "--root", "0", "-e", "0:1", "-e", "1:2", "-e", "2:3")
	require.NoError(t, err)
	assert.Equal(t, "pre-order: 0, 1, 2, 3\n"+
		"post-order: 3, 2, 1, 0\n"+
		"breadth-first: 0, 1, 2, 3\n"+
		"depth-first: 0, 1, 2, 3\n", out)
}

func TestRoot_Heapify(t *testing.T) {
	out, _, err := execute(t, "--root", "7", "-e", "7:3", "-e", "7:9", "-e", "3:1", "-e", "3:5",
		"--heapify", "-o", "bfs,pre")
	require.NoError(t, err)
	assert.Equal(t, "breadth-first: 1, 3, 5, 7, 9\npre-order: 1, 3, 7, 9, 5\n", out)
}

func TestRoot_StringKeys(t *testing.T) {
	out, _, err := execute(t, "-k", "3", "--keys", "string", "--root", "a", "-e", "a:b", "-e", "a:c", "-e", "b:d", "-o", "dfs")
	require.NoError(t, err)
	assert.Equal(t, "depth-first: a, b, d, c\n", out)
}

func TestRoot_ComplexKeys(t *testing.T) {
	out, _, err := execute(t, "--keys", "complex", "--root", "1,1", "-e", "1,1:0,2", "-e", "1,1:3", "--heapify", "-o", "pre")
	require.NoError(t, err)
	assert.Equal(t, "pre-order: 0 + 2i, 1 + 1i, 3 + 0i\n", out)
}

func TestRoot_Render(t *testing.T) {
	out, _, err := execute(t, "--root", "5", "-e", "5:3", "-e", "5:8", "-e", "3:1", "-o", "pre", "--render")
	require.NoError(t, err)
	ls := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, ls, 5)
	assert.Equal(t, "pre-order: 5, 3, 1, 8", ls[0])
	assert.Equal(t, "5", strings.TrimSpace(ls[1]))
	assert.Contains(t, ls[4], "8")
}

func TestRoot_Errors(t *testing.T) {
	_, errOut, err := execute(t, "-k", "3", "--root", "1", "-o", "in")
	var ae *Trees.InvalidArityError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, errOut, "in-order requires k=2")

	_, _, err = execute(t, "-k", "3", "--root", "1", "--heapify")
	require.ErrorAs(t, err, &ae)

	_, _, err = execute(t, "--root", "1", "-e", "1:2", "-e", "1:3", "-e", "1:4")
	var ce *Trees.CapacityExceededError
	require.ErrorAs(t, err, &ce)

	_, _, err = execute(t, "--root", "1", "-e", "9:2")
	var pe *Trees.ParentNotFoundError
	require.ErrorAs(t, err, &pe)

	_, _, err = execute(t, "-e", "1:2")
	var me *Trees.MissingRootError
	require.ErrorAs(t, err, &me)

	_, _, err = execute(t, "-o", "pre")
	require.ErrorAs(t, err, &me)

	for _, args := range [][]string{
		{"--root", "1", "-e", "1-2"},
		{"--root", "x"},
		{"--root", "1", "-o", "level"},
		{"--keys", "bytes", "--root", "1"},
		{"--root", "1", "extra"},
	} {
		_, _, err = execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestRoot_LogLevel(t *testing.T) {
	_, errOut, err := execute(t, "--root", "5", "-e", "5:3", "-o", "pre", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "attached child")
	assert.Contains(t, errOut, "tree built")

	_, errOut, err = execute(t, "--root", "5", "-o", "pre", "--log-level", "warn")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "tree built")

	_, _, err = execute(t, "--root", "5", "--log-level", "loud")
	assert.Error(t, err)
}

func TestNewLogger_Env(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	var buf bytes.Buffer
	log, err := newLogger(&buf, "")
	require.NoError(t, err)
	log.Info().Msg("hidden")
	log.Error().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.False(t, isTerminal(&buf))

	t.Setenv(EnvLogLevel, "nope")
	_, err = newLogger(&buf, "")
	assert.Error(t, err)
}
