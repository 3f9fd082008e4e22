package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h0rv/widgets/internal/calc"
)

// run executes the CLI against an isolated data directory.
func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dataDir, "missing.yaml"),
		"--data-dir", dataDir,
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "calc", "4", "+", "2", "x", "3", "=")
	require.NoError(t, err)
	assert.Equal(t, "18\n", out)

	out, err = run(t, dir, "calc", "0.1 + 0.2 =")
	require.NoError(t, err)
	assert.Equal(t, "0.30000000000000004\n", out)

	out, err = run(t, dir, "calc", "5", "/", "0", "=")
	assert.ErrorIs(t, err, calc.ErrDivisionByZero)
	assert.Equal(t, "Error\n", out)

	_, err = run(t, dir, "calc", "4", "plus", "2")
	assert.ErrorIs(t, err, calc.ErrParse)
}

func TestTodoCommands(t *testing.T) {
	for _, driver := range []string{"file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			dir := t.TempDir()
			todo := func(args ...string) string {
				t.Helper()
				out, err := run(t, dir, append([]string{"--storage", driver, "todo"}, args...)...)
				require.NoError(t, err, args)
				return out
			}

			first := strings.TrimSpace(todo("add", "Buy", "milk"))
			second := strings.TrimSpace(todo("add", "Write report"))
			third := strings.TrimSpace(todo("add", "Call mom"))
			require.NotEmpty(t, first)

			todo("toggle", second)
			todo("edit", first, "Buy oat milk")

			out := todo("list", "--filter", "active")
			assert.Contains(t, out, "Buy oat milk")
			assert.NotContains(t, out, "Write report")
			assert.Contains(t, out, "2 left, 1 completed")

			out = todo("move", third, first)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 3)
			assert.Contains(t, lines[0], third)
			assert.Contains(t, lines[1], first)
			assert.Contains(t, lines[2], second)

			assert.Equal(t, "removed 1\n", todo("clear-completed"))

			todo("rm", first)
			todo("rm", first)
			out = todo("list")
			assert.Contains(t, out, "Call mom")
			assert.NotContains(t, out, "Buy oat milk")
		})
	}
}

func TestTodoCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "todo", "add", "   ")
	assert.Error(t, err)

	out, err := run(t, dir, "todo", "add", "Water plants")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	_, err = run(t, dir, "todo", "toggle", "missing")
	assert.Error(t, err)

	_, err = run(t, dir, "todo", "edit", id, " ")
	assert.Error(t, err)

	_, err = run(t, dir, "todo", "list", "--filter", "someday")
	assert.Error(t, err)

	_, err = run(t, dir, "--storage", "redis", "todo", "list")
	assert.Error(t, err)
}

func TestTodoCommand_EditUnchangedText(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "todo", "add", "Water plants")
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	_, err = run(t, dir, "todo", "edit", id, "Water", "plants")
	require.NoError(t, err)

	out, err = run(t, dir, "todo", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Water plants")
}

func TestRootCommand_BadScreen(t *testing.T) {
	_, err := run(t, t.TempDir(), "--screen", "pong")
	assert.Error(t, err)
}
