package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krank-09/task-tracker/internal/clierr"
	"github.com/krank-09/task-tracker/internal/filelock"
	"github.com/krank-09/task-tracker/internal/history"
	"github.com/krank-09/task-tracker/internal/task"
	"github.com/krank-09/task-tracker/internal/taskfile"
)

// runCLI executes the command tree against a fresh argument list and
// returns captured stdout. Global flag state is reset first because the
// package-level cobra tree persists across invocations.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagJSON, flagTable, flagCompact, flagNoColor, flagDir = false, false, false, false, ""
	_ = deleteCmd.Flags().Set("yes", "false")
	_ = showCmd.Flags().Set("render", "false")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	oldStdout := os.Stdout
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	os.Stdout = oldStdout
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	return string(out), execErr
}

func requireCLICode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var cliErr *clierr.Error
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, code, cliErr.Code)
}

func TestCLILifecycle(t *testing.T) {
	dir := t.TempDir()

	// add
	out, err := runCLI(t, "add", "buy milk", "--dir", dir, "--json")
	require.NoError(t, err)
	var created task.Task
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, "buy milk", created.Description)

	// a second task keeps the max persisted ID ahead of the delete below
	out, err = runCLI(t, "add", "write report", "--dir", dir, "--json")
	require.NoError(t, err)
	var second task.Task
	require.NoError(t, json.Unmarshal([]byte(out), &second))
	assert.Equal(t, 2, second.ID)

	// mark-in-progress
	out, err = runCLI(t, "mark-in-progress", "1", "--dir", dir, "--json")
	require.NoError(t, err)
	var moved task.Task
	require.NoError(t, json.Unmarshal([]byte(out), &moved))
	assert.Equal(t, task.StatusInProgress, moved.Status)
	assert.Equal(t, "buy milk", moved.Description)

	// list with matching filter
	out, err = runCLI(t, "list", "in-progress", "--dir", dir, "--json")
	require.NoError(t, err)
	var listed []*task.Task
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, 1, listed[0].ID)

	// delete
	_, err = runCLI(t, "delete", "1", "--yes", "--dir", dir, "--json")
	require.NoError(t, err)

	// only the second task remains
	out, err = runCLI(t, "list", "--dir", dir, "--json")
	require.NoError(t, err)
	listed = nil
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].ID)

	// mutating the deleted ID fails
	_, err = runCLI(t, "mark-done", "1", "--dir", dir, "--json")
	requireCLICode(t, err, clierr.TaskNotFound)

	// every invocation derives the next ID from the max persisted ID;
	// with task 2 still on disk the next task gets 3
	out, err = runCLI(t, "add", "third", "--dir", dir, "--json")
	require.NoError(t, err)
	var third task.Task
	require.NoError(t, json.Unmarshal([]byte(out), &third))
	assert.Equal(t, 3, third.ID)
}

func TestCLIListEmptyIsJSONArray(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "list", "--dir", dir, "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestCLIUpdateDescription(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "add", "old", "--dir", dir, "--json")
	require.NoError(t, err)

	out, err := runCLI(t, "update", "1", "new text", "--dir", dir, "--json")
	require.NoError(t, err)
	var updated task.Task
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "new text", updated.Description)
	assert.Equal(t, task.StatusTodo, updated.Status)

	_, err = runCLI(t, "update", "99", "x", "--dir", dir, "--json")
	requireCLICode(t, err, clierr.TaskNotFound)
}

func TestCLIInvalidInput(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "mark-done", "abc", "--dir", dir)
	requireCLICode(t, err, clierr.InvalidTaskID)

	_, err = runCLI(t, "list", "archived", "--dir", dir)
	requireCLICode(t, err, clierr.InvalidStatus)

	_, err = runCLI(t, "add", "", "--dir", dir)
	requireCLICode(t, err, clierr.InvalidInput)
}

func TestCLIDeleteNeedsConfirmationOffTerminal(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "add", "task", "--dir", dir, "--json")
	require.NoError(t, err)

	// Stdin is not a terminal under go test.
	_, err = runCLI(t, "delete", "1", "--dir", dir)
	requireCLICode(t, err, clierr.ConfirmationReq)
}

func TestCLIDeleteConfirmsBeforeLocking(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "add", "task", "--dir", dir, "--json")
	require.NoError(t, err)

	// With the store lock already held, the confirmation check must
	// still answer immediately: it runs before the lock is taken.
	release, err := filelock.Acquire(filepath.Join(dir, lockFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = release() })

	_, err = runCLI(t, "delete", "1", "--dir", dir)
	requireCLICode(t, err, clierr.ConfirmationReq)
}

func TestCLICorruptTasksFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{{{"), 0o600))

	_, err := runCLI(t, "list", "--dir", dir, "--json")
	require.Error(t, err)
	assert.ErrorIs(t, err, taskfile.ErrCorrupt)
}

func TestCLIWritesActivityLog(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "add", "logged", "--dir", dir, "--json")
	require.NoError(t, err)
	_, err = runCLI(t, "mark-done", "1", "--dir", dir, "--json")
	require.NoError(t, err)

	entries, err := history.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, "mark", entries[1].Action)
	assert.Equal(t, 1, entries[1].TaskID)
}
