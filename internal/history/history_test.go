package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, Entry{Timestamp: time.Now(), Action: "add", TaskID: 1, Detail: "buy milk"}))
	require.NoError(t, Append(dir, Entry{Timestamp: time.Now(), Action: "mark", TaskID: 1, Detail: "done"}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, 1, entries[0].TaskID)
	assert.Equal(t, "buy milk", entries[0].Detail)
	assert.Equal(t, "mark", entries[1].Action)
}

func TestReadMissingLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadSkipsTornLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, Entry{Timestamp: time.Now(), Action: "add", TaskID: 1}))

	// Simulate a crash mid-append.
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(`{"timestamp":"broken`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLogMutationIsBestEffort(t *testing.T) {
	// A nonexistent directory must not panic or fail the caller.
	LogMutation(filepath.Join(t.TempDir(), "missing"), "add", 1, "x")
}
