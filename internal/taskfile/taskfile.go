// Package taskfile implements the on-disk JSON representation of the
// task list: a single UTF-8 document whose top level is an array of
// task records in creation order.
package taskfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krank-09/task-tracker/internal/task"
)

// DefaultFileName is the default name of the backing file.
const DefaultFileName = "tasks.json"

// ErrCorrupt marks a backing file whose content could not be parsed.
// Decode surfaces it instead of silently emptying the store; callers
// decide how to report it.
var ErrCorrupt = errors.New("corrupt tasks file")

// Encode serializes the visible (non-deleted) tasks as an indented JSON
// array. Soft deletion becomes physical omission here: deleted tasks are
// never emitted. An empty task set encodes as "[]", never "null".
func Encode(tasks []*task.Task) ([]byte, error) {
	records := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Deleted {
			records = append(records, t)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a tasks document. Empty or whitespace-only content and an
// explicit "[]" both yield an empty sequence (a truncated write degrades
// to an empty store rather than an error). Any other unparseable content
// returns an error wrapping ErrCorrupt.
func Decode(data []byte) ([]*task.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var tasks []*task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for i, t := range tasks {
		if t == nil {
			return nil, fmt.Errorf("%w: record %d is null", ErrCorrupt, i)
		}
		if t.ID < 1 {
			return nil, fmt.Errorf("%w: record %d has invalid id %d", ErrCorrupt, i, t.ID)
		}
	}
	return tasks, nil
}

// Load reads and decodes the tasks file at path.
// A missing file yields an empty sequence without error.
func Load(path string) ([]*task.Task, error) {
	data, err := os.ReadFile(path) //nolint:gosec // tasks path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading tasks file: %w", err)
	}

	tasks, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return tasks, nil
}

// Save encodes the visible tasks and overwrites the file at path.
// The document is written to a temp file in the same directory and
// renamed into place, so a crash mid-write cannot truncate the store.
func Save(path string, tasks []*task.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing tasks file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing tasks file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing tasks file: %w", err)
	}
	return nil
}
