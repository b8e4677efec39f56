// Package history records task mutations in an append-only activity log
// beside the tasks file.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// FileName is the activity log file name within the tracker directory.
	FileName = "activity.jsonl"

	logFileMode   = 0o600
	maxLogEntries = 10000 // oldest entries are dropped past this size
)

// Entry is a single activity log record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	TaskID    int       `json:"task_id"`
	Detail    string    `json:"detail,omitempty"`
}

// Append writes an entry to the activity log in dir, creating the log if
// needed and trimming it when it grows past maxLogEntries.
func Append(dir string, entry Entry) error {
	path := filepath.Join(dir, FileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // log path from trusted tracker dir
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling log entry: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}

	// Trim is best-effort; a failed trim never fails the append.
	_ = trimIfNeeded(path)
	return nil
}

// LogMutation appends an activity entry for a task mutation. Errors are
// silently discarded because logging must never fail a command.
func LogMutation(dir, action string, taskID int, detail string) {
	_ = Append(dir, Entry{
		Timestamp: time.Now(),
		Action:    action,
		TaskID:    taskID,
		Detail:    detail,
	})
}

// Read returns all entries currently in the activity log in dir.
// A missing log yields an empty slice.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, FileName)) //nolint:gosec // log path from trusted tracker dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			// Skip lines torn by a crash mid-append.
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading activity log: %w", err)
	}
	return entries, nil
}

// trimIfNeeded rewrites the log keeping only the most recent entries when
// it has grown past maxLogEntries lines.
func trimIfNeeded(path string) error {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(lines) <= maxLogEntries {
		return nil
	}
	lines = lines[len(lines)-maxLogEntries:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(buf.String()), logFileMode)
}
