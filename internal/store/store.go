// Package store maintains the in-memory task collection and enforces
// its mutation rules: ID assignment, the status state machine, and
// soft deletion. Every mutation persists the full visible collection
// through the taskfile codec before returning.
package store

import (
	"fmt"
	"time"

	"github.com/krank-09/task-tracker/internal/task"
	"github.com/krank-09/task-tracker/internal/taskfile"
)

// NowFunc supplies timestamps for task creation and mutation. The store
// treats the result as opaque; it only has to be non-decreasing between
// successive calls within one process run.
type NowFunc func() string

func rfc3339Now() string {
	return time.Now().Format(time.RFC3339)
}

// Option configures a Store at open time.
type Option func(*Store)

// WithNow overrides the store's timestamp source.
func WithNow(fn NowFunc) Option {
	return func(s *Store) { s.now = fn }
}

// Store owns the ordered task collection (insertion order = creation
// order) and the next-ID counter. It is the exclusive owner of all Task
// instances it holds; single process, single goroutine.
type Store struct {
	path   string
	tasks  []*task.Task
	nextID int
	now    NowFunc
}

// Open loads the task collection from the file at path. A missing file
// yields an empty store; unparseable content surfaces the codec's
// corrupt-store error. The next ID is derived from the maximum ID found
// in the file, never from a stored counter.
func Open(path string, opts ...Option) (*Store, error) {
	tasks, err := taskfile.Load(path)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path, tasks: tasks, nextID: 1, now: rfc3339Now}
	for _, t := range tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NextID returns the ID the next created task will receive.
func (s *Store) NextID() int { return s.nextID }

// Create adds a new task with status "todo" and persists the collection.
func (s *Store) Create(description string) (*task.Task, error) {
	now := s.now()
	t := &task.Task{
		ID:          s.nextID,
		Description: description,
		Status:      task.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)

	if err := s.save(); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateDescription replaces the description of a live task and persists.
// Status and creation time are untouched.
func (s *Store) UpdateDescription(id int, description string) (*task.Task, error) {
	t, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	t.Description = description
	t.UpdatedAt = s.now()

	if err := s.save(); err != nil {
		return nil, err
	}
	return t, nil
}

// SetStatus moves a live task to "in-progress" or "done" and persists.
// Moving a task back to "todo" is not supported; the only way into that
// status is Create.
func (s *Store) SetStatus(id int, status string) (*task.Task, error) {
	if err := task.ValidateMarkStatus(status); err != nil {
		return nil, err
	}

	t, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	t.Status = status
	t.UpdatedAt = s.now()

	if err := s.save(); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete soft-deletes a live task and persists. The task stays in memory
// so its ID is never reassigned, but it disappears from the file and
// from every subsequent lookup; deleting the same ID twice reports
// not found.
func (s *Store) Delete(id int) (*task.Task, error) {
	t, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	t.Deleted = true

	if err := s.save(); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the live tasks in creation order. A non-empty filter
// restricts the result to tasks with that status. Each call recomputes
// from current state; an empty result is a valid, non-error outcome.
func (s *Store) List(filter string) []*task.Task {
	var result []*task.Task
	for _, t := range s.tasks {
		if t.Deleted {
			continue
		}
		if filter != "" && t.Status != filter {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Find returns the live task with the given ID, scanning in insertion
// order. Deleted tasks are never returned.
func (s *Store) Find(id int) (*task.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id && !t.Deleted {
			return t, nil
		}
	}
	return nil, task.NotFound(id)
}

func (s *Store) save() error {
	if err := taskfile.Save(s.path, s.tasks); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}
