// Package task defines the task model and its validation rules.
package task

// Valid status values, in lifecycle order.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Statuses returns the ordered list of valid status names.
func Statuses() []string {
	return []string{StatusTodo, StatusInProgress, StatusDone}
}

// MarkStatuses returns the statuses a task can be moved to after creation.
// New tasks always start at "todo"; there is no command surface for moving
// a task back to it.
func MarkStatuses() []string {
	return []string{StatusInProgress, StatusDone}
}

// Task represents one tracked item.
//
// The timestamp fields are opaque strings supplied by the store's clock;
// the model never parses or compares them.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`

	// Deleted marks the task soft-deleted. A deleted task stays in memory
	// for the life of the process so its ID is never reassigned, but it is
	// excluded from every read, every mutation, and the persisted file.
	Deleted bool `json:"-"`
}
