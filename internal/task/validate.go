package task

import "github.com/krank-09/task-tracker/internal/clierr"

// ValidateMarkStatus checks that a status is reachable via the mark
// commands ("in-progress" or "done").
func ValidateMarkStatus(status string) error {
	return validateStatus(status, MarkStatuses())
}

// ValidateFilterStatus checks that a status is valid as a list filter.
func ValidateFilterStatus(status string) error {
	return validateStatus(status, Statuses())
}

func validateStatus(status string, allowed []string) error {
	for _, s := range allowed {
		if s == status {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidStatus, "invalid status %q", status).
		WithDetails(map[string]any{
			"status":  status,
			"allowed": allowed,
		})
}

// ValidateTaskID returns a CLIError for non-numeric task ID input.
func ValidateTaskID(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidTaskID, "invalid task ID %q", input).
		WithDetails(map[string]any{"input": input})
}

// NotFound returns a CLIError for a task ID with no matching live task.
func NotFound(id int) *clierr.Error {
	return clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id).
		WithDetails(map[string]any{"id": id})
}
