package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/krank-09/task-tracker/internal/task"
)

// TaskCompact renders a list of tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, formatTaskLine(t))
	}
}

// TaskDetailCompact renders a single task with detail in compact format.
func TaskDetailCompact(w io.Writer, t *task.Task) {
	fmt.Fprintln(w, formatTaskLine(t))
	fmt.Fprintln(w, "  created:"+t.CreatedAt+" updated:"+t.UpdatedAt)

	if strings.ContainsRune(t.Description, '\n') {
		for _, line := range strings.Split(t.Description, "\n")[1:] {
			fmt.Fprintln(w, "  "+line)
		}
	}
}

// formatTaskLine builds the one-line representation of a task.
func formatTaskLine(t *task.Task) string {
	return "#" + strconv.Itoa(t.ID) + " [" + t.Status + "] " + firstLine(t.Description)
}
