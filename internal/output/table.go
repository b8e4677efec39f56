package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/krank-09/task-tracker/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Status colors shared with the TUI column headers.
	statusStyles = map[string]lipgloss.Style{
		task.StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		task.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		task.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	}
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	statusStyles = map[string]lipgloss.Style{}
}

// StatusStyle returns the lipgloss style for a status, or a plain style.
func StatusStyle(status string) lipgloss.Style {
	if st, ok := statusStyles[status]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// TaskTable renders a list of tasks as a formatted table.
func TaskTable(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	const pad = 2
	idW, statusW := 4, 8
	for _, t := range tasks {
		idW = max(idW, len(strconv.Itoa(t.ID))+pad)
		statusW = max(statusW, len(t.Status)+pad)
	}
	const descW = 50

	header := fmt.Sprintf("%-*s %-*s %-*s %s", idW, "ID", statusW, "STATUS", descW, "DESCRIPTION", "UPDATED")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, t := range tasks {
		row := fmt.Sprintf("%-*d %s %-*s %s",
			idW, t.ID,
			padRight(styledStatus(t.Status), statusW),
			descW, truncate(firstLine(t.Description), descW-pad),
			dimStyle.Render(t.UpdatedAt))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// TaskDetail renders a single task with full detail.
func TaskDetail(w io.Writer, t *task.Task, description string) {
	titleLine := fmt.Sprintf("Task #%d", t.ID)
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))

	printField(w, "Status", styledStatus(t.Status))
	printField(w, "Created", t.CreatedAt)
	printField(w, "Updated", t.UpdatedAt)

	fmt.Fprintln(w)
	fmt.Fprintln(w, description)
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-9s %s\n", label+":", value)
}

func styledStatus(status string) string {
	return StatusStyle(status).Render(status)
}

// truncate shortens s to at most width cells, with an ellipsis. Slices
// by runes so multi-byte characters are never torn.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 { //nolint:mnd // room for the ellipsis
		if width > len(runes) {
			width = len(runes)
		}
		return string(runes[:width])
	}
	cut := width - 3 //nolint:mnd
	if cut > len(runes) {
		cut = len(runes)
	}
	return string(runes[:cut]) + "..."
}

// firstLine returns s up to its first newline. Descriptions may contain
// embedded newlines; tables show only the first line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// padRight pads s with spaces to the given visible width, accounting for
// ANSI escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
