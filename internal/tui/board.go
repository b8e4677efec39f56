// Package tui implements the live read-only board view: one column per
// status, refreshed when the tasks file changes on disk.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krank-09/task-tracker/internal/config"
	"github.com/krank-09/task-tracker/internal/output"
	"github.com/krank-09/task-tracker/internal/store"
	"github.com/krank-09/task-tracker/internal/task"
)

const (
	columnGap   = 2
	boardChrome = 2 // blank line + status bar below the column area
)

// ReloadMsg asks the board to re-read the tasks file.
type ReloadMsg struct{}

type keyMap struct {
	Quit   key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	Left:   key.NewBinding(key.WithKeys("h", "left")),
	Right:  key.NewBinding(key.WithKeys("l", "right")),
	Up:     key.NewBinding(key.WithKeys("k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down")),
	Reload: key.NewBinding(key.WithKeys("r")),
}

var (
	selectedCardStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236"))
	cardStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// column groups tasks belonging to a single status.
type column struct {
	status string
	tasks  []*task.Task
}

// Board is the top-level bubbletea model.
type Board struct {
	cfg       *config.Config
	columns   []column
	total     int
	activeCol int
	activeRow int
	width     int
	height    int
	err       error
}

// NewBoard creates a new Board model from a config.
func NewBoard(cfg *config.Config) *Board {
	b := &Board{cfg: cfg}
	b.loadTasks()
	return b
}

// WatchPath returns the tasks file path the board should be refreshed on.
func (b *Board) WatchPath() string {
	return b.cfg.TasksPath()
}

// Init implements tea.Model.
func (b *Board) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil
	case ReloadMsg:
		b.loadTasks()
		return b, nil
	}
	return b, nil
}

func (b *Board) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return b, tea.Quit
	case key.Matches(msg, keys.Left):
		if b.activeCol > 0 {
			b.activeCol--
			b.clampRow()
		}
	case key.Matches(msg, keys.Right):
		if b.activeCol < len(b.columns)-1 {
			b.activeCol++
			b.clampRow()
		}
	case key.Matches(msg, keys.Up):
		if b.activeRow > 0 {
			b.activeRow--
		}
	case key.Matches(msg, keys.Down):
		if b.activeRow < len(b.columns[b.activeCol].tasks)-1 {
			b.activeRow++
		}
	case key.Matches(msg, keys.Reload):
		b.loadTasks()
	}
	return b, nil
}

// View implements tea.Model.
func (b *Board) View() string {
	if b.width == 0 {
		return "Loading..."
	}

	cols := make([]string, len(b.columns))
	for i := range b.columns {
		cols[i] = b.renderColumn(i)
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	return board + "\n\n" + b.statusBar()
}

func (b *Board) renderColumn(idx int) string {
	col := b.columns[idx]
	w := b.columnWidth()

	header := col.status + " (" + strconv.Itoa(len(col.tasks)) + ")"
	style := output.StatusStyle(col.status).Bold(true)
	lines := []string{
		padTo(style.Render(header), w),
		padTo(dimStyle.Render(strings.Repeat("─", min(len(header), w))), w),
	}

	maxRows := b.visibleRows()
	for row, t := range col.tasks {
		if row >= maxRows {
			lines = append(lines, padTo(dimStyle.Render("…"), w))
			break
		}
		text := truncate("#"+strconv.Itoa(t.ID)+" "+firstLine(t.Description), w-columnGap)
		st := cardStyle
		if idx == b.activeCol && row == b.activeRow {
			st = selectedCardStyle
		}
		lines = append(lines, padTo(st.Render(text), w))
	}

	return strings.Join(lines, "\n")
}

func (b *Board) statusBar() string {
	bar := dimStyle.Render("h/l columns · j/k cards · r reload · q quit")
	if b.err != nil {
		bar += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(b.err.Error())
	}
	bar += dimStyle.Render("  (" + strconv.Itoa(b.total) + " tasks)")
	return bar
}

func (b *Board) loadTasks() {
	// Columns always exist, even when the store cannot be read, so
	// navigation never runs off an empty board.
	cols := make([]column, 0, len(task.Statuses()))
	for _, status := range task.Statuses() {
		cols = append(cols, column{status: status})
	}
	b.total = 0

	s, err := store.Open(b.cfg.TasksPath())
	if err != nil {
		b.err = err
		b.columns = cols
		b.clampRow()
		return
	}
	b.err = nil

	for i := range cols {
		cols[i].tasks = s.List(cols[i].status)
		b.total += len(cols[i].tasks)
	}
	b.columns = cols
	b.clampRow()
}

func (b *Board) clampRow() {
	n := len(b.columns[b.activeCol].tasks)
	if b.activeRow >= n {
		b.activeRow = n - 1
	}
	if b.activeRow < 0 {
		b.activeRow = 0
	}
}

func (b *Board) columnWidth() int {
	if len(b.columns) == 0 {
		return b.width
	}
	return b.width / len(b.columns)
}

func (b *Board) visibleRows() int {
	rows := b.height - boardChrome - 2 // column header + rule
	if rows < 1 {
		rows = 1
	}
	return rows
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	// Slice by runes so multi-byte characters are never torn.
	runes := []rune(s)
	if width == 1 {
		return string(runes[:1])
	}
	cut := width - 1
	if cut > len(runes) {
		cut = len(runes)
	}
	return string(runes[:cut]) + "…"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// padTo pads s with spaces to the given visible width, ignoring ANSI codes.
func padTo(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
