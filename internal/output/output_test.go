package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krank-09/task-tracker/internal/task"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name                     string
		jsonF, tableF, compactF  bool
		env, fallback            string
		want                     Format
	}{
		{name: "default is table", want: FormatTable},
		{name: "json flag", jsonF: true, want: FormatJSON},
		{name: "compact flag", compactF: true, want: FormatCompact},
		{name: "flag beats env", jsonF: true, env: "compact", want: FormatJSON},
		{name: "env beats config", env: "json", fallback: "compact", want: FormatJSON},
		{name: "oneline env alias", env: "oneline", want: FormatCompact},
		{name: "config fallback", fallback: "compact", want: FormatCompact},
		{name: "unknown env ignored", env: "xml", fallback: "json", want: FormatJSON},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVar, tc.env)
			assert.Equal(t, tc.want, Detect(tc.jsonF, tc.tableF, tc.compactF, tc.fallback))
		})
	}
}

func TestTaskCompact(t *testing.T) {
	var buf bytes.Buffer
	TaskCompact(&buf, []*task.Task{
		{ID: 1, Description: "buy milk", Status: task.StatusTodo, CreatedAt: "a", UpdatedAt: "a"},
		{ID: 3, Description: "multi\nline", Status: task.StatusDone, CreatedAt: "b", UpdatedAt: "c"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "#1 [todo] buy milk", lines[0])
	assert.Equal(t, "#3 [done] multi", lines[1])
}

func TestJSONError(t *testing.T) {
	var buf bytes.Buffer
	JSONError(&buf, "TASK_NOT_FOUND", "task not found: #9", map[string]any{"id": 9})

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "TASK_NOT_FOUND", resp.Code)
	assert.Equal(t, "task not found: #9", resp.Error)
	assert.EqualValues(t, 9, resp.Details["id"])
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("ü", 60)

	got := truncate(long, 48)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, 48, utf8.RuneCountInString(got)) // 45 runes plus the ellipsis

	assert.Equal(t, "ünïcode", truncate("ünïcode", 48))
}

func TestTaskTableShowsFirstLineOnly(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	TaskTable(&buf, []*task.Task{
		{ID: 1, Description: "first\nsecond", Status: task.StatusTodo, CreatedAt: "a", UpdatedAt: "a"},
	})

	out := buf.String()
	assert.Contains(t, out, "first")
	assert.NotContains(t, out, "second")
}
