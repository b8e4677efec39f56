package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krank-09/task-tracker/internal/clierr"
)

func TestValidateMarkStatus(t *testing.T) {
	assert.NoError(t, ValidateMarkStatus(StatusInProgress))
	assert.NoError(t, ValidateMarkStatus(StatusDone))

	// "todo" is only reachable through creation, never through a mark.
	for _, status := range []string{StatusTodo, "bogus", ""} {
		err := ValidateMarkStatus(status)
		require.Error(t, err)
		var cliErr *clierr.Error
		require.ErrorAs(t, err, &cliErr)
		assert.Equal(t, clierr.InvalidStatus, cliErr.Code)
	}
}

func TestValidateFilterStatus(t *testing.T) {
	for _, status := range Statuses() {
		assert.NoError(t, ValidateFilterStatus(status))
	}
	assert.Error(t, ValidateFilterStatus("archived"))
}

func TestNotFound(t *testing.T) {
	err := NotFound(7)
	assert.Equal(t, clierr.TaskNotFound, err.Code)
	assert.Equal(t, 7, err.Details["id"])
}
