package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("ü", 40)

	got := truncate(long, 20)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, 20, utf8.RuneCountInString(got))

	assert.Equal(t, "", truncate(long, 0))
	assert.Equal(t, "short", truncate("short", 20))
}
