package output

import (
	"github.com/charmbracelet/glamour"
)

const markdownWrapWidth = 80

// RenderMarkdown renders a task description as terminal markdown.
// On renderer failure the raw text is returned so output never degrades
// to an error for a display concern.
func RenderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrapWidth),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
