package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for w. Terminals get glamour output with
// an auto-detected style; anything else gets the source unchanged.
func RenderMarkdown(w io.Writer, content string) string {
	if !IsTerminal(w) {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
