// Package style holds the console presentation of gen-remix: lipgloss
// styles bound to an output writer, the progress reporter and the markdown
// renderer used for usage text.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles is the set of styles bound to one writer.
type Styles struct {
	Title   lipgloss.Style
	Package lipgloss.Style
	Version lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles for w. Colour is disabled when w is not a
// terminal or NO_COLOR is set.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) || os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title:   r.NewStyle().Foreground(PrimaryColor).Bold(true),
		Package: r.NewStyle().Bold(true),
		Version: r.NewStyle().Foreground(MutedColor),
		Path:    r.NewStyle().Foreground(PrimaryColor).Italic(true),
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
	}
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
