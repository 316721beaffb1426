// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles provides styled output helpers for report rendering. Styling is
// resolved against the destination writer, so colors degrade to plain text
// when the writer is not a terminal.
type Styles struct {
	renderer *lipgloss.Renderer
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{renderer: lipgloss.NewRenderer(w)}
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.renderer.NewStyle().
		Bold(true).
		Render(text)
}

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string {
	return s.renderer.NewStyle().
		Faint(true).
		Render(text)
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.renderer.NewStyle().
		Foreground(lipgloss.Color("3")).
		Bold(true).
		Render(text)
}
