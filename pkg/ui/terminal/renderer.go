// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/AllaVinner/dotman/pkg/ui/display"
	"github.com/AllaVinner/dotman/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	view, ok := display.FromResult(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	_, err := fmt.Fprintln(r.output, renderView(view))
	return err
}

func renderView(v *display.View) string {
	var lines []string
	lines = append(lines, styles.GetStyle("Header").Render(v.Title))
	if v.Message != "" {
		lines = append(lines, styles.GetStyle("Info").Render(v.Message))
	}

	width := 0
	for _, row := range v.Rows {
		if w := lipgloss.Width(row.Label); w > width {
			width = w
		}
	}
	label := styles.GetStyle("Target").Width(width)
	for _, row := range v.Rows {
		parts := []string{
			label.Render(row.Label),
			styles.GetStyle("FilePath").Render(row.Detail),
		}
		if row.Status != "" {
			parts = append(parts, styles.ForState(row.State).Render(row.Status))
		}
		lines = append(lines, styles.GetStyle("Indent").Render(strings.Join(parts, "  ")))
	}

	if v.Footer != "" {
		lines = append(lines, styles.GetStyle("Muted").Render(v.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render("Error: "+err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
