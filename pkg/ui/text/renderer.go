// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/AllaVinner/dotman/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	view, ok := display.FromResult(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	return r.renderView(view)
}

func (r *Renderer) renderView(v *display.View) error {
	if _, err := fmt.Fprintln(r.output, v.Title); err != nil {
		return err
	}
	if v.Message != "" {
		if _, err := fmt.Fprintln(r.output, v.Message); err != nil {
			return err
		}
	}
	width := 0
	for _, row := range v.Rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}
	for _, row := range v.Rows {
		line := fmt.Sprintf("  %-*s  %s", width, row.Label, row.Detail)
		if row.Status != "" {
			line += "  [" + row.Status + "]"
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	if v.Footer != "" {
		if _, err := fmt.Fprintln(r.output, v.Footer); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
