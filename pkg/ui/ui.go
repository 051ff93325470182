// Package ui prints command results. A result is rendered as rich terminal
// output, plain text or JSON, chosen by --format, the settings file or the
// output stream, in that order.
package ui

import (
	"io"

	"github.com/AllaVinner/dotman/pkg/logging"
	"github.com/AllaVinner/dotman/pkg/ui/json"
	"github.com/AllaVinner/dotman/pkg/ui/terminal"
	"github.com/AllaVinner/dotman/pkg/ui/text"
)

// Renderer prints results, errors and messages in one format
type Renderer interface {
	// RenderResult prints a command result (status, setup, sync, edit, add, init)
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer builds the renderer for output. The first non-empty name in
// names wins, so callers pass the flag value before the settings value.
// When none is set, or the winner is auto, the format is detected from
// output.
func NewRenderer(output io.Writer, names ...string) (Renderer, error) {
	name := ""
	for _, n := range names {
		if n != "" {
			name = n
			break
		}
	}
	format, err := ParseFormat(name)
	if err != nil {
		return nil, err
	}
	if format == FormatAuto {
		format = Detect(output)
	}
	logger := logging.GetLogger("ui")
	logger.Trace().Str("format", string(format)).Msg("Renderer selected")

	switch format {
	case FormatTerminal:
		return terminal.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return text.New(output)
	}
}
