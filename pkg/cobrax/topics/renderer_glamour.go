package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other formats are
// returned unchanged.
type GlamourRenderer struct {
	Style string // "auto", "notty", a glamour style name, or a path to a style file
	Width int    // word wrap width, 0 keeps glamour's default

	term *glamour.TermRenderer
}

// NewGlamourRenderer creates a markdown renderer that detects the terminal
// style, falling back to unstyled output when NO_COLOR is set
func NewGlamourRenderer() *GlamourRenderer {
	style := "auto"
	if os.Getenv("NO_COLOR") != "" {
		style = "notty"
	}
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to terminal output
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	term, err := r.renderer()
	if err != nil {
		return content
	}
	rendered, err := term.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (r *GlamourRenderer) renderer() (*glamour.TermRenderer, error) {
	if r.term != nil {
		return r.term, nil
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	term, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return nil, err
	}
	r.term = term
	return term, nil
}
