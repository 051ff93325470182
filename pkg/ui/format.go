package ui

import (
	"io"
	"os"
	"strings"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format names an output format as it appears in --format and in the
// [output] table of the settings file.
type Format string

const (
	// FormatAuto picks term or text from the output stream
	FormatAuto     Format = "auto"
	FormatTerminal Format = "term"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Formats lists the accepted format names, for flag help and completion
func Formats() []string {
	return []string{string(FormatAuto), string(FormatTerminal), string(FormatText), string(FormatJSON)}
}

// ParseFormat accepts a format name or one of its aliases. The empty name
// is auto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput,
		"unknown format %q, expected one of %s", name, strings.Join(Formats(), ", ")).
		WithDetail("format", name)
}

// Detect settles auto for output. Only a color capable terminal gets term;
// pipes, files, buffers and NO_COLOR get text.
func Detect(output io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	file, ok := output.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(file).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
