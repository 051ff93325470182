// Package json prints command results as indented JSON for scripts
package json

import (
	"encoding/json"
	"io"

	"github.com/AllaVinner/dotman/pkg/errors"
)

// errorPayload is the shape of a failed command on stdout
type errorPayload struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messagePayload struct {
	Message string `json:"message"`
}

// Renderer encodes one JSON document per call
type Renderer struct {
	enc *json.Encoder
}

// New returns a Renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	return &Renderer{enc: enc}, nil
}

// RenderResult encodes result using its json tags
func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

// RenderError encodes err with its dotman code and details, when it has
// them.
func (r *Renderer) RenderError(err error) error {
	payload := errorPayload{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		payload.Code = code
		payload.Details = errors.GetErrorDetails(err)
	}
	return r.enc.Encode(payload)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(messagePayload{Message: msg})
}
