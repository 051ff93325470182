// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/AllaVinner/dotman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{
			name:    "not_a_project",
			code:    errors.ErrNotAProject,
			message: "Path /tmp/x is not a dotman project. Please run `dotman init`.",
		},
		{
			name:    "already_initialized",
			code:    errors.ErrAlreadyInitialized,
			message: "Dotman project already initialized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrTargetNotConfigured, "Provided target %s is not configured in project %s.", "tmux", "/p")
	assert.Equal(t, "Provided target tmux is not configured in project /p.", err.Error())
	assert.Equal(t, errors.ErrTargetNotConfigured, err.Code)
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrFileAccess, "failed to read config")
	require.NotNil(t, err)
	assert.Equal(t, "failed to read config: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base))

	assert.Nil(t, errors.Wrap(nil, errors.ErrFileAccess, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileAccess, "nothing %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrDotfileOccupied, "occupied")
	wrapped := fmt.Errorf("setup failed: %w", err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrDotfileOccupied))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrDotfileOccupied))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrTargetExists))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrDotfileOccupied))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrKindMismatch, errors.GetErrorCode(errors.New(errors.ErrKindMismatch, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	err := errors.New(errors.ErrConfigCorrupt, "first")
	other := errors.New(errors.ErrConfigCorrupt, "second")

	assert.True(t, stderrors.Is(err, other))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrInternal, "x")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTargetExists, "exists").
		WithDetail("target", "bashrc")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "bashrc", details["target"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
