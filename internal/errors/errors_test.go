package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Something failed", "Try again")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Something failed", err.Message)
	assert.Equal(t, "Try again", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "message only",
			err:      New(ErrStats, "Stats unavailable", ""),
			contains: []string{"✗ Stats unavailable"},
		},
		{
			name:     "message and suggestion",
			err:      New(ErrConfig, "Bad config", "Fix the YAML"),
			contains: []string{"✗ Bad config", "Fix the YAML"},
		},
		{
			name:     "wrapped cause appears",
			err:      WrapWithCode(fmt.Errorf("underlying"), ErrRender, "Render failed", "Check the request"),
			contains: []string{"✗ Render failed", "underlying", "Check the request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestWrapDefaultsToStats(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, "Sampling failed")

	assert.Equal(t, ErrStats, err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := WrapWithCode(cause, ErrExec, "Spawn failed", "")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsCode(t *testing.T) {
	err := New(ErrRender, "Render failed", "")

	assert.True(t, IsCode(err, ErrRender))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrRender))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrRender))

	// Wrapped structured errors are still found through the chain.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsCode(wrapped, ErrRender))
}
