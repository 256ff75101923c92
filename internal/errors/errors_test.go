// internal/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidPromptError(t *testing.T) {
	err := NewInvalidPromptError("prompt must be a non-empty string")

	assert.True(t, IsValidationError(err))
	assert.False(t, IsProcessingError(err))
	assert.Equal(t, "INVALID_PROMPT", ErrorCode(err))
	assert.Equal(t, "prompt must be a non-empty string", err.Error())
}

func TestGenerationError(t *testing.T) {
	cause := fmt.Errorf("planner exploded")
	err := NewGenerationError("failed to plan scene", cause)

	assert.True(t, IsProcessingError(err))
	assert.False(t, IsValidationError(err))
	assert.Equal(t, "GENERATION_FAILED", ErrorCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "planner exploded")
}

func TestPredicatesThroughWrapping(t *testing.T) {
	inner := NewInvalidPromptError("bad prompt")
	wrapped := fmt.Errorf("handling request: %w", inner)

	assert.True(t, IsValidationError(wrapped))
	assert.Equal(t, "INVALID_PROMPT", ErrorCode(wrapped))
}

func TestPredicatesOnPlainErrors(t *testing.T) {
	err := stderrors.New("plain")

	assert.False(t, IsValidationError(err))
	assert.False(t, IsNotFoundError(err))
	assert.False(t, IsProcessingError(err))
	assert.Empty(t, ErrorCode(err))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ignored", ErrorTypeError))

	inner := NewNotFoundError("missing thing", nil)
	wrapped := WrapError(inner, "lookup failed", ErrorTypeError)

	assert.True(t, IsNotFoundError(wrapped))
	assert.Equal(t, "NOT_FOUND", ErrorCode(wrapped))
	assert.Contains(t, wrapped.Error(), "lookup failed")

	plain := stderrors.New("plain")
	wrapped = WrapError(plain, "stage failed", ErrorTypeError)
	assert.True(t, IsProcessingError(wrapped))
}
