package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	cause := New("connection refused")

	err := Retryable(Wrap(cause, "list vehicles"))
	assert.True(t, IsRetryable(err))
	assert.True(t, Is(err, cause))
	assert.Equal(t, "retryable: list vehicles: connection refused", err.Error())

	assert.True(t, IsRetryable(fmt.Errorf("run: %w", err)))
	assert.False(t, IsRetryable(cause))
	assert.NoError(t, Retryable(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := New("boom")

	assert.True(t, Is(Wrapf(cause, "attempt %d", 2), cause))
	assert.True(t, Is(WithStack(cause), cause))
	assert.EqualError(t, Errorf("unknown transport: %s", "sms"), "unknown transport: sms")
}
