package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapKeepsIdentityAndCause(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := ErrVehicleFetchFailed.Wrap(cause)

	assert.ErrorIs(t, err, ErrVehicleFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to fetch vehicles")
	assert.Contains(t, err.Error(), "connection refused")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "VEHICLE_FETCH_FAILED", appErr.ErrorCode())
}

func TestBaseError_WrapNil(t *testing.T) {
	assert.Same(t, ErrPushCredentialsMissing, ErrPushCredentialsMissing.Wrap(nil))
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("deadlock detected")

	err := NewDatabaseExecuteError(cause, "failed to upsert subscription")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to upsert subscription", err.Details())
}
