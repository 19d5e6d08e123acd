package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(42))

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, int64(42), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "first pending", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: order first pending (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("orderId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: orderId (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("pizzaType length", 300, 0, 255)

		assert.Equal(t, "pizzaType length", err.ParamName)
		assert.Equal(t, 300, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 300 is pizzaType length, min value is 0, max value is 255", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("column limit")
		err := errs.NewValueIsOutOfRangeErrorWithCause("status length", 65, 0, 64, cause)

		assert.Equal(t,
			"value is invalid: 65 is status length, min value is 0, max value is 64 (cause: column limit)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("pizzaType")

	assert.Equal(t, "value is required: pizzaType", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("pizzaType", errors.New("missing field"))
	assert.Equal(t, "value is required: pizzaType (cause: missing field)", withCause.Error())
}

func TestStorageUnavailableError(t *testing.T) {
	t.Run("keeps cause for logging", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStorageUnavailableError("place order", cause)

		assert.Equal(t, "place order", err.Operation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "storage unavailable: place order (cause: connection refused)", err.Error())
	})

	t.Run("hides cause from errors.Is", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := fmt.Errorf("handler: %w", errs.NewStorageUnavailableError("claim order", cause))

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		require.NotErrorIs(t, err, cause)

		var storageErr *errs.StorageUnavailableError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "claim order", storageErr.Operation)
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", 1), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("age", 150, 0, 120), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewStorageUnavailableError("get order", nil), errs.ErrStorageUnavailable)
}
