package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"kayakoyan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type state string

func (s state) String() string { return string(s) }

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("order", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: order 123 (cause: database connection failed)", err.Error())
	})

	t.Run("sanitizes newlines in id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("listing", "a\nb")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("9 is not a valid status"))

		assert.Equal(t, "value is invalid: status (cause: 9 is not a valid status)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("proof path")

		assert.Equal(t, "value is required: proof path", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestIllegalTransitionError(t *testing.T) {
	err := errs.NewIllegalTransitionError(state("PendingPayment"), state("Completed"))

	assert.Equal(t, "PendingPayment", err.Current)
	assert.Equal(t, "Completed", err.Attempted)
	assert.Equal(t, "illegal transition: PendingPayment -> Completed", err.Error())
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	var target *errs.IllegalTransitionError
	require.ErrorAs(t, error(err), &target)
}

func TestUnauthorizedActionError(t *testing.T) {
	err := errs.NewUnauthorizedActionError("user 1", "verify payment of", "order 2")

	assert.Equal(t, "unauthorized action: user 1 may not verify payment of order 2", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthorizedAction)
	assert.NotErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestSentinels(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrObjectAlreadyExists,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrIllegalTransition,
		errs.ErrUnauthorizedAction,
		errs.ErrConcurrentModification,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}

	wrapped := fmt.Errorf("user ana@example.com: %w", errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, wrapped, errs.ErrObjectAlreadyExists)
}
