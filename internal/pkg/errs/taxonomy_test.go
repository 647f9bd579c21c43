package errs_test

import (
	"errors"
	"testing"

	"gamestore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	t.Run("returns nil when nothing failed", func(t *testing.T) {
		require.NoError(t, errs.Validation(nil, nil))
	})

	t.Run("flattens joined errors into messages", func(t *testing.T) {
		joined := errors.Join(errors.New("name is required"), nil, errors.New("email is invalid"))

		err := errs.Validation(joined, errors.New("secret is too short"))

		var v *errs.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Equal(t, []string{"name is required", "email is invalid", "secret is too short"}, v.Messages)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t,
			"validation failed: name is required; email is invalid; secret is too short",
			err.Error())
	})

	t.Run("keeps nested validation messages", func(t *testing.T) {
		inner := errs.NewValidationError("a", "b")

		err := errs.Validation(errors.Join(inner, errors.New("c")))

		var v *errs.ValidationError
		require.ErrorAs(t, err, &v)
		assert.Equal(t, []string{"a", "b", "c"}, v.Messages)
	})
}

func TestConflictError(t *testing.T) {
	sentinel := errors.New("already owned")

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewConflictError("email already registered")

		assert.Equal(t, "conflict: email already registered", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("matches both conflict and cause", func(t *testing.T) {
		err := errs.NewConflictErrorWithCause("game is already in the library", sentinel)

		require.ErrorIs(t, err, errs.ErrConflict)
		require.ErrorIs(t, err, sentinel)
		assert.Equal(t, "conflict: game is already in the library (cause: already owned)", err.Error())
	})
}

func TestFatalInconsistencyError(t *testing.T) {
	cause := errors.New("commit affected no rows")
	var err error = errs.NewFatalInconsistencyError("register owner", cause)

	var fatal *errs.FatalInconsistencyError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "register owner", fatal.Operation)
	require.ErrorIs(t, err, errs.ErrFatalInconsistency)
	require.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, errs.ErrValidation))
	assert.Equal(t,
		"fatal inconsistency: register owner (cause: commit affected no rows)",
		err.Error())
}
