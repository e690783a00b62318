package user_test

import (
	"testing"

	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/user"
	"kayakoyan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should hash the password and normalise the email", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), " Ana ", "Ana <Ana@Example.com>", "s3cret-pass", user.Worker)

		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name())
		assert.Equal(t, "ana@example.com", u.Email())
		assert.NotEqual(t, []byte("s3cret-pass"), u.PasswordHash())
	})

	t.Run("should reject short passwords", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Ana", "ana@example.com", "short", user.Worker)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("should join field errors", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "not-an-email", "long-enough", user.UnknownRole)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestUser_Authenticate(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Ben", "ben@example.com", "correct-horse", user.Customer)
	require.NoError(t, err)

	t.Run("should return the actor", func(t *testing.T) {
		actor, err := u.Authenticate("correct-horse")

		require.NoError(t, err)
		assert.True(t, actor.Is(u.ID()))
		assert.Equal(t, user.Customer, actor.Role())
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		_, err := u.Authenticate("wrong")

		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}

func TestRole(t *testing.T) {
	for _, r := range []user.Role{user.Admin, user.Worker, user.Customer} {
		parsed, ok := user.ParseRole(r.String())
		require.True(t, ok)
		assert.Equal(t, r, parsed)
	}

	_, ok := user.ParseRole("guest")
	assert.False(t, ok)

	assert.True(t, user.Worker.In(user.Admin, user.Worker))
	assert.False(t, user.Customer.In(user.Admin, user.Worker))
	assert.False(t, user.UnknownRole.In(user.UnknownRole))
}

func TestActor(t *testing.T) {
	t.Run("should refuse the zero value", func(t *testing.T) {
		var a user.Actor

		require.ErrorIs(t, a.Validate(), user.ErrActorIsNotConstructed)
		assert.False(t, a.Is(kernel.UUID{}))
	})

	t.Run("should fail on an unknown role", func(t *testing.T) {
		_, err := user.NewActor(kernel.NewUUID(), user.UnknownRole)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
