package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register("Alice", "alice@example.com", "correct horse", false)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Authenticate("alice@example.com", "correct horse")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice@example.com", resp.User.Email)
		assert.Empty(t, resp.User.PasswordHash)
	})

	t.Run("email lookup is case-insensitive at the service edge", func(t *testing.T) {
		resp, err := svc.Authenticate("ALICE@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Authenticate("", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
