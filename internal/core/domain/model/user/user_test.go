package user_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("starts with user role", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "a@example.com", "Ana", time.Now())
		require.NoError(t, err)

		assert.Equal(t, user.RoleUser, u.Role())
		require.NoError(t, u.Validate())
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		now := time.Now()
		_, err := user.NewUser(kernel.NewUUID(), "", "Ana", now)
		require.Error(t, err)

		_, err = user.NewUser(kernel.NewUUID(), "a@example.com", "", now)
		require.Error(t, err)

		_, err = user.NewUser(kernel.UUID{}, "a@example.com", "Ana", now)
		require.Error(t, err)
	})
}

func TestUser_Validate_ZeroValue(t *testing.T) {
	var u user.User
	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}

func TestUser_SetRole(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "a@example.com", "Ana", time.Now())
	require.NoError(t, err)

	require.NoError(t, u.SetRole(user.RoleAdmin))
	assert.Equal(t, user.RoleAdmin, u.Role())

	require.Error(t, u.SetRole(user.RoleUnknown))
	assert.Equal(t, user.RoleAdmin, u.Role())
}

func TestUser_PromoteToRider(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "a@example.com", "Ana", time.Now())
	require.NoError(t, err)

	u.PromoteToRider()
	assert.Equal(t, user.RoleRider, u.Role())
}

func TestRoleRoundTrip(t *testing.T) {
	for _, r := range []user.Role{user.RoleUser, user.RoleRider, user.RoleAdmin} {
		parsed, err := user.RoleFromString(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := user.RoleFromString("superadmin")
	require.Error(t, err)

	_, err = user.RoleFromString("")
	require.Error(t, err)
}
