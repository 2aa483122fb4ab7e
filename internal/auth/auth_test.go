package auth

import (
	"context"
	"testing"
	"time"

	"hardware_store/internal/domain"
	"hardware_store/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore builds an auth store over a fresh in-memory backend
func newTestStore() (*Store, context.Context) {
	return NewStore(storage.NewMemoryStore(), "admin", "SagarAdmin2025!"), context.Background()
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s, ctx := newTestStore()

	result := s.Register(ctx, "alice", "secret123")
	require.True(t, result.Success, result.Message)

	// Stored password must not be the plaintext
	users := s.StoredUsers(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.NotEqual(t, "secret123", users[0].Password)

	assert.True(t, s.Authenticate(ctx, "alice", "secret123").Success)
	assert.False(t, s.Authenticate(ctx, "alice", "wrong").Success)
	assert.False(t, s.Authenticate(ctx, "nobody", "secret123").Success)
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	s, ctx := newTestStore()

	result := s.Register(ctx, "   ", "secret123")
	assert.False(t, result.Success)
	assert.Equal(t, "Username is required", result.Message)

	result = s.Register(ctx, "alice", " ")
	assert.False(t, result.Success)
	assert.Equal(t, "Password is required", result.Message)
}

func TestRegisterUniquenessIsCaseInsensitive(t *testing.T) {
	s, ctx := newTestStore()

	require.True(t, s.Register(ctx, "admin", "secret123").Success)

	// Registering "Admin" after "admin" exists must fail
	result := s.Register(ctx, "Admin", "othersecret")
	assert.False(t, result.Success)
	assert.Equal(t, "Username already exists", result.Message)
}

func TestAuthenticateMatchesUsernameCaseInsensitively(t *testing.T) {
	s, ctx := newTestStore()

	require.True(t, s.Register(ctx, "alice", "secret123").Success)
	assert.True(t, s.Authenticate(ctx, "ALICE", "secret123").Success)
}

func TestAuthenticateAdmin(t *testing.T) {
	s, _ := newTestStore()

	assert.True(t, s.AuthenticateAdmin("admin", "SagarAdmin2025!").Success)
	assert.False(t, s.AuthenticateAdmin("admin", "wrong").Success)
	assert.False(t, s.AuthenticateAdmin("root", "SagarAdmin2025!").Success)
}

func TestSessionLifecycle(t *testing.T) {
	s, ctx := newTestStore()

	assert.Nil(t, s.CurrentUser(ctx))
	assert.False(t, s.IsLoggedIn(ctx))

	s.SetCurrentUser(ctx, domain.SessionUser{Username: "alice"})
	require.NotNil(t, s.CurrentUser(ctx))
	assert.Equal(t, "alice", s.CurrentUser(ctx).Username)
	assert.True(t, s.IsLoggedIn(ctx))

	s.ClearCurrentUser(ctx)
	assert.Nil(t, s.CurrentUser(ctx))
	assert.False(t, s.IsLoggedIn(ctx))
}

func TestAdminSessionExpiresLazily(t *testing.T) {
	s, ctx := newTestStore()

	assert.False(t, s.IsAdmin(ctx))

	s.SetAdminSession(ctx)
	assert.True(t, s.IsAdmin(ctx))

	// Backdate the session past the 24-hour window
	stale := domain.AdminSession{
		IsAdmin:   true,
		Timestamp: time.Now().Add(-25 * time.Hour).UnixMilli(),
	}
	require.NoError(t, s.kv.Set(ctx, adminSessionKey, stale))

	// The expired session is cleared on read
	assert.False(t, s.IsAdmin(ctx))
	var remaining domain.AdminSession
	found, err := s.kv.Get(ctx, adminSessionKey, &remaining)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateUsernameKeepsSessionConsistent(t *testing.T) {
	s, ctx := newTestStore()

	require.True(t, s.Register(ctx, "alice", "secret123").Success)
	s.SetCurrentUser(ctx, domain.SessionUser{Username: "alice"})

	result := s.UpdateUsername(ctx, "alice", "alicia")
	require.True(t, result.Success, result.Message)

	// The active session follows the rename
	require.NotNil(t, s.CurrentUser(ctx))
	assert.Equal(t, "alicia", s.CurrentUser(ctx).Username)
}

func TestUpdateUsernameValidation(t *testing.T) {
	s, ctx := newTestStore()

	require.True(t, s.Register(ctx, "alice", "secret123").Success)
	require.True(t, s.Register(ctx, "bob", "secret123").Success)

	assert.Equal(t, "New username must be different", s.UpdateUsername(ctx, "alice", "ALICE").Message)
	assert.Equal(t, "New username already exists", s.UpdateUsername(ctx, "alice", "Bob").Message)
	assert.Equal(t, "User not found", s.UpdateUsername(ctx, "carol", "carla").Message)
}

func TestUpdatePassword(t *testing.T) {
	s, ctx := newTestStore()

	require.True(t, s.Register(ctx, "alice", "secret123").Success)
	require.True(t, s.UpdatePassword(ctx, "Alice", "newsecret").Success)

	assert.False(t, s.Authenticate(ctx, "alice", "secret123").Success)
	assert.True(t, s.Authenticate(ctx, "alice", "newsecret").Success)

	assert.Equal(t, "User not found", s.UpdatePassword(ctx, "carol", "whatever").Message)
}

func TestDeleteUserClearsOwnSessionOnly(t *testing.T) {
	s, ctx := newTestStore()

	require.True(t, s.Register(ctx, "alice", "secret123").Success)
	require.True(t, s.Register(ctx, "bob", "secret123").Success)
	s.SetCurrentUser(ctx, domain.SessionUser{Username: "alice"})

	// Deleting a different user leaves the session alone
	require.True(t, s.DeleteUser(ctx, "bob").Success)
	assert.True(t, s.IsLoggedIn(ctx))

	// Deleting the logged-in user clears the session
	require.True(t, s.DeleteUser(ctx, "ALICE").Success)
	assert.False(t, s.IsLoggedIn(ctx))
	assert.Empty(t, s.StoredUsers(ctx))
}

func TestAllUsersOmitsPasswords(t *testing.T) {
	s, ctx := newTestStore()

	require.True(t, s.Register(ctx, "alice", "secret123").Success)
	require.True(t, s.Register(ctx, "bob", "secret123").Success)

	users := s.AllUsers(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestLogoutAllClearsBothSessions(t *testing.T) {
	s, ctx := newTestStore()

	s.SetCurrentUser(ctx, domain.SessionUser{Username: "alice"})
	s.SetAdminSession(ctx)

	s.LogoutAll(ctx)
	assert.False(t, s.IsLoggedIn(ctx))
	assert.False(t, s.IsAdmin(ctx))
}
