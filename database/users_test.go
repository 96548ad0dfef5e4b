package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "plaintext password must never be stored")
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "failed registration must not change the user count")
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, "Alice", "s3cret")
	require.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, "alice", "s3cret")
	require.NoError(t, err)

	user, err := store.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, wrongPassword := store.Authenticate(ctx, "alice", "nope")
	_, unknownUser := store.Authenticate(ctx, "bob", "nope")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error(),
		"wrong password and unknown user must be indistinguishable")
}
