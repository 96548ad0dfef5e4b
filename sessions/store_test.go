package sessions

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	store := New(ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(store.Close)
	return store
}

func TestCreateAndResolve(t *testing.T) {
	store := newTestStore(t, time.Hour)

	token := store.Create("user-1")
	require.NotEmpty(t, token)

	userID, ok := store.UserID(token)
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
}

func TestTokensAreUnique(t *testing.T) {
	store := newTestStore(t, time.Hour)
	assert.NotEqual(t, store.Create("user-1"), store.Create("user-1"))
}

func TestUnknownToken(t *testing.T) {
	store := newTestStore(t, time.Hour)
	_, ok := store.UserID("bogus")
	assert.False(t, ok)
}

func TestDestroyIsIdempotent(t *testing.T) {
	store := newTestStore(t, time.Hour)

	token := store.Create("user-1")
	store.Destroy(token)
	store.Destroy(token)

	_, ok := store.UserID(token)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestExpiredSessionIsRejected(t *testing.T) {
	store := newTestStore(t, 10*time.Millisecond)

	token := store.Create("user-1")
	time.Sleep(20 * time.Millisecond)

	_, ok := store.UserID(token)
	assert.False(t, ok)
}
