package session

import (
	"path/filepath"
	"testing"
	"time"

	"kokoro-diary/app/client/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, userName string, expires time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   uint(1),
		"userName": userName,
		"exp":      expires.Unix(),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return token
}

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "token"))
}

func TestNew_AnonymousWhenNoToken(t *testing.T) {
	t.Parallel()

	sess, err := New(newStore(t))
	require.NoError(t, err)

	authenticated, userName := sess.Current()
	assert.False(t, authenticated)
	assert.Empty(t, userName)
}

func TestLogin_PersistsThenFlipsState(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	sess, err := New(store)
	require.NoError(t, err)

	token := makeToken(t, "alice", time.Now().Add(time.Hour))
	require.NoError(t, sess.Login(token))

	authenticated, userName := sess.Current()
	assert.True(t, authenticated)
	assert.Equal(t, "alice", userName)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	// A fresh session over the same store re-derives the same state.
	sess2, err := New(store)
	require.NoError(t, err)
	authenticated, userName = sess2.Current()
	assert.True(t, authenticated)
	assert.Equal(t, "alice", userName)
}

func TestLogout_ClearsStoreAndState(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	sess, err := New(store)
	require.NoError(t, err)

	require.NoError(t, sess.Login(makeToken(t, "alice", time.Now().Add(time.Hour))))
	require.NoError(t, sess.Logout())

	authenticated, userName := sess.Current()
	assert.False(t, authenticated)
	assert.Empty(t, userName)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

// Startup only checks token presence; an expired token counts as
// authenticated until the server rejects it.
func TestNew_ExpiredTokenStillAuthenticated(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	require.NoError(t, store.Save(makeToken(t, "alice", time.Now().Add(-time.Hour))))

	sess, err := New(store)
	require.NoError(t, err)

	authenticated, userName := sess.Current()
	assert.True(t, authenticated)
	assert.Equal(t, "alice", userName)
}

func TestUserNameFromToken_Garbage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, UserNameFromToken("not-a-jwt"))
	assert.Empty(t, UserNameFromToken(""))
}
