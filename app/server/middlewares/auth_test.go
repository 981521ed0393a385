package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kokoro-diary/app/server/jwt"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runAuth(t *testing.T, j *jwt.JWT, authHeader string) (int, *jwt.User) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/diaries", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *jwt.User
	handler := Auth(j, zap.NewNop())(func(c echo.Context) error {
		seen, _ = c.Get(ContextKeyUser).(*jwt.User)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	return rec.Code, seen
}

func TestAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	code, seen := runAuth(t, j, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Nil(t, seen)
}

// A malformed header means no credential was supplied at all: always 401,
// never 403.
func TestAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	token, err := j.Sign(&jwt.User{ID: 1, Name: "alice", Expires: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	for _, header := range []string{
		token,                // no scheme
		"bearer " + token,    // scheme must be literally "Bearer"
		"Token " + token,     // wrong scheme
		"Bearer a b",         // three parts
		"Bearer " + token + " extra",
	} {
		code, seen := runAuth(t, j, header)
		assert.Equal(t, http.StatusUnauthorized, code, "header %q", header)
		assert.Nil(t, seen, "header %q", header)
	}
}

// A credential that was supplied but rejected is 403.
func TestAuth_RejectedCredential(t *testing.T) {
	t.Parallel()

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	expired, err := j.Sign(&jwt.User{ID: 1, Name: "alice", Expires: time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, err)

	other, err := jwt.New("other-secret")
	require.NoError(t, err)
	forged, err := other.Sign(&jwt.User{ID: 1, Name: "alice", Expires: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	for _, token := range []string{"garbage", expired, forged} {
		code, seen := runAuth(t, j, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, code, "token %q", token)
		assert.Nil(t, seen, "token %q", token)
	}
}

func TestAuth_ValidCredential(t *testing.T) {
	t.Parallel()

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	token, err := j.Sign(&jwt.User{ID: 7, Name: "alice", Expires: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	code, seen := runAuth(t, j, "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, seen)
	assert.Equal(t, uint(7), seen.ID)
	assert.Equal(t, "alice", seen.Name)
}
