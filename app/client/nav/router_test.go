package nav

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"kokoro-diary/app/client/session"
	"kokoro-diary/app/client/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, userName string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   uint(1),
		"userName": userName,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return token
}

type recorder struct {
	views  []View
	params [][]string
}

func (r *recorder) handler(view View) Handler {
	return func(_ context.Context, params ...string) error {
		r.views = append(r.views, view)
		r.params = append(r.params, params)
		return nil
	}
}

func newRouter(t *testing.T) (*Router, *session.Session, *recorder) {
	t.Helper()

	sess, err := session.New(storage.New(filepath.Join(t.TempDir(), "token")))
	require.NoError(t, err)

	rec := &recorder{}
	r := New(sess)
	r.Handle(ViewHome, true, rec.handler(ViewHome))
	r.Handle(ViewLogin, false, rec.handler(ViewLogin))
	r.Handle(ViewDiaries, true, rec.handler(ViewDiaries))
	r.Handle(ViewDiaryDetail, true, rec.handler(ViewDiaryDetail))

	return r, sess, rec
}

// An anonymous user headed for a gated view lands on login, and a successful
// login returns them to the original destination with its params intact.
func TestGo_AnonymousRedirectsToLoginAndReturns(t *testing.T) {
	t.Parallel()

	r, sess, rec := newRouter(t)
	ctx := context.Background()

	require.NoError(t, r.Go(ctx, ViewDiaryDetail, "7"))
	assert.Equal(t, []View{ViewLogin}, rec.views)

	require.NoError(t, sess.Login(makeToken(t, "alice")))
	require.NoError(t, r.AfterLogin(ctx))

	assert.Equal(t, []View{ViewLogin, ViewDiaryDetail}, rec.views)
	assert.Equal(t, []string{"7"}, rec.params[1])
}

func TestGo_AuthenticatedPassesThrough(t *testing.T) {
	t.Parallel()

	r, sess, rec := newRouter(t)
	require.NoError(t, sess.Login(makeToken(t, "alice")))

	require.NoError(t, r.Go(context.Background(), ViewDiaries))
	assert.Equal(t, []View{ViewDiaries}, rec.views)
	assert.Equal(t, ViewDiaries, r.Current())
}

// Without a pending return target, login lands on the default view.
func TestAfterLogin_DefaultsToHome(t *testing.T) {
	t.Parallel()

	r, sess, rec := newRouter(t)
	require.NoError(t, sess.Login(makeToken(t, "alice")))

	require.NoError(t, r.AfterLogin(context.Background()))
	assert.Equal(t, []View{ViewHome}, rec.views)
}

// The return target is consumed by one login; a second one goes to home.
func TestAfterLogin_ReturnTargetConsumedOnce(t *testing.T) {
	t.Parallel()

	r, sess, rec := newRouter(t)
	ctx := context.Background()

	require.NoError(t, r.Go(ctx, ViewDiaries))
	require.NoError(t, sess.Login(makeToken(t, "alice")))

	require.NoError(t, r.AfterLogin(ctx))
	require.NoError(t, r.AfterLogin(ctx))

	assert.Equal(t, []View{ViewLogin, ViewDiaries, ViewHome}, rec.views)
}

func TestSessionExpired_NoticeAndReturnTarget(t *testing.T) {
	t.Parallel()

	r, sess, rec := newRouter(t)
	ctx := context.Background()

	r.SessionExpired(session.LogoutContext{
		Reason:   session.ReasonExpired,
		ReturnTo: string(ViewDiaries),
	})

	assert.Equal(t, session.ReasonExpired, r.TakeNotice())
	assert.Empty(t, r.TakeNotice(), "notice is consumed on read")

	require.NoError(t, sess.Login(makeToken(t, "alice")))
	require.NoError(t, r.AfterLogin(ctx))
	assert.Equal(t, []View{ViewDiaries}, rec.views)
}

func TestGo_UnknownView(t *testing.T) {
	t.Parallel()

	r, _, _ := newRouter(t)
	assert.Error(t, r.Go(context.Background(), View("missing")))
}
