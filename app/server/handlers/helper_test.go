package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"kokoro-diary/app/server/jwt"
	"kokoro-diary/app/server/middlewares"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeAI struct {
	comment string
	err     error

	lastSystemPrompt string
	lastUserPrompt   string
}

func (f *fakeAI) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastUserPrompt = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.comment, nil
}

type testApp struct {
	app  *App
	mock sqlmock.Sqlmock
	mr   *miniredis.Miniredis
	jwt  *jwt.JWT
	ai   *fakeAI
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	j, err := jwt.New("test-secret")
	require.NoError(t, err)

	ai := &fakeAI{comment: "What a lovely day you had!"}

	return &testApp{
		app:  NewApp(zap.NewNop(), db, rdb, j, ai),
		mock: mock,
		mr:   mr,
		jwt:  j,
		ai:   ai,
	}
}

// newContext builds an echo context carrying an optional JSON body, an
// optional authenticated identity, and an optional :id path param.
func newContext(t *testing.T, method, target, body string, user *jwt.User, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	httpReq := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	if user != nil {
		c.Set(middlewares.ContextKeyUser, user)
	}
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}

	return c, rec
}
