// Package cli is the interactive surface of the diary client. Every view
// transition goes through the navigation guard in nav; commands that mutate
// diaries surface ownership rejections without ending the session, while a
// rejected credential drops the user back to the login view.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"kokoro-diary/app/client/api"
	"kokoro-diary/app/client/config"
	"kokoro-diary/app/client/nav"
	"kokoro-diary/app/client/session"

	"go.uber.org/zap"
)

type App struct {
	cfg     *config.Config
	l       *zap.Logger
	session *session.Session
	api     *api.Client
	router  *nav.Router
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, l *zap.Logger, sess *session.Session, apiClient *api.Client, router *nav.Router) *App {
	a := &App{
		cfg:     cfg,
		l:       l,
		session: sess,
		api:     apiClient,
		router:  router,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	router.Handle(nav.ViewHome, true, a.viewHome)
	router.Handle(nav.ViewLogin, false, a.viewLogin)
	router.Handle(nav.ViewRegister, false, a.viewRegister)
	router.Handle(nav.ViewDiaries, true, a.viewDiaries)
	router.Handle(nav.ViewDiaryDetail, true, a.viewDiaryDetail)
	router.Handle(nav.ViewDiaryNew, true, a.viewDiaryNew)

	// When the interceptor invalidates the session, remember where the user
	// was so a fresh login can take them back.
	apiClient.OnSessionExpired(func(lc session.LogoutContext) {
		lc.ReturnTo = string(router.Current())
		router.SessionExpired(lc)
	})

	return a
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}
