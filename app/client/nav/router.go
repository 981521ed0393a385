// Package nav gates transitions between client views. Views that require
// authentication are declared as such when registered; the router redirects
// anonymous users to the login view, remembers where they were headed, and
// returns them there after a successful login.
package nav

import (
	"context"
	"fmt"
	"sync"

	"kokoro-diary/app/client/session"
)

type View string

const (
	ViewHome        View = "home"
	ViewLogin       View = "login"
	ViewRegister    View = "register"
	ViewDiaries     View = "diaries"
	ViewDiaryDetail View = "diary-detail"
	ViewDiaryNew    View = "diary-new"
)

// Handler renders one view. Params carry view arguments such as a diary id.
type Handler func(ctx context.Context, params ...string) error

type route struct {
	handler      Handler
	requiresAuth bool
}

type Router struct {
	session *session.Session

	mu           sync.Mutex
	routes       map[View]route
	current      View
	returnTo     View
	returnParams []string
	notice       string
}

func New(sess *session.Session) *Router {
	return &Router{
		session: sess,
		routes:  map[View]route{},
	}
}

// Handle registers a view. requiresAuth marks it as gated.
func (r *Router) Handle(view View, requiresAuth bool, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[view] = route{handler: h, requiresAuth: requiresAuth}
}

// Go transitions to a view. An anonymous user headed for a gated view lands
// on the login view instead, with the original destination recorded.
func (r *Router) Go(ctx context.Context, view View, params ...string) error {
	r.mu.Lock()
	target, ok := r.routes[view]
	login := r.routes[ViewLogin]
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("unknown view: %s", view)
	}

	if target.requiresAuth {
		if authenticated, _ := r.session.Current(); !authenticated {
			r.mu.Lock()
			r.returnTo = view
			r.returnParams = params
			r.mu.Unlock()

			if login.handler == nil {
				return fmt.Errorf("login view is not registered")
			}
			return login.handler(ctx)
		}
	}

	r.mu.Lock()
	r.current = view
	r.mu.Unlock()

	return target.handler(ctx, params...)
}

// Current returns the view the user most recently reached.
func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// AfterLogin navigates to the recorded return target, or to the default
// landing view when none is pending.
func (r *Router) AfterLogin(ctx context.Context) error {
	r.mu.Lock()
	view, params := r.returnTo, r.returnParams
	r.returnTo, r.returnParams = "", nil
	r.mu.Unlock()

	if view == "" {
		view = ViewHome
	}
	return r.Go(ctx, view, params...)
}

// SessionExpired records the logout context so the login view can show why
// the user landed there. Wired to the API client's expiry handler.
func (r *Router) SessionExpired(lc session.LogoutContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notice = lc.Reason
	if lc.ReturnTo != "" {
		r.returnTo = View(lc.ReturnTo)
		r.returnParams = nil
	}
}

// TakeNotice returns and clears the pending login-view notice.
func (r *Router) TakeNotice() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	notice := r.notice
	r.notice = ""
	return notice
}
