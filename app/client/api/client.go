// Package api is the client's HTTP pipeline. Every call goes through one
// request/response stage: the request hook attaches the stored bearer
// credential, the response hook inspects failures and drives session
// invalidation. No per-call auth logic exists anywhere else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kokoro-diary/app/client/session"
	"kokoro-diary/app/client/storage"

	"go.uber.org/zap"
)

const loginPath = "/api/login"

type Client struct {
	baseURL string
	http    *http.Client
	store   *storage.Store
	session *session.Session
	l       *zap.Logger

	// onExpired lets the navigation layer react when the interceptor drops
	// the session; nil means nobody is listening.
	onExpired func(session.LogoutContext)
}

func New(baseURL string, store *storage.Store, sess *session.Session, l *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		store:   store,
		session: sess,
		l:       l,
	}
}

// OnSessionExpired registers the handler invoked after a credential
// rejection has logged the session out.
func (c *Client) OnSessionExpired(fn func(session.LogoutContext)) {
	c.onExpired = fn
}

// do runs one API call through the pipeline. The token is read from durable
// storage at send time, not cached: a request issued after a logout can
// never pick up the cleared credential.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("failed to join request url: %w", err)
	}

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to prepare request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Request hook: attach the credential when one is stored.
	if token, err := c.store.Load(); err != nil {
		return fmt.Errorf("failed to load stored token: %w", err)
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Response hook: every failure goes through one policy decision.
	if resp.StatusCode >= http.StatusBadRequest {
		return c.handleFailure(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// handleFailure applies the session-invalidation policy:
//
//   - 401 outside the login endpoint means the credential is missing or
//     expired: the session is logged out and the caller gets
//     ErrSessionExpired.
//   - 403 on a diary mutation is an ownership rejection, not a credential
//     one: the session stays active and the caller gets ErrForbidden.
//   - Any other 403 is not ownership-related on this API surface, so it is
//     treated like a rejected credential.
//   - Everything else passes through as an APIError.
func (c *Client) handleFailure(method, path string, resp *http.Response) error {
	var em errorMessage
	_ = json.NewDecoder(resp.Body).Decode(&em) // best effort, many failures have no body

	switch {
	case resp.StatusCode == http.StatusUnauthorized && path != loginPath:
		return c.expireSession()

	case resp.StatusCode == http.StatusForbidden && isDiaryMutation(method, path):
		if em.Error != "" {
			return fmt.Errorf("%w: %s", ErrForbidden, em.Error)
		}
		return ErrForbidden

	case resp.StatusCode == http.StatusForbidden && path != loginPath:
		return c.expireSession()
	}

	return &APIError{StatusCode: resp.StatusCode, Message: em.Error}
}

func (c *Client) expireSession() error {
	if err := c.session.Logout(); err != nil {
		// The token could not be cleared, so the session stays authenticated
		// and the next rejected request retries the logout.
		c.l.Error("failed to log out after credential rejection", zap.Error(err))
	}
	if c.onExpired != nil {
		c.onExpired(session.LogoutContext{Reason: session.ReasonExpired})
	}
	return ErrSessionExpired
}

func isDiaryMutation(method, path string) bool {
	if method != http.MethodPut && method != http.MethodDelete {
		return false
	}
	return strings.HasPrefix(path, "/api/diaries/")
}
