package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/api"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/credstore"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/common"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/logging"
)

// User-facing failure messages. The backend's own detail wins when present.
const (
	msgBadCredentials = "Incorrect username or password. Please use username 'demo' and password 'password'."
	msgNetworkError   = "Network error - please check if the backend server is running."
	msgSessionExpired = "Your session has expired. Please login again."
	msgAuthFailed     = "Authentication failed"
	msgLoginFailed    = "Failed to login"
)

// Session is the in-memory answer to "who is authenticated right now".
//
// Invariant: User is non-nil only while Token is set; any observed 401
// forces both back to their zero values. Three informal states follow:
// anonymous (no token), token-only (restored or freshly issued token,
// not yet validated), authenticated (token plus fetched user).
type Session struct {
	Token   string
	User    *models.User
	Loading bool
	Error   string
}

// Controller exclusively owns the Session. Views and the route guard read
// it through accessors; only Login/Logout/FetchUser mutate it. A mutex
// guards the fields; overlapping operations keep last-write-wins semantics.
type Controller struct {
	mu     sync.Mutex
	s      Session
	client api.Client
	store  credstore.Store
	logger logging.Logger
}

// NewController builds a Controller and seeds its token from the credential
// store, so a previously logged-in user starts in the token-only state and
// gets validated by the guard on first render.
func NewController(client api.Client, store credstore.Store, logger logging.Logger) *Controller {
	c := &Controller{client: client, store: store, logger: logger}
	if tok := store.Get(); tok != "" {
		c.s.Token = tok
		logger.Debug(context.Background(), "token restored from credential store")
	}
	return c
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s
}

// Token returns the current bearer token; it also makes the controller the
// api.TokenSource for outgoing requests.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.Token
}

// User returns the validated user record, or nil.
func (c *Controller) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.User
}

// Login exchanges credentials for a token, persists it, then validates it
// by fetching the user. Returns true only when both steps succeed. On
// failure the previous token and user are left as they were and Error holds
// the most specific message available.
func (c *Controller) Login(ctx context.Context, username, password string) bool {
	c.update(func(s *Session) { s.Loading = true; s.Error = "" })
	defer c.update(func(s *Session) { s.Loading = false })

	resp, err := c.client.Login(ctx, username, password)
	if err != nil {
		c.logger.Warn(ctx, "login failed", "username", username, "error", err)
		c.update(func(s *Session) { s.Error = loginErrorMessage(err) })
		return false
	}

	c.setToken(resp.AccessToken)

	if _, err := c.FetchUser(ctx); err != nil {
		return false
	}
	c.logger.Info(ctx, "login successful", "username", username)
	return true
}

// Logout drops the token from both the credential store and the session and
// clears the user. It never fails and is safe to call in any state.
func (c *Controller) Logout() {
	c.store.Clear()
	c.update(func(s *Session) {
		s.Token = ""
		s.User = nil
	})
}

// Invalidate drops the in-memory token and user without touching the
// credential store. The unauthorized interceptor has already cleared the
// durable copy when this runs; it is the in-memory analogue of the hard
// redirect to the login view.
func (c *Controller) Invalidate() {
	c.update(func(s *Session) {
		s.Token = ""
		s.User = nil
	})
}

// FetchUser validates the current token against the backend and replaces
// the session user wholesale. Without a token it fails immediately and
// performs no network call. A 401 means the token is dead: the session is
// logged out before the error is propagated so the caller can still react.
// Other failures only record an error message.
func (c *Controller) FetchUser(ctx context.Context) (*models.User, error) {
	c.update(func(s *Session) { s.Loading = true; s.Error = "" })
	defer c.update(func(s *Session) { s.Loading = false })

	if c.Token() == "" {
		c.update(func(s *Session) { s.Error = common.ErrNoToken.Error() })
		return nil, common.ErrNoToken
	}

	user, err := c.client.GetMe(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			c.logger.Warn(ctx, "token rejected, logging out", "error", err)
			c.update(func(s *Session) { s.Error = msgSessionExpired })
			c.Logout()
			return nil, err
		}
		c.update(func(s *Session) { s.Error = err.Error() })
		return nil, err
	}

	c.update(func(s *Session) { s.User = user })
	return user, nil
}

// Register creates a new account. It does not touch the session; callers
// follow up with Login for the register-then-auto-login flow.
func (c *Controller) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	user, err := c.client.Register(ctx, username, email, password)
	if err != nil {
		c.logger.Warn(ctx, "registration failed", "username", username, "error", err)
		return nil, err
	}
	c.logger.Info(ctx, "registered new user", "username", username)
	return user, nil
}

// setToken persists the token first, then publishes it to the session, so
// the durable copy is never behind what concurrent readers can observe.
func (c *Controller) setToken(token string) {
	c.store.Set(token)
	c.update(func(s *Session) { s.Token = token })
}

func (c *Controller) update(fn func(*Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.s)
}

// loginErrorMessage picks the most specific user-facing message for a
// failed login: server detail first, a friendlier hint when the detail
// reports wrong credentials, a network hint when no response arrived at
// all, and a generic fallback otherwise.
func loginErrorMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		msg := apiErr.Detail
		if msg == "" {
			msg = msgAuthFailed
		}
		if strings.Contains(msg, "Incorrect username or password") {
			msg = msgBadCredentials
		}
		return msg
	case errors.Is(err, api.ErrUnavailable):
		return msgNetworkError
	default:
		return msgLoginFailed
	}
}
