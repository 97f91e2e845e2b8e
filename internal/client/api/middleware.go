package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/credstore"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/common"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/logging"
)

// Doer executes one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware wraps a Doer with extra request/response behavior.
type Middleware func(next Doer) Doer

// Chain wraps base with the given middleware. The first middleware listed
// sees the request first and the response last.
func Chain(base Doer, mws ...Middleware) Doer {
	d := base
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	return d
}

// RequestID stamps every outgoing request with a fresh correlation id.
func RequestID() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
			return next.Do(req)
		})
	}
}

// BearerAuth attaches the current session token, when there is one, as a
// bearer credential. tokens is read per call so a token set mid-flight is
// picked up by the next request.
func BearerAuth(tokens func() TokenSource) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if ts := tokens(); ts != nil {
				if tok := ts.Token(); tok != "" {
					req.Header.Set(common.AuthorizationHeaderName, "Bearer "+tok)
				}
			}
			return next.Do(req)
		})
	}
}

// InterceptUnauthorized watches responses for 401s. Each failing response
// clears the persisted credential exactly once, then redirects to the login
// view — unless the user is already there, so repeated 401s never loop.
// The credential is cleared before the redirect decision so no later request
// can be issued with the dead token. Every other status and any transport
// error pass through untouched.
func InterceptUnauthorized(store credstore.Store, nav Navigator, logger logging.Logger) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			if err != nil || resp.StatusCode != http.StatusUnauthorized {
				return resp, err
			}

			logger.Warn(req.Context(), "unauthorized response", "url", req.URL.Path)
			store.Clear()

			if nav != nil && nav.Location() != LoginView {
				nav.RedirectToLogin()
			}
			return resp, err
		})
	}
}
