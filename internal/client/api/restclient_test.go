package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/common"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/logging"
)

// ---- fakes ----

type memStore struct {
	mu     sync.Mutex
	tok    string
	clears int
}

func (m *memStore) Get() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tok
}

func (m *memStore) Set(tok string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = tok
}

func (m *memStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = ""
	m.clears++
}

func (m *memStore) clearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

type fakeNav struct {
	mu        sync.Mutex
	location  string
	redirects int
}

func (n *fakeNav) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *fakeNav) RedirectToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = LoginView
	n.redirects++
}

func (n *fakeNav) redirectCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.redirects
}

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func newClient(t *testing.T, url string, store *memStore, nav *fakeNav, tok string) *RESTClient {
	t.Helper()
	c := NewRESTClient(url, 5*time.Second, store, nav, testLogger())
	c.SetTokenSource(staticTokens(tok))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// ---- request phase ----

func TestRESTClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string

	r := chi.NewRouter()
	r.Get("/users/me", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get(common.AuthorizationHeaderName)
		gotReqID = req.Header.Get(common.RequestIDHeaderName)
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Username: "demo"})
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	c := newClient(t, ts.URL, &memStore{}, &fakeNav{location: "dashboard"}, "tok-1")

	user, err := c.GetMe(context.Background())
	require.NoError(t, err)
	require.Equal(t, "demo", user.Username)
	require.Equal(t, "Bearer tok-1", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestRESTClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	var sawAuthHeader bool

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		_, sawAuthHeader = req.Header[common.AuthorizationHeaderName]
		w.WriteHeader(http.StatusOK)
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	c := newClient(t, ts.URL, &memStore{}, &fakeNav{location: "dashboard"}, "")

	require.NoError(t, c.Ping(context.Background()))
	require.False(t, sawAuthHeader)
}

func TestRESTClient_LoginSendsFormEncoded(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/token", func(w http.ResponseWriter, req *http.Request) {
		require.Contains(t, req.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, req.ParseForm())
		require.Equal(t, "demo", req.PostFormValue("username"))
		require.Equal(t, "password", req.PostFormValue("password"))
		_ = json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "tok-9", TokenType: "bearer"})
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	c := newClient(t, ts.URL, &memStore{}, &fakeNav{location: LoginView}, "")

	resp, err := c.Login(context.Background(), "demo", "password")
	require.NoError(t, err)
	require.Equal(t, "tok-9", resp.AccessToken)
}

// ---- response phase: 401 interception ----

func TestRESTClient_Unauthorized_ClearsStoreAndRedirectsOnce(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/leads", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	store := &memStore{tok: "tok-1"}
	nav := &fakeNav{location: "leads"}
	c := newClient(t, ts.URL, store, nav, "tok-1")

	_, err := c.ListLeads(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, "", store.Get())
	require.Equal(t, 1, store.clearCount())
	require.Equal(t, 1, nav.redirectCount())
	require.Equal(t, LoginView, nav.Location())
}

func TestRESTClient_Unauthorized_NoRedirectWhileOnLoginView(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/me", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	store := &memStore{tok: "tok-1"}
	nav := &fakeNav{location: LoginView}
	c := newClient(t, ts.URL, store, nav, "tok-1")

	// Two failing calls while already on the login view: credentials are
	// cleared per response, but no redirect happens at all.
	_, err := c.GetMe(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = c.GetMe(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	require.Equal(t, 2, store.clearCount())
	require.Equal(t, 0, nav.redirectCount())
}

func TestRESTClient_RepeatedUnauthorized_RedirectsAtMostOnce(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/events", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	store := &memStore{tok: "tok-1"}
	nav := &fakeNav{location: "events"}
	c := newClient(t, ts.URL, store, nav, "tok-1")

	// First 401 redirects; the second one finds the user already on the
	// login view and must not redirect again.
	_, _ = c.ListEvents(context.Background())
	_, _ = c.ListEvents(context.Background())

	require.Equal(t, 2, store.clearCount())
	require.Equal(t, 1, nav.redirectCount())
	require.Equal(t, LoginView, nav.Location())
}

// ---- error taxonomy ----

func TestRESTClient_ValidationErrorCarriesDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Username already registered"}`))
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	store := &memStore{}
	nav := &fakeNav{location: LoginView}
	c := newClient(t, ts.URL, store, nav, "")

	_, err := c.Register(context.Background(), "demo", "d@x.com", "pw")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Username already registered", apiErr.Detail)
	require.NotErrorIs(t, err, ErrUnauthorized)

	// Non-401 failures must not touch credentials or navigation.
	require.Equal(t, 0, store.clearCount())
	require.Equal(t, 0, nav.redirectCount())
}

func TestRESTClient_ServerErrorWithoutDetail(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/dashboard/stats", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	c := newClient(t, ts.URL, &memStore{}, &fakeNav{location: "dashboard"}, "tok")

	_, err := c.GetDashboardStats(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Contains(t, apiErr.Error(), "500")
}

func TestRESTClient_StructuredDetailStaysReadable(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": [{"loc": ["body", "email"], "msg": "value is not a valid email address"}]}`))
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	c := newClient(t, ts.URL, &memStore{}, &fakeNav{location: LoginView}, "")

	_, err := c.Register(context.Background(), "demo", "not-an-email", "pw")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Detail, "valid email address")
}

func TestRESTClient_NetworkFailureIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close() // nothing is listening anymore

	store := &memStore{tok: "tok"}
	nav := &fakeNav{location: "dashboard"}
	c := newClient(t, ts.URL, store, nav, "tok")

	_, err := c.ListLeads(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)

	// No response received: no credential clear, no redirect.
	require.Equal(t, 0, store.clearCount())
	require.Equal(t, 0, nav.redirectCount())
}

// ---- typed wrappers ----

func TestRESTClient_TypedEndpoints(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	r := chi.NewRouter()
	r.Get("/leads/{id}", func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "7", chi.URLParam(req, "id"))
		_ = json.NewEncoder(w).Encode(models.Lead{ID: 7, Name: "Jane", CreatedAt: now})
	})
	r.Post("/leads/{id}/retry-crm", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Lead{ID: 7, CRMAttempts: []models.CRMAttempt{{ID: 1, LeadID: 7, Success: true, AttemptNumber: 2, CreatedAt: now}}})
	})
	r.Get("/events/{id}", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Event{ID: 3, EventID: chi.URLParam(req, "id"), EventType: "message", Status: "processed", CreatedAt: now})
	})
	r.Get("/config", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(models.AgentConfig{CRMMaxRetries: 3, CRMRetryDelay: 5})
	})
	r.Post("/config/update", func(w http.ResponseWriter, req *http.Request) {
		var upd models.AgentConfigUpdate
		require.NoError(t, json.NewDecoder(req.Body).Decode(&upd))
		require.NotNil(t, upd.CRMMaxRetries)
		require.Nil(t, upd.CRMRetryDelay)
		_ = json.NewEncoder(w).Encode(models.AgentConfig{CRMMaxRetries: *upd.CRMMaxRetries, CRMRetryDelay: 5})
	})
	r.Post("/webhook/", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "echo": body.Message})
	})
	ts := httptest.NewServer(r)
	defer ts.Close()

	c := newClient(t, ts.URL, &memStore{}, &fakeNav{location: "dashboard"}, "tok")
	ctx := context.Background()

	lead, err := c.GetLead(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Jane", lead.Name)

	retried, err := c.RetryCRM(ctx, 7)
	require.NoError(t, err)
	require.Len(t, retried.CRMAttempts, 1)
	require.True(t, retried.CRMAttempts[0].Success)

	event, err := c.GetEvent(ctx, "evt-42")
	require.NoError(t, err)
	require.Equal(t, "evt-42", event.EventID)

	cfg, err := c.GetAgentConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.CRMMaxRetries)

	five := 5
	updated, err := c.UpdateAgentConfig(ctx, models.AgentConfigUpdate{CRMMaxRetries: &five})
	require.NoError(t, err)
	require.Equal(t, 5, updated.CRMMaxRetries)

	resp, err := c.SendWebhookMessage(ctx, "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", resp["echo"])
}
