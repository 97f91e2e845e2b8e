package api

import (
	"context"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

// Client is the full backend surface consumed by the admin client.
// The 401 interception of the REST implementation applies uniformly to
// every authenticated method here, regardless of its response shape.
type Client interface {
	Close() error

	// Auth.
	Login(ctx context.Context, username, password string) (*models.TokenResponse, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	GetMe(ctx context.Context) (*models.User, error)

	// Leads.
	ListLeads(ctx context.Context) ([]models.Lead, error)
	GetLead(ctx context.Context, id int64) (*models.Lead, error)
	RetryCRM(ctx context.Context, id int64) (*models.Lead, error)

	// Events.
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (*models.Event, error)

	// Dashboard.
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// Agent config.
	GetAgentConfig(ctx context.Context) (*models.AgentConfig, error)
	UpdateAgentConfig(ctx context.Context, upd models.AgentConfigUpdate) (*models.AgentConfig, error)

	// Webhook demo endpoint.
	SendWebhookMessage(ctx context.Context, message string) (map[string]any, error)

	// Liveness.
	Ping(ctx context.Context) error
}

// TokenSource yields the bearer token attached to outgoing requests.
// The live session implements it; the credential store is deliberately
// not re-read per call.
type TokenSource interface {
	Token() string
}

// Navigator abstracts "where the user currently is" so the unauthorized
// interceptor can force a hard switch to the login view without looping
// when the user is already there.
type Navigator interface {
	Location() string
	RedirectToLogin()
}

// LoginView is the location name of the login view.
const LoginView = "login"
