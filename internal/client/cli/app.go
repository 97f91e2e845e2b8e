package cli

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/api"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/config"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/credstore"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/session"
	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/logging"
)

// Mode reflects the last backend reachability probe.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// View names used as navigation locations.
const (
	viewDashboard = "dashboard"
	viewLeads     = "leads"
	viewEvents    = "events"
	viewSettings  = "settings"
	viewWebhook   = "webhook"
)

// App wires the admin client together: config, credential store, REST
// client, session controller, and the interactive views. It also serves as
// the api.Navigator, tracking which view the user is on so a 401 anywhere
// can divert to the login view.
type App struct {
	config  *config.Config
	client  api.Client
	session *session.Controller
	logger  logging.Logger
	reader  *bufio.Reader

	mu       sync.Mutex
	location string
	mode     Mode
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	a := &App{
		config:   c,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		location: api.LoginView,
	}

	store := credstore.NewFileStore(c.TokenFile, logger)
	rest := api.NewRESTClient(c.ServerEndpointAddr, c.RequestTimeout, store, a, logger)
	ctrl := session.NewController(rest, store, logger)
	rest.SetTokenSource(ctrl)

	a.client = rest
	a.session = ctrl
	return a
}

// Location returns the name of the view the user is currently on.
func (a *App) Location() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

// RedirectToLogin is the hard-navigation analogue: the current view is
// abandoned, the in-memory session is dropped, and the user lands on the
// login view. Whatever they were doing is lost, as in the original
// dashboard. Called by the unauthorized interceptor; safe to call while
// already on the login view.
func (a *App) RedirectToLogin() {
	a.setLocation(api.LoginView)
	a.session.Invalidate()
	printlnFn("Session ended. Please login again.")
}

func (a *App) setLocation(view string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.location = view
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.logger.Info(ctx, "backend reachability changed", "mode", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Token() != ""
}

// getStatus renders the prompt suffix: "(username mode)".
func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Username + " "
	}
	a.mu.Lock()
	if a.mode != "" {
		s = s + string(a.mode)
	}
	a.mu.Unlock()
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// Run starts the reachability watcher and the interactive loop, blocking
// until the user exits or the scanner hits EOF.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
