package cli

import (
	"context"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/api"
)

// guarded gates entry into a protected view, mirroring a route guard.
//
// Without a token the user is sent to the login view immediately, no
// network involved. With a token, the token is necessary but not
// sufficient: the session is re-validated by fetching the user, and the
// view renders only after that settles with a user record. Validation runs
// on every entry, not once per process, so a token revoked server-side
// between restore and first render is caught here.
func (a *App) guarded(ctx context.Context, view string, render func(context.Context) error) error {
	if a.session.Token() == "" {
		a.setLocation(api.LoginView)
		printlnFn("Please login first.")
		return nil
	}

	printlnFn("Validating your session...")
	if _, err := a.session.FetchUser(ctx); err != nil {
		a.setLocation(api.LoginView)
		if msg := a.session.Snapshot().Error; msg != "" {
			printlnFn(msg)
		}
		return nil
	}
	if a.session.User() == nil {
		a.setLocation(api.LoginView)
		return nil
	}

	a.setLocation(view)
	return render(ctx)
}
