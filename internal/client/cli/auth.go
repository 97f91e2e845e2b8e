package cli

import (
	"context"
	"os"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// controller. On success the user lands on the dashboard view; on failure
// the session's error message is shown and the user stays on the login view.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.session.Login(ctx, username, password) {
		if msg := a.session.Snapshot().Error; msg != "" {
			printlnFn(msg)
		}
		a.setLocation(api.LoginView)
		return nil
	}

	printlnFn("Login successful.")
	return a.Dashboard(ctx)
}

// Register prompts for account details, creates the account, and logs the
// new user straight in — no second login prompt.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.session.Register(ctx, username, email, password); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}
	printlnFn("Account created.")

	if !a.session.Login(ctx, username, password) {
		if msg := a.session.Snapshot().Error; msg != "" {
			printlnFn(msg)
		}
		return nil
	}
	printlnFn("Login successful.")
	return a.Dashboard(ctx)
}

// Logout always succeeds and leaves the user on the login view.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.setLocation(api.LoginView)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI shows the identity behind the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(u.Username, "<"+u.Email+">")
	return nil
}
