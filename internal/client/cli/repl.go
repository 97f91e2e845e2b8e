package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) {
	fmt.Println(args...)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Leads(ctx context.Context) error
	Lead(ctx context.Context, id string) error
	RetryLead(ctx context.Context, id string) error
	Events(ctx context.Context) error
	Event(ctx context.Context, id string) error
	Settings(ctx context.Context) error
	SetSetting(ctx context.Context, name, value string) error
	Webhook(ctx context.Context, message string) error
}

// runREPL is the interactive loop of the admin client. It reads a line,
// parses the first token as the command, and dispatches to methods on 'a'.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help, login, register, exit | quit
//
//	Logged in:
//	  - dashboard            — aggregated lead/event stats
//	  - leads | lead <id>    — lead list / one lead with CRM attempts
//	  - retry <id>           — retry the CRM push for a lead
//	  - events | event <id>  — webhook event log
//	  - settings             — agent configuration
//	  - set retries|delay <n>
//	  - webhook <message>    — post a demo message to the webhook
//	  - whoami, logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dragify %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, leads, lead <id>, retry <id>, events, event <id>, settings, set <name> <value>, webhook <message>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "leads":
			_ = a.Leads(ctx)

		case "lead":
			if len(args) == 0 {
				printlnFn("Usage: lead <id>")
				continue
			}
			_ = a.Lead(ctx, args[0])

		case "retry":
			if len(args) == 0 {
				printlnFn("Usage: retry <id>")
				continue
			}
			_ = a.RetryLead(ctx, args[0])

		case "events":
			_ = a.Events(ctx)

		case "event":
			if len(args) == 0 {
				printlnFn("Usage: event <id>")
				continue
			}
			_ = a.Event(ctx, args[0])

		case "settings":
			_ = a.Settings(ctx)

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set retries|delay <value>")
				continue
			}
			_ = a.SetSetting(ctx, args[0], args[1])

		case "webhook":
			if len(args) == 0 {
				printlnFn("Usage: webhook <message>")
				continue
			}
			_ = a.Webhook(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
