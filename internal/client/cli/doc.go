// Package cli implements the interactive admin client: a REPL over the
// Dragify backend with login/register flows, a session-validating guard in
// front of every protected view, and views for the dashboard, leads,
// events, settings and the demo webhook.
package cli
