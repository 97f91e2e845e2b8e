// Package api is the single request boundary between the admin client and
// the Dragify backend. Every call flows through one middleware pipeline
// that stamps a request id, attaches the session's bearer token, and
// intercepts 401 responses by clearing the stored credential and diverting
// the user to the login view.
package api
