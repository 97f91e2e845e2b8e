// Package session owns the client's authentication state: the bearer token,
// the validated user record, and the login/logout/fetch-user operations that
// are the only way to mutate them.
package session
