// Package credstore persists the bearer token across client restarts.
//
// The store is a durability side-channel only: at runtime the session owns
// the token, and absence of a stored value simply means "unauthenticated".
// Implementations must never fail loudly — a broken storage medium degrades
// to an empty token, not to an error the auth flow has to handle.
package credstore

// Store reads and writes a single opaque token value.
type Store interface {
	// Get returns the stored token, or "" when none is stored or the
	// storage is unavailable.
	Get() string

	// Set persists the token. Best effort: failures are logged, not returned.
	Set(token string)

	// Clear removes the stored token. Best effort.
	Clear()
}
