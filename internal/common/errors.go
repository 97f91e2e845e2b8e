// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth flow errors.
	ErrNoToken = errors.New("no authentication token")
)
