package common

const (
	// AuthorizationHeaderName carries the bearer credential on every
	// authenticated request.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries the client-generated request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// TokenFileName is the default file the bearer token is persisted to,
	// relative to the user config dir.
	TokenFileName = "dragify-admin/token"
)
