package models

import "time"

// User is the identity record issued by the backend. It is an immutable
// snapshot: each successful fetch replaces the whole value, fields are
// never patched individually.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the payload of a successful POST /auth/token call.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
