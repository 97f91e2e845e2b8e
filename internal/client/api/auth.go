package api

import (
	"context"
	"net/url"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

// Login exchanges credentials for a bearer token. The token endpoint takes
// form-encoded fields, unlike the rest of the JSON API.
func (c *RESTClient) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp models.TokenResponse
	if err := c.postForm(ctx, "/auth/token", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and returns the server-issued user record.
func (c *RESTClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	req := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Username: username, Email: email, Password: password}

	var user models.User
	if err := c.postJSON(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMe returns the identity behind the current bearer token. The backend
// answers 401 when the token is missing, invalid or expired.
func (c *RESTClient) GetMe(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
