package api

import (
	"context"
)

// SendWebhookMessage posts a demo message to the webhook endpoint. The
// response shape depends on what the agent extracted, so it is returned
// as a generic map for the view to render.
func (c *RESTClient) SendWebhookMessage(ctx context.Context, message string) (map[string]any, error) {
	req := struct {
		Message string `json:"message"`
	}{Message: message}

	var resp map[string]any
	if err := c.postJSON(ctx, "/webhook/", req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
