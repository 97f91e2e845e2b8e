package api

import "context"

// Ping probes backend liveness. Used only by the connectivity watcher;
// it carries no auth semantics.
func (c *RESTClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil)
}
