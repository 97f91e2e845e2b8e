package api

import (
	"context"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

func (c *RESTClient) GetAgentConfig(ctx context.Context) (*models.AgentConfig, error) {
	var cfg models.AgentConfig
	if err := c.getJSON(ctx, "/config", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateAgentConfig applies a partial update; only non-nil fields change.
func (c *RESTClient) UpdateAgentConfig(ctx context.Context, upd models.AgentConfigUpdate) (*models.AgentConfig, error) {
	var cfg models.AgentConfig
	if err := c.postJSON(ctx, "/config/update", upd, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
