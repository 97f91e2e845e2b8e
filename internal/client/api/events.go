package api

import (
	"context"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

func (c *RESTClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *RESTClient) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := c.getJSON(ctx, "/events/"+id, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
