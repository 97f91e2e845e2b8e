package api

import (
	"context"
	"fmt"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

func (c *RESTClient) ListLeads(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := c.getJSON(ctx, "/leads", &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (c *RESTClient) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	var lead models.Lead
	if err := c.getJSON(ctx, fmt.Sprintf("/leads/%d", id), &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// RetryCRM asks the backend to push the lead to the CRM again and returns
// the lead with the new attempt recorded.
func (c *RESTClient) RetryCRM(ctx context.Context, id int64) (*models.Lead, error) {
	var lead models.Lead
	if err := c.postJSON(ctx, fmt.Sprintf("/leads/%d/retry-crm", id), nil, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}
