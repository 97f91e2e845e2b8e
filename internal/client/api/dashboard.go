package api

import (
	"context"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

func (c *RESTClient) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.getJSON(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
