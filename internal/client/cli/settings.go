package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

// Settings renders the agent configuration.
func (a *App) Settings(ctx context.Context) error {
	return a.guarded(ctx, viewSettings, func(ctx context.Context) error {
		cfg, err := a.client.GetAgentConfig(ctx)
		if err != nil {
			printlnFn("Could not load settings:", err.Error())
			return err
		}
		printAgentConfig(cfg)
		return nil
	})
}

// SetSetting updates a single agent configuration field:
// "retries" for the CRM retry limit, "delay" for the delay between retries.
func (a *App) SetSetting(ctx context.Context, name, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		printlnFn("Invalid value:", value)
		return err
	}

	var upd models.AgentConfigUpdate
	switch name {
	case "retries":
		upd.CRMMaxRetries = &n
	case "delay":
		upd.CRMRetryDelay = &n
	default:
		printlnFn("Unknown setting:", name, "(expected retries or delay)")
		return nil
	}

	return a.guarded(ctx, viewSettings, func(ctx context.Context) error {
		cfg, err := a.client.UpdateAgentConfig(ctx, upd)
		if err != nil {
			printlnFn("Could not update settings:", err.Error())
			return err
		}
		printlnFn("Settings updated.")
		printAgentConfig(cfg)
		return nil
	})
}

func printAgentConfig(cfg *models.AgentConfig) {
	printlnFn(fmt.Sprintf("CRM max retries: %d", cfg.CRMMaxRetries))
	printlnFn(fmt.Sprintf("CRM retry delay: %d", cfg.CRMRetryDelay))
}
