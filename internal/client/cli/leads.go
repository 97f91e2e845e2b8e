package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jasserabdou/Cloudilic-Dragify-AI-Agent-Automation-Platform/internal/client/models"
)

// Leads renders the lead list.
func (a *App) Leads(ctx context.Context) error {
	return a.guarded(ctx, viewLeads, func(ctx context.Context) error {
		leads, err := a.client.ListLeads(ctx)
		if err != nil {
			printlnFn("Could not load leads:", err.Error())
			return err
		}
		if len(leads) == 0 {
			printlnFn("No leads captured yet.")
			return nil
		}
		for _, l := range leads {
			printlnFn(fmt.Sprintf("#%d  %s  %s  %s  (%d CRM attempts)",
				l.ID, l.Name, l.Email, l.Company, len(l.CRMAttempts)))
		}
		return nil
	})
}

// Lead renders one lead with its CRM attempt history.
func (a *App) Lead(ctx context.Context, id string) error {
	leadID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Invalid lead id:", id)
		return err
	}
	return a.guarded(ctx, viewLeads, func(ctx context.Context) error {
		lead, err := a.client.GetLead(ctx, leadID)
		if err != nil {
			printlnFn("Could not load lead:", err.Error())
			return err
		}
		printLead(lead)
		return nil
	})
}

// RetryLead asks the backend to push the lead to the CRM again.
func (a *App) RetryLead(ctx context.Context, id string) error {
	leadID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Invalid lead id:", id)
		return err
	}
	return a.guarded(ctx, viewLeads, func(ctx context.Context) error {
		lead, err := a.client.RetryCRM(ctx, leadID)
		if err != nil {
			printlnFn("CRM retry failed:", err.Error())
			return err
		}
		printlnFn("CRM retry queued.")
		printLead(lead)
		return nil
	})
}

func printLead(l *models.Lead) {
	printlnFn(fmt.Sprintf("#%d %s <%s> at %s", l.ID, l.Name, l.Email, l.Company))
	printlnFn("Message:", l.RawMessage)
	for _, att := range l.CRMAttempts {
		status := "ok"
		if !att.Success {
			status = "failed"
			if att.ErrorMessage != nil {
				status = "failed: " + *att.ErrorMessage
			}
		}
		printlnFn(fmt.Sprintf("  attempt %d: %s", att.AttemptNumber, status))
	}
}
