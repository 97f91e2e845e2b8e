package cli

import (
	"context"
	"fmt"
	"sort"
)

// Dashboard renders the aggregated lead and event counters.
func (a *App) Dashboard(ctx context.Context) error {
	return a.guarded(ctx, viewDashboard, func(ctx context.Context) error {
		stats, err := a.client.GetDashboardStats(ctx)
		if err != nil {
			printlnFn("Could not load dashboard:", err.Error())
			return err
		}

		printlnFn(fmt.Sprintf("Leads: %d total, %d saved to CRM, %d failed",
			stats.TotalLeads, stats.SuccessfulCRMSaves, stats.FailedCRMSaves))

		if len(stats.EventsPerType) > 0 {
			printlnFn("Events by type:")
			for _, k := range sortedKeys(stats.EventsPerType) {
				printlnFn(fmt.Sprintf("  %-20s %d", k, stats.EventsPerType[k]))
			}
		}
		if len(stats.LeadsPerTime) > 0 {
			printlnFn("Leads over time:")
			for _, k := range sortedKeys(stats.LeadsPerTime) {
				printlnFn(fmt.Sprintf("  %-20s %d", k, stats.LeadsPerTime[k]))
			}
		}
		return nil
	})
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
