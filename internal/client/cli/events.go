package cli

import (
	"context"
	"fmt"
)

// Events renders the webhook event log.
func (a *App) Events(ctx context.Context) error {
	return a.guarded(ctx, viewEvents, func(ctx context.Context) error {
		events, err := a.client.ListEvents(ctx)
		if err != nil {
			printlnFn("Could not load events:", err.Error())
			return err
		}
		if len(events) == 0 {
			printlnFn("No events recorded yet.")
			return nil
		}
		for _, e := range events {
			printlnFn(fmt.Sprintf("%s  %-20s %-10s %s",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.EventType, e.Status, e.EventID))
		}
		return nil
	})
}

// Event renders one event including its payload.
func (a *App) Event(ctx context.Context, id string) error {
	return a.guarded(ctx, viewEvents, func(ctx context.Context) error {
		event, err := a.client.GetEvent(ctx, id)
		if err != nil {
			printlnFn("Could not load event:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("%s %s (%s)", event.EventType, event.EventID, event.Status))
		if event.Payload != nil {
			printlnFn("Payload:", *event.Payload)
		}
		return nil
	})
}
