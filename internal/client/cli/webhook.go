package cli

import (
	"context"
	"encoding/json"
)

// Webhook posts a demo message to the webhook endpoint. The token presence
// is checked client-side first so the user gets a clear message instead of
// a round-trip that can only fail.
func (a *App) Webhook(ctx context.Context, message string) error {
	if !a.isLoggedIn() {
		printlnFn("You need to be logged in to use this feature.")
		return nil
	}

	return a.guarded(ctx, viewWebhook, func(ctx context.Context) error {
		resp, err := a.client.SendWebhookMessage(ctx, message)
		if err != nil {
			printlnFn("Webhook failed:", err.Error())
			return err
		}
		raw, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		printlnFn(string(raw))
		return nil
	})
}
