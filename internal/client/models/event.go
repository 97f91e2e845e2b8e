package models

import "time"

// Event is one entry of the inbound webhook event log.
type Event struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"`
	EventID   string    `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Payload   *string   `json:"payload"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
