package models

import "time"

// Lead is a captured lead together with the history of CRM delivery attempts.
type Lead struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Company     string       `json:"company"`
	RawMessage  string       `json:"raw_message"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at"`
	CRMAttempts []CRMAttempt `json:"crm_attempts"`
}

// CRMAttempt records a single push of a lead to the CRM.
type CRMAttempt struct {
	ID            int64     `json:"id"`
	LeadID        int64     `json:"lead_id"`
	Success       bool      `json:"success"`
	AttemptNumber int       `json:"attempt_number"`
	ErrorMessage  *string   `json:"error_message"`
	CreatedAt     time.Time `json:"created_at"`
}
