package models

// AgentConfig is the server-side agent configuration.
type AgentConfig struct {
	CRMMaxRetries int `json:"crm_max_retries"`
	CRMRetryDelay int `json:"crm_retry_delay"`
}

// AgentConfigUpdate is a partial update; nil fields are left unchanged
// by the server.
type AgentConfigUpdate struct {
	CRMMaxRetries *int `json:"crm_max_retries,omitempty"`
	CRMRetryDelay *int `json:"crm_retry_delay,omitempty"`
}
