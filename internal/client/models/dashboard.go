package models

// DashboardStats aggregates lead and event counters for the dashboard view.
type DashboardStats struct {
	TotalLeads         int64            `json:"total_leads"`
	SuccessfulCRMSaves int64            `json:"successful_crm_saves"`
	FailedCRMSaves     int64            `json:"failed_crm_saves"`
	LeadsPerTime       map[string]int64 `json:"leads_per_time"`
	EventsPerType      map[string]int64 `json:"events_per_type"`
}
