// internal/domain/models/kpis.go
package models

// KPIs are the dashboard summary counts.
type KPIs struct {
	YetToInterview     int `json:"yet_to_interview"`
	InterviewCompleted int `json:"interview_completed"`
	TotalCandidates    int `json:"total_candidates"`
}
