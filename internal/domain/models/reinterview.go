// internal/domain/models/reinterview.go
package models

// Re-interview request states.
const (
	ReInterviewPending  = "pending"
	ReInterviewApproved = "approved"
	ReInterviewRejected = "rejected"
)

// ReInterviewRequest asks an admin to reopen a completed candidate for
// another interview cycle. It is resolved at most once.
type ReInterviewRequest struct {
	ID            string `json:"id"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name,omitempty"`
	RequestedBy   string `json:"requested_by,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// ReInterviewList is the envelope for GET /re-interview/pending.
type ReInterviewList struct {
	Requests []ReInterviewRequest `json:"requests"`
	Total    int                  `json:"total"`
}
