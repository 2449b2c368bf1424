// internal/domain/models/interview.go
package models

// Interview decisions.
const (
	DecisionShortlist = "shortlist"
	DecisionReject    = "reject"
	DecisionHold      = "hold"
)

// Decisions lists every decision an interviewer may record, in display order.
var Decisions = []string{DecisionShortlist, DecisionReject, DecisionHold}

// IsDecision reports whether d is a recognised interview decision.
func IsDecision(d string) bool {
	for _, v := range Decisions {
		if v == d {
			return true
		}
	}
	return false
}

// Interview is a completed interview record. Records are append-only.
type Interview struct {
	ID              string `json:"id"`
	CandidateID     string `json:"candidate_id"`
	CandidateName   string `json:"candidate_name,omitempty"`
	RoleApplied     string `json:"role_applied,omitempty"`
	Decision        string `json:"decision"`
	Notes           string `json:"notes,omitempty"`
	InterviewDate   string `json:"interview_date,omitempty"`
	InterviewerName string `json:"interviewer_name,omitempty"`
}

// InterviewList is the envelope for GET /interviews/completed.
type InterviewList struct {
	Interviews []Interview `json:"interviews"`
	Total      int         `json:"total"`
}

// InterviewSubmission is the result of POST /interviews/submit.
type InterviewSubmission struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidate_id"`
	Decision    string `json:"decision"`
	Status      string `json:"status"`
}
