// internal/app/store/interviews/interviewstore.go
package interviewstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// Store wraps the backend's interview endpoints.
type Store struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// YetToInterview lists candidates awaiting interview, optionally narrowed by
// role substring and eligibility.
func (s *Store) YetToInterview(ctx context.Context, role, eligibility string) (models.CandidateList, error) {
	q := url.Values{}
	q.Set("role", normalize.QueryParam(role))
	q.Set("eligibility", normalize.Status(eligibility))

	var out models.CandidateList
	err := s.api.Do(ctx, http.MethodGet, apiclient.WithQuery("/interviews/yet-to-interview", q), nil, &out)
	return out, err
}

type submitRequest struct {
	CandidateID string `json:"candidate_id"`
	Notes       string `json:"notes"`
	Decision    string `json:"decision"`
}

// Submit records an interview outcome. The backend moves the candidate to
// interview_completed and refuses candidates already interviewed.
func (s *Store) Submit(ctx context.Context, candidateID, decision, notes string) (models.InterviewSubmission, error) {
	decision = normalize.Decision(decision)
	if !models.IsDecision(decision) {
		return models.InterviewSubmission{}, fmt.Errorf("invalid decision %q", decision)
	}
	var out models.InterviewSubmission
	err := s.api.Do(ctx, http.MethodPost, "/interviews/submit", submitRequest{
		CandidateID: strings.TrimSpace(candidateID),
		Notes:       strings.TrimSpace(notes),
		Decision:    decision,
	}, &out)
	return out, err
}

// CompletedFilter narrows GET /interviews/completed. Dates are YYYY-MM-DD.
type CompletedFilter struct {
	From     string
	To       string
	Role     string
	Decision string
}

// Query renders f as backend query parameters.
func (f CompletedFilter) Query() url.Values {
	q := url.Values{}
	q.Set("from_date", strings.TrimSpace(f.From))
	q.Set("to_date", strings.TrimSpace(f.To))
	q.Set("role", normalize.QueryParam(f.Role))
	q.Set("decision", normalize.Decision(f.Decision))
	return q
}

// Completed lists completed interviews, newest first.
func (s *Store) Completed(ctx context.Context, f CompletedFilter) (models.InterviewList, error) {
	var out models.InterviewList
	err := s.api.Do(ctx, http.MethodGet, apiclient.WithQuery("/interviews/completed", f.Query()), nil, &out)
	return out, err
}

// GetCompleted fetches one completed interview.
func (s *Store) GetCompleted(ctx context.Context, id string) (models.Interview, error) {
	var out models.Interview
	err := s.api.Do(ctx, http.MethodGet, "/interviews/completed/"+url.PathEscape(strings.TrimSpace(id)), nil, &out)
	return out, err
}
