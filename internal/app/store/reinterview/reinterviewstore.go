// internal/app/store/reinterview/reinterviewstore.go
package reinterviewstore

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// Store wraps the backend's re-interview endpoints.
type Store struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

type requestBody struct {
	CandidateID string `json:"candidate_id"`
	Reason      string `json:"reason"`
}

// Request asks for another interview cycle for a completed candidate.
func (s *Store) Request(ctx context.Context, candidateID, reason string) (models.ReInterviewRequest, error) {
	var out models.ReInterviewRequest
	err := s.api.Do(ctx, http.MethodPost, "/re-interview/request", requestBody{
		CandidateID: strings.TrimSpace(candidateID),
		Reason:      strings.TrimSpace(reason),
	}, &out)
	return out, err
}

type resolveBody struct {
	RequestID string `json:"request_id"`
	Approved  bool   `json:"approved"`
}

// Resolve approves or rejects a pending request. Admin only on the backend.
func (s *Store) Resolve(ctx context.Context, requestID string, approved bool) error {
	return s.api.Do(ctx, http.MethodPost, "/re-interview/resolve", resolveBody{
		RequestID: strings.TrimSpace(requestID),
		Approved:  approved,
	}, nil)
}

// Pending lists unresolved requests.
func (s *Store) Pending(ctx context.Context) (models.ReInterviewList, error) {
	var out models.ReInterviewList
	err := s.api.Do(ctx, http.MethodGet, "/re-interview/pending", nil, &out)
	return out, err
}
