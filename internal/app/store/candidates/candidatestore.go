// internal/app/store/candidates/candidatestore.go
package candidatestore

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// ErrNotFound is returned when no candidate has the requested ID.
var ErrNotFound = errors.New("candidate not found")

// Store wraps the backend's candidate endpoints.
type Store struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// ListParams shapes GET /candidates.
type ListParams struct {
	Skip   int
	Limit  int
	Status string
	Role   string
}

// List fetches one page of candidates.
func (s *Store) List(ctx context.Context, p ListParams) (models.CandidateList, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(max(p.Skip, 0)))
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	q.Set("status", normalize.Status(p.Status))
	q.Set("role", normalize.QueryParam(p.Role))

	var out models.CandidateList
	err := s.api.Do(ctx, http.MethodGet, apiclient.WithQuery("/candidates", q), nil, &out)
	return out, err
}

// Search matches q against candidate ID, name and email on the backend.
// A blank query returns an empty result without calling the backend.
func (s *Store) Search(ctx context.Context, q string) (models.CandidateList, error) {
	q = normalize.QueryParam(q)
	if q == "" {
		return models.CandidateList{Candidates: []models.Candidate{}}, nil
	}
	var out models.CandidateList
	err := s.api.Do(ctx, http.MethodGet, apiclient.WithQuery("/candidates/search", url.Values{"q": {q}}), nil, &out)
	return out, err
}

// Get fetches one candidate by its human-readable ID.
func (s *Store) Get(ctx context.Context, candidateID string) (models.Candidate, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return models.Candidate{}, ErrNotFound
	}
	var out models.Candidate
	err := s.api.Do(ctx, http.MethodGet, "/candidates/id/"+url.PathEscape(candidateID), nil, &out)
	if apiclient.IsNotFound(err) {
		return models.Candidate{}, ErrNotFound
	}
	return out, err
}

// Create registers a candidate on behalf of staff.
func (s *Store) Create(ctx context.Context, in StaffInput) (models.Candidate, error) {
	var out models.Candidate
	err := s.api.Do(ctx, http.MethodPost, "/candidates", in.payload(), &out)
	return out, err
}

// SelfOnboard submits a public application. No token is sent.
func (s *Store) SelfOnboard(ctx context.Context, in PublicInput) (models.Candidate, error) {
	var out models.Candidate
	err := s.api.Do(ctx, http.MethodPost, "/public/onboard", in.payload(), &out, apiclient.Public())
	return out, err
}
