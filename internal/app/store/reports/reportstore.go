// internal/app/store/reports/reportstore.go
package reportstore

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
)

// Store downloads the backend's generated spreadsheets.
type Store struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// Range is an optional inclusive date window (YYYY-MM-DD).
type Range struct {
	From string
	To   string
}

func (r Range) values() url.Values {
	q := url.Values{}
	q.Set("from_date", strings.TrimSpace(r.From))
	q.Set("to_date", strings.TrimSpace(r.To))
	return q
}

// DailyLog downloads the daily recruitment log.
func (s *Store) DailyLog(ctx context.Context, r Range) (*apiclient.Blob, error) {
	return s.api.Blob(ctx, http.MethodGet, apiclient.WithQuery("/reports/daily-log", r.values()))
}

// InterviewResults downloads interview outcomes, optionally by role and decision.
func (s *Store) InterviewResults(ctx context.Context, r Range, role, decision string) (*apiclient.Blob, error) {
	q := r.values()
	q.Set("role", normalize.QueryParam(role))
	q.Set("decision", normalize.Decision(decision))
	return s.api.Blob(ctx, http.MethodGet, apiclient.WithQuery("/reports/interview-results", q))
}

// AuditLogs downloads the backend audit trail.
func (s *Store) AuditLogs(ctx context.Context, r Range) (*apiclient.Blob, error) {
	return s.api.Blob(ctx, http.MethodGet, apiclient.WithQuery("/reports/audit-logs", r.values()))
}
