// Package listfilter narrows an already-fetched candidate page in memory.
package listfilter

import (
	"strings"

	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// DefaultCap bounds how many candidates a listing fetches before filtering.
const DefaultCap = 200

// Query is a text search plus an optional exact status.
type Query struct {
	Text   string
	Status string
}

// Apply returns the records matching q in their original order. The input
// is not modified.
func Apply(records []models.Candidate, q Query) []models.Candidate {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	status := strings.TrimSpace(q.Status)

	out := make([]models.Candidate, 0, len(records))
	for _, c := range records {
		if status != "" && c.Status != status {
			continue
		}
		if text != "" && !matches(c, text) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c models.Candidate, needle string) bool {
	for _, hay := range []string{c.CandidateID, c.Name, c.Email, c.RoleApplied} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

// CapReached reports whether a fetch of n records hit the cap, meaning
// more records may exist than were searched.
func CapReached(n, limit int) bool {
	return limit > 0 && n >= limit
}
