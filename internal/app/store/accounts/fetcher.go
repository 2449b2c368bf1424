// internal/app/store/accounts/fetcher.go
package accountstore

import (
	"context"

	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
)

// Fetcher implements auth.UserFetcher on top of GET /auth/me.
type Fetcher struct {
	store *Store
}

// NewFetcher creates a UserFetcher backed by s.
func NewFetcher(s *Store) *Fetcher {
	return &Fetcher{store: s}
}

// FetchUser returns the current identity. Any error, including an expired
// token, is returned to the caller.
func (f *Fetcher) FetchUser(ctx context.Context) (*auth.SessionUser, error) {
	u, err := f.store.Me(ctx)
	if err != nil {
		return nil, err
	}
	return &auth.SessionUser{ID: u.ID, Name: u.FullName, Email: u.Email, Role: u.Role}, nil
}
