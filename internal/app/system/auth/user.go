// internal/app/system/auth/user.go
package auth

import (
	"context"
	"net/http"
	"strings"
)

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// HasAnyRole reports whether the user's role is one of allowed.
// Comparison is case-insensitive; a nil user has no roles.
func (u *SessionUser) HasAnyRole(allowed ...string) bool {
	if u == nil {
		return false
	}
	cur := strings.ToLower(strings.TrimSpace(u.Role))
	if cur == "" {
		return false
	}
	for _, want := range allowed {
		if cur == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

type ctxKey string

const (
	currentUserKey ctxKey = "currentUser"
	loadingKey     ctxKey = "sessionLoading"
)

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok && u != nil
}

// IsLoading reports whether the session could not be revalidated in time
// for this request.
func IsLoading(r *http.Request) bool {
	v, _ := r.Context().Value(loadingKey).(bool)
	return v
}

// WithTestUser returns a copy of r carrying u, for handler tests.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func withLoading(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), loadingKey, true))
}
