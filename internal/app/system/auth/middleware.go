// internal/app/system/auth/middleware.go
package auth

import (
	"net/http"
	"net/url"
	"strings"
)

const noPermission = "You do not have permission to view this page."

// RequireSignedIn lets the request through only for a signed-in user.
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (m *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return m.guard(nil, next)
}

// RequireRole lets the request through only for a signed-in user holding
// one of the allowed roles. Other roles see the no-permission view in place.
func (m *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := append([]string(nil), allowed...)
	return func(next http.Handler) http.Handler {
		return m.guard(set, next)
	}
}

func (m *SessionManager) guard(allowed []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, _ := CurrentUser(r)
		switch Decide(GuardState{User: u, Loading: IsLoading(r)}, allowed) {
		case Allow:
			next.ServeHTTP(w, r)
		case ShowPlaceholder:
			servePlaceholder(w, r)
		case RedirectLogin:
			RedirectToLogin(w, r)
		case ShowForbidden:
			m.serveForbidden(w, r)
		}
	})
}

// RedirectToLogin sends the client to /login, remembering where it was.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	RedirectToLoginFrom(w, r, currentURI(r))
}

// RedirectToLoginFrom is RedirectToLogin with an explicit return path, for
// form posts whose own URL cannot be revisited with GET.
func RedirectToLoginFrom(w http.ResponseWriter, r *http.Request, ret string) {
	dest := "/login"
	if ret != "" {
		dest += "?return=" + url.QueryEscape(ret)
	}

	// HTMX: full-page client redirect (no partial swap)
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func (m *SessionManager) serveForbidden(w http.ResponseWriter, r *http.Request) {
	if m.forbidden != nil && wantsHTML(r) {
		m.forbidden.ServeHTTP(w, r)
		return
	}
	http.Error(w, noPermission, http.StatusForbidden)
}

func servePlaceholder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "2")
	if !wantsHTML(r) {
		http.Error(w, "session check in progress", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Refresh", "2")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte(`<!doctype html><title>Loading…</title><p class="loading">Loading…</p>`))
}

func wantsHTML(r *http.Request) bool {
	// Very light heuristic: treat it as HTML if it's HTMX or Accepts text/html.
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	// Preserve path + query as a return param.
	u := *r.URL
	return u.RequestURI()
}
