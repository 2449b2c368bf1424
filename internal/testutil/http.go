package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// AdminUser returns a TestUser with admin role.
func AdminUser() TestUser {
	return TestUser{ID: "u-admin", Name: "Test Admin", Email: "admin@test.com", Role: models.RoleAdmin}
}

// HRUser returns a TestUser with hr role.
func HRUser() TestUser {
	return TestUser{ID: "u-hr", Name: "Test HR", Email: "hr@test.com", Role: models.RoleHR}
}

// InterviewerUser returns a TestUser with interviewer role.
func InterviewerUser() TestUser {
	return TestUser{ID: "u-interviewer", Name: "Test Interviewer", Email: "interviewer@test.com", Role: models.RoleInterviewer}
}

// RecruiterUser returns a TestUser with recruiter role.
func RecruiterUser() TestUser {
	return TestUser{ID: "u-recruiter", Name: "Test Recruiter", Email: "recruiter@test.com", Role: models.RoleRecruiter}
}

// WithUser adds a user and the fake backend token to the request context.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	r = auth.WithTestUser(r, &auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
	return r.WithContext(apiclient.WithToken(r.Context(), BackendToken))
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	return WithUser(NewRequest(method, target), user)
}

// NewFormRequest creates a urlencoded POST carrying form, with user in
// context when user is non-nil.
func NewFormRequest(target, form string, user *TestUser) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if user != nil {
		r = WithUser(r, *user)
	}
	return r
}

// ResponseRecorder wraps httptest.ResponseRecorder with assertion helpers.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status = %d, want %d; body: %s", r.Code, expected, r.Body.String())
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code < 300 || r.Code >= 400 {
		t.Errorf("expected redirect, got status %d", r.Code)
		return
	}
	if loc := r.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Location = %q, want %q", loc, expectedLocation)
	}
}

// AssertContains checks that the response body contains expected.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("body does not contain %q", expected)
	}
}

// AssertNotContains checks that the response body does not contain s.
func (r *ResponseRecorder) AssertNotContains(t interface{ Errorf(string, ...any) }, s string) {
	if strings.Contains(r.Body.String(), s) {
		t.Errorf("body unexpectedly contains %q", s)
	}
}
