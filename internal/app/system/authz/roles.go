// internal/app/system/authz/roles.go
package authz

import (
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// Capability sets. Route guards and templates both read from these, so a
// screen and the button that leads to it never disagree.
var (
	OnboardRoles            = []string{models.RoleAdmin, models.RoleHR}
	InterviewRoles          = []string{models.RoleAdmin, models.RoleHR, models.RoleInterviewer}
	RequestReInterviewRoles = []string{models.RoleHR, models.RoleInterviewer}
	ResolveReInterviewRoles = []string{models.RoleAdmin}
	ReportRoles             = []string{models.RoleAdmin, models.RoleHR}
	QRCodeRoles             = []string{models.RoleAdmin, models.RoleHR}
)

// HasAnyRole reports whether the current request's user has any of the given roles.
// Returns false if no user is present (i.e., not signed in).
func HasAnyRole(r *http.Request, roles ...string) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.HasAnyRole(roles...)
}

// Role returns the current user's role (lowercased) and whether a user is present.
func Role(r *http.Request) (string, bool) {
	role, _, _, ok := UserCtx(r)
	return role, ok
}

func CanOnboard(r *http.Request) bool            { return HasAnyRole(r, OnboardRoles...) }
func CanInterview(r *http.Request) bool          { return HasAnyRole(r, InterviewRoles...) }
func CanRequestReInterview(r *http.Request) bool { return HasAnyRole(r, RequestReInterviewRoles...) }
func CanResolveReInterview(r *http.Request) bool { return HasAnyRole(r, ResolveReInterviewRoles...) }
func CanViewReports(r *http.Request) bool        { return HasAnyRole(r, ReportRoles...) }
func CanViewQRCode(r *http.Request) bool         { return HasAnyRole(r, QRCodeRoles...) }
