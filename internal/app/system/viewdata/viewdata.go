// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is shown in the header when no site_name is configured.
const DefaultSiteName = "HR Recruitment Portal"

// NavItem is one link in the header navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

type navEntry struct {
	label string
	href  string
	roles []string // empty: every signed-in user
}

var nav = []navEntry{
	{label: "Dashboard", href: "/dashboard"},
	{label: "Candidate Search", href: "/candidates"},
	{label: "Yet To Interview", href: "/interviews/yet-to-interview"},
	{label: "Interview Completed", href: "/interviews/completed"},
	{label: "Onboarding", href: "/onboarding", roles: authz.OnboardRoles},
	{label: "Reports", href: "/reports", roles: authz.ReportRoles},
	{label: "Re-Interview", href: "/re-interview", roles: authz.ResolveReInterviewRoles},
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem

	// CSRF protection
	CSRFToken string
}

var siteName = DefaultSiteName

// Init sets the site name shown in every page header.
// Call this once at startup from bootstrap.
func Init(name string) {
	if name = strings.TrimSpace(name); name != "" {
		siteName = name
	}
}

// SiteName returns the configured site name.
func SiteName() string { return siteName }

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)
	current := httpnav.CurrentPath(r)

	vm := BaseVM{
		SiteName:    siteName,
		IsLoggedIn:  signedIn,
		Role:        role,
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: current,
		CSRFToken:   csrf.Token(r),
	}
	if signedIn {
		vm.Nav = Navigation(role, current)
	}
	return vm
}

// Navigation returns the header links visible to role, marking the one
// that matches the current path.
func Navigation(role, current string) []NavItem {
	var out []NavItem
	for _, e := range nav {
		if len(e.roles) > 0 && !hasRole(e.roles, role) {
			continue
		}
		out = append(out, NavItem{
			Label:  e.label,
			Href:   e.href,
			Active: current == e.href || strings.HasPrefix(current, e.href+"/"),
		})
	}
	return out
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}
