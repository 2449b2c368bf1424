// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, log level, body limits); everything
// here is specific to the recruitment front-end.
type AppConfig struct {
	// Recruitment backend
	APIBaseURL string        // e.g. http://localhost:8000/api
	APITimeout time.Duration // per-request ceiling for backend calls

	// Session management configuration
	SessionKey        string        // Secret key for signing session cookies (must be strong in production)
	SessionName       string        // Cookie name for sessions (default: recruitdesk-session)
	SessionDomain     string        // Cookie domain (blank means current host)
	SessionMaxAge     time.Duration // Upper bound on a session; the token's own expiry may cut it shorter
	SessionRevalidate time.Duration // How often the identity is re-read from the backend (0 means every request)

	// Form protection
	CSRFKey   string // 32-byte key for gorilla/csrf
	WizardKey string // Key signing the wizard draft cookies

	// PublicBaseURL is the externally reachable root used for the apply QR
	// code (blank means the request's own host).
	PublicBaseURL string

	FetchCap int    // Candidates fetched per list page before in-process filtering
	SiteName string // Shown in every page header

	// Rate limits (0 disables)
	LoginRateLimit int // login attempts per minute per client address
	ApplyRateLimit int // public applications per hour per client address

	// Audit logging
	AuditLogAuth    string // "log" or "off"
	AuditLogActions string // "log" or "off"
}
