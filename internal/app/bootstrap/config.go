// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// minProdKeyLen is the shortest session key accepted in production.
const minProdKeyLen = 32

// appConfigKeys defines the configuration keys for RecruitDesk.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: RECRUITDESK_API_BASE_URL, RECRUITDESK_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000/api", Desc: "Recruitment backend API base URL"},
	{Name: "api_timeout", Default: "30s", Desc: "Per-request timeout for backend calls"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "recruitdesk-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "12h", Desc: "Maximum session lifetime"},
	{Name: "session_revalidate", Default: "5m", Desc: "Re-read the signed-in identity from the backend this often (0 means every request)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-0123456789ABCDEF", Desc: "CSRF token key (32 bytes)"},
	{Name: "wizard_key", Default: "dev-only-wizard-key-0123456789ABCD", Desc: "Wizard draft cookie signing key"},

	{Name: "public_base_url", Default: "", Desc: "Public site root for the apply QR code (blank uses the request host)"},
	{Name: "fetch_cap", Default: 200, Desc: "Candidates fetched per list before in-process filtering"},
	{Name: "site_name", Default: "HR Recruitment Portal", Desc: "Site name shown in the header"},

	{Name: "login_rate_limit", Default: 10, Desc: "Login attempts per minute per client address (0 disables)"},
	{Name: "apply_rate_limit", Default: 5, Desc: "Public applications per hour per client address (0 disables)"},

	{Name: "audit_log_auth", Default: "log", Desc: "Auth event logging: 'log' or 'off'"},
	{Name: "audit_log_actions", Default: "log", Desc: "Recruitment action logging: 'log' or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, RECRUITDESK_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "RECRUITDESK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: strings.TrimRight(strings.TrimSpace(appValues.String("api_base_url")), "/"),
		APITimeout: appValues.Duration("api_timeout", 30*time.Second),

		SessionKey:        appValues.String("session_key"),
		SessionName:       appValues.String("session_name"),
		SessionDomain:     appValues.String("session_domain"),
		SessionMaxAge:     appValues.Duration("session_max_age", 12*time.Hour),
		SessionRevalidate: appValues.Duration("session_revalidate", 5*time.Minute),

		CSRFKey:   appValues.String("csrf_key"),
		WizardKey: appValues.String("wizard_key"),

		PublicBaseURL: strings.TrimSpace(appValues.String("public_base_url")),
		FetchCap:      appValues.Int("fetch_cap"),
		SiteName:      appValues.String("site_name"),

		LoginRateLimit: appValues.Int("login_rate_limit"),
		ApplyRateLimit: appValues.Int("apply_rate_limit"),

		AuditLogAuth:    appValues.String("audit_log_auth"),
		AuditLogActions: appValues.String("audit_log_actions"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAbsoluteURL(appCfg.APIBaseURL); err != nil {
		logger.Error("invalid api_base_url", zap.String("api_base_url", appCfg.APIBaseURL), zap.Error(err))
		return fmt.Errorf("invalid api_base_url: %w", err)
	}
	if appCfg.PublicBaseURL != "" {
		if err := validateAbsoluteURL(appCfg.PublicBaseURL); err != nil {
			return fmt.Errorf("invalid public_base_url: %w", err)
		}
	}
	if appCfg.FetchCap <= 0 {
		return fmt.Errorf("fetch_cap must be positive, got %d", appCfg.FetchCap)
	}
	if appCfg.LoginRateLimit < 0 || appCfg.ApplyRateLimit < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}
	if coreCfg != nil && coreCfg.Env == "prod" {
		for name, key := range map[string]string{
			"session_key": appCfg.SessionKey,
			"csrf_key":    appCfg.CSRFKey,
			"wizard_key":  appCfg.WizardKey,
		} {
			if len(key) < minProdKeyLen || strings.HasPrefix(key, "dev-only") {
				return fmt.Errorf("%s must be a strong secret of at least %d bytes in prod", name, minProdKeyLen)
			}
		}
	}
	return nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
