// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"
	"time"

	applyfeature "github.com/dalemusser/recruitdesk/internal/app/features/apply"
	candidatesfeature "github.com/dalemusser/recruitdesk/internal/app/features/candidates"
	dashboardfeature "github.com/dalemusser/recruitdesk/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	healthfeature "github.com/dalemusser/recruitdesk/internal/app/features/health"
	homefeature "github.com/dalemusser/recruitdesk/internal/app/features/home"
	interviewsfeature "github.com/dalemusser/recruitdesk/internal/app/features/interviews"
	loginfeature "github.com/dalemusser/recruitdesk/internal/app/features/login"
	logoutfeature "github.com/dalemusser/recruitdesk/internal/app/features/logout"
	onboardingfeature "github.com/dalemusser/recruitdesk/internal/app/features/onboarding"
	profilefeature "github.com/dalemusser/recruitdesk/internal/app/features/profile"
	qrcodefeature "github.com/dalemusser/recruitdesk/internal/app/features/qrcode"
	reinterviewfeature "github.com/dalemusser/recruitdesk/internal/app/features/reinterview"
	reportsfeature "github.com/dalemusser/recruitdesk/internal/app/features/reports"
	accountstore "github.com/dalemusser/recruitdesk/internal/app/store/accounts"
	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	kpistore "github.com/dalemusser/recruitdesk/internal/app/store/dashboard"
	interviewstore "github.com/dalemusser/recruitdesk/internal/app/store/interviews"
	reinterviewstore "github.com/dalemusser/recruitdesk/internal/app/store/reinterview"
	reportstore "github.com/dalemusser/recruitdesk/internal/app/store/reports"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/ratelimit"
	"github.com/dalemusser/recruitdesk/internal/app/system/wizard"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// draftMaxAge bounds how long an unfinished wizard survives in its cookie.
const draftMaxAge = 24 * time.Hour

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client, and any
// Startup hooks are ready. It boots the template engine and then wires
// every feature router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, coreCfg.Env == "prod", logger)
}

// newRouter wires the stores, shared services and feature routers.
// Secure cookies and TLS-only CSRF checks are enabled when secure is set.
func newRouter(appCfg AppConfig, deps DBDeps, secure bool, logger *zap.Logger) (http.Handler, error) {
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Stores, one per backend resource.
	accounts := accountstore.New(deps.API)
	candidates := candidatestore.New(deps.API)
	interviews := interviewstore.New(deps.API)
	reinterviews := reinterviewstore.New(deps.API)
	kpis := kpistore.New(deps.API)
	reports := reportstore.New(deps.API)

	// Re-read the identity periodically so role changes and revoked
	// tokens take effect without a new login.
	sessionMgr.SetUserFetcher(accountstore.NewFetcher(accounts), appCfg.SessionRevalidate)

	errorsHandler := errorsfeature.NewHandler()
	sessionMgr.SetForbiddenHandler(http.HandlerFunc(errorsHandler.Forbidden))
	errLog := errorsfeature.NewErrorLogger(logger).UseSessions(sessionMgr)

	audit := auditlog.New(logger, auditlog.Config{
		Auth:    appCfg.AuditLogAuth,
		Actions: appCfg.AuditLogActions,
	})
	drafts := wizard.NewDrafts(appCfg.WizardKey, secure, draftMaxAge, logger)
	loginLimiter := ratelimit.NewLoginLimiter(appCfg.LoginRateLimit)
	applyLimiter := ratelimit.New(appCfg.ApplyRateLimit, time.Hour)

	csrfKey := sha256.Sum256([]byte(appCfg.CSRFKey))
	protect := csrf.Protect(csrfKey[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(errorsHandler.CSRFFailure)),
	)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators. Mounted
	// ahead of the session and CSRF middleware.
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(r chi.Router) {
		if !secure {
			r.Use(plaintextCSRF)
		}
		r.Use(protect)

		// Global auth middleware: loads SessionUser and the bearer token
		// into the request context when signed in.
		r.Use(sessionMgr.LoadSessionUser)

		r.NotFound(errorsHandler.NotFound)
		r.Get("/forbidden", errorsHandler.Forbidden)

		homeHandler := homefeature.NewHandler(logger)
		r.Mount("/", homefeature.Routes(homeHandler))

		// Authentication
		loginHandler := loginfeature.NewHandler(accounts, sessionMgr, errLog, audit, loginLimiter, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, audit, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))

		// Public self-onboarding
		applyHandler := applyfeature.NewHandler(candidates, drafts, applyLimiter, errLog, audit, logger)
		r.Mount("/apply", applyfeature.Routes(applyHandler))

		// Staff screens
		dashboardHandler := dashboardfeature.NewHandler(kpis, reinterviews, errLog, logger)
		r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

		candidatesHandler := candidatesfeature.NewHandler(candidates, interviews, reinterviews, errLog, audit, appCfg.FetchCap, logger)
		r.Mount("/candidates", candidatesfeature.Routes(candidatesHandler, sessionMgr))

		interviewsHandler := interviewsfeature.NewHandler(interviews, errLog, audit, logger)
		r.Mount("/interviews", interviewsfeature.Routes(interviewsHandler, sessionMgr))

		reinterviewHandler := reinterviewfeature.NewHandler(reinterviews, errLog, audit, logger)
		r.Mount("/re-interview", reinterviewfeature.Routes(reinterviewHandler, sessionMgr))

		onboardingHandler := onboardingfeature.NewHandler(candidates, drafts, errLog, audit, logger)
		r.Mount("/onboarding", onboardingfeature.Routes(onboardingHandler, sessionMgr))

		reportsHandler := reportsfeature.NewHandler(candidates, reports, errLog, audit, appCfg.FetchCap, logger)
		r.Mount("/reports", reportsfeature.Routes(reportsHandler, sessionMgr))

		qrHandler := qrcodefeature.NewHandler(appCfg.PublicBaseURL, errLog, logger)
		r.Mount("/qr-code", qrcodefeature.Routes(qrHandler, sessionMgr))

		profileHandler := profilefeature.NewHandler(accounts, errLog, logger)
		r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))
	})

	return r, nil
}

// plaintextCSRF marks requests as plain HTTP so local development without
// TLS passes the CSRF origin checks.
func plaintextCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
