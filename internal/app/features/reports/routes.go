// internal/app/features/reports/routes.go
package reports

import (
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the reports page and downloads under /reports.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(authz.ReportRoles...))

	r.Get("/", h.ServeIndex)
	r.Get("/all-candidates.csv", h.ServeAllCandidatesCSV)
	r.Get("/all-candidates.xlsx", h.ServeAllCandidatesXLSX)
	r.Get("/branch-summary.csv", h.ServeBranchSummaryCSV)
	r.Get("/branch-summary.xlsx", h.ServeBranchSummaryXLSX)
	r.Get("/daily-log", h.ServeDailyLog)
	r.Get("/interview-results", h.ServeInterviewResults)
	r.Get("/audit-logs", h.ServeAuditLogs)
	return r
}
