// internal/app/features/interviews/routes.go
package interviews

import (
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes wires the interview queues under /interviews.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/yet-to-interview", h.ServeYetToInterview)
	r.With(sm.RequireRole(authz.InterviewRoles...)).Post("/yet-to-interview/{id}", h.HandleSubmit)

	r.Get("/completed", h.ServeCompleted)
	r.Get("/completed/{id}", h.ServeCompletedDetail)

	return r
}
