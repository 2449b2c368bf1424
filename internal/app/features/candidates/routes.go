// internal/app/features/candidates/routes.go
package candidates

import (
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes wires candidate search and detail under /candidates. Every
// signed-in role may look; actions are gated by capability.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.With(sm.RequireRole(authz.OnboardRoles...)).Post("/", h.HandleQuickAdd)

	r.Route("/{id}", func(cr chi.Router) {
		cr.Get("/", h.ServeDetail)
		cr.Get("/qr.png", h.ServeQR)
		cr.With(sm.RequireRole(authz.InterviewRoles...)).Post("/interview", h.HandleInterview)
		cr.With(sm.RequireRole(authz.RequestReInterviewRoles...)).Post("/re-interview", h.HandleReInterview)
	})

	return r
}
