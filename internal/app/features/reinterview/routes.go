// internal/app/features/reinterview/routes.go
package reinterview

import (
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes wires the re-interview queue under /re-interview. Only admins
// resolve requests.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(authz.ResolveReInterviewRoles...))

	r.Get("/", h.ServeList)
	r.Post("/{id}/resolve", h.HandleResolve)

	return r
}
