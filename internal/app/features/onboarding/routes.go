// internal/app/features/onboarding/routes.go
package onboarding

import (
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes wires the staff onboarding wizard under /onboarding.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(authz.OnboardRoles...))

	r.Get("/", h.ServeWizard)
	r.Post("/", h.HandleWizardPost)

	return r
}
