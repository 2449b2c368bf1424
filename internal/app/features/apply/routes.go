// internal/app/features/apply/routes.go
package apply

import "github.com/go-chi/chi/v5"

// Routes wires the public application under /apply. No session is
// required.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeWizard)
	r.Post("/", h.HandleWizardPost)
	r.Get("/submitted", h.ServeSubmitted)
	return r
}
