// internal/app/features/qrcode/routes.go
package qrcode

import (
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the QR code page under /qr-code.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole(authz.QRCodeRoles...))

	r.Get("/", h.ServePage)
	r.Get("/public-form.png", h.ServePNG)
	return r
}
