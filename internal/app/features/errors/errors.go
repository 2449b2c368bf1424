// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status    int
	Message   string
	BackLabel string
}

// Handler is the errors feature handler. It only renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders the "access denied" page in place of the requested one.
// It is installed as the session manager's forbidden handler and also
// served at GET /forbidden.
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	RenderPage(w, r, http.StatusForbidden, "Access denied",
		"You do not have permission to view this page.", "/dashboard", "Back to Dashboard")
}

// CSRFFailure is installed as the CSRF middleware's error handler.
func (h *Handler) CSRFFailure(w http.ResponseWriter, r *http.Request) {
	RenderPage(w, r, http.StatusForbidden, "Form expired",
		"Your form has expired. Reload the page and try again.", "", "")
}

// NotFound renders a generic 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderPage(w, r, http.StatusNotFound, "Not found",
		"The page you requested does not exist.", "/", "Home")
}

// RenderPage writes status and renders the shared error page.
func RenderPage(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL, backLabel string) {
	if backLabel == "" {
		backLabel = "Back"
	}
	data := pageData{
		BaseVM:    viewdata.NewBaseVM(r, title, backURL),
		Status:    status,
		Message:   msg,
		BackLabel: backLabel,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
