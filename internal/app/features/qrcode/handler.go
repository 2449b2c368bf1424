// internal/app/features/qrcode/handler.go
package qrcode

import (
	"net/http"
	"strconv"
	"strings"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	qrgen "github.com/dalemusser/recruitdesk/internal/app/system/qrcode"
	"github.com/dalemusser/recruitdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// maxSize caps ?size on the PNG endpoint.
const maxSize = 1024

// Handler serves the printable QR code that points applicants at /apply.
type Handler struct {
	// PublicBaseURL is the externally reachable site root. When blank the
	// request's own scheme and host are used.
	PublicBaseURL string
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(publicBaseURL string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		PublicBaseURL: strings.TrimSpace(publicBaseURL),
		ErrLog:        errLog,
		Log:           logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	ApplyURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /qr-code                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "qrcode_page", pageData{
		BaseVM:   viewdata.NewBaseVM(r, "Public Form QR Code", "/dashboard"),
		ApplyURL: h.applyURL(r),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /qr-code/public-form.png                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ServePNG renders the apply URL as a PNG. ?download=1 makes it an
// attachment.
func (h *Handler) ServePNG(w http.ResponseWriter, r *http.Request) {
	size, _ := strconv.Atoi(query.Get(r, "size"))
	if size > maxSize {
		size = maxSize
	}
	img, err := qrgen.PNG(h.applyURL(r), size)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "public form qr failed", err, "Unable to create the QR code.", "/qr-code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	if query.Get(r, "download") != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="public-form-qr.png"`)
	}
	_, _ = w.Write(img)
}

func (h *Handler) applyURL(r *http.Request) string {
	if h.PublicBaseURL != "" {
		return qrgen.ApplyURL(h.PublicBaseURL)
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return qrgen.ApplyURL(scheme + "://" + r.Host)
}
