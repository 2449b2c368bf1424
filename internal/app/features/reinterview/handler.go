// internal/app/features/reinterview/handler.go
package reinterview

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	reinterviewstore "github.com/dalemusser/recruitdesk/internal/app/store/reinterview"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the admin queue of re-interview requests.
type Handler struct {
	Requests *reinterviewstore.Store
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

func NewHandler(requests *reinterviewstore.Store, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Requests: requests,
		ErrLog:   errLog,
		AuditLog: audit,
		Log:      logger,
	}
}

type listData struct {
	formutil.Base
	Requests []models.ReInterviewRequest
	Notice   string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /re-interview                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList shows pending requests with approve and reject actions.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var notice string
	switch query.Get(r, "done") {
	case models.ReInterviewApproved:
		notice = "Request approved. The candidate is back in the interview queue."
	case models.ReInterviewRejected:
		notice = "Request rejected."
	}
	h.render(w, r, notice, "")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, notice, errMsg string) {
	data := listData{
		Base:   formutil.NewBase(r, "Re-Interview Requests", "/dashboard"),
		Notice: notice,
	}
	data.SetError(errMsg)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	list, err := h.Requests.Pending(ctx)
	if err != nil {
		h.ErrLog.HandleAPIError(w, r, "pending re-interview fetch failed", err, "/dashboard")
		return
	}
	data.Requests = list.Requests

	if errMsg != "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	templates.Render(w, r, "reinterview_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /re-interview/{id}/resolve                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleResolve approves or rejects one request. A request is resolved at
// most once; the backend refuses a second resolution and the message is
// shown above the queue.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/re-interview")
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var approved bool
	switch strings.ToLower(strings.TrimSpace(r.PostFormValue("action"))) {
	case "approve":
		approved = true
	case "reject":
	default:
		h.render(w, r, "", "Choose approve or reject.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if err := h.Requests.Resolve(ctx, id, approved); err != nil {
		s := apiclient.StatusOf(err)
		if !errors.Is(err, apiclient.ErrSessionExpired) && s >= 400 && s < 500 {
			h.render(w, r, "", apiclient.MessageOf(err))
			return
		}
		h.ErrLog.HandleAPIError(w, r, "re-interview resolve failed", err, "/re-interview")
		return
	}

	h.AuditLog.ReInterviewResolved(r, id, approved)
	h.Log.Info("re-interview resolved", zap.String("request_id", id), zap.Bool("approved", approved))

	done := models.ReInterviewRejected
	if approved {
		done = models.ReInterviewApproved
	}
	http.Redirect(w, r, "/re-interview?done="+done, http.StatusSeeOther)
}
