// internal/app/features/interviews/pending.go
package interviews

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/htmlsanitize"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const pendingPath = "/interviews/yet-to-interview"

/*─────────────────────────────────────────────────────────────────────────────*
| GET /interviews/yet-to-interview                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeYetToInterview lists candidates awaiting interview, filtered by role
// and eligibility on the backend. Interviewers get an inline decision form
// on each row.
func (h *Handler) ServeYetToInterview(w http.ResponseWriter, r *http.Request) {
	role := normalize.QueryParam(query.Get(r, "role"))
	elig := normalize.Status(query.Get(r, "eligibility"))
	var notice string
	if done := normalize.QueryParam(query.Get(r, "done")); done != "" {
		notice = "Interview recorded for " + done + "."
	}
	h.renderPending(w, r, role, elig, notice, "", "")
}

func (h *Handler) renderPending(w http.ResponseWriter, r *http.Request, role, elig, notice, failedID, errMsg string) {
	data := pendingData{
		Base:               formutil.NewBase(r, "Yet To Interview", "/dashboard"),
		Role:               role,
		Eligibility:        elig,
		EligibilityOptions: models.EligibilityOptions,
		Decisions:          models.Decisions,
		CanSubmit:          authz.CanInterview(r),
		Notice:             notice,
		FailedID:           failedID,
	}
	data.SetError(errMsg)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	list, err := h.Interviews.YetToInterview(ctx, role, elig)
	if err != nil {
		h.ErrLog.HandleAPIError(w, r, "yet-to-interview fetch failed", err, "/dashboard")
		return
	}
	data.Candidates = list.Candidates

	if errMsg != "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	templates.Render(w, r, "interviews_pending", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /interviews/yet-to-interview/{id}                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSubmit records a decision from a row of the queue and returns to
// the same filtered queue.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", pendingPath)
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	role := normalize.QueryParam(r.PostFormValue("role"))
	elig := normalize.Status(r.PostFormValue("eligibility"))

	in := submitForm{
		Decision: normalize.Decision(r.PostFormValue("decision")),
		Notes:    htmlsanitize.PlainText(r.PostFormValue("notes")),
	}
	if msg := formutil.Check(in); msg != "" {
		h.renderPending(w, r, role, elig, "", id, id+": "+msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	if _, err := h.Interviews.Submit(ctx, id, in.Decision, in.Notes); err != nil {
		s := apiclient.StatusOf(err)
		if !errors.Is(err, apiclient.ErrSessionExpired) && s >= 400 && s < 500 {
			h.renderPending(w, r, role, elig, "", id, id+": "+apiclient.MessageOf(err))
			return
		}
		h.ErrLog.HandleAPIError(w, r, "interview submit failed", err, pendingPath)
		return
	}

	h.AuditLog.InterviewSubmitted(r, id, in.Decision)
	h.Log.Info("interview recorded", zap.String("candidate_id", id), zap.String("decision", in.Decision))

	q := url.Values{}
	q.Set("role", role)
	q.Set("eligibility", elig)
	q.Set("done", id)
	http.Redirect(w, r, apiclient.WithQuery(pendingPath, q), http.StatusSeeOther)
}
