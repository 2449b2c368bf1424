// internal/app/features/candidates/view.go
package candidates

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/htmlsanitize"
	"github.com/dalemusser/recruitdesk/internal/app/system/navigation"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const msgNotFound = "Candidate not found"

var notices = map[string]string{
	"interview":   "Interview recorded.",
	"reinterview": "Re-interview request submitted for admin approval.",
}

func candidatePath(id string) string { return "/candidates/" + url.PathEscape(id) }

/*─────────────────────────────────────────────────────────────────────────────*
| GET /candidates/{id}                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDetail shows one candidate with the interview or re-interview form
// the viewer's role and the candidate's status allow.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	data := h.detail(r, c)
	data.Notice = notices[query.Get(r, "done")]
	templates.Render(w, r, "candidate_detail", data)
}

// load fetches the candidate named in the URL, presenting any failure.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (models.Candidate, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	c, err := h.Candidates.Get(ctx, id)
	switch {
	case errors.Is(err, candidatestore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, msgNotFound, "/candidates", "Back to Search")
		return c, false
	case err != nil:
		h.ErrLog.HandleAPIError(w, r, "candidate fetch failed", err, candidatePath(id))
		return c, false
	}
	return c, true
}

func (h *Handler) detail(r *http.Request, c models.Candidate) detailData {
	back := navigation.SafeBackURL(r, navigation.CandidatesBackURL)
	return detailData{
		Base:             formutil.NewBase(r, c.Name, back),
		Candidate:        c,
		Sections:         sections(c),
		CanInterview:     authz.CanInterview(r) && c.Status == models.StatusYetToInterview,
		Decisions:        models.Decisions,
		CanRequestReview: authz.CanRequestReInterview(r) && c.Status == models.StatusInterviewCompleted,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /candidates/{id}/interview                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleInterview records the interview decision for a candidate that is
// yet to be interviewed. Validation and backend rejections re-render the
// candidate page with the message.
func (h *Handler) HandleInterview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/candidates")
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	in := interviewForm{
		Decision: normalize.Decision(r.PostFormValue("decision")),
		Notes:    htmlsanitize.PlainText(r.PostFormValue("notes")),
	}
	if msg := formutil.Check(in); msg != "" {
		h.rerender(w, r, func(d *detailData) { d.Interview, d.InterviewError = in, msg })
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	res, err := h.Interviews.Submit(ctx, id, in.Decision, in.Notes)
	if err != nil {
		if inlineError(err) {
			h.rerender(w, r, func(d *detailData) { d.Interview, d.InterviewError = in, apiclient.MessageOf(err) })
			return
		}
		h.ErrLog.HandleAPIError(w, r, "interview submit failed", err, candidatePath(id))
		return
	}

	h.AuditLog.InterviewSubmitted(r, id, in.Decision)
	h.Log.Info("interview recorded", zap.String("candidate_id", id), zap.String("decision", in.Decision), zap.String("status", res.Status))
	http.Redirect(w, r, candidatePath(id)+"?done=interview", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /candidates/{id}/re-interview                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleReInterview files a request for an admin to reopen a completed
// candidate.
func (h *Handler) HandleReInterview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/candidates")
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	in := reInterviewForm{Reason: htmlsanitize.PlainText(r.PostFormValue("reason"))}
	if msg := formutil.Check(in); msg != "" {
		h.rerender(w, r, func(d *detailData) { d.ReInterview, d.ReInterviewError = in, msg })
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	req, err := h.ReInterview.Request(ctx, id, in.Reason)
	if err != nil {
		if inlineError(err) {
			h.rerender(w, r, func(d *detailData) { d.ReInterview, d.ReInterviewError = in, apiclient.MessageOf(err) })
			return
		}
		h.ErrLog.HandleAPIError(w, r, "re-interview request failed", err, candidatePath(id))
		return
	}

	h.AuditLog.ReInterviewRequested(r, id, req.ID)
	h.Log.Info("re-interview requested", zap.String("candidate_id", id), zap.String("request_id", req.ID))
	http.Redirect(w, r, candidatePath(id)+"?done=reinterview", http.StatusSeeOther)
}

// rerender reloads the candidate and renders its page with a form error.
func (h *Handler) rerender(w http.ResponseWriter, r *http.Request, set func(*detailData)) {
	c, ok := h.load(w, r)
	if !ok {
		return
	}
	data := h.detail(r, c)
	set(&data)
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "candidate_detail", data)
}
