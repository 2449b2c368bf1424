// internal/app/features/interviews/completed.go
package interviews

import (
	"context"
	"net/http"
	"strings"

	interviewstore "github.com/dalemusser/recruitdesk/internal/app/store/interviews"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/navigation"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /interviews/completed                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCompleted lists completed interviews filtered by date range, role
// and decision. An invalid filter is reported without querying the backend.
func (h *Handler) ServeCompleted(w http.ResponseWriter, r *http.Request) {
	f := completedFilter{
		From:     strings.TrimSpace(query.Get(r, "from")),
		To:       strings.TrimSpace(query.Get(r, "to")),
		Role:     normalize.QueryParam(query.Get(r, "role")),
		Decision: normalize.Decision(query.Get(r, "decision")),
	}
	data := completedData{
		Base:      formutil.NewBase(r, "Interview Completed", "/dashboard"),
		Filter:    f,
		Decisions: models.Decisions,
	}
	if msg := formutil.Check(f); msg != "" {
		data.SetError(msg)
		w.WriteHeader(http.StatusBadRequest)
		templates.Render(w, r, "interviews_completed", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	list, err := h.Interviews.Completed(ctx, interviewstore.CompletedFilter{
		From:     f.From,
		To:       f.To,
		Role:     f.Role,
		Decision: f.Decision,
	})
	if err != nil {
		h.ErrLog.HandleAPIError(w, r, "completed interviews fetch failed", err, "/dashboard")
		return
	}
	data.Interviews = list.Interviews

	templates.Render(w, r, "interviews_completed", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /interviews/completed/{id}                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCompletedDetail shows one interview record.
func (h *Handler) ServeCompletedDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	back := navigation.SafeBackURL(r, navigation.CompletedInterviewsBackURL)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	iv, err := h.Interviews.GetCompleted(ctx, id)
	if apiclient.IsNotFound(err) {
		h.ErrLog.LogNotFound(w, r, "Interview not found", back, "Back to Completed")
		return
	}
	if err != nil {
		h.ErrLog.HandleAPIError(w, r, "completed interview fetch failed", err, back)
		return
	}

	templates.Render(w, r, "interview_detail", completedDetailData{
		Base:      formutil.NewBase(r, "Interview "+iv.CandidateID, back),
		Interview: iv,
	})
}
