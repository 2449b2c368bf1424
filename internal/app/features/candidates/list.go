// internal/app/features/candidates/list.go
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
	"github.com/dalemusser/recruitdesk/internal/app/system/listfilter"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /candidates                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList renders the candidate search page.
//
// By default one page of up to FetchCap candidates is fetched and narrowed
// in process by q and status; a warning is shown when the page is full.
// With scope=all the text query goes to the backend search endpoint
// instead, which sees every candidate.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, quickAddForm{}, "")
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, add quickAddForm, addErr string) {
	data := listData{
		Base:          formutil.NewBase(r, "Candidate Search", "/dashboard"),
		Query:         normalize.QueryParam(query.Get(r, "q")),
		Status:        normalize.Status(query.Get(r, "status")),
		Scope:         normalize.QueryParam(query.Get(r, "scope")),
		FetchCap:      h.FetchCap,
		StatusOptions: []string{models.StatusYetToInterview, models.StatusInterviewCompleted},
		CanAdd:        authz.CanOnboard(r),
		Add:           add,
		AddError:      addErr,
		AddOpen:       addErr != "",
		Roles:         models.StaffRoles,
	}
	if data.Scope != scopeAll {
		data.Scope = scopePage
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if data.Scope == scopeAll && data.Query != "" {
		res, err := h.Candidates.Search(ctx, data.Query)
		if err != nil {
			h.ErrLog.HandleAPIError(w, r, "candidate search failed", err, "/candidates")
			return
		}
		data.Fetched = len(res.Candidates)
		data.Candidates = listfilter.Apply(res.Candidates, listfilter.Query{Status: data.Status})
	} else {
		res, err := h.Candidates.List(ctx, candidatestore.ListParams{Limit: h.FetchCap})
		if err != nil {
			h.ErrLog.HandleAPIError(w, r, "candidate list failed", err, "/dashboard")
			return
		}
		data.Fetched = len(res.Candidates)
		data.CapWarning = listfilter.CapReached(data.Fetched, h.FetchCap)
		data.Candidates = listfilter.Apply(res.Candidates, listfilter.Query{Text: data.Query, Status: data.Status})
	}

	if addErr != "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	templates.Render(w, r, "candidates_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /candidates (quick add)                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleQuickAdd registers a candidate from the inline form and opens the
// new candidate's page.
func (h *Handler) HandleQuickAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/candidates")
		return
	}
	in := quickAddForm{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Phone:           strings.TrimSpace(r.PostFormValue("phone")),
		Qualifications:  strings.TrimSpace(r.PostFormValue("qualifications")),
		RoleApplied:     strings.TrimSpace(r.PostFormValue("role_applied")),
		ExperienceYears: strings.TrimSpace(r.PostFormValue("experience_years")),
	}
	if msg := formutil.Check(in); msg != "" {
		h.renderList(w, r, in, msg)
		return
	}
	if in.Email == "" && in.Phone == "" {
		h.renderList(w, r, in, "Email or phone is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	c, err := h.Candidates.Create(ctx, candidatestore.StaffInput{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Qualifications:  in.Qualifications,
		RoleApplied:     in.RoleApplied,
		ExperienceYears: in.ExperienceYears,
	})
	if err != nil {
		if inlineError(err) {
			h.renderList(w, r, in, apiclient.MessageOf(err))
			return
		}
		h.ErrLog.HandleAPIError(w, r, "quick add failed", err, "/candidates")
		return
	}

	h.AuditLog.CandidateCreated(r, c.CandidateID, c.RoleApplied)
	h.Log.Info("candidate created", zap.String("candidate_id", c.CandidateID))
	http.Redirect(w, r, "/candidates/"+url.PathEscape(c.CandidateID), http.StatusSeeOther)
}

// inlineError reports whether err is a backend rejection the user can fix
// on the same form (a 4xx other than an expired session).
func inlineError(err error) bool {
	if errors.Is(err, apiclient.ErrSessionExpired) {
		return false
	}
	s := apiclient.StatusOf(err)
	return s >= 400 && s < 500 && s != http.StatusNotFound
}
