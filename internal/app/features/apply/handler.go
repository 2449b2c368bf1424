// internal/app/features/apply/handler.go
package apply

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/ratelimit"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/app/system/wizard"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the public application form. No session is required.
type Handler struct {
	Candidates *candidatestore.Store
	Drafts     *wizard.Drafts
	Limiter    *ratelimit.Limiter
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Log        *zap.Logger
}

func NewHandler(
	cands *candidatestore.Store,
	drafts *wizard.Drafts,
	limiter *ratelimit.Limiter,
	errLog *uierrors.ErrorLogger,
	audit *auditlog.Logger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Candidates: cands,
		Drafts:     drafts,
		Limiter:    limiter,
		ErrLog:     errLog,
		AuditLog:   audit,
		Log:        logger,
	}
}

type wizardData struct {
	formutil.Base

	Step    int
	Total   int
	IsFirst bool
	IsFinal bool
	Tabs    []wizard.Tab
	Values  map[string]string
	Review  []wizard.ReviewItem

	Locations []string
	Years     []string
	Genders   []string
	States    []string
	Branches  []string
	Backlog   []string
}

type submittedData struct {
	formutil.Base
	CandidateID string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /apply                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeWizard renders the current step. A finished application or
// ?reset=1 starts a fresh one.
func (h *Handler) ServeWizard(w http.ResponseWriter, r *http.Request) {
	s := h.Drafts.Load(r, Flow)
	if s.Submitted || query.Get(r, "reset") != "" {
		h.Drafts.Clear(w, Flow)
		s = Flow.Start()
	}
	h.render(w, r, s, http.StatusOK)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /apply                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleWizardPost applies next, back or submit. Submissions are rate
// limited per client address. On success the result is kept in the draft
// just long enough for /apply/submitted to show the assigned candidate ID.
func (h *Handler) HandleWizardPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/apply")
		return
	}
	s := h.Drafts.Load(r, Flow)
	if s.Submitted {
		s = Flow.Start()
	}
	if !Flow.Dispatch(s, r.PostFormValue("action"), r.PostForm) {
		h.save(w, s)
		h.render(w, r, s, stepStatus(s))
		return
	}

	if h.Limiter != nil && !h.Limiter.Allow(ratelimit.ClientIP(r)) {
		Flow.Fail(s, errors.New(ratelimit.MsgApply))
		h.save(w, s)
		h.render(w, r, s, http.StatusTooManyRequests)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	c, err := h.Candidates.SelfOnboard(ctx, candidatestore.PublicInput(s.Values))
	if err != nil {
		h.Log.Warn("public application rejected", zap.Int("status", apiclient.StatusOf(err)), zap.Error(err))
		Flow.Fail(s, errors.New(apiclient.MessageOf(err)))
		h.save(w, s)
		h.render(w, r, s, http.StatusUnprocessableEntity)
		return
	}

	Flow.Succeed(s, c.CandidateID)
	h.save(w, s)
	h.AuditLog.SelfOnboarded(r, c.CandidateID)
	h.Log.Info("public application submitted", zap.String("candidate_id", c.CandidateID))
	http.Redirect(w, r, "/apply/submitted", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /apply/submitted                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeSubmitted shows the confirmation once and then drops the draft.
func (h *Handler) ServeSubmitted(w http.ResponseWriter, r *http.Request) {
	s := h.Drafts.Load(r, Flow)
	if !s.Submitted {
		http.Redirect(w, r, "/apply", http.StatusSeeOther)
		return
	}
	h.Drafts.Clear(w, Flow)
	templates.Render(w, r, "apply_submitted", submittedData{
		Base:        formutil.NewBase(r, "Application Submitted", "/apply"),
		CandidateID: s.ResultID,
	})
}

func (h *Handler) save(w http.ResponseWriter, s *wizard.State) {
	if err := h.Drafts.Save(w, Flow, s); err != nil {
		h.Log.Warn("saving application draft failed", zap.Error(err))
	}
}

// stepStatus is 422 while the step shows an error.
func stepStatus(s *wizard.State) int {
	if s.Error != "" {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, s *wizard.State, status int) {
	data := wizardData{
		Base:      formutil.NewBase(r, "Apply", "/apply"),
		Step:      s.Step,
		Total:     Flow.Len(),
		IsFirst:   s.Step == 1,
		IsFinal:   Flow.IsFinal(s),
		Tabs:      Flow.Progress(s),
		Values:    s.Values,
		Locations: models.InterviewLocations,
		Years:     models.RecruitmentYears,
		Genders:   models.PublicGenders,
		States:    models.StatesOfIndia,
		Branches:  models.DiplomaBranches,
		Backlog:   models.BacklogOptions,
	}
	if data.IsFinal {
		data.Review = Flow.Review(s)
	}
	data.SetError(s.Error)
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templates.Render(w, r, "apply_wizard", data)
}
