// internal/app/features/onboarding/handler.go
package onboarding

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/app/system/wizard"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Candidates *candidatestore.Store
	Drafts     *wizard.Drafts
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Log        *zap.Logger
}

func NewHandler(cands *candidatestore.Store, drafts *wizard.Drafts, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Candidates: cands,
		Drafts:     drafts,
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

	Genders []string
	Roles   []string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /onboarding                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeWizard renders the current step of the staff onboarding wizard.
// ?reset=1 discards the draft and starts over.
func (h *Handler) ServeWizard(w http.ResponseWriter, r *http.Request) {
	var s *wizard.State
	if query.Get(r, "reset") != "" {
		h.Drafts.Clear(w, Flow)
		s = Flow.Start()
	} else {
		s = h.Drafts.Load(r, Flow)
	}
	h.render(w, r, s)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /onboarding                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleWizardPost applies next, back or submit. Step errors and backend
// rejections are shown on the same step; the draft survives either way.
// A successful submission opens the new candidate's page.
func (h *Handler) HandleWizardPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/onboarding")
		return
	}
	s := h.Drafts.Load(r, Flow)
	if !Flow.Dispatch(s, r.PostFormValue("action"), r.PostForm) {
		h.save(w, s)
		h.render(w, r, s)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	c, err := h.Candidates.Create(ctx, candidatestore.StaffInputFrom(s.Values))
	if err != nil {
		Flow.Fail(s, errors.New(apiclient.MessageOf(err)))
		h.save(w, s)
		if errors.Is(err, apiclient.ErrSessionExpired) {
			h.ErrLog.ExpireSession(w, r, "/onboarding")
			return
		}
		h.Log.Warn("staff onboarding rejected", zap.Int("status", apiclient.StatusOf(err)), zap.Error(err))
		h.render(w, r, s)
		return
	}

	Flow.Succeed(s, c.CandidateID)
	h.Drafts.Clear(w, Flow)
	h.AuditLog.CandidateCreated(r, c.CandidateID, c.RoleApplied)
	h.Log.Info("candidate onboarded by staff", zap.String("candidate_id", c.CandidateID))
	http.Redirect(w, r, "/candidates/"+url.PathEscape(c.CandidateID), http.StatusSeeOther)
}

func (h *Handler) save(w http.ResponseWriter, s *wizard.State) {
	if err := h.Drafts.Save(w, Flow, s); err != nil {
		h.Log.Warn("saving onboarding draft failed", zap.Error(err))
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, s *wizard.State) {
	data := wizardData{
		Base:    formutil.NewBase(r, "Onboard Candidate", "/dashboard"),
		Step:    s.Step,
		Total:   Flow.Len(),
		IsFirst: s.Step == 1,
		IsFinal: Flow.IsFinal(s),
		Tabs:    Flow.Progress(s),
		Values:  s.Values,
		Genders: models.StaffGenders,
		Roles:   models.StaffRoles,
	}
	if data.IsFinal {
		data.Review = Flow.Review(s)
	}
	data.SetError(s.Error)
	if s.Error != "" {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	templates.Render(w, r, "onboarding_wizard", data)
}
