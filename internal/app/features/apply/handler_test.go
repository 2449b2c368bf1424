package apply_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/dalemusser/recruitdesk/internal/app/features/apply"
	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	"github.com/dalemusser/recruitdesk/internal/app/system/ratelimit"
	"github.com/dalemusser/recruitdesk/internal/app/system/wizard"
	"github.com/dalemusser/recruitdesk/internal/testutil"
	"go.uber.org/zap"
)

type session struct {
	h       *apply.Handler
	cookies []*http.Cookie
}

func newSession(t *testing.T, limiter *ratelimit.Limiter) (*session, *testutil.Backend) {
	t.Helper()
	testutil.BootTemplates(t)
	b := testutil.NewBackend(t)
	logger := zap.NewNop()
	drafts := wizard.NewDrafts("test-wizard-key-for-testing-only", false, time.Hour, logger)
	h := apply.NewHandler(candidatestore.New(b.Client()), drafts, limiter, uierrors.NewErrorLogger(logger), nil, logger)
	return &session{h: h}, b
}

func (s *session) do(req *http.Request, serve http.HandlerFunc) *testutil.ResponseRecorder {
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	rec := testutil.NewRecorder()
	serve(rec, req)
	if cs := rec.Result().Cookies(); len(cs) > 0 {
		s.cookies = cs
	}
	return rec
}

func (s *session) post(form url.Values) *testutil.ResponseRecorder {
	return s.do(testutil.NewFormRequest("/apply", form.Encode(), nil), s.h.HandleWizardPost)
}

var completeSteps = []url.Values{
	{"action": {"next"}, "interview_location": {"Dehradun - UPES"}, "date_of_interview": {"2025-07-14"}, "year_of_recruitment": {"2025"}},
	{"action": {"next"}, "name": {"ravi  kumar"}, "gender": {"Male"}, "dob": {"2004-02-11"}},
	{"action": {"next"}, "contact_no": {"9876543210"}, "email": {"Ravi@Example.com"}, "residential_address": {"Dehradun"}, "state_of_domicile": {"Uttarakhand"}},
	{"action": {"next"}, "college_name": {"GPC"}, "university_name": {"UTU"}, "diploma_enrollment_no": {"EN-42"},
		"diploma_branch": {"Mechanical Engineering"}, "diploma_passout_year": {"2025"}, "diploma_percentage": {"78.5"}, "any_backlog_in_diploma": {"no"}},
	{"action": {"next"}, "tenth_percentage": {"81"}, "tenth_passout_year": {"2019"}},
}

func (s *session) fillToReview(t *testing.T) {
	t.Helper()
	for _, form := range completeSteps {
		s.post(form).AssertStatus(t, http.StatusOK)
	}
}

func TestApply_HappyPath(t *testing.T) {
	s, b := newSession(t, nil)
	s.fillToReview(t)

	rec := s.post(url.Values{"action": {"submit"}})
	rec.AssertRedirect(t, "/apply/submitted")

	if len(b.Candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(b.Candidates))
	}
	var body map[string]any
	b.Body("/public/onboard", &body)
	if body["name"] != "ravi  kumar" || body["email"] != "ravi@example.com" || body["diploma_percentage"] != 78.5 {
		t.Errorf("payload = %v", body)
	}
	if _, ok := body["twelfth_percentage"]; ok {
		t.Errorf("blank 12th percentage should be omitted, got %v", body["twelfth_percentage"])
	}

	rec = s.do(testutil.NewRequest(http.MethodGet, "/apply/submitted"), s.h.ServeSubmitted)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Application Submitted Successfully!")
	rec.AssertContains(t, b.Candidates[0].CandidateID)

	// The confirmation is shown once.
	rec = s.do(testutil.NewRequest(http.MethodGet, "/apply/submitted"), s.h.ServeSubmitted)
	rec.AssertRedirect(t, "/apply")
}

func TestApply_SubmittedWithoutApplicationRedirects(t *testing.T) {
	s, _ := newSession(t, nil)
	rec := s.do(testutil.NewRequest(http.MethodGet, "/apply/submitted"), s.h.ServeSubmitted)
	rec.AssertRedirect(t, "/apply")
}

func TestApply_StepValidation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "missing required",
			form: url.Values{"action": {"next"}, "interview_location": {"Dehradun - UPES"}},
			want: wizard.MsgRequired,
		},
		{
			name: "whitespace only",
			form: url.Values{"action": {"next"}, "interview_location": {"  "}, "date_of_interview": {"2025-07-14"}, "year_of_recruitment": {"2025"}},
			want: wizard.MsgRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, b := newSession(t, nil)
			rec := s.post(tt.form)
			rec.AssertStatus(t, http.StatusUnprocessableEntity)
			rec.AssertContains(t, "Step 1 of 6")
			rec.AssertContains(t, tt.want)
			if calls := b.Calls(); len(calls) != 0 {
				t.Errorf("backend calls = %v, want none", calls)
			}
		})
	}
}

func TestApply_LooseFormatsAdvance(t *testing.T) {
	s, b := newSession(t, nil)
	s.post(completeSteps[0]).AssertStatus(t, http.StatusOK)
	s.post(completeSteps[1]).AssertStatus(t, http.StatusOK)

	rec := s.post(url.Values{"action": {"next"}, "contact_no": {"+91 98765 43210"}, "email": {"ravi@example.com"},
		"residential_address": {"Dehradun"}, "state_of_domicile": {"Uttarakhand"}})
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Step 4 of 6")
	if calls := b.Calls(); len(calls) != 0 {
		t.Errorf("backend calls = %v, want none", calls)
	}
}

func TestApply_FormatCheckedOnSubmit(t *testing.T) {
	s, b := newSession(t, nil)
	first := url.Values{}
	for k, v := range completeSteps[0] {
		first[k] = v
	}
	first.Set("date_of_interview", "14/07/2025")
	s.post(first).AssertStatus(t, http.StatusOK)
	for _, form := range completeSteps[1:] {
		s.post(form).AssertStatus(t, http.StatusOK)
	}

	rec := s.post(url.Values{"action": {"submit"}})
	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "Step 6 of 6")
	rec.AssertContains(t, wizard.MsgInvalid+"Date of Interview")
	if b.Called("/api/public/onboard") {
		t.Error("backend called with an invalid date")
	}
}

func TestApply_RateLimited(t *testing.T) {
	limiter := ratelimit.New(1, time.Hour)
	t.Cleanup(limiter.Stop)

	first, b := newSession(t, nil)
	first.h.Limiter = limiter
	first.fillToReview(t)
	first.post(url.Values{"action": {"submit"}}).AssertRedirect(t, "/apply/submitted")

	second := &session{h: first.h}
	second.fillToReview(t)
	rec := second.post(url.Values{"action": {"submit"}})

	rec.AssertStatus(t, http.StatusTooManyRequests)
	rec.AssertContains(t, ratelimit.MsgApply)
	if len(b.Candidates) != 1 {
		t.Errorf("candidates = %d, want 1", len(b.Candidates))
	}
}

func TestApply_BackendRejection(t *testing.T) {
	s, b := newSession(t, nil)
	s.fillToReview(t)
	b.Fail("/public/onboard", http.StatusBadRequest, "Email already registered")

	rec := s.post(url.Values{"action": {"submit"}})

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "Email already registered")
	rec.AssertContains(t, "Step 6 of 6")
}

func TestApply_ResetStartsOver(t *testing.T) {
	s, _ := newSession(t, nil)
	s.post(completeSteps[0])

	rec := s.do(testutil.NewRequest(http.MethodGet, "/apply?reset=1"), s.h.ServeWizard)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Step 1 of 6")
	rec.AssertNotContains(t, `value="2025-07-14"`)
}
