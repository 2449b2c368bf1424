package wizard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/dalemusser/recruitdesk/internal/app/system/wizard"
	"go.uber.org/zap"
)

func testFlow() *wizard.Flow {
	return wizard.NewFlow("test",
		wizard.Step{Title: "Personal", Fields: []wizard.Field{
			{Name: "name", Label: "Full name", Required: true},
			{Name: "gender", Label: "Gender", Required: true},
			{Name: "dob", Label: "Date of birth"},
		}},
		wizard.Step{Title: "Contact", Fields: []wizard.Field{
			{Name: "email", Label: "Email"},
			{Name: "phone", Label: "Phone"},
		}, AnyOf: [][]string{{"email", "phone"}}},
		wizard.Step{Title: "Review"},
	)
}

func TestNext_BlockedByEmptyOrWhitespace(t *testing.T) {
	f := testFlow()
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"nothing", map[string]string{}},
		{"one missing", map[string]string{"name": "Asha"}},
		{"whitespace only", map[string]string{"name": "   ", "gender": "Female"}},
		{"tab and newline", map[string]string{"name": "Asha", "gender": "\t\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := f.Start()
			s.Values = tt.values
			if f.Next(s) {
				t.Fatal("Next should not advance")
			}
			if s.Step != 1 {
				t.Errorf("step: got %d, want 1", s.Step)
			}
			if s.Error != wizard.MsgRequired {
				t.Errorf("error: got %q", s.Error)
			}
		})
	}
}

func TestNext_AdvancesByExactlyOne(t *testing.T) {
	f := testFlow()
	s := f.Start()
	s.Values = map[string]string{"name": "Asha", "gender": "Female"}
	s.Error = "stale"

	if !f.Next(s) {
		t.Fatal("Next should advance")
	}
	if s.Step != 2 {
		t.Errorf("step: got %d, want 2", s.Step)
	}
	if s.Error != "" {
		t.Errorf("error should be cleared, got %q", s.Error)
	}
}

func TestNext_AnyOfGroup(t *testing.T) {
	f := testFlow()
	s := &wizard.State{Step: 2, Values: map[string]string{"name": "A", "gender": "Male"}}

	if f.Next(s) {
		t.Fatal("Next should require email or phone")
	}
	if got := f.Missing(s, 2); len(got) != 1 || got[0] != "Email or Phone" {
		t.Errorf("missing: got %v", got)
	}

	s.Values["phone"] = "9876543210"
	if !f.Next(s) || s.Step != 3 {
		t.Errorf("expected advance to 3, got step %d", s.Step)
	}
}

func TestNext_NeverPassesFinalStep(t *testing.T) {
	f := testFlow()
	s := &wizard.State{Step: 3, Values: map[string]string{"name": "A", "gender": "Male", "email": "a@x.io"}}
	f.Next(s)
	if s.Step != 3 {
		t.Errorf("step: got %d, want 3", s.Step)
	}
}

func TestBack_UnconditionalAndClearsError(t *testing.T) {
	f := testFlow()
	s := &wizard.State{Step: 2, Values: map[string]string{}, Error: wizard.MsgRequired}
	f.Back(s)
	if s.Step != 1 || s.Error != "" {
		t.Errorf("got step %d error %q", s.Step, s.Error)
	}
	f.Back(s)
	if s.Step != 1 {
		t.Errorf("Back below 1: got %d", s.Step)
	}
}

func TestBeginSubmit(t *testing.T) {
	f := testFlow()
	complete := map[string]string{"name": "A", "gender": "Male", "email": "a@x.io"}

	s := &wizard.State{Step: 2, Values: complete}
	if err := f.BeginSubmit(s); !errors.Is(err, wizard.ErrNotFinalStep) {
		t.Errorf("off final step: got %v", err)
	}

	s = &wizard.State{Step: 3, Values: map[string]string{"name": "A"}}
	if err := f.BeginSubmit(s); !errors.Is(err, wizard.ErrIncomplete) {
		t.Errorf("incomplete: got %v", err)
	}
	if s.Submitting {
		t.Error("incomplete submit must not be in flight")
	}

	s = &wizard.State{Step: 3, Values: complete}
	if err := f.BeginSubmit(s); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	if !s.Submitting {
		t.Error("expected in flight")
	}
	if err := f.BeginSubmit(s); !errors.Is(err, wizard.ErrInFlight) {
		t.Errorf("second submit: got %v", err)
	}
	if f.Next(s) || s.Step != 3 {
		t.Error("navigation must be disabled while in flight")
	}
}

func TestFail_KeepsStepAndSetsError(t *testing.T) {
	f := testFlow()
	s := &wizard.State{Step: 3, Values: map[string]string{"name": "A", "gender": "Male", "phone": "1"}}
	if err := f.BeginSubmit(s); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	f.Fail(s, errors.New("Email already registered"))

	if s.Step != 3 || s.Submitting || s.Submitted {
		t.Errorf("state after fail: %+v", s)
	}
	if s.Error != "Email already registered" {
		t.Errorf("error: got %q", s.Error)
	}
}

func TestSucceed_IsTerminal(t *testing.T) {
	f := testFlow()
	s := &wizard.State{Step: 3, Values: map[string]string{"name": "A", "gender": "Male", "phone": "1"}}
	if err := f.BeginSubmit(s); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}
	f.Succeed(s, "TPEML-2025-ENG-00042")

	if !s.Submitted || s.ResultID != "TPEML-2025-ENG-00042" {
		t.Errorf("state after success: %+v", s)
	}
	f.Back(s)
	if s.Step != 3 {
		t.Error("Back must not leave the submitted state")
	}
	if err := f.BeginSubmit(s); !errors.Is(err, wizard.ErrSubmitted) {
		t.Errorf("resubmit: got %v", err)
	}
}

func TestAbsorb_OnlyCurrentStepFields(t *testing.T) {
	f := testFlow()
	s := f.Start()
	form := url.Values{"name": {"  Asha  "}, "email": {"smuggled@x.io"}}
	f.Absorb(s, form)

	if s.Values["name"] != "Asha" {
		t.Errorf("name: got %q", s.Values["name"])
	}
	if _, ok := s.Values["email"]; ok {
		t.Error("fields from other steps must be ignored")
	}
}

func TestDrafts_RoundTrip(t *testing.T) {
	f := testFlow()
	d := wizard.NewDrafts("test-wizard-key-must-be-32-chars!!", false, time.Hour, zap.NewNop())

	s := &wizard.State{Step: 2, Values: map[string]string{"name": "Asha", "gender": "Female"}, Submitting: true}
	rec := httptest.NewRecorder()
	if err := d.Save(rec, f, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest("GET", "/onboarding", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	got := d.Load(req, f)
	if got.Step != 2 || got.Values["name"] != "Asha" {
		t.Errorf("loaded: %+v", got)
	}
	if got.Submitting {
		t.Error("in-flight flag must not survive a round trip")
	}
}

func TestDrafts_TamperedCookieStartsFresh(t *testing.T) {
	f := testFlow()
	d := wizard.NewDrafts("test-wizard-key-must-be-32-chars!!", false, time.Hour, zap.NewNop())

	req := httptest.NewRequest("GET", "/apply", nil)
	req.AddCookie(&http.Cookie{Name: "wizard_test", Value: "garbage"})
	got := d.Load(req, f)
	if got.Step != 1 || len(got.Values) != 0 {
		t.Errorf("expected fresh state, got %+v", got)
	}
}

func TestDrafts_Clear(t *testing.T) {
	f := testFlow()
	d := wizard.NewDrafts("test-wizard-key-must-be-32-chars!!", false, time.Hour, zap.NewNop())
	rec := httptest.NewRecorder()
	d.Clear(rec, f)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Errorf("expected deletion cookie, got %+v", cookies)
	}
}

func rulesFlow() *wizard.Flow {
	return wizard.NewFlow("rules",
		wizard.Step{Title: "Contact", Fields: []wizard.Field{
			{Name: "phone", Label: "Phone", Required: true},
			{Name: "email", Label: "Email", Required: true, Rule: "email"},
			{Name: "years", Label: "Experience", Rule: "numeric"},
		}},
		wizard.Step{Title: "Review"},
	)
}

func TestNext_IgnoresFieldFormat(t *testing.T) {
	f := rulesFlow()
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"loosely formatted phone", map[string]string{"phone": "+91 98765 43210", "email": "a@b.co"}},
		{"bad email", map[string]string{"phone": "98765", "email": "nope"}},
		{"both bad", map[string]string{"phone": "98765", "email": "nope", "years": "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := f.Start()
			s.Values = tt.values
			if !f.Next(s) {
				t.Fatalf("Next = false, error %q", s.Error)
			}
			if s.Step != 2 || s.Error != "" {
				t.Errorf("step %d error %q, want step 2 and no error", s.Step, s.Error)
			}
		})
	}
}

func TestBeginSubmit_ChecksRulesOnFilledFields(t *testing.T) {
	f := rulesFlow()
	tests := []struct {
		name    string
		values  map[string]string
		wantErr error
		msg     string
	}{
		{"valid", map[string]string{"phone": "+91 98765 43210", "email": "a@b.co", "years": "2.5"}, nil, ""},
		{"blank optional", map[string]string{"phone": "98765", "email": "a@b.co"}, nil, ""},
		{"bad email", map[string]string{"phone": "98765", "email": "nope"}, wizard.ErrInvalid, wizard.MsgInvalid + "Email"},
		{"both bad", map[string]string{"phone": "98765", "email": "nope", "years": "two"}, wizard.ErrInvalid, wizard.MsgInvalid + "Email, Experience"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := f.Start()
			s.Values = tt.values
			s.Step = 2
			err := f.BeginSubmit(s)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BeginSubmit = %v, want %v", err, tt.wantErr)
			}
			if s.Error != tt.msg {
				t.Errorf("error: got %q, want %q", s.Error, tt.msg)
			}
			if s.Submitting != (tt.wantErr == nil) {
				t.Errorf("Submitting = %v", s.Submitting)
			}
			if s.Step != 2 {
				t.Errorf("step = %d, want 2", s.Step)
			}
		})
	}
}

func TestProgressAndReview(t *testing.T) {
	f := testFlow()
	s := f.Start()
	s.Values = map[string]string{"name": "Asha", "gender": "Female", "phone": "98765"}
	s.Step = 2

	tabs := f.Progress(s)
	if len(tabs) != 3 || !tabs[0].Done || !tabs[1].Current || tabs[2].Done || tabs[2].Current {
		t.Errorf("progress = %+v", tabs)
	}

	items := f.Review(s)
	if len(items) != 5 {
		t.Fatalf("review items = %d, want 5", len(items))
	}
	if items[0].Label != "Full name" || items[0].Value != "Asha" {
		t.Errorf("first item = %+v", items[0])
	}
	if items[3].Label != "Email" || items[3].Value != "" {
		t.Errorf("email item = %+v", items[3])
	}
}

func TestDispatch(t *testing.T) {
	f := testFlow()
	s := f.Start()

	if f.Dispatch(s, wizard.ActionNext, url.Values{"name": {"Asha"}}) {
		t.Fatal("next must not submit")
	}
	if s.Step != 1 || s.Error != wizard.MsgRequired {
		t.Fatalf("after incomplete next: step %d, error %q", s.Step, s.Error)
	}
	f.Dispatch(s, wizard.ActionNext, url.Values{"gender": {"Female"}})
	if s.Step != 2 || s.Values["name"] != "Asha" {
		t.Fatalf("after next: step %d, values %v", s.Step, s.Values)
	}
	f.Dispatch(s, wizard.ActionNext, url.Values{"phone": {"98765"}})
	if s.Step != 3 {
		t.Fatalf("step = %d, want 3", s.Step)
	}
	if !f.Dispatch(s, wizard.ActionSubmit, url.Values{}) || !s.Submitting {
		t.Fatal("submit on the review step should start a submission")
	}
}
