package bootstrap

import (
	"html"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/recruitdesk/internal/testutil"
	"go.uber.org/zap"
)

var csrfField = regexp.MustCompile(`name="gorilla.csrf.Token" value="([^"]+)"`)

type browser struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newBrowser(t *testing.T) (*browser, *testutil.Backend) {
	t.Helper()
	testutil.BootTemplates(t)
	b := testutil.NewBackend(t)

	cfg := AppConfig{
		SessionKey:     "test-session-key-for-testing-only-32b",
		SessionName:    "rd",
		SessionMaxAge:  time.Hour,
		CSRFKey:        "test-csrf-key",
		WizardKey:      "test-wizard-key-for-testing-only-32",
		FetchCap:       200,
		LoginRateLimit: 0,
		ApplyRateLimit: 0,
	}
	h, err := newRouter(cfg, DBDeps{API: b.Client()}, false, zap.NewNop())
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &browser{t: t, base: srv.URL, client: client}, b
}

func (br *browser) do(method, path string, form url.Values) (*http.Response, string) {
	br.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, br.base+path, body)
	if err != nil {
		br.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Accept", "text/html")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	res, err := br.client.Do(req)
	if err != nil {
		br.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		br.t.Fatalf("read body: %v", err)
	}
	return res, string(raw)
}

// token fetches path and returns the CSRF token embedded in its form.
func (br *browser) token(path string) string {
	br.t.Helper()
	res, body := br.do(http.MethodGet, path, nil)
	if res.StatusCode != http.StatusOK {
		br.t.Fatalf("GET %s: status %d", path, res.StatusCode)
	}
	m := csrfField.FindStringSubmatch(body)
	if m == nil {
		br.t.Fatalf("GET %s: no CSRF token in page", path)
	}
	return html.UnescapeString(m[1])
}

func (br *browser) login() {
	br.t.Helper()
	tok := br.token("/login")
	res, _ := br.do(http.MethodPost, "/login", url.Values{
		"gorilla.csrf.Token": {tok},
		"email":              {"admin@test.com"},
		"password":           {testutil.BackendPassword},
	})
	if res.StatusCode != http.StatusSeeOther {
		br.t.Fatalf("POST /login: status %d, want 303", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/dashboard" {
		br.t.Fatalf("POST /login: Location %q, want /dashboard", loc)
	}
}

func TestRouter_HealthNeedsNoSession(t *testing.T) {
	br, _ := newBrowser(t)

	res, _ := br.do(http.MethodGet, "/health", nil)
	if res.StatusCode != http.StatusOK {
		t.Errorf("GET /health: status %d, want 200", res.StatusCode)
	}
}

func TestRouter_StaffPagesRequireLogin(t *testing.T) {
	br, _ := newBrowser(t)

	res, _ := br.do(http.MethodGet, "/candidates", nil)
	if res.StatusCode != http.StatusSeeOther && res.StatusCode != http.StatusFound {
		t.Fatalf("GET /candidates: status %d, want redirect", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); !strings.HasPrefix(loc, "/login") {
		t.Errorf("Location = %q, want /login...", loc)
	}
}

func TestRouter_PostWithoutTokenIsRejected(t *testing.T) {
	br, b := newBrowser(t)

	res, body := br.do(http.MethodPost, "/login", url.Values{
		"email":    {"admin@test.com"},
		"password": {testutil.BackendPassword},
	})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status %d, want 403", res.StatusCode)
	}
	if !strings.Contains(body, "Form expired") {
		t.Errorf("body missing %q", "Form expired")
	}
	if b.Called("/api/auth/login") {
		t.Error("backend login called without a CSRF token")
	}
}

func TestRouter_LoginAndRecordInterview(t *testing.T) {
	br, b := newBrowser(t)
	c := b.AddCandidate(models.Candidate{Name: "Asha Verma", Email: "asha@example.com", RoleApplied: "Engineer"})

	br.login()

	res, body := br.do(http.MethodGet, "/dashboard", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET /dashboard: status %d", res.StatusCode)
	}
	if !strings.Contains(body, "Logout") {
		t.Errorf("dashboard missing the signed-in header")
	}

	path := "/candidates/" + c.CandidateID
	tok := br.token(path)
	res, _ = br.do(http.MethodPost, path+"/interview", url.Values{
		"gorilla.csrf.Token": {tok},
		"decision":           {"Shortlist"},
		"notes":              {"Solid"},
	})
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("POST interview: status %d, want 303", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != path+"?done=interview" {
		t.Errorf("Location = %q, want %q", loc, path+"?done=interview")
	}

	got, _ := b.Candidate(c.CandidateID)
	if got.Status != models.StatusInterviewCompleted || got.Decision != models.DecisionShortlist {
		t.Errorf("candidate = %s/%s, want interview_completed/shortlist", got.Status, got.Decision)
	}

	res, body = br.do(http.MethodGet, path+"?done=interview", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET detail after interview: status %d", res.StatusCode)
	}
	for _, want := range []string{"tag--interview_completed", "Interview recorded."} {
		if !strings.Contains(body, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
}

func TestRouter_LogoutEndsSession(t *testing.T) {
	br, _ := newBrowser(t)
	br.login()

	tok := br.token("/dashboard")
	res, _ := br.do(http.MethodPost, "/logout", url.Values{"gorilla.csrf.Token": {tok}})
	if res.StatusCode >= 400 {
		t.Fatalf("POST /logout: status %d", res.StatusCode)
	}

	res, _ = br.do(http.MethodGet, "/dashboard", nil)
	if loc := res.Header.Get("Location"); !strings.HasPrefix(loc, "/login") {
		t.Errorf("after logout GET /dashboard Location = %q, want /login...", loc)
	}
}
