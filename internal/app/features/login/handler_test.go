package login_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	"github.com/dalemusser/recruitdesk/internal/app/features/login"
	accountstore "github.com/dalemusser/recruitdesk/internal/app/store/accounts"
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/ratelimit"
	"github.com/dalemusser/recruitdesk/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*login.Handler, *testutil.Backend) {
	t.Helper()
	testutil.BootTemplates(t)
	logger := zap.NewNop()
	b := testutil.NewBackend(t)

	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only-32b", "test-session", "", 0, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	limiter := ratelimit.NewLoginLimiter(20)
	t.Cleanup(limiter.Stop)

	h := login.NewHandler(accountstore.New(b.Client()), sessionMgr, uierrors.NewErrorLogger(logger), nil, limiter, logger)
	return h, b
}

func postLogin(h *login.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			return c
		}
	}
	return nil
}

func TestHandleLoginPost_Success(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postLogin(h, url.Values{"email": {"admin@test.com"}, "password": {testutil.BackendPassword}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
	if c := sessionCookie(rec); c == nil || c.MaxAge <= 0 {
		t.Error("expected a live session cookie")
	}
}

func TestHandleLoginPost_SessionHoldsUserAndToken(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := postLogin(h, url.Values{"email": {"admin@test.com"}, "password": {testutil.BackendPassword}})

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(sessionCookie(rec))
	sess, err := h.SessionMgr.GetSession(req)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if sess.Values["access_token"] != testutil.BackendToken {
		t.Errorf("access_token = %v", sess.Values["access_token"])
	}
	if sess.Values["user_role"] != "admin" || sess.Values["user_name"] != "Test Admin" {
		t.Errorf("identity = %v / %v", sess.Values["user_role"], sess.Values["user_name"])
	}
}

func TestHandleLoginPost_WithReturnURL(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/login?return="+url.QueryEscape("/candidates/TPEML-1"),
		strings.NewReader(url.Values{"email": {"admin@test.com"}, "password": {testutil.BackendPassword}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/candidates/TPEML-1" {
		t.Errorf("Location = %q", loc)
	}
}

func TestHandleLoginPost_RejectsOffsiteReturn(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := postLogin(h, url.Values{
		"email":    {"admin@test.com"},
		"password": {testutil.BackendPassword},
		"return":   {"https://evil.example/steal"},
	})
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestHandleLoginPost_BadPassword_ShowsMessageInline(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postLogin(h, url.Values{"email": {"admin@test.com"}, "password": {"nope"}})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (form re-rendered)", rec.Code)
	}
	if rec.Header().Get("Location") != "" {
		t.Error("a failed login must not redirect")
	}
	if sessionCookie(rec) != nil {
		t.Error("a failed login must not touch the session")
	}
	if !strings.Contains(rec.Body.String(), "Incorrect email or password") {
		t.Error("expected backend message on the form")
	}
}

func TestHandleLoginPost_MissingFields(t *testing.T) {
	h, b := newTestHandler(t)

	rec := postLogin(h, url.Values{"email": {"   "}})

	if !strings.Contains(rec.Body.String(), "is required") {
		t.Error("expected a required-field message")
	}
	if b.Called("/api/auth/login") {
		t.Error("blank credentials must not reach the backend")
	}
}

func TestHandleLoginPost_RateLimited(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Limiter = ratelimit.NewLoginLimiter(2)
	t.Cleanup(h.Limiter.Stop)

	form := url.Values{"email": {"admin@test.com"}, "password": {"nope"}}
	postLogin(h, form)
	rec := postLogin(h, form)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
}

func TestServeLogin_SignedInRedirects(t *testing.T) {
	h, _ := newTestHandler(t)
	req := testutil.NewAuthenticatedRequest("GET", "/login", testutil.HRUser())
	rec := httptest.NewRecorder()

	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("got %d %q, want 303 /dashboard", rec.Code, rec.Header().Get("Location"))
	}
}

func TestServeLogin_RendersForm(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.ServeLogin(rec, httptest.NewRequest("GET", "/login?return=%2Freports", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="/reports"`) {
		t.Error("expected return path carried in the form")
	}
}
