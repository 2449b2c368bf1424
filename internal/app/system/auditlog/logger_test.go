package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(cfg auditlog.Config) (*auditlog.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return auditlog.New(zap.New(core), cfg), logs
}

func TestLogger_NilLogger(t *testing.T) {
	var logger *auditlog.Logger
	req := httptest.NewRequest("GET", "/", nil)

	logger.Log(auditlog.Event{EventType: "test"})
	logger.LoginSuccess(req, "u1", "admin", "a@test.com")
	logger.Logout(req, "u1")
}

func TestLogger_ConfigOff(t *testing.T) {
	logger, logs := newObserved(auditlog.Config{Auth: "off", Actions: "log"})
	req := httptest.NewRequest("POST", "/login", nil)

	logger.LoginFailed(req, "a@test.com", "bad password")
	if logs.Len() != 0 {
		t.Fatalf("auth events should be suppressed, got %d", logs.Len())
	}

	logger.InterviewSubmitted(testutil.WithUser(req, testutil.InterviewerUser()), "TPEML-1", "shortlist")
	if logs.Len() != 1 {
		t.Fatalf("action events should still log, got %d", logs.Len())
	}
}

func TestLogger_ActionCarriesActor(t *testing.T) {
	logger, logs := newObserved(auditlog.Config{Auth: "log", Actions: "log"})
	req := testutil.NewAuthenticatedRequest("POST", "/candidates/X/interview", testutil.HRUser())
	req.RemoteAddr = "192.0.2.7:4000"

	logger.InterviewSubmitted(req, "TPEML-2025-ENG-00001", "hold")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	fields := entries[0].ContextMap()
	want := map[string]any{
		"event_type":      auditlog.EventInterviewSubmitted,
		"actor_id":        "u-hr",
		"actor_role":      "hr",
		"target":          "TPEML-2025-ENG-00001",
		"detail_decision": "hold",
		"ip":              "192.0.2.7",
		"success":         true,
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("%s = %v, want %v", k, fields[k], v)
		}
	}
}

func TestLogger_FailuresLogAtWarn(t *testing.T) {
	logger, logs := newObserved(auditlog.Config{})
	logger.LoginRateLimited(httptest.NewRequest("POST", "/login", nil), "a@test.com")

	entries := logs.All()
	if len(entries) != 1 || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("entries = %+v", entries)
	}
}
