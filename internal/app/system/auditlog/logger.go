// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Event categories.
const (
	CategoryAuth   = "auth"
	CategoryAction = "action"
)

// Event types.
const (
	EventLoginSuccess         = "login_success"
	EventLoginFailed          = "login_failed"
	EventLoginRateLimited     = "login_rate_limited"
	EventLogout               = "logout"
	EventCandidateCreated     = "candidate_created"
	EventSelfOnboarded        = "candidate_self_onboarded"
	EventInterviewSubmitted   = "interview_submitted"
	EventReInterviewRequested = "reinterview_requested"
	EventReInterviewResolved  = "reinterview_resolved"
	EventReportExported       = "report_exported"
)

// Event is one audit record. The backend keeps its own audit trail; these
// entries record what happened at this edge.
type Event struct {
	Category      string
	EventType     string
	ActorID       string
	ActorRole     string
	Target        string
	IP            string
	UserAgent     string
	Success       bool
	FailureReason string
	Details       map[string]string
}

// Config holds audit logging configuration.
type Config struct {
	// Auth controls authentication events: "log" or "off".
	Auth string
	// Actions controls recruitment actions: "log" or "off".
	Actions string
}

// Logger writes audit events as structured zap entries.
type Logger struct {
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(zapLog *zap.Logger, config Config) *Logger {
	return &Logger{zapLog: zapLog.Named("audit"), config: config}
}

// Log records event unless its category is switched off.
// A nil Logger is a no-op, so handlers in tests may leave it unset.
func (l *Logger) Log(event Event) {
	if l == nil {
		return
	}
	setting := "log"
	switch event.Category {
	case CategoryAuth:
		setting = l.config.Auth
	case CategoryAction:
		setting = l.config.Actions
	}
	if setting == "off" {
		return
	}

	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.ActorRole != "" {
		fields = append(fields, zap.String("actor_role", event.ActorRole))
	}
	if event.Target != "" {
		fields = append(fields, zap.String("target", event.Target))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

func actionEvent(r *http.Request, eventType, target string, details map[string]string) Event {
	e := Event{
		Category:  CategoryAction,
		EventType: eventType,
		Target:    target,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details:   details,
	}
	if u, ok := auth.CurrentUser(r); ok {
		e.ActorID = u.ID
		e.ActorRole = u.Role
	}
	return e
}

// --- Authentication Events ---

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(r *http.Request, userID, role, email string) {
	l.Log(Event{
		Category:  CategoryAuth,
		EventType: EventLoginSuccess,
		ActorID:   userID,
		ActorRole: role,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details:   map[string]string{"email": email},
	})
}

// LoginFailed logs a rejected login attempt.
func (l *Logger) LoginFailed(r *http.Request, email, reason string) {
	l.Log(Event{
		Category:      CategoryAuth,
		EventType:     EventLoginFailed,
		IP:            ratelimit.ClientIP(r),
		UserAgent:     r.UserAgent(),
		FailureReason: reason,
		Details:       map[string]string{"email": email},
	})
}

// LoginRateLimited logs an attempt refused by the login limiter.
func (l *Logger) LoginRateLimited(r *http.Request, email string) {
	l.Log(Event{
		Category:      CategoryAuth,
		EventType:     EventLoginRateLimited,
		IP:            ratelimit.ClientIP(r),
		UserAgent:     r.UserAgent(),
		FailureReason: "rate limited",
		Details:       map[string]string{"email": email},
	})
}

// Logout logs a sign-out.
func (l *Logger) Logout(r *http.Request, userID string) {
	l.Log(Event{
		Category:  CategoryAuth,
		EventType: EventLogout,
		ActorID:   userID,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	})
}

// --- Recruitment Actions ---

// CandidateCreated logs staff-assisted onboarding.
func (l *Logger) CandidateCreated(r *http.Request, candidateID, role string) {
	l.Log(actionEvent(r, EventCandidateCreated, candidateID, map[string]string{"role_applied": role}))
}

// SelfOnboarded logs a public application.
func (l *Logger) SelfOnboarded(r *http.Request, candidateID string) {
	l.Log(actionEvent(r, EventSelfOnboarded, candidateID, nil))
}

// InterviewSubmitted logs an interview outcome.
func (l *Logger) InterviewSubmitted(r *http.Request, candidateID, decision string) {
	l.Log(actionEvent(r, EventInterviewSubmitted, candidateID, map[string]string{"decision": decision}))
}

// ReInterviewRequested logs a re-interview request.
func (l *Logger) ReInterviewRequested(r *http.Request, candidateID, requestID string) {
	l.Log(actionEvent(r, EventReInterviewRequested, candidateID, map[string]string{"request_id": requestID}))
}

// ReInterviewResolved logs an admin decision on a request.
func (l *Logger) ReInterviewResolved(r *http.Request, requestID string, approved bool) {
	outcome := "rejected"
	if approved {
		outcome = "approved"
	}
	l.Log(actionEvent(r, EventReInterviewResolved, requestID, map[string]string{"outcome": outcome}))
}

// ReportExported logs a report download.
func (l *Logger) ReportExported(r *http.Request, kind, format string) {
	l.Log(actionEvent(r, EventReportExported, kind, map[string]string{"format": format}))
}
