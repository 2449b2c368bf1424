// internal/app/features/errors/logger.go
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure and renders the matching error page. Handlers
// never format backend errors themselves.
type ErrorLogger struct {
	log      *zap.Logger
	sessions *auth.SessionManager
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// UseSessions lets HandleAPIError clear the session when the backend
// rejects the token.
func (e *ErrorLogger) UseSessions(sm *auth.SessionManager) *ErrorLogger {
	e.sessions = sm
	return e
}

// LogServerError logs at error level and renders a 500 page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderPage(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL, "")
}

// LogBadRequest logs at warn level and renders a 400 page with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderPage(w, r, http.StatusBadRequest, "Request failed", userMsg, backURL, "")
}

// LogNotFound renders a 404 page with msg and a labelled back link.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg, backURL, backLabel string) {
	e.log.Debug("not found", zap.String("path", r.URL.Path))
	RenderPage(w, r, http.StatusNotFound, "Not found", msg, backURL, backLabel)
}

// HandleAPIError presents a backend failure:
//   - rejected token: session cleared, redirect to login
//   - 404: not found page
//   - other 4xx: bad request page with the backend's message
//   - unreachable: 502 page
//   - 5xx: server error page with the backend's message
//   - anything else (decode failures, bugs): generic server error page
func (e *ErrorLogger) HandleAPIError(w http.ResponseWriter, r *http.Request, logMsg string, err error, backURL string) {
	if stderrors.Is(err, apiclient.ErrSessionExpired) {
		e.ExpireSession(w, r, backURL)
		return
	}
	var re *apiclient.RequestError
	if !stderrors.As(err, &re) {
		e.LogServerError(w, r, logMsg, err, "Something went wrong. Please try again.", backURL)
		return
	}

	status := apiclient.StatusOf(err)
	msg := apiclient.MessageOf(err)
	switch {
	case status == http.StatusNotFound:
		e.LogNotFound(w, r, msg, backURL, "")
	case status >= 400 && status < 500:
		e.LogBadRequest(w, r, logMsg, err, msg, backURL)
	case status == 0:
		e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
		RenderPage(w, r, http.StatusBadGateway, "Service unavailable", msg, backURL, "")
	default:
		e.LogServerError(w, r, logMsg, err, msg, backURL)
	}
}

// ExpireSession clears the session and sends the user to sign in again.
// For form posts the return path is ret, since the post URL itself cannot
// be revisited.
func (e *ErrorLogger) ExpireSession(w http.ResponseWriter, r *http.Request, ret string) {
	if e.sessions != nil {
		if err := e.sessions.Logout(w, r); err != nil {
			e.log.Warn("clearing expired session failed", zap.Error(err))
		}
	}
	e.log.Info("session expired", zap.String("path", r.URL.Path))
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		auth.RedirectToLogin(w, r)
		return
	}
	auth.RedirectToLoginFrom(w, r, ret)
}
