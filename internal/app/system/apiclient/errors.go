// internal/app/system/apiclient/errors.go
package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrSessionExpired matches any 401 from a call other than the login call.
// Handlers that see it clear the session and send the user back to /login.
var ErrSessionExpired = errors.New("apiclient: session expired")

// RequestError is returned for every non-2xx response and for transport
// failures (Status 0). Message is safe to show to the user.
type RequestError struct {
	Status  int
	Message string
	Method  string
	Path    string

	sessionExpired bool
	err            error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.err }

// Is lets errors.Is(err, ErrSessionExpired) succeed for non-login 401s.
func (e *RequestError) Is(target error) bool {
	return target == ErrSessionExpired && e.sessionExpired
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}

// MessageOf returns the user-facing message for err.
func MessageOf(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// errorBody covers the shapes the backend uses for failures: a plain
// detail string, a list of validation problems, or message/error keys.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type validationProblem struct {
	Msg string `json:"msg"`
}

// bodyMessage extracts a human message from a JSON error body, or "".
func bodyMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if len(eb.Detail) > 0 {
		var s string
		if err := json.Unmarshal(eb.Detail, &s); err == nil && strings.TrimSpace(s) != "" {
			return s
		}
		var problems []validationProblem
		if err := json.Unmarshal(eb.Detail, &problems); err == nil {
			for _, p := range problems {
				if strings.TrimSpace(p.Msg) != "" {
					return p.Msg
				}
			}
		}
	}
	if strings.TrimSpace(eb.Message) != "" {
		return eb.Message
	}
	return strings.TrimSpace(eb.Error)
}

func genericMessage(status int) string {
	return fmt.Sprintf("Request failed: %d", status)
}
