// Package normalize cleans user input before it is sent to the backend.
package normalize

import (
	"strconv"
	"strings"
)

// Email trims and lowercases an email address.
func Email(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Name trims a display name, preserving case.
func Name(s string) string { return strings.TrimSpace(s) }

// Status trims and lowercases a status value.
func Status(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Decision trims and lowercases an interview decision.
func Decision(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// QueryParam trims a query value, preserving case.
func QueryParam(s string) string { return strings.TrimSpace(s) }

// OptionalFloat parses s as a float. Blank or unparseable input yields nil
// so the field is omitted from the request.
func OptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
