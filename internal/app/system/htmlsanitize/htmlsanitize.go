// Package htmlsanitize strips markup from free text typed by staff before it
// is sent to the backend and later rendered on other users' screens.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText removes every HTML element from s (dropping script and style
// contents entirely) and returns the remaining text, unescaped and trimmed.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
