package navigation_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/recruitdesk/internal/app/system/navigation"
)

func TestLoginReturn(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"no return", "/login", "/dashboard"},
		{"local path", "/login?return=" + url.QueryEscape("/candidates?q=asha"), "/candidates?q=asha"},
		{"absolute url rejected", "/login?return=" + url.QueryEscape("https://evil.example/x"), "/dashboard"},
		{"protocol relative rejected", "/login?return=" + url.QueryEscape("//evil.example"), "/dashboard"},
		{"login loop rejected", "/login?return=" + url.QueryEscape("/login"), "/dashboard"},
		{"logout rejected", "/login?return=" + url.QueryEscape("/logout"), "/dashboard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := navigation.LoginReturn(r); got != tt.want {
				t.Errorf("LoginReturn = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSafeBackURL_FormValue(t *testing.T) {
	r := httptest.NewRequest("POST", "/candidates/X/interview", strings.NewReader("return=%2Fcandidates%3Fstatus%3Dyet_to_interview"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if got := navigation.SafeBackURL(r, navigation.CandidatesBackURL); got != "/candidates?status=yet_to_interview" {
		t.Errorf("SafeBackURL = %q", got)
	}
}

func TestSafeBackURL_PrefixAndExclusions(t *testing.T) {
	tests := []struct {
		ret  string
		want string
	}{
		{"/dashboard", "/candidates"},
		{"/candidates/X/interview", "/candidates"},
		{"/candidates/X", "/candidates/X"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/x?return="+url.QueryEscape(tt.ret), nil)
		if got := navigation.SafeBackURL(r, navigation.CandidatesBackURL); got != tt.want {
			t.Errorf("SafeBackURL(%q) = %q, want %q", tt.ret, got, tt.want)
		}
	}
}
