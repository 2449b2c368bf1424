package auth_test

import (
	"testing"

	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
)

func TestDecide(t *testing.T) {
	hr := &auth.SessionUser{ID: "u1", Role: "hr"}
	admin := &auth.SessionUser{ID: "u2", Role: "Admin"}

	tests := []struct {
		name    string
		state   auth.GuardState
		allowed []string
		want    auth.Decision
	}{
		{"loading wins over everything", auth.GuardState{User: hr, Loading: true}, []string{"admin"}, auth.ShowPlaceholder},
		{"no user", auth.GuardState{}, nil, auth.RedirectLogin},
		{"no user with roles", auth.GuardState{}, []string{"hr"}, auth.RedirectLogin},
		{"any signed-in user", auth.GuardState{User: hr}, nil, auth.Allow},
		{"empty role set", auth.GuardState{User: hr}, []string{}, auth.Allow},
		{"role allowed", auth.GuardState{User: hr}, []string{"admin", "hr"}, auth.Allow},
		{"role case-insensitive", auth.GuardState{User: admin}, []string{"admin"}, auth.Allow},
		{"role not allowed", auth.GuardState{User: hr}, []string{"admin"}, auth.ShowForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := auth.Decide(tt.state, tt.allowed); got != tt.want {
				t.Errorf("Decide: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecide_IsPure(t *testing.T) {
	s := auth.GuardState{User: &auth.SessionUser{Role: "interviewer"}}
	allowed := []string{"hr", "interviewer"}
	first := auth.Decide(s, allowed)
	for i := 0; i < 3; i++ {
		if got := auth.Decide(s, allowed); got != first {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
	if allowed[0] != "hr" || allowed[1] != "interviewer" {
		t.Error("Decide mutated the role set")
	}
}

func TestHasAnyRole(t *testing.T) {
	var nilUser *auth.SessionUser
	if nilUser.HasAnyRole("admin") {
		t.Error("nil user must have no roles")
	}
	u := &auth.SessionUser{Role: " HR "}
	if !u.HasAnyRole("admin", "hr") {
		t.Error("expected hr to match")
	}
	if u.HasAnyRole("interviewer") {
		t.Error("hr must not match interviewer")
	}
	if (&auth.SessionUser{}).HasAnyRole("") {
		t.Error("empty role must not match")
	}
}
