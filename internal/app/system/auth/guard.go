// internal/app/system/auth/guard.go
package auth

// Decision is the outcome of evaluating a protected screen.
type Decision int

const (
	Allow Decision = iota
	ShowPlaceholder
	RedirectLogin
	ShowForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case ShowPlaceholder:
		return "placeholder"
	case RedirectLogin:
		return "redirect-login"
	case ShowForbidden:
		return "forbidden"
	}
	return "unknown"
}

// GuardState is the session state a guard decision depends on.
type GuardState struct {
	User    *SessionUser
	Loading bool
}

// Decide maps session state and an optional role set to a Decision.
// An empty allowed set means any signed-in user may pass.
func Decide(s GuardState, allowed []string) Decision {
	if s.Loading {
		return ShowPlaceholder
	}
	if s.User == nil {
		return RedirectLogin
	}
	if len(allowed) > 0 && !s.User.HasAnyRole(allowed...) {
		return ShowForbidden
	}
	return Allow
}
