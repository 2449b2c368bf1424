// internal/domain/models/user.go
package models

// Staff roles recognised by the recruitment backend.
const (
	RoleAdmin       = "admin"
	RoleHR          = "hr"
	RoleInterviewer = "interviewer"
	RoleRecruiter   = "recruiter"
)

// User is the identity returned by the backend for a signed-in staff member.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"` // admin | hr | interviewer | recruiter
}

// LoginResult is the credential exchange response.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}
