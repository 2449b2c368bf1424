// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), display name, ID, and a found
// flag. With no signed-in user it returns "visitor", "", "", false.
func UserCtx(r *http.Request) (role, name, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}
