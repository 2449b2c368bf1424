// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type profileData struct {
	viewdata.BaseVM

	UserID   string
	FullName string
	Email    string
	UserRole string

	// Stale is set when the backend could not be reached and the session
	// copy of the identity is shown instead.
	Stale bool
}

// ServeProfile shows the signed-in identity as the backend currently
// reports it.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		auth.RedirectToLogin(w, r)
		return
	}
	data := profileData{
		BaseVM:   viewdata.NewBaseVM(r, "Profile", "/dashboard"),
		UserID:   u.ID,
		FullName: u.Name,
		Email:    u.Email,
		UserRole: u.Role,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	me, err := h.Accounts.Me(ctx)
	switch {
	case errors.Is(err, apiclient.ErrSessionExpired):
		h.ErrLog.ExpireSession(w, r, "/profile")
		return
	case err != nil:
		h.Log.Warn("profile refresh failed", zap.String("user_id", u.ID), zap.Error(err))
		data.Stale = true
	default:
		data.UserID = me.ID
		data.FullName = me.FullName
		data.Email = me.Email
		data.UserRole = me.Role
	}

	templates.Render(w, r, "profile", data)
}
