// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	accountstore "github.com/dalemusser/recruitdesk/internal/app/store/accounts"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/app/system/auth"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/navigation"
	"github.com/dalemusser/recruitdesk/internal/app/system/ratelimit"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Accounts   *accountstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Limiter    *ratelimit.LoginLimiter
}

func NewHandler(
	accounts *accountstore.Store,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	audit *auditlog.Logger,
	limiter *ratelimit.LoginLimiter,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Accounts:   accounts,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		AuditLog:   audit,
		Limiter:    limiter,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

type credentials struct {
	Email    string `form:"Email" validate:"required"`
	Password string `form:"Password" validate:"required"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLogin renders the sign-in form. Signed-in users go straight on.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, navigation.LoginReturn(r), http.StatusSeeOther)
		return
	}
	h.render(w, r, "", "", query.Get(r, "return"))
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLoginPost exchanges credentials with the backend and starts a
// session. Failures are shown on the form; they never clear a session or
// redirect.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}
	in := credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	ret := strings.TrimSpace(r.PostFormValue("return"))

	if msg := formutil.Check(in); msg != "" {
		h.render(w, r, msg, in.Email, ret)
		return
	}
	if h.Limiter != nil {
		if msg := h.Limiter.Check(r, in.Email); msg != "" {
			h.AuditLog.LoginRateLimited(r, in.Email)
			w.WriteHeader(http.StatusTooManyRequests)
			h.render(w, r, msg, in.Email, ret)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()
	res, err := h.Accounts.Login(ctx, in.Email, in.Password)
	if err != nil {
		h.Log.Info("login rejected", zap.String("email", in.Email), zap.Int("status", apiclient.StatusOf(err)))
		h.AuditLog.LoginFailed(r, in.Email, apiclient.MessageOf(err))
		h.render(w, r, apiclient.MessageOf(err), in.Email, ret)
		return
	}

	u := auth.SessionUser{
		ID:    res.User.ID,
		Name:  res.User.FullName,
		Email: res.User.Email,
		Role:  res.User.Role,
	}
	if err := h.SessionMgr.Login(w, r, u, res.AccessToken); err != nil {
		h.ErrLog.LogServerError(w, r, "session save failed", err, "Unable to sign you in right now.", "/login")
		return
	}
	if h.Limiter != nil {
		h.Limiter.ResetEmail(in.Email)
	}
	h.AuditLog.LoginSuccess(r, u.ID, u.Role, u.Email)
	h.Log.Info("user signed in", zap.String("user_id", u.ID), zap.String("role", u.Role))

	http.Redirect(w, r, navigation.LoginReturn(r), http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, msg, email, ret string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}
