// internal/app/system/auth/session.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session keys                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	isAuthKey      = "is_authenticated"
	userIDKey      = "user_id"
	userNameKey    = "user_name"
	userEmailKey   = "user_email"
	userRoleKey    = "user_role"
	accessTokenKey = "access_token"
	validatedAtKey = "validated_at"
)

// UserFetcher loads the current identity from the backend using the bearer
// token carried in ctx.
type UserFetcher interface {
	FetchUser(ctx context.Context) (*SessionUser, error)
}

// SessionManager owns the signed session cookie that holds the signed-in
// user's identity and bearer token.
type SessionManager struct {
	store      *sessions.CookieStore
	name       string
	maxAge     time.Duration
	revalidate time.Duration
	fetcher    UserFetcher
	forbidden  http.Handler
	log        *zap.Logger
	now        func() time.Time
}

// NewSessionManager builds a cookie-backed session manager.
//
// In production (secure=true) cookies are Secure with SameSite=Lax; local dev
// over http://localhost uses secure=false so cookies are accepted.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = "recruitdesk-session"
	}
	if maxAge <= 0 {
		maxAge = 12 * time.Hour
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Duration("max_age", maxAge))

	return &SessionManager{
		store:  store,
		name:   name,
		maxAge: maxAge,
		log:    logger,
		now:    time.Now,
	}, nil
}

// SetUserFetcher enables revalidation against the backend. A session is
// re-checked once every interval; zero re-checks on every request.
func (m *SessionManager) SetUserFetcher(f UserFetcher, every time.Duration) {
	m.fetcher = f
	m.revalidate = every
}

// SetForbiddenHandler sets the view rendered in place of a screen the
// current role may not see.
func (m *SessionManager) SetForbiddenHandler(h http.Handler) {
	m.forbidden = h
}

// GetSession returns the session for r. On decode failure a fresh session
// is returned alongside the error.
func (m *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, m.name)
}

// Login replaces the session contents with u and token.
// The cookie lifetime never outlives the token's exp claim.
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, u SessionUser, token string) error {
	sess, err := m.GetSession(r)
	if err != nil {
		m.log.Debug("discarding undecodable session on login", zap.Error(err))
	}

	sess.Values = map[interface{}]interface{}{
		isAuthKey:      true,
		userIDKey:      u.ID,
		userNameKey:    u.Name,
		userEmailKey:   u.Email,
		userRoleKey:    u.Role,
		accessTokenKey: token,
		validatedAtKey: m.now().Unix(),
	}

	ttl := m.maxAge
	if exp, ok := TokenExpiry(token); ok {
		if left := exp.Sub(m.now()); left > 0 && left < ttl {
			ttl = left
		}
	}
	sess.Options.MaxAge = int(ttl.Seconds())

	return sess.Save(r, w)
}

// Logout deletes the session cookie.
func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.GetSession(r)
	if err != nil {
		m.log.Warn("session decode failed during logout", zap.Error(err))
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadSessionUser injects the user and bearer token into the request
// context when a valid session cookie is present. Sessions whose token has
// expired, or that the backend no longer accepts, are cleared.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.GetSession(r)
		if err != nil {
			m.log.Debug("session decode failed", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if isAuth, _ := sess.Values[isAuthKey].(bool); !isAuth {
			next.ServeHTTP(w, r)
			return
		}

		token := getString(sess, accessTokenKey)
		if token == "" {
			m.clear(w, r, "missing token")
			next.ServeHTTP(w, r)
			return
		}
		if exp, ok := TokenExpiry(token); ok && !exp.After(m.now()) {
			m.clear(w, r, "token expired")
			next.ServeHTTP(w, r)
			return
		}

		u := &SessionUser{
			ID:    getString(sess, userIDKey),
			Name:  getString(sess, userNameKey),
			Email: getString(sess, userEmailKey),
			Role:  getString(sess, userRoleKey),
		}

		if m.fetcher != nil && m.stale(sess) {
			ctx, cancel := context.WithTimeout(apiclient.WithToken(r.Context(), token), timeouts.Short())
			fresh, err := m.fetcher.FetchUser(ctx)
			cancel()

			switch {
			case err == nil && fresh != nil:
				u = fresh
				sess.Values[userIDKey] = u.ID
				sess.Values[userNameKey] = u.Name
				sess.Values[userEmailKey] = u.Email
				sess.Values[userRoleKey] = u.Role
				sess.Values[validatedAtKey] = m.now().Unix()
				if err := sess.Save(r, w); err != nil {
					m.log.Warn("session save after revalidation failed", zap.Error(err))
				}
			case errors.Is(err, context.DeadlineExceeded):
				m.log.Warn("session revalidation timed out")
				next.ServeHTTP(w, withLoading(r))
				return
			default:
				m.log.Info("session revalidation failed; clearing", zap.Error(err))
				m.clear(w, r, "revalidation failed")
				next.ServeHTTP(w, r)
				return
			}
		}

		r = withUser(r, u)
		r = r.WithContext(apiclient.WithToken(r.Context(), token))
		next.ServeHTTP(w, r)
	})
}

func (m *SessionManager) stale(sess *sessions.Session) bool {
	at, _ := sess.Values[validatedAtKey].(int64)
	if at == 0 {
		return true
	}
	return m.now().Sub(time.Unix(at, 0)) >= m.revalidate
}

func (m *SessionManager) clear(w http.ResponseWriter, r *http.Request, reason string) {
	if err := m.Logout(w, r); err != nil {
		m.log.Error("clear session", zap.String("reason", reason), zap.Error(err))
		return
	}
	m.log.Debug("session cleared", zap.String("reason", reason))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
