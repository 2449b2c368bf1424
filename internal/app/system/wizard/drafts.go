// internal/app/system/wizard/drafts.go
package wizard

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// Drafts keeps a flow's in-progress State in a signed, encrypted cookie so
// the wizard survives across requests without server-side storage.
type Drafts struct {
	codec  *securecookie.SecureCookie
	secure bool
	maxAge time.Duration
	log    *zap.Logger
}

// NewDrafts builds a draft store keyed by key.
func NewDrafts(key string, secure bool, maxAge time.Duration, logger *zap.Logger) *Drafts {
	block := sha256.Sum256([]byte("wizard-draft:" + key))
	codec := securecookie.New([]byte(key), block[:])
	codec.SetSerializer(securecookie.JSONEncoder{})
	if maxAge <= 0 {
		maxAge = 2 * time.Hour
	}
	codec.MaxAge(int(maxAge.Seconds()))
	return &Drafts{codec: codec, secure: secure, maxAge: maxAge, log: logger}
}

func cookieName(f *Flow) string { return "wizard_" + f.Name }

// Load returns the saved state for f, or a fresh state.
func (d *Drafts) Load(r *http.Request, f *Flow) *State {
	c, err := r.Cookie(cookieName(f))
	if err != nil {
		return f.Start()
	}
	s := &State{}
	if err := d.codec.Decode(cookieName(f), c.Value, s); err != nil {
		d.log.Debug("discarding unreadable wizard draft", zap.String("flow", f.Name), zap.Error(err))
		return f.Start()
	}
	if s.Values == nil {
		s.Values = map[string]string{}
	}
	s.Step = f.clamp(s.Step)
	// An in-flight flag never survives a round trip.
	s.Submitting = false
	return s
}

// Save writes s for f.
func (d *Drafts) Save(w http.ResponseWriter, f *Flow, s *State) error {
	enc, err := d.codec.Encode(cookieName(f), s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(f),
		Value:    enc,
		Path:     "/",
		MaxAge:   int(d.maxAge.Seconds()),
		Secure:   d.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the draft for f.
func (d *Drafts) Clear(w http.ResponseWriter, f *Flow) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName(f),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   d.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
