// internal/app/store/accounts/accountstore.go
package accountstore

import (
	"context"
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// Store wraps the backend's auth endpoints.
type Store struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and identity.
// A 401 here carries the backend's message and never signals session expiry.
func (s *Store) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	var out models.LoginResult
	err := s.api.Do(ctx, http.MethodPost, apiclient.DefaultLoginPath,
		loginRequest{Email: normalize.Email(email), Password: password},
		&out, apiclient.Public())
	return out, err
}

// Me returns the identity behind the token in ctx.
func (s *Store) Me(ctx context.Context) (models.User, error) {
	var out models.User
	err := s.api.Do(ctx, http.MethodGet, "/auth/me", nil, &out)
	return out, err
}
