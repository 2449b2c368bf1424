package home_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/recruitdesk/internal/app/features/home"
	"github.com/dalemusser/recruitdesk/internal/testutil"
	"go.uber.org/zap"
)

func TestServeRoot(t *testing.T) {
	h := home.NewHandler(zap.NewNop())

	tests := []struct {
		name string
		user *testutil.TestUser
		want string
	}{
		{"anonymous", nil, "/login"},
		{"signed in", &testutil.TestUser{ID: "u1", Name: "R", Role: "recruiter"}, "/dashboard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.user != nil {
				req = testutil.WithUser(req, *tt.user)
			}
			rec := testutil.NewRecorder()
			h.ServeRoot(rec, req)
			rec.AssertRedirect(t, tt.want)
		})
	}
}
