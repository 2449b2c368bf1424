// internal/app/features/profile/handler.go
package profile

import (
	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	accountstore "github.com/dalemusser/recruitdesk/internal/app/store/accounts"
	"go.uber.org/zap"
)

// Handler owns the profile page.
type Handler struct {
	Accounts *accountstore.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(accounts *accountstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Accounts: accounts,
		ErrLog:   errLog,
		Log:      logger,
	}
}
