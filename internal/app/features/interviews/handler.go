// internal/app/features/interviews/handler.go
package interviews

import (
	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	interviewstore "github.com/dalemusser/recruitdesk/internal/app/store/interviews"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// Handler serves the interview queues: candidates still to be interviewed
// and the history of completed interviews.
type Handler struct {
	Interviews *interviewstore.Store
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Log        *zap.Logger
}

func NewHandler(interviews *interviewstore.Store, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Interviews: interviews,
		ErrLog:     errLog,
		AuditLog:   audit,
		Log:        logger,
	}
}
