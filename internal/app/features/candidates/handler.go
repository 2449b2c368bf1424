// internal/app/features/candidates/handler.go
package candidates

import (
	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	interviewstore "github.com/dalemusser/recruitdesk/internal/app/store/interviews"
	reinterviewstore "github.com/dalemusser/recruitdesk/internal/app/store/reinterview"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/app/system/listfilter"
	"go.uber.org/zap"
)

// Handler serves candidate search, detail, and the actions staff take on a
// single candidate.
type Handler struct {
	Candidates  *candidatestore.Store
	Interviews  *interviewstore.Store
	ReInterview *reinterviewstore.Store
	ErrLog      *uierrors.ErrorLogger
	AuditLog    *auditlog.Logger
	Log         *zap.Logger

	// FetchCap bounds how many candidates the list fetches before
	// filtering in process.
	FetchCap int
}

func NewHandler(
	cands *candidatestore.Store,
	interviews *interviewstore.Store,
	reinterview *reinterviewstore.Store,
	errLog *uierrors.ErrorLogger,
	audit *auditlog.Logger,
	fetchCap int,
	logger *zap.Logger,
) *Handler {
	if fetchCap <= 0 {
		fetchCap = listfilter.DefaultCap
	}
	return &Handler{
		Candidates:  cands,
		Interviews:  interviews,
		ReInterview: reinterview,
		ErrLog:      errLog,
		AuditLog:    audit,
		Log:         logger,
		FetchCap:    fetchCap,
	}
}
