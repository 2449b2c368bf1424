// internal/app/features/reports/handler.go
package reports

import (
	"time"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	reportstore "github.com/dalemusser/recruitdesk/internal/app/store/reports"
	"github.com/dalemusser/recruitdesk/internal/app/system/auditlog"
	"github.com/dalemusser/recruitdesk/internal/app/system/listfilter"
	"go.uber.org/zap"
)

// Handler owns the reports page and every export behind it.
//
// The candidate exports are built here from one capped candidate page; the
// daily log, interview results and audit log are generated by the backend
// and streamed through unchanged.
type Handler struct {
	Candidates *candidatestore.Store
	Reports    *reportstore.Store
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Log        *zap.Logger

	FetchCap int

	// Now stamps export filenames. Tests pin it.
	Now func() time.Time
}

func NewHandler(
	cands *candidatestore.Store,
	reports *reportstore.Store,
	errLog *uierrors.ErrorLogger,
	audit *auditlog.Logger,
	fetchCap int,
	logger *zap.Logger,
) *Handler {
	if fetchCap <= 0 {
		fetchCap = listfilter.DefaultCap
	}
	return &Handler{
		Candidates: cands,
		Reports:    reports,
		ErrLog:     errLog,
		AuditLog:   audit,
		Log:        logger,
		FetchCap:   fetchCap,
		Now:        time.Now,
	}
}
