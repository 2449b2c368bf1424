// internal/app/features/reports/backend.go
package reports

import (
	"context"
	"errors"
	"net/http"
	"strings"

	reportstore "github.com/dalemusser/recruitdesk/internal/app/store/reports"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// rangeFilter is the date window and optional filters accepted by the
// backend-generated reports.
type rangeFilter struct {
	From     string `form:"From date" validate:"omitempty,datetime=2006-01-02"`
	To       string `form:"To date" validate:"omitempty,datetime=2006-01-02"`
	Role     string `form:"Role" validate:"max=100"`
	Decision string `form:"Decision" validate:"omitempty,oneof=shortlist reject hold"`
}

func parseRange(r *http.Request) rangeFilter {
	return rangeFilter{
		From:     strings.TrimSpace(query.Get(r, "from")),
		To:       strings.TrimSpace(query.Get(r, "to")),
		Role:     normalize.QueryParam(query.Get(r, "role")),
		Decision: normalize.Decision(query.Get(r, "decision")),
	}
}

func (f rangeFilter) window() reportstore.Range {
	return reportstore.Range{From: f.From, To: f.To}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /reports/daily-log                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDailyLog(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, "daily-log", func(ctx context.Context, f rangeFilter) (*apiclient.Blob, error) {
		return h.Reports.DailyLog(ctx, f.window())
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /reports/interview-results                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeInterviewResults(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, "interview-results", func(ctx context.Context, f rangeFilter) (*apiclient.Blob, error) {
		return h.Reports.InterviewResults(ctx, f.window(), f.Role, f.Decision)
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /reports/audit-logs                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeAuditLogs(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, "audit-logs", func(ctx context.Context, f rangeFilter) (*apiclient.Blob, error) {
		return h.Reports.AuditLogs(ctx, f.window())
	})
}

// proxy validates the filter, downloads the backend spreadsheet and passes
// it through. A bad filter or a rejected request re-renders the reports
// page with the message.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request, kind string, fetch func(context.Context, rangeFilter) (*apiclient.Blob, error)) {
	f := parseRange(r)
	if msg := formutil.Check(f); msg != "" {
		h.renderIndex(w, r, f, msg, http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Download())
	defer cancel()
	blob, err := fetch(ctx, f)
	if err != nil {
		if inlineError(err) {
			h.renderIndex(w, r, f, apiclient.MessageOf(err), apiclient.StatusOf(err))
			return
		}
		h.ErrLog.HandleAPIError(w, r, kind+" download failed", err, "/reports")
		return
	}

	name := blob.Filename
	if name == "" {
		name = xlsxFilename(kind, h.Now().UTC())
	}
	attachBlob(w, blob.ContentType, name)
	if _, err := w.Write(blob.Data); err != nil {
		h.Log.Warn("writing report failed", zap.String("kind", kind), zap.Error(err))
	}
	h.AuditLog.ReportExported(r, kind, formatXLSX)
}

// inlineError reports whether err is a client error the reports page can
// show next to the form.
func inlineError(err error) bool {
	if errors.Is(err, apiclient.ErrSessionExpired) {
		return false
	}
	s := apiclient.StatusOf(err)
	return s >= 400 && s < 500 && s != http.StatusNotFound
}
