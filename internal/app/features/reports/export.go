// internal/app/features/reports/export.go
package reports

import (
	"context"
	"net/http"

	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	"github.com/dalemusser/recruitdesk/internal/app/system/csvutil"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"go.uber.org/zap"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

// table is one export ready to be written in either format.
type table struct {
	kind   string
	sheet  string
	header []string
	rows   [][]string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /reports/all-candidates.{csv,xlsx}                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeAllCandidatesCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, formatCSV, allCandidates)
}

func (h *Handler) ServeAllCandidatesXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, formatXLSX, allCandidates)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /reports/branch-summary.{csv,xlsx}                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeBranchSummaryCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, formatCSV, branchSummary)
}

func (h *Handler) ServeBranchSummaryXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, formatXLSX, branchSummary)
}

func allCandidates(cs []models.Candidate) table {
	return table{kind: KindAllCandidates, sheet: "Candidates", header: AllCandidatesHeader, rows: CandidateRows(cs)}
}

func branchSummary(cs []models.Candidate) table {
	return table{kind: KindBranchSummary, sheet: "Branch Summary", header: BranchSummaryHeader, rows: BranchRows(BranchSummary(cs))}
}

// export fetches one capped candidate page, shapes it with build and
// writes it as a dated download.
func (h *Handler) export(w http.ResponseWriter, r *http.Request, format string, build func([]models.Candidate) table) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()
	list, err := h.Candidates.List(ctx, candidatestore.ListParams{Limit: h.FetchCap})
	if err != nil {
		h.ErrLog.HandleAPIError(w, r, "report candidate fetch failed", err, "/reports")
		return
	}
	t := build(list.Candidates)
	day := h.Now().UTC()

	switch format {
	case formatXLSX:
		data, err := buildXLSX(t.sheet, t.header, t.rows)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "building workbook failed", err, "Could not build the spreadsheet.", "/reports")
			return
		}
		attachBlob(w, xlsxContentType, xlsxFilename(t.kind, day))
		if _, err := w.Write(data); err != nil {
			h.Log.Warn("writing workbook failed", zap.String("kind", t.kind), zap.Error(err))
		}
	default:
		csvutil.Attach(w, csvutil.Filename(t.kind, day))
		if err := csvutil.WriteAll(w, t.header, t.rows); err != nil {
			h.Log.Warn("writing csv failed", zap.String("kind", t.kind), zap.Error(err))
		}
	}

	h.AuditLog.ReportExported(r, t.kind, format)
	h.Log.Info("report exported",
		zap.String("kind", t.kind),
		zap.String("format", format),
		zap.Int("rows", len(t.rows)))
}
