package reports_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	"github.com/dalemusser/recruitdesk/internal/app/features/reports"
	candidatestore "github.com/dalemusser/recruitdesk/internal/app/store/candidates"
	reportstore "github.com/dalemusser/recruitdesk/internal/app/store/reports"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/recruitdesk/internal/testutil"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var fixedDay = time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*reports.Handler, *testutil.Backend) {
	t.Helper()
	testutil.BootTemplates(t)
	b := testutil.NewBackend(t)
	api := b.Client()
	logger := zap.NewNop()
	h := reports.NewHandler(
		candidatestore.New(api),
		reportstore.New(api),
		uierrors.NewErrorLogger(logger),
		nil,
		0,
		logger,
	)
	h.Now = func() time.Time { return fixedDay }
	return h, b
}

func seed(b *testutil.Backend) {
	b.AddCandidate(models.Candidate{Name: "Asha, Verma", DiplomaBranch: "Civil Engineering", Decision: models.DecisionShortlist, Status: models.StatusInterviewCompleted})
	b.AddCandidate(models.Candidate{Name: "Ravi Kumar", DiplomaBranch: "Civil Engineering", Decision: models.DecisionReject, Status: models.StatusInterviewCompleted})
	b.AddCandidate(models.Candidate{Name: "Neha Singh"})
}

func get(h http.HandlerFunc, target string) *testutil.ResponseRecorder {
	req := testutil.NewAuthenticatedRequest(http.MethodGet, target, testutil.HRUser())
	req.Header.Set("Accept", "text/html")
	rec := testutil.NewRecorder()
	h(rec, req)
	return rec
}

func TestServeIndex(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := get(h.ServeIndex, "/reports")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "/reports/all-candidates.csv")
	rec.AssertContains(t, "/reports/branch-summary.xlsx")
	rec.AssertContains(t, "/reports/daily-log")
}

func TestAllCandidatesCSV(t *testing.T) {
	h, b := newTestHandler(t)
	seed(b)

	rec := get(h.ServeAllCandidatesCSV, "/reports/all-candidates.csv")

	rec.AssertStatus(t, http.StatusOK)
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="all-candidates-2026-03-07.csv"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "\xEF\xBB\xBFCandidate ID,Name,Gender,") {
		t.Errorf("missing BOM or header: %q", body[:40])
	}
	if lines := strings.Split(strings.TrimSuffix(body, "\r\n"), "\r\n"); len(lines) != 4 {
		t.Errorf("lines = %d, want header + 3", len(lines))
	}
	rec.AssertContains(t, `"Asha, Verma"`)
	rec.AssertContains(t, reports.Missing)
	if !b.Called("/api/candidates?limit=200") {
		t.Errorf("calls = %v, want capped candidate fetch", b.Calls())
	}
}

func TestBranchSummaryCSV(t *testing.T) {
	h, b := newTestHandler(t)
	seed(b)

	rec := get(h.ServeBranchSummaryCSV, "/reports/branch-summary.csv")

	rec.AssertStatus(t, http.StatusOK)
	want := "\xEF\xBB\xBFBranch,Shortlisted Count,Rejected Count,Grand Total\r\n" +
		"Civil Engineering,1,1,2\r\n" +
		"Unspecified,0,0,1\r\n"
	if rec.Body.String() != want {
		t.Errorf("body = %q\nwant %q", rec.Body.String(), want)
	}
}

func TestBranchSummaryXLSX(t *testing.T) {
	h, b := newTestHandler(t)
	seed(b)

	rec := get(h.ServeBranchSummaryXLSX, "/reports/branch-summary.xlsx")

	rec.AssertStatus(t, http.StatusOK)
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="branch-summary-2026-03-07.xlsx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Branch Summary")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "Branch" || rows[1][0] != "Civil Engineering" || rows[1][3] != "2" {
		t.Errorf("rows = %v", rows)
	}
}

func TestExport_BackendFailure(t *testing.T) {
	h, b := newTestHandler(t)
	b.Fail("/candidates", http.StatusInternalServerError, "Database unavailable")

	rec := get(h.ServeAllCandidatesCSV, "/reports/all-candidates.csv")

	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "Database unavailable")
}

func TestBackendReports_PassThrough(t *testing.T) {
	tests := []struct {
		name     string
		serve    func(*reports.Handler) http.HandlerFunc
		target   string
		wantCall string
		wantFile string
	}{
		{"daily log", func(h *reports.Handler) http.HandlerFunc { return h.ServeDailyLog },
			"/reports/daily-log?from=2025-01-01&to=2025-01-31", "/api/reports/daily-log?from_date=2025-01-01&to_date=2025-01-31", "daily-log.xlsx"},
		{"interview results", func(h *reports.Handler) http.HandlerFunc { return h.ServeInterviewResults },
			"/reports/interview-results?decision=Shortlist", "/api/reports/interview-results?decision=shortlist", "interview-results.xlsx"},
		{"audit logs", func(h *reports.Handler) http.HandlerFunc { return h.ServeAuditLogs },
			"/reports/audit-logs", "/api/reports/audit-logs", "audit-logs.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, b := newTestHandler(t)
			rec := get(tt.serve(h), tt.target)

			rec.AssertStatus(t, http.StatusOK)
			if !b.Called(tt.wantCall) {
				t.Errorf("calls = %v, want %s", b.Calls(), tt.wantCall)
			}
			if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, tt.wantFile) {
				t.Errorf("Content-Disposition = %q, want %s", cd, tt.wantFile)
			}
			if !strings.HasPrefix(rec.Body.String(), "PK-") {
				t.Errorf("body = %q", rec.Body.String())
			}
		})
	}
}

func TestBackendReports_InvalidRange(t *testing.T) {
	h, b := newTestHandler(t)

	rec := get(h.ServeDailyLog, "/reports/daily-log?from=07/03/2026")

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "From date")
	if calls := b.Calls(); len(calls) != 0 {
		t.Errorf("backend calls = %v, want none", calls)
	}
}

func TestBackendReports_RejectedShownInline(t *testing.T) {
	h, b := newTestHandler(t)
	b.Fail("/reports/audit-logs", http.StatusForbidden, "Admins only")

	rec := get(h.ServeAuditLogs, "/reports/audit-logs")

	rec.AssertStatus(t, http.StatusForbidden)
	rec.AssertContains(t, "Admins only")
	rec.AssertContains(t, "Branch-wise Summary")
}

func TestBackendReports_ExpiredSession(t *testing.T) {
	h, b := newTestHandler(t)
	b.Fail("/reports/daily-log", http.StatusUnauthorized, "Could not validate credentials")

	rec := get(h.ServeDailyLog, "/reports/daily-log")

	rec.AssertRedirect(t, "/login?return=%2Freports%2Fdaily-log")
}
