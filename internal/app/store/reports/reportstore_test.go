package reportstore_test

import (
	"strings"
	"testing"

	reportstore "github.com/dalemusser/recruitdesk/internal/app/store/reports"
	"github.com/dalemusser/recruitdesk/internal/testutil"
)

func TestStore_Downloads(t *testing.T) {
	b := testutil.NewBackend(t)
	store := reportstore.New(b.Client())
	r := reportstore.Range{From: "2025-01-01", To: "2025-01-31"}

	blob, err := store.DailyLog(b.Ctx(), r)
	if err != nil {
		t.Fatalf("DailyLog failed: %v", err)
	}
	if blob.Filename != "daily-log.xlsx" {
		t.Errorf("Filename = %q", blob.Filename)
	}
	if !strings.Contains(blob.ContentType, "spreadsheetml") {
		t.Errorf("ContentType = %q", blob.ContentType)
	}
	if string(blob.Data) != "PK-daily-log" {
		t.Errorf("Data = %q", blob.Data)
	}

	if _, err := store.InterviewResults(b.Ctx(), r, "", "Shortlist"); err != nil {
		t.Fatalf("InterviewResults failed: %v", err)
	}
	if _, err := store.AuditLogs(b.Ctx(), reportstore.Range{}); err != nil {
		t.Fatalf("AuditLogs failed: %v", err)
	}

	calls := b.Calls()
	if !strings.Contains(calls[0], "from_date=2025-01-01") || !strings.Contains(calls[0], "to_date=2025-01-31") {
		t.Errorf("daily-log query = %s", calls[0])
	}
	if !strings.Contains(calls[1], "decision=shortlist") || strings.Contains(calls[1], "role=") {
		t.Errorf("interview-results query = %s", calls[1])
	}
	if strings.Contains(calls[2], "?") {
		t.Errorf("audit-logs with no range should send no query: %s", calls[2])
	}
}
