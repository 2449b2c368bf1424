package kpistore_test

import (
	"errors"
	"net/http"
	"testing"

	kpistore "github.com/dalemusser/recruitdesk/internal/app/store/dashboard"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/recruitdesk/internal/testutil"
)

func TestStore_KPIs(t *testing.T) {
	b := testutil.NewBackend(t)
	b.AddCandidate(models.Candidate{Name: "A"})
	b.AddCandidate(models.Candidate{Name: "B"})
	b.AddCandidate(models.Candidate{Name: "C", Status: models.StatusInterviewCompleted})
	store := kpistore.New(b.Client())

	k, err := store.KPIs(b.Ctx())
	if err != nil {
		t.Fatalf("KPIs failed: %v", err)
	}
	want := models.KPIs{YetToInterview: 2, InterviewCompleted: 1, TotalCandidates: 3}
	if k != want {
		t.Errorf("KPIs = %+v, want %+v", k, want)
	}
}

func TestStore_KPIs_ExpiredToken(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Fail("/dashboard/kpis", http.StatusUnauthorized, "Token expired")
	store := kpistore.New(b.Client())

	if _, err := store.KPIs(b.Ctx()); !errors.Is(err, apiclient.ErrSessionExpired) {
		t.Errorf("err = %v, want ErrSessionExpired", err)
	}
}
