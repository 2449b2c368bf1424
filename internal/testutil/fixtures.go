package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BackendToken is the bearer token the fake backend accepts.
const BackendToken = "test-token"

// BackendPassword is the password accepted for Backend.User.
const BackendPassword = "secret"

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Backend is an in-memory stand-in for the recruitment REST API. It keeps
// enough state for end-to-end flows: candidates move to
// interview_completed on submit and back on an approved re-interview.
type Backend struct {
	t      *testing.T
	Server *httptest.Server

	mu         sync.Mutex
	User       models.User
	Candidates []models.Candidate
	Interviews []models.Interview
	Requests   []models.ReInterviewRequest
	calls      []string
	bodies     map[string][]byte
	failures   map[string]failure
	seq        int
}

type failure struct {
	status int
	detail string
}

// NewBackend starts a fake backend that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		t:        t,
		User:     models.User{ID: "u-admin", Email: "admin@test.com", FullName: "Test Admin", Role: models.RoleAdmin},
		bodies:   map[string][]byte{},
		failures: map[string]failure{},
	}
	b.Server = httptest.NewServer(b.routes())
	t.Cleanup(b.Server.Close)
	return b
}

// APIBase returns the /api prefix the client should be configured with.
func (b *Backend) APIBase() string { return b.Server.URL + "/api" }

// Client returns an apiclient pointed at the fake backend.
func (b *Backend) Client() *apiclient.Client {
	b.t.Helper()
	c, err := apiclient.New(apiclient.Config{BaseURL: b.APIBase(), Timeout: 5 * time.Second}, zap.NewNop())
	if err != nil {
		b.t.Fatalf("apiclient.New: %v", err)
	}
	return c
}

// Ctx returns a context carrying the accepted bearer token.
func (b *Backend) Ctx() context.Context {
	return apiclient.WithToken(context.Background(), BackendToken)
}

// AddCandidate stores c, filling ID, CandidateID and Status when blank.
func (b *Backend) AddCandidate(c models.Candidate) models.Candidate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.insertLocked(c)
}

// Candidate returns the stored candidate with the given ID or CandidateID.
func (b *Backend) Candidate(id string) (models.Candidate, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findLocked(id)
	if i < 0 {
		return models.Candidate{}, false
	}
	return b.Candidates[i], true
}

// Fail makes every request to path (without the /api prefix) answer with
// status and a {"detail": detail} body.
func (b *Backend) Fail(path string, status int, detail string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[path] = failure{status: status, detail: detail}
}

// Calls returns "METHOD /path?query" for every request received.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// Called reports whether any request's path starts with prefix.
func (b *Backend) Called(prefix string) bool {
	for _, c := range b.Calls() {
		if _, p, _ := strings.Cut(c, " "); strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Body decodes the last JSON body posted to path into out.
func (b *Backend) Body(path string, out any) {
	b.t.Helper()
	b.mu.Lock()
	raw, ok := b.bodies[path]
	b.mu.Unlock()
	if !ok {
		b.t.Fatalf("no body recorded for %s", path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		b.t.Fatalf("decode body for %s: %v", path, err)
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| routing                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (b *Backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", b.login)
		api.Post("/public/onboard", b.publicOnboard)

		api.Group(func(pr chi.Router) {
			pr.Use(b.requireToken)
			pr.Get("/auth/me", func(w http.ResponseWriter, _ *http.Request) {
				b.mu.Lock()
				defer b.mu.Unlock()
				writeJSON(w, http.StatusOK, b.User)
			})
			pr.Get("/dashboard/kpis", b.kpis)
			pr.Get("/candidates", b.listCandidates)
			pr.Post("/candidates", b.createCandidate)
			pr.Get("/candidates/search", b.searchCandidates)
			pr.Get("/candidates/id/{id}", b.getCandidate)
			pr.Get("/interviews/yet-to-interview", b.yetToInterview)
			pr.Post("/interviews/submit", b.submitInterview)
			pr.Get("/interviews/completed", b.completed)
			pr.Get("/interviews/completed/{id}", b.getCompleted)
			pr.Post("/re-interview/request", b.requestReInterview)
			pr.Post("/re-interview/resolve", b.resolveReInterview)
			pr.Get("/re-interview/pending", b.pendingReInterviews)
			pr.Get("/reports/{kind}", b.report)
		})
	})
	return r
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api")
		b.mu.Lock()
		b.calls = append(b.calls, r.Method+" "+r.URL.RequestURI())
		if r.Method == http.MethodPost {
			var raw json.RawMessage
			if err := json.NewDecoder(r.Body).Decode(&raw); err == nil {
				b.bodies[path] = raw
				r.Body = jsonBody(raw)
			}
		}
		f, failing := b.failures[path]
		b.mu.Unlock()

		if failing {
			writeJSON(w, f.status, map[string]string{"detail": f.detail})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+BackendToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| handlers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	b.mu.Lock()
	defer b.mu.Unlock()
	if in.Email != b.User.Email || in.Password != BackendPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
		return
	}
	writeJSON(w, http.StatusOK, models.LoginResult{AccessToken: BackendToken, TokenType: "bearer", User: b.User})
}

func (b *Backend) kpis(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var k models.KPIs
	for _, c := range b.Candidates {
		switch c.Status {
		case models.StatusYetToInterview:
			k.YetToInterview++
		case models.StatusInterviewCompleted:
			k.InterviewCompleted++
		}
	}
	k.TotalCandidates = len(b.Candidates)
	writeJSON(w, http.StatusOK, k)
}

func (b *Backend) listCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Candidate{}
	for _, c := range b.Candidates {
		if s := q.Get("status"); s != "" && c.Status != s {
			continue
		}
		if role := q.Get("role"); role != "" && !strings.EqualFold(c.RoleApplied, role) {
			continue
		}
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, models.CandidateList{Candidates: page(out, q.Get("skip"), q.Get("limit")), Total: len(out)})
}

func (b *Backend) searchCandidates(w http.ResponseWriter, r *http.Request) {
	term := strings.ToLower(r.URL.Query().Get("q"))
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Candidate{}
	for _, c := range b.Candidates {
		hay := strings.ToLower(c.Name + " " + c.Email + " " + c.CandidateID)
		if strings.Contains(hay, term) {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, models.CandidateList{Candidates: out, Total: len(out)})
}

func (b *Backend) getCandidate(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findLocked(chi.URLParam(r, "id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Candidate not found"})
		return
	}
	writeJSON(w, http.StatusOK, b.Candidates[i])
}

func (b *Backend) createCandidate(w http.ResponseWriter, r *http.Request) {
	var in models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]string{{"msg": "field required"}},
		})
		return
	}
	in.OnboardingType = models.OnboardingStaff
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusCreated, b.insertLocked(in))
}

func (b *Backend) publicOnboard(w http.ResponseWriter, r *http.Request) {
	var in models.Candidate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid application"})
		return
	}
	in.OnboardingType = models.OnboardingPublic
	in.RoleApplied = "Diploma Engineer Trainee"
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusCreated, b.insertLocked(in))
}

func (b *Backend) yetToInterview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Candidate{}
	for _, c := range b.Candidates {
		if c.Status != models.StatusYetToInterview {
			continue
		}
		if role := q.Get("role"); role != "" && !strings.EqualFold(c.RoleApplied, role) {
			continue
		}
		if e := q.Get("eligibility"); e != "" && c.Eligibility != e {
			continue
		}
		out = append(out, c)
	}
	writeJSON(w, http.StatusOK, models.CandidateList{Candidates: out, Total: len(out)})
}

func (b *Backend) submitInterview(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CandidateID string `json:"candidate_id"`
		Decision    string `json:"decision"`
		Notes       string `json:"notes"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findLocked(in.CandidateID)
	switch {
	case i < 0:
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Candidate not found"})
		return
	case !models.IsDecision(in.Decision):
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid decision"})
		return
	case b.Candidates[i].Status != models.StatusYetToInterview:
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Candidate already interviewed"})
		return
	}

	c := &b.Candidates[i]
	c.Status = models.StatusInterviewCompleted
	c.Decision = in.Decision
	c.InterviewNotes = in.Notes

	b.seq++
	iv := models.Interview{
		ID:              fmt.Sprintf("iv-%d", b.seq),
		CandidateID:     c.CandidateID,
		CandidateName:   c.Name,
		RoleApplied:     c.RoleApplied,
		Decision:        in.Decision,
		Notes:           in.Notes,
		InterviewDate:   "2025-01-15T10:00:00",
		InterviewerName: b.User.FullName,
	}
	b.Interviews = append(b.Interviews, iv)
	writeJSON(w, http.StatusOK, models.InterviewSubmission{
		ID: iv.ID, CandidateID: c.CandidateID, Decision: iv.Decision, Status: c.Status,
	})
}

func (b *Backend) completed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Interview{}
	for _, iv := range b.Interviews {
		if d := q.Get("decision"); d != "" && iv.Decision != d {
			continue
		}
		if role := q.Get("role"); role != "" && !strings.EqualFold(iv.RoleApplied, role) {
			continue
		}
		out = append(out, iv)
	}
	writeJSON(w, http.StatusOK, models.InterviewList{Interviews: out, Total: len(out)})
}

func (b *Backend) getCompleted(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, iv := range b.Interviews {
		if iv.ID == id {
			writeJSON(w, http.StatusOK, iv)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Interview not found"})
}

func (b *Backend) requestReInterview(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CandidateID string `json:"candidate_id"`
		Reason      string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.findLocked(in.CandidateID)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Candidate not found"})
		return
	}
	if b.Candidates[i].Status != models.StatusInterviewCompleted {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Candidate has not been interviewed"})
		return
	}
	b.seq++
	req := models.ReInterviewRequest{
		ID:            fmt.Sprintf("rq-%d", b.seq),
		CandidateID:   b.Candidates[i].CandidateID,
		CandidateName: b.Candidates[i].Name,
		RequestedBy:   b.User.FullName,
		Reason:        in.Reason,
		Status:        models.ReInterviewPending,
	}
	b.Requests = append(b.Requests, req)
	writeJSON(w, http.StatusOK, req)
}

func (b *Backend) resolveReInterview(w http.ResponseWriter, r *http.Request) {
	var in struct {
		RequestID string `json:"request_id"`
		Approved  bool   `json:"approved"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)

	b.mu.Lock()
	defer b.mu.Unlock()
	for k := range b.Requests {
		req := &b.Requests[k]
		if req.ID != in.RequestID {
			continue
		}
		if req.Status != models.ReInterviewPending {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Request already resolved"})
			return
		}
		if in.Approved {
			req.Status = models.ReInterviewApproved
			if i := b.findLocked(req.CandidateID); i >= 0 {
				b.Candidates[i].Status = models.StatusYetToInterview
				b.Candidates[i].Decision = ""
			}
		} else {
			req.Status = models.ReInterviewRejected
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Request resolved"})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Request not found"})
}

func (b *Backend) pendingReInterviews(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.ReInterviewRequest{}
	for _, req := range b.Requests {
		if req.Status == models.ReInterviewPending {
			out = append(out, req)
		}
	}
	writeJSON(w, http.StatusOK, models.ReInterviewList{Requests: out, Total: len(out)})
}

func (b *Backend) report(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, kind))
	_, _ = w.Write([]byte("PK-" + kind))
}

/*─────────────────────────────────────────────────────────────────────────────*
| helpers                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (b *Backend) insertLocked(c models.Candidate) models.Candidate {
	b.seq++
	if c.ID == "" {
		c.ID = fmt.Sprintf("c-%d", b.seq)
	}
	if c.CandidateID == "" {
		dept := strings.ToUpper(c.RoleApplied)
		if len(dept) > 3 {
			dept = dept[:3]
		}
		if dept == "" {
			dept = "GEN"
		}
		c.CandidateID = fmt.Sprintf("TPEML-2025-%s-%05d", dept, b.seq)
	}
	if c.Status == "" {
		c.Status = models.StatusYetToInterview
	}
	if c.Eligibility == "" {
		c.Eligibility = models.EligibilityPending
	}
	b.Candidates = append(b.Candidates, c)
	return c
}

func (b *Backend) findLocked(id string) int {
	for i, c := range b.Candidates {
		if id != "" && (c.ID == id || c.CandidateID == id) {
			return i
		}
	}
	return -1
}

func page(in []models.Candidate, skip, limit string) []models.Candidate {
	var s, l int
	_, _ = fmt.Sscan(skip, &s)
	if _, err := fmt.Sscan(limit, &l); err != nil || l <= 0 {
		l = len(in)
	}
	if s >= len(in) {
		return []models.Candidate{}
	}
	end := s + l
	if end > len(in) {
		end = len(in)
	}
	return in[s:end]
}

func jsonBody(raw []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(raw))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
