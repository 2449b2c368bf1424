// internal/app/features/reports/rows.go
package reports

import (
	"strconv"
	"strings"

	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// Missing stands in for an absent value in the candidate export.
const Missing = "–"

// UnspecifiedBranch groups candidates with no diploma branch.
const UnspecifiedBranch = "Unspecified"

// Report kinds, used in filenames and the audit trail.
const (
	KindAllCandidates = "all-candidates"
	KindBranchSummary = "branch-summary"
)

// AllCandidatesHeader is the fixed column set of the all-candidates export.
var AllCandidatesHeader = []string{
	"Candidate ID", "Name", "Gender", "DOB", "Email", "Contact", "State",
	"Interview Location", "Interview Date", "Recruitment Year",
	"College", "Diploma Branch", "Diploma %", "Diploma Passout Year",
	"10th %", "12th %", "Status", "Onboarding Type",
}

// BranchSummaryHeader is the column set of the branch summary export.
var BranchSummaryHeader = []string{"Branch", "Shortlisted Count", "Rejected Count", "Grand Total"}

// CandidateRow flattens c into AllCandidatesHeader order.
func CandidateRow(c models.Candidate) []string {
	id := c.CandidateID
	if id == "" {
		id = c.ID
	}
	return []string{
		id,
		c.Name,
		orMissing(c.Gender),
		orMissing(c.DateOfBirth),
		orMissing(c.Email),
		orMissing(c.ContactNumber()),
		orMissing(c.StateOfDomicile),
		orMissing(c.InterviewLocation),
		orMissing(c.DateOfInterview),
		orMissing(c.YearOfRecruitment),
		orMissing(c.CollegeName),
		orMissing(c.DiplomaBranch),
		percent(c.DiplomaPercentage),
		orMissing(c.DiplomaPassoutYear),
		percent(c.TenthPercentage),
		percent(c.TwelfthPercentage),
		c.Status,
		orMissing(c.OnboardingType),
	}
}

// CandidateRows flattens every candidate.
func CandidateRows(cs []models.Candidate) [][]string {
	out := make([][]string, len(cs))
	for i, c := range cs {
		out[i] = CandidateRow(c)
	}
	return out
}

func orMissing(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return Missing
	}
	return s
}

func percent(f *float64) string {
	if f == nil {
		return Missing
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// BranchCount is one row of the branch summary. Total counts every
// candidate in the branch, whatever the decision.
type BranchCount struct {
	Branch      string
	Shortlisted int
	Rejected    int
	Total       int
}

// Record renders b in BranchSummaryHeader order.
func (b BranchCount) Record() []string {
	return []string{b.Branch, strconv.Itoa(b.Shortlisted), strconv.Itoa(b.Rejected), strconv.Itoa(b.Total)}
}

// BranchSummary groups candidates by diploma branch in a single pass.
// Groups keep the order in which their branch first appears.
func BranchSummary(cs []models.Candidate) []BranchCount {
	var out []BranchCount
	index := map[string]int{}
	for _, c := range cs {
		branch := strings.TrimSpace(c.DiplomaBranch)
		if branch == "" {
			branch = UnspecifiedBranch
		}
		i, ok := index[branch]
		if !ok {
			i = len(out)
			index[branch] = i
			out = append(out, BranchCount{Branch: branch})
		}
		switch strings.ToLower(strings.TrimSpace(c.Decision)) {
		case models.DecisionShortlist:
			out[i].Shortlisted++
		case models.DecisionReject:
			out[i].Rejected++
		}
		out[i].Total++
	}
	return out
}

// BranchRows renders the summary rows.
func BranchRows(counts []BranchCount) [][]string {
	out := make([][]string, len(counts))
	for i, b := range counts {
		out[i] = b.Record()
	}
	return out
}
