// internal/app/features/candidates/types.go
package candidates

import (
	"strconv"

	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// Search scopes for the candidate list.
const (
	scopePage = ""    // filter the fetched page in process
	scopeAll  = "all" // ask the backend search endpoint
)

// listData is the view model for GET /candidates.
type listData struct {
	formutil.Base

	Query  string
	Status string
	Scope  string

	Candidates []models.Candidate
	Fetched    int
	CapWarning bool
	FetchCap   int

	StatusOptions []string

	// Quick add (admin, hr)
	CanAdd   bool
	AddOpen  bool
	Add      quickAddForm
	Roles    []string
	AddError string
}

// quickAddForm is the inline "Add Candidate" form on the list page.
type quickAddForm struct {
	Name            string `form:"Name" validate:"required,max=200"`
	Email           string `form:"Email" validate:"omitempty,email"`
	Phone           string `form:"Phone" validate:"max=30"`
	Qualifications  string `form:"Qualifications" validate:"required,max=500"`
	RoleApplied     string `form:"Role applied" validate:"required"`
	ExperienceYears string `form:"Experience (years)" validate:"omitempty,numeric"`
}

// interviewForm is the record-interview form on the detail page.
type interviewForm struct {
	Decision string `form:"Decision" validate:"required,oneof=shortlist reject hold"`
	Notes    string `form:"Notes" validate:"max=4000"`
}

// reInterviewForm asks an admin to reopen a completed candidate.
type reInterviewForm struct {
	Reason string `form:"Reason" validate:"required,max=1000"`
}

type detailRow struct {
	Label string
	Value string
}

type detailSection struct {
	Title string
	Rows  []detailRow
}

// detailData is the view model for GET /candidates/{id}.
type detailData struct {
	formutil.Base

	Candidate models.Candidate
	Sections  []detailSection
	Notice    string

	CanInterview     bool
	Decisions        []string
	Interview        interviewForm
	InterviewError   string
	CanRequestReview bool
	ReInterview      reInterviewForm
	ReInterviewError string
}

// sections lays out the populated candidate fields for display. Blank
// values are shown as a dash.
func sections(c models.Candidate) []detailSection {
	out := []detailSection{
		{Title: "Personal", Rows: []detailRow{
			{"Name", c.Name},
			{"Gender", c.Gender},
			{"Date of Birth", c.DateOfBirth},
		}},
		{Title: "Contact", Rows: []detailRow{
			{"Email", c.Email},
			{"Phone", c.ContactNumber()},
			{"Address", firstNonEmpty(c.Address, c.ResidentialAddress)},
			{"State of Domicile", c.StateOfDomicile},
		}},
		{Title: "Application", Rows: []detailRow{
			{"Role Applied", c.RoleApplied},
			{"Qualifications", c.Qualifications},
			{"Experience (years)", formatFloat(c.ExperienceYears)},
			{"Current Company", c.CurrentCompany},
			{"Skills", c.Skills},
			{"Onboarding", c.OnboardingType},
			{"Registered", c.CreatedAt},
		}},
	}
	if c.OnboardingType == models.OnboardingPublic || c.DiplomaBranch != "" {
		out = append(out,
			detailSection{Title: "Interview Details", Rows: []detailRow{
				{"Interview Location", c.InterviewLocation},
				{"Date of Interview", c.DateOfInterview},
				{"Year of Recruitment", c.YearOfRecruitment},
			}},
			detailSection{Title: "Education", Rows: []detailRow{
				{"College", c.CollegeName},
				{"University", c.UniversityName},
				{"Diploma Enrollment No.", c.DiplomaEnrollmentNo},
				{"Diploma Branch", c.DiplomaBranch},
				{"Diploma Passout Year", c.DiplomaPassoutYear},
				{"Diploma %", formatFloat(c.DiplomaPercentage)},
				{"Backlog in Diploma", c.AnyBacklogInDiploma},
				{"10th %", formatFloat(c.TenthPercentage)},
				{"10th Passout Year", c.TenthPassoutYear},
				{"12th %", formatFloat(c.TwelfthPercentage)},
				{"12th Passout Year", c.TwelfthPassoutYear},
			}},
		)
	}
	if c.Status == models.StatusInterviewCompleted {
		out = append(out, detailSection{Title: "Interview Outcome", Rows: []detailRow{
			{"Decision", c.Decision},
			{"Notes", c.InterviewNotes},
		}})
	}
	return out
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
