// internal/domain/models/candidate.go
package models

// Candidate status values.
const (
	StatusYetToInterview     = "yet_to_interview"
	StatusInterviewCompleted = "interview_completed"
)

// Eligibility values, set by the backend.
const (
	EligibilityCriteriaMet = "criteria_met"
	EligibilityNotMet      = "not_met"
	EligibilityPartial     = "partial"
	EligibilityPending     = "pending"
)

// Onboarding types recorded on a candidate.
const (
	OnboardingStaff  = "staff"
	OnboardingPublic = "self"
)

// Candidate is a person registered for a recruitment role.
//
// CandidateID is the human-readable identifier (e.g. TPEML-2025-ENG-00001);
// ID is the backend's internal key.
type Candidate struct {
	ID              string   `json:"id,omitempty"`
	CandidateID     string   `json:"candidate_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Qualifications  string   `json:"qualifications,omitempty"`
	ExperienceYears *float64 `json:"experience_years,omitempty"`
	RoleApplied     string   `json:"role_applied,omitempty"`
	Status          string   `json:"status"`
	Eligibility     string   `json:"eligibility,omitempty"`
	Decision        string   `json:"decision,omitempty"`
	InterviewNotes  string   `json:"interview_notes,omitempty"`
	OnboardingType  string   `json:"onboarding_type,omitempty"`
	QRCodePath      string   `json:"qr_code_path,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`

	// Personal
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`

	// Staff-entered extras
	Address        string `json:"address,omitempty"`
	CurrentCompany string `json:"current_company,omitempty"`
	Skills         string `json:"skills,omitempty"`

	// Public onboarding
	InterviewLocation   string   `json:"interview_location,omitempty"`
	DateOfInterview     string   `json:"date_of_interview,omitempty"`
	YearOfRecruitment   string   `json:"year_of_recruitment,omitempty"`
	ContactNo           string   `json:"contact_no,omitempty"`
	ResidentialAddress  string   `json:"residential_address,omitempty"`
	StateOfDomicile     string   `json:"state_of_domicile,omitempty"`
	CollegeName         string   `json:"college_name,omitempty"`
	UniversityName      string   `json:"university_name,omitempty"`
	DiplomaEnrollmentNo string   `json:"diploma_enrollment_no,omitempty"`
	DiplomaBranch       string   `json:"diploma_branch,omitempty"`
	DiplomaPassoutYear  string   `json:"diploma_passout_year,omitempty"`
	DiplomaPercentage   *float64 `json:"diploma_percentage,omitempty"`
	AnyBacklogInDiploma string   `json:"any_backlog_in_diploma,omitempty"`
	TenthPercentage     *float64 `json:"tenth_percentage,omitempty"`
	TenthPassoutYear    string   `json:"tenth_passout_year,omitempty"`
	TwelfthPercentage   *float64 `json:"twelfth_percentage,omitempty"`
	TwelfthPassoutYear  string   `json:"twelfth_passout_year,omitempty"`
}

// ContactNumber returns the phone captured by either onboarding path.
func (c Candidate) ContactNumber() string {
	if c.Phone != "" {
		return c.Phone
	}
	return c.ContactNo
}

// CandidateList is the envelope for list and search responses.
type CandidateList struct {
	Candidates []Candidate `json:"candidates"`
	Total      int         `json:"total"`
}

// NewCandidate is the staff-assisted onboarding payload.
type NewCandidate struct {
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Qualifications  string   `json:"qualifications"`
	ExperienceYears *float64 `json:"experience_years,omitempty"`
	RoleApplied     string   `json:"role_applied"`
	Gender          string   `json:"gender,omitempty"`
	DateOfBirth     string   `json:"dob,omitempty"`
	Address         string   `json:"address,omitempty"`
	CurrentCompany  string   `json:"current_company,omitempty"`
	Skills          string   `json:"skills,omitempty"`
}

// PublicApplication is the self-onboarding payload submitted from /apply.
type PublicApplication struct {
	InterviewLocation   string   `json:"interview_location"`
	DateOfInterview     string   `json:"date_of_interview"`
	YearOfRecruitment   string   `json:"year_of_recruitment"`
	Name                string   `json:"name"`
	Gender              string   `json:"gender"`
	DateOfBirth         string   `json:"dob"`
	ContactNo           string   `json:"contact_no"`
	Email               string   `json:"email"`
	ResidentialAddress  string   `json:"residential_address"`
	StateOfDomicile     string   `json:"state_of_domicile"`
	CollegeName         string   `json:"college_name"`
	UniversityName      string   `json:"university_name"`
	DiplomaEnrollmentNo string   `json:"diploma_enrollment_no"`
	DiplomaBranch       string   `json:"diploma_branch"`
	DiplomaPassoutYear  string   `json:"diploma_passout_year"`
	DiplomaPercentage   *float64 `json:"diploma_percentage,omitempty"`
	AnyBacklogInDiploma string   `json:"any_backlog_in_diploma"`
	TenthPercentage     *float64 `json:"tenth_percentage,omitempty"`
	TenthPassoutYear    string   `json:"tenth_passout_year"`
	TwelfthPercentage   *float64 `json:"twelfth_percentage,omitempty"`
	TwelfthPassoutYear  string   `json:"twelfth_passout_year,omitempty"`
}
