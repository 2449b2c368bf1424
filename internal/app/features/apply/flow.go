// internal/app/features/apply/flow.go
package apply

import "github.com/dalemusser/recruitdesk/internal/app/system/wizard"

const (
	ruleDate    = "datetime=2006-01-02"
	ruleYear    = "numeric,len=4"
	rulePercent = "numeric"
)

// Flow is the public self-onboarding wizard. Field names match the JSON
// keys of the public onboarding payload.
var Flow = wizard.NewFlow("apply",
	wizard.Step{Title: "Interview Details", Fields: []wizard.Field{
		{Name: "interview_location", Label: "Interview Location", Required: true},
		{Name: "date_of_interview", Label: "Date of Interview", Required: true, Rule: ruleDate},
		{Name: "year_of_recruitment", Label: "Year of Recruitment", Required: true, Rule: ruleYear},
	}},
	wizard.Step{Title: "Personal", Fields: []wizard.Field{
		{Name: "name", Label: "Full Name", Required: true},
		{Name: "gender", Label: "Gender", Required: true},
		{Name: "dob", Label: "Date of Birth", Required: true, Rule: ruleDate},
	}},
	wizard.Step{Title: "Contact", Fields: []wizard.Field{
		{Name: "contact_no", Label: "Contact Number", Required: true},
		{Name: "email", Label: "Email", Required: true, Rule: "email"},
		{Name: "residential_address", Label: "Residential Address", Required: true},
		{Name: "state_of_domicile", Label: "State of Domicile", Required: true},
	}},
	wizard.Step{Title: "Diploma", Fields: []wizard.Field{
		{Name: "college_name", Label: "College Name", Required: true},
		{Name: "university_name", Label: "University Name", Required: true},
		{Name: "diploma_enrollment_no", Label: "Diploma Enrollment No.", Required: true},
		{Name: "diploma_branch", Label: "Diploma Branch", Required: true},
		{Name: "diploma_passout_year", Label: "Diploma Passout Year", Required: true, Rule: ruleYear},
		{Name: "diploma_percentage", Label: "Diploma Percentage", Required: true, Rule: rulePercent},
		{Name: "any_backlog_in_diploma", Label: "Any Backlog in Diploma", Required: true},
	}},
	wizard.Step{Title: "10th / 12th", Fields: []wizard.Field{
		{Name: "tenth_percentage", Label: "10th Percentage", Required: true, Rule: rulePercent},
		{Name: "tenth_passout_year", Label: "10th Passout Year", Required: true, Rule: ruleYear},
		{Name: "twelfth_percentage", Label: "12th Percentage", Rule: rulePercent},
		{Name: "twelfth_passout_year", Label: "12th Passout Year", Rule: ruleYear},
	}},
	wizard.Step{Title: "Review"},
)
