// internal/app/features/onboarding/flow.go
package onboarding

import "github.com/dalemusser/recruitdesk/internal/app/system/wizard"

// Flow is the staff-assisted onboarding wizard. Field names match the keys
// read by candidatestore.StaffInputFrom.
var Flow = wizard.NewFlow("onboarding",
	wizard.Step{Title: "Personal", Fields: []wizard.Field{
		{Name: "name", Label: "Full Name", Required: true},
		{Name: "gender", Label: "Gender", Required: true},
		{Name: "date_of_birth", Label: "Date of Birth", Rule: "datetime=2006-01-02"},
	}},
	wizard.Step{Title: "Contact", Fields: []wizard.Field{
		{Name: "email", Label: "Email", Rule: "email"},
		{Name: "phone", Label: "Phone", Rule: "max=20"},
		{Name: "address", Label: "Address"},
	}, AnyOf: [][]string{{"email", "phone"}}},
	wizard.Step{Title: "Qualifications", Fields: []wizard.Field{
		{Name: "qualifications", Label: "Qualifications", Required: true},
		{Name: "role_applied", Label: "Role Applied", Required: true},
		{Name: "experience_years", Label: "Experience (years)", Rule: "numeric"},
		{Name: "current_company", Label: "Current Company"},
		{Name: "skills", Label: "Skills"},
	}},
	wizard.Step{Title: "Review"},
)
