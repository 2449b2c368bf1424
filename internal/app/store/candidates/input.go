// internal/app/store/candidates/input.go
package candidatestore

import (
	"strings"

	"github.com/dalemusser/recruitdesk/internal/app/system/normalize"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// StaffInput is the raw staff onboarding form.
type StaffInput struct {
	Name            string
	Gender          string
	DateOfBirth     string
	Email           string
	Phone           string
	Address         string
	Qualifications  string
	RoleApplied     string
	ExperienceYears string
	CurrentCompany  string
	Skills          string
}

// StaffInputFrom reads a StaffInput from collected form values.
func StaffInputFrom(v map[string]string) StaffInput {
	return StaffInput{
		Name:            v["name"],
		Gender:          v["gender"],
		DateOfBirth:     v["date_of_birth"],
		Email:           v["email"],
		Phone:           v["phone"],
		Address:         v["address"],
		Qualifications:  v["qualifications"],
		RoleApplied:     v["role_applied"],
		ExperienceYears: v["experience_years"],
		CurrentCompany:  v["current_company"],
		Skills:          v["skills"],
	}
}

func (in StaffInput) payload() models.NewCandidate {
	return models.NewCandidate{
		Name:            normalize.Name(in.Name),
		Email:           normalize.Email(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Qualifications:  strings.TrimSpace(in.Qualifications),
		ExperienceYears: normalize.OptionalFloat(in.ExperienceYears),
		RoleApplied:     strings.TrimSpace(in.RoleApplied),
		Gender:          strings.TrimSpace(in.Gender),
		DateOfBirth:     strings.TrimSpace(in.DateOfBirth),
		Address:         strings.TrimSpace(in.Address),
		CurrentCompany:  strings.TrimSpace(in.CurrentCompany),
		Skills:          strings.TrimSpace(in.Skills),
	}
}

// PublicInput is the raw self-onboarding form.
type PublicInput map[string]string

func (in PublicInput) get(k string) string { return strings.TrimSpace(in[k]) }

func (in PublicInput) payload() models.PublicApplication {
	return models.PublicApplication{
		InterviewLocation:   in.get("interview_location"),
		DateOfInterview:     in.get("date_of_interview"),
		YearOfRecruitment:   in.get("year_of_recruitment"),
		Name:                normalize.Name(in["name"]),
		Gender:              in.get("gender"),
		DateOfBirth:         in.get("dob"),
		ContactNo:           in.get("contact_no"),
		Email:               normalize.Email(in["email"]),
		ResidentialAddress:  in.get("residential_address"),
		StateOfDomicile:     in.get("state_of_domicile"),
		CollegeName:         in.get("college_name"),
		UniversityName:      in.get("university_name"),
		DiplomaEnrollmentNo: in.get("diploma_enrollment_no"),
		DiplomaBranch:       in.get("diploma_branch"),
		DiplomaPassoutYear:  in.get("diploma_passout_year"),
		DiplomaPercentage:   normalize.OptionalFloat(in["diploma_percentage"]),
		AnyBacklogInDiploma: in.get("any_backlog_in_diploma"),
		TenthPercentage:     normalize.OptionalFloat(in["tenth_percentage"]),
		TenthPassoutYear:    in.get("tenth_passout_year"),
		TwelfthPercentage:   normalize.OptionalFloat(in["twelfth_percentage"]),
		TwelfthPassoutYear:  in.get("twelfth_passout_year"),
	}
}
