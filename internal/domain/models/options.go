// internal/domain/models/options.go
package models

// Select options offered by the onboarding forms.

var InterviewLocations = []string{
	"Ranchi - Jharkhand University of Technology",
	"Sanand - Tata Passenger Electric Mobility",
	"Dehradun - UPES",
	"Mahamaya I.T. Polytechnic Maharajganj",
	"Gaya - Government Polytechnic",
	"Muzaffarpur - Government Polytechnic",
	"Patna - New Government Polytechnic Patna 13",
	"Patna - Women's Polytechnic Patna",
	"Lucknow - Government Polytechnic",
	"Ujjain - Government Polytechnic",
}

var RecruitmentYears = []string{"2025", "2026", "2027"}

var DiplomaBranches = []string{
	"Automobile Engineering",
	"Civil Engineering",
	"Electrical Engineering",
	"Electronics Engineering",
	"Electronics & Communications",
	"Electronics & Telecommunication",
	"Electrical & Electronics Engineering",
	"Mechanical Engineering",
	"Mechatronics Engineering",
	"Paint Technology",
	"Other",
}

// PublicGenders is offered on /apply; StaffGenders adds an opt-out.
var (
	PublicGenders = []string{"Male", "Female", "Other"}
	StaffGenders  = []string{"Male", "Female", "Other", "Prefer not to say"}
)

var BacklogOptions = []string{"yes", "no"}

// StaffRoles are the positions staff can onboard a candidate for.
var StaffRoles = []string{
	"Software Engineer",
	"Senior Engineer",
	"Manager",
	"Senior Manager",
	"Team Lead",
	"Technical Lead",
	"Business Analyst",
	"Quality Analyst",
	"Designer",
	"Other",
}

// StatesOfIndia lists states followed by union territories.
var StatesOfIndia = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
	"Andaman and Nicobar Islands",
	"Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu",
	"Delhi (National Capital Territory)",
	"Jammu and Kashmir",
	"Ladakh",
	"Lakshadweep",
	"Puducherry",
}

// EligibilityOptions are the filter choices on the yet-to-interview list.
var EligibilityOptions = []string{EligibilityCriteriaMet, EligibilityNotMet, EligibilityPartial}
