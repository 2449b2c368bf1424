// internal/app/features/interviews/types.go
package interviews

import (
	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

type pendingData struct {
	formutil.Base

	Role        string
	Eligibility string

	Candidates         []models.Candidate
	EligibilityOptions []string
	Decisions          []string
	CanSubmit          bool
	Notice             string

	// FailedID names the row whose inline submission was rejected.
	FailedID string
}

// submitForm is the inline decision form on a yet-to-interview row.
type submitForm struct {
	Decision string `form:"Decision" validate:"required,oneof=shortlist reject hold"`
	Notes    string `form:"Notes" validate:"max=4000"`
}

// completedFilter is the filter bar on the completed list.
type completedFilter struct {
	From     string `form:"From date" validate:"omitempty,datetime=2006-01-02"`
	To       string `form:"To date" validate:"omitempty,datetime=2006-01-02"`
	Role     string `form:"Role" validate:"max=100"`
	Decision string `form:"Decision" validate:"omitempty,oneof=shortlist reject hold"`
}

type completedData struct {
	formutil.Base

	Filter     completedFilter
	Interviews []models.Interview
	Decisions  []string
}

type completedDetailData struct {
	formutil.Base

	Interview models.Interview
}
