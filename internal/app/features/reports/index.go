// internal/app/features/reports/index.go
package reports

import (
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/formutil"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type indexData struct {
	formutil.Base

	Filter    rangeFilter
	Decisions []string
	Roles     []string
	FetchCap  int
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /reports                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeIndex lists the available downloads.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r, parseRange(r), "", http.StatusOK)
}

func (h *Handler) renderIndex(w http.ResponseWriter, r *http.Request, f rangeFilter, msg string, status int) {
	data := indexData{
		Base:      formutil.NewBase(r, "Reports", "/dashboard"),
		Filter:    f,
		Decisions: models.Decisions,
		Roles:     models.StaffRoles,
		FetchCap:  h.FetchCap,
	}
	data.SetError(msg)
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templates.Render(w, r, "reports_index", data)
}
