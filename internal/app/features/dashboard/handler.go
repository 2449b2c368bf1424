// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/recruitdesk/internal/app/features/errors"
	kpistore "github.com/dalemusser/recruitdesk/internal/app/store/dashboard"
	reinterviewstore "github.com/dalemusser/recruitdesk/internal/app/store/reinterview"
	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/authz"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/app/system/viewdata"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	KPIs        *kpistore.Store
	ReInterview *reinterviewstore.Store
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(kpis *kpistore.Store, reinterview *reinterviewstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		KPIs:        kpis,
		ReInterview: reinterview,
		ErrLog:      errLog,
		Log:         logger,
	}
}

type quickLink struct {
	Label string
	Href  string
}

type dashboardData struct {
	viewdata.BaseVM

	KPIs           models.KPIs
	KPIUnavailable bool

	ShowPending  bool
	PendingCount int

	Links []quickLink
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDashboard shows the KPI cards and the quick links the user's role
// can follow. Admins also see how many re-interview requests await them.
//
// The KPI and pending-count fetches run concurrently. Each fills its own
// field, so arrival order does not matter. A failed KPI fetch renders zeros
// rather than an error page.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{
		BaseVM:      viewdata.NewBaseVM(r, "Dashboard", "/dashboard"),
		ShowPending: authz.CanResolveReInterview(r),
		Links:       quickLinks(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// Session expiry is the only failure that aborts the page; returning it
	// cancels the sibling fetch. Other failures degrade in place.
	var kpiErr, pendingErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		k, err := h.KPIs.KPIs(gctx)
		if err != nil {
			kpiErr = err
			if errors.Is(err, apiclient.ErrSessionExpired) {
				return err
			}
			return nil
		}
		data.KPIs = k
		return nil
	})
	if data.ShowPending {
		g.Go(func() error {
			list, err := h.ReInterview.Pending(gctx)
			if err != nil {
				pendingErr = err
				if errors.Is(err, apiclient.ErrSessionExpired) {
					return err
				}
				return nil
			}
			data.PendingCount = list.Total
			if data.PendingCount == 0 {
				data.PendingCount = len(list.Requests)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.ErrLog.ExpireSession(w, r, "/dashboard")
		return
	}

	if kpiErr != nil {
		h.Log.Warn("dashboard kpis unavailable", zap.Error(kpiErr))
		data.KPIUnavailable = true
		data.KPIs = models.KPIs{}
	}
	if pendingErr != nil {
		h.Log.Warn("pending re-interview count unavailable", zap.Error(pendingErr))
	}

	templates.Render(w, r, "dashboard", data)
}

func quickLinks(r *http.Request) []quickLink {
	var links []quickLink
	if authz.CanOnboard(r) {
		links = append(links, quickLink{"Onboard New Candidate", "/onboarding"})
	}
	links = append(links,
		quickLink{"Search Candidates", "/candidates"},
		quickLink{"Yet To Interview", "/interviews/yet-to-interview"},
		quickLink{"Interview Completed", "/interviews/completed"},
	)
	if authz.CanViewReports(r) {
		links = append(links, quickLink{"Reports", "/reports"})
	}
	if authz.CanViewQRCode(r) {
		links = append(links, quickLink{"Public Form QR Code", "/qr-code"})
	}
	if authz.CanResolveReInterview(r) {
		links = append(links, quickLink{"Re-Interview Requests", "/re-interview"})
	}
	return links
}
