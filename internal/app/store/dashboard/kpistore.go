// internal/app/store/dashboard/kpistore.go
package kpistore

import (
	"context"
	"net/http"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/domain/models"
)

// Store wraps GET /dashboard/kpis.
type Store struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Store {
	return &Store{api: api}
}

// KPIs returns the dashboard counts. Missing counts decode as zero.
func (s *Store) KPIs(ctx context.Context) (models.KPIs, error) {
	var out models.KPIs
	err := s.api.Do(ctx, http.MethodGet, "/dashboard/kpis", nil, &out)
	return out, err
}
