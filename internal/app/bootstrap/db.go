// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/recruitdesk/internal/app/system/apiclient"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the backend API client and probes the backend's health
// endpoint. An unreachable backend is logged but does not stop startup;
// /health reports it until the backend comes up.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	api, err := apiclient.New(apiclient.Config{
		BaseURL: appCfg.APIBaseURL,
		Timeout: appCfg.APITimeout,
	}, logger)
	if err != nil {
		return DBDeps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := api.Ping(pingCtx); err != nil {
		logger.Warn("recruitment backend not reachable at startup",
			zap.String("api_base_url", api.BaseURL()), zap.Error(err))
	} else {
		logger.Info("recruitment backend reachable", zap.String("api_base_url", api.BaseURL()))
	}
	return DBDeps{API: api}, nil
}

// EnsureSchema is a no-op: the backend owns its schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
