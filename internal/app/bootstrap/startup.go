// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/recruitdesk/internal/app/resources"
	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"github.com/dalemusser/recruitdesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the backend
// client is built, but before the HTTP handler is. It loads shared
// templates and applies app-wide settings.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	viewdata.Init(appCfg.SiteName)
	timeouts.Configure(timeouts.Config{Long: appCfg.APITimeout})
	resources.LoadSharedTemplates()
	t := timeouts.Current()
	logger.Info("recruitdesk started",
		zap.String("site_name", viewdata.SiteName()),
		zap.Int("fetch_cap", appCfg.FetchCap),
		zap.Duration("timeout_medium", t.Medium),
		zap.Duration("timeout_long", t.Long))
	return nil
}
