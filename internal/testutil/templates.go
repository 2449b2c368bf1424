package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/recruitdesk/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var bootOnce sync.Once

// BootTemplates loads the shared layout and every template set registered
// by imported feature packages, the same way BuildHandler does.
func BootTemplates(t *testing.T) {
	t.Helper()
	var err error
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if err = eng.Boot(zap.NewNop()); err != nil {
			return
		}
		templates.UseEngine(eng, zap.NewNop())
	})
	if err != nil {
		t.Fatalf("template boot failed: %v", err)
	}
}
