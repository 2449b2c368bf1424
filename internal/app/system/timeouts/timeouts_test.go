package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/recruitdesk/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Medium: 3 * time.Second})

	if got := timeouts.Medium(); got != 3*time.Second {
		t.Errorf("Medium: got %v", got)
	}
	if got := timeouts.Short(); got != timeouts.DefaultShort {
		t.Errorf("Short: got %v, want default", got)
	}
}

func TestReset(t *testing.T) {
	timeouts.Configure(timeouts.Config{Ping: time.Millisecond, Download: time.Minute * 5})
	timeouts.Reset()
	want := timeouts.Config{
		Ping:     timeouts.DefaultPing,
		Short:    timeouts.DefaultShort,
		Medium:   timeouts.DefaultMedium,
		Long:     timeouts.DefaultLong,
		Download: timeouts.DefaultDownload,
	}
	if got := timeouts.Current(); got != want {
		t.Errorf("Current: got %+v, want %+v", got, want)
	}
}

func TestWithTimeout_Expires(t *testing.T) {
	ctx, cancel := timeouts.WithTimeout(context.Background(), time.Millisecond, zap.NewNop(), "test")
	defer cancel()
	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("err: got %v", ctx.Err())
	}
}
