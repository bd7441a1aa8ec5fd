package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/leasewatch/leasewatch/pkg/lifecycle"
)

func TestStartupReadiness(t *testing.T) {
	lc := lifecycle.New()

	var ran atomic.Int32
	lc.OnStartup(func() { ran.Add(1) })
	lc.OnStartup(func() { ran.Add(1) })

	if lc.Ready() {
		t.Error("coordinator ready before WaitForStartup")
	}

	lc.WaitForStartup()

	if !lc.Ready() {
		t.Error("coordinator not ready after WaitForStartup")
	}
	if got := ran.Load(); got != 2 {
		t.Errorf("startup hooks ran %d times, want 2", got)
	}
}

func TestShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}
	if !cleaned.Load() {
		t.Error("shutdown hook did not run")
	}
	if lc.Context().Err() == nil {
		t.Error("context not cancelled after Shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		<-release
	})

	if err := lc.Shutdown(10 * time.Millisecond); err == nil {
		t.Error("expected timeout error from stuck shutdown hook")
	}
	close(release)
}
