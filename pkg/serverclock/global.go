// ABOUTME: Process-wide default clock and package-level convenience helpers
// ABOUTME: Mirrors the Clock API for callers that want a single shared instance
package serverclock

import (
	"context"
	"net/http"
	"sync"
	"time"
)

var (
	defaultMu    sync.Mutex
	defaultClock *Clock
)

// SetDefault installs clock as the process-wide default used by the
// package-level helpers, stopping any auto-update on the clock it replaces.
func SetDefault(clock *Clock) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClock != nil && defaultClock != clock {
		defaultClock.Stop()
	}
	defaultClock = clock
}

// Default returns the process default clock, or nil before any sync.
func Default() *Clock {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultClock
}

// Sync syncs the process default clock against endpoint with the given
// method (empty means POST). A new default is installed when none exists yet
// or when the endpoint or method changed.
func Sync(ctx context.Context, endpoint, method string) (time.Time, error) {
	if method == "" {
		method = http.MethodPost
	}

	defaultMu.Lock()
	if defaultClock == nil ||
		defaultClock.config.Endpoint != endpoint ||
		defaultClock.config.Method != method {
		if defaultClock != nil {
			defaultClock.Stop()
		}
		defaultClock = New(Config{Endpoint: endpoint, Method: method})
	}
	clock := defaultClock
	defaultMu.Unlock()

	return clock.Sync(ctx)
}

// AutoUpdate schedules periodic background re-sync on the default clock.
// It is a no-op before the first Sync call.
func AutoUpdate(interval time.Duration) *Clock {
	clock := Default()
	if clock == nil {
		return nil
	}
	return clock.AutoUpdate(interval)
}

// Now returns the default clock's corrected instant, or the local wall
// clock before any sync.
func Now() time.Time {
	clock := Default()
	if clock == nil {
		return time.Now()
	}
	return clock.Now()
}

// Synced reports whether the default clock is synced.
func Synced() bool {
	clock := Default()
	if clock == nil {
		return false
	}
	return clock.Synced()
}

// Format renders the default clock's corrected time with the Clock.Format
// calling convention. Before any sync it renders the local wall clock.
func Format(args ...string) string {
	clock := Default()
	if clock == nil {
		clock = New(Config{})
	}
	return clock.Format(args...)
}
