// ABOUTME: Server-corrected clock with explicit per-instance sync state
// ABOUTME: Sync commits the lowest-delay sample; accessors read the corrected time
package serverclock

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sikaipeng/server-clock/pkg/timeformat"
	"github.com/sikaipeng/server-clock/pkg/timesync"
)

// DefaultAutoUpdateInterval separates background re-sync runs.
const DefaultAutoUpdateInterval = 5 * time.Minute

// Config holds clock configuration.
type Config struct {
	// Endpoint is the time endpoint URL.
	Endpoint string

	// Method is the HTTP verb for sync requests, GET or POST (default: POST).
	Method string

	// Attempts, Interval, and Timeout tune the sync batch; zero values take
	// the timesync defaults.
	Attempts int
	Interval time.Duration
	Timeout  time.Duration
}

// Clock tracks the offset between a remote time endpoint and the local
// monotonic clock, and renders instants over the corrected time. Each Clock
// owns its state explicitly; nothing is shared between instances.
type Clock struct {
	config Config

	mu     sync.RWMutex
	offset int64 // ms, server clock minus client monotonic reference
	delay  int64 // ms, estimated delay of the committed sample
	synced bool

	// syncMu serializes sync batches on this instance so a second caller
	// cannot interleave its reset with another batch's in-flight attempts.
	syncMu sync.Mutex

	autoMu     sync.Mutex
	autoCancel context.CancelFunc

	engine *timesync.Engine

	// Time sources, replaced in tests for frozen-clock scenarios.
	monoNow func() int64
	wallNow func() time.Time
}

// New creates a clock that syncs against the configured endpoint. The sync
// engine and the clock share one monotonic source, so committed offsets stay
// comparable to later reads.
func New(config Config) *Clock {
	mono := timesync.NewMono()

	return &Clock{
		config: config,
		engine: timesync.NewEngine(timesync.Config{
			Endpoint: config.Endpoint,
			Method:   config.Method,
			Attempts: config.Attempts,
			Interval: config.Interval,
			Timeout:  config.Timeout,
			Now:      mono.NowMillis,
		}),
		monoNow: mono.NowMillis,
		wallNow: time.Now,
	}
}

// Sync runs a batch of sync attempts and commits the winning sample. The
// synced flag and offset are reset before the attempts run; on total failure
// they stay reset and the local wall-clock time captured at call time is
// returned together with the engine error. On success the winning attempt's
// server instant is returned. Concurrent Sync calls on one Clock are
// serialized.
func (c *Clock) Sync(ctx context.Context) (time.Time, error) {
	c.syncMu.Lock()
	defer c.syncMu.Unlock()

	c.mu.Lock()
	c.synced = false
	c.offset = 0
	c.delay = 0
	c.mu.Unlock()

	sample, err := c.engine.Run(ctx)
	if err != nil {
		return c.wallNow(), err
	}

	c.commit(sample)
	return time.UnixMilli(sample.ServerTime), nil
}

// refresh is the background variant of Sync: no upfront reset, commit only
// on success, so a failed refresh never downgrades a synced clock.
func (c *Clock) refresh(ctx context.Context) {
	c.syncMu.Lock()
	defer c.syncMu.Unlock()

	sample, err := c.engine.Run(ctx)
	if err != nil {
		log.Printf("Background sync failed: %v", err)
		return
	}
	c.commit(sample)
}

// commit installs a winning sample into the clock state.
func (c *Clock) commit(sample timesync.Sample) {
	c.mu.Lock()
	c.offset = sample.Offset
	c.delay = sample.Delay
	c.synced = true
	c.mu.Unlock()

	log.Printf("Clock synced: offset=%+dms, delay=%dms", sample.Offset, sample.Delay)
}

// AutoUpdate schedules a periodic background re-sync every interval. Any
// previously scheduled task is cancelled first, so at most one task is
// active per clock; an interval <= 0 just disables auto-update. Returns the
// clock for chaining.
func (c *Clock) AutoUpdate(interval time.Duration) *Clock {
	c.autoMu.Lock()
	defer c.autoMu.Unlock()

	if c.autoCancel != nil {
		c.autoCancel()
		c.autoCancel = nil
	}
	if interval <= 0 {
		return c
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.autoCancel = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refresh(ctx)
			}
		}
	}()

	return c
}

// Stop cancels any scheduled background re-sync.
func (c *Clock) Stop() {
	c.AutoUpdate(0)
}

// Now returns the current corrected instant: monotonic now plus the
// committed offset when synced, the local wall clock otherwise. The result
// is independent of any zone; zones only affect formatting.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.synced {
		return c.wallNow()
	}
	return time.UnixMilli(c.monoNow() + c.offset)
}

// Synced reports whether the most recent sync batch committed an offset.
func (c *Clock) Synced() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.synced
}

// Offset returns the committed offset in milliseconds (zero when unsynced).
func (c *Clock) Offset() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Delay returns the committed sample's estimated round-trip delay in
// milliseconds (zero when unsynced).
func (c *Clock) Delay() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.delay
}

// Format renders the current corrected time. With no arguments it uses the
// host zone and the default pattern. A single argument is taken as a zone
// when it has a valid zone shape and as a custom pattern otherwise. Two
// arguments are always (zone, pattern).
func (c *Clock) Format(args ...string) string {
	zone := ""
	pattern := timeformat.DefaultPattern

	switch {
	case len(args) >= 2:
		zone, pattern = args[0], args[1]
	case len(args) == 1:
		if timeformat.ValidZone(args[0]) {
			zone = args[0]
		} else {
			pattern = args[0]
		}
	}

	return timeformat.Render(c.Now(), pattern, zone)
}
