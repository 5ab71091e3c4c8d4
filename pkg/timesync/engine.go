// ABOUTME: Multi-attempt clock sync engine against an HTTP time endpoint
// ABOUTME: Runs sequential round trips and keeps the lowest-delay sample
package timesync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultAttempts is the number of round trips per sync call.
	DefaultAttempts = 3

	// DefaultInterval separates consecutive attempts within one call.
	DefaultInterval = 100 * time.Millisecond

	// MinInterval is the floor for the inter-attempt delay.
	MinInterval = 50 * time.Millisecond

	// DefaultTimeout bounds a single round trip.
	DefaultTimeout = 5 * time.Second

	// serverTurnaround stands in for the server's receive-to-send window.
	// The endpoint reports a single timestamp rather than separate receive
	// and send instants, so a fixed window around it is assumed.
	serverTurnaround = 100 // ms
)

// ErrAllAttemptsFailed reports that no attempt in a sync call produced a sample.
var ErrAllAttemptsFailed = errors.New("timesync: all attempts failed")

// Config holds engine configuration.
type Config struct {
	// Endpoint is the time endpoint URL.
	Endpoint string

	// Method is the HTTP verb for sync requests, GET or POST (default: POST).
	// POST requests carry a JSON content type.
	Method string

	// Attempts is the number of round trips per call (default: 3).
	Attempts int

	// Interval separates consecutive attempts (default: 100ms, floor: 50ms).
	Interval time.Duration

	// Timeout bounds a single round trip (default: 5s).
	Timeout time.Duration

	// Client is the HTTP client to use (default: a plain http.Client).
	Client *http.Client

	// Now supplies monotonic epoch milliseconds. Defaults to a fresh Mono
	// source; callers that compare offsets against their own monotonic
	// reference must pass the same source here.
	Now func() int64
}

// Engine performs NTP-style sync exchanges with an HTTP time endpoint.
type Engine struct {
	config Config
	now    func() int64
}

// NewEngine creates a sync engine, filling config defaults.
func NewEngine(config Config) *Engine {
	if config.Method == "" {
		config.Method = http.MethodPost
	}
	if config.Attempts <= 0 {
		config.Attempts = DefaultAttempts
	}
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Interval < MinInterval {
		config.Interval = MinInterval
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Client == nil {
		config.Client = &http.Client{}
	}

	now := config.Now
	if now == nil {
		now = NewMono().NowMillis
	}

	return &Engine{config: config, now: now}
}

// Run executes the attempt batch and returns the sample with the lowest
// estimated delay; on equal delays the earlier attempt wins. Attempts run
// strictly sequentially, separated by the configured interval (none before
// the first). Per-attempt failures are absorbed and logged; only a batch
// with zero successes returns ErrAllAttemptsFailed.
func (e *Engine) Run(ctx context.Context) (Sample, error) {
	var best Sample
	ok := false

	for i := 0; i < e.config.Attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				if ok {
					return best, nil
				}
				return Sample{}, ctx.Err()
			case <-time.After(e.config.Interval):
			}
		}

		sample, err := e.attempt(ctx)
		if err != nil {
			log.Printf("Sync attempt %d/%d failed: %v", i+1, e.config.Attempts, err)
			continue
		}

		if !ok || sample.Delay < best.Delay {
			best = sample
			ok = true
		}
	}

	if !ok {
		return Sample{}, ErrAllAttemptsFailed
	}
	return best, nil
}

// attempt performs one round trip and derives a sample from it.
func (e *Engine) attempt(ctx context.Context) (Sample, error) {
	reqCtx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	var body io.Reader
	if e.config.Method == http.MethodPost {
		body = strings.NewReader("{}")
	}

	req, err := http.NewRequestWithContext(reqCtx, e.config.Method, e.config.Endpoint, body)
	if err != nil {
		return Sample{}, fmt.Errorf("build request: %w", err)
	}
	if e.config.Method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	t1 := e.now()

	resp, err := e.config.Client.Do(req)
	if err != nil {
		return Sample{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Sample{}, fmt.Errorf("unexpected status: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		Timestamp *float64 `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Sample{}, fmt.Errorf("decode response: %w", err)
	}
	if payload.Timestamp == nil {
		return Sample{}, fmt.Errorf("%w: missing timestamp field", ErrInvalidTimestamp)
	}

	t4 := e.now()

	serverTime, err := NormalizeMillis(*payload.Timestamp)
	if err != nil {
		return Sample{}, err
	}

	t2 := serverTime - serverTurnaround
	t3 := serverTime + serverTurnaround

	offset, delay := computeSample(t1, t2, t3, t4)

	return Sample{Offset: offset, Delay: delay, ServerTime: serverTime}, nil
}
