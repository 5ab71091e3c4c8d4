// ABOUTME: Epoch-anchored monotonic millisecond clock
// ABOUTME: Immune to wall-clock steps after the baseline is captured
package timesync

import "time"

// Mono is a monotonic millisecond source anchored to the Unix epoch. The
// wall-clock baseline is captured once at construction; reads add the
// monotonic elapsed duration, so later wall-clock adjustments never move the
// reading backwards.
type Mono struct {
	baseMillis int64
	start      time.Time
}

// NewMono creates a monotonic source anchored at the current wall clock.
func NewMono() *Mono {
	now := time.Now()
	return &Mono{
		baseMillis: now.UnixMilli(),
		start:      now,
	}
}

// NowMillis returns epoch milliseconds derived from the monotonic reading.
func (m *Mono) NowMillis() int64 {
	return m.baseMillis + time.Since(m.start).Milliseconds()
}
