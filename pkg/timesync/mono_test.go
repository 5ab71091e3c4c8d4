// ABOUTME: Tests for the monotonic millisecond source
// ABOUTME: Checks epoch anchoring and non-decreasing reads
package timesync

import (
	"testing"
	"time"
)

func TestMonoAnchoredToEpoch(t *testing.T) {
	before := time.Now().UnixMilli()
	m := NewMono()
	after := time.Now().UnixMilli()

	got := m.NowMillis()
	if got < before || got > after+1000 {
		t.Errorf("expected reading near [%d, %d], got %d", before, after, got)
	}
}

func TestMonoNeverDecreases(t *testing.T) {
	m := NewMono()

	prev := m.NowMillis()
	for i := 0; i < 100; i++ {
		cur := m.NowMillis()
		if cur < prev {
			t.Fatalf("reading went backwards: %d after %d", cur, prev)
		}
		prev = cur
	}
}
