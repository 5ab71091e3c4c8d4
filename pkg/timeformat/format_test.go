// ABOUTME: Tests for token-pattern rendering
// ABOUTME: Covers the default pattern, longest-match scanning, and passthrough
package timeformat

import (
	"testing"
	"time"
)

func TestRenderDefaultPattern(t *testing.T) {
	instant := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	if got := Render(instant, DefaultPattern, "UTC"); got != "2025-01-01 00:00:00" {
		t.Errorf("expected %q, got %q", "2025-01-01 00:00:00", got)
	}
}

func TestRenderUnpaddedTokens(t *testing.T) {
	instant := time.Date(2025, time.June, 15, 13, 5, 9, 0, time.UTC)

	if got := Render(instant, "M/D H:m:s", "UTC"); got != "6/15 13:5:9" {
		t.Errorf("expected %q, got %q", "6/15 13:5:9", got)
	}
}

func TestRenderTwelveHourTokens(t *testing.T) {
	instant := time.Date(2025, time.June, 15, 13, 5, 9, 0, time.UTC)

	if got := Render(instant, "hh:mm A", "UTC"); got != "01:05 PM" {
		t.Errorf("expected %q, got %q", "01:05 PM", got)
	}
	if got := Render(instant, "h a", "UTC"); got != "1 pm" {
		t.Errorf("expected %q, got %q", "1 pm", got)
	}
}

func TestRenderLongestMatchFirst(t *testing.T) {
	instant := time.Date(2025, time.June, 15, 13, 5, 9, 0, time.UTC)

	// HHH must scan as HH then H, never as three bare hours
	if got := Render(instant, "HHH", "UTC"); got != "1313" {
		t.Errorf("expected %q, got %q", "1313", got)
	}

	// hh before h, mm before m, ss before s
	if got := Render(instant, "hhh mmm sss", "UTC"); got != "011 055 099" {
		t.Errorf("expected %q, got %q", "011 055 099", got)
	}
}

func TestRenderProducedValuesNotRescanned(t *testing.T) {
	// March renders MM as "03"; the scan must not treat produced digits as
	// further pattern input regardless of surrounding tokens.
	instant := time.Date(2025, time.March, 4, 5, 6, 7, 0, time.UTC)

	if got := Render(instant, "MM-DD", "UTC"); got != "03-04" {
		t.Errorf("expected %q, got %q", "03-04", got)
	}
}

func TestRenderPassesThroughLiterals(t *testing.T) {
	instant := time.Date(2025, time.June, 15, 13, 5, 9, 0, time.UTC)

	if got := Render(instant, "[YYYY]", "UTC"); got != "[2025]" {
		t.Errorf("expected %q, got %q", "[2025]", got)
	}
	if got := Render(instant, "YYYY.MM.DD", "UTC"); got != "2025.06.15" {
		t.Errorf("expected %q, got %q", "2025.06.15", got)
	}
}

func TestRenderInZone(t *testing.T) {
	// 2025-01-01T01:00:00Z is 01:00 in London (GMT in January)
	instant := time.UnixMilli(1735693200000).UTC()

	if got := Render(instant, DefaultPattern, "Europe/London"); got != "2025-01-01 01:00:00" {
		t.Errorf("expected %q, got %q", "2025-01-01 01:00:00", got)
	}

	// The same instant is 10:00 in Tokyo
	if got := Render(instant, "HH:mm", "Asia/Tokyo"); got != "10:00" {
		t.Errorf("expected %q, got %q", "10:00", got)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	// Rendering the default pattern and parsing it back recovers the
	// calendar fields of the original instant.
	instant := time.Date(2031, time.December, 9, 23, 58, 41, 0, time.UTC)

	rendered := Render(instant, DefaultPattern, "UTC")

	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", rendered, time.UTC)
	if err != nil {
		t.Fatalf("failed to parse rendered output %q: %v", rendered, err)
	}
	if !parsed.Equal(instant) {
		t.Errorf("round trip mismatch: started with %v, recovered %v", instant, parsed)
	}
}
