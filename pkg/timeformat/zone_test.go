// ABOUTME: Tests for zone shape checking and location resolution
// ABOUTME: Covers the prefix allowlist, aliases, and cache behavior
package timeformat

import (
	"testing"
	"time"
	_ "time/tzdata" // bundle the zone database so tests do not depend on host tzdata
)

func TestValidZoneAcceptsContinentalPrefixes(t *testing.T) {
	for _, zone := range []string{
		"Africa/Cairo",
		"America/New_York",
		"Antarctica/Palmer",
		"Arctic/Longyearbyen",
		"Asia/Tokyo",
		"Atlantic/Azores",
		"Australia/Sydney",
		"Europe/London",
		"Indian/Maldives",
		"Pacific/Auckland",
	} {
		if !ValidZone(zone) {
			t.Errorf("expected ValidZone(%q) to be true", zone)
		}
	}
}

func TestValidZoneAcceptsAliases(t *testing.T) {
	for _, zone := range []string{"UTC", "GMT", "Zulu"} {
		if !ValidZone(zone) {
			t.Errorf("expected ValidZone(%q) to be true", zone)
		}
	}
}

func TestValidZoneRejectsOtherStrings(t *testing.T) {
	for _, s := range []string{
		"",
		"EST",
		"Mars/Base",
		"europe/london",
		"YYYY-MM-DD HH:mm:ss",
		"HH:mm:ss",
	} {
		if ValidZone(s) {
			t.Errorf("expected ValidZone(%q) to be false", s)
		}
	}
}

func TestLocationAliases(t *testing.T) {
	for _, zone := range []string{"UTC", "Zulu"} {
		loc, err := Location(zone)
		if err != nil {
			t.Fatalf("Location(%q): unexpected error: %v", zone, err)
		}
		if loc != time.UTC {
			t.Errorf("expected Location(%q) to be UTC, got %v", zone, loc)
		}
	}
}

func TestLocationEmptyIsHostZone(t *testing.T) {
	loc, err := Location("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != time.Local {
		t.Errorf("expected host zone, got %v", loc)
	}
}

func TestLocationCachesLookups(t *testing.T) {
	first, err := Location("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Location("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("expected cached location to be reused")
	}
}

func TestLocationUnknownZoneFails(t *testing.T) {
	if _, err := Location("Mars/Base"); err == nil {
		t.Error("expected an error for an unknown zone")
	}
}
