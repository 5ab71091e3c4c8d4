// ABOUTME: IANA zone shape checking and cached location resolution
// ABOUTME: Continental prefix allowlist plus an LRU cache of loaded locations
package timeformat

import (
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// zonePrefixes are the continental IANA prefixes accepted by ValidZone.
var zonePrefixes = []string{
	"Africa/", "America/", "Antarctica/", "Arctic/", "Asia/",
	"Atlantic/", "Australia/", "Europe/", "Indian/", "Pacific/",
}

// zoneAliases are bare zone names accepted alongside the prefixed forms.
var zoneAliases = map[string]bool{
	"UTC":  true,
	"GMT":  true,
	"Zulu": true,
}

// ValidZone reports whether s has the shape of a supported IANA zone name.
// This is a shape check only, used to tell zones apart from patterns; a name
// that passes here can still fail to resolve against the zone database.
func ValidZone(s string) bool {
	if zoneAliases[s] {
		return true
	}
	for _, prefix := range zonePrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// locationCacheSize bounds the resolved-location cache. The practical key
// space is the handful of zones a process actually formats in, so entries
// are effectively never evicted.
const locationCacheSize = 64

var locations *lru.Cache[string, *time.Location]

func init() {
	locations, _ = lru.New[string, *time.Location](locationCacheSize)
}

// Location resolves a zone name, caching database lookups. The empty string
// resolves to the host zone; UTC and Zulu resolve without touching the
// database. Anything else goes straight to the zone database, so names the
// allowlist would reject can still resolve here.
func Location(zone string) (*time.Location, error) {
	switch zone {
	case "":
		return time.Local, nil
	case "UTC", "Zulu":
		return time.UTC, nil
	}

	if loc, ok := locations.Get(zone); ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("resolve zone %q: %w", zone, err)
	}
	locations.Add(zone, loc)
	return loc, nil
}
