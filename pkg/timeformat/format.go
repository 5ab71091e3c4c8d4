// ABOUTME: Token-based date pattern rendering
// ABOUTME: Longest-match-first left-to-right scan, produced values never rescanned
package timeformat

import (
	"strings"
	"time"
)

// DefaultPattern is used when a caller supplies a zone but no pattern.
const DefaultPattern = "YYYY-MM-DD HH:mm:ss"

// token binds a pattern literal to its extraction. Order matters: longer
// tokens come before their single-letter prefixes so the scan never splits
// HH into two H matches.
type token struct {
	literal string
	render  func(t time.Time, zone string) string
}

var tokens = []token{
	{"YYYY", func(t time.Time, zone string) string { return Part(t, FieldYear, zone, true, false) }},
	{"MM", func(t time.Time, zone string) string { return Part(t, FieldMonth, zone, true, false) }},
	{"DD", func(t time.Time, zone string) string { return Part(t, FieldDay, zone, true, false) }},
	{"HH", func(t time.Time, zone string) string { return Part(t, FieldHour, zone, true, false) }},
	{"hh", func(t time.Time, zone string) string { return Part(t, FieldHour, zone, true, true) }},
	{"mm", func(t time.Time, zone string) string { return Part(t, FieldMinute, zone, true, false) }},
	{"ss", func(t time.Time, zone string) string { return Part(t, FieldSecond, zone, true, false) }},
	{"M", func(t time.Time, zone string) string { return Part(t, FieldMonth, zone, false, false) }},
	{"D", func(t time.Time, zone string) string { return Part(t, FieldDay, zone, false, false) }},
	{"H", func(t time.Time, zone string) string { return Part(t, FieldHour, zone, false, false) }},
	{"h", func(t time.Time, zone string) string { return Part(t, FieldHour, zone, false, true) }},
	{"m", func(t time.Time, zone string) string { return Part(t, FieldMinute, zone, false, false) }},
	{"s", func(t time.Time, zone string) string { return Part(t, FieldSecond, zone, false, false) }},
	{"A", func(t time.Time, zone string) string { return DayPeriod(t, zone, true) }},
	{"a", func(t time.Time, zone string) string { return DayPeriod(t, zone, false) }},
}

// Render expands pattern for instant in zone. Each position is matched
// against the token table longest-first; a produced value is emitted once
// and never rescanned, so token output can safely contain token letters.
// Unrecognized characters pass through unchanged.
func Render(instant time.Time, pattern, zone string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)

	for i := 0; i < len(pattern); {
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(pattern[i:], tok.literal) {
				b.WriteString(tok.render(instant, zone))
				i += len(tok.literal)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}

	return b.String()
}
