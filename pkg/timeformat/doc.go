// ABOUTME: Timezone-aware date formatting package
// ABOUTME: Token-pattern rendering with cached zone resolution
// Package timeformat renders instants into token-based pattern strings.
//
// Patterns use the tokens YYYY MM DD HH hh mm ss M D H h m s A a; any other
// character passes through unchanged.
//
// Example:
//
//	s := timeformat.Render(time.Now(), "YYYY-MM-DD HH:mm:ss", "Europe/London")
package timeformat
