// ABOUTME: High-level server-corrected clock package
// ABOUTME: Combines the sync engine, clock state, and pattern formatting
// Package serverclock provides a best-effort authoritative clock corrected
// against a remote HTTP time endpoint.
//
// A Clock owns its own sync state; independent instances never share
// results. Until a sync succeeds the clock degrades to the local wall clock.
//
// Example:
//
//	clock := serverclock.New(serverclock.Config{Endpoint: "https://example.com/timestamp"})
//	clock.Sync(ctx)
//	fmt.Println(clock.Format("Europe/London", "YYYY-MM-DD HH:mm:ss"))
package serverclock
