// ABOUTME: Clock synchronization package
// ABOUTME: NTP-style offset estimation against an HTTP time endpoint
// Package timesync estimates the offset between a remote time endpoint and
// the local monotonic clock.
//
// Each sync call runs a batch of sequential round trips and keeps the sample
// with the lowest estimated network delay.
//
// Example:
//
//	engine := timesync.NewEngine(timesync.Config{Endpoint: "https://example.com/timestamp"})
//	sample, err := engine.Run(ctx)
//	fmt.Printf("offset=%+dms delay=%dms\n", sample.Offset, sample.Delay)
package timesync
