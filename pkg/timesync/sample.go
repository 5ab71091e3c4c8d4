// ABOUTME: Per-attempt sync sample and NTP-style offset math
// ABOUTME: Computes offset and round-trip delay from a four-timestamp exchange
package timesync

// Sample is the result of one successful sync attempt.
type Sample struct {
	Offset     int64 // ms, server clock minus client monotonic reference
	Delay      int64 // ms, estimated round-trip network delay
	ServerTime int64 // normalized server-reported instant (Unix ms)
}

// computeSample derives offset and delay from the classic four timestamps:
// t1 client send, t2 server receive, t3 server send, t4 client receive.
func computeSample(t1, t2, t3, t4 int64) (offset, delay int64) {
	// Estimated offset (positive = server ahead of client)
	offset = ((t2 - t1) + (t3 - t4)) / 2

	// Round-trip time minus server turnaround
	delay = (t4 - t1) - (t3 - t2)

	return
}
