// ABOUTME: Wire types for the server-clock timestamp endpoint and time stream
// ABOUTME: JSON structs shared by the client, the reference server, and probes
package protocol

// TimeUpdateType is the type tag carried by TimeUpdate frames.
const TimeUpdateType = "time/update"

// TimestampResponse is the body served for GET/POST /timestamp.
// The timestamp is Unix milliseconds, or a 10-digit Unix seconds value when
// the server runs in seconds mode; clients normalize either unit.
type TimestampResponse struct {
	Timestamp float64 `json:"timestamp"`
}

// TimeUpdate is one frame of the websocket time stream.
type TimeUpdate struct {
	Type      string `json:"type"`      // always TimeUpdateType
	Timestamp int64  `json:"timestamp"` // Unix ms, server clock
	ServerID  string `json:"server_id"`
	Sequence  uint64 `json:"sequence"` // per-connection, starts at 1
}
