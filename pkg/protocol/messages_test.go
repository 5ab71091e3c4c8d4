// ABOUTME: Tests for protocol wire types
// ABOUTME: Pins the JSON field names clients and servers depend on
package protocol

import (
	"encoding/json"
	"testing"
)

func TestTimestampResponseFieldName(t *testing.T) {
	// The timestamp field name is the endpoint contract; renaming it would
	// silently break every client.
	data, err := json.Marshal(TimestampResponse{Timestamp: 1735693200000})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := raw["timestamp"]; !ok {
		t.Errorf("expected a timestamp key, got %s", data)
	}
}

func TestTimeUpdateRoundTrip(t *testing.T) {
	in := TimeUpdate{
		Type:      TimeUpdateType,
		Timestamp: 1735693200000,
		ServerID:  "b2c7",
		Sequence:  7,
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out TimeUpdate
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}
