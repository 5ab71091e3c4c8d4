// ABOUTME: Test app to verify clock sync against a running time server
// ABOUTME: Runs repeated sync rounds and optionally follows the websocket stream
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sikaipeng/server-clock/pkg/protocol"
	"github.com/sikaipeng/server-clock/pkg/serverclock"
	"github.com/sikaipeng/server-clock/pkg/timesync"
)

var (
	endpoint = flag.String("endpoint", "http://localhost:8123/timestamp", "Timestamp endpoint URL")
	rounds   = flag.Int("rounds", 5, "Number of sync rounds")
	pause    = flag.Duration("pause", time.Second, "Pause between rounds")
	follow   = flag.Bool("follow", false, "After syncing, follow the websocket stream and compare")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)

	fmt.Println("=== Clock Sync Test App ===")
	fmt.Printf("Endpoint: %s\n", *endpoint)
	fmt.Println()

	engine := timesync.NewEngine(timesync.Config{Endpoint: *endpoint})

	for i := 0; i < *rounds; i++ {
		sample, err := engine.Run(context.Background())
		if err != nil {
			log.Printf("Round %d failed: %v", i+1, err)
		} else {
			log.Printf("Round %d: offset=%dms delay=%dms serverTime=%d",
				i+1, sample.Offset, sample.Delay, sample.ServerTime)
		}
		if i < *rounds-1 {
			time.Sleep(*pause)
		}
	}

	if !*follow {
		log.Printf("Test complete")
		return
	}

	clock := serverclock.New(serverclock.Config{Endpoint: *endpoint})
	if _, err := clock.Sync(context.Background()); err != nil {
		log.Fatalf("Sync failed: %v", err)
	}

	streamURL, err := streamURLFor(*endpoint)
	if err != nil {
		log.Fatalf("Bad endpoint: %v", err)
	}

	fmt.Println()
	fmt.Printf("Following %s (Ctrl-C to stop)...\n", streamURL)

	conn, _, err := websocket.DefaultDialer.Dial(streamURL, nil)
	if err != nil {
		log.Fatalf("Stream dial failed: %v", err)
	}
	defer conn.Close()

	for {
		var update protocol.TimeUpdate
		if err := conn.ReadJSON(&update); err != nil {
			log.Fatalf("Stream read failed: %v", err)
		}
		local := clock.Now().UnixMilli()
		log.Printf("seq=%d server=%dms corrected=%dms drift=%dms",
			update.Sequence, update.Timestamp, local, local-update.Timestamp)
	}
}

// streamURLFor maps the HTTP timestamp endpoint to its websocket stream URL.
func streamURLFor(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if !strings.HasSuffix(u.Path, "/ws") {
		u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	}
	return u.String(), nil
}
