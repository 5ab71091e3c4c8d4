// ABOUTME: Entry point for the server-clock CLI
// ABOUTME: Syncs against a time endpoint and prints or watches the corrected time
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sikaipeng/server-clock/internal/ui"
	"github.com/sikaipeng/server-clock/internal/version"
	"github.com/sikaipeng/server-clock/pkg/discovery"
	"github.com/sikaipeng/server-clock/pkg/serverclock"
	"github.com/sikaipeng/server-clock/pkg/timeformat"
)

var (
	endpoint   = flag.String("endpoint", "", "Time endpoint URL (e.g. https://example.com/timestamp)")
	method     = flag.String("method", "POST", "HTTP method for sync requests (GET or POST)")
	zone       = flag.String("zone", "", "IANA zone for output (default: host zone)")
	pattern    = flag.String("pattern", timeformat.DefaultPattern, "Output pattern")
	autoUpdate = flag.Duration("auto-update", serverclock.DefaultAutoUpdateInterval, "Background re-sync interval in watch mode (0 = off)")
	watch      = flag.Bool("watch", false, "Show a live clock instead of printing once")
	discover   = flag.Bool("discover", false, "Discover a time server via mDNS when no endpoint is given")
	logFile    = flag.String("log-file", "", "Log file path (default: stderr; watch mode discards logs without one)")
	showVer    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("%s %s\n", version.Product, version.Version)
		return
	}

	setupLogging()

	verb, err := parseMethod(*method)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	target := *endpoint
	if target == "" {
		if !*discover {
			log.Fatalf("No endpoint given (use -endpoint or -discover)")
		}
		target = discoverEndpoint()
	}

	clock := serverclock.New(serverclock.Config{Endpoint: target, Method: verb})

	if _, err := clock.Sync(context.Background()); err != nil {
		log.Printf("Sync failed, falling back to local time: %v", err)
	}

	if *watch {
		if *autoUpdate > 0 {
			clock.AutoUpdate(*autoUpdate)
			defer clock.Stop()
		}
		if err := ui.Run(clock, target, *zone, *pattern); err != nil {
			log.Fatalf("Watch view failed: %v", err)
		}
		return
	}

	fmt.Println(clock.Format(*zone, *pattern))
}

// setupLogging routes logs to the requested sink. In watch mode logs must
// stay off the terminal the TUI owns.
func setupLogging() {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		log.SetOutput(f)
		return
	}
	if *watch {
		log.SetOutput(io.Discard)
	}
}

// parseMethod maps the -method flag onto an HTTP verb.
func parseMethod(s string) (string, error) {
	switch strings.ToUpper(s) {
	case "", http.MethodPost:
		return http.MethodPost, nil
	case http.MethodGet:
		return http.MethodGet, nil
	default:
		return "", fmt.Errorf("unsupported method %q (use GET or POST)", s)
	}
}

// discoverEndpoint browses for a time server and returns its endpoint URL.
func discoverEndpoint() string {
	log.Printf("Starting time server discovery...")

	disc := discovery.NewManager(discovery.Config{ServiceName: version.Product})
	defer disc.Stop()
	if err := disc.Browse(); err != nil {
		log.Fatalf("Discovery failed: %v", err)
	}

	select {
	case server := <-disc.Servers():
		log.Printf("Discovered time server at %s:%d", server.Host, server.Port)
		return server.Endpoint()
	case <-time.After(10 * time.Second):
		log.Fatalf("No time server found after 10 seconds")
		return ""
	}
}
