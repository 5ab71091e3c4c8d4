// ABOUTME: Entry point for the reference time server
// ABOUTME: Parses CLI flags and serves timestamps until interrupted
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sikaipeng/server-clock/internal/timeserver"
	"github.com/sikaipeng/server-clock/internal/version"
)

var (
	port        = flag.Int("port", 8123, "HTTP listen port")
	name        = flag.String("name", "", "Server name for mDNS (default: hostname-timeserver)")
	seconds     = flag.Bool("seconds", false, "Serve 10-digit Unix seconds instead of milliseconds")
	streamEvery = flag.Duration("stream-every", time.Second, "Websocket push interval")
	ntpServer   = flag.String("ntp", "", "Upstream NTP pool to discipline served time (e.g. pool.ntp.org)")
	ntpEvery    = flag.Duration("ntp-every", 10*time.Minute, "Upstream NTP re-query interval")
	enableMDNS  = flag.Bool("mdns", true, "Advertise via mDNS")
)

func main() {
	flag.Parse()

	serverName := *name
	if serverName == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		serverName = fmt.Sprintf("%s-timeserver", hostname)
	}

	log.Printf("Starting %s %s time server: %s", version.Product, version.Version, serverName)

	srv := timeserver.New(timeserver.Config{
		Port:        *port,
		Name:        serverName,
		Seconds:     *seconds,
		StreamEvery: *streamEvery,
		NTPServer:   *ntpServer,
		NTPEvery:    *ntpEvery,
		EnableMDNS:  *enableMDNS,
	})

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Printf("Serving timestamps on %s", srv.Addr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Printf("Shutting down...")
	srv.Stop()
}
