// ABOUTME: Reference time server for server-clock clients
// ABOUTME: Serves JSON timestamps over HTTP and a websocket time stream
package timeserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sikaipeng/server-clock/pkg/discovery"
	"github.com/sikaipeng/server-clock/pkg/protocol"
)

// Config holds server configuration.
type Config struct {
	// Port is the HTTP listen port (0 picks a free port).
	Port int

	// Name identifies this server in mDNS advertisements.
	Name string

	// Seconds serves 10-digit Unix seconds instead of milliseconds,
	// exercising the client-side unit normalization.
	Seconds bool

	// StreamEvery is the websocket push interval (default: 1s).
	StreamEvery time.Duration

	// NTPServer optionally disciplines served timestamps against an
	// upstream NTP pool, e.g. "pool.ntp.org". Empty disables.
	NTPServer string

	// NTPEvery is the upstream re-query interval (default: 10m).
	NTPEvery time.Duration

	// EnableMDNS advertises the server as _servertime._tcp.
	EnableMDNS bool
}

// Server serves the timestamp endpoint and the websocket time stream.
type Server struct {
	config   Config
	serverID string

	upgrader   websocket.Upgrader
	mux        *http.ServeMux
	httpServer *http.Server
	listener   net.Listener

	// Upstream NTP correction applied to served timestamps
	ntpMu     sync.RWMutex
	ntpOffset time.Duration

	mdnsManager *discovery.Manager

	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a server instance, filling config defaults.
func New(config Config) *Server {
	if config.Name == "" {
		config.Name = "server-clock"
	}
	if config.StreamEvery <= 0 {
		config.StreamEvery = time.Second
	}
	if config.NTPEvery <= 0 {
		config.NTPEvery = 10 * time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		config:   config,
		serverID: uuid.New().String(),
		mux:      http.NewServeMux(),
		upgrader: websocket.Upgrader{
			// Trusted local networks only; non-browser clients send no Origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins listening and serving. It returns once the listener is bound.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.config.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener

	s.mux.HandleFunc("/timestamp", s.handleTimestamp)
	s.mux.HandleFunc("/timestamp/ws", s.handleStream)
	s.httpServer = &http.Server{Handler: s.mux}

	log.Printf("Time server starting: %s (ID: %s) on %s", s.config.Name, s.serverID, listener.Addr())

	if s.config.NTPServer != "" {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.ntpLoop()
		}()
	}

	if s.config.EnableMDNS {
		port := listener.Addr().(*net.TCPAddr).Port
		s.mdnsManager = discovery.NewManager(discovery.Config{
			ServiceName: s.config.Name,
			Port:        port,
		})
		if err := s.mdnsManager.Advertise(); err != nil {
			log.Printf("Failed to start mDNS advertisement: %v", err)
		}
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	return nil
}

// Addr returns the bound listen address, valid after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down and waits for its goroutines.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		if s.mdnsManager != nil {
			s.mdnsManager.Stop()
		}
		if s.httpServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			s.httpServer.Shutdown(ctx)
		}
		s.wg.Wait()
	})
}

// timestamp returns the instant this server currently reports: the wall
// clock plus the upstream NTP correction when one is known.
func (s *Server) timestamp() int64 {
	s.ntpMu.RLock()
	offset := s.ntpOffset
	s.ntpMu.RUnlock()

	now := time.Now().Add(offset)
	if s.config.Seconds {
		return now.Unix()
	}
	return now.UnixMilli()
}

// handleTimestamp serves the JSON timestamp body for GET and POST.
func (s *Server) handleTimestamp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(protocol.TimestampResponse{
		Timestamp: float64(s.timestamp()),
	}); err != nil {
		log.Printf("Failed to write timestamp response: %v", err)
	}
}

// handleStream upgrades to a websocket and pushes TimeUpdate frames until
// the connection drops or the server stops.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer conn.Close()
		s.streamLoop(conn)
	}()
}

// streamLoop writes one frame per tick with a per-connection sequence.
func (s *Server) streamLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(s.config.StreamEvery)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			seq++
			update := protocol.TimeUpdate{
				Type:      protocol.TimeUpdateType,
				Timestamp: s.timestamp(),
				ServerID:  s.serverID,
				Sequence:  seq,
			}
			if err := conn.WriteJSON(update); err != nil {
				log.Printf("Time stream closed: %v", err)
				return
			}
		}
	}
}

// ntpLoop keeps the upstream correction fresh. A failed query keeps the
// previous correction rather than stepping back to the local clock.
func (s *Server) ntpLoop() {
	s.queryNTP()

	ticker := time.NewTicker(s.config.NTPEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.queryNTP()
		}
	}
}

// queryNTP fetches the clock offset from the configured upstream pool.
func (s *Server) queryNTP() {
	resp, err := ntp.Query(s.config.NTPServer)
	if err != nil {
		log.Printf("NTP query failed: %v", err)
		return
	}
	if err := resp.Validate(); err != nil {
		log.Printf("NTP response rejected: %v", err)
		return
	}

	s.ntpMu.Lock()
	s.ntpOffset = resp.ClockOffset
	s.ntpMu.Unlock()

	log.Printf("NTP correction updated: %+v from %s", resp.ClockOffset, s.config.NTPServer)
}
