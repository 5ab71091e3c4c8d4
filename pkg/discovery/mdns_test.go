// ABOUTME: Tests for mDNS time-server discovery
// ABOUTME: Validates Manager creation, configuration, and lifecycle
package discovery

import (
	"testing"
	"time"
)

func TestNewManager(t *testing.T) {
	config := Config{
		ServiceName: "test-timeserver",
		Port:        8123,
	}

	manager := NewManager(config)

	if manager == nil {
		t.Fatal("NewManager returned nil")
	}

	if manager.config.ServiceName != "test-timeserver" {
		t.Errorf("Expected ServiceName 'test-timeserver', got '%s'", manager.config.ServiceName)
	}

	if manager.config.Port != 8123 {
		t.Errorf("Expected Port 8123, got %d", manager.config.Port)
	}

	if manager.servers == nil {
		t.Error("servers channel should not be nil")
	}

	if manager.ctx == nil {
		t.Error("ctx should not be nil")
	}

	// Clean up
	manager.Stop()
}

func TestManagerStopCancelsContext(t *testing.T) {
	manager := NewManager(Config{ServiceName: "test", Port: 8123})

	manager.Stop()

	select {
	case <-manager.ctx.Done():
	case <-time.After(time.Second):
		t.Error("expected Stop to cancel the manager context")
	}
}

func TestServerInfoEndpoint(t *testing.T) {
	info := &ServerInfo{Name: "clock.local", Host: "192.168.1.20", Port: 8123}

	if got := info.Endpoint(); got != "http://192.168.1.20:8123/timestamp" {
		t.Errorf("unexpected endpoint: %s", got)
	}
}
