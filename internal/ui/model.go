// ABOUTME: Bubbletea model for the live clock view
// ABOUTME: Renders the corrected time, sync state, and offset
package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sikaipeng/server-clock/pkg/serverclock"
)

// Model represents the watch TUI state.
type Model struct {
	clock    *serverclock.Clock
	endpoint string
	zone     string
	pattern  string

	syncing  bool
	lastSync time.Time
	lastErr  error

	width  int
	height int
}

// tickMsg drives the clock redraw.
type tickMsg time.Time

// syncDoneMsg reports a completed manual re-sync.
type syncDoneMsg struct {
	err error
}

// NewModel creates the watch model for an already-created clock.
func NewModel(clock *serverclock.Clock, endpoint, zone, pattern string) Model {
	return Model{
		clock:    clock,
		endpoint: endpoint,
		zone:     zone,
		pattern:  pattern,
	}
}

// tick schedules the next redraw.
func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		return m, tick()
	case syncDoneMsg:
		m.syncing = false
		m.lastErr = msg.err
		if msg.err == nil {
			m.lastSync = time.Now()
		}
	}

	return m, nil
}

// handleKey handles keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		clock := m.clock
		return m, func() tea.Msg {
			_, err := clock.Sync(context.Background())
			return syncDoneMsg{err: err}
		}
	}

	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	zoneLabel := m.zone
	if zoneLabel == "" {
		zoneLabel = "local"
	}

	syncIcon := "✗"
	syncText := "Not synced (local wall clock)"
	if m.clock.Synced() {
		syncIcon = "✓"
		syncText = fmt.Sprintf("Synced (offset: %+dms, delay: %dms)", m.clock.Offset(), m.clock.Delay())
	}
	if m.syncing {
		syncText += " (syncing...)"
	}
	if m.lastErr != nil {
		syncText = fmt.Sprintf("Sync failed: %v", m.lastErr)
	}

	s := fmt.Sprintf(`┌─ server-clock ───────────────────────────────────────┐
│ %s │
│  Zone:     %-41s │
│  Endpoint: %-41s │
│  Sync:     %s %-39s │
│ %s │
└──────────────────────────────────────────────────────┘
`,
		center(m.clock.Format(m.zone, m.pattern), 52),
		truncate(zoneLabel, 41),
		truncate(m.endpoint, 41),
		syncIcon, truncate(syncText, 39),
		center("s:Re-sync  q:Quit", 52),
	)

	return s
}

// Utility functions
func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return fmt.Sprintf("%*s%s%*s", left, "", s, right, "")
}
