// ABOUTME: Bubbletea program runner for the watch view
// ABOUTME: Blocks until the user quits the live clock
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sikaipeng/server-clock/pkg/serverclock"
)

// Run starts the live clock view and blocks until the user quits.
func Run(clock *serverclock.Clock, endpoint, zone, pattern string) error {
	p := tea.NewProgram(NewModel(clock, endpoint, zone, pattern))
	_, err := p.Run()
	return err
}
