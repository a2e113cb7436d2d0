// Package tui provides the Bubble Tea frontend for the runner.
// It owns the terminal, translates keys into runner commands and flushes
// the frame queue once per display tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg marks a display frame. The model flushes pending frame callbacks on it.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
