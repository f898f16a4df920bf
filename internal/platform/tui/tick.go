// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, menus, the scoreboard
// and hosting sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	Loop uint64 // Tick loop the message belongs to
}

var tickLoops atomic.Uint64

// newTickLoop returns an ID for a new tick loop. A model only acts on ticks of
// its own loop, so a loop left over from a previous game cannot double the pace.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
