// Package tui provides the Bubble Tea integration for the game.
// It drives the tick loop, maps keys to intents and draws the board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// minTickRate bounds the interval of a misconfigured rate.
const minTickRate = 0.5

// interval converts ticks per second to the time between ticks.
func interval(tickRate float64) time.Duration {
	tickRate = max(tickRate, minTickRate)
	return time.Duration(float64(time.Second) / tickRate)
}

// tickCmd returns a Bubble Tea command that sends one tick after the interval
// of the given rate. The rate changes between ticks, so each tick schedules
// the next.
func tickCmd(tickRate float64) tea.Cmd {
	return tea.Tick(interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
