// Package tui provides the Bubble Tea integration for the snake simulation.
// It handles the terminal UI loop, input mapping, and the two clock streams
// driving the engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SimTickMsg advances the simulation clock. Its cadence follows the
// engine's speed-controlled period, so each message carries no fixed rate.
type SimTickMsg time.Time

// CascadeTickMsg advances the animation clock at a fixed period.
type CascadeTickMsg time.Time

// simTickCmd schedules the next simulation tick after the given period.
func simTickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return SimTickMsg(t)
	})
}

// cascadeTickCmd schedules the next animation tick after the given period.
func cascadeTickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return CascadeTickMsg(t)
	})
}
