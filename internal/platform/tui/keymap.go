package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-cascade/internal/core"
)

// Action is a high-level input event derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionSteer
	ActionPause
	ActionRestart
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. For ActionSteer the
// requested direction is returned alongside.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, dir core.Direction) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, 0
	case "up", "w", "k":
		return ActionSteer, core.DirUp
	case "down", "s", "j":
		return ActionSteer, core.DirDown
	case "left", "a", "h":
		return ActionSteer, core.DirLeft
	case "right", "d", "l":
		return ActionSteer, core.DirRight
	case "p", "esc":
		return ActionPause, 0
	case "r":
		return ActionRestart, 0
	}
	return ActionNone, 0
}
