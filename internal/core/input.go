package core

// Action represents a semantic action, abstracted from physical key presses.
// Gameplay and menus both work with these intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move player left
	ActionRight          // D, Right arrow - move player right
	ActionFire           // Space - fire a bullet
	ActionUp             // W, K, Up arrow - menu cursor up
	ActionDown           // S, J, Down arrow - menu cursor down
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - leave a sub-menu
	ActionQuit           // Q - leave the current screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is one discrete key press as seen by the session layer.
// Rune carries the printable character (if any) so menus that read raw
// characters, like glyph customization or numbered options, can use it.
type KeyEvent struct {
	Action Action
	Rune   rune
}

// Key builds a KeyEvent carrying only an action.
func Key(a Action) KeyEvent {
	return KeyEvent{Action: a}
}

// RuneKey builds a KeyEvent for a printable character with its mapped action.
func RuneKey(r rune, a Action) KeyEvent {
	return KeyEvent{Action: a, Rune: r}
}
