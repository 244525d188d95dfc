package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Fire, k.Quit}}
}

// MenuKeyMap defines the key bindings shared by all menus.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Confirm}, {k.Back, k.Quit}}
}

// KeyMap translates Bubble Tea key messages to session key events.
// Gameplay and menus bind some keys differently: W is fire in game and
// cursor up in menus.
type KeyMap struct {
	Game      GameKeyMap
	Menu      MenuKeyMap
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Game: GameKeyMap{
			Left: key.NewBinding(
				key.WithKeys("a", "left"),
				key.WithHelp("a/←", "left"),
			),
			Right: key.NewBinding(
				key.WithKeys("d", "right"),
				key.WithHelp("d/→", "right"),
			),
			Fire: key.NewBinding(
				key.WithKeys(" ", "w", "up"),
				key.WithHelp("space/w", "fire"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "menu"),
			),
		},
		Menu: MenuKeyMap{
			Up: key.NewBinding(
				key.WithKeys("w", "up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("s", "down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Confirm: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "select"),
			),
			Back: key.NewBinding(
				key.WithKeys("esc", "b"),
				key.WithHelp("esc/b", "back"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		},
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// GameEvent maps a key to an in-game event.
func (k KeyMap) GameEvent(msg tea.KeyMsg) core.KeyEvent {
	var action core.Action
	switch {
	case key.Matches(msg, k.Game.Left):
		action = core.ActionLeft
	case key.Matches(msg, k.Game.Right):
		action = core.ActionRight
	case key.Matches(msg, k.Game.Fire):
		action = core.ActionFire
	case key.Matches(msg, k.Game.Quit):
		action = core.ActionQuit
	}
	return core.KeyEvent{Action: action, Rune: keyRune(msg)}
}

// MenuEvent maps a key to a menu event. The typed character is kept so
// menus can read digits and glyphs.
func (k KeyMap) MenuEvent(msg tea.KeyMsg) core.KeyEvent {
	var action core.Action
	switch {
	case key.Matches(msg, k.Menu.Up):
		action = core.ActionUp
	case key.Matches(msg, k.Menu.Down):
		action = core.ActionDown
	case key.Matches(msg, k.Menu.Confirm):
		action = core.ActionConfirm
	case key.Matches(msg, k.Menu.Back):
		action = core.ActionBack
	case key.Matches(msg, k.Menu.Quit):
		action = core.ActionQuit
	}
	return core.KeyEvent{Action: action, Rune: keyRune(msg)}
}

// keyRune returns the single character typed, or 0 for special keys.
// Bubble Tea reports space as its own key type.
func keyRune(msg tea.KeyMsg) rune {
	switch {
	case msg.Alt:
		return 0
	case msg.Type == tea.KeySpace:
		return ' '
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		return msg.Runes[0]
	}
	return 0
}
