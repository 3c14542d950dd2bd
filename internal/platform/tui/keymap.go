package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines key bindings shown in the help bar.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fast       key.Binding
	Normal     key.Binding
	Pause      key.Binding
	NewGame    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.NewGame, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Fast, k.Normal, k.Pause, k.NewGame},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "bat left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "bat right"),
		),
		Fast: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "fast"),
		),
		Normal: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "normal speed"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "new game"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to engine key codes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// IsQuit reports whether the message is a quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Quit)
}

// MapKey converts a key message to the engine wire format.
// Arrow keys become special codes; a single typed character becomes a
// character code. Returns false for anything else.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.KeyCode, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return core.KeyLeft, true
	case tea.KeyRight:
		return core.KeyRight, true
	case tea.KeyUp:
		return core.KeyUp, true
	case tea.KeyDown:
		return core.KeyDown, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return core.CharKey(msg.Runes[0]), true
		}
	}
	return 0, false
}
