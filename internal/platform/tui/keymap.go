package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameKey translates a key message to the game key it controls.
func (k KeyMap) GameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp, true
	case key.Matches(msg, k.Down):
		return core.KeyDown, true
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Fire):
		return core.KeyFire, true
	}
	return 0, false
}

// KeyTracker turns terminal key presses into held-key state.
// Terminals report a press and then auto-repeat while the key stays down,
// but never report a release. A key counts as held for a while after each
// report: longer after the first press, to bridge the auto-repeat delay,
// shorter after a repeat. Once that window lapses the key is released.
// A second press inside the window looks exactly like an auto-repeat, so
// taps closer together than the initial window merge into one hold and the
// fire latch does not re-arm between them.
type KeyTracker struct {
	initial int64 // Hold window after a first press, ms
	repeat  int64 // Hold window after a repeat, ms
	until   [len(keyOrder)]int64
}

// keyOrder indexes KeyTracker.until.
var keyOrder = [...]core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyFire}

// NewKeyTracker creates a tracker with the given hold windows.
func NewKeyTracker(initial, repeat time.Duration) *KeyTracker {
	return &KeyTracker{
		initial: initial.Milliseconds(),
		repeat:  repeat.Milliseconds(),
	}
}

// Press records a key report at clock reading now.
func (t *KeyTracker) Press(k core.Key, now int64) {
	i := int(k)
	if i >= len(t.until) {
		return
	}
	if now < t.until[i] {
		t.until[i] = now + t.repeat
		return
	}
	t.until[i] = now + t.initial
}

// Release drops a key immediately.
func (t *KeyTracker) Release(k core.Key) {
	if i := int(k); i < len(t.until) {
		t.until[i] = 0
	}
}

// Pressed returns the keys held at clock reading now.
func (t *KeyTracker) Pressed(now int64) core.KeySet {
	var s core.KeySet
	for i, k := range keyOrder {
		if now < t.until[i] {
			s = s.With(k)
		}
	}
	return s
}
