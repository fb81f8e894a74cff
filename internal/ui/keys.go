package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application-level bindings. Selection keys are
// listed for help only; they are translated by keyEvent.
type keyMap struct {
	Move      key.Binding
	Extend    key.Binding
	Toggle    key.Binding
	All       key.Binding
	Clear     key.Binding
	Focus     key.Binding
	Mode      key.Binding
	Invert    key.Binding
	Drag      key.Binding
	Quick     key.Binding
	Open      key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
	TypeAhead key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:      key.NewBinding(key.WithKeys("up", "down", "home", "end", "pgup", "pgdown"), key.WithHelp("↑/↓", "move")),
		Extend:    key.NewBinding(key.WithKeys("shift+up", "shift+down"), key.WithHelp("shift+↑/↓", "extend")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "ctrl+@"), key.WithHelp("space", "toggle")),
		All:       key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Invert:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert")),
		Drag:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drag")),
		Quick:     key.NewBinding(key.WithKeys("Q"), key.WithHelp("Q", "hover select")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/commit")),
		Save:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save settings")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		TypeAhead: key.NewBinding(key.WithHelp("a-z", "find (single/one)")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Toggle, k.Focus, k.Mode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Extend, k.Toggle, k.All, k.Clear},
		{k.Focus, k.Mode, k.Invert, k.Drag, k.Quick},
		{k.Open, k.TypeAhead, k.Save, k.Help, k.Quit},
	}
}
