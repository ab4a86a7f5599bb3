package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding
	DocStart, DocEnd      key.Binding

	Back, Forward key.Binding

	NextDoc, PrevDoc, CloseDoc key.Binding
	CopyLocation               key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),

		// Terminals vary in which ctrl+home/end sequences they send.
		DocStart: key.NewBinding(key.WithKeys("ctrl+home", "g"), key.WithHelp("g", "top")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end", "G"), key.WithHelp("G", "bottom")),

		Back:    key.NewBinding(key.WithKeys("alt+left", "ctrl+o"), key.WithHelp("alt+←", "back")),
		Forward: key.NewBinding(key.WithKeys("alt+right", "ctrl+]"), key.WithHelp("alt+→", "forward")),

		NextDoc:  key.NewBinding(key.WithKeys("tab", "ctrl+n"), key.WithHelp("tab", "next file")),
		PrevDoc:  key.NewBinding(key.WithKeys("shift+tab", "ctrl+p"), key.WithHelp("shift+tab", "prev file")),
		CloseDoc: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close file")),

		CopyLocation: key.NewBinding(key.WithKeys("y", "ctrl+y"), key.WithHelp("y", "copy location")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.NextDoc, k.CloseDoc, k.CopyLocation}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.DocStart, k.DocEnd},
		{k.Back, k.Forward},
		{k.NextDoc, k.PrevDoc, k.CloseDoc, k.CopyLocation},
	}
}

func (k KeyMap) empty() bool {
	return len(k.Up.Keys()) == 0 && len(k.Down.Keys()) == 0 && len(k.Back.Keys()) == 0
}
