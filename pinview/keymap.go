package pinview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field key bindings.
//
// Bindings must be portable across terminals (ctrl fallbacks).
type KeyMap struct {
	Left, Right key.Binding
	Home, End   key.Binding

	Backspace, Delete key.Binding
	Clear             key.Binding

	Paste  key.Binding
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "previous slot")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "next slot")),
		Home:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "first slot")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "last slot")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),

		Paste:  key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range []key.Binding{km.Left, km.Right, km.Home, km.End, km.Backspace, km.Delete, km.Clear, km.Paste, km.Submit} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
