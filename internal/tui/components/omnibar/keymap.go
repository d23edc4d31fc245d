package omnibar

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the omnibar key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Delete     key.Binding
	Commit     key.Binding
	Return     key.Binding
	Clear      key.Binding
	Cancel     key.Binding
	PasteAndGo key.Binding
	Compose    key.Binding
}

// DefaultKeyMap returns the default omnibar key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "move left / commit")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "move right / commit")),
		Delete:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete / dismiss")),
		Commit:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "accept suggestion")),
		Return:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		PasteAndGo: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "paste & go")),
		Compose:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "compose mode")),
	}
}
