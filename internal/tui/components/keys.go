package components

import "github.com/charmbracelet/bubbles/key"

// TitleInputKeyMap defines key bindings for a title input
type TitleInputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultTitleInputKeyMap returns the default title input key bindings
func DefaultTitleInputKeyMap() TitleInputKeyMap {
	return TitleInputKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// TitleInputKeys is the global title input key bindings instance
var TitleInputKeys = DefaultTitleInputKeyMap()
