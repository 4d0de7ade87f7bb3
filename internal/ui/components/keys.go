package components

import "charm.land/bubbles/v2/key"

// Shared key bindings.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "select"),
	)
	KeyBack = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "menu"),
	)
)
