package bar

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Next      key.Binding
	Previous  key.Binding
	FocusNext key.Binding
	Workspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next workspace"),
		),
		Previous: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "previous workspace"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus next monitor"),
		),
		Workspace: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "switch workspace"),
		),
	}
}
