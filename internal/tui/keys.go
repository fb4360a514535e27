package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Add      key.Binding
	Done     key.Binding
	Archive  key.Binding
	MoveNext key.Binding
	MovePrev key.Binding
	Delete   key.Binding
	Filter   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "quick add")),
	Done:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "mark done")),
	Archive:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "archive")),
	MoveNext: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move right")),
	MovePrev: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "move left")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
