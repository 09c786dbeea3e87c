package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	add     key.Binding
	refresh key.Binding
	share   key.Binding
	join    key.Binding
	copy    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	add:     key.NewBinding(key.WithKeys("a")),
	refresh: key.NewBinding(key.WithKeys("r")),
	share:   key.NewBinding(key.WithKeys("s")),
	join:    key.NewBinding(key.WithKeys("i")),
	copy:    key.NewBinding(key.WithKeys("c")),
}
