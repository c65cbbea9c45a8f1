package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	nextField   key.Binding
	prevField   key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	esc         key.Binding
	toggle      key.Binding
	quit        key.Binding
	buildInfo   key.Binding
	style       key.Binding
	exportPNG   key.Binding
	exportJPEG  key.Binding
	exportWebP  key.Binding
	copy        key.Binding
	revealInput key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	nextField:   key.NewBinding(key.WithKeys("tab", "down")),
	prevField:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	left:        key.NewBinding(key.WithKeys("left")),
	right:       key.NewBinding(key.WithKeys("right")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	toggle:      key.NewBinding(key.WithKeys(" ")),
	quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo:   key.NewBinding(key.WithKeys("v")),
	style:       key.NewBinding(key.WithKeys("ctrl+s")),
	exportPNG:   key.NewBinding(key.WithKeys("ctrl+p")),
	exportJPEG:  key.NewBinding(key.WithKeys("ctrl+j")),
	exportWebP:  key.NewBinding(key.WithKeys("ctrl+w")),
	copy:        key.NewBinding(key.WithKeys("ctrl+y")),
	revealInput: key.NewBinding(key.WithKeys("ctrl+r")),
}
