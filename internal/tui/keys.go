package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	lock      key.Binding
	newItem   key.Binding
	delete    key.Binding
	copy      key.Binding
	copyUser  key.Binding
	settings  key.Binding
	ideas     key.Binding
	newVault  key.Binding
	importKey key.Binding
	bioUnlock key.Binding
	biometric key.Binding
	export    key.Binding
	suggest   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	lock:      key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	settings:  key.NewBinding(key.WithKeys("s")),
	ideas:     key.NewBinding(key.WithKeys("g")),
	newVault:  key.NewBinding(key.WithKeys("ctrl+n")),
	importKey: key.NewBinding(key.WithKeys("ctrl+o")),
	bioUnlock: key.NewBinding(key.WithKeys("ctrl+b")),
	biometric: key.NewBinding(key.WithKeys("b")),
	export:    key.NewBinding(key.WithKeys("e")),
	suggest:   key.NewBinding(key.WithKeys("ctrl+t")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
