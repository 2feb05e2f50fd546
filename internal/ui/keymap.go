package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap 浏览与编辑模式的按键绑定
type keyMap struct {
	New         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Select      key.Binding
	TogglePanel key.Binding
	Quit        key.Binding

	// 编辑器内
	Submit      key.Binding
	Cancel      key.Binding
	SwitchFocus key.Binding
	DeleteOpen  key.Binding

	// 删除确认
	Confirm key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "panel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch field"),
		),
		DeleteOpen: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete note"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "confirm"),
		),
	}
}
