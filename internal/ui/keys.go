package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Home       key.Binding
	End        key.Binding
	ExtendUp   key.Binding
	ExtendDown key.Binding
	Toggle     key.Binding
	Press      key.Binding
	TouchPress key.Binding
	SelectAll  key.Binding
	Clear      key.Binding
	SwitchMode key.Binding
	Save       key.Binding
	EventLog   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		ExtendUp:   key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("⇧↑/K", "extend up")),
		ExtendDown: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("⇧↓/J", "extend down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		Press:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		TouchPress: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "touch press")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		SwitchMode: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle/replace")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		EventLog:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "event log")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Press, k.SelectAll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.ExtendUp, k.ExtendDown, k.Toggle, k.Press, k.TouchPress},
		{k.SelectAll, k.Clear, k.SwitchMode, k.Save, k.EventLog},
		{k.Help, k.Quit},
	}
}
