package teaui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Remove    key.Binding
	Clear     key.Binding
	Filter    key.Binding
	Input     key.Binding
	Submit    key.Binding
	Switch    key.Binding
	Back      key.Binding
	Yes       key.Binding
	No        key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter/e", "edit item")),
		Remove:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "remove item")),
		Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Input:     key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a/i", "add item")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Switch:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
		Yes:       key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:        key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Edit, k.Remove, k.Filter, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Remove},
		{k.Input, k.Submit, k.Filter, k.Back},
		{k.Clear, k.Switch, k.Quit, k.ForceQuit},
	}
}

// Bindings lists every key the UI understands, for printed legends.
func Bindings() []key.Binding {
	k := defaultKeyMap()
	var out []key.Binding
	for _, group := range k.FullHelp() {
		out = append(out, group...)
	}
	out = append(out, k.Yes, k.No)
	return out
}
