package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	ShowList   key.Binding
	ShowCreate key.Binding
	NextView   key.Binding
	Refresh    key.Binding
	Up         key.Binding
	Down       key.Binding
	Details    key.Binding
	Start      key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	Back       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		ShowList:   key.NewBinding(key.WithKeys("l", "1", "ctrl+l"), key.WithHelp("l", "quizzes")),
		ShowCreate: key.NewBinding(key.WithKeys("c", "2", "ctrl+n"), key.WithHelp("c", "create")),
		NextView:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "switch view")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Details:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Start:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start quiz")),
		NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create")),
		Back:       key.NewBinding(key.WithKeys("esc", "ctrl+l"), key.WithHelp("esc", "back")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Details, k.Start, k.Refresh, k.ShowCreate, k.Quit}
}

func (k keyMap) createHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Back, k.NextView, k.ForceQuit}
}
