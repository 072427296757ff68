package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Select   key.Binding
	Pass     key.Binding
	Category key.Binding
	Ranking  key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Pass, k.Category, k.Ranking, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Select: key.NewBinding(
		key.WithKeys("s", "right"),
		key.WithHelp("s/→", "select"),
	),
	Pass: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p/←", "pass"),
	),
	Category: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "category"),
	),
	Ranking: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "ranking"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
