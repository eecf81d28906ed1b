package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// ReplayKeyMap defines the key bindings for the replay screen.
type ReplayKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Reset    key.Binding
	Win      key.Binding
	Auto     key.Binding
	NextCard key.Binding
	PrevCard key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Auto, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Reset, k.Win},
		{k.Auto, k.NextCard, k.PrevCard},
		{k.Help, k.Quit},
	}
}

// DefaultReplayKeyMap returns default key bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Next: key.NewBinding(
			key.WithKeys(" ", "n", "right", "l"),
			key.WithHelp("space/n", "next call"),
		),
		Prev: key.NewBinding(
			key.WithKeys("b", "left", "h"),
			key.WithHelp("b", "undo call"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Win: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "jump to bingo"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoplay"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next card"),
		),
		PrevCard: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev card"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
