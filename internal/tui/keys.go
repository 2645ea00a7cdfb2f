package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Cycle    key.Binding

	// Windows
	Launch   key.Binding
	Focus    key.Binding
	Minimize key.Binding
	Maximize key.Binding
	Close    key.Binding
	Shell    key.Binding
	Back     key.Binding

	// Extras
	CopyYAML  key.Binding
	PlayPause key.Binding
	NextSong  key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Cycle},
		{k.Launch, k.Focus, k.Minimize, k.Maximize, k.Close},
		{k.Shell, k.Back, k.CopyYAML, k.PlayPause, k.NextSong},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "raise next window"),
		),
		Launch: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open app"),
		),
		Focus: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "focus"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "maximize"),
		),
		Close: key.NewBinding(
			key.WithKeys("w", "delete"),
			key.WithHelp("w", "close"),
		),
		Shell: key.NewBinding(
			key.WithKeys(":", "t"),
			key.WithHelp(":", "terminal"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		CopyYAML: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy windows as YAML"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause music"),
		),
		NextSong: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next song"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
