package tui

import "github.com/charmbracelet/bubbles/key"

func Key(help string, keyboardKey ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keyboardKey...), key.WithHelp(keyboardKey[0], help))
}

type keyMap struct {
	TapMode  key.Binding
	HoldMode key.Binding
	Longer   key.Binding
	Shorter  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Write    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	TapMode:  Key("tap tool", "t"),
	HoldMode: Key("hold tool", "h"),
	Longer:   Key("+1s (clears)", "+", "="),
	Shorter:  Key("-1s (clears)", "-"),
	Up:       Key("scroll up", "up", "k"),
	Down:     Key("scroll down", "down", "j"),
	PageUp:   Key("page up", "pgup"),
	PageDown: Key("page down", "pgdown"),
	Write:    Key("write chart", "w"),
	Help:     Key("help", "?"),
	Quit:     Key("quit", "q", "ctrl+c"),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TapMode, k.HoldMode, k.Write, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TapMode, k.HoldMode, k.Longer, k.Shorter},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Write, k.Help, k.Quit},
	}
}
