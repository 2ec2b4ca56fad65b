package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the simulator's key bindings.
type keyMap struct {
	NextAsset  key.Binding
	PrevAsset  key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	ResetSpeed key.Binding
	Buy        key.Binding
	Sell       key.Binding
	Backspace  key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	NextAsset: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "asset"),
	),
	PrevAsset: key.NewBinding(
		key.WithKeys("down"),
	),
	SpeedUp: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("←/→", "speed"),
	),
	SpeedDown: key.NewBinding(
		key.WithKeys("left"),
	),
	ResetSpeed: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "1x"),
	),
	Buy: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "buy"),
	),
	Sell: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sell"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "save & quit"),
	),
}
