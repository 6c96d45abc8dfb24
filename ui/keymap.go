package ui

import "github.com/charmbracelet/bubbles/key"

// presets are common device viewports reachable with the number keys.
var presets = []struct {
	Name          string
	Width, Height int
}{
	{"phone", 320, 568},
	{"phone-lg", 375, 667},
	{"tablet", 768, 1024},
	{"laptop", 1280, 800},
	{"desktop", 1920, 1080},
}

type keyMap struct {
	Narrower     key.Binding
	Wider        key.Binding
	Shorter      key.Binding
	Taller       key.Binding
	NarrowerFast key.Binding
	WiderFast    key.Binding
	ShorterFast  key.Binding
	TallerFast   key.Binding
	Preset       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Narrower: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "narrower"),
		),
		Wider: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "wider"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "shorter"),
		),
		Taller: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "taller"),
		),
		NarrowerFast: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←/H", "narrower x32"),
		),
		WiderFast: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→/L", "wider x32"),
		),
		ShorterFast: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓/J", "shorter x32"),
		),
		TallerFast: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑/K", "taller x32"),
		),
		Preset: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "device preset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Narrower, k.Wider, k.Shorter, k.Taller, k.Preset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Narrower, k.Wider, k.Shorter, k.Taller},
		{k.NarrowerFast, k.WiderFast, k.ShorterFast, k.TallerFast},
		{k.Preset, k.Help, k.Quit},
	}
}
