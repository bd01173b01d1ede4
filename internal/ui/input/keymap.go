package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the explorer reacts to.
type KeyMap struct {
	// Pane navigation
	PanLeft   key.Binding
	PanRight  key.Binding
	PanUp     key.Binding
	PanDown   key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Reset     key.Binding
	Palette   key.Binding
	Fractal   key.Binding
	MoreIters key.Binding
	LessIters key.Binding

	// Pane tree
	SplitLeft  key.Binding
	SplitRight key.Binding
	SplitUp    key.Binding
	SplitDown  key.Binding
	Close      key.Binding
	Cycle      key.Binding
	Select     key.Binding

	// Modal
	Help key.Binding
	Quit key.Binding
	Yes  key.Binding
	No   key.Binding

	// Text entry
	Submit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

// ShortHelp returns the bindings shown in the header.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitUp, k.Close, k.Cycle, k.Select, k.Reset, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help popup, grouped. The
// per-direction pan and split bindings are represented by PanUp and SplitUp.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PanUp, k.ZoomIn, k.ZoomOut, k.Palette, k.Fractal, k.MoreIters, k.LessIters, k.Reset},
		{k.SplitUp, k.Close, k.Cycle, k.Select},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PanLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "pan right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("arrows", "pan view"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "pan down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in (center)"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out (center)"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Palette: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "cycle palette"),
		),
		Fractal: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle fractal type"),
		),
		MoreIters: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "increase iterations"),
		),
		LessIters: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "decrease iterations"),
		),
		SplitLeft: key.NewBinding(
			key.WithKeys("shift+left", "L"),
			key.WithHelp("shift+←", "split left"),
		),
		SplitRight: key.NewBinding(
			key.WithKeys("shift+right", "R"),
			key.WithHelp("shift+→", "split right"),
		),
		SplitUp: key.NewBinding(
			key.WithKeys("shift+up", "U"),
			key.WithHelp("shift+arrow", "split pane"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys("shift+down", "D"),
			key.WithHelp("shift+↓", "split down"),
		),
		Close: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("shift+x", "close pane"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle focus"),
		),
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "focus pane #"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
	}
}

// HelpEntry is one row of the help popup.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpEntries flattens FullHelp into popup rows.
func (k KeyMap) HelpEntries() []HelpEntry {
	entries := []HelpEntry{{Key: "mouse wheel", Desc: "zoom in/out (cursor)"}}
	for _, group := range k.FullHelp() {
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			entries = append(entries, HelpEntry{Key: b.Help().Key, Desc: b.Help().Desc})
		}
	}
	return entries
}
