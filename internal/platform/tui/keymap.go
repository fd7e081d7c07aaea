package tui

import "github.com/charmbracelet/bubbles/key"

// PlayKeyMap defines the key bindings for the scoring screen.
type PlayKeyMap struct {
	Submit key.Binding
	Undo   key.Binding
	Reset  key.Binding
	Higher key.Binding
	Lower  key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Undo, k.Higher, k.Lower, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Undo, k.Reset},
		{k.Higher, k.Lower},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultPlayKeyMap returns default key bindings. The direction keys only
// apply to high-low games.
func DefaultPlayKeyMap(highLow bool) PlayKeyMap {
	k := PlayKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit throw"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new game"),
		),
		Higher: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "call higher"),
		),
		Lower: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "call lower"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
	k.Higher.SetEnabled(highLow)
	k.Lower.SetEnabled(highLow)
	return k
}

// SetupKeyMap defines the key bindings for the new game screen.
type SetupKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Next      key.Binding
	Prev      key.Binding
	AddPlayer key.Binding
	DelPlayer key.Binding
	Start     key.Binding
	History   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Next, k.AddPlayer, k.DelPlayer, k.Start, k.History, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.History},
		{k.Next, k.Prev, k.AddPlayer, k.DelPlayer, k.Start},
		{k.Back, k.Quit},
	}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		AddPlayer: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add player"),
		),
		DelPlayer: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove player"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pickerKeys enables the bindings used while choosing a mode.
func (k SetupKeyMap) pickerKeys() SetupKeyMap {
	k.Up.SetEnabled(true)
	k.Down.SetEnabled(true)
	k.Select.SetEnabled(true)
	k.History.SetEnabled(true)
	k.Quit.SetKeys("ctrl+c", "q")
	k.Quit.SetHelp("q", "quit")
	k.Next.SetEnabled(false)
	k.Prev.SetEnabled(false)
	k.AddPlayer.SetEnabled(false)
	k.DelPlayer.SetEnabled(false)
	k.Start.SetEnabled(false)
	return k
}

// formKeys enables the bindings used while typing names. Letters belong to
// the text inputs, so quitting falls back to ctrl+c.
func (k SetupKeyMap) formKeys() SetupKeyMap {
	k.Up.SetEnabled(false)
	k.Down.SetEnabled(false)
	k.Select.SetEnabled(false)
	k.History.SetEnabled(false)
	k.Quit.SetKeys("ctrl+c")
	k.Quit.SetHelp("ctrl+c", "quit")
	k.Next.SetEnabled(true)
	k.Prev.SetEnabled(true)
	k.AddPlayer.SetEnabled(true)
	k.DelPlayer.SetEnabled(true)
	k.Start.SetEnabled(true)
	return k
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
