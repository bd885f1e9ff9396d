package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyTab // Tab switches between the settings tabs.
	KeyToggle
	KeyEnter
	KeyNew
	KeyDelete
	KeyIncrement
	KeyDecrement

	KeySave
	KeyStart
	KeyStop
	KeyRestart
	KeyRefresh

	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":    KeyUp,
	"k":     KeyUp,
	"down":  KeyDown,
	"j":     KeyDown,
	"left":  KeyLeft,
	"h":     KeyLeft,
	"right": KeyRight,
	"l":     KeyRight,
	"tab":   KeyTab,
	" ":     KeyToggle,
	"space": KeyToggle,
	"enter": KeyEnter,
	"n":     KeyNew,
	"D":     KeyDelete,
	"+":     KeyIncrement,
	"=":     KeyIncrement,
	"-":     KeyDecrement,
	"_":     KeyDecrement,
	"s":     KeySave,
	"S":     KeyStart,
	"X":     KeyStop,
	"R":     KeyRestart,
	"u":     KeyRefresh,
	"?":     KeyHelp,
	"q":     KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "column"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "column"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch tab"),
	),
	KeyToggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "toggle"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "edit"),
	),
	KeyNew: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add"),
	),
	KeyDelete: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete"),
	),
	KeyIncrement: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "increase"),
	),
	KeyDecrement: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "decrease"),
	),
	KeySave: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save & restart"),
	),
	KeyStart: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "start daemon"),
	),
	KeyStop: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "stop daemon"),
	),
	KeyRestart: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "restart daemon"),
	),
	KeyRefresh: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "refresh status"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}
