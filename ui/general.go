package ui

import (
	"fmt"

	"smarttype-panel/config"

	"github.com/charmbracelet/lipgloss"
)

const (
	generalFieldEnabled int = iota
	generalFieldSmartPunctuation
	generalFieldAutocorrect
	generalFieldMinWordLength
	generalFieldHotkey
	generalFieldCount
)

var (
	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0A868")).
				Bold(true)
	rowStyle   = lipgloss.NewStyle()
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7EC8D8"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// GeneralPane edits the daemon-wide settings: the three feature toggles, the
// minimum word length and the toggle hotkey.
type GeneralPane struct {
	settings      *config.Settings
	selected      int
	width, height int
}

func NewGeneralPane(settings *config.Settings) *GeneralPane {
	return &GeneralPane{settings: settings}
}

func (g *GeneralPane) SetSettings(settings *config.Settings) {
	g.settings = settings
}

func (g *GeneralPane) SetSize(width, height int) {
	g.width = width
	g.height = height
}

func (g *GeneralPane) Up() {
	if g.selected > 0 {
		g.selected--
	}
}

func (g *GeneralPane) Down() {
	if g.selected < generalFieldCount-1 {
		g.selected++
	}
}

// ToggleSelected flips the selected boolean field. It reports whether the
// settings changed; the numeric and hotkey rows are not toggles.
func (g *GeneralPane) ToggleSelected() bool {
	switch g.selected {
	case generalFieldEnabled:
		g.settings.Enabled = !g.settings.Enabled
	case generalFieldSmartPunctuation:
		g.settings.SmartPunctuation = !g.settings.SmartPunctuation
	case generalFieldAutocorrect:
		g.settings.Autocorrect = !g.settings.Autocorrect
	default:
		return false
	}
	return true
}

// Increment raises min_word_length when that row is selected, up to its
// ceiling. Reports whether the settings changed.
func (g *GeneralPane) Increment() bool {
	if g.selected != generalFieldMinWordLength {
		return false
	}
	if g.settings.MinWordLength >= config.MinWordLengthCeiling {
		return false
	}
	g.settings.MinWordLength++
	return true
}

// Decrement lowers min_word_length when that row is selected, down to its
// floor. Reports whether the settings changed.
func (g *GeneralPane) Decrement() bool {
	if g.selected != generalFieldMinWordLength {
		return false
	}
	if g.settings.MinWordLength <= config.MinWordLengthFloor {
		return false
	}
	g.settings.MinWordLength--
	return true
}

// HotkeySelected reports whether the hotkey row is selected; editing it opens
// a text input overlay.
func (g *GeneralPane) HotkeySelected() bool {
	return g.selected == generalFieldHotkey
}

func (g *GeneralPane) renderToggle(label string, value bool, selected bool) string {
	check := offStyle.Render("[ ] off")
	if value {
		check = onStyle.Render("[x] on ")
	}
	style := rowStyle
	cursor := "  "
	if selected {
		style = selectedRowStyle
		cursor = "> "
	}
	return style.Render(fmt.Sprintf("%s%-22s", cursor, label)) + check
}

func (g *GeneralPane) renderValue(label, value string, selected bool) string {
	style := rowStyle
	cursor := "  "
	if selected {
		style = selectedRowStyle
		cursor = "> "
	}
	return style.Render(fmt.Sprintf("%s%-22s", cursor, label)) + valueStyle.Render(value)
}

func (g *GeneralPane) String() string {
	if g.settings == nil {
		return ""
	}

	rows := []string{
		g.renderToggle("Enable SmartType", g.settings.Enabled, g.selected == generalFieldEnabled),
		g.renderToggle("Smart punctuation", g.settings.SmartPunctuation, g.selected == generalFieldSmartPunctuation),
		g.renderToggle("Autocorrect", g.settings.Autocorrect, g.selected == generalFieldAutocorrect),
		g.renderValue("Minimum word length", fmt.Sprintf("%d", g.settings.MinWordLength), g.selected == generalFieldMinWordLength),
		g.renderValue("Toggle hotkey", g.settings.Hotkey, g.selected == generalFieldHotkey),
		"",
		hintStyle.Render("space toggles, +/- adjusts the word length, ↵ edits the hotkey"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.Place(g.width, g.height, lipgloss.Left, lipgloss.Top, content)
}
