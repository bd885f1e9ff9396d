package ui

import (
	"strings"

	"smarttype-panel/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("216"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7EC8D8"))

// menuGroup is a logical group of hotkeys rendered together, separated from
// other groups by a vertical bar.
type menuGroup struct {
	keys     []keys.KeyName
	isAction bool // action groups get a distinct highlight color
}

// menuRow is one horizontal line in the footer, composed of one or more groups.
type menuRow []menuGroup

// Menu is the hotkey footer. Its rows change with the active settings tab.
type Menu struct {
	rows          []menuRow
	height, width int
	activeTab     int

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewMenu() *Menu {
	m := &Menu{
		keyDown: -1,
	}
	m.updateOptions()
	return m
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetActiveTab updates the menu for the given settings tab.
func (m *Menu) SetActiveTab(tab int) {
	m.activeTab = tab
	m.updateOptions()
}

func (m *Menu) updateOptions() {
	navGroup := menuGroup{keys: []keys.KeyName{keys.KeyTab, keys.KeyUp, keys.KeyDown}}
	serviceGroup := menuGroup{
		keys:     []keys.KeyName{keys.KeySave, keys.KeyStart, keys.KeyStop, keys.KeyRestart, keys.KeyRefresh},
		isAction: true,
	}
	sysGroup := menuGroup{keys: []keys.KeyName{keys.KeyHelp, keys.KeyQuit}}

	var editGroup menuGroup
	switch m.activeTab {
	case GeneralTab:
		editGroup = menuGroup{keys: []keys.KeyName{keys.KeyToggle, keys.KeyEnter, keys.KeyIncrement, keys.KeyDecrement}}
	default:
		editGroup = menuGroup{keys: []keys.KeyName{keys.KeyToggle, keys.KeyNew, keys.KeyDelete}}
	}

	m.rows = []menuRow{
		{editGroup, serviceGroup},
		{navGroup, sysGroup},
	}
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// renderRow renders a single row of grouped hotkeys into a styled string.
func (m *Menu) renderRow(row menuRow) string {
	var s strings.Builder

	for gi, group := range row {
		for ki, k := range group.keys {
			binding := keys.GlobalkeyBindings[k]

			localActionStyle := actionGroupStyle
			localKeyStyle := keyStyle
			localDescStyle := descStyle
			if m.keyDown == k {
				localActionStyle = localActionStyle.Underline(true)
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			if group.isAction {
				s.WriteString(localActionStyle.Render(binding.Help().Key))
				s.WriteString(" ")
				s.WriteString(localActionStyle.Render(binding.Help().Desc))
			} else {
				s.WriteString(localKeyStyle.Render(binding.Help().Key))
				s.WriteString(" ")
				s.WriteString(localDescStyle.Render(binding.Help().Desc))
			}

			// Separator within a group
			if ki < len(group.keys)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}

		// Separator between groups
		if gi < len(row)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}

	return s.String()
}

func (m *Menu) String() string {
	var renderedRows []string
	for _, row := range m.rows {
		renderedRows = append(renderedRows, menuStyle.Render(m.renderRow(row)))
	}

	joined := lipgloss.JoinVertical(lipgloss.Center, renderedRows...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, joined)
}
