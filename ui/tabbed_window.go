package ui

import (
	"github.com/charmbracelet/lipgloss"
)

func tabBorderWithBottom(left, middle, right string) lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = left
	border.Bottom = middle
	border.BottomRight = right
	return border
}

var (
	inactiveTabBorder = tabBorderWithBottom("┴", "─", "┴")
	activeTabBorder   = tabBorderWithBottom("┘", " ", "└")
	highlightColor    = lipgloss.AdaptiveColor{Light: "#F0A868", Dark: "#F0A868"}
	inactiveTabStyle  = lipgloss.NewStyle().
				Border(inactiveTabBorder, true).
				BorderForeground(highlightColor).
				AlignHorizontal(lipgloss.Center)
	activeTabStyle = inactiveTabStyle.
			Border(activeTabBorder, true).
			AlignHorizontal(lipgloss.Center)
	windowBorder = lipgloss.RoundedBorder()
	windowStyle  = lipgloss.NewStyle().
			BorderForeground(highlightColor).
			Border(windowBorder, false, true, true, true)
)

const (
	GeneralTab int = iota
	ApplicationsTab
	CorrectionsTab
)

// Pane is one tab's content area.
type Pane interface {
	SetSize(width, height int)
	String() string
}

// TabbedWindow has tabs at the top of a pane which can be selected. The tabs
// take up one rune of height.
type TabbedWindow struct {
	tabs []string

	activeTab int
	height    int
	width     int

	general      Pane
	applications Pane
	corrections  Pane
}

func NewTabbedWindow(general, applications, corrections Pane) *TabbedWindow {
	return &TabbedWindow{
		tabs: []string{
			"General",
			"Applications",
			"Custom Corrections",
		},
		general:      general,
		applications: applications,
		corrections:  corrections,
	}
}

func (w *TabbedWindow) SetSize(width, height int) {
	w.width = width
	w.height = height

	// Content height is the window minus the tab bar and window frame.
	tabHeight := activeTabStyle.GetVerticalFrameSize() + 1
	contentHeight := height - tabHeight - windowStyle.GetVerticalFrameSize()
	contentWidth := width - windowStyle.GetHorizontalFrameSize()

	w.general.SetSize(contentWidth, contentHeight)
	w.applications.SetSize(contentWidth, contentHeight)
	w.corrections.SetSize(contentWidth, contentHeight)
}

// Toggle cycles to the next tab.
func (w *TabbedWindow) Toggle() {
	w.activeTab = (w.activeTab + 1) % len(w.tabs)
}

func (w *TabbedWindow) ActiveTab() int {
	return w.activeTab
}

func (w *TabbedWindow) String() string {
	if w.width == 0 || w.height == 0 {
		return ""
	}

	var renderedTabs []string
	tabWidth := w.width / len(w.tabs)
	lastTabWidth := w.width - tabWidth*(len(w.tabs)-1)

	for i, t := range w.tabs {
		style := inactiveTabStyle
		if i == w.activeTab {
			style = activeTabStyle
		}
		width := tabWidth
		if i == len(w.tabs)-1 {
			width = lastTabWidth
		}
		style = style.Width(width - style.GetHorizontalFrameSize())
		renderedTabs = append(renderedTabs, style.Render(t))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	var content string
	switch w.activeTab {
	case GeneralTab:
		content = w.general.String()
	case ApplicationsTab:
		content = w.applications.String()
	case CorrectionsTab:
		content = w.corrections.String()
	}

	window := windowStyle.Width(w.width - windowStyle.GetHorizontalFrameSize()).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, row, window)
}
