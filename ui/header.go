package ui

import (
	"smarttype-panel/service"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0A868"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#7A7474",
		Dark:  "#9C9494",
	})
	dirtyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("216"))

	statusActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#de613e"))
	statusUnknownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// Header is the top bar: title on the left, daemon status indicator on the
// right. A dot next to the title marks unsaved changes.
type Header struct {
	width  int
	status service.Status
	dirty  bool
}

func NewHeader() *Header {
	return &Header{}
}

func (h *Header) SetSize(width int) {
	h.width = width
}

func (h *Header) SetStatus(status service.Status) {
	h.status = status
}

func (h *Header) SetDirty(dirty bool) {
	h.dirty = dirty
}

func (h *Header) statusIndicator() string {
	switch h.status {
	case service.StatusActive:
		return statusActiveStyle.Render("● Active")
	case service.StatusInactive:
		return statusInactiveStyle.Render("● Inactive")
	default:
		return statusUnknownStyle.Render("● Unknown")
	}
}

func (h *Header) String() string {
	title := titleBarStyle.Render("SmartType")
	if h.dirty {
		title += dirtyStyle.Render(" ●")
	}
	left := title + "  " + subtitleStyle.Render("autocorrect daemon configuration")
	right := h.statusIndicator()

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
