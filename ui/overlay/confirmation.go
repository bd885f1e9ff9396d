package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationOverlay is a yes/no modal for destructive actions.
type ConfirmationOverlay struct {
	// Confirmed is set when the user accepts the modal.
	Confirmed bool
	// OnConfirm is called when the user confirms.
	OnConfirm func()
	// OnCancel is called when the user dismisses the modal.
	OnCancel func()

	message string
	width   int
}

// NewConfirmationOverlay creates a confirmation modal with the given message.
func NewConfirmationOverlay(message string) *ConfirmationOverlay {
	return &ConfirmationOverlay{
		message: message,
	}
}

func (c *ConfirmationOverlay) SetWidth(width int) {
	c.width = width
}

// HandleKeyPress processes a key press. y confirms, anything else cancels.
// Returns true if the overlay should be closed.
func (c *ConfirmationOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "y", "Y":
		c.Confirmed = true
		if c.OnConfirm != nil {
			c.OnConfirm()
		}
	default:
		if c.OnCancel != nil {
			c.OnCancel()
		}
	}
	return true
}

// Render renders the confirmation overlay.
func (c *ConfirmationOverlay) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#de613e")).
		Padding(1, 2).
		Width(c.width)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		MarginTop(1).
		Render("(y to confirm, any other key to cancel)")

	return style.Render(c.message + "\n" + hint)
}
