package app

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#F0A868"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

func helpContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("SmartType Panel"),
		"",
		"Configuration panel for the SmartType autocorrect daemon.",
		"",
		headerStyle.Render("Editing:"),
		helpKeyStyle.Render("tab")+helpDescStyle.Render("    - Switch between tabs"),
		helpKeyStyle.Render("↑/k, ↓/j")+helpDescStyle.Render("  - Move between rows"),
		helpKeyStyle.Render("←/h, →/l")+helpDescStyle.Render("  - Select a flag column (Applications)"),
		helpKeyStyle.Render("space")+helpDescStyle.Render("  - Toggle the selected flag"),
		helpKeyStyle.Render("+/-")+helpDescStyle.Render("    - Adjust the minimum word length"),
		helpKeyStyle.Render("↵")+helpDescStyle.Render("      - Edit the hotkey or the selected correction"),
		helpKeyStyle.Render("n")+helpDescStyle.Render("      - Add an application rule or correction"),
		helpKeyStyle.Render("D")+helpDescStyle.Render("      - Delete the selected row"),
		"",
		headerStyle.Render("Daemon:"),
		helpKeyStyle.Render("s")+helpDescStyle.Render("      - Save settings and restart the daemon"),
		helpKeyStyle.Render("S")+helpDescStyle.Render("      - Start the daemon"),
		helpKeyStyle.Render("X")+helpDescStyle.Render("      - Stop the daemon"),
		helpKeyStyle.Render("R")+helpDescStyle.Render("      - Restart the daemon"),
		helpKeyStyle.Render("u")+helpDescStyle.Render("      - Refresh the status indicator"),
		"",
		headerStyle.Render("Other:"),
		helpKeyStyle.Render("?")+helpDescStyle.Render("      - Show this help"),
		helpKeyStyle.Render("q")+helpDescStyle.Render("      - Quit"),
	)
}
