package ui

import (
	"sort"

	"smarttype-panel/config"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	appColEnabled int = iota
	appColSmartQuotes
	appColAutocorrect
	appColCount
)

var appColumnTitles = [appColCount]string{"Enabled", "Smart Quotes", "Autocorrect"}

func checkCell(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("#3C3C3C")).
		Bold(false)
	return s
}

// AppsPane is the editable table of per-application rules. Rows are sorted by
// application name; the selected column marks which flag the space key flips.
type AppsPane struct {
	settings      *config.Settings
	tbl           table.Model
	selectedCol   int
	width, height int
}

func NewAppsPane(settings *config.Settings) *AppsPane {
	tbl := table.New(
		table.WithColumns(appColumns(0, appColEnabled)),
		table.WithFocused(true),
		table.WithStyles(tableStyles()),
	)
	p := &AppsPane{settings: settings, tbl: tbl}
	p.Reload()
	return p
}

func appColumns(width int, selectedCol int) []table.Column {
	nameWidth := width - 3*16 - 2
	if nameWidth < 12 {
		nameWidth = 12
	}
	cols := []table.Column{{Title: "Application", Width: nameWidth}}
	for i, title := range appColumnTitles {
		if i == selectedCol {
			title = "▸ " + title
		}
		cols = append(cols, table.Column{Title: title, Width: 16})
	}
	return cols
}

func (p *AppsPane) SetSettings(settings *config.Settings) {
	p.settings = settings
	p.Reload()
}

func (p *AppsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.tbl.SetWidth(width)
	p.tbl.SetHeight(height - 1)
	p.tbl.SetColumns(appColumns(width, p.selectedCol))
}

// Reload rebuilds the table rows from the settings, keeping the cursor on the
// same index where possible.
func (p *AppsPane) Reload() {
	names := make([]string, 0, len(p.settings.Applications))
	for name := range p.settings.Applications {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		rule := p.settings.Applications[name]
		rows = append(rows, table.Row{
			name,
			checkCell(rule.Enabled),
			checkCell(rule.SmartQuotes),
			checkCell(rule.Autocorrect),
		})
	}

	cursor := p.tbl.Cursor()
	p.tbl.SetRows(rows)
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor >= 0 {
		p.tbl.SetCursor(cursor)
	}
}

func (p *AppsPane) Up()   { p.tbl.MoveUp(1) }
func (p *AppsPane) Down() { p.tbl.MoveDown(1) }

func (p *AppsPane) Left() {
	if p.selectedCol > 0 {
		p.selectedCol--
		p.tbl.SetColumns(appColumns(p.width, p.selectedCol))
	}
}

func (p *AppsPane) Right() {
	if p.selectedCol < appColCount-1 {
		p.selectedCol++
		p.tbl.SetColumns(appColumns(p.width, p.selectedCol))
	}
}

// SelectedApp returns the application name of the selected row.
func (p *AppsPane) SelectedApp() (string, bool) {
	row := p.tbl.SelectedRow()
	if row == nil {
		return "", false
	}
	return row[0], true
}

// ToggleSelected flips the selected column's flag for the selected row.
// Reports whether the settings changed.
func (p *AppsPane) ToggleSelected() bool {
	name, ok := p.SelectedApp()
	if !ok {
		return false
	}
	rule := p.settings.Applications[name]
	switch p.selectedCol {
	case appColEnabled:
		rule.Enabled = !rule.Enabled
	case appColSmartQuotes:
		rule.SmartQuotes = !rule.SmartQuotes
	case appColAutocorrect:
		rule.Autocorrect = !rule.Autocorrect
	}
	p.settings.Applications[name] = rule
	p.Reload()
	return true
}

func (p *AppsPane) String() string {
	if len(p.settings.Applications) == 0 {
		empty := hintStyle.Render("No application rules. Press n to add one.")
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, empty)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.tbl.View(),
		hintStyle.Render("←/→ selects a flag, space flips it"),
	)
}
