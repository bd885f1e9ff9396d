package ui

import (
	"sort"

	"smarttype-panel/config"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TyposPane is the editable table of custom typo corrections.
type TyposPane struct {
	settings      *config.Settings
	tbl           table.Model
	width, height int
}

func NewTyposPane(settings *config.Settings) *TyposPane {
	tbl := table.New(
		table.WithColumns(typoColumns(0)),
		table.WithFocused(true),
		table.WithStyles(tableStyles()),
	)
	p := &TyposPane{settings: settings, tbl: tbl}
	p.Reload()
	return p
}

func typoColumns(width int) []table.Column {
	half := (width - 2) / 2
	if half < 12 {
		half = 12
	}
	return []table.Column{
		{Title: "Typo", Width: half},
		{Title: "Correction", Width: half},
	}
}

func (p *TyposPane) SetSettings(settings *config.Settings) {
	p.settings = settings
	p.Reload()
}

func (p *TyposPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.tbl.SetWidth(width)
	p.tbl.SetHeight(height - 1)
	p.tbl.SetColumns(typoColumns(width))
}

// Reload rebuilds the table rows from the settings, keeping the cursor on the
// same index where possible.
func (p *TyposPane) Reload() {
	typos := make([]string, 0, len(p.settings.CustomTypos))
	for typo := range p.settings.CustomTypos {
		typos = append(typos, typo)
	}
	sort.Strings(typos)

	rows := make([]table.Row, 0, len(typos))
	for _, typo := range typos {
		rows = append(rows, table.Row{typo, p.settings.CustomTypos[typo]})
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

func (p *TyposPane) Up()   { p.tbl.MoveUp(1) }
func (p *TyposPane) Down() { p.tbl.MoveDown(1) }

// SelectedTypo returns the typo of the selected row.
func (p *TyposPane) SelectedTypo() (string, bool) {
	row := p.tbl.SelectedRow()
	if row == nil {
		return "", false
	}
	return row[0], true
}

func (p *TyposPane) String() string {
	if len(p.settings.CustomTypos) == 0 {
		empty := hintStyle.Render("No custom corrections. Press n to add one.")
		return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, empty)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.tbl.View(),
		hintStyle.Render("↵ edits the correction for the selected typo"),
	)
}
