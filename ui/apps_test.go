package ui

import (
	"testing"

	"smarttype-panel/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *config.Settings {
	return &config.Settings{
		Enabled:       true,
		MinWordLength: 2,
		Applications: map[string]config.AppRule{
			"kitty":   {Enabled: true, SmartQuotes: false, Autocorrect: true},
			"firefox": {Enabled: true, SmartQuotes: true, Autocorrect: true},
		},
		CustomTypos: map[string]string{
			"teh": "the",
			"adn": "and",
		},
	}
}

func TestAppsPaneRowsAreSorted(t *testing.T) {
	p := NewAppsPane(testSettings())
	p.SetSize(80, 20)

	name, ok := p.SelectedApp()
	require.True(t, ok)
	assert.Equal(t, "firefox", name, "rows sort by application name")

	p.Down()
	name, ok = p.SelectedApp()
	require.True(t, ok)
	assert.Equal(t, "kitty", name)
}

func TestAppsPaneToggleFlipsSelectedColumn(t *testing.T) {
	s := testSettings()
	p := NewAppsPane(s)
	p.SetSize(80, 20)

	// First column is Enabled.
	require.True(t, p.ToggleSelected())
	assert.False(t, s.Applications["firefox"].Enabled)

	p.Right()
	require.True(t, p.ToggleSelected())
	assert.False(t, s.Applications["firefox"].SmartQuotes)

	p.Right()
	require.True(t, p.ToggleSelected())
	assert.False(t, s.Applications["firefox"].Autocorrect)

	// Rightmost column stays put.
	p.Right()
	require.True(t, p.ToggleSelected())
	assert.True(t, s.Applications["firefox"].Autocorrect)
}

func TestAppsPaneToggleOnEmptyTable(t *testing.T) {
	s := testSettings()
	s.Applications = map[string]config.AppRule{}
	p := NewAppsPane(s)
	p.SetSize(80, 20)

	assert.False(t, p.ToggleSelected())
	_, ok := p.SelectedApp()
	assert.False(t, ok)
}

func TestAppsPaneReloadKeepsCursorInRange(t *testing.T) {
	s := testSettings()
	p := NewAppsPane(s)
	p.SetSize(80, 20)

	p.Down() // kitty, last row
	delete(s.Applications, "kitty")
	p.Reload()

	name, ok := p.SelectedApp()
	require.True(t, ok)
	assert.Equal(t, "firefox", name)
}

func TestTyposPaneSortedAndSelectable(t *testing.T) {
	p := NewTyposPane(testSettings())
	p.SetSize(80, 20)

	typo, ok := p.SelectedTypo()
	require.True(t, ok)
	assert.Equal(t, "adn", typo)

	p.Down()
	typo, ok = p.SelectedTypo()
	require.True(t, ok)
	assert.Equal(t, "teh", typo)
}
