package ui

import (
	"testing"

	"smarttype-panel/config"

	"github.com/stretchr/testify/assert"
)

func TestGeneralPaneToggles(t *testing.T) {
	s := config.DefaultSettings()
	p := NewGeneralPane(s)

	assert.True(t, p.ToggleSelected())
	assert.False(t, s.Enabled)

	p.Down()
	assert.True(t, p.ToggleSelected())
	assert.False(t, s.SmartPunctuation)

	p.Down()
	assert.True(t, p.ToggleSelected())
	assert.False(t, s.Autocorrect)
}

func TestGeneralPaneMinWordLengthBounds(t *testing.T) {
	s := config.DefaultSettings()
	p := NewGeneralPane(s)

	// Move to the min word length row.
	p.Down()
	p.Down()
	p.Down()

	// Not a toggle row.
	assert.False(t, p.ToggleSelected())

	s.MinWordLength = config.MinWordLengthCeiling
	assert.False(t, p.Increment(), "cannot exceed the ceiling")

	s.MinWordLength = config.MinWordLengthFloor
	assert.False(t, p.Decrement(), "cannot go below the floor")

	s.MinWordLength = 5
	assert.True(t, p.Increment())
	assert.Equal(t, 6, s.MinWordLength)
	assert.True(t, p.Decrement())
	assert.Equal(t, 5, s.MinWordLength)
}

func TestGeneralPaneHotkeyRow(t *testing.T) {
	p := NewGeneralPane(config.DefaultSettings())

	assert.False(t, p.HotkeySelected())
	for i := 0; i < 10; i++ {
		p.Down() // clamps at the last row
	}
	assert.True(t, p.HotkeySelected())

	// Increment only applies to the word length row.
	assert.False(t, p.Increment())
}
