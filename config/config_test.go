package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smarttype-panel/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests to set up the test environment
func TestMain(m *testing.M) {
	log.Initialize()
	defer log.Close()

	exitCode := m.Run()
	os.Exit(exitCode)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.True(t, s.Enabled)
	assert.True(t, s.SmartPunctuation)
	assert.True(t, s.Autocorrect)
	assert.Equal(t, 2, s.MinWordLength)
	assert.Equal(t, "Super+Shift+A", s.Hotkey)
	assert.Len(t, s.Applications, 3)
	assert.Equal(t, "the", s.CustomTypos["hte"])
	assert.Equal(t, "because", s.CustomTypos["becuase"])

	firefox, ok := s.Applications["firefox"]
	require.True(t, ok)
	assert.True(t, firefox.SmartQuotes)

	kitty, ok := s.Applications["kitty"]
	require.True(t, ok)
	assert.False(t, kitty.SmartQuotes, "terminals default to plain quotes")
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Settings{
		Enabled:          false,
		SmartPunctuation: true,
		Autocorrect:      false,
		MinWordLength:    7,
		Hotkey:           "Ctrl+Alt+Space",
		Applications: map[string]AppRule{
			"emacs": {Enabled: true, SmartQuotes: false, Autocorrect: true},
		},
		CustomTypos: map[string]string{
			"teh": "the",
		},
	}

	require.NoError(t, SaveTo(path, want))
	got, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPartialFileDefaultsPerField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enabled: false\n"), 0644))

	s, err := LoadFrom(path)

	require.NoError(t, err)
	assert.False(t, s.Enabled)

	defaults := DefaultSettings()
	assert.Equal(t, defaults.SmartPunctuation, s.SmartPunctuation)
	assert.Equal(t, defaults.Autocorrect, s.Autocorrect)
	assert.Equal(t, defaults.MinWordLength, s.MinWordLength)
	assert.Equal(t, defaults.Hotkey, s.Hotkey)
	assert.Equal(t, defaults.Applications, s.Applications)
	assert.Equal(t, defaults.CustomTypos, s.CustomTypos)
}

func TestPresentMapReplacesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "applications:\n  vim:\n    enabled: true\n    smart_quotes: false\n    autocorrect: false\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Len(t, s.Applications, 1, "the default rows must not leak into a file that lists its own")
	assert.Contains(t, s.Applications, "vim")
}

func TestParseErrorFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not valid yaml: ["), 0644))

	s, err := LoadFrom(path)

	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Equal(t, DefaultSettings(), s)
}

func TestUnknownKeysIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "enabled: true\nfuture_feature: 42\nnested:\n  thing: [1, 2]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := LoadFrom(path)

	require.NoError(t, err)
	assert.True(t, s.Enabled)
}

func TestNormalizeClampsMinWordLength(t *testing.T) {
	t.Run("below floor", func(t *testing.T) {
		s := DefaultSettings()
		s.MinWordLength = 0
		s.Normalize()
		assert.Equal(t, MinWordLengthFloor, s.MinWordLength)
	})

	t.Run("above ceiling", func(t *testing.T) {
		s := DefaultSettings()
		s.MinWordLength = 99
		s.Normalize()
		assert.Equal(t, MinWordLengthCeiling, s.MinWordLength)
	})

	t.Run("clamped on load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min_word_length: 50\n"), 0644))

		s, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, MinWordLengthCeiling, s.MinWordLength)
	})
}

func TestNormalizeDropsEmptyKeys(t *testing.T) {
	s := DefaultSettings()
	s.Applications[""] = AppRule{Enabled: true}
	s.CustomTypos[""] = "nothing"

	s.Normalize()

	assert.NotContains(t, s.Applications, "")
	assert.NotContains(t, s.CustomTypos, "")
}

func TestDuplicateTypoKeepsLastValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s := DefaultSettings()
	s.CustomTypos["adn"] = "adn?"
	s.CustomTypos["adn"] = "and"

	require.NoError(t, SaveTo(path, s))
	got, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "and", got.CustomTypos["adn"])

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, 1, strings.Count(string(data), "adn:"), "no duplicate entries on disk")
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.yaml")

	require.NoError(t, SaveTo(path, DefaultSettings()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// A valid file must survive any subsequent save, and saves must not
	// leave temp files behind.
	require.NoError(t, SaveTo(path, DefaultSettings()))
	for i := 0; i < 5; i++ {
		s := DefaultSettings()
		s.MinWordLength = i + 1
		require.NoError(t, SaveTo(path, s))

		got, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, i+1, got.MinWordLength)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestSaveLeavesFileReadableByDaemon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveTo(path, DefaultSettings()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// CreateTemp's 0600 must not leak through to the final file.
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSaveFailureLeavesExistingFileIntact(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions do not bind as root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, SaveTo(path, DefaultSettings()))

	// An unwritable directory makes the temp file creation fail before the
	// original is touched.
	require.NoError(t, os.Chmod(dir, 0555))
	defer os.Chmod(dir, 0755)

	s := DefaultSettings()
	s.Enabled = false
	require.Error(t, SaveTo(path, s))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, got.Enabled, "previous contents survive a failed save")
}
