package config

import (
	"fmt"
	"os"
	"path/filepath"

	"smarttype-panel/log"

	"gopkg.in/yaml.v3"
)

const SettingsFileName = "config.yaml"

// Bounds for min_word_length. Values outside are clamped, not rejected.
const (
	MinWordLengthFloor   = 1
	MinWordLengthCeiling = 10
)

// AppRule is a per-application override of the daemon's feature flags.
type AppRule struct {
	Enabled     bool `yaml:"enabled"`
	SmartQuotes bool `yaml:"smart_quotes"`
	Autocorrect bool `yaml:"autocorrect"`
}

// Settings is the complete user-editable configuration of the SmartType
// daemon. Field names and YAML tags mirror the daemon's schema exactly so the
// file round-trips between the panel and the daemon.
type Settings struct {
	Enabled          bool               `yaml:"enabled"`
	SmartPunctuation bool               `yaml:"smart_punctuation"`
	Autocorrect      bool               `yaml:"autocorrect"`
	MinWordLength    int                `yaml:"min_word_length"`
	Hotkey           string             `yaml:"hotkey"`
	Applications     map[string]AppRule `yaml:"applications"`
	CustomTypos      map[string]string  `yaml:"custom_typos"`
}

// settingsFile is the decode target for the on-disk document. Pointer fields
// distinguish "key absent" from a zero value so that missing keys default
// field-by-field instead of whole-document. Unknown keys are ignored.
type settingsFile struct {
	Enabled          *bool              `yaml:"enabled"`
	SmartPunctuation *bool              `yaml:"smart_punctuation"`
	Autocorrect      *bool              `yaml:"autocorrect"`
	MinWordLength    *int               `yaml:"min_word_length"`
	Hotkey           *string            `yaml:"hotkey"`
	Applications     map[string]AppRule `yaml:"applications"`
	CustomTypos      map[string]string  `yaml:"custom_typos"`
}

// ParseError reports an unreadable settings file. Load recovers by returning
// defaults; the caller should surface the warning since the file is
// user-editable state.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse settings file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DefaultSettings returns the built-in baseline: every feature on, minimum
// word length 2, and a few sample rows so the tables are not empty on first
// run. Smart quotes are off for terminals where they corrupt shell input.
func DefaultSettings() *Settings {
	return &Settings{
		Enabled:          true,
		SmartPunctuation: true,
		Autocorrect:      true,
		MinWordLength:    2,
		Hotkey:           "Super+Shift+A",
		Applications: map[string]AppRule{
			"firefox":   {Enabled: true, SmartQuotes: true, Autocorrect: true},
			"qterminal": {Enabled: true, SmartQuotes: false, Autocorrect: true},
			"kitty":     {Enabled: true, SmartQuotes: false, Autocorrect: true},
		},
		CustomTypos: map[string]string{
			"hte":     "the",
			"becuase": "because",
		},
	}
}

// GetConfigDir returns the directory holding the settings file. It is the
// daemon's directory, not the panel's own.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "smarttype"), nil
}

// SettingsPath returns the full path of the settings file.
func SettingsPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// Load reads the settings file from the default path. A missing file is not
// an error: the built-in defaults are returned. An unparsable file also
// yields defaults, together with a *ParseError the caller should display.
func Load() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		log.WarningLog.Printf("falling back to default settings: %v", err)
		return DefaultSettings(), nil
	}
	return LoadFrom(path)
}

// LoadFrom is Load against an explicit path.
func LoadFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read settings file: %v", err)
		}
		return DefaultSettings(), nil
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return DefaultSettings(), &ParseError{Path: path, Err: err}
	}

	s := DefaultSettings()
	if file.Enabled != nil {
		s.Enabled = *file.Enabled
	}
	if file.SmartPunctuation != nil {
		s.SmartPunctuation = *file.SmartPunctuation
	}
	if file.Autocorrect != nil {
		s.Autocorrect = *file.Autocorrect
	}
	if file.MinWordLength != nil {
		s.MinWordLength = *file.MinWordLength
	}
	if file.Hotkey != nil {
		s.Hotkey = *file.Hotkey
	}
	// A present mapping replaces the default one wholesale. Merging would
	// resurrect deleted rows on every load.
	if file.Applications != nil {
		s.Applications = file.Applications
	}
	if file.CustomTypos != nil {
		s.CustomTypos = file.CustomTypos
	}

	s.Normalize()
	return s, nil
}

// Save normalizes the settings and writes them to the default path, creating
// the config directory if needed. The write is atomic: the previous file
// stays intact if the process dies mid-write.
func Save(s *Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return SaveTo(path, s)
}

// SaveTo is Save against an explicit path.
func SaveTo(path string, s *Settings) error {
	s.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := atomicWriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Normalize enforces the settings invariants in place: min_word_length is
// clamped into its range and empty map keys are dropped. Clamping rather than
// rejecting keeps a hand-edited file usable.
func (s *Settings) Normalize() {
	if s.MinWordLength < MinWordLengthFloor {
		s.MinWordLength = MinWordLengthFloor
	}
	if s.MinWordLength > MinWordLengthCeiling {
		s.MinWordLength = MinWordLengthCeiling
	}
	if s.Applications == nil {
		s.Applications = make(map[string]AppRule)
	}
	if s.CustomTypos == nil {
		s.CustomTypos = make(map[string]string)
	}
	delete(s.Applications, "")
	delete(s.CustomTypos, "")
}
