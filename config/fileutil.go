package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// settingsFilePerm is the mode of the settings file. It must stay readable by
// the daemon, which runs as the same user.
const settingsFilePerm = 0644

// atomicWriteFile writes the settings document through a temp file in the same
// directory and renames it into place. The daemon can read the file at any
// moment, so it must never observe a partial write; the rename also means a
// crash mid-save leaves the previous document intact.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	// CreateTemp uses 0600; the daemon needs to read the result.
	if err = os.Chmod(tmpPath, settingsFilePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set settings file permissions: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
