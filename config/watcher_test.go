package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSettingsEdit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	require.NoError(t, SaveTo(path, DefaultSettings()))

	w, err := NewWatcherAt(path)
	require.NoError(t, err)
	defer w.Close()

	got := make(chan struct{})
	go func() {
		<-w.Changed
		close(got)
	}()

	// Give the receiver a moment to block before triggering the event.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("enabled: false\n"), 0644))

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification for a settings file edit")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	require.NoError(t, SaveTo(path, DefaultSettings()))

	w, err := NewWatcherAt(path)
	require.NoError(t, err)
	defer w.Close()

	got := make(chan struct{}, 1)
	go func() {
		<-w.Changed
		got <- struct{}{}
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))

	select {
	case <-got:
		t.Fatal("unrelated file must not trigger a notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSurvivesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	require.NoError(t, SaveTo(path, DefaultSettings()))

	w, err := NewWatcherAt(path)
	require.NoError(t, err)
	defer w.Close()

	got := make(chan struct{})
	go func() {
		<-w.Changed
		close(got)
	}()

	// SaveTo goes through a temp file and rename, which replaces the inode.
	time.Sleep(50 * time.Millisecond)
	s := DefaultSettings()
	s.Enabled = false
	require.NoError(t, SaveTo(path, s))

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification for an atomic replace")
	}
}
