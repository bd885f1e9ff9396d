package config

import (
	"fmt"
	"path/filepath"

	"smarttype-panel/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports external edits to the settings file, so the panel can pick
// up changes made by the daemon or a text editor while it is open.
type Watcher struct {
	fs   *fsnotify.Watcher
	path string

	// Changed receives one value per settings file modification. The channel
	// is unbuffered; slow consumers coalesce naturally because the pump drops
	// events while nobody is receiving.
	Changed chan struct{}
	done    chan struct{}
}

// NewWatcher watches the settings file at the default path.
func NewWatcher() (*Watcher, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	return NewWatcherAt(path)
}

// NewWatcherAt watches the settings file at an explicit path. The parent
// directory is watched rather than the file itself: atomic saves replace the
// inode, which would silently detach a watch on the file.
func NewWatcherAt(path string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{
		fs:      fs,
		path:    path,
		Changed: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

func (w *Watcher) pump() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.Changed <- struct{}{}:
			case <-w.done:
				return
			default:
				// Nobody listening right now. The next poll reloads anyway.
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.WarningLog.Printf("config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
