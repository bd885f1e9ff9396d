package app

import (
	"time"

	"smarttype-panel/config"
	"smarttype-panel/log"
	"smarttype-panel/service"

	tea "github.com/charmbracelet/bubbletea"
)

const statusPollInterval = 5 * time.Second

// statusMsg carries the daemon status from a poll.
type statusMsg service.Status

// statusTickMsg schedules the next periodic status poll.
type statusTickMsg struct{}

// fileChangedMsg reports an external edit of the settings file.
type fileChangedMsg struct{}

// savedMsg reports a successful save. restartErr is set when the follow-up
// daemon restart failed; the settings are on disk either way.
type savedMsg struct{ restartErr error }

// saveFailedMsg reports a failed save. Nothing was written.
type saveFailedMsg struct{ err error }

// errMsg carries an error to be surfaced in the error box.
type errMsg struct{ err error }

// hideErrMsg implements tea.Msg and clears the error box.
type hideErrMsg struct{}

// keyClearMsg removes the underline from a pressed menu key.
type keyClearMsg struct{}

// refreshStatus polls systemctl once.
func (m *home) refreshStatus() tea.Cmd {
	return func() tea.Msg {
		return statusMsg(m.controller.Status(m.ctx))
	}
}

func (m *home) tickStatus() tea.Cmd {
	return tea.Tick(statusPollInterval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

// waitForFileChange blocks until the watcher reports an external edit. It is
// re-armed after every fileChangedMsg.
func (m *home) waitForFileChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case _, ok := <-m.watcher.Changed:
			if !ok {
				return nil
			}
			return fileChangedMsg{}
		}
	}
}

// saveAndRestart persists the settings and restarts the daemon so it picks
// them up, then refreshes the status display. A failed save leaves the
// in-memory settings (and the dirty marker) untouched.
func (m *home) saveAndRestart() tea.Cmd {
	settings := m.settings
	return func() tea.Msg {
		if err := config.Save(settings); err != nil {
			return saveFailedMsg{err}
		}
		log.InfoLog.Printf("settings saved")
		// Saved even if the restart fails: the dirty marker clears and the
		// service error is surfaced on its own.
		return savedMsg{restartErr: m.controller.Restart(m.ctx)}
	}
}

// serviceAction runs one systemctl verb and then refreshes the status.
func (m *home) serviceAction(verb string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch verb {
		case "start":
			err = m.controller.Start(m.ctx)
		case "stop":
			err = m.controller.Stop(m.ctx)
		case "restart":
			err = m.controller.Restart(m.ctx)
		}
		if err != nil {
			return errMsg{err}
		}
		return statusMsg(m.controller.Status(m.ctx))
	}
}
