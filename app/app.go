package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smarttype-panel/config"
	"smarttype-panel/keys"
	"smarttype-panel/log"
	"smarttype-panel/service"
	"smarttype-panel/ui"
	"smarttype-panel/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context) error {
	h, err := newHome(ctx)
	if err != nil {
		return err
	}
	defer h.close()

	p := tea.NewProgram(h, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the help screen is displayed.
	stateHelp
	// stateConfirm is the state when a confirmation modal is displayed.
	stateConfirm
	// stateInputAppName is the state when the user is naming a new application rule.
	stateInputAppName
	// stateInputTypo is the first step of adding a correction: entering the typo.
	stateInputTypo
	// stateInputCorrection is the second step: entering the replacement text.
	stateInputCorrection
	// stateEditHotkey is the state when the user is editing the toggle hotkey.
	stateEditHotkey
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// settings is the single mutable Settings value for this edit session.
	// Panes render from it and edits mutate it; Save persists it wholesale.
	settings *config.Settings
	// dirty is set on the first edit and cleared by a successful save.
	dirty bool
	// selfSave is set while our own save is in flight so the watcher event
	// from that write is not mistaken for an external edit.
	selfSave bool
	// controller drives the daemon's systemd unit
	controller *service.Controller
	// watcher reports external edits to the settings file
	watcher *config.Watcher

	// -- State --

	// state is the current discrete state of the application
	state state
	// pendingTypo holds the typo text between the two input steps of adding a
	// correction.
	pendingTypo string
	// editingTypo is the existing typo whose correction is being edited, or "".
	editingTypo string

	// -- UI Components --

	header       *ui.Header
	tabbedWindow *ui.TabbedWindow
	general      *ui.GeneralPane
	apps         *ui.AppsPane
	typos        *ui.TyposPane
	// menu displays the bottom menu
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// textInputOverlay handles text input with state
	textInputOverlay *overlay.TextInputOverlay
	// textOverlay displays text information
	textOverlay *overlay.TextOverlay
	// confirmationOverlay displays confirmation modals
	confirmationOverlay *overlay.ConfirmationOverlay
	// confirmedAction runs if the pending confirmation is accepted
	confirmedAction func() tea.Cmd

	width         int
	contentHeight int
}

func newHome(ctx context.Context) (*home, error) {
	settings, err := config.Load()
	if err != nil {
		// Parse errors are recoverable: defaults are in effect, the user
		// just needs to know their file was ignored.
		log.WarningLog.Printf("%v", err)
	}

	watcher, werr := config.NewWatcher()
	if werr != nil {
		// The panel works without the watcher, external edits just will not
		// show up until restart.
		log.WarningLog.Printf("config watcher disabled: %v", werr)
	}

	general := ui.NewGeneralPane(settings)
	apps := ui.NewAppsPane(settings)
	typos := ui.NewTyposPane(settings)

	h := &home{
		ctx:          ctx,
		settings:     settings,
		controller:   service.NewController(),
		watcher:      watcher,
		header:       ui.NewHeader(),
		general:      general,
		apps:         apps,
		typos:        typos,
		tabbedWindow: ui.NewTabbedWindow(general, apps, typos),
		menu:         ui.NewMenu(),
		errBox:       ui.NewErrBox(),
	}
	if err != nil {
		h.errBox.SetError(err)
	}
	return h, nil
}

func (m *home) close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width

	headerHeight := 2
	menuHeight := 2
	errBoxHeight := 1
	m.contentHeight = msg.Height - headerHeight - menuHeight - errBoxHeight

	m.header.SetSize(msg.Width)
	m.tabbedWindow.SetSize(msg.Width, m.contentHeight)
	m.menu.SetSize(msg.Width, menuHeight)
	m.errBox.SetSize(msg.Width, errBoxHeight)
}

func (m *home) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshStatus(), m.tickStatus()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForFileChange())
	}
	return tea.Batch(cmds...)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case statusMsg:
		m.header.SetStatus(service.Status(msg))
		return m, nil
	case statusTickMsg:
		return m, tea.Batch(m.refreshStatus(), m.tickStatus())
	case fileChangedMsg:
		return m.handleFileChanged()
	case savedMsg:
		m.dirty = false
		m.selfSave = false
		m.header.SetDirty(false)
		if msg.restartErr != nil {
			return m, tea.Batch(m.handleError(msg.restartErr), m.refreshStatus())
		}
		return m, m.refreshStatus()
	case saveFailedMsg:
		// No write happened, so there is no watcher event to suppress.
		m.selfSave = false
		return m, m.handleError(msg.err)
	case errMsg:
		return m, m.handleError(msg.err)
	case hideErrMsg:
		m.errBox.Clear()
		return m, nil
	case keyClearMsg:
		m.menu.ClearKeydown()
		return m, nil
	}
	return m, nil
}

// handleFileChanged reloads settings after an external edit. Unsaved local
// edits win: reloading under the user's feet would throw their work away.
func (m *home) handleFileChanged() (tea.Model, tea.Cmd) {
	rearm := m.waitForFileChange()
	if m.selfSave {
		// Our own atomic save; the in-memory settings are already current.
		m.selfSave = false
		return m, rearm
	}
	if m.dirty {
		return m, tea.Batch(rearm,
			m.handleError(fmt.Errorf("settings file changed on disk; save to overwrite or quit to discard")))
	}

	settings, err := config.Load()
	m.settings = settings
	m.general.SetSettings(settings)
	m.apps.SetSettings(settings)
	m.typos.SetSettings(settings)
	log.InfoLog.Printf("settings reloaded after external edit")
	if err != nil {
		return m, tea.Batch(rearm, m.handleError(err))
	}
	return m, rearm
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	if !m.dirty {
		return m, tea.Quit
	}
	m.confirmAction("Discard unsaved changes?", func() tea.Cmd { return tea.Quit })
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateHelp:
		if m.textOverlay.HandleKeyPress(msg) {
			m.state = stateDefault
		}
		return m, nil
	case stateConfirm:
		if m.confirmationOverlay.HandleKeyPress(msg) {
			confirmed := m.confirmationOverlay.Confirmed
			action := m.confirmedAction
			m.confirmationOverlay = nil
			m.confirmedAction = nil
			m.state = stateDefault
			if confirmed && action != nil {
				return m, action()
			}
		}
		return m, nil
	case stateInputAppName, stateInputTypo, stateInputCorrection, stateEditHotkey:
		return m.handleInputKeyPress(msg)
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.handleQuit()
	case keys.KeyHelp:
		m.state = stateHelp
		m.textOverlay = overlay.NewTextOverlay(helpContent())
		m.textOverlay.SetWidth(66)
		return m, nil
	case keys.KeyTab:
		m.tabbedWindow.Toggle()
		m.menu.SetActiveTab(m.tabbedWindow.ActiveTab())
		return m, m.keydownCallback(name)
	case keys.KeyUp:
		switch m.tabbedWindow.ActiveTab() {
		case ui.GeneralTab:
			m.general.Up()
		case ui.ApplicationsTab:
			m.apps.Up()
		case ui.CorrectionsTab:
			m.typos.Up()
		}
		return m, nil
	case keys.KeyDown:
		switch m.tabbedWindow.ActiveTab() {
		case ui.GeneralTab:
			m.general.Down()
		case ui.ApplicationsTab:
			m.apps.Down()
		case ui.CorrectionsTab:
			m.typos.Down()
		}
		return m, nil
	case keys.KeyLeft:
		if m.tabbedWindow.ActiveTab() == ui.ApplicationsTab {
			m.apps.Left()
		}
		return m, nil
	case keys.KeyRight:
		if m.tabbedWindow.ActiveTab() == ui.ApplicationsTab {
			m.apps.Right()
		}
		return m, nil
	case keys.KeyToggle:
		switch m.tabbedWindow.ActiveTab() {
		case ui.GeneralTab:
			if m.general.ToggleSelected() {
				m.markDirty()
			}
		case ui.ApplicationsTab:
			if m.apps.ToggleSelected() {
				m.markDirty()
			}
		}
		return m, nil
	case keys.KeyIncrement:
		if m.tabbedWindow.ActiveTab() == ui.GeneralTab && m.general.Increment() {
			m.markDirty()
		}
		return m, nil
	case keys.KeyDecrement:
		if m.tabbedWindow.ActiveTab() == ui.GeneralTab && m.general.Decrement() {
			m.markDirty()
		}
		return m, nil
	case keys.KeyEnter:
		return m.handleEnter()
	case keys.KeyNew:
		return m.handleNew()
	case keys.KeyDelete:
		return m.handleDelete()
	case keys.KeySave:
		m.selfSave = true
		return m, tea.Batch(m.keydownCallback(name), m.saveAndRestart())
	case keys.KeyStart:
		return m, tea.Batch(m.keydownCallback(name), m.serviceAction("start"))
	case keys.KeyStop:
		return m, tea.Batch(m.keydownCallback(name), m.serviceAction("stop"))
	case keys.KeyRestart:
		return m, tea.Batch(m.keydownCallback(name), m.serviceAction("restart"))
	case keys.KeyRefresh:
		return m, tea.Batch(m.keydownCallback(name), m.refreshStatus())
	}
	return m, nil
}

func (m *home) handleEnter() (tea.Model, tea.Cmd) {
	switch m.tabbedWindow.ActiveTab() {
	case ui.GeneralTab:
		if m.general.HotkeySelected() {
			m.state = stateEditHotkey
			m.textInputOverlay = overlay.NewTextInputOverlay("Toggle hotkey", "Super+Shift+A", m.settings.Hotkey)
		}
	case ui.CorrectionsTab:
		typo, ok := m.typos.SelectedTypo()
		if !ok {
			return m, nil
		}
		m.state = stateInputCorrection
		m.editingTypo = typo
		m.textInputOverlay = overlay.NewTextInputOverlay(
			fmt.Sprintf("Correction for %q", typo), "", m.settings.CustomTypos[typo])
	}
	return m, nil
}

func (m *home) handleNew() (tea.Model, tea.Cmd) {
	switch m.tabbedWindow.ActiveTab() {
	case ui.ApplicationsTab:
		m.state = stateInputAppName
		m.textInputOverlay = overlay.NewTextInputOverlay("Application name", "firefox", "")
	case ui.CorrectionsTab:
		m.state = stateInputTypo
		m.textInputOverlay = overlay.NewTextInputOverlay("Typo", "teh", "")
	}
	return m, nil
}

func (m *home) handleDelete() (tea.Model, tea.Cmd) {
	switch m.tabbedWindow.ActiveTab() {
	case ui.ApplicationsTab:
		name, ok := m.apps.SelectedApp()
		if !ok {
			return m, nil
		}
		m.confirmAction(fmt.Sprintf("Delete application rule %q?", name), func() tea.Cmd {
			delete(m.settings.Applications, name)
			m.apps.Reload()
			m.markDirty()
			return nil
		})
	case ui.CorrectionsTab:
		typo, ok := m.typos.SelectedTypo()
		if !ok {
			return m, nil
		}
		m.confirmAction(fmt.Sprintf("Delete correction %q?", typo), func() tea.Cmd {
			delete(m.settings.CustomTypos, typo)
			m.typos.Reload()
			m.markDirty()
			return nil
		})
	}
	return m, nil
}

// handleInputKeyPress drives the text input overlay states.
func (m *home) handleInputKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.textInputOverlay.HandleKeyPress(msg) {
		return m, nil
	}

	submitted := m.textInputOverlay.IsSubmitted()
	value := strings.TrimSpace(m.textInputOverlay.GetValue())
	prevState := m.state
	m.state = stateDefault
	m.textInputOverlay = nil

	if !submitted {
		m.editingTypo = ""
		m.pendingTypo = ""
		return m, nil
	}

	switch prevState {
	case stateInputAppName:
		if value == "" {
			return m, m.handleError(fmt.Errorf("application name cannot be empty"))
		}
		// Adding a name that already exists replaces that rule (last write
		// wins, same as the map semantics of the file itself).
		m.settings.Applications[value] = config.AppRule{Enabled: true, SmartQuotes: true, Autocorrect: true}
		m.apps.Reload()
		m.markDirty()
	case stateInputTypo:
		if value == "" {
			return m, m.handleError(fmt.Errorf("typo cannot be empty"))
		}
		m.pendingTypo = value
		m.state = stateInputCorrection
		m.textInputOverlay = overlay.NewTextInputOverlay(
			fmt.Sprintf("Correction for %q", value), "", "")
	case stateInputCorrection:
		typo := m.pendingTypo
		if m.editingTypo != "" {
			typo = m.editingTypo
		}
		m.pendingTypo = ""
		m.editingTypo = ""
		if value == "" {
			return m, m.handleError(fmt.Errorf("correction cannot be empty"))
		}
		m.settings.CustomTypos[typo] = value
		m.typos.Reload()
		m.markDirty()
	case stateEditHotkey:
		m.settings.Hotkey = value
		m.markDirty()
	}
	return m, nil
}

func (m *home) markDirty() {
	m.dirty = true
	m.header.SetDirty(true)
}

// confirmAction shows a confirmation modal and stores the action to execute
// on confirm. The action runs in Update once the modal closes.
func (m *home) confirmAction(message string, action func() tea.Cmd) {
	m.state = stateConfirm
	m.confirmedAction = action

	m.confirmationOverlay = overlay.NewConfirmationOverlay(message)
	// Fixed width for consistent appearance
	m.confirmationOverlay.SetWidth(50)
}

func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}
		return hideErrMsg{}
	}
}

func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}
		return keyClearMsg{}
	}
}

func (m *home) View() string {
	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Padding(0, 1).Render(m.header.String()),
		"",
		m.tabbedWindow.String(),
		m.menu.String(),
		m.errBox.String(),
	)

	switch m.state {
	case stateInputAppName, stateInputTypo, stateInputCorrection, stateEditHotkey:
		if m.textInputOverlay != nil {
			return overlay.PlaceOverlay(0, 0, m.textInputOverlay.Render(), mainView, true, true)
		}
	case stateHelp:
		if m.textOverlay != nil {
			return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true, true)
		}
	case stateConfirm:
		if m.confirmationOverlay != nil {
			return overlay.PlaceOverlay(0, 0, m.confirmationOverlay.Render(), mainView, true, true)
		}
	}

	return mainView
}
