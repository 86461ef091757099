package tui

import (
	"context"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarev/lockbox/internal/vault"
	"github.com/mkarev/lockbox/models"
)

type screen int

const (
	screenUnlock screen = iota
	screenConfirm
	screenImport
	screenHome
	screenDetail
	screenForm
	screenSettings
	screenIdeas
)

// appModel is the root bubbletea model. It owns one sub-model per screen
// and routes key events to whichever screen is active.
type appModel struct {
	deps Deps

	screen   screen
	unlock   unlockModel
	confirm  confirmModel
	imp      importModel
	home     homeModel
	detail   detailModel
	form     formModel
	settings settingsModel
	ideas    ideasModel

	confirmDelete bool
	status        string
	errMsg        string
}

func newAppModel(deps Deps) appModel {
	m := appModel{
		deps:     deps,
		screen:   screenUnlock,
		unlock:   newUnlockModel(),
		settings: newSettingsModel(),
	}
	if deps.Vault.Status() == vault.StatusUnlocked {
		m.screen = screenHome
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.deps.AutoLock.Touch()
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		m.errMsg = ""
		return m.updateKey(msg)

	case vaultLockedMsg:
		m.screen = screenUnlock
		m.unlock = newUnlockModel()
		m.status = "Locked after inactivity"
		return m, clearStatusCmd()

	case biometricUnlockMsg:
		if !msg.ok || !m.deps.Vault.Unlock(msg.vaultID) {
			m.unlock.pinMode = false
			m.errMsg = "Biometric unlock failed"
			return m, nil
		}
		m.screen = screenHome
		m.home = homeModel{}
		return m, nil

	case biometricRegisterMsg:
		m.settings.leavePinMode()
		if msg.ok {
			m.status = "Biometric unlock enabled"
		} else {
			m.errMsg = "Biometric setup failed"
		}
		return m, clearStatusCmd()

	case importDoneMsg:
		switch {
		case msg.err != nil:
			m.errMsg = "Import failed: " + msg.err.Error()
		case !msg.ok:
			m.errMsg = "Backup does not contain that Vault ID"
		default:
			m.screen = screenHome
			m.home = homeModel{}
			m.status = "Backup imported"
			return m, clearStatusCmd()
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Backup written to " + msg.path
		}
		return m, clearStatusCmd()

	case ideasMsg:
		m.ideas.busy = false
		if msg.err != nil {
			m.errMsg = "Assistant error: " + msg.err.Error()
		} else {
			m.ideas.result = msg.text
		}
		return m, nil

	case titleSuggestedMsg:
		if msg.err != nil {
			m.errMsg = "Assistant error: " + msg.err.Error()
		} else if m.screen == screenForm && m.form.category == models.CategoryLinks {
			m.form.inputs[0].SetValue(msg.title)
		}
		return m, nil

	case copiedMsg:
		m.status = "Copied to clipboard"
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenConfirm:
		return m.updateConfirm(msg)
	case screenImport:
		return m.updateImport(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenIdeas:
		return m.updateIdeas(msg)
	}
	return m, nil
}

func (m appModel) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.unlock.pinMode {
		switch {
		case key.Matches(msg, keys.esc):
			m.unlock.pinMode = false
			m.unlock.pinInput.SetValue("")
			return m, nil
		case key.Matches(msg, keys.enter):
			pin := m.unlock.pinInput.Value()
			m.unlock.pinInput.SetValue("")
			return m, m.cmdBiometricUnlock(pin)
		}
		var cmd tea.Cmd
		m.unlock.pinInput, cmd = m.unlock.pinInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.enter):
		id := m.unlock.idInput.Value()
		if !m.deps.Vault.Unlock(id) {
			m.errMsg = "No vault found for that ID"
			return m, nil
		}
		m.screen = screenHome
		m.home = homeModel{}
		return m, nil

	case key.Matches(msg, keys.newVault):
		id := m.deps.Vault.Initialize()
		if id == "" {
			return m, nil
		}
		m.screen = screenConfirm
		m.confirm = confirmModel{pendingID: id}
		return m, nil

	case key.Matches(msg, keys.importKey):
		m.screen = screenImport
		m.imp = newImportModel()
		return m, nil

	case key.Matches(msg, keys.bioUnlock):
		gw := m.deps.Gateway("")
		if !gw.Supported() {
			m.errMsg = "Biometric unlock is not available"
			return m, nil
		}
		m.unlock.pinMode = true
		m.unlock.pinInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.unlock.idInput, cmd = m.unlock.idInput.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if m.deps.Vault.Confirm() {
			m.screen = screenHome
			m.home = homeModel{}
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.confirm.pendingID)
	case key.Matches(msg, keys.esc):
		m.deps.Vault.Cancel()
		m.screen = screenUnlock
		m.unlock = newUnlockModel()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenUnlock
		m.unlock = newUnlockModel()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.imp.cycleFocus()
		return m, nil
	case key.Matches(msg, keys.enter):
		path := m.imp.inputs[0].Value()
		id := m.imp.inputs[1].Value()
		if path == "" || id == "" {
			m.errMsg = "Both fields are required"
			return m, nil
		}
		return m, m.cmdImport(path, id)
	}

	var cmd tea.Cmd
	m.imp.inputs[m.imp.focus], cmd = m.imp.inputs[m.imp.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	data := m.deps.Vault.Data()
	c := m.home.category()

	if m.confirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			removeItem(&data, c, m.home.cursor)
			m.deps.Vault.UpdateData(data)
			m.home.clampCursor(data.Count(c))
			m.confirmDelete = false
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.left):
		m.home.nextTab(-1)
		m.home.clampCursor(data.Count(m.home.category()))
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		m.home.nextTab(1)
		m.home.clampCursor(data.Count(m.home.category()))
	case key.Matches(msg, keys.up):
		if m.home.cursor > 0 {
			m.home.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.home.cursor < data.Count(c)-1 {
			m.home.cursor++
		}
	case key.Matches(msg, keys.enter):
		if data.Count(c) > 0 {
			m.screen = screenDetail
			m.detail = detailModel{category: c, index: m.home.cursor}
		}
	case key.Matches(msg, keys.newItem):
		m.screen = screenForm
		m.form = newFormModel(c)
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		if data.Count(c) > 0 {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.copy):
		d := detailModel{category: c, index: m.home.cursor}
		if v := d.copyValue(data, false); v != "" {
			return m, m.cmdCopy(v)
		}
	case key.Matches(msg, keys.copyUser):
		d := detailModel{category: c, index: m.home.cursor}
		if v := d.copyValue(data, true); v != "" {
			return m, m.cmdCopy(v)
		}
	case key.Matches(msg, keys.settings):
		m.screen = screenSettings
		m.settings = newSettingsModel()
	case key.Matches(msg, keys.ideas):
		m.screen = screenIdeas
		m.ideas = newIdeasModel(m.deps.AI.Enabled())
		return m, textinput.Blink
	case key.Matches(msg, keys.lock):
		m.deps.Vault.Lock()
		m.screen = screenUnlock
		m.unlock = newUnlockModel()
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	data := m.deps.Vault.Data()
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
	case key.Matches(msg, keys.copy):
		if v := m.detail.copyValue(data, false); v != "" {
			return m, m.cmdCopy(v)
		}
	case key.Matches(msg, keys.copyUser):
		if v := m.detail.copyValue(data, true); v != "" {
			return m, m.cmdCopy(v)
		}
	case key.Matches(msg, keys.delete):
		removeItem(&data, m.detail.category, m.detail.index)
		m.deps.Vault.UpdateData(data)
		m.screen = screenHome
		m.home.clampCursor(data.Count(m.detail.category))
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.cycleFocus()
		return m, nil
	case key.Matches(msg, keys.enter) && m.form.focus < len(m.form.inputs):
		// enter inside the notes textarea inserts a newline instead
		apply, err := m.form.item()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		data := m.deps.Vault.Data()
		apply(&data)
		m.deps.Vault.UpdateData(data)
		m.screen = screenHome
		m.status = "Saved"
		return m, clearStatusCmd()
	case key.Matches(msg, keys.suggest) && m.form.category == models.CategoryLinks:
		url := m.form.inputs[1].Value()
		if url == "" {
			m.errMsg = "Enter a URL first"
			return m, nil
		}
		if !m.deps.AI.Enabled() {
			m.errMsg = "The assistant is disabled"
			return m, nil
		}
		return m, m.cmdSuggestTitle(url)
	}

	if msg.String() == "ctrl+d" {
		m.form.cycleDocType()
		return m, nil
	}

	var cmd tea.Cmd
	if m.form.focus < len(m.form.inputs) {
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	} else {
		m.form.content, cmd = m.form.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.settings.pinMode {
		switch {
		case key.Matches(msg, keys.esc):
			m.settings.leavePinMode()
			return m, nil
		case key.Matches(msg, keys.enter):
			pin := m.settings.pinInput.Value()
			if pin == "" {
				m.errMsg = "PIN must not be empty"
				return m, nil
			}
			return m, m.cmdRegisterBiometric(pin, m.deps.Vault.VaultID())
		}
		var cmd tea.Cmd
		m.settings.pinInput, cmd = m.settings.pinInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.deps.Vault.VaultID())
	case key.Matches(msg, keys.biometric):
		gw := m.deps.Gateway("")
		if !gw.Supported() || gw.Enabled(m.deps.Vault.VaultID()) {
			return m, nil
		}
		m.settings.enterPinMode()
		return m, textinput.Blink
	}
	return m, nil
}

func (m appModel) updateIdeas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
		return m, nil
	case key.Matches(msg, keys.enter):
		topic := m.ideas.topicInput.Value()
		if topic == "" || !m.ideas.enabled || m.ideas.busy {
			return m, nil
		}
		m.ideas.busy = true
		m.ideas.result = ""
		return m, m.cmdIdeas(topic)
	}

	var cmd tea.Cmd
	m.ideas.topicInput, cmd = m.ideas.topicInput.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenUnlock:
		body = m.unlock.View()
	case screenConfirm:
		body = m.confirm.View()
	case screenImport:
		body = m.imp.View()
	case screenHome:
		body = m.home.View(m.deps.Vault.Data())
		if m.confirmDelete {
			body += "\n" + errorStyle.Render("Delete this item? (y/n)")
		}
	case screenDetail:
		body = m.detail.View(m.deps.Vault.Data())
	case screenForm:
		body = m.form.View()
	case screenSettings:
		gw := m.deps.Gateway("")
		body = m.settings.View(
			m.deps.Vault.VaultID(),
			m.deps.Vault.Data(),
			gw.Supported(),
			gw.Enabled(m.deps.Vault.VaultID()),
			m.deps.Version,
		)
	case screenIdeas:
		body = m.ideas.View()
	}

	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render(m.errMsg)
	} else if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	return appStyle.Render(body)
}

func removeItem(data *models.VaultData, c models.Category, i int) {
	switch c {
	case models.CategoryPasswords:
		if i < len(data.Passwords) {
			data.Passwords = append(data.Passwords[:i], data.Passwords[i+1:]...)
		}
	case models.CategoryCards:
		if i < len(data.Cards) {
			data.Cards = append(data.Cards[:i], data.Cards[i+1:]...)
		}
	case models.CategoryLinks:
		if i < len(data.Links) {
			data.Links = append(data.Links[:i], data.Links[i+1:]...)
		}
	case models.CategoryNotes:
		if i < len(data.Notes) {
			data.Notes = append(data.Notes[:i], data.Notes[i+1:]...)
		}
	case models.CategoryMedia:
		if i < len(data.Media) {
			data.Media = append(data.Media[:i], data.Media[i+1:]...)
		}
	case models.CategoryIdentities:
		if i < len(data.Identities) {
			data.Identities = append(data.Identities[:i], data.Identities[i+1:]...)
		}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m appModel) cmdBiometricUnlock(pin string) tea.Cmd {
	gw := m.deps.Gateway(pin)
	return func() tea.Msg {
		id, ok := gw.Authenticate(context.Background())
		return biometricUnlockMsg{vaultID: id, ok: ok}
	}
}

func (m appModel) cmdRegisterBiometric(pin, vaultID string) tea.Cmd {
	gw := m.deps.Gateway(pin)
	return func() tea.Msg {
		return biometricRegisterMsg{ok: gw.Register(context.Background(), vaultID)}
	}
}

func (m appModel) cmdImport(path, id string) tea.Cmd {
	v := m.deps.Vault
	return func() tea.Msg {
		raw, err := os.ReadFile(path)
		if err != nil {
			return importDoneMsg{err: err}
		}
		ok, err := v.Import(raw, id)
		return importDoneMsg{ok: ok, err: err}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	v := m.deps.Vault
	return func() tea.Msg {
		raw, err := v.Export()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path := vault.BackupFileName(v.VaultID())
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m appModel) cmdIdeas(topic string) tea.Cmd {
	ai := m.deps.AI
	return func() tea.Msg {
		text, err := ai.GenerateIdeas(context.Background(), topic)
		return ideasMsg{text: text, err: err}
	}
}

func (m appModel) cmdSuggestTitle(url string) tea.Cmd {
	ai := m.deps.AI
	return func() tea.Msg {
		title, err := ai.SuggestTitle(context.Background(), url)
		return titleSuggestedMsg{title: title, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}
