package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// importModel collects a backup file path and the vault identifier the
// document must be keyed by.
type importModel struct {
	inputs []textinput.Model
	focus  int
}

func newImportModel() importModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "path to lockbox_backup_<id>.json"
	inputs[1].Placeholder = "vault id"
	inputs[0].Focus()

	return importModel{inputs: inputs}
}

func (m *importModel) cycleFocus() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m importModel) View() string {
	out := titleStyle.Render("Import backup") + "\n\n"
	out += "File:     [" + m.inputs[0].View() + "]\n"
	out += "Vault ID: [" + m.inputs[1].View() + "]\n\n"
	out += "The backup must be keyed by exactly this vault id.\n\n"
	out += helpStyle.Render("tab next field  enter import  esc back")
	return out
}
