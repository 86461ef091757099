package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// unlockModel is the locked-vault entry screen: enter an identifier, start
// a new vault, import a backup, or unlock with the enrolled credential.
type unlockModel struct {
	idInput  textinput.Model
	pinInput textinput.Model
	pinMode  bool
}

func newUnlockModel() unlockModel {
	id := textinput.New()
	id.Placeholder = "vault id"
	id.Width = 40
	id.Focus()

	pin := textinput.New()
	pin.Placeholder = "device pin"
	pin.Width = 40
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '*'

	return unlockModel{idInput: id, pinInput: pin}
}

func (m unlockModel) View() string {
	out := titleStyle.Render("LockBox") + "\n\n"

	if m.pinMode {
		out += "Unlock with device credential\n\n"
		out += "PIN: [" + m.pinInput.View() + "]\n\n"
		out += helpStyle.Render("enter unlock  esc back")
		return out
	}

	out += "Vault ID: [" + m.idInput.View() + "]\n\n"
	out += helpStyle.Render("enter unlock  ctrl+n new vault  ctrl+o import backup  ctrl+b biometric  ctrl+c quit")
	return out
}
