package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mkarev/lockbox/models"
)

// settingsModel shows vault info and hosts the backup and biometric
// actions. Registering a biometric credential switches the screen into
// PIN entry mode first.
type settingsModel struct {
	pinInput textinput.Model
	pinMode  bool
}

func newSettingsModel() settingsModel {
	pin := textinput.New()
	pin.Placeholder = "PIN"
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '*'
	pin.CharLimit = 32
	pin.Width = 20
	return settingsModel{pinInput: pin}
}

func (m *settingsModel) enterPinMode() {
	m.pinMode = true
	m.pinInput.SetValue("")
	m.pinInput.Focus()
}

func (m *settingsModel) leavePinMode() {
	m.pinMode = false
	m.pinInput.Blur()
}

func (m settingsModel) View(vaultID string, data models.VaultData, bioSupported, bioEnabled bool, version string) string {
	out := titleStyle.Render("Settings") + "\n\n"
	out += "Vault ID: " + vaultIDStyle.Render(vaultID) + "\n\n"

	var counts []string
	for _, c := range models.Categories {
		counts = append(counts, fmt.Sprintf("%s %d", categoryTitles[c], data.Count(c)))
	}
	out += "Items:    " + strings.Join(counts, "  ") + "\n"

	bio := "not supported"
	if bioSupported {
		bio = "supported, not set up"
		if bioEnabled {
			bio = "enabled"
		}
	}
	out += "Biometric unlock: " + bio + "\n"
	out += "Version:  " + version + "\n"

	if m.pinMode {
		out += "\nChoose a PIN for the new credential:\n[" + m.pinInput.View() + "]\n"
		out += "\n" + helpStyle.Render("enter register  esc cancel")
		return out
	}

	help := "e export backup  c copy vault id"
	if bioSupported && !bioEnabled {
		help += "  b set up biometric unlock"
	}
	help += "  esc back"
	out += "\n" + helpStyle.Render(help)
	return out
}
