package tui

// confirmModel shows the freshly generated vault identifier and waits for
// the user to acknowledge having saved it. Nothing is persisted until they
// do.
type confirmModel struct {
	pendingID string
}

func (m confirmModel) View() string {
	out := titleStyle.Render("Your new Vault ID") + "\n\n"
	out += vaultIDStyle.Render(m.pendingID) + "\n\n"
	out += "This identifier is the only key to your vault.\n"
	out += "Store it somewhere safe: it cannot be recovered.\n\n"
	out += helpStyle.Render("y I saved it, create the vault  c copy  esc cancel")
	return out
}
