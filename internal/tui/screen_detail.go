package tui

import (
	"fmt"

	"github.com/mkarev/lockbox/models"
)

// detailModel shows one item's fields. Secrets stay maskable: the view
// never prints the password or CVV, they are only copied to the clipboard.
type detailModel struct {
	category models.Category
	index    int
}

func (m detailModel) View(data models.VaultData) string {
	out := ""
	help := "c copy  esc back"

	switch m.category {
	case models.CategoryPasswords:
		if m.index >= len(data.Passwords) {
			return "item gone\n"
		}
		it := data.Passwords[m.index]
		out += titleStyle.Render(it.Title) + "\n\n"
		out += "Website:  " + it.Website + "\n"
		out += "Username: " + it.Username + "\n"
		out += "Password: ••••••••\n"
		help = "c copy password  u copy username  esc back"
	case models.CategoryCards:
		if m.index >= len(data.Cards) {
			return "item gone\n"
		}
		it := data.Cards[m.index]
		out += titleStyle.Render(it.Title) + "\n\n"
		out += "Holder: " + it.CardHolder + "\n"
		out += "Number: " + maskCardNumber(it.CardNumber) + "\n"
		out += "Expiry: " + it.ExpiryDate + "\n"
		out += "CVV:    •••\n"
		if it.CardFrontData != "" {
			out += "Front photo attached\n"
		}
		if it.CardBackData != "" {
			out += "Back photo attached\n"
		}
		help = "c copy number  esc back"
	case models.CategoryLinks:
		if m.index >= len(data.Links) {
			return "item gone\n"
		}
		it := data.Links[m.index]
		out += titleStyle.Render(it.Title) + "\n\n"
		out += "URL: " + it.URL + "\n"
		help = "c copy url  esc back"
	case models.CategoryNotes:
		if m.index >= len(data.Notes) {
			return "item gone\n"
		}
		it := data.Notes[m.index]
		out += titleStyle.Render(it.Title) + "\n\n"
		out += it.Content + "\n"
		help = "c copy content  esc back"
	case models.CategoryMedia:
		if m.index >= len(data.Media) {
			return "item gone\n"
		}
		it := data.Media[m.index]
		out += titleStyle.Render(it.Title) + "\n\n"
		out += "Type: " + string(it.Type) + "\n"
		if it.Type == models.MediaVideo {
			out += fmt.Sprintf("Video payload: %d bytes encoded\n", len(it.Data))
		} else {
			out += fmt.Sprintf("Photos: %d\n", len(it.Images))
		}
		help = "esc back"
	case models.CategoryIdentities:
		if m.index >= len(data.Identities) {
			return "item gone\n"
		}
		it := data.Identities[m.index]
		out += titleStyle.Render(it.Title) + "\n\n"
		out += "Document type: " + it.DocumentType + "\n"
		out += fmt.Sprintf("Photos: %d\n", len(it.Images))
		help = "esc back"
	}

	out += "\n" + helpStyle.Render(help)
	return out
}

// copyValue returns the value the copy key puts on the clipboard for the
// shown item, or "" when the category has nothing copyable.
func (m detailModel) copyValue(data models.VaultData, user bool) string {
	switch m.category {
	case models.CategoryPasswords:
		if m.index < len(data.Passwords) {
			if user {
				return data.Passwords[m.index].Username
			}
			return data.Passwords[m.index].Password
		}
	case models.CategoryCards:
		if m.index < len(data.Cards) {
			return data.Cards[m.index].CardNumber
		}
	case models.CategoryLinks:
		if m.index < len(data.Links) {
			return data.Links[m.index].URL
		}
	case models.CategoryNotes:
		if m.index < len(data.Notes) {
			return data.Notes[m.index].Content
		}
	}
	return ""
}
