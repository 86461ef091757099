package tui

import (
	"fmt"

	"github.com/mkarev/lockbox/models"
)

// Category tab captions, in models.Categories order.
var categoryTitles = map[models.Category]string{
	models.CategoryPasswords:  "Passwords",
	models.CategoryCards:      "Cards",
	models.CategoryLinks:      "Bookmarks",
	models.CategoryNotes:      "Notes",
	models.CategoryMedia:      "Media",
	models.CategoryIdentities: "Identity",
}

// homeModel is the tabbed vault browser: one tab per category, a cursor
// list of the active category's items.
type homeModel struct {
	tab    int
	cursor int
}

func (m homeModel) category() models.Category {
	return models.Categories[m.tab]
}

func (m *homeModel) nextTab(n int) {
	m.tab = (m.tab + n + len(models.Categories)) % len(models.Categories)
	m.cursor = 0
}

func (m *homeModel) clampCursor(count int) {
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// itemLines renders the one-line list entry for every item in the active
// category.
func itemLines(data models.VaultData, c models.Category) []string {
	var lines []string
	switch c {
	case models.CategoryPasswords:
		for _, it := range data.Passwords {
			lines = append(lines, fmt.Sprintf("%s (%s)", it.Title, it.Username))
		}
	case models.CategoryCards:
		for _, it := range data.Cards {
			lines = append(lines, fmt.Sprintf("%s (%s)", it.Title, maskCardNumber(it.CardNumber)))
		}
	case models.CategoryLinks:
		for _, it := range data.Links {
			lines = append(lines, fmt.Sprintf("%s (%s)", it.Title, it.URL))
		}
	case models.CategoryNotes:
		for _, it := range data.Notes {
			lines = append(lines, it.Title)
		}
	case models.CategoryMedia:
		for _, it := range data.Media {
			lines = append(lines, fmt.Sprintf("%s (%s)", it.Title, it.Type))
		}
	case models.CategoryIdentities:
		for _, it := range data.Identities {
			lines = append(lines, fmt.Sprintf("%s (%s)", it.Title, it.DocumentType))
		}
	}
	return lines
}

func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "•••• " + number[len(number)-4:]
}

func (m homeModel) View(data models.VaultData) string {
	out := ""
	for i, c := range models.Categories {
		label := fmt.Sprintf(" %s (%d) ", categoryTitles[c], data.Count(c))
		if i == m.tab {
			out += activeTabStyle.Render(label)
		} else {
			out += inactiveTabStyle.Render(label)
		}
	}
	out += "\n\n"

	lines := itemLines(data, m.category())
	if len(lines) == 0 {
		out += helpStyle.Render("nothing here yet, press n to add an item") + "\n"
	}
	for i, line := range lines {
		if i == m.cursor {
			out += selectedStyle.Render("> "+line) + "\n"
		} else {
			out += "  " + line + "\n"
		}
	}

	out += "\n" + helpStyle.Render("←/→ tabs  ↑/↓ select  enter open  n new  d delete  g ideas  s settings  L lock  ctrl+c quit")
	return out
}
