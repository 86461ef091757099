package tui

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"

	"github.com/mkarev/lockbox/models"
)

// formModel is the create-item form. The field list depends on the
// category; notes use a textarea for the content, identities add a
// document-type selector cycled with ctrl+d.
type formModel struct {
	category models.Category
	labels   []string
	inputs   []textinput.Model
	focus    int
	content  textarea.Model
	docType  int
}

func newFormModel(category models.Category) formModel {
	var labels []string
	switch category {
	case models.CategoryPasswords:
		labels = []string{"Title", "Website", "Username", "Password"}
	case models.CategoryCards:
		labels = []string{"Nickname", "Card Holder", "Card Number", "Expiry (MM/YY)", "CVV", "Front Photo Path", "Back Photo Path"}
	case models.CategoryLinks:
		labels = []string{"Title", "URL"}
	case models.CategoryNotes:
		labels = []string{"Title"}
	case models.CategoryMedia:
		labels = []string{"Title", "File Path(s)"}
	case models.CategoryIdentities:
		labels = []string{"Document Name", "Photo Path(s)"}
	}

	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 44
	}
	switch category {
	case models.CategoryPasswords:
		inputs[3].EchoMode = textinput.EchoPassword
		inputs[3].EchoCharacter = '*'
	case models.CategoryCards:
		inputs[4].EchoMode = textinput.EchoPassword
		inputs[4].EchoCharacter = '*'
	}
	inputs[0].Focus()

	m := formModel{category: category, labels: labels, inputs: inputs}
	if category == models.CategoryNotes {
		m.content = textarea.New()
		m.content.SetWidth(48)
		m.content.SetHeight(8)
	}
	return m
}

// fieldCount includes the textarea pseudo-field for notes.
func (m formModel) fieldCount() int {
	if m.category == models.CategoryNotes {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m *formModel) cycleFocus() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	} else {
		m.content.Blur()
	}
	m.focus = (m.focus + 1) % m.fieldCount()
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	} else {
		m.content.Focus()
	}
}

func (m *formModel) cycleDocType() {
	if m.category == models.CategoryIdentities {
		m.docType = (m.docType + 1) % len(models.DocumentTypes)
	}
}

func (m formModel) View() string {
	out := titleStyle.Render("New "+strings.TrimSuffix(categoryTitles[m.category], "s")) + "\n\n"

	if m.category == models.CategoryIdentities {
		out += fmt.Sprintf("Document Type: < %s >\n", models.DocumentTypes[m.docType])
	}
	for i, in := range m.inputs {
		out += fmt.Sprintf("%-17s [%s]\n", m.labels[i]+":", in.View())
	}
	if m.category == models.CategoryNotes {
		out += "Content:\n" + m.content.View() + "\n"
	}

	help := "tab next field  enter save  esc cancel"
	switch m.category {
	case models.CategoryLinks:
		help = "tab next field  ctrl+t suggest title  enter save  esc cancel"
	case models.CategoryIdentities:
		help = "tab next field  ctrl+d document type  enter save  esc cancel"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}

// item builds the vault item from the form state and returns it through
// the matching collection setter, or an error when required fields are
// missing or an attached file cannot be read.
func (m formModel) item() (func(*models.VaultData), error) {
	title := strings.TrimSpace(m.inputs[0].Value())
	if title == "" {
		return nil, errors.New("title is required")
	}

	base := models.BaseItem{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	switch m.category {
	case models.CategoryPasswords:
		it := models.PasswordItem{
			BaseItem: base,
			Website:  strings.TrimSpace(m.inputs[1].Value()),
			Username: strings.TrimSpace(m.inputs[2].Value()),
			Password: m.inputs[3].Value(),
		}
		if it.Website == "" || it.Username == "" {
			return nil, errors.New("website and username are required")
		}
		return func(d *models.VaultData) { d.Passwords = append(d.Passwords, it) }, nil

	case models.CategoryCards:
		it := models.CardItem{
			BaseItem:   base,
			CardHolder: strings.TrimSpace(m.inputs[1].Value()),
			CardNumber: strings.TrimSpace(m.inputs[2].Value()),
			ExpiryDate: strings.TrimSpace(m.inputs[3].Value()),
			CVV:        m.inputs[4].Value(),
		}
		if it.CardHolder == "" || it.CardNumber == "" || it.ExpiryDate == "" || it.CVV == "" {
			return nil, errors.New("all card fields are required")
		}
		if path := strings.TrimSpace(m.inputs[5].Value()); path != "" {
			data, err := loadEncodedFile(path)
			if err != nil {
				return nil, err
			}
			it.CardFrontData = data
			it.CardFrontThumbnail = data
		}
		if path := strings.TrimSpace(m.inputs[6].Value()); path != "" {
			data, err := loadEncodedFile(path)
			if err != nil {
				return nil, err
			}
			it.CardBackData = data
			it.CardBackThumbnail = data
		}
		return func(d *models.VaultData) { d.Cards = append(d.Cards, it) }, nil

	case models.CategoryLinks:
		it := models.LinkItem{
			BaseItem: base,
			URL:      strings.TrimSpace(m.inputs[1].Value()),
		}
		if it.URL == "" {
			return nil, errors.New("url is required")
		}
		return func(d *models.VaultData) { d.Links = append(d.Links, it) }, nil

	case models.CategoryNotes:
		it := models.NoteItem{
			BaseItem: base,
			Content:  m.content.Value(),
		}
		if strings.TrimSpace(it.Content) == "" {
			return nil, errors.New("content is required")
		}
		return func(d *models.VaultData) { d.Notes = append(d.Notes, it) }, nil

	case models.CategoryMedia:
		paths := splitPaths(m.inputs[1].Value())
		if len(paths) == 0 {
			return nil, errors.New("at least one file is required")
		}
		it := models.MediaItem{BaseItem: base}
		if isVideoFile(paths[0]) {
			data, err := loadEncodedFile(paths[0])
			if err != nil {
				return nil, err
			}
			it.Type = models.MediaVideo
			it.Data = data
		} else {
			it.Type = models.MediaImage
			for _, p := range paths {
				data, err := loadEncodedFile(p)
				if err != nil {
					return nil, err
				}
				it.Images = append(it.Images, models.DocumentImage{Data: data, Thumbnail: data})
			}
		}
		return func(d *models.VaultData) { d.Media = append(d.Media, it) }, nil

	case models.CategoryIdentities:
		paths := splitPaths(m.inputs[1].Value())
		if len(paths) == 0 {
			return nil, errors.New("at least one photo is required")
		}
		it := models.IdentityItem{
			BaseItem:     base,
			DocumentType: models.DocumentTypes[m.docType],
			Images:       []models.DocumentImage{},
		}
		for _, p := range paths {
			data, err := loadEncodedFile(p)
			if err != nil {
				return nil, err
			}
			it.Images = append(it.Images, models.DocumentImage{Data: data, Thumbnail: data})
		}
		return func(d *models.VaultData) { d.Identities = append(d.Identities, it) }, nil
	}

	return nil, fmt.Errorf("unknown category %q", m.category)
}

func splitPaths(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isVideoFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".webm", ".mkv", ".avi":
		return true
	}
	return false
}

func loadEncodedFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read attachment: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
