// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package models

// Category names the six item collections of a vault. The values double
// as the JSON keys of VaultData and as tab identifiers in the UI.
type Category string

const (
	CategoryPasswords  Category = "passwords"
	CategoryCards      Category = "cards"
	CategoryLinks      Category = "links"
	CategoryNotes      Category = "notes"
	CategoryMedia      Category = "media"
	CategoryIdentities Category = "identities"
)

// Categories is the display order of the six collections.
var Categories = []Category{
	CategoryPasswords,
	CategoryCards,
	CategoryLinks,
	CategoryNotes,
	CategoryMedia,
	CategoryIdentities,
}

// VaultData is one user's complete record set: six ordered collections,
// one per category. The presentation layer mutates it by replacing a
// whole collection and handing the result back to the vault service.
type VaultData struct {
	Passwords  []PasswordItem `json:"passwords"`
	Cards      []CardItem     `json:"cards"`
	Links      []LinkItem     `json:"links"`
	Notes      []NoteItem     `json:"notes"`
	Media      []MediaItem    `json:"media"`
	Identities []IdentityItem `json:"identities"`
}

// NewVaultData returns an empty vault: all six collections present with
// length zero.
func NewVaultData() VaultData {
	return VaultData{
		Passwords:  []PasswordItem{},
		Cards:      []CardItem{},
		Links:      []LinkItem{},
		Notes:      []NoteItem{},
		Media:      []MediaItem{},
		Identities: []IdentityItem{},
	}
}

// Count returns the number of items in the given category.
func (d VaultData) Count(c Category) int {
	switch c {
	case CategoryPasswords:
		return len(d.Passwords)
	case CategoryCards:
		return len(d.Cards)
	case CategoryLinks:
		return len(d.Links)
	case CategoryNotes:
		return len(d.Notes)
	case CategoryMedia:
		return len(d.Media)
	case CategoryIdentities:
		return len(d.Identities)
	}
	return 0
}

// Total returns the number of items across all categories.
func (d VaultData) Total() int {
	n := 0
	for _, c := range Categories {
		n += d.Count(c)
	}
	return n
}

// Clone returns a copy of d whose collection slices are independent of
// the receiver's. Item values are copied by assignment; the nested
// DocumentImage slices are duplicated as well so callers can mutate the
// clone freely.
func (d VaultData) Clone() VaultData {
	out := VaultData{
		Passwords:  append([]PasswordItem{}, d.Passwords...),
		Cards:      append([]CardItem{}, d.Cards...),
		Links:      append([]LinkItem{}, d.Links...),
		Notes:      append([]NoteItem{}, d.Notes...),
		Media:      append([]MediaItem{}, d.Media...),
		Identities: append([]IdentityItem{}, d.Identities...),
	}
	for i := range out.Media {
		if out.Media[i].Images != nil {
			out.Media[i].Images = append([]DocumentImage{}, out.Media[i].Images...)
		}
	}
	for i := range out.Identities {
		if out.Identities[i].Images != nil {
			out.Identities[i].Images = append([]DocumentImage{}, out.Identities[i].Images...)
		}
	}
	return out
}
