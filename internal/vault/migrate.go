// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package vault

import "github.com/mkarev/lockbox/models"

// Normalize upgrades data loaded from storage or a backup document to the
// current schema and defaults absent category collections to empty ones.
//
// Identity and image-media items written before multi-image support carry
// their payload in singular data/thumbnail fields. Normalize moves such a
// payload into a single-element images collection and clears the singular
// fields. Items already in the current shape pass through unchanged, so
// Normalize is idempotent.
func Normalize(data models.VaultData) models.VaultData {
	for i := range data.Identities {
		data.Identities[i] = migrateIdentity(data.Identities[i])
	}
	for i := range data.Media {
		data.Media[i] = migrateMedia(data.Media[i])
	}

	// Categories added after a backup was written arrive as nil; a vault
	// always exposes all six collections.
	if data.Passwords == nil {
		data.Passwords = []models.PasswordItem{}
	}
	if data.Cards == nil {
		data.Cards = []models.CardItem{}
	}
	if data.Links == nil {
		data.Links = []models.LinkItem{}
	}
	if data.Notes == nil {
		data.Notes = []models.NoteItem{}
	}
	if data.Media == nil {
		data.Media = []models.MediaItem{}
	}
	if data.Identities == nil {
		data.Identities = []models.IdentityItem{}
	}

	return data
}

func migrateIdentity(item models.IdentityItem) models.IdentityItem {
	if item.Data != "" && item.Thumbnail != "" && len(item.Images) == 0 {
		item.Images = []models.DocumentImage{{Data: item.Data, Thumbnail: item.Thumbnail}}
		item.Data = ""
		item.Thumbnail = ""
	}
	return item
}

func migrateMedia(item models.MediaItem) models.MediaItem {
	// Only image media used the singular layout; for videos data/thumbnail
	// is the current shape.
	if item.Type == models.MediaImage && item.Data != "" && item.Thumbnail != "" && len(item.Images) == 0 {
		item.Images = []models.DocumentImage{{Data: item.Data, Thumbnail: item.Thumbnail}}
		item.Data = ""
		item.Thumbnail = ""
	}
	return item
}
