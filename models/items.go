// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package models

// BaseItem carries the fields shared by every vault item category.
//
// ID is assigned once at creation time and never changes afterwards.
// CreatedAt is an ISO-8601 timestamp, also set once. Title is the
// display name; the form layer guarantees it is non-empty.
type BaseItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	IconURL   string `json:"iconUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// PasswordItem is a stored website credential.
type PasswordItem struct {
	BaseItem
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// CardItem is a stored payment card, optionally with photos of the
// physical card. The photo payloads are base64-encoded images inlined
// into the record, full resolution plus a downscaled thumbnail each.
type CardItem struct {
	BaseItem
	CardHolder         string `json:"cardHolder"`
	CardNumber         string `json:"cardNumber"`
	ExpiryDate         string `json:"expiryDate"`
	CVV                string `json:"cvv"`
	CardFrontData      string `json:"cardFrontData,omitempty"`
	CardFrontThumbnail string `json:"cardFrontThumbnail,omitempty"`
	CardBackData       string `json:"cardBackData,omitempty"`
	CardBackThumbnail  string `json:"cardBackThumbnail,omitempty"`
}

// LinkItem is a stored bookmark. The optional icon lives in
// BaseItem.IconURL.
type LinkItem struct {
	BaseItem
	URL string `json:"url"`
}

// NoteItem is a free-form text note.
type NoteItem struct {
	BaseItem
	Content string `json:"content"`
}

// MediaType discriminates the two media item layouts.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is a stored photo set or a single video.
//
// For MediaImage, Images holds one DocumentImage per photo. For
// MediaVideo, Data and Thumbnail hold the encoded video and its preview.
// The two layouts are mutually exclusive by convention, not enforced.
// Items written before multi-image support may still carry the singular
// Data/Thumbnail layout for images; vault.Normalize upgrades them.
type MediaItem struct {
	BaseItem
	Type      MediaType       `json:"type"`
	Images    []DocumentImage `json:"images,omitempty"`
	Data      string          `json:"data,omitempty"`
	Thumbnail string          `json:"thumbnail,omitempty"`
}

// IdentityItem is a stored identity document (passport copy, licence
// and so on) with one or more photos.
//
// Legacy records may carry singular Data/Thumbnail fields instead of
// Images; vault.Normalize upgrades them on load and import.
type IdentityItem struct {
	BaseItem
	DocumentType string          `json:"documentType"`
	Images       []DocumentImage `json:"images"`
	Data         string          `json:"data,omitempty"`
	Thumbnail    string          `json:"thumbnail,omitempty"`
}

// DocumentImage is one inline image payload: the full-resolution
// encoded image and a downscaled preview. Both are self-contained,
// there are no external file references.
type DocumentImage struct {
	Data      string `json:"data"`
	Thumbnail string `json:"thumbnail"`
}

// DocumentTypes lists the identity document kinds offered by the form
// layer.
var DocumentTypes = []string{"ID Photo", "Passport Copy", "ID Card", "License", "Other"}
