package models

import "strings"

// WardrobeItem is a user-owned clothing record. Category, type, size and
// color are server-controlled enumerations; NormalizedAttrs uppercases them
// the way the backend expects before transmission.
type WardrobeItem struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	Brand     string `json:"brand"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ItemAttrs are the mutable attributes of a wardrobe item as entered by the
// user. Zero-value fields are "unchanged" on update.
type ItemAttrs struct {
	Category string
	Type     string
	Brand    string
	Size     string
	Color    string
}

// Normalized returns a copy with the enumerated attributes uppercased.
// Brand is free-form and passes through unchanged.
func (a ItemAttrs) Normalized() ItemAttrs {
	return ItemAttrs{
		Category: strings.ToUpper(strings.TrimSpace(a.Category)),
		Type:     strings.ToUpper(strings.TrimSpace(a.Type)),
		Brand:    strings.TrimSpace(a.Brand),
		Size:     strings.ToUpper(strings.TrimSpace(a.Size)),
		Color:    strings.ToUpper(strings.TrimSpace(a.Color)),
	}
}
