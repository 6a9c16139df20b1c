package models

import "testing"

func TestNormalizedUppercasesEnums(t *testing.T) {
	a := ItemAttrs{
		Category: " shirt ",
		Type:     "casual",
		Brand:    " Uniqlo ",
		Size:     "m",
		Color:    "navy blue",
	}
	got := a.Normalized()

	if got.Category != "SHIRT" {
		t.Errorf("Category = %q", got.Category)
	}
	if got.Type != "CASUAL" {
		t.Errorf("Type = %q", got.Type)
	}
	if got.Size != "M" {
		t.Errorf("Size = %q", got.Size)
	}
	if got.Color != "NAVY BLUE" {
		t.Errorf("Color = %q", got.Color)
	}
	if got.Brand != "Uniqlo" {
		t.Errorf("Brand = %q, must keep its case", got.Brand)
	}
}

func TestNormalizedKeepsEmptyFieldsEmpty(t *testing.T) {
	got := ItemAttrs{Brand: "Acme"}.Normalized()
	if got.Category != "" || got.Type != "" || got.Size != "" || got.Color != "" {
		t.Errorf("empty attrs must stay empty: %+v", got)
	}
}
