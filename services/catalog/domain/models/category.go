package models

import (
	"fmt"
	"strings"
)

// Category is a value object for the closed product-category enum.
// Free-form categories are rejected at construction.
type Category string

const (
	CategoryCrystals         Category = "crystals"
	CategorySpiritualJewelry Category = "spiritual_jewelry"
	CategoryAmulets          Category = "amulets"
	CategoryTalismans        Category = "talismans"
	CategoryProtectionCharms Category = "protection_charms"
	CategoryHealingStones    Category = "healing_stones"
)

// AllCategories lists every member of the enum in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryCrystals,
		CategorySpiritualJewelry,
		CategoryAmulets,
		CategoryTalismans,
		CategoryProtectionCharms,
		CategoryHealingStones,
	}
}

// ParseCategory constructs a valid Category or returns an error for values
// outside the enum.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Valid reports whether c is a member of the enum.
func (c Category) Valid() bool {
	switch c {
	case CategoryCrystals, CategorySpiritualJewelry, CategoryAmulets,
		CategoryTalismans, CategoryProtectionCharms, CategoryHealingStones:
		return true
	}
	return false
}

// String returns the underlying enum value.
func (c Category) String() string {
	return string(c)
}

// Label returns the human-readable form of the value: underscores become
// spaces and each word is capitalized ("spiritual_jewelry" → "Spiritual Jewelry").
func (c Category) Label() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// CategoryOption pairs an enum value with its display label, as returned by
// the categories endpoint.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions returns the full enum as value/label pairs.
func CategoryOptions() []CategoryOption {
	cats := AllCategories()
	opts := make([]CategoryOption, len(cats))
	for i, c := range cats {
		opts[i] = CategoryOption{Value: c.String(), Label: c.Label()}
	}
	return opts
}
