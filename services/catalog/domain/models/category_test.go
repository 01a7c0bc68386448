package models

import "testing"

func TestParseCategory(t *testing.T) {
	t.Run("every enum member parses", func(t *testing.T) {
		for _, want := range AllCategories() {
			got, err := ParseCategory(want.String())
			if err != nil {
				t.Fatalf("ParseCategory(%q): unexpected error: %v", want, err)
			}
			if got != want {
				t.Fatalf("ParseCategory(%q) = %q", want, got)
			}
		}
	})

	t.Run("unknown value returns error", func(t *testing.T) {
		if _, err := ParseCategory("gemstones"); err == nil {
			t.Fatal("expected error for value outside the enum")
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := ParseCategory(""); err == nil {
			t.Fatal("expected error for empty string")
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if _, err := ParseCategory("Crystals"); err == nil {
			t.Fatal("expected error for wrong-cased value")
		}
	})
}

func TestCategory_Label(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryCrystals, "Crystals"},
		{CategorySpiritualJewelry, "Spiritual Jewelry"},
		{CategoryAmulets, "Amulets"},
		{CategoryTalismans, "Talismans"},
		{CategoryProtectionCharms, "Protection Charms"},
		{CategoryHealingStones, "Healing Stones"},
	}
	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.want {
			t.Errorf("%q.Label() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestCategoryOptions(t *testing.T) {
	opts := CategoryOptions()
	if len(opts) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(opts))
	}

	byValue := make(map[string]string, len(opts))
	for _, o := range opts {
		byValue[o.Value] = o.Label
	}
	if byValue["spiritual_jewelry"] != "Spiritual Jewelry" {
		t.Errorf("spiritual_jewelry label: got %q, want %q", byValue["spiritual_jewelry"], "Spiritual Jewelry")
	}
	if byValue["healing_stones"] != "Healing Stones" {
		t.Errorf("healing_stones label: got %q, want %q", byValue["healing_stones"], "Healing Stones")
	}
}
