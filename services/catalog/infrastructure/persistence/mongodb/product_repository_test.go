package mongodb

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ghuser/charmstore/services/catalog/domain/models"
	"github.com/ghuser/charmstore/services/catalog/domain/repositories"
)

func TestBuildProductFilter_Empty(t *testing.T) {
	filter := buildProductFilter(repositories.ProductFilter{Limit: 20})
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestBuildProductFilter_Category(t *testing.T) {
	filter := buildProductFilter(repositories.ProductFilter{Category: models.CategoryCrystals})
	if filter["category"] != "crystals" {
		t.Errorf("category: got %v, want %q", filter["category"], "crystals")
	}
	if len(filter) != 1 {
		t.Errorf("expected single clause, got %v", filter)
	}
}

func TestBuildProductFilter_Featured(t *testing.T) {
	featured := false
	filter := buildProductFilter(repositories.ProductFilter{Featured: &featured})
	if filter["featured"] != false {
		t.Errorf("featured: got %v, want false", filter["featured"])
	}
}

func TestBuildProductFilter_Search(t *testing.T) {
	filter := buildProductFilter(repositories.ProductFilter{Search: "amethyst"})

	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause, got %v", filter)
	}
	if len(or) != 3 {
		t.Fatalf("expected 3 search branches, got %d", len(or))
	}

	fields := map[string]bool{}
	for _, clause := range or {
		m, ok := clause.(bson.M)
		if !ok {
			t.Fatalf("unexpected clause type %T", clause)
		}
		for field, v := range m {
			re, ok := v.(primitive.Regex)
			if !ok {
				t.Fatalf("%s: expected regex, got %T", field, v)
			}
			if re.Options != "i" {
				t.Errorf("%s: expected case-insensitive regex, got options %q", field, re.Options)
			}
			if re.Pattern != "amethyst" {
				t.Errorf("%s: pattern %q", field, re.Pattern)
			}
			fields[field] = true
		}
	}
	for _, want := range []string{"name", "description", "spiritual_benefits"} {
		if !fields[want] {
			t.Errorf("search does not cover %q", want)
		}
	}
}

func TestBuildProductFilter_SearchEscapesRegexMeta(t *testing.T) {
	filter := buildProductFilter(repositories.ProductFilter{Search: "18k (gold)"})

	or := filter["$or"].(bson.A)
	re := or[0].(bson.M)["name"].(primitive.Regex)
	if re.Pattern == "18k (gold)" {
		t.Fatal("expected regex metacharacters to be escaped")
	}
}

func TestBuildProductFilter_Conjunction(t *testing.T) {
	featured := true
	filter := buildProductFilter(repositories.ProductFilter{
		Category: models.CategoryHealingStones,
		Featured: &featured,
		Search:   "quartz",
	})

	if len(filter) != 3 {
		t.Fatalf("expected 3 ANDed clauses, got %v", filter)
	}
	if filter["category"] != "healing_stones" {
		t.Errorf("category clause missing: %v", filter)
	}
	if filter["featured"] != true {
		t.Errorf("featured clause missing: %v", filter)
	}
	if _, ok := filter["$or"]; !ok {
		t.Errorf("search clause missing: %v", filter)
	}
}

func TestDocProductRoundTrip(t *testing.T) {
	p := &models.Product{
		ID:                "7b0e9c4e-9d0e-4a4a-8baf-2f9a1f6f3c21",
		Name:              "Amethyst Crystal Cluster",
		Description:       "Calming purple cluster.",
		Price:             45.99,
		Category:          models.CategoryCrystals,
		ImageURL:          "https://example.com/a.jpg",
		SpiritualBenefits: []string{"Stress relief"},
		Materials:         []string{"Natural Amethyst"},
		Origin:            "Brazil",
		Featured:          true,
		InStock:           true,
		CreatedAt:         time.Date(2025, 8, 4, 12, 0, 0, 0, time.UTC),
	}

	got := docToProduct(productToDoc(p))
	if got.ID != p.ID || got.Name != p.Name || got.Category != p.Category ||
		got.Price != p.Price || got.Featured != p.Featured || !got.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}
