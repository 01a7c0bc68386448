package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is the core aggregate for the catalog context. Products are created
// once (by the seeder) and never mutated afterwards.
type Product struct {
	ID                string
	Name              string
	Description       string
	Price             float64
	Category          Category
	ImageURL          string
	SpiritualBenefits []string
	Materials         []string
	Origin            string // optional
	Featured          bool
	InStock           bool
	CreatedAt         time.Time
}

// ProductParams carries the caller-supplied attributes for NewProduct.
// ID and CreatedAt are always generated, never accepted.
type ProductParams struct {
	Name              string
	Description       string
	Price             float64
	Category          Category
	ImageURL          string
	SpiritualBenefits []string
	Materials         []string
	Origin            string
	Featured          bool
	InStock           bool
}

// NewProduct constructs a valid Product with generated ID and current timestamp.
// Enforces the aggregate invariants: non-empty name, non-negative price, and a
// category inside the closed enum.
func NewProduct(p ProductParams) (*Product, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("product name must not be empty")
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("product price must not be negative, got %v", p.Price)
	}
	if !p.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", p.Category)
	}

	return &Product{
		ID:                uuid.NewString(),
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Category:          p.Category,
		ImageURL:          p.ImageURL,
		SpiritualBenefits: p.SpiritualBenefits,
		Materials:         p.Materials,
		Origin:            p.Origin,
		Featured:          p.Featured,
		InStock:           p.InStock,
		CreatedAt:         time.Now().UTC(),
	}, nil
}
