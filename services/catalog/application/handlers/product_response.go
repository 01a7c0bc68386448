package handlers

import (
	"time"

	"github.com/ghuser/charmstore/services/catalog/domain/models"
)

// ProductResponse is the wire shape of a product, shared by every catalog
// endpoint that returns products.
type ProductResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Category          string    `json:"category"`
	ImageURL          string    `json:"image_url"`
	SpiritualBenefits []string  `json:"spiritual_benefits"`
	Materials         []string  `json:"materials"`
	Origin            string    `json:"origin,omitempty"`
	Featured          bool      `json:"featured"`
	InStock           bool      `json:"in_stock"`
	CreatedAt         time.Time `json:"created_at"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Category:          p.Category.String(),
		ImageURL:          p.ImageURL,
		SpiritualBenefits: p.SpiritualBenefits,
		Materials:         p.Materials,
		Origin:            p.Origin,
		Featured:          p.Featured,
		InStock:           p.InStock,
		CreatedAt:         p.CreatedAt,
	}
}

func newProductListResponse(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = newProductResponse(p)
	}
	return out
}
