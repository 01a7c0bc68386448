package services

import (
	"context"
	"fmt"

	catalogdomain "github.com/ghuser/charmstore/services/catalog/domain"
	"github.com/ghuser/charmstore/services/catalog/domain/models"
	"github.com/ghuser/charmstore/services/catalog/domain/repositories"
)

// List limits: callers may request between 1 and 100 products and get 20 by
// default; the featured shorthand is pinned at 6 for the homepage rail.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	FeaturedLimit    = 6
)

// ListQuery carries the caller-supplied list parameters before domain validation.
type ListQuery struct {
	Category string // raw value; empty means no category filter
	Featured *bool
	Search   string
	Limit    int
}

// CatalogService answers read queries over the product collection. It owns the
// domain validation that must happen before any filter reaches the store.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService returns a CatalogService wired with the given repository.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListProducts validates q and returns matching products in natural order.
// Out-of-range limits and unknown categories are rejected without a store
// round trip.
func (s *CatalogService) ListProducts(ctx context.Context, q ListQuery) ([]*models.Product, error) {
	if q.Limit < 1 || q.Limit > MaxListLimit {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", catalogdomain.ErrInvalidLimit, MaxListLimit, q.Limit)
	}

	filter := repositories.ProductFilter{
		Featured: q.Featured,
		Search:   q.Search,
		Limit:    int64(q.Limit),
	}

	if q.Category != "" {
		category, err := models.ParseCategory(q.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidCategory, err)
		}
		filter.Category = category
	}

	products, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by id.
// Returns ErrProductNotFound for unknown ids.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// FeaturedProducts returns up to FeaturedLimit products flagged for highlight
// placement. Shorthand for ListProducts with featured=true.
func (s *CatalogService) FeaturedProducts(ctx context.Context) ([]*models.Product, error) {
	featured := true
	products, err := s.repo.Find(ctx, repositories.ProductFilter{
		Featured: &featured,
		Limit:    FeaturedLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	return products, nil
}

// Categories returns the fixed category enum as value/label pairs.
// Static — no store access.
func (s *CatalogService) Categories() []models.CategoryOption {
	return models.CategoryOptions()
}
