package repositories

import (
	"context"

	"github.com/ghuser/charmstore/services/catalog/domain/models"
)

// ProductFilter describes the conjunctive predicate for Find. Zero-valued
// fields are not applied; all supplied fields are ANDed together.
type ProductFilter struct {
	// Category requires an exact match on the enum value when non-empty.
	Category models.Category
	// Featured requires an exact boolean match when non-nil.
	Featured *bool
	// Search requires a case-insensitive substring match on at least one of
	// name, description, or any spiritual benefit.
	Search string
	// Limit caps the number of returned documents. Must be positive.
	Limit int64
}

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	// Find retrieves up to filter.Limit products matching the filter, in the
	// store's natural order. No match yields an empty slice, not an error.
	Find(ctx context.Context, filter ProductFilter) ([]*models.Product, error)

	// GetByID retrieves a product by its ID.
	// Returns domain.ErrProductNotFound when no document matches.
	GetByID(ctx context.Context, id string) (*models.Product, error)

	// Count reports the total number of products in the collection.
	Count(ctx context.Context) (int64, error)

	// InsertMany persists the given products. Used only by the seeder.
	InsertMany(ctx context.Context, products []*models.Product) error

	// EnsureIndexes creates the collection's indexes, including the unique
	// index on name that guards against duplicate seeding.
	EnsureIndexes(ctx context.Context) error
}
