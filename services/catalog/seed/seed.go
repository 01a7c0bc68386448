// Package seed populates the product collection with the initial catalog on
// first boot. It is invoked once by the process entry point before the HTTP
// server starts accepting traffic; any failure is a fatal startup error, since
// serving an empty catalog is worse than not serving at all.
package seed

import (
	"context"
	"fmt"

	"github.com/ghuser/charmstore/pkg/logger"
	"github.com/ghuser/charmstore/services/catalog/domain/models"
	"github.com/ghuser/charmstore/services/catalog/domain/repositories"
)

// Run ensures the product collection is non-empty. If any document already
// exists the run is a no-op, so repeated startups never duplicate data. The
// unique name index created by EnsureIndexes backs the empty-check up against
// two instances racing on a fresh collection.
func Run(ctx context.Context, repo repositories.ProductRepository, log logger.Logger) error {
	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if count > 0 {
		log.Info("seed skipped, catalog already populated", "products", count)
		return nil
	}

	products := make([]*models.Product, len(sampleProducts))
	for i, params := range sampleProducts {
		product, err := models.NewProduct(params)
		if err != nil {
			return fmt.Errorf("seed: build product %q: %w", params.Name, err)
		}
		products[i] = product
	}

	if err := repo.InsertMany(ctx, products); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info("seeded sample catalog", "products", len(products))
	return nil
}
