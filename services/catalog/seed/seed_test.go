package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/ghuser/charmstore/pkg/logger"
	"github.com/ghuser/charmstore/services/catalog/domain/models"
	"github.com/ghuser/charmstore/services/catalog/domain/repositories"
)

type fakeRepo struct {
	products       []*models.Product
	indexesEnsured bool
	countErr       error
	insertErr      error
}

func (f *fakeRepo) Find(_ context.Context, _ repositories.ProductFilter) ([]*models.Product, error) {
	return f.products, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*models.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.products)), nil
}

func (f *fakeRepo) InsertMany(_ context.Context, products []*models.Product) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.products = append(f.products, products...)
	return nil
}

func (f *fakeRepo) EnsureIndexes(_ context.Context) error {
	f.indexesEnsured = true
	return nil
}

func testLogger() logger.Logger {
	return logger.NewDiscard()
}

func TestRun_SeedsEmptyCollection(t *testing.T) {
	repo := &fakeRepo{}

	if err := Run(context.Background(), repo, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.products) != 6 {
		t.Fatalf("expected 6 seeded products, got %d", len(repo.products))
	}
	if !repo.indexesEnsured {
		t.Error("expected indexes to be ensured before seeding")
	}

	featured := 0
	for _, p := range repo.products {
		if p.ID == "" || p.CreatedAt.IsZero() {
			t.Errorf("product %q missing generated fields", p.Name)
		}
		if !p.Category.Valid() {
			t.Errorf("product %q has category outside the enum: %q", p.Name, p.Category)
		}
		if p.Featured {
			featured++
		}
	}
	if featured != 3 {
		t.Errorf("expected 3 featured products in the sample set, got %d", featured)
	}
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	repo := &fakeRepo{}

	if err := Run(context.Background(), repo, testLogger()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := len(repo.products)

	if err := Run(context.Background(), repo, testLogger()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(repo.products) != first {
		t.Fatalf("second run changed the collection: %d -> %d", first, len(repo.products))
	}
}

func TestRun_SkipsPartiallyPopulatedCollection(t *testing.T) {
	existing, err := models.NewProduct(models.ProductParams{
		Name:     "Lone Talisman",
		Price:    9.99,
		Category: models.CategoryTalismans,
		InStock:  true,
	})
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}
	repo := &fakeRepo{products: []*models.Product{existing}}

	if err := Run(context.Background(), repo, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.products) != 1 {
		t.Fatalf("seeder must not touch a non-empty collection, got %d products", len(repo.products))
	}
}

func TestRun_CountFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{countErr: errors.New("server selection timeout")}

	if err := Run(context.Background(), repo, testLogger()); err == nil {
		t.Fatal("expected error when the store is unreachable")
	}
}

func TestRun_InsertFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("write concern error")}

	if err := Run(context.Background(), repo, testLogger()); err == nil {
		t.Fatal("expected error when the bulk insert fails")
	}
}

func TestSampleProducts_MatchStorefrontExpectations(t *testing.T) {
	names := make(map[string]models.ProductParams, len(sampleProducts))
	for _, p := range sampleProducts {
		names[p.Name] = p
	}

	amethyst, ok := names["Amethyst Crystal Cluster"]
	if !ok {
		t.Fatal("sample set missing Amethyst Crystal Cluster")
	}
	if amethyst.Category != models.CategoryCrystals || !amethyst.Featured {
		t.Errorf("unexpected amethyst definition: %+v", amethyst)
	}

	rose, ok := names["Rose Quartz Heart Stone"]
	if !ok {
		t.Fatal("sample set missing Rose Quartz Heart Stone")
	}
	if rose.Category != models.CategoryHealingStones {
		t.Errorf("rose quartz category: got %q, want healing_stones", rose.Category)
	}
}
