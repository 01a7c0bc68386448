package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghuser/charmstore/pkg/database"
	catalogdomain "github.com/ghuser/charmstore/services/catalog/domain"
	"github.com/ghuser/charmstore/services/catalog/domain/models"
	"github.com/ghuser/charmstore/services/catalog/domain/repositories"
)

const collectionName = "products"

// ProductRepository implements repositories.ProductRepository against MongoDB.
type ProductRepository struct {
	coll *mongo.Collection
}

// NewProductRepository returns a ProductRepository backed by the products
// collection of the given store.
func NewProductRepository(db *database.Mongo) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collectionName)}
}

// productDocument is the bson shape of a Product. The application-level id is
// stored in its own field; _id is left to the driver, matching how every query
// addresses documents.
type productDocument struct {
	ID                string    `bson:"id"`
	Name              string    `bson:"name"`
	Description       string    `bson:"description"`
	Price             float64   `bson:"price"`
	Category          string    `bson:"category"`
	ImageURL          string    `bson:"image_url"`
	SpiritualBenefits []string  `bson:"spiritual_benefits"`
	Materials         []string  `bson:"materials"`
	Origin            string    `bson:"origin,omitempty"`
	Featured          bool      `bson:"featured"`
	InStock           bool      `bson:"in_stock"`
	CreatedAt         time.Time `bson:"created_at"`
}

// Find retrieves up to filter.Limit products matching the filter in natural order.
func (r *ProductRepository) Find(ctx context.Context, filter repositories.ProductFilter) ([]*models.Product, error) {
	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cur, err := r.coll.Find(ctx, buildProductFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer cur.Close(ctx)

	products := []*models.Product{}
	for cur.Next(ctx) {
		var doc productDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, docToProduct(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a product by its application id.
// Returns ErrProductNotFound when no document matches.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var doc productDocument
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return docToProduct(doc), nil
}

// Count reports the total number of products in the collection.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// InsertMany persists the given products in one bulk write.
func (r *ProductRepository) InsertMany(ctx context.Context, products []*models.Product) error {
	docs := make([]any, len(products))
	for i, p := range products {
		docs[i] = productToDoc(p)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

// EnsureIndexes creates the id and name indexes. The unique name index is the
// backstop that keeps two seeders racing on an empty collection from
// double-inserting the sample set.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "featured", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}

// buildProductFilter translates a ProductFilter into a conjunctive bson
// predicate. Search terms are regex-escaped so they match as literal
// substrings; a regex against the spiritual_benefits array matches any element.
func buildProductFilter(f repositories.ProductFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category.String()
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"spiritual_benefits": re},
		}
	}
	return filter
}

func docToProduct(doc productDocument) *models.Product {
	return &models.Product{
		ID:                doc.ID,
		Name:              doc.Name,
		Description:       doc.Description,
		Price:             doc.Price,
		Category:          models.Category(doc.Category),
		ImageURL:          doc.ImageURL,
		SpiritualBenefits: doc.SpiritualBenefits,
		Materials:         doc.Materials,
		Origin:            doc.Origin,
		Featured:          doc.Featured,
		InStock:           doc.InStock,
		CreatedAt:         doc.CreatedAt,
	}
}

func productToDoc(p *models.Product) productDocument {
	return productDocument{
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
