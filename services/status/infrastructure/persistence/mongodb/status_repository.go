package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ghuser/charmstore/pkg/database"
	"github.com/ghuser/charmstore/services/status/domain/models"
)

const collectionName = "status_checks"

// StatusCheckRepository implements repositories.StatusCheckRepository against MongoDB.
type StatusCheckRepository struct {
	coll *mongo.Collection
}

// NewStatusCheckRepository returns a StatusCheckRepository backed by the
// status_checks collection of the given store.
func NewStatusCheckRepository(db *database.Mongo) *StatusCheckRepository {
	return &StatusCheckRepository{coll: db.Collection(collectionName)}
}

type statusCheckDocument struct {
	ID         string    `bson:"id"`
	ClientName string    `bson:"client_name"`
	Timestamp  time.Time `bson:"timestamp"`
}

// Insert persists a new status check.
func (r *StatusCheckRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	doc := statusCheckDocument{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// List retrieves up to limit status checks in natural order.
func (r *StatusCheckRepository) List(ctx context.Context, limit int64) ([]*models.StatusCheck, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("query status checks: %w", err)
	}
	defer cur.Close(ctx)

	checks := []*models.StatusCheck{}
	for cur.Next(ctx) {
		var doc statusCheckDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode status check: %w", err)
		}
		checks = append(checks, &models.StatusCheck{
			ID:         doc.ID,
			ClientName: doc.ClientName,
			Timestamp:  doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate status checks: %w", err)
	}
	return checks, nil
}
