package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ghuser/charmstore/pkg/logger"
)

// Mongo wraps a mongo.Client plus the logical database handle the service
// operates on. One instance is constructed at startup and shared by all
// request handlers; the driver multiplexes connections internally.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB client for the given URL and database name and
// verifies connectivity with a short ping deadline. Callers must Close the
// returned handle on shutdown.
func Connect(ctx context.Context, url, dbName string, log logger.Logger) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(url).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("mongodb connected", "database", dbName)
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Ping verifies the server is reachable. Satisfies httpx.HealthChecker.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle for the named collection in the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
