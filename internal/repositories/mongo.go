package repositories

import (
	"context"
	"fmt"
	"time"

	"delivery_management/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect dials MongoDB, verifies the connection with a ping and returns
// the database handle the repositories operate on.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	timeout := time.Duration(cfg.MongoDB.ConnectTimeoutSeconds) * time.Second

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb unavailable: %w", err)
	}

	return client.Database(cfg.MongoDB.Database), nil
}
