// Package store implementa a camada de persistência do catálogo sobre MongoDB.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound indica que o benefício não existe no catálogo
var ErrNotFound = errors.New("benefit not found")

const (
	benefitsCollection   = "benefits"
	searchLogsCollection = "search_logs"
)

// Connect abre a conexão com o MongoDB e valida com um ping
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client.Database(dbName), nil
}

// EnsureIndexes cria os índices usados pelas consultas de busca e populares
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	benefits := db.Collection(benefitsCollection)
	_, err := benefits.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "region", Value: 1}}},
		{Keys: bson.D{{Key: "viewCount", Value: -1}}},
		{Keys: bson.D{{Key: "fetchedAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure benefit indexes: %w", err)
	}

	logs := db.Collection(searchLogsCollection)
	_, err = logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "sessionHash", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure search log indexes: %w", err)
	}
	return nil
}
