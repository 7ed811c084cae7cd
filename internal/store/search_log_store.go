package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/welfarehub/benefits-api/internal/models"
)

// SearchLogStore persiste o registro append-only de buscas
type SearchLogStore struct {
	coll *mongo.Collection
}

func NewSearchLogStore(db *mongo.Database) *SearchLogStore {
	return &SearchLogStore{coll: db.Collection(searchLogsCollection)}
}

func (s *SearchLogStore) Insert(ctx context.Context, entry *models.SearchLogEntry) error {
	if _, err := s.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert search log: %w", err)
	}
	return nil
}
