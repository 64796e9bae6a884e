package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes создает индексы коллекций; повторный вызов ничего не меняет
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		alertsCollection: {
			{Keys: bson.D{{Key: "entity_id", Value: 1}, {Key: "region_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "acknowledgment.is_acknowledged", Value: 1}, {Key: "severity", Value: 1}}},
		},
		regionsCollection: {
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "risk_level", Value: -1}}},
		},
		entitiesCollection: {
			{Keys: bson.D{{Key: "last_seen", Value: 1}}},
		},
	}

	for collection, keys := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, keys); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}
	return nil
}
