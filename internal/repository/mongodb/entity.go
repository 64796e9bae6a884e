package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type entityRepository struct {
	entities *mongo.Collection
	alerts   *mongo.Collection
}

func NewEntityRepository(db *mongo.Database) service.EntityRepository {
	return &entityRepository{
		entities: db.Collection(entitiesCollection),
		alerts:   db.Collection(alertsCollection),
	}
}

// SaveLocation обновляет положение только более новым замером, last_seen продлевается всегда
func (r *entityRepository) SaveLocation(ctx context.Context, sample *models.LocationSample) error {
	now := time.Now().UTC()
	_, err := r.entities.UpdateOne(ctx,
		bson.M{"_id": sample.EntityID, "sampled_at": bson.M{"$lte": sample.Timestamp}},
		bson.M{
			"$set": bson.M{
				"longitude":  sample.Longitude,
				"latitude":   sample.Latitude,
				"accuracy":   sample.Accuracy,
				"sampled_at": sample.Timestamp,
				"last_seen":  now,
			},
			"$setOnInsert": bson.M{"first_seen": now},
		},
		options.Update().SetUpsert(true),
	)
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("failed to save entity location: %w", err)
	}

	// сохраненный замер новее
	if _, err := r.entities.UpdateOne(ctx,
		bson.M{"_id": sample.EntityID},
		bson.M{"$set": bson.M{"last_seen": now}},
	); err != nil {
		return fmt.Errorf("failed to touch entity: %w", err)
	}
	return nil
}

func (r *entityRepository) GetLastLocation(ctx context.Context, entityID string) (*models.LocationSample, error) {
	var doc entityDocument
	err := r.entities.FindOne(ctx, bson.M{"_id": entityID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("entity %s: %w", entityID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get entity location: %w", err)
	}
	return &models.LocationSample{
		EntityID:  doc.EntityID,
		Longitude: doc.Longitude,
		Latitude:  doc.Latitude,
		Accuracy:  doc.Accuracy,
		Timestamp: doc.SampledAt.UTC(),
	}, nil
}

func (r *entityRepository) Exists(ctx context.Context, entityID string) (bool, error) {
	limit := options.Count().SetLimit(1)

	count, err := r.entities.CountDocuments(ctx, bson.M{"_id": entityID}, limit)
	if err != nil {
		return false, fmt.Errorf("failed to check entity existence: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	count, err = r.alerts.CountDocuments(ctx, bson.M{"entity_id": entityID}, limit)
	if err != nil {
		return false, fmt.Errorf("failed to check entity alerts: %w", err)
	}
	return count > 0, nil
}

func (r *entityRepository) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	count, err := r.entities.CountDocuments(ctx, bson.M{"last_seen": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("failed to count active entities: %w", err)
	}
	return int(count), nil
}
