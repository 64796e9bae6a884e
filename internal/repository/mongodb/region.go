package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type regionRepository struct {
	collection *mongo.Collection
}

func NewRegionRepository(db *mongo.Database) service.RegionRepository {
	return &regionRepository{
		collection: db.Collection(regionsCollection),
	}
}

func (r *regionRepository) Create(ctx context.Context, region *models.Region) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	region.ID = uuid.New()
	region.CreatedAt = now
	region.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, toRegionDocument(region)); err != nil {
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

func (r *regionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	var doc regionDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("region with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return doc.model()
}

func (r *regionRepository) Update(ctx context.Context, region *models.Region) error {
	region.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	doc := toRegionDocument(region)

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": bson.M{
			"name":          doc.Name,
			"description":   doc.Description,
			"shape":         doc.Shape,
			"vertices":      doc.Vertices,
			"center":        doc.Center,
			"radius_meters": doc.RadiusMeters,
			"category":      doc.Category,
			"risk_level":    doc.RiskLevel,
			"is_active":     doc.IsActive,
			"updated_at":    doc.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update region: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("region with id %s not found for update: %w", region.ID, service.ErrNotFound)
	}
	return nil
}

func (r *regionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate region: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("region with id %s not found for deactivate: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *regionRepository) List(ctx context.Context, page, pageSize int) ([]*models.Region, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count regions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	regions, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	return regions, total, nil
}

func (r *regionRepository) ListActive(ctx context.Context) ([]*models.Region, error) {
	opts := options.Find().SetSort(bson.D{{Key: "risk_level", Value: -1}, {Key: "created_at", Value: 1}})
	return r.find(ctx, bson.M{"is_active": true}, opts)
}

func (r *regionRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Region, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer cursor.Close(ctx)

	regions := make([]*models.Region, 0)
	for cursor.Next(ctx) {
		var doc regionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode region: %w", err)
		}
		region, err := doc.model()
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error region iteration: %w", err)
	}
	return regions, nil
}
