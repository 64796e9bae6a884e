package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
	mongopkg "github.com/shenikar/geofence_alert_service/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errStaleState = errors.New("containment state is newer than sample")

type alertRepository struct {
	alerts     *mongo.Collection
	states     *mongo.Collection
	transition func(ctx context.Context, fn func(sessCtx mongo.SessionContext) (interface{}, error)) error
}

// NewAlertRepository - журнал тревог в MongoDB. Запись перехода идет в транзакции,
// поэтому нужен replica set.
func NewAlertRepository(client *mongopkg.Client) service.AlertRepository {
	return &alertRepository{
		alerts:     client.Database.Collection(alertsCollection),
		states:     client.Database.Collection(containmentStatesCollection),
		transition: client.WithTransaction,
	}
}

func (r *alertRepository) Append(ctx context.Context, alert *models.Alert) error {
	if _, err := r.alerts.InsertOne(ctx, toAlertDocument(alert)); err != nil {
		return mapWriteError(err, "failed to append alert")
	}
	return nil
}

func (r *alertRepository) AppendTransition(ctx context.Context, alert *models.Alert, state *models.ContainmentState) error {
	err := r.transition(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := r.alerts.InsertOne(sessCtx, toAlertDocument(alert)); err != nil {
			return nil, mapWriteError(err, "failed to append transition alert")
		}

		key := stateKey(state.EntityID, state.RegionID)
		// фильтр по last_sample_at не даст старому замеру перезаписать состояние;
		// при несовпадении upsert упирается в существующий _id
		_, err := r.states.UpdateOne(sessCtx,
			bson.M{"_id": key, "last_sample_at": bson.M{"$lte": state.LastSampleAt}},
			bson.M{"$set": bson.M{
				"entity_id":      state.EntityID,
				"region_id":      state.RegionID.String(),
				"is_inside":      state.IsInside,
				"last_alert_id":  state.LastAlertID,
				"last_sample_at": state.LastSampleAt,
				"updated_at":     time.Now().UTC(),
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, fmt.Errorf("%w: %s", errStaleState, key)
			}
			return nil, fmt.Errorf("failed to upsert containment state: %w", err)
		}
		return nil, nil
	})
	return err
}

func (r *alertRepository) GetByAlertID(ctx context.Context, alertID string) (*models.Alert, error) {
	var doc alertDocument
	err := r.alerts.FindOne(ctx, bson.M{"_id": alertID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return doc.model()
}

func (r *alertRepository) Acknowledge(ctx context.Context, alertID string, ack models.Acknowledgment) (*models.Alert, error) {
	alert, err := r.updateOne(ctx,
		bson.M{"_id": alertID, "acknowledgment.is_acknowledged": false},
		bson.M{"$set": bson.M{"acknowledgment": acknowledgmentDocument{
			IsAcknowledged: true,
			AcknowledgedBy: ack.AcknowledgedBy,
			AcknowledgedAt: ack.AcknowledgedAt,
			Response:       ack.Response,
		}}},
	)
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	if err := r.checkExists(ctx, alertID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrAlreadyAcknowledged)
}

func (r *alertRepository) Resolve(ctx context.Context, alertID string, at time.Time) (*models.Alert, error) {
	alert, err := r.updateOne(ctx,
		bson.M{"_id": alertID, "resolved_at": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"resolved_at": at}},
	)
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}

	if err := r.checkExists(ctx, alertID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrAlreadyResolved)
}

func (r *alertRepository) updateOne(ctx context.Context, filter, update bson.M) (*models.Alert, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc alertDocument
	if err := r.alerts.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.model()
}

func (r *alertRepository) checkExists(ctx context.Context, alertID string) error {
	count, err := r.alerts.CountDocuments(ctx, bson.M{"_id": alertID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("failed to check alert existence: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("alert %s: %w", alertID, service.ErrNotFound)
	}
	return nil
}

func (r *alertRepository) AcknowledgeAllForEntity(ctx context.Context, entityID string, ack models.Acknowledgment) (int64, error) {
	result, err := r.alerts.UpdateMany(ctx,
		bson.M{"entity_id": entityID, "acknowledgment.is_acknowledged": false},
		bson.M{"$set": bson.M{"acknowledgment": acknowledgmentDocument{
			IsAcknowledged: true,
			AcknowledgedBy: ack.AcknowledgedBy,
			AcknowledgedAt: ack.AcknowledgedAt,
			Response:       ack.Response,
		}}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to acknowledge entity alerts: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *alertRepository) DeleteAcknowledgedForEntity(ctx context.Context, entityID string) (int64, error) {
	result, err := r.alerts.DeleteMany(ctx, bson.M{"entity_id": entityID, "acknowledgment.is_acknowledged": true})
	if err != nil {
		return 0, fmt.Errorf("failed to delete acknowledged alerts: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *alertRepository) Query(ctx context.Context, filter models.AlertFilter, limit, offset int) ([]*models.Alert, int64, error) {
	query := buildAlertFilter(filter)

	total, err := r.alerts.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	if total == 0 {
		return make([]*models.Alert, 0), 0, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.alerts.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer cursor.Close(ctx)

	alerts := make([]*models.Alert, 0, limit)
	for cursor.Next(ctx) {
		var doc alertDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode alert: %w", err)
		}
		alert, err := doc.model()
		if err != nil {
			return nil, 0, err
		}
		alerts = append(alerts, alert)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("error alert iteration: %w", err)
	}
	return alerts, total, nil
}

func (r *alertRepository) LatestTransitionFor(ctx context.Context, entityID string, regionID uuid.UUID) (*models.Alert, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	var doc alertDocument
	err := r.alerts.FindOne(ctx, bson.M{
		"entity_id": entityID,
		"region_id": regionID.String(),
		"type": bson.M{"$in": bson.A{
			string(models.AlertGeofenceEntry),
			string(models.AlertGeofenceExit),
		}},
	}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest transition: %w", err)
	}
	return doc.model()
}

func (r *alertRepository) GetContainmentState(ctx context.Context, entityID string, regionID uuid.UUID) (*models.ContainmentState, error) {
	var doc containmentStateDocument
	err := r.states.FindOne(ctx, bson.M{"_id": stateKey(entityID, regionID)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get containment state: %w", err)
	}
	return doc.model()
}

func (r *alertRepository) CountUnacknowledgedBySeverity(ctx context.Context) (map[models.Severity]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"acknowledgment.is_acknowledged": false}}},
		{{Key: "$group", Value: bson.M{"_id": "$severity", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.alerts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count unacknowledged alerts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Severity string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode severity counts: %w", err)
	}

	counts := make(map[models.Severity]int64, len(rows))
	for _, row := range rows {
		counts[models.Severity(row.Severity)] = row.Count
	}
	return counts, nil
}

// mapWriteError переводит дубликат _id в ErrDuplicateKey
func mapWriteError(err error, msg string) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", msg, service.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
