package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
)

type EntityRepository struct {
	db *pgxpool.Pool
}

func NewEntityRepository(db *pgxpool.Pool) service.EntityRepository {
	return &EntityRepository{db: db}
}

// SaveLocation сохраняет последний замер сущности. Замер старее сохраненного
// только продлевает last_seen.
func (r *EntityRepository) SaveLocation(ctx context.Context, sample *models.LocationSample) error {
	query := `
		INSERT INTO tracked_entities (entity_id, longitude, latitude, accuracy, sampled_at, first_seen, last_seen)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (entity_id) DO UPDATE SET
			longitude  = CASE WHEN EXCLUDED.sampled_at >= tracked_entities.sampled_at THEN EXCLUDED.longitude ELSE tracked_entities.longitude END,
			latitude   = CASE WHEN EXCLUDED.sampled_at >= tracked_entities.sampled_at THEN EXCLUDED.latitude ELSE tracked_entities.latitude END,
			accuracy   = CASE WHEN EXCLUDED.sampled_at >= tracked_entities.sampled_at THEN EXCLUDED.accuracy ELSE tracked_entities.accuracy END,
			sampled_at = GREATEST(EXCLUDED.sampled_at, tracked_entities.sampled_at),
			last_seen  = NOW();
	`
	_, err := r.db.Exec(ctx, query,
		sample.EntityID,
		sample.Longitude,
		sample.Latitude,
		sample.Accuracy,
		sample.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save entity location: %w", err)
	}
	return nil
}

// GetLastLocation возвращает последний замер сущности
func (r *EntityRepository) GetLastLocation(ctx context.Context, entityID string) (*models.LocationSample, error) {
	query := `
		SELECT entity_id, longitude, latitude, accuracy, sampled_at
		FROM tracked_entities
		WHERE entity_id = $1;
	`
	sample := &models.LocationSample{}
	err := r.db.QueryRow(ctx, query, entityID).Scan(
		&sample.EntityID,
		&sample.Longitude,
		&sample.Latitude,
		&sample.Accuracy,
		&sample.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("entity %s: %w", entityID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get entity location: %w", err)
	}
	return sample, nil
}

// Exists сообщает, известна ли сущность по замерам или тревогам
func (r *EntityRepository) Exists(ctx context.Context, entityID string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM tracked_entities WHERE entity_id = $1)
			OR EXISTS(SELECT 1 FROM alerts WHERE entity_id = $1);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, entityID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check entity existence: %w", err)
	}
	return exists, nil
}

// CountActiveSince возвращает количество сущностей, присылавших замеры после since
func (r *EntityRepository) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tracked_entities WHERE last_seen >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active entities: %w", err)
	}
	return count, nil
}
