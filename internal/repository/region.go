package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
)

const regionColumns = `
	id,
	name,
	description,
	shape,
	vertices,
	center_lon,
	center_lat,
	radius_meters,
	category,
	risk_level,
	is_active,
	created_at,
	updated_at`

type RegionRepository struct {
	db *pgxpool.Pool
}

func NewRegionRepository(db *pgxpool.Pool) service.RegionRepository {
	return &RegionRepository{db: db}
}

// Create создает новую геозону в бд
func (r *RegionRepository) Create(ctx context.Context, region *models.Region) error {
	vertices, centerLon, centerLat, err := encodeGeometry(region)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO regions (name, description, shape, vertices, center_lon, center_lat, radius_meters, category, risk_level, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		region.Name,
		region.Description,
		region.Shape,
		vertices,
		centerLon,
		centerLat,
		region.RadiusMeters,
		region.Category,
		region.RiskLevel,
		region.IsActive,
	).Scan(&region.ID, &region.CreatedAt, &region.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

// GetByID возвращает геозону по ее UUID
func (r *RegionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	query := `SELECT ` + regionColumns + ` FROM regions WHERE id = $1;`

	region, err := scanRegion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("region with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get region by id: %w", err)
	}
	return region, nil
}

func (r *RegionRepository) Update(ctx context.Context, region *models.Region) error {
	vertices, centerLon, centerLat, err := encodeGeometry(region)
	if err != nil {
		return err
	}

	query := `
		UPDATE regions SET
			name = $1,
			description = $2,
			shape = $3,
			vertices = $4,
			center_lon = $5,
			center_lat = $6,
			radius_meters = $7,
			category = $8,
			risk_level = $9,
			is_active = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		region.Name,
		region.Description,
		region.Shape,
		vertices,
		centerLon,
		centerLat,
		region.RadiusMeters,
		region.Category,
		region.RiskLevel,
		region.IsActive,
		region.ID,
	).Scan(&region.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("region with id %s not found for update: %w", region.ID, service.ErrNotFound)
		}
		return fmt.Errorf("failed to update region: %w", err)
	}
	return nil
}

// Deactivate снимает геозону с проверки, история тревог сохраняется
func (r *RegionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE regions SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate region: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("region with id %s not found for deactivate: %w", id, service.ErrNotFound)
	}
	return nil
}

// List возвращает страницу геозон и их общее количество
func (r *RegionRepository) List(ctx context.Context, page, pageSize int) ([]*models.Region, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM regions;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count regions: %w", err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + regionColumns + ` FROM regions ORDER BY created_at DESC LIMIT $1 OFFSET $2;`

	regions, err := r.queryRegions(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return regions, total, nil
}

// ListActive возвращает все активные геозоны
func (r *RegionRepository) ListActive(ctx context.Context) ([]*models.Region, error) {
	query := `SELECT ` + regionColumns + ` FROM regions WHERE is_active ORDER BY risk_level DESC, created_at;`
	return r.queryRegions(ctx, query)
}

func (r *RegionRepository) queryRegions(ctx context.Context, query string, args ...any) ([]*models.Region, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	regions := make([]*models.Region, 0)
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan region row: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return regions, nil
}

func scanRegion(row pgx.Row) (*models.Region, error) {
	region := &models.Region{}
	var (
		vertices             []byte
		centerLon, centerLat *float64
	)
	err := row.Scan(
		&region.ID,
		&region.Name,
		&region.Description,
		&region.Shape,
		&vertices,
		&centerLon,
		&centerLat,
		&region.RadiusMeters,
		&region.Category,
		&region.RiskLevel,
		&region.IsActive,
		&region.CreatedAt,
		&region.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(vertices) > 0 {
		if err := json.Unmarshal(vertices, &region.Vertices); err != nil {
			return nil, fmt.Errorf("failed to decode region vertices: %w", err)
		}
	}
	if centerLon != nil && centerLat != nil {
		region.Center = &models.Coordinate{Longitude: *centerLon, Latitude: *centerLat}
	}
	return region, nil
}

// encodeGeometry раскладывает геометрию по колонкам: вершины полигона в JSONB, центр круга в две колонки
func encodeGeometry(region *models.Region) ([]byte, *float64, *float64, error) {
	var vertices []byte
	if len(region.Vertices) > 0 {
		raw, err := json.Marshal(region.Vertices)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to encode region vertices: %w", err)
		}
		vertices = raw
	}

	if region.Center == nil {
		return vertices, nil, nil, nil
	}
	lon, lat := region.Center.Longitude, region.Center.Latitude
	return vertices, &lon, &lat, nil
}
