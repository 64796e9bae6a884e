package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
)

const activeRegionsKey = "regions:active"

// RegionCache хранит снимок активных геозон в Redis
type RegionCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRegionCache(redisClient *redis.Client, ttl time.Duration) service.RegionCache {
	return &RegionCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetActiveRegions возвращает (nil, nil) при промахе кеша
func (c *RegionCache) GetActiveRegions(ctx context.Context) ([]*models.Region, error) {
	val, err := c.redisClient.Get(ctx, activeRegionsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active regions from cache: %w", err)
	}

	regions := make([]*models.Region, 0)
	if err := json.Unmarshal(val, &regions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active regions from cache: %w", err)
	}
	return regions, nil
}

func (c *RegionCache) SetActiveRegions(ctx context.Context, regions []*models.Region) error {
	if regions == nil {
		regions = make([]*models.Region, 0)
	}
	val, err := json.Marshal(regions)
	if err != nil {
		return fmt.Errorf("failed to marshal active regions for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, activeRegionsKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set active regions in cache: %w", err)
	}
	return nil
}

func (c *RegionCache) InvalidateActiveRegions(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, activeRegionsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate active regions cache: %w", err)
	}
	return nil
}
