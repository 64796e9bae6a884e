package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/geofence"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/sirupsen/logrus"
)

type regionService struct {
	repo   RegionRepository
	cache  RegionCache
	logger *logrus.Logger
}

func NewRegionService(repo RegionRepository, cache RegionCache, logger *logrus.Logger) RegionService {
	return &regionService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// CreateRegion создает геозону
func (s *regionService) CreateRegion(ctx context.Context, region *models.Region) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "region",
		"method":  "CreateRegion",
		"name":    region.Name,
	})
	log.Info("Attempting to create a new region")

	if err := geofence.ValidateRegion(region); err != nil {
		log.WithError(err).Warn("Region validation failed")
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	region.IsActive = true
	if err := s.repo.Create(ctx, region); err != nil {
		log.WithError(err).Error("Failed to create region in repository")
		return fmt.Errorf("service: could not create region: %w", err)
	}

	s.invalidateCache(ctx, log)
	log.WithField("region_id", region.ID).Info("Region created successfully")
	return nil
}

// GetRegion получает геозону по ID
func (s *regionService) GetRegion(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "GetRegion",
		"region_id": id,
	})
	log.Debug("Fetching region by ID")

	region, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Region not found")
		} else {
			log.WithError(err).Error("Failed to get region in repository")
		}
		return nil, fmt.Errorf("service: could not get region: %w", err)
	}
	return region, nil
}

// UpdateRegion обновляет существующую геозону
func (s *regionService) UpdateRegion(ctx context.Context, region *models.Region) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "UpdateRegion",
		"region_id": region.ID,
	})
	log.Info("Attempting to update region")

	if err := geofence.ValidateRegion(region); err != nil {
		log.WithError(err).Warn("Region validation failed")
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	existing, err := s.repo.GetByID(ctx, region.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent region")
		return fmt.Errorf("service: region %s not found for update: %w", region.ID, err)
	}

	existing.Name = region.Name
	existing.Description = region.Description
	existing.Shape = region.Shape
	existing.Vertices = region.Vertices
	existing.Center = region.Center
	existing.RadiusMeters = region.RadiusMeters
	existing.Category = region.Category
	existing.RiskLevel = region.RiskLevel
	existing.IsActive = region.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update region in repository")
		return fmt.Errorf("service: could not update region: %w", err)
	}

	*region = *existing
	s.invalidateCache(ctx, log)
	log.Info("Region updated successfully")
	return nil
}

// DeactivateRegion деактивирует геозону, движок перестает ее проверять
func (s *regionService) DeactivateRegion(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "DeactivateRegion",
		"region_id": id,
	})
	log.Info("Attempting to deactivate region")

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to deactivate region in repository")
		return fmt.Errorf("service: could not deactivate region %s: %w", id, err)
	}

	s.invalidateCache(ctx, log)
	log.Info("Region deactivated successfully")
	return nil
}

// ListRegions возвращает список геозон с пагинацией
func (s *regionService) ListRegions(ctx context.Context, page, pageSize int) ([]*models.Region, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "region",
		"method":    "ListRegions",
		"page":      page,
		"page_size": pageSize,
	})

	regions, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list regions from repository")
		return nil, models.Pagination{}, fmt.Errorf("service: could not list regions: %w", err)
	}

	log.WithField("count", len(regions)).Debug("Regions listed successfully")
	return regions, models.NewPagination(page, pageSize, total), nil
}

// ActiveRegions возвращает активные геозоны: сначала из кеша, затем из бд
func (s *regionService) ActiveRegions(ctx context.Context) ([]*models.Region, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "region",
		"method":  "ActiveRegions",
	})

	cached, err := s.cache.GetActiveRegions(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read active regions from cache")
	} else if cached != nil {
		return cached, nil
	}

	regions, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active regions from repository")
		return nil, fmt.Errorf("service: could not list active regions: %w", err)
	}

	if err := s.cache.SetActiveRegions(ctx, regions); err != nil {
		log.WithError(err).Warn("Failed to cache active regions")
	}
	return regions, nil
}

func (s *regionService) invalidateCache(ctx context.Context, log *logrus.Entry) {
	if err := s.cache.InvalidateActiveRegions(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate active regions cache")
	}
}
