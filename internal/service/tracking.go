package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/shenikar/geofence_alert_service/internal/geofence"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/sirupsen/logrus"
)

type trackingService struct {
	engine   *geofence.Engine
	regions  RegionService
	alerts   AlertRepository
	entities EntityRepository
	locker   EntityLocker
	notifier Notifier
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

func NewTrackingService(
	engine *geofence.Engine,
	regions RegionService,
	alerts AlertRepository,
	entities EntityRepository,
	locker EntityLocker,
	notifier Notifier,
	logger *logrus.Logger,
	cfg *config.Config,
) TrackingService {
	return &trackingService{
		engine:   engine,
		regions:  regions,
		alerts:   alerts,
		entities: entities,
		locker:   locker,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ProcessSample принимает замер, проверяет геозоны и рассылает уведомления о переходах.
// Замеры одной сущности обрабатываются строго по очереди.
func (s *trackingService) ProcessSample(ctx context.Context, sample models.LocationSample) (*geofence.Outcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "tracking",
		"method":    "ProcessSample",
		"entity_id": sample.EntityID,
	})

	if sample.EntityID == "" {
		return nil, fmt.Errorf("%w: entity id is required", ErrInvalidArgument)
	}
	if err := geofence.ValidateCoordinate(sample.Longitude, sample.Latitude); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if sample.Accuracy < 0 {
		return nil, fmt.Errorf("%w: accuracy must not be negative", ErrInvalidArgument)
	}
	now := s.now()
	if sample.Timestamp.IsZero() {
		sample.Timestamp = now
	}
	// замер из будущего заблокировал бы проверку пары до тех пор, пока часы сервера его не догонят
	if sample.Timestamp.After(now.Add(s.cfg.MaxSampleSkew)) {
		return nil, fmt.Errorf("%w: sample timestamp %s is ahead of server time", ErrInvalidArgument, sample.Timestamp.Format(time.RFC3339))
	}

	release, err := s.locker.Lock(ctx, sample.EntityID)
	if err != nil {
		log.WithError(err).Error("Failed to acquire entity lock")
		return nil, fmt.Errorf("service: could not lock entity %s: %w", sample.EntityID, err)
	}
	defer release()

	if err := s.entities.SaveLocation(ctx, &sample); err != nil {
		log.WithError(err).Error("Failed to save entity location")
		return nil, fmt.Errorf("service: could not save location: %w", err)
	}

	regions, err := s.regions.ActiveRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load active regions: %w", err)
	}

	outcome, err := s.engine.Evaluate(ctx, sample, regions, s.containmentState, s.alerts)
	if err != nil {
		if errors.Is(err, geofence.ErrInvalidCoordinate) || errors.Is(err, geofence.ErrMissingEntity) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return nil, fmt.Errorf("service: geofence evaluation failed: %w", err)
	}

	log.WithFields(logrus.Fields{
		"regions":     len(regions),
		"transitions": len(outcome.Alerts),
		"failures":    len(outcome.Failures),
	}).Info("Location sample processed")

	dispatchAsync(s.notifier, s.cfg.NotifyTimeout, log, outcome.Events)
	return outcome, nil
}

// containmentState читает сохраненное состояние пары; если его нет,
// восстанавливает по последней тревоге входа/выхода
func (s *trackingService) containmentState(ctx context.Context, entityID string, regionID uuid.UUID) (*models.ContainmentState, error) {
	state, err := s.alerts.GetContainmentState(ctx, entityID, regionID)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}

	latest, err := s.alerts.LatestTransitionFor(ctx, entityID, regionID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}
	return &models.ContainmentState{
		EntityID:    entityID,
		RegionID:    regionID,
		IsInside:    latest.Type == models.AlertGeofenceEntry,
		LastAlertID: latest.AlertID,
		UpdatedAt:   latest.CreatedAt,
	}, nil
}

// LastLocation возвращает последний принятый замер сущности
func (s *trackingService) LastLocation(ctx context.Context, entityID string) (*models.LocationSample, error) {
	if entityID == "" {
		return nil, fmt.Errorf("%w: entity id is required", ErrInvalidArgument)
	}
	sample, err := s.entities.GetLastLocation(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get last location: %w", err)
	}
	return sample, nil
}

// GetStats возвращает число активных сущностей за окно и неподтвержденные тревоги по важности
func (s *trackingService) GetStats(ctx context.Context) (*models.Stats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "GetStats",
	})

	window := s.cfg.StatsTimeWindowMinutes
	since := s.now().Add(-time.Duration(window) * time.Minute)

	active, err := s.entities.CountActiveSince(ctx, since)
	if err != nil {
		log.WithError(err).Error("Failed to count active entities")
		return nil, fmt.Errorf("service: could not count active entities: %w", err)
	}

	counts, err := s.alerts.CountUnacknowledgedBySeverity(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count unacknowledged alerts")
		return nil, fmt.Errorf("service: could not count alerts: %w", err)
	}

	unacknowledged := make(map[models.Severity]int64, len(models.Severities))
	for _, sev := range models.Severities {
		unacknowledged[sev] = counts[sev]
	}

	return &models.Stats{
		ActiveEntities:       active,
		WindowMinutes:        window,
		UnacknowledgedAlerts: unacknowledged,
	}, nil
}
