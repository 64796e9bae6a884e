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

const (
	defaultAlertPageSize = 20
	maxAlertPageSize     = 100
)

type alertService struct {
	repo     AlertRepository
	regions  RegionRepository
	entities EntityRepository
	notifier Notifier
	ids      *models.AlertIDGenerator
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

func NewAlertService(repo AlertRepository, regions RegionRepository, entities EntityRepository, notifier Notifier, ids *models.AlertIDGenerator, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		repo:     repo,
		regions:  regions,
		entities: entities,
		notifier: notifier,
		ids:      ids,
		logger:   logger,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Append добавляет тревогу от внешнего источника (SOS, батарея, неактивность)
func (s *alertService) Append(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "Append",
		"entity_id": alert.EntityID,
		"type":      alert.Type,
	})

	if alert.EntityID == "" {
		return fmt.Errorf("%w: entity id is required", ErrInvalidArgument)
	}
	if !alert.Type.Valid() {
		return fmt.Errorf("%w: unknown alert type %q", ErrInvalidArgument, alert.Type)
	}
	if alert.Severity == "" {
		alert.Severity = alert.Type.DefaultSeverity()
	}
	if !alert.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidArgument, alert.Severity)
	}
	if alert.Location != nil {
		if err := geofence.ValidateCoordinate(alert.Location.Longitude, alert.Location.Latitude); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	if alert.RegionID != nil {
		if _, err := s.regions.GetByID(ctx, *alert.RegionID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fmt.Errorf("service: region %s: %w", *alert.RegionID, ErrNotFound)
			}
			log.WithError(err).Error("Failed to check alert region")
			return fmt.Errorf("service: could not check region: %w", err)
		}
	}
	metadata, err := models.NormalizeMetadata(alert.Metadata)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	alert.Metadata = metadata
	if alert.Message.En == "" {
		alert.Message.En = fmt.Sprintf("%s alert for %s", alert.Type, alert.EntityID)
	}

	alert.AlertID, alert.CreatedAt = s.ids.Next(alert.Type, alert.EntityID)
	alert.Acknowledgment = models.Acknowledgment{}
	alert.ResolvedAt = nil

	if err := s.repo.Append(ctx, alert); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			log.WithError(err).WithField("alert_id", alert.AlertID).Error("Alert id collision")
		} else {
			log.WithError(err).Error("Failed to append alert in repository")
		}
		return fmt.Errorf("service: could not append alert: %w", err)
	}

	log.WithField("alert_id", alert.AlertID).Info("Alert appended")
	dispatchAsync(s.notifier, s.cfg.NotifyTimeout, log, []models.AlertEvent{alert.Event()})
	return nil
}

// GetAlert возвращает тревогу по ее идентификатору
func (s *alertService) GetAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	if alertID == "" {
		return nil, fmt.Errorf("%w: alert id is required", ErrInvalidArgument)
	}
	alert, err := s.repo.GetByAlertID(ctx, alertID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert %s: %w", alertID, err)
	}
	return alert, nil
}

// Acknowledge подтверждает тревогу. Повторное подтверждение возвращает ErrAlreadyAcknowledged
// и не меняет время первого подтверждения.
func (s *alertService) Acknowledge(ctx context.Context, alertID, acknowledgedBy, response string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "Acknowledge",
		"alert_id": alertID,
	})

	if alertID == "" || acknowledgedBy == "" {
		return nil, fmt.Errorf("%w: alert id and acknowledged_by are required", ErrInvalidArgument)
	}

	now := s.now()
	alert, err := s.repo.Acknowledge(ctx, alertID, models.Acknowledgment{
		IsAcknowledged: true,
		AcknowledgedBy: acknowledgedBy,
		AcknowledgedAt: &now,
		Response:       response,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyAcknowledged), errors.Is(err, ErrNotFound):
			log.WithError(err).Info("Alert was not acknowledged")
		default:
			log.WithError(err).Error("Failed to acknowledge alert in repository")
		}
		return nil, fmt.Errorf("service: could not acknowledge alert: %w", err)
	}

	log.WithField("acknowledged_by", acknowledgedBy).Info("Alert acknowledged")
	return alert, nil
}

// Resolve закрывает тревогу
func (s *alertService) Resolve(ctx context.Context, alertID string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "Resolve",
		"alert_id": alertID,
	})

	if alertID == "" {
		return nil, fmt.Errorf("%w: alert id is required", ErrInvalidArgument)
	}

	alert, err := s.repo.Resolve(ctx, alertID, s.now())
	if err != nil {
		log.WithError(err).Warn("Failed to resolve alert")
		return nil, fmt.Errorf("service: could not resolve alert: %w", err)
	}

	log.Info("Alert resolved")
	return alert, nil
}

// BulkAcknowledgeAndPurge подтверждает все неподтвержденные тревоги сущности и удаляет подтвержденные.
// Шаги не атомарны; при повторе после сбоя оставшиеся подтвержденные тревоги удаляются,
// но результат все равно ErrNotFound, так как подтверждать уже нечего.
func (s *alertService) BulkAcknowledgeAndPurge(ctx context.Context, entityID, acknowledgedBy, response string) (*models.BulkAckResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "BulkAcknowledgeAndPurge",
		"entity_id": entityID,
	})

	if entityID == "" || acknowledgedBy == "" {
		return nil, fmt.Errorf("%w: entity id and acknowledged_by are required", ErrInvalidArgument)
	}

	now := s.now()
	processed, err := s.repo.AcknowledgeAllForEntity(ctx, entityID, models.Acknowledgment{
		IsAcknowledged: true,
		AcknowledgedBy: acknowledgedBy,
		AcknowledgedAt: &now,
		Response:       response,
	})
	if err != nil {
		log.WithError(err).Error("Failed to acknowledge alerts in repository")
		return nil, fmt.Errorf("service: could not acknowledge alerts: %w", err)
	}

	deleted, err := s.repo.DeleteAcknowledgedForEntity(ctx, entityID)
	if err != nil {
		log.WithError(err).WithField("processed", processed).Error("Failed to purge acknowledged alerts")
		return &models.BulkAckResult{Processed: processed}, fmt.Errorf("service: could not purge alerts: %w", err)
	}

	result := &models.BulkAckResult{Processed: processed, Deleted: deleted}
	if processed == 0 {
		log.WithField("deleted", deleted).Info("No unacknowledged alerts for entity")
		return result, fmt.Errorf("service: no unacknowledged alerts for entity %s: %w", entityID, ErrNotFound)
	}

	log.WithFields(logrus.Fields{
		"processed": processed,
		"deleted":   deleted,
	}).Info("Alerts acknowledged and purged")
	return result, nil
}

// Query возвращает страницу тревог, новые первыми
func (s *alertService) Query(ctx context.Context, filter models.AlertFilter, page, limit int) (*models.AlertPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultAlertPageSize
	}
	if limit > maxAlertPageSize {
		limit = maxAlertPageSize
	}

	if filter.Severity != "" && !filter.Severity.Valid() {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidArgument, filter.Severity)
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown alert type %q", ErrInvalidArgument, filter.Type)
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidArgument)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "Query",
		"page":    page,
		"limit":   limit,
	})

	records, total, err := s.repo.Query(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		log.WithError(err).Error("Failed to query alerts from repository")
		return nil, fmt.Errorf("service: could not query alerts: %w", err)
	}

	if total == 0 && filter.EntityID != "" {
		exists, err := s.entities.Exists(ctx, filter.EntityID)
		if err != nil {
			log.WithError(err).Error("Failed to check entity existence")
			return nil, fmt.Errorf("service: could not check entity: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("service: entity %s: %w", filter.EntityID, ErrNotFound)
		}
	}

	if records == nil {
		records = make([]*models.Alert, 0)
	}
	return &models.AlertPage{
		Records:    records,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// LatestTransitionFor возвращает последнюю тревогу входа/выхода для пары или nil
func (s *alertService) LatestTransitionFor(ctx context.Context, entityID string, regionID uuid.UUID) (*models.Alert, error) {
	if entityID == "" || regionID == uuid.Nil {
		return nil, fmt.Errorf("%w: entity id and region id are required", ErrInvalidArgument)
	}
	alert, err := s.repo.LatestTransitionFor(ctx, entityID, regionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get latest transition: %w", err)
	}
	return alert, nil
}
