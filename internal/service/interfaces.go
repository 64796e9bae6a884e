package service

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/geofence"
	"github.com/shenikar/geofence_alert_service/internal/models"
)

// RegionRepository определяет контракт для работы с бд геозон
type RegionRepository interface {
	Create(ctx context.Context, region *models.Region) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error)
	Update(ctx context.Context, region *models.Region) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]*models.Region, int64, error)
	ListActive(ctx context.Context) ([]*models.Region, error)
}

// RegionCache - кеш активных геозон. Промах кеша - (nil, nil).
type RegionCache interface {
	GetActiveRegions(ctx context.Context) ([]*models.Region, error)
	SetActiveRegions(ctx context.Context, regions []*models.Region) error
	InvalidateActiveRegions(ctx context.Context) error
}

// AlertRepository определяет контракт журнала тревог
type AlertRepository interface {
	Append(ctx context.Context, alert *models.Alert) error
	AppendTransition(ctx context.Context, alert *models.Alert, state *models.ContainmentState) error
	GetByAlertID(ctx context.Context, alertID string) (*models.Alert, error)
	Acknowledge(ctx context.Context, alertID string, ack models.Acknowledgment) (*models.Alert, error)
	Resolve(ctx context.Context, alertID string, at time.Time) (*models.Alert, error)
	AcknowledgeAllForEntity(ctx context.Context, entityID string, ack models.Acknowledgment) (int64, error)
	DeleteAcknowledgedForEntity(ctx context.Context, entityID string) (int64, error)
	Query(ctx context.Context, filter models.AlertFilter, limit, offset int) ([]*models.Alert, int64, error)
	LatestTransitionFor(ctx context.Context, entityID string, regionID uuid.UUID) (*models.Alert, error)
	GetContainmentState(ctx context.Context, entityID string, regionID uuid.UUID) (*models.ContainmentState, error)
	CountUnacknowledgedBySeverity(ctx context.Context) (map[models.Severity]int64, error)
}

// EntityRepository хранит последнее известное положение отслеживаемых сущностей
type EntityRepository interface {
	SaveLocation(ctx context.Context, sample *models.LocationSample) error
	GetLastLocation(ctx context.Context, entityID string) (*models.LocationSample, error)
	Exists(ctx context.Context, entityID string) (bool, error)
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
}

// EntityLocker сериализует обработку замеров одной сущности
type EntityLocker interface {
	Lock(ctx context.Context, entityID string) (func(), error)
}

// Notifier доставляет уведомление о тревоге одному получателю
type Notifier interface {
	Notify(ctx context.Context, event models.AlertEvent) error
}

// RegionService определяет контракт управления геозонами
type RegionService interface {
	CreateRegion(ctx context.Context, region *models.Region) error
	GetRegion(ctx context.Context, id uuid.UUID) (*models.Region, error)
	UpdateRegion(ctx context.Context, region *models.Region) error
	DeactivateRegion(ctx context.Context, id uuid.UUID) error
	ListRegions(ctx context.Context, page, pageSize int) ([]*models.Region, models.Pagination, error)
	ActiveRegions(ctx context.Context) ([]*models.Region, error)
}

// AlertService определяет контракт журнала тревог с подтверждениями
type AlertService interface {
	Append(ctx context.Context, alert *models.Alert) error
	GetAlert(ctx context.Context, alertID string) (*models.Alert, error)
	Acknowledge(ctx context.Context, alertID, acknowledgedBy, response string) (*models.Alert, error)
	Resolve(ctx context.Context, alertID string) (*models.Alert, error)
	BulkAcknowledgeAndPurge(ctx context.Context, entityID, acknowledgedBy, response string) (*models.BulkAckResult, error)
	Query(ctx context.Context, filter models.AlertFilter, page, limit int) (*models.AlertPage, error)
	LatestTransitionFor(ctx context.Context, entityID string, regionID uuid.UUID) (*models.Alert, error)
}

// TrackingService принимает замеры координат и проверяет геозоны
type TrackingService interface {
	ProcessSample(ctx context.Context, sample models.LocationSample) (*geofence.Outcome, error)
	LastLocation(ctx context.Context, entityID string) (*models.LocationSample, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}
