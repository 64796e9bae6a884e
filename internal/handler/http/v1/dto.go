package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/models"
)

// CoordinateDTO точка в градусах WGS84
// @Description Точка в градусах WGS84
type CoordinateDTO struct {
	Longitude float64 `json:"longitude" validate:"longitude"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
}

// RegionRequest DTO для создания и обновления геозоны
// @Description DTO для создания и обновления геозоны
type RegionRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=255"`
	Description  string          `json:"description,omitempty"`
	Shape        string          `json:"shape" validate:"required,oneof=polygon circle"`
	Vertices     []CoordinateDTO `json:"vertices,omitempty" validate:"omitempty,dive"`
	Center       *CoordinateDTO  `json:"center,omitempty"`
	RadiusMeters float64         `json:"radius_meters,omitempty" validate:"gte=0"`
	Category     string          `json:"category" validate:"required,oneof=safe caution danger restricted"`
	RiskLevel    int             `json:"risk_level" validate:"gte=0,lte=10"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

// RegionResponse DTO для ответа с информацией о геозоне
// @Description DTO для ответа с информацией о геозоне
type RegionResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Shape        string          `json:"shape"`
	Vertices     []CoordinateDTO `json:"vertices,omitempty"`
	Center       *CoordinateDTO  `json:"center,omitempty"`
	RadiusMeters float64         `json:"radius_meters,omitempty"`
	Category     string          `json:"category"`
	RiskLevel    int             `json:"risk_level"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// RegionListResponse страница геозон
// @Description Страница геозон
type RegionListResponse struct {
	Records    []*RegionResponse `json:"records"`
	Pagination models.Pagination `json:"pagination"`
}

// LocationSampleRequest DTO замера координат
// @Description DTO замера координат
type LocationSampleRequest struct {
	EntityID  string     `json:"entity_id" validate:"required,max=128"`
	Longitude float64    `json:"longitude" validate:"longitude"`
	Latitude  float64    `json:"latitude" validate:"latitude"`
	Accuracy  float64    `json:"accuracy,omitempty" validate:"gte=0"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// RegionFailureResponse ошибка проверки одной геозоны
// @Description Ошибка проверки одной геозоны
type RegionFailureResponse struct {
	RegionID uuid.UUID `json:"region_id"`
	Error    string    `json:"error"`
}

// LocationResultResponse результат обработки замера
// @Description Результат обработки замера: тревоги о переходах и непроверенные геозоны
type LocationResultResponse struct {
	EntityID string                  `json:"entity_id"`
	Alerts   []*models.Alert         `json:"alerts"`
	Failures []RegionFailureResponse `json:"failures,omitempty"`
	Skipped  int                     `json:"skipped"`
}

// CreateAlertRequest DTO тревоги от внешнего источника
// @Description DTO тревоги от внешнего источника (SOS, батарея, неактивность)
type CreateAlertRequest struct {
	EntityID  string         `json:"entity_id" validate:"required,max=128"`
	Type      string         `json:"type" validate:"required,oneof=geofence_entry geofence_exit emergency battery_low inactivity custom"`
	Severity  string         `json:"severity,omitempty" validate:"omitempty,oneof=info warning critical emergency"`
	MessageEn string         `json:"message_en,omitempty" validate:"max=1024"`
	MessageHi string         `json:"message_hi,omitempty" validate:"max=1024"`
	Location  *CoordinateDTO `json:"location,omitempty"`
	RegionID  *uuid.UUID     `json:"region_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AcknowledgeRequest DTO подтверждения тревоги
// @Description DTO подтверждения тревоги
type AcknowledgeRequest struct {
	AcknowledgedBy string `json:"acknowledged_by" validate:"required,max=128"`
	Response       string `json:"response,omitempty" validate:"max=1024"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ActiveEntities       int              `json:"active_entities"`
	WindowMinutes        int              `json:"window_minutes"`
	UnacknowledgedAlerts map[string]int64 `json:"unacknowledged_alerts"`
	DashboardClients     int              `json:"dashboard_clients"`
}
