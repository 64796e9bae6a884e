package models

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// AlertType - закрытый набор видов тревог. Данные конкретного источника лежат в Metadata.
type AlertType string

const (
	AlertGeofenceEntry AlertType = "geofence_entry"
	AlertGeofenceExit  AlertType = "geofence_exit"
	AlertEmergency     AlertType = "emergency"
	AlertBatteryLow    AlertType = "battery_low"
	AlertInactivity    AlertType = "inactivity"
	AlertCustom        AlertType = "custom"
)

// Valid проверяет, что тип тревоги известен
func (t AlertType) Valid() bool {
	switch t {
	case AlertGeofenceEntry, AlertGeofenceExit, AlertEmergency, AlertBatteryLow, AlertInactivity, AlertCustom:
		return true
	}
	return false
}

// IsTransition сообщает, что тревога описывает вход или выход из геозоны
func (t AlertType) IsTransition() bool {
	return t == AlertGeofenceEntry || t == AlertGeofenceExit
}

// DefaultSeverity возвращает важность для тревог, пришедших без явной важности
func (t AlertType) DefaultSeverity() Severity {
	switch t {
	case AlertEmergency:
		return SeverityEmergency
	case AlertGeofenceEntry, AlertBatteryLow, AlertInactivity:
		return SeverityWarning
	}
	return SeverityInfo
}

// Severity упорядочена по эскалации: info < warning < critical < emergency
type Severity string

const (
	SeverityInfo      Severity = "info"
	SeverityWarning   Severity = "warning"
	SeverityCritical  Severity = "critical"
	SeverityEmergency Severity = "emergency"
)

// Rank возвращает порядковый номер важности, 0 для неизвестной
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityWarning:
		return 2
	case SeverityCritical:
		return 3
	case SeverityEmergency:
		return 4
	}
	return 0
}

func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Severities - все уровни в порядке эскалации
var Severities = []Severity{SeverityInfo, SeverityWarning, SeverityCritical, SeverityEmergency}

// LocalizedText - двуязычный текст тревоги
type LocalizedText struct {
	En string `json:"en"`
	Hi string `json:"hi,omitempty"`
}

// Acknowledgment - единственная изменяемая часть тревоги
type Acknowledgment struct {
	IsAcknowledged bool       `json:"is_acknowledged"`
	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	Response       string     `json:"response,omitempty"`
}

// Alert - запись журнала тревог
type Alert struct {
	AlertID        string         `json:"alert_id"`
	EntityID       string         `json:"entity_id"`
	Type           AlertType      `json:"type"`
	Severity       Severity       `json:"severity"`
	Message        LocalizedText  `json:"message"`
	Location       *Coordinate    `json:"location,omitempty"`
	RegionID       *uuid.UUID     `json:"region_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"` // см. NormalizeMetadata
	Acknowledgment Acknowledgment `json:"acknowledgment"`
	CreatedAt      time.Time      `json:"created_at"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
}

// Event формирует уведомление для подписчиков
func (a *Alert) Event() AlertEvent {
	return AlertEvent{
		AlertID:   a.AlertID,
		EntityID:  a.EntityID,
		RegionID:  a.RegionID,
		Type:      a.Type,
		Severity:  a.Severity,
		Message:   a.Message,
		Location:  a.Location,
		Timestamp: a.CreatedAt,
	}
}

// AlertEvent - payload уведомления о тревоге (webhook, websocket, nats)
type AlertEvent struct {
	AlertID   string        `json:"alert_id"`
	EntityID  string        `json:"entity_id"`
	RegionID  *uuid.UUID    `json:"region_id,omitempty"`
	Type      AlertType     `json:"type"`
	Severity  Severity      `json:"severity"`
	Message   LocalizedText `json:"message"`
	Location  *Coordinate   `json:"location,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// AlertFilter - фильтры выборки тревог. Пустые поля не участвуют в запросе.
type AlertFilter struct {
	EntityID     string
	Severity     Severity
	Type         AlertType
	RegionID     *uuid.UUID
	Acknowledged *bool
	From         *time.Time
	To           *time.Time
}

// BulkAckResult - итог массового подтверждения с удалением
type BulkAckResult struct {
	Processed int64 `json:"processed"`
	Deleted   int64 `json:"deleted"`
}

// AlertIDGenerator выдает идентификаторы вида {type}_{unixMillis}_{entityId}.
// Миллисекунды монотонно растут в пределах одной сущности, поэтому две тревоги
// одной сущности, созданные в одну миллисекунду, получают разные идентификаторы,
// а тревоги разных сущностей не сдвигают время друг друга.
type AlertIDGenerator struct {
	last sync.Map // entityID -> *atomic.Int64
	now  func() time.Time
}

func NewAlertIDGenerator(now func() time.Time) *AlertIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &AlertIDGenerator{now: now}
}

// Next возвращает идентификатор и момент времени, закодированный в нем
func (g *AlertIDGenerator) Next(t AlertType, entityID string) (string, time.Time) {
	v, _ := g.last.LoadOrStore(entityID, new(atomic.Int64))
	counter := v.(*atomic.Int64)

	ms := g.now().UnixMilli()
	for {
		last := counter.Load()
		if ms <= last {
			ms = last + 1
		}
		if counter.CompareAndSwap(last, ms) {
			break
		}
	}
	return fmt.Sprintf("%s_%d_%s", t, ms, entityID), time.UnixMilli(ms).UTC()
}

// NormalizeMetadata приводит метаданные к виду, в котором их вернет любое хранилище:
// числа float64, вложенные объекты map[string]any, массивы []any.
func NormalizeMetadata(m map[string]any) (map[string]any, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("metadata is not JSON-serializable: %w", err)
	}
	return DecodeMetadata(raw)
}

// DecodeMetadata разбирает JSON-объект метаданных
func DecodeMetadata(raw []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if len(m) == 0 {
		return nil, nil
	}
	return m, nil
}

// AlertPage - страница выборки тревог
type AlertPage struct {
	Records    []*Alert   `json:"records"`
	Pagination Pagination `json:"pagination"`
}
