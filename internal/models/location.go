package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample - замер координат отслеживаемой сущности (турист, устройство)
type LocationSample struct {
	EntityID  string    `json:"entity_id"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Coordinate возвращает точку замера
func (s LocationSample) Coordinate() Coordinate {
	return Coordinate{Longitude: s.Longitude, Latitude: s.Latitude}
}

// ContainmentState хранит последнее известное положение сущности относительно геозоны.
// Обновляется в одной транзакции с тревогой о входе/выходе.
type ContainmentState struct {
	EntityID     string    `json:"entity_id"`
	RegionID     uuid.UUID `json:"region_id"`
	IsInside     bool      `json:"is_inside"`
	LastAlertID  string    `json:"last_alert_id,omitempty"`
	LastSampleAt time.Time `json:"last_sample_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Pagination - метаданные страницы выборки
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	Limit        int   `json:"limit"`
}

// NewPagination считает количество страниц для total записей
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
		Limit:        limit,
	}
}

// Stats - сводка для панели мониторинга
type Stats struct {
	ActiveEntities       int                `json:"active_entities"`
	WindowMinutes        int                `json:"window_minutes"`
	UnacknowledgedAlerts map[Severity]int64 `json:"unacknowledged_alerts"`
}
