package models

import (
	"time"

	"github.com/google/uuid"
)

// RegionShape - геометрия геозоны
type RegionShape string

const (
	ShapePolygon RegionShape = "polygon"
	ShapeCircle  RegionShape = "circle"
)

// RegionCategory - классификация геозоны по степени опасности
type RegionCategory string

const (
	CategorySafe       RegionCategory = "safe"
	CategoryCaution    RegionCategory = "caution"
	CategoryDanger     RegionCategory = "danger"
	CategoryRestricted RegionCategory = "restricted"
)

// Coordinate - точка в градусах WGS84
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Region представляет геозону (круг или полигон)
type Region struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Shape        RegionShape    `json:"shape"`
	Vertices     []Coordinate   `json:"vertices,omitempty"`
	Center       *Coordinate    `json:"center,omitempty"`
	RadiusMeters float64        `json:"radius_meters,omitempty"`
	Category     RegionCategory `json:"category"`
	RiskLevel    int            `json:"risk_level"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsDangerous сообщает, что вход в зону должен поднимать критическую тревогу
func (r *Region) IsDangerous() bool {
	return r.Category == CategoryDanger
}
