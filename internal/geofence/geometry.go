package geofence

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/geofence_alert_service/internal/models"
)

// EarthRadiusMeters - радиус сферической модели Земли для формулы гаверсинуса
const EarthRadiusMeters = 6371000.0

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidRegion     = errors.New("invalid region")
)

// ValidateCoordinate проверяет диапазоны широты и долготы
func ValidateCoordinate(lon, lat float64) error {
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
		return fmt.Errorf("%w: not a finite number", ErrInvalidCoordinate)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, lon)
	}
	return nil
}

// HaversineMeters - расстояние по большому кругу между двумя точками в метрах.
// Сфера, а не эллипсоид: погрешность до ~0.5% допустима для геозон.
func HaversineMeters(a, b models.Coordinate) float64 {
	phi1 := a.Latitude * math.Pi / 180
	phi2 := b.Latitude * math.Pi / 180
	deltaPhi := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// PointInPolygon - ray casting в плоскости (долгота, широта).
// Не работает около полюсов и через антимеридиан.
func PointInPolygon(p models.Coordinate, ring []models.Coordinate) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		pi := ring[i]
		pj := ring[j]

		if ((pi.Latitude > p.Latitude) != (pj.Latitude > p.Latitude)) &&
			(p.Longitude < (pj.Longitude-pi.Longitude)*(p.Latitude-pi.Latitude)/(pj.Latitude-pi.Latitude)+pi.Longitude) {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Contains определяет, находится ли точка внутри геозоны
func Contains(region *models.Region, p models.Coordinate) (bool, error) {
	switch region.Shape {
	case models.ShapeCircle:
		if region.Center == nil {
			return false, fmt.Errorf("%w: circle region %s has no center", ErrInvalidRegion, region.ID)
		}
		return HaversineMeters(p, *region.Center) <= region.RadiusMeters, nil
	case models.ShapePolygon:
		if len(region.Vertices) < 3 {
			return false, fmt.Errorf("%w: polygon region %s has %d vertices", ErrInvalidRegion, region.ID, len(region.Vertices))
		}
		return PointInPolygon(p, region.Vertices), nil
	default:
		return false, fmt.Errorf("%w: unsupported shape %q", ErrInvalidRegion, region.Shape)
	}
}

// ValidateRegion проверяет геометрию и классификацию геозоны перед сохранением
func ValidateRegion(region *models.Region) error {
	if region.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRegion)
	}
	if region.RiskLevel < 1 || region.RiskLevel > 10 {
		return fmt.Errorf("%w: risk level %d out of range [1, 10]", ErrInvalidRegion, region.RiskLevel)
	}
	switch region.Category {
	case models.CategorySafe, models.CategoryCaution, models.CategoryDanger, models.CategoryRestricted:
	default:
		return fmt.Errorf("%w: unknown category %q", ErrInvalidRegion, region.Category)
	}

	switch region.Shape {
	case models.ShapeCircle:
		if region.Center == nil {
			return fmt.Errorf("%w: circle requires center", ErrInvalidRegion)
		}
		if err := ValidateCoordinate(region.Center.Longitude, region.Center.Latitude); err != nil {
			return fmt.Errorf("%w: center: %v", ErrInvalidRegion, err)
		}
		if region.RadiusMeters <= 0 {
			return fmt.Errorf("%w: radius must be positive", ErrInvalidRegion)
		}
	case models.ShapePolygon:
		if len(region.Vertices) < 3 {
			return fmt.Errorf("%w: polygon requires at least 3 vertices", ErrInvalidRegion)
		}
		for i, v := range region.Vertices {
			if err := ValidateCoordinate(v.Longitude, v.Latitude); err != nil {
				return fmt.Errorf("%w: vertex %d: %v", ErrInvalidRegion, i, err)
			}
		}
	default:
		return fmt.Errorf("%w: unsupported shape %q", ErrInvalidRegion, region.Shape)
	}
	return nil
}
