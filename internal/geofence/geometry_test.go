package geofence

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circle(lon, lat, radius float64) *models.Region {
	return &models.Region{
		ID:           uuid.New(),
		Name:         "circle",
		Shape:        models.ShapeCircle,
		Center:       &models.Coordinate{Longitude: lon, Latitude: lat},
		RadiusMeters: radius,
		Category:     models.CategoryCaution,
		RiskLevel:    5,
		IsActive:     true,
	}
}

func polygon(vertices ...models.Coordinate) *models.Region {
	return &models.Region{
		ID:        uuid.New(),
		Name:      "polygon",
		Shape:     models.ShapePolygon,
		Vertices:  vertices,
		Category:  models.CategoryCaution,
		RiskLevel: 5,
		IsActive:  true,
	}
}

// offsetNorth сдвигает точку на meters к северу по меридиану
func offsetNorth(c models.Coordinate, meters float64) models.Coordinate {
	return models.Coordinate{
		Longitude: c.Longitude,
		Latitude:  c.Latitude + meters/EarthRadiusMeters*180/math.Pi,
	}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		lat     float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"bounds", 180, -90, false},
		{"lat too high", 10, 90.0001, true},
		{"lat too low", 10, -91, true},
		{"lon too high", 180.5, 0, true},
		{"lon too low", -181, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", 0, math.Inf(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(tt.lon, tt.lat)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHaversineMeters(t *testing.T) {
	delhi := models.Coordinate{Longitude: 77.209, Latitude: 28.6139}
	assert.Zero(t, HaversineMeters(delhi, delhi))

	// один градус широты на сфере радиуса 6371 км
	oneDegree := HaversineMeters(models.Coordinate{}, models.Coordinate{Latitude: 1})
	assert.InDelta(t, 111194.9, oneDegree, 1)

	far := HaversineMeters(delhi, models.Coordinate{Longitude: 77.30, Latitude: 28.70})
	assert.Greater(t, far, 12000.0)
	assert.Less(t, far, 14000.0)
}

func TestContains_CircleCenterAndBeyondRadius(t *testing.T) {
	centers := []models.Coordinate{
		{Longitude: 77.209, Latitude: 28.6139},
		{Longitude: -122.4194, Latitude: 37.7749},
		{Longitude: 0, Latitude: 0},
		{Longitude: 151.2093, Latitude: -33.8688},
	}
	for _, c := range centers {
		for _, radius := range []float64{1, 50, 500, 25000} {
			region := circle(c.Longitude, c.Latitude, radius)

			inside, err := Contains(region, c)
			require.NoError(t, err)
			assert.True(t, inside, "center must be inside radius %v", radius)

			outside, err := Contains(region, offsetNorth(c, radius+1))
			require.NoError(t, err)
			assert.False(t, outside, "point beyond radius %v must be outside", radius)

			edge, err := Contains(region, offsetNorth(c, radius*0.99))
			require.NoError(t, err)
			assert.True(t, edge)
		}
	}
}

func TestContains_ConvexPolygon(t *testing.T) {
	tests := []struct {
		name     string
		vertices []models.Coordinate
	}{
		{
			name: "square",
			vertices: []models.Coordinate{
				{Longitude: 77.20, Latitude: 28.60},
				{Longitude: 77.22, Latitude: 28.60},
				{Longitude: 77.22, Latitude: 28.62},
				{Longitude: 77.20, Latitude: 28.62},
			},
		},
		{
			name: "triangle closed ring",
			vertices: []models.Coordinate{
				{Longitude: 10, Latitude: 10},
				{Longitude: 14, Latitude: 10},
				{Longitude: 12, Latitude: 14},
				{Longitude: 10, Latitude: 10},
			},
		},
		{
			name: "hexagon",
			vertices: []models.Coordinate{
				{Longitude: 2, Latitude: 0},
				{Longitude: 1, Latitude: 1.7},
				{Longitude: -1, Latitude: 1.7},
				{Longitude: -2, Latitude: 0},
				{Longitude: -1, Latitude: -1.7},
				{Longitude: 1, Latitude: -1.7},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := polygon(tt.vertices...)

			var sumLon, sumLat float64
			n := len(tt.vertices)
			if tt.vertices[0] == tt.vertices[n-1] {
				n--
			}
			for _, v := range tt.vertices[:n] {
				sumLon += v.Longitude
				sumLat += v.Latitude
			}
			centroid := models.Coordinate{Longitude: sumLon / float64(n), Latitude: sumLat / float64(n)}

			inside, err := Contains(region, centroid)
			require.NoError(t, err)
			assert.True(t, inside)

			outside, err := Contains(region, models.Coordinate{Longitude: centroid.Longitude + 50, Latitude: centroid.Latitude - 40})
			require.NoError(t, err)
			assert.False(t, outside)
		})
	}
}

func TestContains_InvalidRegion(t *testing.T) {
	_, err := Contains(&models.Region{Shape: models.ShapeCircle}, models.Coordinate{})
	assert.ErrorIs(t, err, ErrInvalidRegion)

	_, err = Contains(polygon(models.Coordinate{}, models.Coordinate{Latitude: 1}), models.Coordinate{})
	assert.ErrorIs(t, err, ErrInvalidRegion)

	_, err = Contains(&models.Region{Shape: "hexagon"}, models.Coordinate{})
	assert.ErrorIs(t, err, ErrInvalidRegion)
}

func TestValidateRegion(t *testing.T) {
	valid := circle(77.209, 28.6139, 500)
	require.NoError(t, ValidateRegion(valid))

	noRadius := circle(77.209, 28.6139, 0)
	assert.ErrorIs(t, ValidateRegion(noRadius), ErrInvalidRegion)

	badRisk := circle(77.209, 28.6139, 10)
	badRisk.RiskLevel = 11
	assert.ErrorIs(t, ValidateRegion(badRisk), ErrInvalidRegion)

	badCategory := circle(77.209, 28.6139, 10)
	badCategory.Category = "spooky"
	assert.ErrorIs(t, ValidateRegion(badCategory), ErrInvalidRegion)

	badVertex := polygon(
		models.Coordinate{Longitude: 0, Latitude: 0},
		models.Coordinate{Longitude: 1, Latitude: 95},
		models.Coordinate{Longitude: 1, Latitude: 0},
	)
	assert.ErrorIs(t, ValidateRegion(badVertex), ErrInvalidRegion)
}
