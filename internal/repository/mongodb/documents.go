package mongodb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	regionsCollection           = "regions"
	alertsCollection            = "alerts"
	containmentStatesCollection = "containment_states"
	entitiesCollection          = "tracked_entities"
)

type coordinateDocument struct {
	Longitude float64 `bson:"longitude"`
	Latitude  float64 `bson:"latitude"`
}

type regionDocument struct {
	ID           string               `bson:"_id"`
	Name         string               `bson:"name"`
	Description  string               `bson:"description"`
	Shape        string               `bson:"shape"`
	Vertices     []coordinateDocument `bson:"vertices,omitempty"`
	Center       *coordinateDocument  `bson:"center,omitempty"`
	RadiusMeters float64              `bson:"radius_meters"`
	Category     string               `bson:"category"`
	RiskLevel    int                  `bson:"risk_level"`
	IsActive     bool                 `bson:"is_active"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

type acknowledgmentDocument struct {
	IsAcknowledged bool       `bson:"is_acknowledged"`
	AcknowledgedBy string     `bson:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `bson:"acknowledged_at,omitempty"`
	Response       string     `bson:"response,omitempty"`
}

// alertDocument хранит alert_id в _id, уникальность обеспечивает сама коллекция
type alertDocument struct {
	AlertID        string                 `bson:"_id"`
	EntityID       string                 `bson:"entity_id"`
	Type           string                 `bson:"type"`
	Severity       string                 `bson:"severity"`
	MessageEn      string                 `bson:"message_en"`
	MessageHi      string                 `bson:"message_hi,omitempty"`
	Location       *coordinateDocument    `bson:"location,omitempty"`
	RegionID       string                 `bson:"region_id,omitempty"`
	Metadata       map[string]interface{} `bson:"metadata,omitempty"`
	Acknowledgment acknowledgmentDocument `bson:"acknowledgment"`
	CreatedAt      time.Time              `bson:"created_at"`
	ResolvedAt     *time.Time             `bson:"resolved_at,omitempty"`
}

type containmentStateDocument struct {
	ID           string    `bson:"_id"`
	EntityID     string    `bson:"entity_id"`
	RegionID     string    `bson:"region_id"`
	IsInside     bool      `bson:"is_inside"`
	LastAlertID  string    `bson:"last_alert_id"`
	LastSampleAt time.Time `bson:"last_sample_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type entityDocument struct {
	EntityID  string    `bson:"_id"`
	Longitude float64   `bson:"longitude"`
	Latitude  float64   `bson:"latitude"`
	Accuracy  float64   `bson:"accuracy"`
	SampledAt time.Time `bson:"sampled_at"`
	FirstSeen time.Time `bson:"first_seen"`
	LastSeen  time.Time `bson:"last_seen"`
}

func stateKey(entityID string, regionID uuid.UUID) string {
	return entityID + ":" + regionID.String()
}

func toCoordinateDocument(c *models.Coordinate) *coordinateDocument {
	if c == nil {
		return nil
	}
	return &coordinateDocument{Longitude: c.Longitude, Latitude: c.Latitude}
}

func (d *coordinateDocument) model() *models.Coordinate {
	if d == nil {
		return nil
	}
	return &models.Coordinate{Longitude: d.Longitude, Latitude: d.Latitude}
}

func toRegionDocument(r *models.Region) regionDocument {
	doc := regionDocument{
		ID:           r.ID.String(),
		Name:         r.Name,
		Description:  r.Description,
		Shape:        string(r.Shape),
		Center:       toCoordinateDocument(r.Center),
		RadiusMeters: r.RadiusMeters,
		Category:     string(r.Category),
		RiskLevel:    r.RiskLevel,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for _, v := range r.Vertices {
		doc.Vertices = append(doc.Vertices, coordinateDocument{Longitude: v.Longitude, Latitude: v.Latitude})
	}
	return doc
}

func (d *regionDocument) model() (*models.Region, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid region id %q: %w", d.ID, err)
	}
	region := &models.Region{
		ID:           id,
		Name:         d.Name,
		Description:  d.Description,
		Shape:        models.RegionShape(d.Shape),
		Center:       d.Center.model(),
		RadiusMeters: d.RadiusMeters,
		Category:     models.RegionCategory(d.Category),
		RiskLevel:    d.RiskLevel,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	for _, v := range d.Vertices {
		region.Vertices = append(region.Vertices, models.Coordinate{Longitude: v.Longitude, Latitude: v.Latitude})
	}
	return region, nil
}

func toAlertDocument(a *models.Alert) alertDocument {
	doc := alertDocument{
		AlertID:   a.AlertID,
		EntityID:  a.EntityID,
		Type:      string(a.Type),
		Severity:  string(a.Severity),
		MessageEn: a.Message.En,
		MessageHi: a.Message.Hi,
		Location:  toCoordinateDocument(a.Location),
		Metadata:  a.Metadata,
		Acknowledgment: acknowledgmentDocument{
			IsAcknowledged: a.Acknowledgment.IsAcknowledged,
			AcknowledgedBy: a.Acknowledgment.AcknowledgedBy,
			AcknowledgedAt: a.Acknowledgment.AcknowledgedAt,
			Response:       a.Acknowledgment.Response,
		},
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
	if a.RegionID != nil {
		doc.RegionID = a.RegionID.String()
	}
	return doc
}

func (d *alertDocument) model() (*models.Alert, error) {
	alert := &models.Alert{
		AlertID:  d.AlertID,
		EntityID: d.EntityID,
		Type:     models.AlertType(d.Type),
		Severity: models.Severity(d.Severity),
		Message:  models.LocalizedText{En: d.MessageEn, Hi: d.MessageHi},
		Location: d.Location.model(),
		Acknowledgment: models.Acknowledgment{
			IsAcknowledged: d.Acknowledgment.IsAcknowledged,
			AcknowledgedBy: d.Acknowledgment.AcknowledgedBy,
			AcknowledgedAt: utcPtr(d.Acknowledgment.AcknowledgedAt),
			Response:       d.Acknowledgment.Response,
		},
		CreatedAt:  d.CreatedAt.UTC(),
		ResolvedAt: utcPtr(d.ResolvedAt),
	}
	if d.RegionID != "" {
		regionID, err := uuid.Parse(d.RegionID)
		if err != nil {
			return nil, fmt.Errorf("invalid region id %q in alert %s: %w", d.RegionID, d.AlertID, err)
		}
		alert.RegionID = &regionID
	}
	metadata, err := metadataFromBSON(d.Metadata)
	if err != nil {
		return nil, fmt.Errorf("invalid metadata in alert %s: %w", d.AlertID, err)
	}
	alert.Metadata = metadata
	return alert, nil
}

// metadataFromBSON возвращает metadata в том же виде, что и Postgres JSONB:
// int32/int64 становятся float64, вложенные документы map[string]any
func metadataFromBSON(m map[string]interface{}) (map[string]any, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := bson.MarshalExtJSON(m, false, false)
	if err != nil {
		return nil, err
	}
	return models.DecodeMetadata(raw)
}

func (d *containmentStateDocument) model() (*models.ContainmentState, error) {
	regionID, err := uuid.Parse(d.RegionID)
	if err != nil {
		return nil, fmt.Errorf("invalid region id %q in containment state: %w", d.RegionID, err)
	}
	return &models.ContainmentState{
		EntityID:     d.EntityID,
		RegionID:     regionID,
		IsInside:     d.IsInside,
		LastAlertID:  d.LastAlertID,
		LastSampleAt: d.LastSampleAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}, nil
}

// buildAlertFilter переводит фильтр выборки в запрос MongoDB
func buildAlertFilter(filter models.AlertFilter) bson.M {
	query := bson.M{}
	if filter.EntityID != "" {
		query["entity_id"] = filter.EntityID
	}
	if filter.Severity != "" {
		query["severity"] = string(filter.Severity)
	}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	if filter.RegionID != nil {
		query["region_id"] = filter.RegionID.String()
	}
	if filter.Acknowledged != nil {
		query["acknowledgment.is_acknowledged"] = *filter.Acknowledged
	}
	if filter.From != nil || filter.To != nil {
		createdAt := bson.M{}
		if filter.From != nil {
			createdAt["$gte"] = *filter.From
		}
		if filter.To != nil {
			createdAt["$lte"] = *filter.To
		}
		query["created_at"] = createdAt
	}
	return query
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
