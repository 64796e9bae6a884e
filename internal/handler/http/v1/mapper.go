package v1

import (
	"github.com/shenikar/geofence_alert_service/internal/geofence"
	"github.com/shenikar/geofence_alert_service/internal/models"
)

// DTOToRegionModel преобразует DTO создания/обновления в доменную модель.
// Без is_active геозона считается активной.
func DTOToRegionModel(dto RegionRequest) *models.Region {
	region := &models.Region{
		Name:         dto.Name,
		Description:  dto.Description,
		Shape:        models.RegionShape(dto.Shape),
		RadiusMeters: dto.RadiusMeters,
		Category:     models.RegionCategory(dto.Category),
		RiskLevel:    dto.RiskLevel,
		IsActive:     true,
	}
	if dto.IsActive != nil {
		region.IsActive = *dto.IsActive
	}
	if dto.Center != nil {
		region.Center = &models.Coordinate{Longitude: dto.Center.Longitude, Latitude: dto.Center.Latitude}
	}
	for _, v := range dto.Vertices {
		region.Vertices = append(region.Vertices, models.Coordinate{Longitude: v.Longitude, Latitude: v.Latitude})
	}
	return region
}

// ModelToRegionResponse преобразует доменную модель в DTO для ответа
func ModelToRegionResponse(model *models.Region) *RegionResponse {
	resp := &RegionResponse{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		Shape:        string(model.Shape),
		RadiusMeters: model.RadiusMeters,
		Category:     string(model.Category),
		RiskLevel:    model.RiskLevel,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Center != nil {
		resp.Center = &CoordinateDTO{Longitude: model.Center.Longitude, Latitude: model.Center.Latitude}
	}
	for _, v := range model.Vertices {
		resp.Vertices = append(resp.Vertices, CoordinateDTO{Longitude: v.Longitude, Latitude: v.Latitude})
	}
	return resp
}

// ModelsToRegionResponses преобразует слайс моделей в слайс DTO
func ModelsToRegionResponses(models []*models.Region) []*RegionResponse {
	responses := make([]*RegionResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRegionResponse(model)
	}
	return responses
}

func DTOToLocationSample(dto LocationSampleRequest) models.LocationSample {
	sample := models.LocationSample{
		EntityID:  dto.EntityID,
		Longitude: dto.Longitude,
		Latitude:  dto.Latitude,
		Accuracy:  dto.Accuracy,
	}
	if dto.Timestamp != nil {
		sample.Timestamp = dto.Timestamp.UTC()
	}
	return sample
}

func OutcomeToResponse(entityID string, outcome *geofence.Outcome) *LocationResultResponse {
	resp := &LocationResultResponse{
		EntityID: entityID,
		Alerts:   outcome.Alerts,
		Skipped:  outcome.Skipped,
	}
	if resp.Alerts == nil {
		resp.Alerts = make([]*models.Alert, 0)
	}
	for _, f := range outcome.Failures {
		resp.Failures = append(resp.Failures, RegionFailureResponse{RegionID: f.RegionID, Error: f.Err.Error()})
	}
	return resp
}

func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	alert := &models.Alert{
		EntityID: dto.EntityID,
		Type:     models.AlertType(dto.Type),
		Severity: models.Severity(dto.Severity),
		Message:  models.LocalizedText{En: dto.MessageEn, Hi: dto.MessageHi},
		RegionID: dto.RegionID,
		Metadata: dto.Metadata,
	}
	if dto.Location != nil {
		alert.Location = &models.Coordinate{Longitude: dto.Location.Longitude, Latitude: dto.Location.Latitude}
	}
	return alert
}

func ModelToStatsResponse(stats *models.Stats, clients int) StatsResponse {
	unacked := make(map[string]int64, len(stats.UnacknowledgedAlerts))
	for severity, count := range stats.UnacknowledgedAlerts {
		unacked[string(severity)] = count
	}
	return StatsResponse{
		ActiveEntities:       stats.ActiveEntities,
		WindowMinutes:        stats.WindowMinutes,
		UnacknowledgedAlerts: unacked,
		DashboardClients:     clients,
	}
}
