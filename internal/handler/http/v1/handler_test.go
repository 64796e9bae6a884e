package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/shenikar/geofence_alert_service/internal/geofence"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
	"github.com/shenikar/geofence_alert_service/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

type fakeStream struct {
	clients  int
	entityID string
}

func (f *fakeStream) ServeWS(w http.ResponseWriter, _ *http.Request, entityID string) error {
	f.entityID = entityID
	w.WriteHeader(http.StatusBadRequest)
	return errors.New("not a websocket handshake")
}

func (f *fakeStream) ClientCount() int {
	return f.clients
}

type handlerMocks struct {
	regions  *mocks.MockRegionService
	alerts   *mocks.MockAlertService
	tracking *mocks.MockTrackingService
	stream   *fakeStream
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		regions:  mocks.NewMockRegionService(ctrl),
		alerts:   mocks.NewMockAlertService(ctrl),
		tracking: mocks.NewMockTrackingService(ctrl),
		stream:   &fakeStream{clients: 2},
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(m.regions, m.alerts, m.tracking, m.stream, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func circleRequest() RegionRequest {
	return RegionRequest{
		Name:         "Old Delhi market",
		Shape:        "circle",
		Center:       &CoordinateDTO{Longitude: 77.2303, Latitude: 28.6562},
		RadiusMeters: 500,
		Category:     "danger",
		RiskLevel:    8,
	}
}

func TestCreateRegion_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()

	m.regions.EXPECT().
		CreateRegion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, region *models.Region) error {
			assert.Equal(t, models.ShapeCircle, region.Shape)
			assert.Equal(t, models.CategoryDanger, region.Category)
			assert.True(t, region.IsActive)
			require.NotNil(t, region.Center)
			region.ID = regionID
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/regions", jsonBody(t, circleRequest()), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, regionID, resp.ID)
	assert.Equal(t, "Old Delhi market", resp.Name)
}

func TestCreateRegion_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.regions.EXPECT().CreateRegion(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/regions", bytes.NewBufferString(`{"name": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateRegion_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := circleRequest()
	reqBody.Name = ""

	m.regions.EXPECT().CreateRegion(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/regions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateRegion_InvalidGeometry(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := RegionRequest{
		Name:     "Broken polygon",
		Shape:    "polygon",
		Vertices: []CoordinateDTO{{Longitude: 1, Latitude: 1}, {Longitude: 2, Latitude: 2}},
		Category: "caution",
	}

	m.regions.EXPECT().
		CreateRegion(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: polygon needs at least 3 vertices", service.ErrInvalidArgument)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/regions", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "polygon needs at least 3 vertices")
}

func TestCreateRegion_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.regions.EXPECT().
		CreateRegion(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused")).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/regions", jsonBody(t, circleRequest()), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetRegion_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()
	expected := &models.Region{
		ID:       regionID,
		Name:     "Retrieved Region",
		Shape:    models.ShapePolygon,
		Vertices: []models.Coordinate{{Longitude: 0, Latitude: 0}, {Longitude: 1, Latitude: 0}, {Longitude: 1, Latitude: 1}},
		Category: models.CategorySafe,
		IsActive: true,
	}

	m.regions.EXPECT().GetRegion(gomock.Any(), regionID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/regions/%s", regionID), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, regionID, resp.ID)
	assert.Len(t, resp.Vertices, 3)
}

func TestGetRegion_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.regions.EXPECT().GetRegion(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/regions/invalid-uuid", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid region ID")
}

func TestGetRegion_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()

	m.regions.EXPECT().
		GetRegion(gomock.Any(), regionID).
		Return(nil, fmt.Errorf("service: could not get region: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/regions/%s", regionID), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRegions_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	regions := []*models.Region{
		{ID: uuid.New(), Name: "A", Shape: models.ShapeCircle, Category: models.CategorySafe},
		{ID: uuid.New(), Name: "B", Shape: models.ShapeCircle, Category: models.CategoryDanger},
	}

	m.regions.EXPECT().
		ListRegions(gomock.Any(), 2, 5).
		Return(regions, models.NewPagination(2, 5, 7), nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/regions?page=2&pageSize=5", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RegionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Records, 2)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestUpdateRegion_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()
	inactive := false
	reqBody := circleRequest()
	reqBody.IsActive = &inactive

	m.regions.EXPECT().
		UpdateRegion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, region *models.Region) error {
			assert.Equal(t, regionID, region.ID)
			assert.False(t, region.IsActive)
			return nil
		}).Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/regions/%s", regionID), jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateRegion_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()

	m.regions.EXPECT().
		UpdateRegion(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: region not found for update: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/regions/%s", regionID), jsonBody(t, circleRequest()), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRegion_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()

	m.regions.EXPECT().DeactivateRegion(gomock.Any(), regionID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/regions/%s", regionID), nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProcessLocation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()
	entry := &models.Alert{
		AlertID:  "geofence_entry_1710072000000_T1",
		EntityID: "T1",
		Type:     models.AlertGeofenceEntry,
		Severity: models.SeverityCritical,
		RegionID: &regionID,
	}

	m.tracking.EXPECT().
		ProcessSample(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sample models.LocationSample) (*geofence.Outcome, error) {
			assert.Equal(t, "T1", sample.EntityID)
			assert.Equal(t, 77.2303, sample.Longitude)
			assert.True(t, sample.Timestamp.IsZero())
			return &geofence.Outcome{Alerts: []*models.Alert{entry}}, nil
		}).Times(1)

	reqBody := LocationSampleRequest{EntityID: "T1", Longitude: 77.2303, Latitude: 28.6562}
	w := makeRequest(router, "POST", "/api/v1/location", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, entry.AlertID, resp.Alerts[0].AlertID)
	assert.Empty(t, resp.Failures)
}

func TestProcessLocation_CheckAliasReportsFailures(t *testing.T) {
	_, m, router := newTestHandler(t)
	regionID := uuid.New()
	ts := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	m.tracking.EXPECT().
		ProcessSample(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sample models.LocationSample) (*geofence.Outcome, error) {
			assert.True(t, ts.Equal(sample.Timestamp))
			return &geofence.Outcome{
				Failures: []geofence.RegionFailure{{RegionID: regionID, Err: errors.New("timeout")}},
			}, nil
		}).Times(1)

	reqBody := LocationSampleRequest{EntityID: "T1", Longitude: 10, Latitude: 10, Timestamp: &ts}
	w := makeRequest(router, "POST", "/api/v1/location/check", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Alerts)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, regionID, resp.Failures[0].RegionID)
}

func TestProcessLocation_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.tracking.EXPECT().ProcessSample(gomock.Any(), gomock.Any()).Times(0)

	reqBody := LocationSampleRequest{EntityID: "T1", Longitude: 200, Latitude: 10}
	w := makeRequest(router, "POST", "/api/v1/location", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Longitude' failed on the 'longitude' tag")
}

func TestGetLastLocation_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.tracking.EXPECT().
		LastLocation(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("entity ghost: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/entities/ghost/location", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAlert_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.Equal(t, models.AlertEmergency, alert.Type)
			assert.Equal(t, "T1", alert.EntityID)
			alert.AlertID = "emergency_1710072000000_T1"
			alert.Severity = models.SeverityEmergency
			return nil
		}).Times(1)

	reqBody := CreateAlertRequest{
		EntityID:  "T1",
		Type:      "emergency",
		MessageEn: "SOS pressed",
		Location:  &CoordinateDTO{Longitude: 77.2, Latitude: 28.6},
	}
	w := makeRequest(router, "POST", "/api/v1/alerts", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "emergency_1710072000000_T1", resp.AlertID)
	assert.Equal(t, models.SeverityEmergency, resp.Severity)
}

func TestCreateAlert_UnknownType(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateAlertRequest{EntityID: "T1", Type: "sos"}
	w := makeRequest(router, "POST", "/api/v1/alerts", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Type' failed on the 'oneof' tag")
}

func TestCreateAlert_DuplicateKey(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not append alert: %w", service.ErrDuplicateKey)).
		Times(1)

	reqBody := CreateAlertRequest{EntityID: "T1", Type: "battery_low"}
	w := makeRequest(router, "POST", "/api/v1/alerts", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQueryAlerts_Filters(t *testing.T) {
	_, m, router := newTestHandler(t)
	page := &models.AlertPage{
		Records:    []*models.Alert{{AlertID: "a1", Severity: models.SeverityCritical}},
		Pagination: models.NewPagination(1, 20, 41),
	}

	m.alerts.EXPECT().
		Query(gomock.Any(), gomock.Any(), 1, 20).
		DoAndReturn(func(_ context.Context, filter models.AlertFilter, _, _ int) (*models.AlertPage, error) {
			assert.Equal(t, models.SeverityCritical, filter.Severity)
			require.NotNil(t, filter.Acknowledged)
			assert.False(t, *filter.Acknowledged)
			require.NotNil(t, filter.From)
			assert.Nil(t, filter.To)
			return page, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts?severity=critical&acknowledged=false&from=2024-03-10T00:00:00Z", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.AlertPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, int64(41), resp.Pagination.TotalRecords)
}

func TestQueryAlerts_InvalidFilter(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/alerts?acknowledged=maybe", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid acknowledged flag")
}

func TestQueryAlerts_UnknownEntity(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		Query(gomock.Any(), gomock.Any(), 1, 20).
		Return(nil, fmt.Errorf("service: entity ghost: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts?entity_id=ghost", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAlert_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	alert := &models.Alert{AlertID: "custom_1_T1", EntityID: "T1", Type: models.AlertCustom}

	m.alerts.EXPECT().GetAlert(gomock.Any(), "custom_1_T1").Return(alert, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts/custom_1_T1", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alert_id":"custom_1_T1"`)
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	acked := &models.Alert{
		AlertID: "a1",
		Acknowledgment: models.Acknowledgment{
			IsAcknowledged: true,
			AcknowledgedBy: "ranger-7",
			AcknowledgedAt: &at,
		},
	}

	m.alerts.EXPECT().Acknowledge(gomock.Any(), "a1", "ranger-7", "on my way").Return(acked, nil).Times(1)

	reqBody := AcknowledgeRequest{AcknowledgedBy: "ranger-7", Response: "on my way"}
	w := makeRequest(router, "POST", "/api/v1/alerts/a1/acknowledge", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_acknowledged":true`)
}

func TestAcknowledgeAlert_AlreadyAcknowledged(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		Acknowledge(gomock.Any(), "a1", "ranger-7", "").
		Return(nil, fmt.Errorf("alert a1: %w", service.ErrAlreadyAcknowledged)).
		Times(1)

	reqBody := AcknowledgeRequest{AcknowledgedBy: "ranger-7"}
	w := makeRequest(router, "POST", "/api/v1/alerts/a1/acknowledge", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "alert already acknowledged")
}

func TestAcknowledgeAlert_MissingAcknowledger(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().Acknowledge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts/a1/acknowledge", bytes.NewBufferString(`{}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveAlert_AlreadyResolved(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		Resolve(gomock.Any(), "a1").
		Return(nil, fmt.Errorf("alert a1: %w", service.ErrAlreadyResolved)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/alerts/a1/resolve", nil, authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "alert already resolved")
}

func TestBulkAcknowledge_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		BulkAcknowledgeAndPurge(gomock.Any(), "T1", "control-room", "").
		Return(&models.BulkAckResult{Processed: 3, Deleted: 3}, nil).
		Times(1)

	reqBody := AcknowledgeRequest{AcknowledgedBy: "control-room"}
	w := makeRequest(router, "POST", "/api/v1/entities/T1/alerts/acknowledge", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.BulkAckResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Processed)
	assert.Equal(t, int64(3), resp.Deleted)
}

func TestBulkAcknowledge_NothingToAcknowledge(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.alerts.EXPECT().
		BulkAcknowledgeAndPurge(gomock.Any(), "T1", "control-room", "").
		Return(&models.BulkAckResult{}, fmt.Errorf("entity T1: %w", service.ErrNotFound)).
		Times(1)

	reqBody := AcknowledgeRequest{AcknowledgedBy: "control-room"}
	w := makeRequest(router, "POST", "/api/v1/entities/T1/alerts/acknowledge", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no unacknowledged alerts")
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	stats := &models.Stats{
		ActiveEntities: 5,
		WindowMinutes:  60,
		UnacknowledgedAlerts: map[models.Severity]int64{
			models.SeverityInfo:      0,
			models.SeverityWarning:   2,
			models.SeverityCritical:  1,
			models.SeverityEmergency: 0,
		},
	}

	m.tracking.EXPECT().GetStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.ActiveEntities)
	assert.Equal(t, int64(2), resp.UnacknowledgedAlerts["warning"])
	assert.Equal(t, 2, resp.DashboardClients)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.tracking.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStreamAlerts_PassesEntityFilter(t *testing.T) {
	_, m, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/ws/alerts?entity_id=T1", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "T1", m.stream.entityID)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutes_RequireAPIKey(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/regions", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_Bearer(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_QueryKeyOnlyForWebsocket(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, "GET", "/test?api_key=valid-key", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, "GET", "/test?api_key=valid-key", nil, map[string]string{
		"Connection": "upgrade",
		"Upgrade":    "websocket",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
