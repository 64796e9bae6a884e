package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/shenikar/geofence_alert_service/internal/models"
	"github.com/shenikar/geofence_alert_service/internal/service"
	"github.com/sirupsen/logrus"
)

// AlertStream - живая лента тревог для панелей мониторинга
type AlertStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, entityID string) error
	ClientCount() int
}

type Handler struct {
	regionService   service.RegionService
	alertService    service.AlertService
	trackingService service.TrackingService
	stream          AlertStream
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	regionService service.RegionService,
	alertService service.AlertService,
	trackingService service.TrackingService,
	stream AlertStream,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		regionService:   regionService,
		alertService:    alertService,
		trackingService: trackingService,
		stream:          stream,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP-статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlreadyAcknowledged):
		c.JSON(http.StatusConflict, gin.H{"error": "alert already acknowledged"})
	case errors.Is(err, service.ErrAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "alert already resolved"})
	case errors.Is(err, service.ErrDuplicateKey):
		log.WithError(err).Error(msg)
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate alert id"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate читает тело запроса и проверяет его. false означает, что ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Create a new region
// @Description Create a new geofence region (polygon or circle). Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param region body RegionRequest true "Region creation request"
// @Success 201 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid request body or geometry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions [post]
func (h *Handler) createRegion(c *gin.Context) {
	var input RegionRequest
	log := h.logger.WithField("method", "createRegion")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToRegionModel(input)
	if err := h.regionService.CreateRegion(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to create region in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToRegionResponse(model))
}

// @Summary Get a list of regions
// @Description Get a paginated list of all regions. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} RegionListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	log := h.logger.WithField("method", "listRegions")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	regions, pagination, err := h.regionService.ListRegions(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "Failed to list regions from service")
		return
	}

	c.JSON(http.StatusOK, RegionListResponse{
		Records:    ModelsToRegionResponses(regions),
		Pagination: pagination,
	})
}

// @Summary Get region by ID
// @Description Get a single region by its ID. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id} [get]
func (h *Handler) getRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "getRegion").WithField("id", id)

	region, err := h.regionService.GetRegion(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "Failed to get region from service")
		return
	}
	c.JSON(http.StatusOK, ModelToRegionResponse(region))
}

// @Summary Update an existing region
// @Description Update an existing region by ID. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Param region body RegionRequest true "Region update request"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid region ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id} [put]
func (h *Handler) updateRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "updateRegion").WithField("id", id)

	var input RegionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToRegionModel(input)
	model.ID = id

	if err := h.regionService.UpdateRegion(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to update region in service")
		return
	}
	c.JSON(http.StatusOK, ModelToRegionResponse(model))
}

// @Summary Deactivate a region
// @Description Deactivate a region by its ID. The region stops taking part in geofence checks. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Region ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id} [delete]
func (h *Handler) deleteRegion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}
	log := h.logger.WithField("method", "deleteRegion").WithField("id", id)

	if err := h.regionService.DeactivateRegion(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "Failed to deactivate region in service")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Submit a location sample
// @Description Record an entity position, evaluate active regions and emit entry/exit alerts. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sample body LocationSampleRequest true "Location sample"
// @Success 200 {object} LocationResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location [post]
// @Router /location/check [post]
func (h *Handler) processLocation(c *gin.Context) {
	var input LocationSampleRequest
	log := h.logger.WithField("method", "processLocation")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	outcome, err := h.trackingService.ProcessSample(c.Request.Context(), DTOToLocationSample(input))
	if err != nil {
		h.respondError(c, log.WithField("entity_id", input.EntityID), err, "Failed to process location sample")
		return
	}

	c.JSON(http.StatusOK, OutcomeToResponse(input.EntityID, outcome))
}

// @Summary Get last known location
// @Description Get the last accepted location sample of an entity. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entityId path string true "Entity ID"
// @Success 200 {object} models.LocationSample
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entity not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities/{entityId}/location [get]
func (h *Handler) getLastLocation(c *gin.Context) {
	entityID := c.Param("entityId")
	log := h.logger.WithField("method", "getLastLocation").WithField("entity_id", entityID)

	sample, err := h.trackingService.LastLocation(c.Request.Context(), entityID)
	if err != nil {
		h.respondError(c, log, err, "Failed to get last location")
		return
	}
	c.JSON(http.StatusOK, sample)
}

// @Summary Append an alert
// @Description Append an alert raised by an external producer (SOS button, battery monitor). Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert"
// @Success 201 {object} models.Alert
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 409 {object} map[string]string "Alert id collision"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	alert := DTOToAlertModel(input)
	if err := h.alertService.Append(c.Request.Context(), alert); err != nil {
		h.respondError(c, log, err, "Failed to append alert in service")
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// @Summary Query alerts
// @Description Get a page of alerts, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entity_id query string false "Entity ID"
// @Param severity query string false "Severity" Enums(info, warning, critical, emergency)
// @Param type query string false "Alert type"
// @Param region_id query string false "Region ID"
// @Param acknowledged query bool false "Acknowledgment flag"
// @Param from query string false "Created at or after (RFC3339)"
// @Param to query string false "Created at or before (RFC3339)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.AlertPage
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entity not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) queryAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "queryAlerts")

	filter, err := parseAlertFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid alert filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.alertService.Query(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.respondError(c, log, err, "Failed to query alerts from service")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get alert by ID
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param alertId path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{alertId} [get]
func (h *Handler) getAlert(c *gin.Context) {
	alertID := c.Param("alertId")
	log := h.logger.WithField("method", "getAlert").WithField("alert_id", alertID)

	alert, err := h.alertService.GetAlert(c.Request.Context(), alertID)
	if err != nil {
		h.respondError(c, log, err, "Failed to get alert from service")
		return
	}
	c.JSON(http.StatusOK, alert)
}

// @Summary Acknowledge an alert
// @Description Mark an alert as acknowledged. A second acknowledgment returns 409 and keeps the first one. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alertId path string true "Alert ID"
// @Param ack body AcknowledgeRequest true "Acknowledgment"
// @Success 200 {object} models.Alert
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already acknowledged"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{alertId}/acknowledge [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	alertID := c.Param("alertId")
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("alert_id", alertID)

	var input AcknowledgeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	alert, err := h.alertService.Acknowledge(c.Request.Context(), alertID, input.AcknowledgedBy, input.Response)
	if err != nil {
		h.respondError(c, log, err, "Failed to acknowledge alert")
		return
	}
	c.JSON(http.StatusOK, alert)
}

// @Summary Resolve an alert
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param alertId path string true "Alert ID"
// @Success 200 {object} models.Alert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert already resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{alertId}/resolve [post]
func (h *Handler) resolveAlert(c *gin.Context) {
	alertID := c.Param("alertId")
	log := h.logger.WithField("method", "resolveAlert").WithField("alert_id", alertID)

	alert, err := h.alertService.Resolve(c.Request.Context(), alertID)
	if err != nil {
		h.respondError(c, log, err, "Failed to resolve alert")
		return
	}
	c.JSON(http.StatusOK, alert)
}

// @Summary Acknowledge and purge entity alerts
// @Description Acknowledge every unacknowledged alert of an entity, then delete all acknowledged alerts of that entity. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entityId path string true "Entity ID"
// @Param ack body AcknowledgeRequest true "Acknowledgment"
// @Success 200 {object} models.BulkAckResult
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No unacknowledged alerts"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /entities/{entityId}/alerts/acknowledge [post]
func (h *Handler) bulkAcknowledge(c *gin.Context) {
	entityID := c.Param("entityId")
	log := h.logger.WithField("method", "bulkAcknowledge").WithField("entity_id", entityID)

	var input AcknowledgeRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.alertService.BulkAcknowledgeAndPurge(c.Request.Context(), entityID, input.AcknowledgedBy, input.Response)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no unacknowledged alerts for entity"})
			return
		}
		h.respondError(c, log, err, "Failed to acknowledge entity alerts")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get dashboard statistics
// @Description Get active entity count and unacknowledged alerts per severity. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.trackingService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "Failed to get stats from service")
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats, h.stream.ClientCount()))
}

// @Summary Live alert stream
// @Description Upgrade to websocket and receive alert events. Optional entity_id narrows the stream to one entity. Requires API key.
// @Tags Alerts
// @Security ApiKeyAuth
// @Param entity_id query string false "Entity ID"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /ws/alerts [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "streamAlerts")

	// после неудачного апгрейда ответ уже записан upgrader'ом
	if err := h.stream.ServeWS(c.Writer, c.Request, c.Query("entity_id")); err != nil {
		log.WithError(err).Warn("Failed to open alert stream")
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseAlertFilter(c *gin.Context) (models.AlertFilter, error) {
	filter := models.AlertFilter{
		EntityID: c.Query("entity_id"),
		Severity: models.Severity(c.Query("severity")),
		Type:     models.AlertType(c.Query("type")),
	}

	if raw := c.Query("region_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid region_id")
		}
		filter.RegionID = &id
	}
	if raw := c.Query("acknowledged"); raw != "" {
		acked, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("invalid acknowledged flag")
		}
		filter.Acknowledged = &acked
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid from, expected RFC3339")
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid to, expected RFC3339")
		}
		filter.To = &to
	}
	return filter, nil
}
