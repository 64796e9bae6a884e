package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Все маршруты, кроме health-check, требуют API-ключ.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Маршруты для управления геозонами (CRUD)
	regions := secured.Group("/regions")
	{
		regions.POST("", h.createRegion)
		regions.GET("", h.listRegions)
		regions.GET("/:id", h.getRegion)
		regions.PUT("/:id", h.updateRegion)
		regions.DELETE("/:id", h.deleteRegion)
	}

	// Прием координат
	secured.POST("/location", h.processLocation)
	secured.POST("/location/check", h.processLocation)
	secured.GET("/entities/:entityId/location", h.getLastLocation)
	secured.POST("/entities/:entityId/alerts/acknowledge", h.bulkAcknowledge)

	alerts := secured.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.queryAlerts)
		alerts.GET("/:alertId", h.getAlert)
		alerts.POST("/:alertId/acknowledge", h.acknowledgeAlert)
		alerts.POST("/:alertId/resolve", h.resolveAlert)
	}

	secured.GET("/stats", h.getStats)
	secured.GET("/ws/alerts", h.streamAlerts)
}
