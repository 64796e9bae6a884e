package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geofence_alert_service/internal/config"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Ключ принимается из X-API-Key, Authorization: Bearer или, для websocket, из query api_key.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := extractAPIKey(c)
		if apiKey == "" {
			log.WithField("path", c.FullPath()).Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !validAPIKey(cfg.APIKeys, apiKey) {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

func extractAPIKey(c *gin.Context) string {
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		return apiKey
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	// браузерный WebSocket не умеет выставлять заголовки
	if c.IsWebsocket() {
		return c.Query("api_key")
	}
	return ""
}

func validAPIKey(keys []string, apiKey string) bool {
	valid := false
	for _, key := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			valid = true
		}
	}
	return valid
}
