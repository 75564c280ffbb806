package middleware

import (
	"crypto/subtle"
	"net/http"

	"evermore/config"

	"github.com/gin-gonic/gin"
)

// CronSecretMiddleware guards the scheduler-facing endpoint with an opaque
// shared secret. When no secret is configured the endpoint is open, for
// deployments that trust the network origin instead.
func CronSecretMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.AppConfig.CronSecret
		if secret == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("X-Cron-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron credential"})
			return
		}
		c.Next()
	}
}
