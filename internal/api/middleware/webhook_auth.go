package middleware

import (
	"crypto/subtle"
	"net/http"

	"voice-assistant-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// WebhookAuth verifies the shared secret sent by the voice platform on
// webhook calls. When no secret is configured the check is skipped, which
// keeps local development working without credentials.
func WebhookAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.VapiSecretKey == "" {
			c.Next()
			return
		}

		secret := c.GetHeader("X-Vapi-Secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(cfg.VapiSecretKey)) != 1 {
			logrus.WithField("path", c.Request.URL.Path).Warn("Webhook call rejected: invalid secret")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
			return
		}
		c.Next()
	}
}
