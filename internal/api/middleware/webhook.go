package middleware

import (
	"crypto/subtle"
	"net/http"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// WebhookSecretHeader authenticates calls from the platform scheduler
const WebhookSecretHeader = "X-Webhook-Secret"

// RequireWebhookSecret guards internal webhooks with a shared secret
func RequireWebhookSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			logger.WithContext(c.Request.Context()).Error(apperrors.ErrWebhookSecretNotSet.Error())
			abort(c, http.StatusInternalServerError, apperrors.ErrWebhookSecretNotSet.Error())
			return
		}

		given := c.GetHeader(WebhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			abort(c, http.StatusUnauthorized, apperrors.ErrInvalidWebhookSecret.Error())
			return
		}
		c.Next()
	}
}
