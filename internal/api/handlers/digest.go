package handlers

import (
	"net/http"

	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DigestHandler handles the weekly digest webhook
type DigestHandler struct {
	service service.DigestServiceInterface
}

// NewDigestHandler creates a new digest handler
func NewDigestHandler(service service.DigestServiceInterface) *DigestHandler {
	return &DigestHandler{service: service}
}

// WeeklyDigest handles POST /internal/webhooks/weekly-digest
// @Summary Send weekly digests
// @Description Called by the platform scheduler. Sends the digest to every opted-in user, or only to user_id.
// @Tags internal
// @Produce json
// @Param X-Webhook-Secret header string true "Shared webhook secret"
// @Param user_id query string false "Send to this user only"
// @Success 200 {object} service.DigestResult "Sent, skipped and failed counts"
// @Failure 400 {object} ErrorResponse "Invalid user_id"
// @Failure 401 {object} ErrorResponse "Invalid webhook secret"
// @Failure 500 {object} ErrorResponse "Webhook secret not configured"
// @Router /internal/webhooks/weekly-digest [post]
func (h *DigestHandler) WeeklyDigest(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "Invalid query parameters", map[string]string{"user_id": "must be a UUID"})
			return
		}
		userID = &id
	}

	result, err := h.service.Run(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to send weekly digest")
		return
	}

	c.JSON(http.StatusOK, result)
}
