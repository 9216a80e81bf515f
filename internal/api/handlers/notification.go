package handlers

import (
	"net/http"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification inbox
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Feed handles GET /organizations/:orgId/notifications
// @Summary Notification feed
// @Description Newest first, cursor paginated
// @Tags notifications
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param tab query string false "Tab" Enums(all, activity, tasks, mentions)
// @Param show query string false "Filter" Enums(all, unread, bookmarked)
// @Param board query string false "Board" Enums(contacts, sequences, team)
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} service.FeedResponse "Feed page"
// @Failure 400 {object} ErrorResponse "Invalid cursor"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications [get]
func (h *NotificationHandler) Feed(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var q service.FeedQuery
	if !bindQuery(c, &q) {
		return
	}

	feed, err := h.service.Feed(c.Request.Context(), actor, &q)
	if err != nil {
		respondError(c, err, "Failed to load notifications")
		return
	}

	c.JSON(http.StatusOK, feed)
}

// Counts handles GET /organizations/:orgId/notifications/counts
// @Summary Unread counts
// @Tags notifications
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {object} service.CountsResponse "Unread counts per tab and board"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/counts [get]
func (h *NotificationHandler) Counts(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	counts, err := h.service.Counts(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to load notification counts")
		return
	}

	c.JSON(http.StatusOK, counts)
}

// MarkRead handles POST /organizations/:orgId/notifications/:notificationId/read
// @Summary Mark notification read
// @Tags notifications
// @Param orgId path string true "Organization ID (UUID)"
// @Param notificationId path string true "Notification ID (UUID)"
// @Success 204 "Notification updated"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/{notificationId}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.setStatus(c, models.NotificationStatusRead)
}

// MarkUnread handles POST /organizations/:orgId/notifications/:notificationId/unread
// @Summary Mark notification unread
// @Tags notifications
// @Param orgId path string true "Organization ID (UUID)"
// @Param notificationId path string true "Notification ID (UUID)"
// @Success 204 "Notification updated"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/{notificationId}/unread [post]
func (h *NotificationHandler) MarkUnread(c *gin.Context) {
	h.setStatus(c, models.NotificationStatusUnread)
}

// Hide handles POST /organizations/:orgId/notifications/:notificationId/hide
// @Summary Hide notification
// @Tags notifications
// @Param orgId path string true "Organization ID (UUID)"
// @Param notificationId path string true "Notification ID (UUID)"
// @Success 204 "Notification hidden"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/{notificationId}/hide [post]
func (h *NotificationHandler) Hide(c *gin.Context) {
	h.setStatus(c, models.NotificationStatusHidden)
}

func (h *NotificationHandler) setStatus(c *gin.Context, status models.NotificationStatus) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "notificationId", apperrors.ErrNotificationNotFound)
	if !ok {
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), actor, id, status); err != nil {
		respondError(c, err, "Failed to update notification")
		return
	}

	c.Status(http.StatusNoContent)
}

// ReadAll handles POST /organizations/:orgId/notifications/read-all
// @Summary Mark all read
// @Description Marks unread notifications of exactly the given tab and board as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param scope body service.ReadAllRequest false "Tab and board"
// @Success 200 {object} service.ReadAllResponse "Number of notifications marked read"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/read-all [post]
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.ReadAllRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.ReadAll(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to mark notifications read")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Bookmark handles PUT /organizations/:orgId/notifications/:notificationId/bookmark
// @Summary Bookmark notification
// @Tags notifications
// @Param orgId path string true "Organization ID (UUID)"
// @Param notificationId path string true "Notification ID (UUID)"
// @Success 204 "Bookmarked"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/{notificationId}/bookmark [put]
func (h *NotificationHandler) Bookmark(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "notificationId", apperrors.ErrNotificationNotFound)
	if !ok {
		return
	}

	if err := h.service.Bookmark(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to bookmark notification")
		return
	}

	c.Status(http.StatusNoContent)
}

// Unbookmark handles DELETE /organizations/:orgId/notifications/:notificationId/bookmark
// @Summary Remove bookmark
// @Tags notifications
// @Param orgId path string true "Organization ID (UUID)"
// @Param notificationId path string true "Notification ID (UUID)"
// @Success 204 "Bookmark removed"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/{notificationId}/bookmark [delete]
func (h *NotificationHandler) Unbookmark(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "notificationId", apperrors.ErrNotificationNotFound)
	if !ok {
		return
	}

	if err := h.service.Unbookmark(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to remove bookmark")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMutes handles GET /organizations/:orgId/notifications/mutes
// @Summary List mutes
// @Tags notifications
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {array} service.MuteResponse "Mutes"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/mutes [get]
func (h *NotificationHandler) ListMutes(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	mutes, err := h.service.ListMutes(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list mutes")
		return
	}

	c.JSON(http.StatusOK, mutes)
}

// CreateMute handles POST /organizations/:orgId/notifications/mutes
// @Summary Mute notifications
// @Description Mutes a notification type, optionally only for one source
// @Tags notifications
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param mute body service.CreateMuteRequest true "Mute"
// @Success 201 {object} service.MuteResponse "Mute created"
// @Failure 409 {object} ErrorResponse "Mute already exists"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/mutes [post]
func (h *NotificationHandler) CreateMute(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateMuteRequest
	if !bindJSON(c, &req) {
		return
	}

	mute, err := h.service.CreateMute(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create mute")
		return
	}

	c.JSON(http.StatusCreated, mute)
}

// DeleteMute handles DELETE /organizations/:orgId/notifications/mutes/:muteId
// @Summary Unmute
// @Tags notifications
// @Param orgId path string true "Organization ID (UUID)"
// @Param muteId path string true "Mute ID (UUID)"
// @Success 204 "Mute removed"
// @Failure 404 {object} ErrorResponse "Mute not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/notifications/mutes/{muteId} [delete]
func (h *NotificationHandler) DeleteMute(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "muteId", apperrors.ErrMuteNotFound)
	if !ok {
		return
	}

	if err := h.service.DeleteMute(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to delete mute")
		return
	}

	c.Status(http.StatusNoContent)
}
