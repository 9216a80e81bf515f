package handlers

import (
	"net/http"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles HTTP requests for invites
type InviteHandler struct {
	service service.InviteServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(service service.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{service: service}
}

// CreateInvite handles POST /organizations/:orgId/invites
// @Summary Create invite
// @Description Org members may invite any role; leaders invite reps and become their parent.
// @Description When the invite e-mail cannot be sent the invite is kept and returned in the error details.
// @Tags invites
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param invite body service.CreateInviteRequest true "Invite data"
// @Success 201 {object} service.CreateInviteResponse "Invite created"
// @Failure 403 {object} ErrorResponse "Role cannot invite"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Invite signing key not configured"
// @Failure 502 {object} ErrorResponse "Invite e-mail could not be sent"
// @Security BearerAuth
// @Router /organizations/{orgId}/invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateInviteRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		if resp != nil && apperrors.IsUpstream(err) {
			writeError(c, http.StatusBadGateway, err.Error(), resp)
			return
		}
		respondError(c, err, "Failed to create invite")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListInvites handles GET /organizations/:orgId/invites
// @Summary List invites
// @Description Org members see every invite, leaders see their own
// @Tags invites
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {array} service.InviteResponse "Successfully retrieved invites"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/invites [get]
func (h *InviteHandler) ListInvites(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	invites, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list invites")
		return
	}

	c.JSON(http.StatusOK, invites)
}

// RevokeInvite handles DELETE /organizations/:orgId/invites/:inviteId
// @Summary Revoke invite
// @Tags invites
// @Param orgId path string true "Organization ID (UUID)"
// @Param inviteId path string true "Invite ID (UUID)"
// @Success 204 "Invite revoked"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/invites/{inviteId} [delete]
func (h *InviteHandler) RevokeInvite(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "inviteId", apperrors.ErrInviteNotFound)
	if !ok {
		return
	}

	if err := h.service.Revoke(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to revoke invite")
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewInvite handles GET /api/v1/invites/:token
// @Summary Preview invite
// @Description Shows the organization and role behind an invite link
// @Tags invites
// @Produce json
// @Param token path string true "Invite token"
// @Success 200 {object} service.InvitePreviewResponse "Invite preview"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 410 {object} ErrorResponse "Invite expired, revoked or used up"
// @Router /invites/{token} [get]
func (h *InviteHandler) PreviewInvite(c *gin.Context) {
	preview, err := h.service.Preview(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err, "Failed to load invite")
		return
	}

	c.JSON(http.StatusOK, preview)
}

// RedeemInvite handles POST /api/v1/invites/redeem
// @Summary Accept invite
// @Tags invites
// @Accept json
// @Produce json
// @Param invite body service.RedeemInviteRequest true "Invite token"
// @Success 201 {object} service.MembershipResponse "Membership created"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 410 {object} ErrorResponse "Invite expired, revoked or used up"
// @Security BearerAuth
// @Router /invites/redeem [post]
func (h *InviteHandler) RedeemInvite(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.RedeemInviteRequest
	if !bindJSON(c, &req) {
		return
	}

	membership, err := h.service.Redeem(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to redeem invite")
		return
	}

	c.JSON(http.StatusCreated, membership)
}
