package handlers

import (
	"net/http"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for the organization roster
type MemberHandler struct {
	service service.MembershipServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MembershipServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// ListMembers handles GET /organizations/:orgId/members
// @Summary List members
// @Tags members
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {array} service.MembershipResponse "Successfully retrieved members"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	members, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMember handles PATCH /organizations/:orgId/members/:memberId
// @Summary Update member
// @Description Change role, status or parent leader. Org members only.
// @Tags members
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Param member body service.UpdateMembershipRequest true "Fields to change"
// @Success 200 {object} service.MembershipResponse "Successfully updated member"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Last org member"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/members/{memberId} [patch]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "memberId", apperrors.ErrMembershipNotFound)
	if !ok {
		return
	}

	var req service.UpdateMembershipRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.Update(c.Request.Context(), actor, memberID, &req)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /organizations/:orgId/members/:memberId
// @Summary Remove member
// @Description Org members may remove anyone; any member may leave
// @Tags members
// @Param orgId path string true "Organization ID (UUID)"
// @Param memberId path string true "Membership ID (UUID)"
// @Success 204 "Member removed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Last org member"
// @Security BearerAuth
// @Router /organizations/{orgId}/members/{memberId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "memberId", apperrors.ErrMembershipNotFound)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), actor, memberID); err != nil {
		respondError(c, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}
