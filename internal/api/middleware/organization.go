package middleware

import (
	"net/http"

	"salesdesk-backend/internal/auth"
	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/requestctx"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const membershipKey = "membership"

// RequireMembership scopes /organizations/:orgId routes to the caller's
// active membership. Non-members get 404 so that organization ids do not leak.
func RequireMembership(members service.MembershipServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			abort(c, http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error())
			return
		}

		orgID, err := uuid.Parse(c.Param("orgId"))
		if err != nil {
			abort(c, http.StatusNotFound, apperrors.ErrOrganizationNotFound.Error())
			return
		}

		membership, err := members.Resolve(c.Request.Context(), orgID, userID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				abort(c, http.StatusNotFound, apperrors.ErrOrganizationNotFound.Error())
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to resolve membership")
			abort(c, http.StatusInternalServerError, "Failed to resolve membership")
			return
		}

		SetMembership(c, membership)
		c.Request = c.Request.WithContext(requestctx.WithOrganization(c.Request.Context(), orgID))
		c.Next()
	}
}

// SetMembership stores the caller's membership on the gin context
func SetMembership(c *gin.Context, m *models.Membership) {
	c.Set(membershipKey, m)
}

// GetMembership returns the membership set by RequireMembership
func GetMembership(c *gin.Context) (*models.Membership, bool) {
	v, exists := c.Get(membershipKey)
	if !exists {
		return nil, false
	}
	m, ok := v.(*models.Membership)
	return m, ok && m != nil
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      msg,
		"request_id": requestctx.RequestID(c.Request.Context()),
	})
}
