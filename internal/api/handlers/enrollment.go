package handlers

import (
	"context"
	"net/http"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EnrollmentHandler handles HTTP requests for sequence enrollments
type EnrollmentHandler struct {
	service service.EnrollmentServiceInterface
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(service service.EnrollmentServiceInterface) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// Enroll handles POST /organizations/:orgId/sequences/:sequenceId/enrollments
// @Summary Enroll targets
// @Description Enrolls contacts or members into the published version. Existing enrollments are skipped.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequenceId path string true "Sequence ID (UUID)"
// @Param enrollment body service.EnrollRequest true "Targets"
// @Success 201 {object} service.EnrollResponse "Enrollment outcome"
// @Failure 403 {object} ErrorResponse "Targets not accessible"
// @Failure 404 {object} ErrorResponse "Sequence not found"
// @Failure 409 {object} ErrorResponse "Sequence has no published version"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences/{sequenceId}/enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	sequenceID, ok := uuidParam(c, "sequenceId", apperrors.ErrSequenceNotFound)
	if !ok {
		return
	}

	var req service.EnrollRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Enroll(c.Request.Context(), actor, sequenceID, &req)
	if err != nil {
		respondError(c, err, "Failed to enroll")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListEnrollments handles GET /organizations/:orgId/sequences/:sequenceId/enrollments
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequenceId path string true "Sequence ID (UUID)"
// @Param status query string false "Status" Enums(active, paused, completed, removed, terminated)
// @Success 200 {array} service.EnrollmentResponse "Enrollments"
// @Failure 404 {object} ErrorResponse "Sequence not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences/{sequenceId}/enrollments [get]
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	sequenceID, ok := uuidParam(c, "sequenceId", apperrors.ErrSequenceNotFound)
	if !ok {
		return
	}

	enrollments, err := h.service.List(c.Request.Context(), actor, sequenceID, c.Query("status"))
	if err != nil {
		respondError(c, err, "Failed to list enrollments")
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// PauseEnrollment handles POST /organizations/:orgId/enrollments/:enrollmentId/pause
// @Summary Pause enrollment
// @Tags enrollments
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param enrollmentId path string true "Enrollment ID (UUID)"
// @Success 200 {object} service.EnrollmentResponse "Enrollment paused"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Failure 409 {object} ErrorResponse "Enrollment is not active"
// @Security BearerAuth
// @Router /organizations/{orgId}/enrollments/{enrollmentId}/pause [post]
func (h *EnrollmentHandler) PauseEnrollment(c *gin.Context) {
	h.transition(c, h.service.Pause, "Failed to pause enrollment")
}

// ResumeEnrollment handles POST /organizations/:orgId/enrollments/:enrollmentId/resume
// @Summary Resume enrollment
// @Tags enrollments
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param enrollmentId path string true "Enrollment ID (UUID)"
// @Success 200 {object} service.EnrollmentResponse "Enrollment resumed"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Failure 409 {object} ErrorResponse "Enrollment is not paused"
// @Security BearerAuth
// @Router /organizations/{orgId}/enrollments/{enrollmentId}/resume [post]
func (h *EnrollmentHandler) ResumeEnrollment(c *gin.Context) {
	h.transition(c, h.service.Resume, "Failed to resume enrollment")
}

func (h *EnrollmentHandler) transition(c *gin.Context, apply func(context.Context, *service.Actor, uuid.UUID) (*service.EnrollmentResponse, error), fallback string) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "enrollmentId", apperrors.ErrEnrollmentNotFound)
	if !ok {
		return
	}

	enrollment, err := apply(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, fallback)
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

// RemoveEnrollment handles DELETE /organizations/:orgId/enrollments/:enrollmentId
// @Summary Remove enrollment
// @Description Stops the enrollment and blocks its open assignments
// @Tags enrollments
// @Param orgId path string true "Organization ID (UUID)"
// @Param enrollmentId path string true "Enrollment ID (UUID)"
// @Success 204 "Enrollment removed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Failure 409 {object} ErrorResponse "Enrollment already finished"
// @Security BearerAuth
// @Router /organizations/{orgId}/enrollments/{enrollmentId} [delete]
func (h *EnrollmentHandler) RemoveEnrollment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "enrollmentId", apperrors.ErrEnrollmentNotFound)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to remove enrollment")
		return
	}

	c.Status(http.StatusNoContent)
}
