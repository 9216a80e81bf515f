package handlers

import (
	"net/http"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for the task list
type AssignmentHandler struct {
	service service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// ListAssignments handles GET /organizations/:orgId/assignments
// @Summary List assignments
// @Description My tasks, or my team's tasks for leaders and org members
// @Tags assignments
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param status query string false "Status" Enums(open, snoozed, done, blocked)
// @Param scope query string false "Scope" Enums(mine, team)
// @Success 200 {array} service.AssignmentResponse "Assignments"
// @Failure 403 {object} ErrorResponse "Team scope not allowed"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/assignments [get]
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var q service.AssignmentListQuery
	if !bindQuery(c, &q) {
		return
	}

	assignments, err := h.service.List(c.Request.Context(), actor, &q)
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// SnoozeAssignment handles POST /organizations/:orgId/assignments/:assignmentId/snooze
// @Summary Snooze assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param assignmentId path string true "Assignment ID (UUID)"
// @Param snooze body service.SnoozeRequest true "Snooze until (ISO-8601, in the future)"
// @Success 200 {object} service.AssignmentResponse "Assignment snoozed"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment is closed"
// @Failure 422 {object} ErrorResponse "Invalid snooze time"
// @Security BearerAuth
// @Router /organizations/{orgId}/assignments/{assignmentId}/snooze [post]
func (h *AssignmentHandler) SnoozeAssignment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "assignmentId", apperrors.ErrAssignmentNotFound)
	if !ok {
		return
	}

	var req service.SnoozeRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.service.Snooze(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to snooze assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// UnsnoozeAssignment handles POST /organizations/:orgId/assignments/:assignmentId/unsnooze
// @Summary Unsnooze assignment
// @Tags assignments
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param assignmentId path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Assignment reopened"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment is not snoozed"
// @Security BearerAuth
// @Router /organizations/{orgId}/assignments/{assignmentId}/unsnooze [post]
func (h *AssignmentHandler) UnsnoozeAssignment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "assignmentId", apperrors.ErrAssignmentNotFound)
	if !ok {
		return
	}

	assignment, err := h.service.Unsnooze(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to unsnooze assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CompleteAssignment handles POST /organizations/:orgId/assignments/:assignmentId/complete
// @Summary Complete assignment
// @Description Marks the task done and schedules the next step of the enrollment
// @Tags assignments
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param assignmentId path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Assignment completed"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment is closed"
// @Security BearerAuth
// @Router /organizations/{orgId}/assignments/{assignmentId}/complete [post]
func (h *AssignmentHandler) CompleteAssignment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "assignmentId", apperrors.ErrAssignmentNotFound)
	if !ok {
		return
	}

	assignment, err := h.service.Complete(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to complete assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}
