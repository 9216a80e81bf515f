package handlers

import (
	"net/http"
	"strconv"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SequenceHandler handles HTTP requests for sequences, their versions and steps
type SequenceHandler struct {
	service service.SequenceServiceInterface
}

// NewSequenceHandler creates a new sequence handler
func NewSequenceHandler(service service.SequenceServiceInterface) *SequenceHandler {
	return &SequenceHandler{service: service}
}

// ListSequences handles GET /organizations/:orgId/sequences
// @Summary List sequences
// @Tags sequences
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param include_archived query bool false "Include archived sequences"
// @Success 200 {array} service.SequenceResponse "Sequences"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences [get]
func (h *SequenceHandler) ListSequences(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	includeArchived, _ := strconv.ParseBool(c.Query("include_archived"))

	sequences, err := h.service.List(c.Request.Context(), actor, includeArchived)
	if err != nil {
		respondError(c, err, "Failed to list sequences")
		return
	}

	c.JSON(http.StatusOK, sequences)
}

// CreateSequence handles POST /organizations/:orgId/sequences
// @Summary Create sequence
// @Description Creates the sequence with an empty draft version 1. Org and leaders only.
// @Tags sequences
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequence body service.CreateSequenceRequest true "Sequence data"
// @Success 201 {object} service.SequenceResponse "Sequence created"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences [post]
func (h *SequenceHandler) CreateSequence(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateSequenceRequest
	if !bindJSON(c, &req) {
		return
	}

	sequence, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create sequence")
		return
	}

	c.JSON(http.StatusCreated, sequence)
}

// GetSequence handles GET /organizations/:orgId/sequences/:sequenceId
// @Summary Get sequence
// @Tags sequences
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequenceId path string true "Sequence ID (UUID)"
// @Success 200 {object} service.SequenceResponse "Sequence with its versions"
// @Failure 404 {object} ErrorResponse "Sequence not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences/{sequenceId} [get]
func (h *SequenceHandler) GetSequence(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sequenceId", apperrors.ErrSequenceNotFound)
	if !ok {
		return
	}

	sequence, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to get sequence")
		return
	}

	c.JSON(http.StatusOK, sequence)
}

// UpdateSequence handles PATCH /organizations/:orgId/sequences/:sequenceId
// @Summary Update sequence
// @Tags sequences
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequenceId path string true "Sequence ID (UUID)"
// @Param sequence body service.UpdateSequenceRequest true "Fields to change"
// @Success 200 {object} service.SequenceResponse "Sequence updated"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Sequence not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences/{sequenceId} [patch]
func (h *SequenceHandler) UpdateSequence(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sequenceId", apperrors.ErrSequenceNotFound)
	if !ok {
		return
	}

	var req service.UpdateSequenceRequest
	if !bindJSON(c, &req) {
		return
	}

	sequence, err := h.service.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update sequence")
		return
	}

	c.JSON(http.StatusOK, sequence)
}

// ArchiveSequence handles DELETE /organizations/:orgId/sequences/:sequenceId
// @Summary Archive sequence
// @Description Archives the sequence and terminates its running enrollments
// @Tags sequences
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequenceId path string true "Sequence ID (UUID)"
// @Success 204 "Sequence archived"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Sequence not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences/{sequenceId} [delete]
func (h *SequenceHandler) ArchiveSequence(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sequenceId", apperrors.ErrSequenceNotFound)
	if !ok {
		return
	}

	if err := h.service.Archive(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to archive sequence")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateVersion handles POST /organizations/:orgId/sequences/:sequenceId/versions
// @Summary Create draft version
// @Description Copies the steps of the latest version into a new draft
// @Tags sequences
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequenceId path string true "Sequence ID (UUID)"
// @Success 201 {object} service.VersionResponse "Draft created"
// @Failure 404 {object} ErrorResponse "Sequence not found"
// @Failure 409 {object} ErrorResponse "A draft already exists"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences/{sequenceId}/versions [post]
func (h *SequenceHandler) CreateVersion(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sequenceId", apperrors.ErrSequenceNotFound)
	if !ok {
		return
	}

	version, err := h.service.CreateVersion(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to create version")
		return
	}

	c.JSON(http.StatusCreated, version)
}

// GetVersion handles GET /organizations/:orgId/sequences/:sequenceId/versions/:versionId
// @Summary Get version
// @Tags sequences
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param sequenceId path string true "Sequence ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Success 200 {object} service.VersionResponse "Version with ordered steps"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/sequences/{sequenceId}/versions/{versionId} [get]
func (h *SequenceHandler) GetVersion(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	sequenceID, ok := uuidParam(c, "sequenceId", apperrors.ErrSequenceNotFound)
	if !ok {
		return
	}
	versionID, ok := uuidParam(c, "versionId", apperrors.ErrVersionNotFound)
	if !ok {
		return
	}

	version, err := h.service.GetVersion(c.Request.Context(), actor, sequenceID, versionID)
	if err != nil {
		respondError(c, err, "Failed to get version")
		return
	}

	c.JSON(http.StatusOK, version)
}

// AddStep handles POST /organizations/:orgId/versions/:versionId/steps
// @Summary Add step
// @Description Appends a step, or inserts it at position shifting the tail
// @Tags sequences
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Param step body service.CreateStepRequest true "Step data"
// @Success 201 {object} service.StepResponse "Step added"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Failure 409 {object} ErrorResponse "Version is not editable"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/versions/{versionId}/steps [post]
func (h *SequenceHandler) AddStep(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	versionID, ok := uuidParam(c, "versionId", apperrors.ErrVersionNotFound)
	if !ok {
		return
	}

	var req service.CreateStepRequest
	if !bindJSON(c, &req) {
		return
	}

	step, err := h.service.AddStep(c.Request.Context(), actor, versionID, &req)
	if err != nil {
		respondError(c, err, "Failed to add step")
		return
	}

	c.JSON(http.StatusCreated, step)
}

// ReorderSteps handles PUT /organizations/:orgId/versions/:versionId/steps/order
// @Summary Reorder steps
// @Tags sequences
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Param order body service.ReorderStepsRequest true "Every step id of the version in the new order"
// @Success 200 {object} service.VersionResponse "Steps reordered"
// @Failure 409 {object} ErrorResponse "Version is not editable"
// @Failure 422 {object} ErrorResponse "Not a permutation of the version's steps"
// @Security BearerAuth
// @Router /organizations/{orgId}/versions/{versionId}/steps/order [put]
func (h *SequenceHandler) ReorderSteps(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	versionID, ok := uuidParam(c, "versionId", apperrors.ErrVersionNotFound)
	if !ok {
		return
	}

	var req service.ReorderStepsRequest
	if !bindJSON(c, &req) {
		return
	}

	version, err := h.service.ReorderSteps(c.Request.Context(), actor, versionID, &req)
	if err != nil {
		respondError(c, err, "Failed to reorder steps")
		return
	}

	c.JSON(http.StatusOK, version)
}

// PublishVersion handles POST /organizations/:orgId/versions/:versionId/publish
// @Summary Publish version
// @Description Freezes the draft and applies on_publish (terminate or migrate) to running enrollments
// @Tags sequences
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Param publish body service.PublishRequest false "Publish options"
// @Success 200 {object} service.PublishResponse "Version published"
// @Failure 409 {object} ErrorResponse "Version is not a draft or has no steps"
// @Security BearerAuth
// @Router /organizations/{orgId}/versions/{versionId}/publish [post]
func (h *SequenceHandler) PublishVersion(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	versionID, ok := uuidParam(c, "versionId", apperrors.ErrVersionNotFound)
	if !ok {
		return
	}

	var req service.PublishRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Publish(c.Request.Context(), actor, versionID, &req)
	if err != nil {
		respondError(c, err, "Failed to publish version")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStep handles PATCH /organizations/:orgId/steps/:stepId
// @Summary Update step
// @Tags sequences
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param stepId path string true "Step ID (UUID)"
// @Param step body service.UpdateStepRequest true "Fields to change"
// @Success 200 {object} service.StepResponse "Step updated"
// @Failure 404 {object} ErrorResponse "Step not found"
// @Failure 409 {object} ErrorResponse "Version is not editable"
// @Security BearerAuth
// @Router /organizations/{orgId}/steps/{stepId} [patch]
func (h *SequenceHandler) UpdateStep(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	stepID, ok := uuidParam(c, "stepId", apperrors.ErrStepNotFound)
	if !ok {
		return
	}

	var req service.UpdateStepRequest
	if !bindJSON(c, &req) {
		return
	}

	step, err := h.service.UpdateStep(c.Request.Context(), actor, stepID, &req)
	if err != nil {
		respondError(c, err, "Failed to update step")
		return
	}

	c.JSON(http.StatusOK, step)
}

// DeleteStep handles DELETE /organizations/:orgId/steps/:stepId
// @Summary Delete step
// @Tags sequences
// @Param orgId path string true "Organization ID (UUID)"
// @Param stepId path string true "Step ID (UUID)"
// @Success 204 "Step deleted"
// @Failure 404 {object} ErrorResponse "Step not found"
// @Failure 409 {object} ErrorResponse "Version is not editable"
// @Security BearerAuth
// @Router /organizations/{orgId}/steps/{stepId} [delete]
func (h *SequenceHandler) DeleteStep(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	stepID, ok := uuidParam(c, "stepId", apperrors.ErrStepNotFound)
	if !ok {
		return
	}

	if err := h.service.DeleteStep(c.Request.Context(), actor, stepID); err != nil {
		respondError(c, err, "Failed to delete step")
		return
	}

	c.Status(http.StatusNoContent)
}
