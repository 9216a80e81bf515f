package handlers

import (
	"net/http"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles HTTP requests for contacts and the CRM board
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(service service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// ListContacts handles GET /organizations/:orgId/contacts
// @Summary List contacts
// @Description Contacts visible to the caller, filtered and paginated
// @Tags contacts
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param stage query string false "Stage" Enums(lead, contacted, qualified, proposal, won, lost)
// @Param tag query string false "Tag"
// @Param owner_id query string false "Owner membership ID"
// @Param q query string false "Search in name, e-mail and company"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ContactListResponse "Successfully retrieved contacts"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var q service.ContactListQuery
	if !bindQuery(c, &q) {
		return
	}

	resp, err := h.service.List(c.Request.Context(), actor, &q)
	if err != nil {
		respondError(c, err, "Failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Board handles GET /organizations/:orgId/contacts/board
// @Summary Kanban board
// @Description One column per stage in funnel order with its total and first contacts
// @Tags contacts
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param per_column query int false "Contacts per column" default(20)
// @Success 200 {object} service.BoardResponse "Board"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/board [get]
func (h *ContactHandler) Board(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	perColumn, ok := intQuery(c, "per_column", 0)
	if !ok {
		return
	}

	board, err := h.service.Board(c.Request.Context(), actor, perColumn)
	if err != nil {
		respondError(c, err, "Failed to load board")
		return
	}

	c.JSON(http.StatusOK, board)
}

// CreateContact handles POST /organizations/:orgId/contacts
// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param contact body service.CreateContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse "Contact created"
// @Failure 403 {object} ErrorResponse "Owner not visible"
// @Failure 409 {object} ErrorResponse "Contact already exists"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContact handles GET /organizations/:orgId/contacts/:contactId
// @Summary Get contact
// @Tags contacts
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param contactId path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse "Contact"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/{contactId} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "contactId", apperrors.ErrContactNotFound)
	if !ok {
		return
	}

	contact, err := h.service.Get(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to get contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact handles PATCH /organizations/:orgId/contacts/:contactId
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param contactId path string true "Contact ID (UUID)"
// @Param contact body service.UpdateContactRequest true "Fields to change"
// @Success 200 {object} service.ContactResponse "Contact updated"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 409 {object} ErrorResponse "E-mail already used"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/{contactId} [patch]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "contactId", apperrors.ErrContactNotFound)
	if !ok {
		return
	}

	var req service.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.service.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /organizations/:orgId/contacts/:contactId
// @Summary Delete contact
// @Tags contacts
// @Param orgId path string true "Organization ID (UUID)"
// @Param contactId path string true "Contact ID (UUID)"
// @Success 204 "Contact deleted"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/{contactId} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "contactId", apperrors.ErrContactNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to delete contact")
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkContacts handles POST /organizations/:orgId/contacts/bulk
// @Summary Bulk contact action
// @Description set_stage, add_tags, remove_tags, assign_owner, delete or enroll on many contacts
// @Tags contacts
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param bulk body service.BulkContactRequest true "Bulk action"
// @Success 200 {object} service.BulkContactResponse "Bulk action applied"
// @Failure 403 {object} ErrorResponse "Contacts not accessible"
// @Failure 409 {object} ErrorResponse "Sequence not published"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/bulk [post]
func (h *ContactHandler) BulkContacts(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.BulkContactRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Bulk(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to apply bulk action")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ImportContacts handles POST /organizations/:orgId/contacts/import
// @Summary Import contacts
// @Description Validates rows and reports duplicates; creates the valid rows unless dry_run is set
// @Tags contacts
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param import body service.ImportContactsRequest true "Rows to import"
// @Success 200 {object} service.ImportContactsResponse "Dry-run report"
// @Success 201 {object} service.ImportContactsResponse "Import report"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/import [post]
func (h *ContactHandler) ImportContacts(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.ImportContactsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Import(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to import contacts")
		return
	}

	status := http.StatusCreated
	if resp.DryRun {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}
