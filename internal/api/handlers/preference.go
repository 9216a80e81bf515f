package handlers

import (
	"net/http"

	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler handles the caller's personal settings
type PreferenceHandler struct {
	service service.PreferenceServiceInterface
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(service service.PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

// GetPreferences handles GET /api/v1/me/preferences
// @Summary Get my preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} service.PreferencesResponse "Preferences"
// @Security BearerAuth
// @Router /me/preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	prefs, err := h.service.Get(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PATCH /api/v1/me/preferences
// @Summary Update my preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body service.UpdatePreferencesRequest true "Fields to change"
// @Success 200 {object} service.PreferencesResponse "Preferences"
// @Failure 422 {object} ErrorResponse "Unknown timezone or locale"
// @Security BearerAuth
// @Router /me/preferences [patch]
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req service.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := h.service.Update(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, prefs)
}
