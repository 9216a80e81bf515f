package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"salesdesk-backend/internal/api/middleware"
	"salesdesk-backend/internal/auth"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/requestctx"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/schema"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error     string      `json:"error" example:"error message"`
	Details   interface{} `json:"details,omitempty" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty"`
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("form")
	d.IgnoreUnknownKeys(true)
	return d
}

func writeError(c *gin.Context, status int, msg string, details interface{}) {
	c.JSON(status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: requestctx.RequestID(c.Request.Context()),
	})
}

// respondError maps service errors to HTTP statuses. Anything unrecognised is
// logged and reported as fallback with a 500.
func respondError(c *gin.Context, err error, fallback string) {
	var (
		validationErr  *apperrors.ValidationError
		validationErrs *apperrors.ValidationErrors
	)

	switch {
	case errors.Is(err, apperrors.ErrInvalidCursor), errors.Is(err, apperrors.ErrInvalidPaginationParams):
		writeError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &validationErrs):
		writeError(c, http.StatusUnprocessableEntity, "Validation failed", validationErrs.Fields)
	case errors.As(err, &validationErr):
		var details interface{}
		if validationErr.Field != "" {
			details = map[string]string{validationErr.Field: validationErr.Message}
		}
		writeError(c, http.StatusUnprocessableEntity, validationErr.Error(), details)
	case apperrors.IsNotFound(err):
		writeError(c, http.StatusNotFound, err.Error(), nil)
	case apperrors.IsConflict(err):
		writeError(c, http.StatusConflict, err.Error(), nil)
	case apperrors.IsGone(err):
		writeError(c, http.StatusGone, err.Error(), nil)
	case apperrors.IsAuthentication(err):
		writeError(c, http.StatusUnauthorized, err.Error(), nil)
	case apperrors.IsAuthorization(err):
		writeError(c, http.StatusForbidden, err.Error(), nil)
	case apperrors.IsUpstream(err):
		logger.WithContext(c.Request.Context()).WithError(err).Warn(fallback)
		writeError(c, http.StatusBadGateway, err.Error(), nil)
	case apperrors.IsConfiguration(err):
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		writeError(c, http.StatusInternalServerError, err.Error(), nil)
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		writeError(c, http.StatusInternalServerError, fallback, nil)
	}
}

// bindJSON decodes the request body, answering 400 on malformed input
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

// bindQuery decodes the query string into a struct with form tags
func bindQuery(c *gin.Context, target interface{}) bool {
	if err := queryDecoder.Decode(target, c.Request.URL.Query()); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return false
	}
	return true
}

// uuidParam parses a path parameter; a malformed id cannot exist, so it is a 404
func uuidParam(c *gin.Context, name string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		writeError(c, http.StatusNotFound, notFound.Error(), nil)
		return uuid.Nil, false
	}
	return id, true
}

// intQuery reads an optional integer query parameter
func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid query parameters", map[string]string{name: "must be an integer"})
		return 0, false
	}
	return v, true
}

// currentActor builds the caller from the auth and organization middleware
func currentActor(c *gin.Context) (*service.Actor, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error(), nil)
		return nil, false
	}
	email, _ := auth.GetUserEmail(c)

	actor := &service.Actor{UserID: userID, Email: email}
	if m, ok := middleware.GetMembership(c); ok {
		actor.Membership = m
	}
	return actor, true
}
