package auth

import (
	"net/http"
	"strings"

	"salesdesk-backend/internal/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and puts the user on the request context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", "")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abortUnauthorized(c, "Invalid authorization header format", "")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid token", err.Error())
			return
		}
		userID, _ := claims.UserID()

		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Request = c.Request.WithContext(requestctx.WithUser(c.Request.Context(), userID, claims.Email))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg, details string) {
	body := gin.H{"error": msg, "request_id": requestctx.RequestID(c.Request.Context())}
	if details != "" {
		body["details"] = details
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, body)
}

// GetUserID returns the user set by RequireAuth
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, _ := c.Get("user_id")
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func GetUserEmail(c *gin.Context) (string, bool) {
	email := c.GetString("email")
	return email, email != ""
}
