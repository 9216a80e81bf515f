package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesdesk-backend/internal/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-jwt-operations"

func TestNewAuthService(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := NewAuthService("  ", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("valid secret", func(t *testing.T) {
		service, err := NewAuthService(testSecret, "")
		require.NoError(t, err)
		assert.NotNil(t, service)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testSecret, "https://auth.example.com")
	require.NoError(t, err)

	userID := uuid.New()

	token, err := service.GenerateJWT(userID, "test@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, id)
	assert.Equal(t, "test@example.com", claims.Email)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTRejections(t *testing.T) {
	service, err := NewAuthService(testSecret, "https://auth.example.com")
	require.NoError(t, err)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key interface{}) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	valid := func() *AuthClaims {
		now := time.Now()
		return &AuthClaims{
			Email: "test@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				Issuer:    "https://auth.example.com",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
		}
	}

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name: "expired",
			token: func() string {
				c := valid()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
			},
		},
		{
			name: "no expiry",
			token: func() string {
				c := valid()
				c.ExpiresAt = nil
				return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
			},
		},
		{
			name: "wrong issuer",
			token: func() string {
				c := valid()
				c.Issuer = "https://evil.example.com"
				return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
			},
		},
		{
			name: "wrong secret",
			token: func() string {
				return sign(valid(), jwt.SigningMethodHS256, []byte("another-secret"))
			},
		},
		{
			name: "other hmac algorithm",
			token: func() string {
				return sign(valid(), jwt.SigningMethodHS512, []byte(testSecret))
			},
		},
		{
			name: "subject is not a uuid",
			token: func() string {
				c := valid()
				c.Subject = "user-42"
				return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateJWT(tt.token())
			assert.Error(t, err)
		})
	}
}

func TestIssuerCheckDisabled(t *testing.T) {
	minting, err := NewAuthService(testSecret, "https://auth.example.com")
	require.NoError(t, err)
	verifying, err := NewAuthService(testSecret, "")
	require.NoError(t, err)

	token, err := minting.GenerateJWT(uuid.New(), "", time.Hour)
	require.NoError(t, err)

	_, err = verifying.ValidateJWT(token)
	assert.NoError(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService(testSecret, "")
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		email, _ := GetUserEmail(c)
		ctxUser, _ := requestctx.UserID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"user_id":     userID,
			"email":       email,
			"ctx_user_id": ctxUser,
		})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authorization header is required")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("valid token", func(t *testing.T) {
		userID := uuid.New()
		token, err := service.GenerateJWT(userID, "rep@example.com", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, userID.String(), body["ctx_user_id"])
		assert.Equal(t, "rep@example.com", body["email"])
	})
}
