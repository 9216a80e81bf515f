package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesdesk-backend/internal/config"
	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/mocks"
	"salesdesk-backend/internal/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, requestctx.RequestID(c.Request.Context()))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-boom")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error","request_id":"req-boom"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{Environment: "production", AllowedOrigins: []string{"https://app.example.com"}}
	router := gin.New()
	router.Use(CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEqual(t, http.StatusNotFound, w.Code)
	})

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequireWebhookSecret(t *testing.T) {
	newRouter := func(secret string) *gin.Engine {
		router := gin.New()
		router.POST("/hook", RequireWebhookSecret(secret), func(c *gin.Context) { c.Status(http.StatusAccepted) })
		return router
	}

	tests := []struct {
		name   string
		secret string
		header string
		status int
	}{
		{name: "not configured", secret: "", header: "anything", status: http.StatusInternalServerError},
		{name: "missing header", secret: "s3cret", header: "", status: http.StatusUnauthorized},
		{name: "wrong secret", secret: "s3cret", header: "s3cret!", status: http.StatusUnauthorized},
		{name: "correct secret", secret: "s3cret", header: "s3cret", status: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/hook", nil)
			if tt.header != "" {
				req.Header.Set(WebhookSecretHeader, tt.header)
			}
			w := httptest.NewRecorder()
			newRouter(tt.secret).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMembershipServiceInterface(ctrl)

	userID := uuid.New()
	orgID := uuid.New()
	membership := &models.Membership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           models.MembershipRoleLeader,
		Status:         models.MembershipStatusActive,
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if c.GetHeader("X-Test-User") != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	router.GET("/organizations/:orgId/ping", RequireMembership(members), func(c *gin.Context) {
		m, ok := GetMembership(c)
		require.True(t, ok)
		ctxOrg, _ := requestctx.OrganizationID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"membership_id": m.ID, "org_id": ctxOrg})
	})

	do := func(path string, authed bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if authed {
			req.Header.Set("X-Test-User", "1")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("unauthenticated", func(t *testing.T) {
		w := do("/organizations/"+orgID.String()+"/ping", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := do("/organizations/acme/ping", true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("not a member", func(t *testing.T) {
		other := uuid.New()
		members.EXPECT().Resolve(gomock.Any(), other, userID).Return(nil, apperrors.ErrOrganizationNotFound)

		w := do("/organizations/"+other.String()+"/ping", true)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "organization not found")
	})

	t.Run("store failure", func(t *testing.T) {
		other := uuid.New()
		members.EXPECT().Resolve(gomock.Any(), other, userID).Return(nil, errors.New("connection refused"))

		w := do("/organizations/"+other.String()+"/ping", true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("member", func(t *testing.T) {
		members.EXPECT().Resolve(gomock.Any(), orgID, userID).Return(membership, nil)

		w := do("/organizations/"+orgID.String()+"/ping", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), membership.ID.String())
		assert.Contains(t, w.Body.String(), orgID.String())
	})
}
