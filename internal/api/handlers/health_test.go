package handlers

import (
	"net/http"
	"testing"

	"salesdesk-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestLive(t *testing.T) {
	h := NewHealthHandler(nil)
	ht := testutils.SetupHTTPTest()
	ht.Router.GET("/health/live", h.Live)

	var body struct {
		Alive bool `json:"alive"`
	}
	w := ht.MakeRequest(http.MethodGet, "/health/live", nil)
	testutils.AssertJSONResponse(t, w, http.StatusOK, &body)
	assert.True(t, body.Alive)
}
