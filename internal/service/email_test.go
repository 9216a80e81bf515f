package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPEmailSenderRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Salesdesk <no-reply@example.com>", payload["from"])
		assert.Equal(t, "jane@example.com", payload["to"])

		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := service.NewHTTPEmailSender(server.URL, "secret", "Salesdesk <no-reply@example.com>", server.Client())
	err := sender.Send(context.Background(), service.EmailMessage{To: "jane@example.com", Subject: "Hi", HTML: "<p>Hi</p>"})

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPEmailSenderClientErrorIsTerminal(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad recipient", http.StatusBadRequest)
	}))
	defer server.Close()

	sender := service.NewHTTPEmailSender(server.URL, "secret", "from@example.com", server.Client())
	err := sender.Send(context.Background(), service.EmailMessage{To: "nobody", Subject: "Hi"})

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Contains(t, err.Error(), "bad recipient")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPEmailSenderStopsRetryingWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cancel()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sender := service.NewHTTPEmailSender(server.URL, "secret", "from@example.com", server.Client())
	started := time.Now()
	err := sender.Send(ctx, service.EmailMessage{To: "jane@example.com", Subject: "Hi"})

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(1), calls.Load())
	// the first backoff is at least 300ms
	assert.Less(t, time.Since(started), 250*time.Millisecond)
}

func TestLogEmailSenderNeverFails(t *testing.T) {
	sender := &service.LogEmailSender{From: "from@example.com"}

	assert.NoError(t, sender.Send(context.Background(), service.EmailMessage{To: "jane@example.com"}))
}
