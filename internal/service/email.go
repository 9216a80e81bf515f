package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"salesdesk-backend/internal/config"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"

	"github.com/flowchartsman/retry"
)

// EmailMessage is a rendered e-mail ready to be handed to a provider
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// NewEmailSender returns the HTTP provider client when one is configured and
// a logging sender otherwise
func NewEmailSender(cfg *config.Config) EmailSender {
	if cfg.EmailConfigured() {
		return NewHTTPEmailSender(cfg.EmailProviderURL, cfg.EmailAPIKey, cfg.EmailFrom, nil)
	}
	return &LogEmailSender{From: cfg.EmailFrom}
}

// HTTPEmailSender posts messages as JSON to a transactional e-mail API
type HTTPEmailSender struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

// NewHTTPEmailSender creates a provider client. A nil client uses a default with a timeout.
func NewHTTPEmailSender(endpoint, apiKey, from string, client *http.Client) *HTTPEmailSender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPEmailSender{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
		client:   client,
	}
}

type providerPayload struct {
	From string `json:"from"`
	EmailMessage
}

// Send delivers msg. Network errors and 5xx responses are retried; any other
// non-2xx response fails immediately.
func (s *HTTPEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	body, err := json.Marshal(providerPayload{From: s.from, EmailMessage: msg})
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	retrier := retry.NewRetrier(5, 100*time.Millisecond, time.Second)
	err = retrier.RunContext(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
		if err != nil {
			return retry.Stop(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.apiKey)

		resp, err := s.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Stop(ctx.Err())
			}
			return err
		}
		defer resp.Body.Close()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
		default:
			return retry.Stop(fmt.Errorf("provider returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail)))
		}
	})
	if err != nil && ctx.Err() != nil && !errors.Is(err, ctx.Err()) {
		// cancelled while waiting to retry
		err = fmt.Errorf("%w: %v", ctx.Err(), err)
	}
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("to", msg.To).Error("Email delivery failed")
		return apperrors.NewUpstreamError("email", err)
	}
	return nil
}

// LogEmailSender writes messages to the log instead of sending them
type LogEmailSender struct {
	From string
}

// Send logs msg
func (s *LogEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"from":    s.From,
		"to":      msg.To,
		"subject": msg.Subject,
		"bytes":   len(msg.HTML),
	}).Info("Email not sent: no provider configured")
	return nil
}
