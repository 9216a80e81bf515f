package logger

import (
	"context"

	"salesdesk-backend/internal/requestctx"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request-scoped identifiers
// (request_id, user_id, org_id) found in ctx.
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	fields := logrus.Fields{}
	if id := requestctx.RequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	if userID, ok := requestctx.UserID(ctx); ok {
		fields["user_id"] = userID.String()
	} else {
		fields["user_id"] = "anonymous"
	}
	if orgID, ok := requestctx.OrganizationID(ctx); ok {
		fields["org_id"] = orgID.String()
	}

	logger.Entry = logger.Entry.WithFields(fields)
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
