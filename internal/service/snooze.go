package service

import (
	"strings"
	"time"

	apperrors "salesdesk-backend/internal/errors"
)

// snoozeLayout is the ISO-8601 form produced by JavaScript's toISOString
const snoozeLayout = "2006-01-02T15:04:05.000Z"

var snoozeInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeSnoozeInput parses a snooze target and returns it as a UTC
// timestamp with millisecond precision. Empty and unparsable inputs are
// rejected, as is anything not after now once cut to milliseconds. Inputs
// without an offset are read as UTC.
func NormalizeSnoozeInput(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", apperrors.NewValidationError("until", "snooze time is required")
	}

	var (
		parsed time.Time
		err    error
	)
	for _, layout := range snoozeInputLayouts {
		parsed, err = time.Parse(layout, input)
		if err == nil {
			break
		}
	}
	if err != nil {
		return "", apperrors.NewValidationError("until", "snooze time is not a valid timestamp")
	}

	until := parsed.UTC().Truncate(time.Millisecond)
	if !until.After(now) {
		return "", apperrors.NewValidationError("until", "snooze time must be in the future")
	}

	return until.Format(snoozeLayout), nil
}
