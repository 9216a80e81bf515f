package service_test

import (
	"testing"
	"time"

	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSnoozeInput(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "past", input: "2026-03-09T12:00:00Z", wantErr: true},
		{name: "exactly now", input: "2026-03-10T12:00:00Z", wantErr: true},
		{name: "under a millisecond ahead", input: "2026-03-10T12:00:00.000300Z", wantErr: true},
		{name: "one millisecond ahead", input: "2026-03-10T12:00:00.001Z", expected: "2026-03-10T12:00:00.001Z"},
		{name: "rfc3339 future", input: "2026-03-11T08:30:00Z", expected: "2026-03-11T08:30:00.000Z"},
		{name: "offset converted to utc", input: "2026-03-11T08:30:00+02:00", expected: "2026-03-11T06:30:00.000Z"},
		{name: "milliseconds kept", input: "2026-03-11T08:30:00.123Z", expected: "2026-03-11T08:30:00.123Z"},
		{name: "nanoseconds truncated", input: "2026-03-11T08:30:00.123456789Z", expected: "2026-03-11T08:30:00.123Z"},
		{name: "no offset read as utc", input: "2026-03-11T08:30:00", expected: "2026-03-11T08:30:00.000Z"},
		{name: "minutes only", input: "2026-03-11T08:30", expected: "2026-03-11T08:30:00.000Z"},
		{name: "minutes with zulu", input: "2026-03-11T08:30Z", expected: "2026-03-11T08:30:00.000Z"},
		{name: "minutes with offset", input: "2026-03-11T08:30-05:00", expected: "2026-03-11T13:30:00.000Z"},
		{name: "date only", input: "2026-03-12", expected: "2026-03-12T00:00:00.000Z"},
		{name: "surrounding spaces", input: " 2026-03-12 ", expected: "2026-03-12T00:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.NormalizeSnoozeInput(tt.input, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
