package service_test

import (
	"strings"
	"testing"

	"salesdesk-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Acme Corp", "acme-corp"},
		{"  Acme   Corp  ", "acme-corp"},
		{"Crème Brûlée Ltd.", "creme-brulee-ltd"},
		{"Müller & Söhne", "muller-sohne"},
		{"ALL CAPS 2026", "all-caps-2026"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Slugify(tt.input))
		})
	}
}

func TestSlugifyTruncates(t *testing.T) {
	slug := service.Slugify(strings.Repeat("abc ", 40))
	assert.LessOrEqual(t, len(slug), 64)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestNormalizeTags(t *testing.T) {
	got := service.NormalizeTags([]string{" VIP ", "vip", "Partner", "", "partner", "Enterprise"})
	assert.Equal(t, []string{"vip", "partner", "enterprise"}, got)
	assert.Empty(t, service.NormalizeTags(nil))
}
