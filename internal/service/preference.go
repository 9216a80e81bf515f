package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without /usr/share/zoneinfo

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	defaultTimezone = "UTC"
	defaultLocale   = "en_US"
)

// SupportedLocales lists the locales digests can be rendered in
var SupportedLocales = []string{
	"da_DK", "de_DE", "en_GB", "en_US", "es_ES", "fi_FI", "fr_FR", "it_IT",
	"nb_NO", "nl_NL", "pl_PL", "pt_BR", "pt_PT", "sv_SE",
}

// PreferenceService handles per-user settings
type PreferenceService struct {
	repo      repository.PreferenceRepositoryInterface
	validator *validator.Validate
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo repository.PreferenceRepositoryInterface, validator *validator.Validate) *PreferenceService {
	return &PreferenceService{
		repo:      repo,
		validator: validator,
	}
}

// UpdatePreferencesRequest represents a partial update of the caller's preferences
type UpdatePreferencesRequest struct {
	WeeklyDigest *bool   `json:"weekly_digest,omitempty"`
	Timezone     *string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	Locale       *string `json:"locale,omitempty" validate:"omitempty,max=10"`
}

// PreferencesResponse represents the caller's preferences
type PreferencesResponse struct {
	WeeklyDigest     bool    `json:"weekly_digest"`
	Timezone         string  `json:"timezone"`
	Locale           string  `json:"locale"`
	LastDigestSentAt *string `json:"last_digest_sent_at,omitempty"`
}

func defaultPreferences(actor *Actor) *models.UserPreference {
	return &models.UserPreference{
		UserID:   actor.UserID,
		Email:    actor.Email,
		Timezone: defaultTimezone,
		Locale:   defaultLocale,
	}
}

func (s *PreferenceService) load(ctx context.Context, actor *Actor) (*models.UserPreference, error) {
	pref, err := s.repo.Get(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultPreferences(actor), nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return pref, nil
}

// Get returns the stored preferences of the caller, or the defaults
func (s *PreferenceService) Get(ctx context.Context, actor *Actor) (*PreferencesResponse, error) {
	pref, err := s.load(ctx, actor)
	if err != nil {
		return nil, err
	}
	return toPreferencesResponse(pref), nil
}

// Update validates and stores the caller's preferences
func (s *PreferenceService) Update(ctx context.Context, actor *Actor, req *UpdatePreferencesRequest) (*PreferencesResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	pref, err := s.load(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil {
		tz := strings.TrimSpace(*req.Timezone)
		if _, err := time.LoadLocation(tz); err != nil || tz == "" || tz == "Local" {
			return nil, apperrors.NewValidationError("timezone", "must be an IANA time zone such as Europe/Berlin")
		}
		pref.Timezone = tz
	}
	if req.Locale != nil {
		if !IsSupportedLocale(*req.Locale) {
			return nil, apperrors.NewValidationError("locale", "must be one of "+strings.Join(SupportedLocales, ", "))
		}
		pref.Locale = *req.Locale
	}
	if req.WeeklyDigest != nil {
		pref.WeeklyDigest = *req.WeeklyDigest
	}
	if actor.Email != "" {
		pref.Email = actor.Email
	}

	if err := s.repo.Upsert(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return toPreferencesResponse(pref), nil
}

// IsSupportedLocale reports whether locale is in SupportedLocales
func IsSupportedLocale(locale string) bool {
	i := sort.SearchStrings(SupportedLocales, locale)
	return i < len(SupportedLocales) && SupportedLocales[i] == locale
}

func toPreferencesResponse(p *models.UserPreference) *PreferencesResponse {
	return &PreferencesResponse{
		WeeklyDigest:     p.WeeklyDigest,
		Timezone:         p.Timezone,
		Locale:           p.Locale,
		LastDigestSentAt: formatTimePtr(p.LastDigestSentAt),
	}
}
