package repository

import (
	"context"
	"time"

	"salesdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository handles database operations for user preferences
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves the preferences of a user
func (r *PreferenceRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error) {
	var pref models.UserPreference
	if err := r.db.WithContext(ctx).First(&pref, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert creates or replaces the preferences of a user
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *models.UserPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "weekly_digest", "timezone", "locale", "updated_at"}),
		}).
		Create(pref).Error
}

// ListDigestRecipients retrieves users opted into the weekly digest that were
// not sent one since sentBefore
func (r *PreferenceRepository) ListDigestRecipients(ctx context.Context, sentBefore time.Time) ([]models.UserPreference, error) {
	var prefs []models.UserPreference
	err := r.db.WithContext(ctx).
		Where("weekly_digest = ? AND (last_digest_sent_at IS NULL OR last_digest_sent_at < ?)", true, sentBefore).
		Order("user_id ASC").
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// MarkDigestSent stamps the time a digest was sent to the user
func (r *PreferenceRepository) MarkDigestSent(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.UserPreference{}).
		Where("user_id = ?", userID).
		Update("last_digest_sent_at", at).Error
}
