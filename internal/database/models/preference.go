package models

import (
	"time"

	"github.com/google/uuid"
)

// UserPreference stores per-user settings that span organizations
type UserPreference struct {
	UserID           uuid.UUID  `json:"user_id" gorm:"type:uuid;primaryKey"`
	Email            string     `json:"email" gorm:"size:255"`
	WeeklyDigest     bool       `json:"weekly_digest" gorm:"not null;default:false"`
	Timezone         string     `json:"timezone" gorm:"size:64;not null;default:'UTC'"`
	Locale           string     `json:"locale" gorm:"size:10;not null;default:'en_US'"`
	LastDigestSentAt *time.Time `json:"last_digest_sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName returns the table name for UserPreference
func (UserPreference) TableName() string {
	return "user_preferences"
}
