package models

import (
	"time"

	"github.com/google/uuid"
)

// Invite allows a not-yet-member to join an organization with a preset role.
// Only a hash of the invite code is stored.
type Invite struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index"`
	CodeHash       string         `json:"-" gorm:"uniqueIndex;not null;size:64"`
	Role           MembershipRole `json:"role" gorm:"type:varchar(20);not null"`
	ParentLeaderID *uuid.UUID     `json:"parent_leader_id,omitempty" gorm:"type:uuid"`
	Email          string         `json:"email,omitempty" gorm:"size:255"`
	CreatedBy      uuid.UUID      `json:"created_by" gorm:"type:uuid;not null"`
	ExpiresAt      time.Time      `json:"expires_at" gorm:"not null"`
	MaxUses        int            `json:"max_uses" gorm:"not null;default:1"`
	UseCount       int            `json:"use_count" gorm:"not null;default:0"`
	RevokedAt      *time.Time     `json:"revoked_at,omitempty"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Invite
func (Invite) TableName() string {
	return "invites"
}
