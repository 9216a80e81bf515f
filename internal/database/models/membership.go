package models

import (
	"github.com/google/uuid"
)

// MembershipRole is the role a user holds inside an organization
type MembershipRole string

const (
	MembershipRoleOrg    MembershipRole = "org"
	MembershipRoleLeader MembershipRole = "leader"
	MembershipRoleRep    MembershipRole = "rep"
)

// MembershipStatus tracks whether a membership grants access
type MembershipStatus string

const (
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusDisabled MembershipStatus = "disabled"
)

// Membership links a user to an organization. Reps may point at a leader
// membership through ParentLeaderID, forming a two-level hierarchy.
type Membership struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user"`
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user;index"`
	Role           MembershipRole   `json:"role" gorm:"type:varchar(20);not null;default:'rep'"`
	Status         MembershipStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	ParentLeaderID *uuid.UUID       `json:"parent_leader_id,omitempty" gorm:"type:uuid;index"`
	DisplayName    string           `json:"display_name" gorm:"size:200"`
	Email          string           `json:"email" gorm:"size:255"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}

// IsActive reports whether the membership currently grants access
func (m *Membership) IsActive() bool {
	return m.Status == MembershipStatusActive
}
