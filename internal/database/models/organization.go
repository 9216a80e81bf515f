package models

import (
	"github.com/google/uuid"
)

// Organization is the tenant boundary: every CRM record belongs to exactly one
type Organization struct {
	BaseModel
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:64"`
	Name      string    `json:"name" gorm:"not null;size:120"`
	Country   string    `json:"country" gorm:"size:2"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
