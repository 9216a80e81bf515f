package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContactStage is the funnel column a contact sits in on the CRM board
type ContactStage string

const (
	ContactStageLead      ContactStage = "lead"
	ContactStageContacted ContactStage = "contacted"
	ContactStageQualified ContactStage = "qualified"
	ContactStageProposal  ContactStage = "proposal"
	ContactStageWon       ContactStage = "won"
	ContactStageLost      ContactStage = "lost"
)

// ContactStages lists the stages in funnel order
var ContactStages = []ContactStage{
	ContactStageLead,
	ContactStageContacted,
	ContactStageQualified,
	ContactStageProposal,
	ContactStageWon,
	ContactStageLost,
}

// Contact is a CRM record owned by a membership
type Contact struct {
	BaseModel
	OrganizationID    uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index:idx_contacts_org_stage"`
	OwnerMembershipID uuid.UUID      `json:"owner_membership_id" gorm:"type:uuid;not null;index"`
	FullName          string         `json:"full_name" gorm:"not null;size:200"`
	Email             string         `json:"email" gorm:"size:255;index"`
	Phone             string         `json:"phone" gorm:"size:40"`
	Company           string         `json:"company" gorm:"size:200"`
	Stage             ContactStage   `json:"stage" gorm:"type:varchar(20);not null;default:'lead';index:idx_contacts_org_stage"`
	Tags              pq.StringArray `json:"tags" gorm:"type:text[];not null;default:'{}'"`
	Score             int            `json:"score" gorm:"not null;default:0"`
	NextAction        string         `json:"next_action" gorm:"size:200"`
	NextActionAt      *time.Time     `json:"next_action_at,omitempty" gorm:"index"`
	ReferredByID      *uuid.UUID     `json:"referred_by_id,omitempty" gorm:"type:uuid"`
	Notes             string         `json:"notes" gorm:"type:text"`
	Source            string         `json:"source" gorm:"size:100"`
	Position          int            `json:"position" gorm:"not null;default:0"`

	// Relationships
	Owner      *Membership `json:"owner,omitempty" gorm:"foreignKey:OwnerMembershipID;constraint:OnDelete:RESTRICT"`
	ReferredBy *Contact    `json:"referred_by,omitempty" gorm:"foreignKey:ReferredByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
