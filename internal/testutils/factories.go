package testutils

import (
	"fmt"
	"time"

	"salesdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Slug:      "test-org-" + id.String()[:8],
		Name:      "Test Organization",
		Country:   "DE",
		CreatedBy: uuid.New(),
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create() *models.Membership {
	id := uuid.New()
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Role:           models.MembershipRoleRep,
		Status:         models.MembershipStatusActive,
		DisplayName:    "Test Member",
		Email:          fmt.Sprintf("member-%s@example.com", id.String()[:8]),
	}
}

// WithOrganization sets the organization and role of the membership
func (f *MembershipFactory) WithOrganization(orgID uuid.UUID, role models.MembershipRole) *models.Membership {
	m := f.Create()
	m.OrganizationID = orgID
	m.Role = role
	return m
}

// WithLeader creates a rep reporting to the given leader
func (f *MembershipFactory) WithLeader(orgID, leaderID uuid.UUID) *models.Membership {
	m := f.WithOrganization(orgID, models.MembershipRoleRep)
	m.ParentLeaderID = &leaderID
	return m
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values
func (f *ContactFactory) Create() *models.Contact {
	id := uuid.New()
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:    uuid.New(),
		OwnerMembershipID: uuid.New(),
		FullName:          "Jane Prospect",
		Email:             fmt.Sprintf("contact-%s@example.com", id.String()[:8]),
		Company:           "Acme",
		Stage:             models.ContactStageLead,
		Tags:              pq.StringArray{},
		Score:             10,
		Source:            "test",
	}
}

// WithOwner sets the organization and owner of the contact
func (f *ContactFactory) WithOwner(orgID, ownerID uuid.UUID) *models.Contact {
	c := f.Create()
	c.OrganizationID = orgID
	c.OwnerMembershipID = ownerID
	return c
}

// SequenceFactory provides methods to create test Sequence data
type SequenceFactory struct{}

// NewSequenceFactory creates a new SequenceFactory
func NewSequenceFactory() *SequenceFactory {
	return &SequenceFactory{}
}

// Create creates a test Sequence with default values
func (f *SequenceFactory) Create() *models.Sequence {
	return &models.Sequence{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Onboarding",
		Description:    "New lead follow-up",
		Status:         models.SequenceStatusActive,
		CreatedBy:      uuid.New(),
	}
}

// WithOrganization sets the organization of the sequence
func (f *SequenceFactory) WithOrganization(orgID uuid.UUID) *models.Sequence {
	s := f.Create()
	s.OrganizationID = orgID
	return s
}

// Version creates a draft version of a sequence
func (f *SequenceFactory) Version(sequenceID uuid.UUID, number int) *models.SequenceVersion {
	return &models.SequenceVersion{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		SequenceID: sequenceID,
		Version:    number,
		Status:     models.VersionStatusDraft,
	}
}

// Step creates a step of a version at a position
func (f *SequenceFactory) Step(versionID uuid.UUID, position int) *models.SequenceStep {
	return &models.SequenceStep{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		VersionID:    versionID,
		Position:     position,
		Title:        fmt.Sprintf("Step %d", position),
		Type:         models.StepTypeCall,
		OffsetDays:   1,
		AssigneeMode: models.AssigneeModeOwner,
	}
}

// NotificationFactory provides methods to create test Notification data
type NotificationFactory struct{}

// NewNotificationFactory creates a new NotificationFactory
func NewNotificationFactory() *NotificationFactory {
	return &NotificationFactory{}
}

// Create creates a test Notification with default values
func (f *NotificationFactory) Create() *models.Notification {
	return &models.Notification{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Type:           models.NotificationTypeContactAssigned,
		Tab:            models.NotificationTabActivity,
		Title:          "A contact was assigned to you",
		Status:         models.NotificationStatusUnread,
		CreatedAt:      time.Now().UTC(),
	}
}

// ForUser creates a notification for a user in a tab and optional board
func (f *NotificationFactory) ForUser(orgID, userID uuid.UUID, tab models.NotificationTab, board string) *models.Notification {
	n := f.Create()
	n.OrganizationID = orgID
	n.UserID = userID
	n.Tab = tab
	if board != "" {
		n.Board = &board
	}
	return n
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Contact      *ContactFactory
	Sequence     *SequenceFactory
	Notification *NotificationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Contact:      NewContactFactory(),
		Sequence:     NewSequenceFactory(),
		Notification: NewNotificationFactory(),
	}
}
