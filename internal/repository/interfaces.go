package repository

import (
	"context"
	"time"

	"salesdesk-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithOwner(ctx context.Context, org *models.Organization, owner *models.Membership) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*models.Organization, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(ctx context.Context, membership *models.Membership) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Membership, error)
	GetByUser(ctx context.Context, orgID, userID uuid.UUID) (*models.Membership, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Membership, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Membership, error)
	ListRepIDs(ctx context.Context, leaderID uuid.UUID) ([]uuid.UUID, error)
	CountActiveOrgMembers(ctx context.Context, orgID uuid.UUID) (int64, error)
	Update(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, id, successorID uuid.UUID) error
}

// InviteRepositoryInterface defines the interface for invite repository operations
type InviteRepositoryInterface interface {
	Create(ctx context.Context, invite *models.Invite) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Invite, error)
	GetByCodeHash(ctx context.Context, codeHash string) (*models.Invite, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, createdBy *uuid.UUID) ([]models.Invite, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	Redeem(ctx context.Context, inviteID uuid.UUID, membership *models.Membership, now time.Time) error
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(ctx context.Context, contact *models.Contact) error
	CreateBatch(ctx context.Context, contacts []models.Contact) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Contact, error)
	GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]models.Contact, error)
	List(ctx context.Context, filter ContactFilter, limit, offset int) ([]models.Contact, int64, error)
	ExistingEmails(ctx context.Context, orgID uuid.UUID, emails []string) ([]string, error)
	ListNames(ctx context.Context, orgID uuid.UUID) ([]models.Contact, error)
	ListNextActions(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	UpdateFields(ctx context.Context, orgID, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

// SequenceRepositoryInterface defines the interface for sequence, version and step operations
type SequenceRepositoryInterface interface {
	CreateWithDraft(ctx context.Context, sequence *models.Sequence, draft *models.SequenceVersion) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Sequence, error)
	List(ctx context.Context, orgID uuid.UUID, includeArchived bool) ([]models.Sequence, error)
	Update(ctx context.Context, sequence *models.Sequence) error
	Archive(ctx context.Context, id uuid.UUID) error

	GetVersion(ctx context.Context, sequenceID, versionID uuid.UUID) (*models.SequenceVersion, error)
	GetVersionByID(ctx context.Context, versionID uuid.UUID) (*models.SequenceVersion, error)
	GetLatestVersion(ctx context.Context, sequenceID uuid.UUID) (*models.SequenceVersion, error)
	CreateVersionCopy(ctx context.Context, next *models.SequenceVersion, steps []models.SequenceStep) error
	Publish(ctx context.Context, plan PublishPlan) (*PublishResult, error)

	GetStep(ctx context.Context, stepID uuid.UUID) (*models.SequenceStep, error)
	GetStepAt(ctx context.Context, versionID uuid.UUID, position int) (*models.SequenceStep, error)
	InsertStep(ctx context.Context, step *models.SequenceStep) error
	UpdateStep(ctx context.Context, step *models.SequenceStep) error
	DeleteStep(ctx context.Context, step *models.SequenceStep) error
	ReorderSteps(ctx context.Context, versionID uuid.UUID, stepIDs []uuid.UUID) error
}

// EnrollmentRepositoryInterface defines the interface for enrollment operations
type EnrollmentRepositoryInterface interface {
	Enroll(ctx context.Context, enrollment *models.SequenceEnrollment, first *models.SequenceAssignment) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.SequenceEnrollment, error)
	ListBySequence(ctx context.Context, sequenceID uuid.UUID, status string) ([]models.SequenceEnrollment, error)
	ListLiveOutsideVersion(ctx context.Context, sequenceID, versionID uuid.UUID) ([]models.SequenceEnrollment, error)
	Transition(ctx context.Context, id uuid.UUID, from []models.EnrollmentStatus, fields map[string]interface{}) error
	Remove(ctx context.Context, id uuid.UUID) error
	Advance(ctx context.Context, done *models.SequenceAssignment, next *models.SequenceAssignment, at time.Time) error
}

// AssignmentRepositoryInterface defines the interface for assignment operations
type AssignmentRepositoryInterface interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.SequenceAssignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]models.SequenceAssignment, error)
	GetPendingForEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*models.SequenceAssignment, error)
	Snooze(ctx context.Context, id uuid.UUID, until time.Time) error
	Unsnooze(ctx context.Context, id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for inbox operations
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *models.Notification) error
	IsMuted(ctx context.Context, notification *models.Notification) (bool, error)
	Feed(ctx context.Context, query FeedQuery) ([]models.NotificationFeedItem, error)
	Counters(ctx context.Context, orgID, userID uuid.UUID) ([]models.NotificationCounter, error)
	SetStatus(ctx context.Context, orgID, userID, id uuid.UUID, status models.NotificationStatus, at time.Time) error
	MarkAllRead(ctx context.Context, scope ReadAllScope, at time.Time) (int64, error)
	AddBookmark(ctx context.Context, orgID, userID, notificationID uuid.UUID) error
	RemoveBookmark(ctx context.Context, userID, notificationID uuid.UUID) error
	CreateMute(ctx context.Context, mute *models.NotificationMute) error
	ListMutes(ctx context.Context, orgID, userID uuid.UUID) ([]models.NotificationMute, error)
	DeleteMute(ctx context.Context, orgID, userID, id uuid.UUID) error
}

// PreferenceRepositoryInterface defines the interface for user preference operations
type PreferenceRepositoryInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error)
	Upsert(ctx context.Context, pref *models.UserPreference) error
	ListDigestRecipients(ctx context.Context, sentBefore time.Time) ([]models.UserPreference, error)
	MarkDigestSent(ctx context.Context, userID uuid.UUID, at time.Time) error
}
