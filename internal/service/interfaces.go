package service

import (
	"context"

	"salesdesk-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, actor *Actor, req *CreateOrganizationRequest) (*CreateOrganizationResponse, error)
	ListMine(ctx context.Context, actor *Actor) ([]OrganizationResponse, error)
	Get(ctx context.Context, actor *Actor) (*OrganizationResponse, error)
	Update(ctx context.Context, actor *Actor, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	Resolve(ctx context.Context, orgID, userID uuid.UUID) (*models.Membership, error)
	List(ctx context.Context, actor *Actor) ([]MembershipResponse, error)
	Update(ctx context.Context, actor *Actor, memberID uuid.UUID, req *UpdateMembershipRequest) (*MembershipResponse, error)
	Remove(ctx context.Context, actor *Actor, memberID uuid.UUID) error
}

// InviteServiceInterface defines the interface for invite service
type InviteServiceInterface interface {
	Create(ctx context.Context, actor *Actor, req *CreateInviteRequest) (*CreateInviteResponse, error)
	List(ctx context.Context, actor *Actor) ([]InviteResponse, error)
	Revoke(ctx context.Context, actor *Actor, id uuid.UUID) error
	Preview(ctx context.Context, token string) (*InvitePreviewResponse, error)
	Redeem(ctx context.Context, actor *Actor, req *RedeemInviteRequest) (*MembershipResponse, error)
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	List(ctx context.Context, actor *Actor, q *ContactListQuery) (*ContactListResponse, error)
	Board(ctx context.Context, actor *Actor, perColumn int) (*BoardResponse, error)
	Create(ctx context.Context, actor *Actor, req *CreateContactRequest) (*ContactResponse, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*ContactResponse, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error)
	Delete(ctx context.Context, actor *Actor, id uuid.UUID) error
	Bulk(ctx context.Context, actor *Actor, req *BulkContactRequest) (*BulkContactResponse, error)
	Import(ctx context.Context, actor *Actor, req *ImportContactsRequest) (*ImportContactsResponse, error)
}

// SequenceServiceInterface defines the interface for sequence service
type SequenceServiceInterface interface {
	Create(ctx context.Context, actor *Actor, req *CreateSequenceRequest) (*SequenceResponse, error)
	List(ctx context.Context, actor *Actor, includeArchived bool) ([]SequenceResponse, error)
	Get(ctx context.Context, actor *Actor, id uuid.UUID) (*SequenceResponse, error)
	Update(ctx context.Context, actor *Actor, id uuid.UUID, req *UpdateSequenceRequest) (*SequenceResponse, error)
	Archive(ctx context.Context, actor *Actor, id uuid.UUID) error
	CreateVersion(ctx context.Context, actor *Actor, sequenceID uuid.UUID) (*VersionResponse, error)
	GetVersion(ctx context.Context, actor *Actor, sequenceID, versionID uuid.UUID) (*VersionResponse, error)
	AddStep(ctx context.Context, actor *Actor, versionID uuid.UUID, req *CreateStepRequest) (*StepResponse, error)
	UpdateStep(ctx context.Context, actor *Actor, stepID uuid.UUID, req *UpdateStepRequest) (*StepResponse, error)
	DeleteStep(ctx context.Context, actor *Actor, stepID uuid.UUID) error
	ReorderSteps(ctx context.Context, actor *Actor, versionID uuid.UUID, req *ReorderStepsRequest) (*VersionResponse, error)
	Publish(ctx context.Context, actor *Actor, versionID uuid.UUID, req *PublishRequest) (*PublishResponse, error)
}

// Enroller enrolls targets into the published version of a sequence
type Enroller interface {
	EnrollTargets(ctx context.Context, actor *Actor, sequenceID uuid.UUID, targetType models.TargetType, targetIDs []uuid.UUID) (*EnrollResponse, error)
}

// EnrollmentServiceInterface defines the interface for enrollment service
type EnrollmentServiceInterface interface {
	Enroller
	Enroll(ctx context.Context, actor *Actor, sequenceID uuid.UUID, req *EnrollRequest) (*EnrollResponse, error)
	List(ctx context.Context, actor *Actor, sequenceID uuid.UUID, status string) ([]EnrollmentResponse, error)
	Pause(ctx context.Context, actor *Actor, id uuid.UUID) (*EnrollmentResponse, error)
	Resume(ctx context.Context, actor *Actor, id uuid.UUID) (*EnrollmentResponse, error)
	Remove(ctx context.Context, actor *Actor, id uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	List(ctx context.Context, actor *Actor, q *AssignmentListQuery) ([]AssignmentResponse, error)
	Snooze(ctx context.Context, actor *Actor, id uuid.UUID, req *SnoozeRequest) (*AssignmentResponse, error)
	Unsnooze(ctx context.Context, actor *Actor, id uuid.UUID) (*AssignmentResponse, error)
	Complete(ctx context.Context, actor *Actor, id uuid.UUID) (*AssignmentResponse, error)
}

// Notifier creates inbox notifications on behalf of other services
type Notifier interface {
	Notify(ctx context.Context, in NotifyInput) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Notifier
	Feed(ctx context.Context, actor *Actor, q *FeedQuery) (*FeedResponse, error)
	Counts(ctx context.Context, actor *Actor) (*CountsResponse, error)
	SetStatus(ctx context.Context, actor *Actor, id uuid.UUID, status models.NotificationStatus) error
	ReadAll(ctx context.Context, actor *Actor, req *ReadAllRequest) (*ReadAllResponse, error)
	Bookmark(ctx context.Context, actor *Actor, id uuid.UUID) error
	Unbookmark(ctx context.Context, actor *Actor, id uuid.UUID) error
	ListMutes(ctx context.Context, actor *Actor) ([]MuteResponse, error)
	CreateMute(ctx context.Context, actor *Actor, req *CreateMuteRequest) (*MuteResponse, error)
	DeleteMute(ctx context.Context, actor *Actor, id uuid.UUID) error
}

// PreferenceServiceInterface defines the interface for preference service
type PreferenceServiceInterface interface {
	Get(ctx context.Context, actor *Actor) (*PreferencesResponse, error)
	Update(ctx context.Context, actor *Actor, req *UpdatePreferencesRequest) (*PreferencesResponse, error)
}

// DigestServiceInterface defines the interface for the weekly digest
type DigestServiceInterface interface {
	Run(ctx context.Context, userID *uuid.UUID) (*DigestResult, error)
}

// EmailSender delivers e-mails
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
