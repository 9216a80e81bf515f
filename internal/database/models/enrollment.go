package models

import (
	"time"

	"github.com/google/uuid"
)

// TargetType identifies what kind of entity is enrolled in a sequence
type TargetType string

const (
	TargetTypeContact    TargetType = "contact"
	TargetTypeMembership TargetType = "membership"
)

// EnrollmentStatus is the lifecycle of an enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusActive     EnrollmentStatus = "active"
	EnrollmentStatusPaused     EnrollmentStatus = "paused"
	EnrollmentStatusCompleted  EnrollmentStatus = "completed"
	EnrollmentStatusRemoved    EnrollmentStatus = "removed"
	EnrollmentStatusTerminated EnrollmentStatus = "terminated"
)

// SequenceEnrollment binds a target to a published version. The
// (version_id, target_type, target_id) triple is unique in the store.
type SequenceEnrollment struct {
	BaseModel
	OrganizationID  uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	SequenceID      uuid.UUID        `json:"sequence_id" gorm:"type:uuid;not null;index"`
	VersionID       uuid.UUID        `json:"version_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_dedupe"`
	TargetType      TargetType       `json:"target_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_enrollments_dedupe"`
	TargetID        uuid.UUID        `json:"target_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_dedupe;index"`
	Status          EnrollmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CurrentPosition int              `json:"current_position" gorm:"not null;default:1"`
	EnrolledBy      uuid.UUID        `json:"enrolled_by" gorm:"type:uuid;not null"`
	PausedAt        *time.Time       `json:"paused_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`

	// Relationships
	Version *SequenceVersion `json:"version,omitempty" gorm:"foreignKey:VersionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SequenceEnrollment
func (SequenceEnrollment) TableName() string {
	return "sequence_enrollments"
}

// IsLive reports whether the enrollment still produces work
func (e *SequenceEnrollment) IsLive() bool {
	return e.Status == EnrollmentStatusActive || e.Status == EnrollmentStatusPaused
}

// AssignmentStatus is the lifecycle of a task instance
type AssignmentStatus string

const (
	AssignmentStatusOpen    AssignmentStatus = "open"
	AssignmentStatusSnoozed AssignmentStatus = "snoozed"
	AssignmentStatusDone    AssignmentStatus = "done"
	AssignmentStatusBlocked AssignmentStatus = "blocked"
)

// SequenceAssignment is the task generated for an enrollment's current step
type SequenceAssignment struct {
	BaseModel
	OrganizationID       uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index:idx_assignments_org_assignee"`
	EnrollmentID         uuid.UUID        `json:"enrollment_id" gorm:"type:uuid;not null;index"`
	StepID               uuid.UUID        `json:"step_id" gorm:"type:uuid;not null"`
	AssigneeMembershipID uuid.UUID        `json:"assignee_membership_id" gorm:"type:uuid;not null;index:idx_assignments_org_assignee"`
	Status               AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	DueAt                time.Time        `json:"due_at" gorm:"not null"`
	SnoozedUntil         *time.Time       `json:"snoozed_until,omitempty"`
	CompletedAt          *time.Time       `json:"completed_at,omitempty"`
	ClosedReason         string           `json:"closed_reason,omitempty" gorm:"size:40"`

	// Relationships
	Enrollment *SequenceEnrollment `json:"enrollment,omitempty" gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE"`
	Step       *SequenceStep       `json:"step,omitempty" gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SequenceAssignment
func (SequenceAssignment) TableName() string {
	return "sequence_assignments"
}

// IsPending reports whether the assignment still needs work
func (a *SequenceAssignment) IsPending() bool {
	return a.Status == AssignmentStatusOpen || a.Status == AssignmentStatusSnoozed
}
