package models

import (
	"time"

	"github.com/google/uuid"
)

// SequenceStatus is the lifecycle of a sequence as a whole
type SequenceStatus string

const (
	SequenceStatusActive   SequenceStatus = "active"
	SequenceStatusArchived SequenceStatus = "archived"
)

// VersionStatus is the lifecycle of one version of a sequence
type VersionStatus string

const (
	VersionStatusDraft      VersionStatus = "draft"
	VersionStatusPublished  VersionStatus = "published"
	VersionStatusSuperseded VersionStatus = "superseded"
)

// OnPublishStrategy decides what happens to enrollments of older versions
// when a new version is published.
type OnPublishStrategy string

const (
	OnPublishTerminate OnPublishStrategy = "terminate"
	OnPublishMigrate   OnPublishStrategy = "migrate"
)

// StepType describes the kind of work a step asks for
type StepType string

const (
	StepTypeCall    StepType = "call"
	StepTypeEmail   StepType = "email"
	StepTypeMessage StepType = "message"
	StepTypeTask    StepType = "task"
)

// AssigneeMode decides who receives the assignment generated for a step
type AssigneeMode string

const (
	AssigneeModeOwner    AssigneeMode = "owner"
	AssigneeModeLeader   AssigneeMode = "leader"
	AssigneeModeSpecific AssigneeMode = "specific"
)

// Sequence is a named, versioned list of steps
type Sequence struct {
	BaseModel
	OrganizationID  uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index"`
	Name            string         `json:"name" gorm:"not null;size:120"`
	Description     string         `json:"description" gorm:"type:text"`
	Status          SequenceStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedBy       uuid.UUID      `json:"created_by" gorm:"type:uuid;not null"`
	ActiveVersionID *uuid.UUID     `json:"active_version_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Versions []SequenceVersion `json:"versions,omitempty" gorm:"foreignKey:SequenceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Sequence
func (Sequence) TableName() string {
	return "sequences"
}

// SequenceVersion is a snapshot of the steps of a sequence. Published
// versions are frozen.
type SequenceVersion struct {
	BaseModel
	SequenceID  uuid.UUID         `json:"sequence_id" gorm:"type:uuid;not null;uniqueIndex:idx_sequence_versions_seq_version"`
	Version     int               `json:"version" gorm:"not null;uniqueIndex:idx_sequence_versions_seq_version"`
	Status      VersionStatus     `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	OnPublish   OnPublishStrategy `json:"on_publish,omitempty" gorm:"type:varchar(20)"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`
	PublishedBy *uuid.UUID        `json:"published_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Steps []SequenceStep `json:"steps,omitempty" gorm:"foreignKey:VersionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SequenceVersion
func (SequenceVersion) TableName() string {
	return "sequence_versions"
}

// IsEditable reports whether steps of this version may still change
func (v *SequenceVersion) IsEditable() bool {
	return v.Status == VersionStatusDraft
}

// SequenceStep is one ordered step in a version. Position is dense (1..n).
type SequenceStep struct {
	BaseModel
	VersionID            uuid.UUID    `json:"version_id" gorm:"type:uuid;not null;uniqueIndex:idx_sequence_steps_version_position"`
	Position             int          `json:"position" gorm:"not null;uniqueIndex:idx_sequence_steps_version_position"`
	Title                string       `json:"title" gorm:"not null;size:200"`
	Description          string       `json:"description" gorm:"type:text"`
	Type                 StepType     `json:"type" gorm:"type:varchar(20);not null;default:'task'"`
	OffsetDays           int          `json:"offset_days" gorm:"not null;default:0"`
	OffsetHours          int          `json:"offset_hours" gorm:"not null;default:0"`
	AssigneeMode         AssigneeMode `json:"assignee_mode" gorm:"type:varchar(20);not null;default:'owner'"`
	AssigneeMembershipID *uuid.UUID   `json:"assignee_membership_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for SequenceStep
func (SequenceStep) TableName() string {
	return "sequence_steps"
}

// Delay returns how long after the previous step this step becomes due
func (s *SequenceStep) Delay() time.Duration {
	return time.Duration(s.OffsetDays)*24*time.Hour + time.Duration(s.OffsetHours)*time.Hour
}
