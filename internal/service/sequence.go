package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SequenceService handles sequences, their versions and steps
type SequenceService struct {
	sequences   repository.SequenceRepositoryInterface
	enrollments repository.EnrollmentRepositoryInterface
	assignments repository.AssignmentRepositoryInterface
	members     repository.MembershipRepositoryInterface
	notifier    Notifier
	resolver    *assigneeResolver
	validator   *validator.Validate
}

// NewSequenceService creates a new sequence service
func NewSequenceService(
	sequences repository.SequenceRepositoryInterface,
	enrollments repository.EnrollmentRepositoryInterface,
	assignments repository.AssignmentRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	members repository.MembershipRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *SequenceService {
	return &SequenceService{
		sequences:   sequences,
		enrollments: enrollments,
		assignments: assignments,
		members:     members,
		notifier:    notifier,
		resolver:    &assigneeResolver{contacts: contacts, members: members},
		validator:   validator,
	}
}

// CreateSequenceRequest represents the request to create a sequence
type CreateSequenceRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// UpdateSequenceRequest represents the request to update a sequence
type UpdateSequenceRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// CreateStepRequest represents the request to add a step to a draft version
type CreateStepRequest struct {
	Position             int                 `json:"position,omitempty" validate:"min=0"`
	Title                string              `json:"title" validate:"required,min=1,max=200"`
	Description          string              `json:"description,omitempty" validate:"max=5000"`
	Type                 models.StepType     `json:"type" validate:"required,oneof=call email message task"`
	OffsetDays           int                 `json:"offset_days" validate:"min=0,max=365"`
	OffsetHours          int                 `json:"offset_hours" validate:"min=0,max=8760"`
	AssigneeMode         models.AssigneeMode `json:"assignee_mode" validate:"required,oneof=owner leader specific"`
	AssigneeMembershipID *uuid.UUID          `json:"assignee_membership_id,omitempty" validate:"required_if=AssigneeMode specific"`
}

// UpdateStepRequest represents a partial update of a step
type UpdateStepRequest struct {
	Title                *string              `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description          *string              `json:"description,omitempty" validate:"omitempty,max=5000"`
	Type                 *models.StepType     `json:"type,omitempty" validate:"omitempty,oneof=call email message task"`
	OffsetDays           *int                 `json:"offset_days,omitempty" validate:"omitempty,min=0,max=365"`
	OffsetHours          *int                 `json:"offset_hours,omitempty" validate:"omitempty,min=0,max=8760"`
	AssigneeMode         *models.AssigneeMode `json:"assignee_mode,omitempty" validate:"omitempty,oneof=owner leader specific"`
	AssigneeMembershipID *uuid.UUID           `json:"assignee_membership_id,omitempty"`
}

// ReorderStepsRequest carries the new step order of a version
type ReorderStepsRequest struct {
	StepIDs []uuid.UUID `json:"step_ids" validate:"required,min=1,dive,required"`
}

// PublishRequest represents the request to publish a draft version
type PublishRequest struct {
	OnPublish models.OnPublishStrategy `json:"on_publish,omitempty" validate:"omitempty,oneof=terminate migrate"`
}

// SequenceResponse represents a sequence in API responses
type SequenceResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Status          string            `json:"status"`
	CreatedBy       uuid.UUID         `json:"created_by"`
	ActiveVersionID *uuid.UUID        `json:"active_version_id,omitempty"`
	Versions        []VersionResponse `json:"versions,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

// VersionResponse represents a sequence version in API responses
type VersionResponse struct {
	ID          uuid.UUID      `json:"id"`
	SequenceID  uuid.UUID      `json:"sequence_id"`
	Version     int            `json:"version"`
	Status      string         `json:"status"`
	OnPublish   string         `json:"on_publish,omitempty"`
	PublishedAt *string        `json:"published_at,omitempty"`
	PublishedBy *uuid.UUID     `json:"published_by,omitempty"`
	Steps       []StepResponse `json:"steps,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

// StepResponse represents a step in API responses
type StepResponse struct {
	ID                   uuid.UUID  `json:"id"`
	VersionID            uuid.UUID  `json:"version_id"`
	Position             int        `json:"position"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Type                 string     `json:"type"`
	OffsetDays           int        `json:"offset_days"`
	OffsetHours          int        `json:"offset_hours"`
	AssigneeMode         string     `json:"assignee_mode"`
	AssigneeMembershipID *uuid.UUID `json:"assignee_membership_id,omitempty"`
}

// PublishResponse reports the published version and what happened to older enrollments
type PublishResponse struct {
	Version    VersionResponse `json:"version"`
	Strategy   string          `json:"on_publish"`
	Terminated int             `json:"terminated"`
	Migrated   int             `json:"migrated"`
}

func (s *SequenceService) requireEditor(actor *Actor) error {
	if !actor.HasRole(models.MembershipRoleOrg, models.MembershipRoleLeader) {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *SequenceService) getSequence(ctx context.Context, actor *Actor, id uuid.UUID) (*models.Sequence, error) {
	sequence, err := s.sequences.GetByID(ctx, actor.OrganizationID(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSequenceNotFound
		}
		return nil, fmt.Errorf("failed to get sequence: %w", err)
	}
	return sequence, nil
}

// getVersion loads a version of the actor's organization with its sequence
func (s *SequenceService) getVersion(ctx context.Context, actor *Actor, versionID uuid.UUID) (*models.SequenceVersion, *models.Sequence, error) {
	version, err := s.sequences.GetVersionByID(ctx, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrVersionNotFound
		}
		return nil, nil, fmt.Errorf("failed to get version: %w", err)
	}
	sequence, err := s.getSequence(ctx, actor, version.SequenceID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, apperrors.ErrVersionNotFound
		}
		return nil, nil, err
	}
	return version, sequence, nil
}

func (s *SequenceService) getEditableVersion(ctx context.Context, actor *Actor, versionID uuid.UUID) (*models.SequenceVersion, *models.Sequence, error) {
	if err := s.requireEditor(actor); err != nil {
		return nil, nil, err
	}
	version, sequence, err := s.getVersion(ctx, actor, versionID)
	if err != nil {
		return nil, nil, err
	}
	if sequence.Status == models.SequenceStatusArchived {
		return nil, nil, apperrors.ErrSequenceArchived
	}
	if !version.IsEditable() {
		return nil, nil, apperrors.ErrVersionNotEditable
	}
	return version, sequence, nil
}

// Create creates a sequence with an empty draft version 1
func (s *SequenceService) Create(ctx context.Context, actor *Actor, req *CreateSequenceRequest) (*SequenceResponse, error) {
	if err := s.requireEditor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	sequence := &models.Sequence{
		OrganizationID: actor.OrganizationID(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Status:         models.SequenceStatusActive,
		CreatedBy:      actor.UserID,
	}
	draft := &models.SequenceVersion{
		Version: 1,
		Status:  models.VersionStatusDraft,
	}
	if err := s.sequences.CreateWithDraft(ctx, sequence, draft); err != nil {
		return nil, fmt.Errorf("failed to create sequence: %w", err)
	}
	sequence.Versions = []models.SequenceVersion{*draft}

	logger.WithContext(ctx).WithField("sequence_id", sequence.ID).Info("Sequence created")
	return toSequenceResponse(sequence), nil
}

// List lists the sequences of the organization
func (s *SequenceService) List(ctx context.Context, actor *Actor, includeArchived bool) ([]SequenceResponse, error) {
	sequences, err := s.sequences.List(ctx, actor.OrganizationID(), includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list sequences: %w", err)
	}
	responses := make([]SequenceResponse, len(sequences))
	for i := range sequences {
		responses[i] = *toSequenceResponse(&sequences[i])
	}
	return responses, nil
}

// Get returns a sequence with its versions
func (s *SequenceService) Get(ctx context.Context, actor *Actor, id uuid.UUID) (*SequenceResponse, error) {
	sequence, err := s.getSequence(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toSequenceResponse(sequence), nil
}

// Update updates the name and description of a sequence
func (s *SequenceService) Update(ctx context.Context, actor *Actor, id uuid.UUID, req *UpdateSequenceRequest) (*SequenceResponse, error) {
	if err := s.requireEditor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	sequence, err := s.getSequence(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		sequence.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		sequence.Description = *req.Description
	}
	if err := s.sequences.Update(ctx, sequence); err != nil {
		return nil, fmt.Errorf("failed to update sequence: %w", err)
	}
	return toSequenceResponse(sequence), nil
}

// Archive archives a sequence and terminates its live enrollments
func (s *SequenceService) Archive(ctx context.Context, actor *Actor, id uuid.UUID) error {
	if err := s.requireEditor(actor); err != nil {
		return err
	}
	sequence, err := s.getSequence(ctx, actor, id)
	if err != nil {
		return err
	}
	if sequence.Status == models.SequenceStatusArchived {
		return nil
	}
	if err := s.sequences.Archive(ctx, sequence.ID); err != nil {
		return fmt.Errorf("failed to archive sequence: %w", err)
	}
	logger.WithContext(ctx).WithField("sequence_id", sequence.ID).Info("Sequence archived")
	return nil
}

// CreateVersion starts the next draft from a copy of the latest version's steps
func (s *SequenceService) CreateVersion(ctx context.Context, actor *Actor, sequenceID uuid.UUID) (*VersionResponse, error) {
	if err := s.requireEditor(actor); err != nil {
		return nil, err
	}
	sequence, err := s.getSequence(ctx, actor, sequenceID)
	if err != nil {
		return nil, err
	}
	if sequence.Status == models.SequenceStatusArchived {
		return nil, apperrors.ErrSequenceArchived
	}

	latest, err := s.sequences.GetLatestVersion(ctx, sequence.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest version: %w", err)
	}
	if latest.Status == models.VersionStatusDraft {
		return nil, apperrors.ErrDraftVersionExists
	}

	next := &models.SequenceVersion{
		SequenceID: sequence.ID,
		Version:    latest.Version + 1,
		Status:     models.VersionStatusDraft,
	}
	if err := s.sequences.CreateVersionCopy(ctx, next, latest.Steps); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrDraftVersionExists
		}
		return nil, fmt.Errorf("failed to create version: %w", err)
	}
	return toVersionResponse(next), nil
}

// GetVersion returns a version of a sequence with its ordered steps
func (s *SequenceService) GetVersion(ctx context.Context, actor *Actor, sequenceID, versionID uuid.UUID) (*VersionResponse, error) {
	if _, err := s.getSequence(ctx, actor, sequenceID); err != nil {
		return nil, err
	}
	version, err := s.sequences.GetVersion(ctx, sequenceID, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return toVersionResponse(version), nil
}

// checkSpecificAssignee makes sure a specific assignee is an active member of the organization
func (s *SequenceService) checkSpecificAssignee(ctx context.Context, actor *Actor, mode models.AssigneeMode, id *uuid.UUID) error {
	if mode != models.AssigneeModeSpecific {
		return nil
	}
	if id == nil {
		return apperrors.NewValidationError("assignee_membership_id", "required when assignee_mode is specific")
	}
	m, err := s.members.GetByID(ctx, actor.OrganizationID(), *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("assignee_membership_id", "must be a member of the organization")
		}
		return fmt.Errorf("failed to get assignee: %w", err)
	}
	if !m.IsActive() {
		return apperrors.NewValidationError("assignee_membership_id", "must be an active member")
	}
	return nil
}

// AddStep appends a step to a draft version, or inserts it at Position
func (s *SequenceService) AddStep(ctx context.Context, actor *Actor, versionID uuid.UUID, req *CreateStepRequest) (*StepResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	version, _, err := s.getEditableVersion(ctx, actor, versionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSpecificAssignee(ctx, actor, req.AssigneeMode, req.AssigneeMembershipID); err != nil {
		return nil, err
	}

	step := &models.SequenceStep{
		VersionID:    version.ID,
		Position:     req.Position,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Type:         req.Type,
		OffsetDays:   req.OffsetDays,
		OffsetHours:  req.OffsetHours,
		AssigneeMode: req.AssigneeMode,
	}
	if req.AssigneeMode == models.AssigneeModeSpecific {
		step.AssigneeMembershipID = req.AssigneeMembershipID
	}

	if err := s.sequences.InsertStep(ctx, step); err != nil {
		return nil, fmt.Errorf("failed to add step: %w", err)
	}
	resp := toStepResponse(step)
	return &resp, nil
}

func (s *SequenceService) getEditableStep(ctx context.Context, actor *Actor, stepID uuid.UUID) (*models.SequenceStep, error) {
	step, err := s.sequences.GetStep(ctx, stepID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStepNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	if _, _, err := s.getEditableVersion(ctx, actor, step.VersionID); err != nil {
		if errors.Is(err, apperrors.ErrVersionNotFound) {
			return nil, apperrors.ErrStepNotFound
		}
		return nil, err
	}
	return step, nil
}

// UpdateStep applies a partial update to a step of a draft version
func (s *SequenceService) UpdateStep(ctx context.Context, actor *Actor, stepID uuid.UUID, req *UpdateStepRequest) (*StepResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	step, err := s.getEditableStep(ctx, actor, stepID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		step.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		step.Description = *req.Description
	}
	if req.Type != nil {
		step.Type = *req.Type
	}
	if req.OffsetDays != nil {
		step.OffsetDays = *req.OffsetDays
	}
	if req.OffsetHours != nil {
		step.OffsetHours = *req.OffsetHours
	}
	if req.AssigneeMode != nil {
		step.AssigneeMode = *req.AssigneeMode
	}
	if req.AssigneeMembershipID != nil {
		step.AssigneeMembershipID = req.AssigneeMembershipID
	}
	if step.AssigneeMode != models.AssigneeModeSpecific {
		step.AssigneeMembershipID = nil
	}
	if err := s.checkSpecificAssignee(ctx, actor, step.AssigneeMode, step.AssigneeMembershipID); err != nil {
		return nil, err
	}

	if err := s.sequences.UpdateStep(ctx, step); err != nil {
		return nil, fmt.Errorf("failed to update step: %w", err)
	}
	resp := toStepResponse(step)
	return &resp, nil
}

// DeleteStep deletes a step of a draft version
func (s *SequenceService) DeleteStep(ctx context.Context, actor *Actor, stepID uuid.UUID) error {
	step, err := s.getEditableStep(ctx, actor, stepID)
	if err != nil {
		return err
	}
	if err := s.sequences.DeleteStep(ctx, step); err != nil {
		return fmt.Errorf("failed to delete step: %w", err)
	}
	return nil
}

// ReorderSteps rewrites the step order of a draft version. StepIDs must be a
// permutation of the version's steps.
func (s *SequenceService) ReorderSteps(ctx context.Context, actor *Actor, versionID uuid.UUID, req *ReorderStepsRequest) (*VersionResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	version, _, err := s.getEditableVersion(ctx, actor, versionID)
	if err != nil {
		return nil, err
	}
	if !isPermutation(version.Steps, req.StepIDs) {
		return nil, apperrors.NewValidationError("step_ids", "must list every step of the version exactly once")
	}

	if err := s.sequences.ReorderSteps(ctx, version.ID, req.StepIDs); err != nil {
		return nil, fmt.Errorf("failed to reorder steps: %w", err)
	}

	reloaded, err := s.sequences.GetVersionByID(ctx, version.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload version: %w", err)
	}
	return toVersionResponse(reloaded), nil
}

func isPermutation(steps []models.SequenceStep, ids []uuid.UUID) bool {
	if len(steps) != len(ids) {
		return false
	}
	remaining := make(map[uuid.UUID]bool, len(steps))
	for _, st := range steps {
		remaining[st.ID] = true
	}
	for _, id := range ids {
		if !remaining[id] {
			return false
		}
		delete(remaining, id)
	}
	return len(remaining) == 0
}

// Publish freezes a draft version and applies the on_publish strategy to
// live enrollments of older versions
func (s *SequenceService) Publish(ctx context.Context, actor *Actor, versionID uuid.UUID, req *PublishRequest) (*PublishResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	version, sequence, err := s.getEditableVersion(ctx, actor, versionID)
	if err != nil {
		return nil, err
	}
	if len(version.Steps) == 0 {
		return nil, apperrors.ErrVersionHasNoSteps
	}

	strategy := req.OnPublish
	if strategy == "" {
		strategy = models.OnPublishTerminate
	}

	plan, err := s.buildPublishPlan(ctx, actor, version, strategy)
	if err != nil {
		return nil, err
	}
	result, err := s.sequences.Publish(ctx, *plan)
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to publish version: %w", err)
	}

	published, err := s.sequences.GetVersionByID(ctx, version.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload version: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"sequence_id": version.SequenceID,
		"version":     version.Version,
		"on_publish":  strategy,
		"terminated":  len(result.Terminated),
		"migrated":    len(result.Migrated),
	}).Info("Sequence version published")

	err = s.notifier.Notify(ctx, NotifyInput{
		OrganizationID: actor.OrganizationID(),
		UserID:         sequence.CreatedBy,
		Type:           models.NotificationTypeSequencePublished,
		Tab:            models.NotificationTabActivity,
		Board:          models.BoardSequences,
		SourceType:     "sequence",
		SourceID:       &sequence.ID,
		ActorUserID:    &actor.UserID,
		Title:          fmt.Sprintf("%s v%d was published", sequence.Name, version.Version),
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to emit sequence_published notification")
	}

	return &PublishResponse{
		Version:    *toVersionResponse(published),
		Strategy:   string(strategy),
		Terminated: len(result.Terminated),
		Migrated:   len(result.Migrated),
	}, nil
}

func (s *SequenceService) buildPublishPlan(ctx context.Context, actor *Actor, version *models.SequenceVersion, strategy models.OnPublishStrategy) (*repository.PublishPlan, error) {
	plan := &repository.PublishPlan{
		SequenceID:  version.SequenceID,
		VersionID:   version.ID,
		Strategy:    strategy,
		PublishedBy: actor.UserID,
		PublishedAt: time.Now().UTC(),
	}

	live, err := s.enrollments.ListLiveOutsideVersion(ctx, version.SequenceID, version.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list live enrollments: %w", err)
	}

	for i := range live {
		enrollment := &live[i]
		if strategy == models.OnPublishTerminate {
			plan.Terminate = append(plan.Terminate, enrollment.ID)
			continue
		}

		position := enrollment.CurrentPosition
		if position < 1 {
			position = 1
		}
		if position > len(version.Steps) {
			position = len(version.Steps)
		}
		step := &version.Steps[position-1]

		migration := repository.EnrollmentMigration{
			EnrollmentID: enrollment.ID,
			Position:     position,
			StepID:       step.ID,
		}

		pending, err := s.assignments.GetPendingForEnrollment(ctx, enrollment.ID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return nil, fmt.Errorf("failed to get pending assignment: %w", err)
		default:
			assignee, err := s.resolver.resolve(ctx, actor.OrganizationID(), step, enrollment.TargetType, enrollment.TargetID)
			if err != nil {
				if apperrors.IsNotFound(err) {
					plan.Terminate = append(plan.Terminate, enrollment.ID)
					continue
				}
				return nil, err
			}
			migration.AssignmentID = &pending.ID
			migration.AssigneeID = assignee
		}
		plan.Migrate = append(plan.Migrate, migration)
	}
	return plan, nil
}

func toSequenceResponse(seq *models.Sequence) *SequenceResponse {
	resp := &SequenceResponse{
		ID:              seq.ID,
		Name:            seq.Name,
		Description:     seq.Description,
		Status:          string(seq.Status),
		CreatedBy:       seq.CreatedBy,
		ActiveVersionID: seq.ActiveVersionID,
		CreatedAt:       formatTime(seq.CreatedAt),
		UpdatedAt:       formatTime(seq.UpdatedAt),
	}
	for i := range seq.Versions {
		resp.Versions = append(resp.Versions, *toVersionResponse(&seq.Versions[i]))
	}
	return resp
}

func toVersionResponse(v *models.SequenceVersion) *VersionResponse {
	resp := &VersionResponse{
		ID:          v.ID,
		SequenceID:  v.SequenceID,
		Version:     v.Version,
		Status:      string(v.Status),
		OnPublish:   string(v.OnPublish),
		PublishedAt: formatTimePtr(v.PublishedAt),
		PublishedBy: v.PublishedBy,
		CreatedAt:   formatTime(v.CreatedAt),
	}
	for _, st := range v.Steps {
		resp.Steps = append(resp.Steps, toStepResponse(&st))
	}
	return resp
}

func toStepResponse(st *models.SequenceStep) StepResponse {
	return StepResponse{
		ID:                   st.ID,
		VersionID:            st.VersionID,
		Position:             st.Position,
		Title:                st.Title,
		Description:          st.Description,
		Type:                 string(st.Type),
		OffsetDays:           st.OffsetDays,
		OffsetHours:          st.OffsetHours,
		AssigneeMode:         string(st.AssigneeMode),
		AssigneeMembershipID: st.AssigneeMembershipID,
	}
}
