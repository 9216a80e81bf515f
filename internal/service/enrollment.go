package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentService handles enrolling targets into sequences and the
// enrollment lifecycle
type EnrollmentService struct {
	sequences   repository.SequenceRepositoryInterface
	enrollments repository.EnrollmentRepositoryInterface
	contacts    repository.ContactRepositoryInterface
	members     repository.MembershipRepositoryInterface
	notifier    Notifier
	resolver    *assigneeResolver
	validator   *validator.Validate
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	sequences repository.SequenceRepositoryInterface,
	enrollments repository.EnrollmentRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	members repository.MembershipRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *EnrollmentService {
	return &EnrollmentService{
		sequences:   sequences,
		enrollments: enrollments,
		contacts:    contacts,
		members:     members,
		notifier:    notifier,
		resolver:    &assigneeResolver{contacts: contacts, members: members},
		validator:   validator,
	}
}

// EnrollRequest represents the request to enroll targets into a sequence
type EnrollRequest struct {
	TargetType models.TargetType `json:"target_type" validate:"required,oneof=contact membership"`
	TargetIDs  []uuid.UUID       `json:"target_ids" validate:"required,min=1,max=500,dive,required"`
}

// EnrollResponse reports the outcome of an enrollment batch
type EnrollResponse struct {
	Enrolled int `json:"enrolled"`
	Skipped  int `json:"skipped"`
}

// EnrollmentResponse represents an enrollment in API responses
type EnrollmentResponse struct {
	ID              uuid.UUID `json:"id"`
	SequenceID      uuid.UUID `json:"sequence_id"`
	VersionID       uuid.UUID `json:"version_id"`
	TargetType      string    `json:"target_type"`
	TargetID        uuid.UUID `json:"target_id"`
	Status          string    `json:"status"`
	CurrentPosition int       `json:"current_position"`
	EnrolledBy      uuid.UUID `json:"enrolled_by"`
	PausedAt        *string   `json:"paused_at,omitempty"`
	CompletedAt     *string   `json:"completed_at,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// Enroll enrolls targets into the published version of a sequence
func (s *EnrollmentService) Enroll(ctx context.Context, actor *Actor, sequenceID uuid.UUID, req *EnrollRequest) (*EnrollResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkTargets(ctx, actor, req.TargetType, req.TargetIDs); err != nil {
		return nil, err
	}
	return s.EnrollTargets(ctx, actor, sequenceID, req.TargetType, req.TargetIDs)
}

// checkTargets verifies every target exists in the organization and is visible to the actor
func (s *EnrollmentService) checkTargets(ctx context.Context, actor *Actor, targetType models.TargetType, ids []uuid.UUID) error {
	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return err
	}

	switch targetType {
	case models.TargetTypeContact:
		contacts, err := s.contacts.GetByIDs(ctx, actor.OrganizationID(), ids)
		if err != nil {
			return fmt.Errorf("failed to get contacts: %w", err)
		}
		found := make(map[uuid.UUID]bool, len(contacts))
		for _, c := range contacts {
			if !canSee(visible, c.OwnerMembershipID) {
				return apperrors.ErrContactNotVisible
			}
			found[c.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return apperrors.ErrContactNotFound
			}
		}
	case models.TargetTypeMembership:
		if !actor.HasRole(models.MembershipRoleOrg, models.MembershipRoleLeader) {
			return apperrors.ErrForbidden
		}
		for _, id := range ids {
			m, err := s.members.GetByID(ctx, actor.OrganizationID(), id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrMembershipNotFound
				}
				return fmt.Errorf("failed to get membership: %w", err)
			}
			if !canSee(visible, m.ID) {
				return apperrors.ErrForbidden
			}
		}
	}
	return nil
}

// EnrollTargets inserts one enrollment per target into the sequence's active
// version, each with the assignment of the first step. Targets already
// enrolled in that version are counted as skipped. Callers check visibility.
func (s *EnrollmentService) EnrollTargets(ctx context.Context, actor *Actor, sequenceID uuid.UUID, targetType models.TargetType, targetIDs []uuid.UUID) (*EnrollResponse, error) {
	sequence, err := s.sequences.GetByID(ctx, actor.OrganizationID(), sequenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSequenceNotFound
		}
		return nil, fmt.Errorf("failed to get sequence: %w", err)
	}
	if sequence.Status == models.SequenceStatusArchived {
		return nil, apperrors.ErrSequenceArchived
	}
	if sequence.ActiveVersionID == nil {
		return nil, apperrors.ErrSequenceNotPublished
	}

	version, err := s.sequences.GetVersionByID(ctx, *sequence.ActiveVersionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active version: %w", err)
	}
	if len(version.Steps) == 0 {
		return nil, apperrors.ErrVersionHasNoSteps
	}
	first := version.Steps[0]

	log := logger.WithContext(ctx).WithField("sequence_id", sequence.ID)
	resp := &EnrollResponse{}
	now := time.Now().UTC()

	for _, targetID := range targetIDs {
		assignee, err := s.resolver.resolve(ctx, actor.OrganizationID(), &first, targetType, targetID)
		if err != nil {
			return nil, err
		}

		enrollment := &models.SequenceEnrollment{
			OrganizationID:  actor.OrganizationID(),
			SequenceID:      sequence.ID,
			VersionID:       version.ID,
			TargetType:      targetType,
			TargetID:        targetID,
			Status:          models.EnrollmentStatusActive,
			CurrentPosition: first.Position,
			EnrolledBy:      actor.UserID,
		}
		assignment := &models.SequenceAssignment{
			OrganizationID:       actor.OrganizationID(),
			StepID:               first.ID,
			AssigneeMembershipID: assignee,
			Status:               models.AssignmentStatusOpen,
			DueAt:                now.Add(first.Delay()),
		}

		if err := s.enrollments.Enroll(ctx, enrollment, assignment); err != nil {
			if repository.IsUniqueViolation(err) {
				resp.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to enroll target: %w", err)
		}
		resp.Enrolled++

		notifyAssignmentCreated(ctx, s.notifier, s.resolver, actor, sequence.Name, &first, assignment)
	}

	log.WithFields(map[string]interface{}{
		"enrolled": resp.Enrolled,
		"skipped":  resp.Skipped,
	}).Info("Targets enrolled")
	return resp, nil
}

// notifyAssignmentCreated tells the assignee about new work. Failures are logged.
func notifyAssignmentCreated(ctx context.Context, notifier Notifier, resolver *assigneeResolver, actor *Actor, sequenceName string, step *models.SequenceStep, assignment *models.SequenceAssignment) {
	userID := resolver.userOf(ctx, actor.OrganizationID(), assignment.AssigneeMembershipID)
	if userID == uuid.Nil {
		return
	}
	err := notifier.Notify(ctx, NotifyInput{
		OrganizationID: actor.OrganizationID(),
		UserID:         userID,
		Type:           models.NotificationTypeAssignmentCreated,
		Tab:            models.NotificationTabTasks,
		Board:          models.BoardSequences,
		SourceType:     "assignment",
		SourceID:       &assignment.ID,
		ActorUserID:    &actor.UserID,
		Title:          fmt.Sprintf("%s: %s", sequenceName, step.Title),
		Body:           fmt.Sprintf("Due %s", formatTime(assignment.DueAt)),
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("assignment_id", assignment.ID).
			Warn("Failed to emit assignment_created notification")
	}
}

// List lists the enrollments of a sequence, optionally filtered by status
func (s *EnrollmentService) List(ctx context.Context, actor *Actor, sequenceID uuid.UUID, status string) ([]EnrollmentResponse, error) {
	if status != "" {
		if err := s.validator.Var(status, "oneof=active paused completed removed terminated"); err != nil {
			return nil, apperrors.NewValidationError("status", "must be one of active paused completed removed terminated")
		}
	}

	if _, err := s.sequences.GetByID(ctx, actor.OrganizationID(), sequenceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSequenceNotFound
		}
		return nil, fmt.Errorf("failed to get sequence: %w", err)
	}

	enrollments, err := s.enrollments.ListBySequence(ctx, sequenceID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	responses := make([]EnrollmentResponse, len(enrollments))
	for i := range enrollments {
		responses[i] = toEnrollmentResponse(&enrollments[i])
	}
	return responses, nil
}

// Pause pauses an active enrollment
func (s *EnrollmentService) Pause(ctx context.Context, actor *Actor, id uuid.UUID) (*EnrollmentResponse, error) {
	now := time.Now().UTC()
	return s.transition(ctx, actor, id, []models.EnrollmentStatus{models.EnrollmentStatusActive}, map[string]interface{}{
		"status":    models.EnrollmentStatusPaused,
		"paused_at": now,
	})
}

// Resume resumes a paused enrollment
func (s *EnrollmentService) Resume(ctx context.Context, actor *Actor, id uuid.UUID) (*EnrollmentResponse, error) {
	return s.transition(ctx, actor, id, []models.EnrollmentStatus{models.EnrollmentStatusPaused}, map[string]interface{}{
		"status":    models.EnrollmentStatusActive,
		"paused_at": nil,
	})
}

// Remove removes a live enrollment and blocks its unfinished assignments
func (s *EnrollmentService) Remove(ctx context.Context, actor *Actor, id uuid.UUID) error {
	enrollment, err := s.authorize(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.enrollments.Remove(ctx, enrollment.ID); err != nil {
		if apperrors.IsConflict(err) {
			return err
		}
		return fmt.Errorf("failed to remove enrollment: %w", err)
	}
	return nil
}

func (s *EnrollmentService) transition(ctx context.Context, actor *Actor, id uuid.UUID, from []models.EnrollmentStatus, fields map[string]interface{}) (*EnrollmentResponse, error) {
	enrollment, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := s.enrollments.Transition(ctx, enrollment.ID, from, fields); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update enrollment: %w", err)
	}

	updated, err := s.enrollments.GetByID(ctx, actor.OrganizationID(), enrollment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload enrollment: %w", err)
	}
	resp := toEnrollmentResponse(updated)
	return &resp, nil
}

// authorize loads an enrollment the actor may manage: org and leaders manage
// enrollments of targets they can see, reps only those of their own contacts
func (s *EnrollmentService) authorize(ctx context.Context, actor *Actor, id uuid.UUID) (*models.SequenceEnrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, actor.OrganizationID(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}

	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return nil, err
	}
	if visible == nil {
		return enrollment, nil
	}

	owner, err := s.resolver.ownerOf(ctx, actor.OrganizationID(), enrollment.TargetType, enrollment.TargetID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}
	if !canSee(visible, owner) {
		return nil, apperrors.ErrForbidden
	}
	return enrollment, nil
}

func toEnrollmentResponse(e *models.SequenceEnrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:              e.ID,
		SequenceID:      e.SequenceID,
		VersionID:       e.VersionID,
		TargetType:      string(e.TargetType),
		TargetID:        e.TargetID,
		Status:          string(e.Status),
		CurrentPosition: e.CurrentPosition,
		EnrolledBy:      e.EnrolledBy,
		PausedAt:        formatTimePtr(e.PausedAt),
		CompletedAt:     formatTimePtr(e.CompletedAt),
		CreatedAt:       formatTime(e.CreatedAt),
		UpdatedAt:       formatTime(e.UpdatedAt),
	}
}
