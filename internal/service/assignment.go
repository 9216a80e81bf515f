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

const maxAssignmentList = 500

// Assignment list scopes
const (
	AssignmentScopeMine = "mine"
	AssignmentScopeTeam = "team"
)

// AssignmentService handles the task instances produced by enrollments
type AssignmentService struct {
	assignments repository.AssignmentRepositoryInterface
	enrollments repository.EnrollmentRepositoryInterface
	sequences   repository.SequenceRepositoryInterface
	members     repository.MembershipRepositoryInterface
	notifier    Notifier
	resolver    *assigneeResolver
	validator   *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignments repository.AssignmentRepositoryInterface,
	enrollments repository.EnrollmentRepositoryInterface,
	sequences repository.SequenceRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	members repository.MembershipRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		enrollments: enrollments,
		sequences:   sequences,
		members:     members,
		notifier:    notifier,
		resolver:    &assigneeResolver{contacts: contacts, members: members},
		validator:   validator,
	}
}

// AssignmentListQuery holds the query parameters of the assignment list
type AssignmentListQuery struct {
	Status string `form:"status" json:"status" validate:"omitempty,oneof=open snoozed done blocked"`
	Scope  string `form:"scope" json:"scope" validate:"omitempty,oneof=mine team"`
}

// SnoozeRequest represents the request to snooze an assignment
type SnoozeRequest struct {
	Until string `json:"until"`
}

// AssignmentResponse represents an assignment in API responses
type AssignmentResponse struct {
	ID                   uuid.UUID  `json:"id"`
	EnrollmentID         uuid.UUID  `json:"enrollment_id"`
	SequenceID           uuid.UUID  `json:"sequence_id"`
	TargetType           string     `json:"target_type,omitempty"`
	TargetID             *uuid.UUID `json:"target_id,omitempty"`
	StepID               uuid.UUID  `json:"step_id"`
	StepTitle            string     `json:"step_title,omitempty"`
	StepType             string     `json:"step_type,omitempty"`
	AssigneeMembershipID uuid.UUID  `json:"assignee_membership_id"`
	Status               string     `json:"status"`
	DueAt                string     `json:"due_at"`
	Overdue              bool       `json:"overdue"`
	SnoozedUntil         *string    `json:"snoozed_until,omitempty"`
	CompletedAt          *string    `json:"completed_at,omitempty"`
	ClosedReason         string     `json:"closed_reason,omitempty"`
	CreatedAt            string     `json:"created_at"`
}

// List lists assignments of the actor, or of the actor's team
func (s *AssignmentService) List(ctx context.Context, actor *Actor, q *AssignmentListQuery) ([]AssignmentResponse, error) {
	if err := validateStruct(s.validator, q); err != nil {
		return nil, err
	}

	filter := repository.AssignmentFilter{
		OrganizationID: actor.OrganizationID(),
		Status:         models.AssignmentStatus(q.Status),
		Now:            time.Now().UTC(),
		Limit:          maxAssignmentList,
	}

	switch q.Scope {
	case AssignmentScopeTeam:
		if !actor.HasRole(models.MembershipRoleOrg, models.MembershipRoleLeader) {
			return nil, apperrors.ErrForbidden
		}
		visible, err := visibleOwnerIDs(ctx, s.members, actor)
		if err != nil {
			return nil, err
		}
		filter.AssigneeIDs = visible
	default:
		filter.AssigneeIDs = []uuid.UUID{actor.MembershipID()}
	}

	assignments, err := s.assignments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = toAssignmentResponse(&assignments[i], filter.Now)
	}
	return responses, nil
}

// Snooze hides an assignment until the requested time
func (s *AssignmentService) Snooze(ctx context.Context, actor *Actor, id uuid.UUID, req *SnoozeRequest) (*AssignmentResponse, error) {
	now := time.Now().UTC()
	normalized, err := NormalizeSnoozeInput(req.Until, now)
	if err != nil {
		return nil, err
	}
	until, err := time.Parse(time.RFC3339Nano, normalized)
	if err != nil {
		return nil, apperrors.NewValidationError("until", "invalid timestamp")
	}

	assignment, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.assignments.Snooze(ctx, assignment.ID, until); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to snooze assignment: %w", err)
	}
	return s.reload(ctx, actor, assignment.ID)
}

// Unsnooze reopens a snoozed assignment
func (s *AssignmentService) Unsnooze(ctx context.Context, actor *Actor, id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.assignments.Unsnooze(ctx, assignment.ID); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to unsnooze assignment: %w", err)
	}
	return s.reload(ctx, actor, assignment.ID)
}

// Complete marks an assignment done and advances its enrollment to the next
// step, or completes the enrollment after the last step
func (s *AssignmentService) Complete(ctx context.Context, actor *Actor, id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !assignment.IsPending() {
		return nil, apperrors.ErrInvalidTransition
	}
	enrollment := assignment.Enrollment
	if enrollment == nil || enrollment.Status != models.EnrollmentStatusActive {
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	position := enrollment.CurrentPosition
	if assignment.Step != nil {
		position = assignment.Step.Position
	}

	var next *models.SequenceAssignment
	step, err := s.sequences.GetStepAt(ctx, enrollment.VersionID, position+1)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to get next step: %w", err)
	default:
		assignee, err := s.resolver.resolve(ctx, actor.OrganizationID(), step, enrollment.TargetType, enrollment.TargetID)
		if err != nil {
			return nil, err
		}
		next = &models.SequenceAssignment{
			OrganizationID:       actor.OrganizationID(),
			EnrollmentID:         enrollment.ID,
			StepID:               step.ID,
			AssigneeMembershipID: assignee,
			Status:               models.AssignmentStatusOpen,
			DueAt:                now.Add(step.Delay()),
			Step:                 step,
		}
	}

	if err := s.enrollments.Advance(ctx, assignment, next, now); err != nil {
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to complete assignment: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"assignment_id": assignment.ID,
		"enrollment_id": enrollment.ID,
	})
	if next == nil {
		log.Info("Enrollment completed")
	} else {
		log.WithField("next_position", step.Position).Info("Enrollment advanced")
		sequenceName := "Sequence"
		if seq, err := s.sequences.GetByID(ctx, actor.OrganizationID(), enrollment.SequenceID); err == nil {
			sequenceName = seq.Name
		}
		notifyAssignmentCreated(ctx, s.notifier, s.resolver, actor, sequenceName, step, next)
	}

	return s.reload(ctx, actor, assignment.ID)
}

// authorize loads an assignment the actor may act on: the assignee, their
// leader, or an org member
func (s *AssignmentService) authorize(ctx context.Context, actor *Actor, id uuid.UUID) (*models.SequenceAssignment, error) {
	assignment, err := s.assignments.GetByID(ctx, actor.OrganizationID(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	visible, err := visibleOwnerIDs(ctx, s.members, actor)
	if err != nil {
		return nil, err
	}
	if !canSee(visible, assignment.AssigneeMembershipID) {
		return nil, apperrors.ErrForbidden
	}
	return assignment, nil
}

func (s *AssignmentService) reload(ctx context.Context, actor *Actor, id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.assignments.GetByID(ctx, actor.OrganizationID(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload assignment: %w", err)
	}
	resp := toAssignmentResponse(assignment, time.Now().UTC())
	return &resp, nil
}

// toAssignmentResponse reports a snoozed assignment whose snooze has ended
// as open
func toAssignmentResponse(a *models.SequenceAssignment, now time.Time) AssignmentResponse {
	resp := AssignmentResponse{
		ID:                   a.ID,
		EnrollmentID:         a.EnrollmentID,
		StepID:               a.StepID,
		AssigneeMembershipID: a.AssigneeMembershipID,
		Status:               string(a.Status),
		DueAt:                formatTime(a.DueAt),
		SnoozedUntil:         formatTimePtr(a.SnoozedUntil),
		CompletedAt:          formatTimePtr(a.CompletedAt),
		ClosedReason:         a.ClosedReason,
		CreatedAt:            formatTime(a.CreatedAt),
	}

	if a.Status == models.AssignmentStatusSnoozed && a.SnoozedUntil != nil && !a.SnoozedUntil.After(now) {
		resp.Status = string(models.AssignmentStatusOpen)
		resp.SnoozedUntil = nil
	}
	resp.Overdue = resp.Status == string(models.AssignmentStatusOpen) && a.DueAt.Before(now)

	if a.Step != nil {
		resp.StepTitle = a.Step.Title
		resp.StepType = string(a.Step.Type)
	}
	if a.Enrollment != nil {
		resp.SequenceID = a.Enrollment.SequenceID
		resp.TargetType = string(a.Enrollment.TargetType)
		targetID := a.Enrollment.TargetID
		resp.TargetID = &targetID
	}
	return resp
}
