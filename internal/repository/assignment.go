package repository

import (
	"context"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentFilter narrows assignment listings. Status "open" also matches
// snoozed assignments whose snooze ended before Now.
type AssignmentFilter struct {
	OrganizationID uuid.UUID
	AssigneeIDs    []uuid.UUID
	Status         models.AssignmentStatus
	Now            time.Time
	Limit          int
}

// AssignmentRepository handles database operations for sequence assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// GetByID retrieves an assignment of an organization with its step and enrollment
func (r *AssignmentRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.SequenceAssignment, error) {
	var assignment models.SequenceAssignment
	err := r.db.WithContext(ctx).
		Preload("Step").
		Preload("Enrollment").
		First(&assignment, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// List retrieves assignments matching the filter. Assignments of paused
// enrollments are left out.
func (r *AssignmentRepository) List(ctx context.Context, filter AssignmentFilter) ([]models.SequenceAssignment, error) {
	var assignments []models.SequenceAssignment

	query := r.db.WithContext(ctx).
		Select("sequence_assignments.*").
		Preload("Step").
		Preload("Enrollment").
		Joins("JOIN sequence_enrollments ON sequence_enrollments.id = sequence_assignments.enrollment_id").
		Where("sequence_assignments.organization_id = ?", filter.OrganizationID).
		Where("sequence_enrollments.status <> ?", models.EnrollmentStatusPaused)

	if filter.AssigneeIDs != nil {
		query = query.Where("sequence_assignments.assignee_membership_id IN ?", filter.AssigneeIDs)
	}

	switch filter.Status {
	case "":
	case models.AssignmentStatusOpen:
		query = query.Where(
			"sequence_assignments.status = ? OR (sequence_assignments.status = ? AND sequence_assignments.snoozed_until <= ?)",
			models.AssignmentStatusOpen, models.AssignmentStatusSnoozed, filter.Now)
	case models.AssignmentStatusSnoozed:
		query = query.Where(
			"sequence_assignments.status = ? AND sequence_assignments.snoozed_until > ?",
			models.AssignmentStatusSnoozed, filter.Now)
	default:
		query = query.Where("sequence_assignments.status = ?", filter.Status)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Order("sequence_assignments.due_at ASC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetPendingForEnrollment retrieves the open or snoozed assignment of an enrollment
func (r *AssignmentRepository) GetPendingForEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*models.SequenceAssignment, error) {
	var assignment models.SequenceAssignment
	err := r.db.WithContext(ctx).
		Where("enrollment_id = ? AND status IN ?", enrollmentID, openAssignmentStatuses).
		Order("created_at DESC").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Snooze hides an open or snoozed assignment until the given time
func (r *AssignmentRepository) Snooze(ctx context.Context, id uuid.UUID, until time.Time) error {
	return r.transition(ctx, id, openAssignmentStatuses, map[string]interface{}{
		"status":        models.AssignmentStatusSnoozed,
		"snoozed_until": until,
	})
}

// Unsnooze reopens a snoozed assignment
func (r *AssignmentRepository) Unsnooze(ctx context.Context, id uuid.UUID) error {
	return r.transition(ctx, id, []models.AssignmentStatus{models.AssignmentStatusSnoozed}, map[string]interface{}{
		"status":        models.AssignmentStatusOpen,
		"snoozed_until": nil,
	})
}

func (r *AssignmentRepository) transition(ctx context.Context, id uuid.UUID, from []models.AssignmentStatus, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&models.SequenceAssignment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrInvalidTransition
	}
	return nil
}
