package repository

import (
	"context"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentRepository handles database operations for sequence enrollments
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Enroll creates an enrollment and its first assignment in one transaction.
// A duplicate (version, target) surfaces as a unique violation.
func (r *EnrollmentRepository) Enroll(ctx context.Context, enrollment *models.SequenceEnrollment, first *models.SequenceAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Version").Create(enrollment).Error; err != nil {
			return err
		}
		if first == nil {
			return nil
		}
		first.EnrollmentID = enrollment.ID
		return tx.Omit("Enrollment", "Step").Create(first).Error
	})
}

// GetByID retrieves an enrollment of an organization by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.SequenceEnrollment, error) {
	var enrollment models.SequenceEnrollment
	err := r.db.WithContext(ctx).First(&enrollment, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListBySequence retrieves the enrollments of a sequence, optionally filtered by status
func (r *EnrollmentRepository) ListBySequence(ctx context.Context, sequenceID uuid.UUID, status string) ([]models.SequenceEnrollment, error) {
	var enrollments []models.SequenceEnrollment
	query := r.db.WithContext(ctx).Where("sequence_id = ?", sequenceID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListLiveOutsideVersion retrieves active and paused enrollments of a sequence
// that are not on the given version
func (r *EnrollmentRepository) ListLiveOutsideVersion(ctx context.Context, sequenceID, versionID uuid.UUID) ([]models.SequenceEnrollment, error) {
	var enrollments []models.SequenceEnrollment
	err := r.db.WithContext(ctx).
		Where("sequence_id = ? AND version_id <> ? AND status IN ?", sequenceID, versionID, liveEnrollmentStatuses).
		Order("created_at ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Transition updates an enrollment only while it is in one of the from
// states. It returns ErrInvalidTransition when the row is in another state.
func (r *EnrollmentRepository) Transition(ctx context.Context, id uuid.UUID, from []models.EnrollmentStatus, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&models.SequenceEnrollment{}).
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

// Remove ends a live enrollment and blocks its unfinished assignments
func (r *EnrollmentRepository) Remove(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SequenceEnrollment{}).
			Where("id = ? AND status IN ?", id, liveEnrollmentStatuses).
			Update("status", models.EnrollmentStatusRemoved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInvalidTransition
		}
		return tx.Model(&models.SequenceAssignment{}).
			Where("enrollment_id = ? AND status IN ?", id, openAssignmentStatuses).
			Updates(map[string]interface{}{
				"status":        models.AssignmentStatusBlocked,
				"closed_reason": string(models.EnrollmentStatusRemoved),
			}).Error
	})
}

// Advance completes an assignment and moves its enrollment forward: either
// next is created for the following step, or the enrollment completes.
func (r *EnrollmentRepository) Advance(ctx context.Context, done *models.SequenceAssignment, next *models.SequenceAssignment, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SequenceAssignment{}).
			Where("id = ? AND status IN ?", done.ID, openAssignmentStatuses).
			Updates(map[string]interface{}{
				"status":        models.AssignmentStatusDone,
				"completed_at":  at,
				"snoozed_until": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInvalidTransition
		}

		if next == nil {
			return tx.Model(&models.SequenceEnrollment{}).
				Where("id = ? AND status = ?", done.EnrollmentID, models.EnrollmentStatusActive).
				Updates(map[string]interface{}{
					"status":       models.EnrollmentStatusCompleted,
					"completed_at": at,
				}).Error
		}

		if err := tx.Omit("Enrollment", "Step").Create(next).Error; err != nil {
			return err
		}
		position := 1
		if next.Step != nil {
			position = next.Step.Position
		}
		return tx.Model(&models.SequenceEnrollment{}).
			Where("id = ?", done.EnrollmentID).
			Update("current_position", position).Error
	})
}
