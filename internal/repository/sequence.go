package repository

import (
	"context"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentMigration moves one live enrollment onto the version being
// published. AssignmentID, when set, is re-pointed at StepID.
type EnrollmentMigration struct {
	EnrollmentID uuid.UUID
	Position     int
	AssignmentID *uuid.UUID
	StepID       uuid.UUID
	AssigneeID   uuid.UUID
}

// PublishPlan is everything Publish applies atomically
type PublishPlan struct {
	SequenceID  uuid.UUID
	VersionID   uuid.UUID
	Strategy    models.OnPublishStrategy
	PublishedBy uuid.UUID
	PublishedAt time.Time
	Terminate   []uuid.UUID
	Migrate     []EnrollmentMigration
}

// PublishResult is what Publish actually did to the live enrollments. A
// planned migration that clashed with an enrollment already on the new
// version shows up in Terminated.
type PublishResult struct {
	Migrated   []uuid.UUID
	Terminated []uuid.UUID
}

var (
	liveEnrollmentStatuses = []models.EnrollmentStatus{models.EnrollmentStatusActive, models.EnrollmentStatusPaused}
	openAssignmentStatuses = []models.AssignmentStatus{models.AssignmentStatusOpen, models.AssignmentStatusSnoozed}
)

// SequenceRepository handles database operations for sequences, their versions and steps
type SequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

func orderedSteps(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateWithDraft creates a sequence and its first draft version in one transaction
func (r *SequenceRepository) CreateWithDraft(ctx context.Context, sequence *models.Sequence, draft *models.SequenceVersion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Versions").Create(sequence).Error; err != nil {
			return err
		}
		draft.SequenceID = sequence.ID
		return tx.Omit("Steps").Create(draft).Error
	})
}

// GetByID retrieves a sequence of an organization with its versions
func (r *SequenceRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Sequence, error) {
	var sequence models.Sequence
	err := r.db.WithContext(ctx).
		Preload("Versions", func(db *gorm.DB) *gorm.DB { return db.Order("version ASC") }).
		First(&sequence, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &sequence, nil
}

// List retrieves the sequences of an organization
func (r *SequenceRepository) List(ctx context.Context, orgID uuid.UUID, includeArchived bool) ([]models.Sequence, error) {
	var sequences []models.Sequence
	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if !includeArchived {
		query = query.Where("status = ?", models.SequenceStatusActive)
	}
	if err := query.Order("name ASC").Find(&sequences).Error; err != nil {
		return nil, err
	}
	return sequences, nil
}

// Update updates a sequence
func (r *SequenceRepository) Update(ctx context.Context, sequence *models.Sequence) error {
	return r.db.WithContext(ctx).Omit("Versions").Save(sequence).Error
}

// Archive archives a sequence and terminates its live enrollments
func (r *SequenceRepository) Archive(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Sequence{}).
			Where("id = ?", id).
			Update("status", models.SequenceStatusArchived).Error; err != nil {
			return err
		}

		var live []uuid.UUID
		if err := tx.Model(&models.SequenceEnrollment{}).
			Where("sequence_id = ? AND status IN ?", id, liveEnrollmentStatuses).
			Pluck("id", &live).Error; err != nil {
			return err
		}
		return terminateEnrollments(tx, live)
	})
}

// GetVersion retrieves a version of a sequence with its ordered steps
func (r *SequenceRepository) GetVersion(ctx context.Context, sequenceID, versionID uuid.UUID) (*models.SequenceVersion, error) {
	var version models.SequenceVersion
	err := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		First(&version, "id = ? AND sequence_id = ?", versionID, sequenceID).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetVersionByID retrieves a version with its ordered steps
func (r *SequenceRepository) GetVersionByID(ctx context.Context, versionID uuid.UUID) (*models.SequenceVersion, error) {
	var version models.SequenceVersion
	err := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		First(&version, "id = ?", versionID).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// GetLatestVersion retrieves the highest numbered version of a sequence with its ordered steps
func (r *SequenceRepository) GetLatestVersion(ctx context.Context, sequenceID uuid.UUID) (*models.SequenceVersion, error) {
	var version models.SequenceVersion
	err := r.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Where("sequence_id = ?", sequenceID).
		Order("version DESC").
		First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// CreateVersionCopy creates a draft version holding copies of the given steps
func (r *SequenceRepository) CreateVersionCopy(ctx context.Context, next *models.SequenceVersion, steps []models.SequenceStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Steps").Create(next).Error; err != nil {
			return err
		}
		if len(steps) == 0 {
			return nil
		}
		copies := make([]models.SequenceStep, len(steps))
		for i, s := range steps {
			s.ID = uuid.Nil
			s.CreatedAt = time.Time{}
			s.UpdatedAt = time.Time{}
			s.VersionID = next.ID
			copies[i] = s
		}
		if err := tx.Create(&copies).Error; err != nil {
			return err
		}
		next.Steps = copies
		return nil
	})
}

// Publish freezes a draft version, supersedes the previously published one,
// points the sequence at it and applies the plan to live enrollments of older
// versions. A migration that would duplicate an enrollment on the new version
// terminates the old enrollment instead.
func (r *SequenceRepository) Publish(ctx context.Context, plan PublishPlan) (*PublishResult, error) {
	result := &PublishResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SequenceVersion{}).
			Where("id = ? AND sequence_id = ? AND status = ?", plan.VersionID, plan.SequenceID, models.VersionStatusDraft).
			Updates(map[string]interface{}{
				"status":       models.VersionStatusPublished,
				"on_publish":   plan.Strategy,
				"published_at": plan.PublishedAt,
				"published_by": plan.PublishedBy,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrVersionNotEditable
		}

		if err := tx.Model(&models.SequenceVersion{}).
			Where("sequence_id = ? AND status = ? AND id <> ?", plan.SequenceID, models.VersionStatusPublished, plan.VersionID).
			Update("status", models.VersionStatusSuperseded).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Sequence{}).
			Where("id = ?", plan.SequenceID).
			Update("active_version_id", plan.VersionID).Error; err != nil {
			return err
		}

		terminate := append([]uuid.UUID(nil), plan.Terminate...)
		var migrated []uuid.UUID
		for _, m := range plan.Migrate {
			err := tx.Transaction(func(sp *gorm.DB) error {
				return migrateEnrollment(sp, plan.VersionID, m)
			})
			if IsUniqueViolation(err) {
				terminate = append(terminate, m.EnrollmentID)
				continue
			}
			if err != nil {
				return err
			}
			migrated = append(migrated, m.EnrollmentID)
		}

		if err := terminateEnrollments(tx, terminate); err != nil {
			return err
		}
		result.Migrated = migrated
		result.Terminated = terminate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func migrateEnrollment(tx *gorm.DB, versionID uuid.UUID, m EnrollmentMigration) error {
	if err := tx.Model(&models.SequenceEnrollment{}).
		Where("id = ? AND status IN ?", m.EnrollmentID, liveEnrollmentStatuses).
		Updates(map[string]interface{}{
			"version_id":       versionID,
			"current_position": m.Position,
		}).Error; err != nil {
		return err
	}
	if m.AssignmentID == nil {
		return nil
	}
	return tx.Model(&models.SequenceAssignment{}).
		Where("id = ? AND status IN ?", *m.AssignmentID, openAssignmentStatuses).
		Updates(map[string]interface{}{
			"step_id":                m.StepID,
			"assignee_membership_id": m.AssigneeID,
		}).Error
}

// terminateEnrollments ends live enrollments and blocks their unfinished assignments
func terminateEnrollments(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Model(&models.SequenceEnrollment{}).
		Where("id IN ? AND status IN ?", ids, liveEnrollmentStatuses).
		Update("status", models.EnrollmentStatusTerminated).Error; err != nil {
		return err
	}
	return tx.Model(&models.SequenceAssignment{}).
		Where("enrollment_id IN ? AND status IN ?", ids, []models.AssignmentStatus{
			models.AssignmentStatusOpen, models.AssignmentStatusSnoozed, models.AssignmentStatusBlocked,
		}).
		Updates(map[string]interface{}{
			"status":        models.AssignmentStatusBlocked,
			"closed_reason": string(models.EnrollmentStatusTerminated),
		}).Error
}

// GetStep retrieves a step by ID
func (r *SequenceRepository) GetStep(ctx context.Context, stepID uuid.UUID) (*models.SequenceStep, error) {
	var step models.SequenceStep
	if err := r.db.WithContext(ctx).First(&step, "id = ?", stepID).Error; err != nil {
		return nil, err
	}
	return &step, nil
}

// GetStepAt retrieves the step at a position of a version
func (r *SequenceRepository) GetStepAt(ctx context.Context, versionID uuid.UUID, position int) (*models.SequenceStep, error) {
	var step models.SequenceStep
	err := r.db.WithContext(ctx).First(&step, "version_id = ? AND position = ?", versionID, position).Error
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// shiftPositions adds delta to every position >= from in a version. Positions
// pass through negative values first so the (version_id, position) unique
// index never sees two rows on the same slot.
func shiftPositions(tx *gorm.DB, versionID uuid.UUID, from, delta int) error {
	if err := tx.Model(&models.SequenceStep{}).
		Where("version_id = ? AND position >= ?", versionID, from).
		Update("position", gorm.Expr("-(position + ?)", delta)).Error; err != nil {
		return err
	}
	return tx.Model(&models.SequenceStep{}).
		Where("version_id = ? AND position < 0", versionID).
		Update("position", gorm.Expr("-position")).Error
}

// InsertStep appends a step, or inserts it at step.Position shifting the tail down
func (r *SequenceRepository) InsertStep(ctx context.Context, step *models.SequenceStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SequenceStep{}).
			Where("version_id = ?", step.VersionID).
			Count(&count).Error; err != nil {
			return err
		}

		if step.Position <= 0 || int64(step.Position) > count {
			step.Position = int(count) + 1
		} else if err := shiftPositions(tx, step.VersionID, step.Position, 1); err != nil {
			return err
		}
		return tx.Create(step).Error
	})
}

// UpdateStep updates a step
func (r *SequenceRepository) UpdateStep(ctx context.Context, step *models.SequenceStep) error {
	return r.db.WithContext(ctx).Save(step).Error
}

// DeleteStep deletes a step and closes the gap it leaves
func (r *SequenceRepository) DeleteStep(ctx context.Context, step *models.SequenceStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SequenceStep{}, "id = ?", step.ID).Error; err != nil {
			return err
		}
		return shiftPositions(tx, step.VersionID, step.Position+1, -1)
	})
}

// ReorderSteps assigns positions 1..n following stepIDs. The caller ensures
// stepIDs is a permutation of the version's steps.
func (r *SequenceRepository) ReorderSteps(ctx context.Context, versionID uuid.UUID, stepIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// phase one parks every step on a negative slot, phase two writes the final order
		for _, sign := range []int{-1, 1} {
			for i, id := range stepIDs {
				if err := tx.Model(&models.SequenceStep{}).
					Where("id = ? AND version_id = ?", id, versionID).
					Update("position", sign*(i+1)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
