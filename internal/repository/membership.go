package repository

import (
	"context"

	"salesdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// GetByID retrieves a membership of an organization by ID
func (r *MembershipRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Membership, error) {
	var m models.Membership
	err := r.db.WithContext(ctx).First(&m, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByUser retrieves the membership of a user in an organization, whatever its status
func (r *MembershipRepository) GetByUser(ctx context.Context, orgID, userID uuid.UUID) (*models.Membership, error) {
	var m models.Membership
	err := r.db.WithContext(ctx).First(&m, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByOrganization retrieves the roster of an organization
func (r *MembershipRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Membership, error) {
	var members []models.Membership
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("role ASC, display_name ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListActiveByUser retrieves every active membership of a user across organizations
func (r *MembershipRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Membership, error) {
	var members []models.Membership
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("user_id = ? AND status = ?", userID, models.MembershipStatusActive).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListRepIDs returns the ids of the active reps reporting to a leader
func (r *MembershipRepository) ListRepIDs(ctx context.Context, leaderID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("parent_leader_id = ? AND status = ?", leaderID, models.MembershipStatusActive).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountActiveOrgMembers counts active memberships holding the org role
func (r *MembershipRepository) CountActiveOrgMembers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("organization_id = ? AND role = ? AND status = ?", orgID, models.MembershipRoleOrg, models.MembershipStatusActive).
		Count(&count).Error
	return count, err
}

// Update saves a membership. When it is no longer an active leader, any reps
// still pointing at it are detached in the same transaction.
func (r *MembershipRepository) Update(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Organization").Save(membership).Error; err != nil {
			return err
		}
		if membership.Role == models.MembershipRoleLeader && membership.IsActive() {
			return nil
		}
		return tx.Model(&models.Membership{}).
			Where("parent_leader_id = ?", membership.ID).
			Update("parent_leader_id", nil).Error
	})
}

// Delete deletes a membership. Contacts and pending assignments move to the
// successor membership; reps of a deleted leader lose their parent.
func (r *MembershipRepository) Delete(ctx context.Context, id, successorID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Contact{}).
			Where("owner_membership_id = ?", id).
			Update("owner_membership_id", successorID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SequenceAssignment{}).
			Where("assignee_membership_id = ? AND status IN ?", id,
				[]models.AssignmentStatus{models.AssignmentStatusOpen, models.AssignmentStatusSnoozed}).
			Update("assignee_membership_id", successorID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Membership{}).
			Where("parent_leader_id = ?", id).
			Update("parent_leader_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Membership{}, "id = ?", id).Error
	})
}
