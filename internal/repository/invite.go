package repository

import (
	"context"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteRepository handles database operations for invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	return r.db.WithContext(ctx).Omit("Organization").Create(invite).Error
}

// GetByID retrieves an invite of an organization by ID
func (r *InviteRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Invite, error) {
	var invite models.Invite
	err := r.db.WithContext(ctx).First(&invite, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// GetByCodeHash retrieves an invite and its organization by the hash of its code
func (r *InviteRepository) GetByCodeHash(ctx context.Context, codeHash string) (*models.Invite, error) {
	var invite models.Invite
	err := r.db.WithContext(ctx).Preload("Organization").First(&invite, "code_hash = ?", codeHash).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListByOrganization retrieves invites of an organization, optionally only those created by one user
func (r *InviteRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, createdBy *uuid.UUID) ([]models.Invite, error) {
	var invites []models.Invite
	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if createdBy != nil {
		query = query.Where("created_by = ?", *createdBy)
	}
	if err := query.Order("created_at DESC").Find(&invites).Error; err != nil {
		return nil, err
	}
	return invites, nil
}

// Revoke marks an invite as revoked
func (r *InviteRepository) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Invite{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
}

// Redeem consumes one use of an invite and creates the membership in the same
// transaction. The use count only moves while the invite is still redeemable,
// so concurrent redemptions cannot exceed max_uses.
func (r *InviteRepository) Redeem(ctx context.Context, inviteID uuid.UUID, membership *models.Membership, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invite{}).
			Where("id = ? AND revoked_at IS NULL AND expires_at > ? AND use_count < max_uses", inviteID, now).
			Update("use_count", gorm.Expr("use_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInviteExhausted
		}

		if err := tx.Omit("Organization").Create(membership).Error; err != nil {
			if IsUniqueViolation(err) {
				return apperrors.ErrMembershipExists
			}
			return err
		}
		return nil
	})
}
