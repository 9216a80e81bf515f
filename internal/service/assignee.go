package service

import (
	"context"
	"errors"
	"fmt"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assigneeResolver decides which membership receives the assignment of a step
type assigneeResolver struct {
	contacts repository.ContactRepositoryInterface
	members  repository.MembershipRepositoryInterface
}

// ownerOf returns the membership responsible for an enrollment target: the
// contact owner, or the member itself for membership targets
func (r *assigneeResolver) ownerOf(ctx context.Context, orgID uuid.UUID, targetType models.TargetType, targetID uuid.UUID) (uuid.UUID, error) {
	switch targetType {
	case models.TargetTypeContact:
		contact, err := r.contacts.GetByID(ctx, orgID, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, apperrors.ErrContactNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to get contact: %w", err)
		}
		return contact.OwnerMembershipID, nil
	case models.TargetTypeMembership:
		return targetID, nil
	default:
		return uuid.Nil, apperrors.NewValidationError("target_type", "unknown target type")
	}
}

// resolve returns the assignee for step when applied to the given target
func (r *assigneeResolver) resolve(ctx context.Context, orgID uuid.UUID, step *models.SequenceStep, targetType models.TargetType, targetID uuid.UUID) (uuid.UUID, error) {
	if step.AssigneeMode == models.AssigneeModeSpecific && step.AssigneeMembershipID != nil {
		return *step.AssigneeMembershipID, nil
	}

	owner, err := r.ownerOf(ctx, orgID, targetType, targetID)
	if err != nil {
		return uuid.Nil, err
	}
	if step.AssigneeMode != models.AssigneeModeLeader {
		return owner, nil
	}

	membership, err := r.members.GetByID(ctx, orgID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return owner, nil
		}
		return uuid.Nil, fmt.Errorf("failed to get owner membership: %w", err)
	}
	if membership.ParentLeaderID != nil {
		return *membership.ParentLeaderID, nil
	}
	return owner, nil
}

// userOf maps a membership to its user for notifications. It returns uuid.Nil
// when the membership cannot be found.
func (r *assigneeResolver) userOf(ctx context.Context, orgID, membershipID uuid.UUID) uuid.UUID {
	membership, err := r.members.GetByID(ctx, orgID, membershipID)
	if err != nil {
		return uuid.Nil
	}
	return membership.UserID
}
