package service

import (
	"context"
	"errors"
	"fmt"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService handles the roster of an organization
type MembershipService struct {
	repo      repository.MembershipRepositoryInterface
	validator *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(repo repository.MembershipRepositoryInterface, validator *validator.Validate) *MembershipService {
	return &MembershipService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateMembershipRequest represents a partial update of a membership
type UpdateMembershipRequest struct {
	Role           *models.MembershipRole   `json:"role,omitempty" validate:"omitempty,oneof=org leader rep"`
	Status         *models.MembershipStatus `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
	ParentLeaderID *uuid.UUID               `json:"parent_leader_id,omitempty"`
	ClearParent    bool                     `json:"clear_parent,omitempty"`
	DisplayName    *string                  `json:"display_name,omitempty" validate:"omitempty,max=200"`
}

// MembershipResponse represents a membership in API responses
type MembershipResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	UserID         uuid.UUID  `json:"user_id"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	ParentLeaderID *uuid.UUID `json:"parent_leader_id,omitempty"`
	DisplayName    string     `json:"display_name"`
	Email          string     `json:"email"`
	CreatedAt      string     `json:"created_at"`
}

// List returns the full roster of the actor's organization
func (s *MembershipService) List(ctx context.Context, actor *Actor) ([]MembershipResponse, error) {
	members, err := s.repo.ListByOrganization(ctx, actor.OrganizationID())
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MembershipResponse, len(members))
	for i := range members {
		responses[i] = *toMembershipResponse(&members[i])
	}
	return responses, nil
}

// Resolve returns the active membership of a user in an organization. A
// missing or disabled membership is reported as an unknown organization.
func (s *MembershipService) Resolve(ctx context.Context, orgID, userID uuid.UUID) (*models.Membership, error) {
	m, err := s.repo.GetByUser(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if !m.IsActive() {
		return nil, apperrors.ErrOrganizationNotFound
	}
	return m, nil
}

func (s *MembershipService) get(ctx context.Context, orgID, id uuid.UUID) (*models.Membership, error) {
	m, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}

// Update changes role, status or parent leader of a member. Only org members
// may do so, and the organization always keeps one active org member.
func (s *MembershipService) Update(ctx context.Context, actor *Actor, memberID uuid.UUID, req *UpdateMembershipRequest) (*MembershipResponse, error) {
	if !actor.HasRole(models.MembershipRoleOrg) {
		return nil, apperrors.ErrForbidden
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	member, err := s.get(ctx, actor.OrganizationID(), memberID)
	if err != nil {
		return nil, err
	}

	role, status := member.Role, member.Status
	if req.Role != nil {
		role = *req.Role
	}
	if req.Status != nil {
		status = *req.Status
	}

	wasActiveOrg := member.Role == models.MembershipRoleOrg && member.IsActive()
	staysActiveOrg := role == models.MembershipRoleOrg && status == models.MembershipStatusActive
	if wasActiveOrg && !staysActiveOrg {
		if err := s.ensureAnotherOrgMember(ctx, actor.OrganizationID()); err != nil {
			return nil, err
		}
	}

	parent := member.ParentLeaderID
	if req.ClearParent {
		parent = nil
	}
	if req.ParentLeaderID != nil {
		if role != models.MembershipRoleRep {
			return nil, apperrors.NewValidationError("parent_leader_id", "only reps can have a parent leader")
		}
		if *req.ParentLeaderID == member.ID {
			return nil, apperrors.NewValidationError("parent_leader_id", "a member cannot lead themselves")
		}
		leader, err := s.repo.GetByID(ctx, actor.OrganizationID(), *req.ParentLeaderID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get parent leader: %w", err)
		}
		if leader == nil || leader.Role != models.MembershipRoleLeader || !leader.IsActive() {
			return nil, apperrors.NewValidationError("parent_leader_id", "parent must be an active leader of the organization")
		}
		parent = &leader.ID
	}
	if role != models.MembershipRoleRep {
		parent = nil
	}

	member.Role = role
	member.Status = status
	member.ParentLeaderID = parent
	if req.DisplayName != nil {
		member.DisplayName = *req.DisplayName
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"membership_id": member.ID,
		"role":          member.Role,
		"status":        member.Status,
	}).Info("Membership updated")

	return toMembershipResponse(member), nil
}

// Remove deletes a membership. Org members may remove anyone; everyone may
// leave. The member's contacts and pending tasks move to the remover, or to
// the leaver's leader (else an org member) when leaving.
func (s *MembershipService) Remove(ctx context.Context, actor *Actor, memberID uuid.UUID) error {
	self := memberID == actor.MembershipID()
	if !self && !actor.HasRole(models.MembershipRoleOrg) {
		return apperrors.ErrForbidden
	}

	member, err := s.get(ctx, actor.OrganizationID(), memberID)
	if err != nil {
		return err
	}

	if member.Role == models.MembershipRoleOrg && member.IsActive() {
		if err := s.ensureAnotherOrgMember(ctx, actor.OrganizationID()); err != nil {
			return err
		}
	}

	successor := actor.MembershipID()
	if self {
		successor, err = s.successorFor(ctx, member)
		if err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, member.ID, successor); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	logger.WithContext(ctx).WithField("membership_id", member.ID).Info("Membership removed")
	return nil
}

func (s *MembershipService) ensureAnotherOrgMember(ctx context.Context, orgID uuid.UUID) error {
	count, err := s.repo.CountActiveOrgMembers(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to count org members: %w", err)
	}
	if count <= 1 {
		return apperrors.ErrLastOrgMember
	}
	return nil
}

func (s *MembershipService) successorFor(ctx context.Context, leaving *models.Membership) (uuid.UUID, error) {
	if leaving.ParentLeaderID != nil {
		return *leaving.ParentLeaderID, nil
	}
	members, err := s.repo.ListByOrganization(ctx, leaving.OrganizationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list members: %w", err)
	}
	for _, m := range members {
		if m.ID != leaving.ID && m.Role == models.MembershipRoleOrg && m.IsActive() {
			return m.ID, nil
		}
	}
	return uuid.Nil, apperrors.ErrLastOrgMember
}

func toMembershipResponse(m *models.Membership) *MembershipResponse {
	return &MembershipResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Role:           string(m.Role),
		Status:         string(m.Status),
		ParentLeaderID: m.ParentLeaderID,
		DisplayName:    m.DisplayName,
		Email:          m.Email,
		CreatedAt:      formatTime(m.CreatedAt),
	}
}
