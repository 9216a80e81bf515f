package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Country     string `json:"country" validate:"required,iso3166_1_alpha2"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,max=64"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=200"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Country *string `json:"country,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CreateOrganizationResponse carries the new organization and the caller's membership in it
type CreateOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Membership   MembershipResponse   `json:"membership"`
}

// Create creates an organization and makes the caller its first org member
func (s *OrganizationService) Create(ctx context.Context, actor *Actor, req *CreateOrganizationRequest) (*CreateOrganizationResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}
	slug = Slugify(slug)
	if slug == "" {
		return nil, apperrors.NewValidationError("slug", "slug must contain at least one letter or digit")
	}

	org := &models.Organization{
		Slug:      slug,
		Name:      strings.TrimSpace(req.Name),
		Country:   strings.ToUpper(req.Country),
		CreatedBy: actor.UserID,
	}
	owner := &models.Membership{
		UserID:      actor.UserID,
		Role:        models.MembershipRoleOrg,
		Status:      models.MembershipStatusActive,
		DisplayName: displayNameFor(req.DisplayName, actor.Email),
		Email:       actor.Email,
	}

	if err := s.repo.CreateWithOwner(ctx, org, owner); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return &CreateOrganizationResponse{
		Organization: *s.toResponse(org),
		Membership:   *toMembershipResponse(owner),
	}, nil
}

// ListMine lists the organizations the caller is an active member of
func (s *OrganizationService) ListMine(ctx context.Context, actor *Actor) ([]OrganizationResponse, error) {
	orgs, err := s.repo.ListForUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}
	return responses, nil
}

// Get retrieves the organization the actor is acting in
func (s *OrganizationService) Get(ctx context.Context, actor *Actor) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(ctx, actor.OrganizationID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// Update updates the organization the actor is acting in. Only org members may do so.
func (s *OrganizationService) Update(ctx context.Context, actor *Actor, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if !actor.HasRole(models.MembershipRoleOrg) {
		return nil, apperrors.ErrForbidden
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(ctx, actor.OrganizationID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if req.Name != nil {
		org.Name = strings.TrimSpace(*req.Name)
	}
	if req.Country != nil {
		org.Country = strings.ToUpper(*req.Country)
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Slug:      org.Slug,
		Name:      org.Name,
		Country:   org.Country,
		CreatedBy: org.CreatedBy,
		CreatedAt: formatTime(org.CreatedAt),
		UpdatedAt: formatTime(org.UpdatedAt),
	}
}
