package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"salesdesk-backend/internal/config"
	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"
)

const (
	inviteCodeBytes  = 24
	inviteCookieName = "invite"
)

var inviteEmailTemplate = template.Must(template.New("invite").Parse(`<p>You have been invited to join <strong>{{.Organization}}</strong> as {{.Role}}.</p>
<p><a href="{{.URL}}">Accept the invitation</a></p>
<p>This link expires on {{.ExpiresAt}}.</p>`))

// InviteService handles invite generation, preview and redemption
type InviteService struct {
	invites   repository.InviteRepositoryInterface
	members   repository.MembershipRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	notifier  Notifier
	sender    EmailSender
	cfg       *config.Config
	validator *validator.Validate
}

// NewInviteService creates a new invite service
func NewInviteService(
	invites repository.InviteRepositoryInterface,
	members repository.MembershipRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	notifier Notifier,
	sender EmailSender,
	cfg *config.Config,
	validator *validator.Validate,
) *InviteService {
	return &InviteService{
		invites:   invites,
		members:   members,
		orgs:      orgs,
		notifier:  notifier,
		sender:    sender,
		cfg:       cfg,
		validator: validator,
	}
}

// CreateInviteRequest represents the request to invite someone
type CreateInviteRequest struct {
	Role           models.MembershipRole `json:"role" validate:"required,oneof=org leader rep"`
	Email          string                `json:"email,omitempty" validate:"omitempty,email,max=255"`
	ParentLeaderID *uuid.UUID            `json:"parent_leader_id,omitempty"`
	ExpiresInHours int                   `json:"expires_in_hours,omitempty" validate:"omitempty,min=1,max=2160"`
	MaxUses        int                   `json:"max_uses,omitempty" validate:"omitempty,min=1,max=1000"`
}

// RedeemInviteRequest represents the request to accept an invite
type RedeemInviteRequest struct {
	Token       string `json:"token" validate:"required"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=200"`
}

// InviteResponse represents an invite in API responses
type InviteResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Role           string     `json:"role"`
	ParentLeaderID *uuid.UUID `json:"parent_leader_id,omitempty"`
	Email          string     `json:"email,omitempty"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	ExpiresAt      string     `json:"expires_at"`
	MaxUses        int        `json:"max_uses"`
	UseCount       int        `json:"use_count"`
	RevokedAt      *string    `json:"revoked_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// CreateInviteResponse carries the invite and the secret link to share
type CreateInviteResponse struct {
	Invite InviteResponse `json:"invite"`
	Token  string         `json:"token"`
	URL    string         `json:"url"`
}

// InvitePreviewResponse is what a not-yet-member sees before accepting
type InvitePreviewResponse struct {
	OrganizationID   uuid.UUID `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	Role             string    `json:"role"`
	ExpiresAt        string    `json:"expires_at"`
}

func (s *InviteService) codec() (*securecookie.SecureCookie, error) {
	if s.cfg.InviteSigningKey == "" {
		return nil, apperrors.ErrInviteKeyNotSet
	}
	sc := securecookie.New([]byte(s.cfg.InviteSigningKey), nil)
	sc.MaxAge(0)
	sc.SetSerializer(securecookie.JSONEncoder{})
	return sc, nil
}

func hashInviteCode(code string) string {
	sum := blake2b.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func newInviteCode() (string, error) {
	buf := make([]byte, inviteCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *InviteService) inviteURL(token string) string {
	return strings.TrimRight(s.cfg.AppBaseURL, "/") + "/invite/" + url.PathEscape(token)
}

// Create generates an invite. Org members may invite any role; leaders may
// only invite reps, who are then placed under them.
func (s *InviteService) Create(ctx context.Context, actor *Actor, req *CreateInviteRequest) (*CreateInviteResponse, error) {
	if !actor.HasRole(models.MembershipRoleOrg, models.MembershipRoleLeader) {
		return nil, apperrors.ErrForbidden
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	parent, err := s.resolveParent(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	sc, err := s.codec()
	if err != nil {
		return nil, err
	}
	code, err := newInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}
	token, err := sc.Encode(inviteCookieName, code)
	if err != nil {
		return nil, fmt.Errorf("failed to sign invite code: %w", err)
	}

	ttl := req.ExpiresInHours
	if ttl == 0 {
		ttl = s.cfg.InviteTTLHours
	}
	maxUses := req.MaxUses
	if maxUses == 0 {
		maxUses = 1
	}

	invite := &models.Invite{
		OrganizationID: actor.OrganizationID(),
		CodeHash:       hashInviteCode(code),
		Role:           req.Role,
		ParentLeaderID: parent,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		CreatedBy:      actor.UserID,
		ExpiresAt:      time.Now().UTC().Add(time.Duration(ttl) * time.Hour),
		MaxUses:        maxUses,
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	resp := &CreateInviteResponse{
		Invite: *toInviteResponse(invite),
		Token:  token,
		URL:    s.inviteURL(token),
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_id": invite.ID,
		"role":      invite.Role,
	}).Info("Invite created")

	if invite.Email != "" {
		if err := s.sendInviteEmail(ctx, invite, resp.URL); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func (s *InviteService) resolveParent(ctx context.Context, actor *Actor, req *CreateInviteRequest) (*uuid.UUID, error) {
	if actor.HasRole(models.MembershipRoleLeader) {
		if req.Role != models.MembershipRoleRep {
			return nil, apperrors.ErrRoleCannotInvite
		}
		id := actor.MembershipID()
		return &id, nil
	}

	if req.ParentLeaderID == nil {
		return nil, nil
	}
	if req.Role != models.MembershipRoleRep {
		return nil, apperrors.NewValidationError("parent_leader_id", "only reps can have a parent leader")
	}
	leader, err := s.members.GetByID(ctx, actor.OrganizationID(), *req.ParentLeaderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get parent leader: %w", err)
	}
	if leader == nil || leader.Role != models.MembershipRoleLeader || !leader.IsActive() {
		return nil, apperrors.NewValidationError("parent_leader_id", "parent must be an active leader of the organization")
	}
	return &leader.ID, nil
}

func (s *InviteService) sendInviteEmail(ctx context.Context, invite *models.Invite, link string) error {
	org, err := s.orgs.GetByID(ctx, invite.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}

	var body bytes.Buffer
	err = inviteEmailTemplate.Execute(&body, map[string]interface{}{
		"Organization": org.Name,
		"Role":         invite.Role,
		"URL":          template.URL(link),
		"ExpiresAt":    invite.ExpiresAt.Format("2 Jan 2006 15:04 MST"),
	})
	if err != nil {
		return fmt.Errorf("failed to render invite email: %w", err)
	}

	return s.sender.Send(ctx, EmailMessage{
		To:      invite.Email,
		Subject: fmt.Sprintf("You're invited to %s", org.Name),
		HTML:    body.String(),
	})
}

// List lists invites: all of them for org members, their own for leaders
func (s *InviteService) List(ctx context.Context, actor *Actor) ([]InviteResponse, error) {
	var createdBy *uuid.UUID
	switch {
	case actor.HasRole(models.MembershipRoleOrg):
	case actor.HasRole(models.MembershipRoleLeader):
		createdBy = &actor.UserID
	default:
		return nil, apperrors.ErrForbidden
	}

	invites, err := s.invites.ListByOrganization(ctx, actor.OrganizationID(), createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	responses := make([]InviteResponse, len(invites))
	for i := range invites {
		responses[i] = *toInviteResponse(&invites[i])
	}
	return responses, nil
}

// Revoke revokes an invite. Only its creator or an org member may do so.
func (s *InviteService) Revoke(ctx context.Context, actor *Actor, id uuid.UUID) error {
	invite, err := s.invites.GetByID(ctx, actor.OrganizationID(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInviteNotFound
		}
		return fmt.Errorf("failed to get invite: %w", err)
	}
	if invite.CreatedBy != actor.UserID && !actor.HasRole(models.MembershipRoleOrg) {
		return apperrors.ErrForbidden
	}

	if err := s.invites.Revoke(ctx, invite.ID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to revoke invite: %w", err)
	}
	return nil
}

// lookup resolves a signed token to a redeemable invite
func (s *InviteService) lookup(ctx context.Context, token string) (*models.Invite, error) {
	sc, err := s.codec()
	if err != nil {
		return nil, err
	}

	var code string
	if err := sc.Decode(inviteCookieName, token, &code); err != nil || code == "" {
		return nil, apperrors.ErrInviteNotFound
	}

	invite, err := s.invites.GetByCodeHash(ctx, hashInviteCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	switch {
	case invite.RevokedAt != nil:
		return nil, apperrors.ErrInviteRevoked
	case !invite.ExpiresAt.After(time.Now()):
		return nil, apperrors.ErrInviteExpired
	case invite.UseCount >= invite.MaxUses:
		return nil, apperrors.ErrInviteExhausted
	}
	return invite, nil
}

// Preview describes the invite behind a token without consuming it
func (s *InviteService) Preview(ctx context.Context, token string) (*InvitePreviewResponse, error) {
	invite, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}

	resp := &InvitePreviewResponse{
		OrganizationID: invite.OrganizationID,
		Role:           string(invite.Role),
		ExpiresAt:      formatTime(invite.ExpiresAt),
	}
	if invite.Organization != nil {
		resp.OrganizationName = invite.Organization.Name
	}
	return resp, nil
}

// Redeem accepts an invite for the caller
func (s *InviteService) Redeem(ctx context.Context, actor *Actor, req *RedeemInviteRequest) (*MembershipResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	invite, err := s.lookup(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	existing, err := s.members.GetByUser(ctx, invite.OrganizationID, actor.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMembershipExists
	}

	membership := &models.Membership{
		OrganizationID: invite.OrganizationID,
		UserID:         actor.UserID,
		Role:           invite.Role,
		Status:         models.MembershipStatusActive,
		ParentLeaderID: invite.ParentLeaderID,
		DisplayName:    displayNameFor(req.DisplayName, actor.Email),
		Email:          actor.Email,
	}
	if err := s.invites.Redeem(ctx, invite.ID, membership, time.Now().UTC()); err != nil {
		if apperrors.IsGone(err) || apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to redeem invite: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invite_id":     invite.ID,
		"membership_id": membership.ID,
	})
	log.Info("Invite redeemed")

	err = s.notifier.Notify(ctx, NotifyInput{
		OrganizationID: invite.OrganizationID,
		UserID:         invite.CreatedBy,
		Type:           models.NotificationTypeMemberJoined,
		Tab:            models.NotificationTabActivity,
		Board:          models.BoardTeam,
		SourceType:     "membership",
		SourceID:       &membership.ID,
		ActorUserID:    &actor.UserID,
		Title:          fmt.Sprintf("%s joined as %s", membership.DisplayName, membership.Role),
	})
	if err != nil {
		log.WithError(err).Warn("Failed to emit member_joined notification")
	}

	return toMembershipResponse(membership), nil
}

func toInviteResponse(invite *models.Invite) *InviteResponse {
	return &InviteResponse{
		ID:             invite.ID,
		OrganizationID: invite.OrganizationID,
		Role:           string(invite.Role),
		ParentLeaderID: invite.ParentLeaderID,
		Email:          invite.Email,
		CreatedBy:      invite.CreatedBy,
		ExpiresAt:      formatTime(invite.ExpiresAt),
		MaxUses:        invite.MaxUses,
		UseCount:       invite.UseCount,
		RevokedAt:      formatTimePtr(invite.RevokedAt),
		CreatedAt:      formatTime(invite.CreatedAt),
	}
}
