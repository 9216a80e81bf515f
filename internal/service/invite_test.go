package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"salesdesk-backend/internal/config"
	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/mocks"
	"salesdesk-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// InviteServiceTestSuite defines the test suite for InviteService
type InviteServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockInvites  *mocks.MockInviteRepositoryInterface
	mockMembers  *mocks.MockMembershipRepositoryInterface
	mockOrgs     *mocks.MockOrganizationRepositoryInterface
	mockNotifier *mocks.MockNotifier
	mockSender   *mocks.MockEmailSender
	cfg          *config.Config
	service      *service.InviteService
	orgID        uuid.UUID
	ctx          context.Context
}

func (suite *InviteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvites = mocks.NewMockInviteRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.mockSender = mocks.NewMockEmailSender(suite.ctrl)
	suite.cfg = &config.Config{
		AppBaseURL:       "https://app.example.com/",
		InviteSigningKey: "test-invite-signing-key-0123456789",
		InviteTTLHours:   168,
	}
	suite.service = service.NewInviteService(
		suite.mockInvites, suite.mockMembers, suite.mockOrgs,
		suite.mockNotifier, suite.mockSender, suite.cfg, service.NewValidator(),
	)
	suite.orgID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *InviteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// createInvite runs Create as an org member and captures the stored invite
func (suite *InviteServiceTestSuite) createInvite(req *service.CreateInviteRequest) (*service.CreateInviteResponse, *models.Invite) {
	var stored *models.Invite
	suite.mockInvites.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invite *models.Invite) error {
			invite.ID = uuid.New()
			stored = invite
			return nil
		}).
		Times(1)

	resp, err := suite.service.Create(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), req)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	return resp, stored
}

func (suite *InviteServiceTestSuite) TestCreateForbiddenForRep() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)

	resp, err := suite.service.Create(suite.ctx, actor, &service.CreateInviteRequest{Role: models.MembershipRoleRep})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *InviteServiceTestSuite) TestCreateLeaderCannotInviteLeader() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)

	resp, err := suite.service.Create(suite.ctx, actor, &service.CreateInviteRequest{Role: models.MembershipRoleLeader})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleCannotInvite)
}

func (suite *InviteServiceTestSuite) TestCreateLeaderInvitesRepUnderThemselves() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)
	suite.mockInvites.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invite *models.Invite) error {
			require.NotNil(suite.T(), invite.ParentLeaderID)
			assert.Equal(suite.T(), actor.MembershipID(), *invite.ParentLeaderID)
			assert.Equal(suite.T(), actor.UserID, invite.CreatedBy)
			assert.Equal(suite.T(), 1, invite.MaxUses)
			return nil
		})

	resp, err := suite.service.Create(suite.ctx, actor, &service.CreateInviteRequest{Role: models.MembershipRoleRep})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "rep", resp.Invite.Role)
}

func (suite *InviteServiceTestSuite) TestCreateRejectsNonLeaderParent() {
	parentID := uuid.New()
	suite.mockMembers.EXPECT().
		GetByID(gomock.Any(), suite.orgID, parentID).
		Return(&models.Membership{
			BaseModel: models.BaseModel{ID: parentID},
			Role:      models.MembershipRoleRep,
			Status:    models.MembershipStatusActive,
		}, nil)

	_, err := suite.service.Create(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), &service.CreateInviteRequest{
		Role:           models.MembershipRoleRep,
		ParentLeaderID: &parentID,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *InviteServiceTestSuite) TestCreateWithoutSigningKey() {
	suite.cfg.InviteSigningKey = ""

	_, err := suite.service.Create(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), &service.CreateInviteRequest{Role: models.MembershipRoleRep})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInviteKeyNotSet)
}

func (suite *InviteServiceTestSuite) TestCreateThenPreview() {
	resp, stored := suite.createInvite(&service.CreateInviteRequest{Role: models.MembershipRoleLeader, ExpiresInHours: 48})

	assert.NotEmpty(suite.T(), resp.Token)
	assert.True(suite.T(), strings.HasPrefix(resp.URL, "https://app.example.com/invite/"))
	assert.Len(suite.T(), stored.CodeHash, 64)
	assert.WithinDuration(suite.T(), time.Now().Add(48*time.Hour), stored.ExpiresAt, time.Minute)

	stored.Organization = &models.Organization{Name: "Acme"}
	suite.mockInvites.EXPECT().
		GetByCodeHash(gomock.Any(), stored.CodeHash).
		Return(stored, nil)

	preview, err := suite.service.Preview(suite.ctx, resp.Token)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme", preview.OrganizationName)
	assert.Equal(suite.T(), "leader", preview.Role)
	assert.Equal(suite.T(), suite.orgID, preview.OrganizationID)
}

func (suite *InviteServiceTestSuite) TestPreviewTamperedToken() {
	resp, _ := suite.createInvite(&service.CreateInviteRequest{Role: models.MembershipRoleRep})

	_, err := suite.service.Preview(suite.ctx, resp.Token+"x")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInviteNotFound)
}

func (suite *InviteServiceTestSuite) TestPreviewGoneStates() {
	resp, stored := suite.createInvite(&service.CreateInviteRequest{Role: models.MembershipRoleRep})
	revokedAt := time.Now().Add(-time.Hour)

	tests := []struct {
		name   string
		mutate func(inv *models.Invite)
		want   error
	}{
		{"expired", func(inv *models.Invite) { inv.ExpiresAt = time.Now().Add(-time.Minute) }, apperrors.ErrInviteExpired},
		{"exhausted", func(inv *models.Invite) { inv.UseCount = inv.MaxUses }, apperrors.ErrInviteExhausted},
		{"revoked wins over expired", func(inv *models.Invite) {
			inv.RevokedAt = &revokedAt
			inv.ExpiresAt = time.Now().Add(-time.Minute)
		}, apperrors.ErrInviteRevoked},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			inv := *stored
			tt.mutate(&inv)
			suite.mockInvites.EXPECT().GetByCodeHash(gomock.Any(), stored.CodeHash).Return(&inv, nil)

			_, err := suite.service.Preview(suite.ctx, resp.Token)

			assert.ErrorIs(suite.T(), err, tt.want)
			assert.True(suite.T(), apperrors.IsGone(err))
		})
	}
}

func (suite *InviteServiceTestSuite) TestRedeemExistingMember() {
	resp, stored := suite.createInvite(&service.CreateInviteRequest{Role: models.MembershipRoleRep})
	actor := &service.Actor{UserID: uuid.New(), Email: "jane@example.com"}

	suite.mockInvites.EXPECT().GetByCodeHash(gomock.Any(), stored.CodeHash).Return(stored, nil)
	suite.mockMembers.EXPECT().
		GetByUser(gomock.Any(), suite.orgID, actor.UserID).
		Return(&models.Membership{OrganizationID: suite.orgID, UserID: actor.UserID}, nil)

	_, err := suite.service.Redeem(suite.ctx, actor, &service.RedeemInviteRequest{Token: resp.Token})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

func (suite *InviteServiceTestSuite) TestRedeemCreatesMembershipAndNotifies() {
	resp, stored := suite.createInvite(&service.CreateInviteRequest{Role: models.MembershipRoleRep})
	actor := &service.Actor{UserID: uuid.New(), Email: "jane@example.com"}

	suite.mockInvites.EXPECT().GetByCodeHash(gomock.Any(), stored.CodeHash).Return(stored, nil)
	suite.mockMembers.EXPECT().
		GetByUser(gomock.Any(), suite.orgID, actor.UserID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvites.EXPECT().
		Redeem(gomock.Any(), stored.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, m *models.Membership, _ time.Time) error {
			m.ID = uuid.New()
			return nil
		})
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.NotifyInput) error {
			assert.Equal(suite.T(), stored.CreatedBy, in.UserID)
			assert.Equal(suite.T(), models.NotificationTypeMemberJoined, in.Type)
			return nil
		})

	membership, err := suite.service.Redeem(suite.ctx, actor, &service.RedeemInviteRequest{Token: resp.Token})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane", membership.DisplayName)
	assert.Equal(suite.T(), "rep", membership.Role)
}

func (suite *InviteServiceTestSuite) TestCreateEmailFailureStillReturnsInvite() {
	suite.mockInvites.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOrgs.EXPECT().
		GetByID(gomock.Any(), suite.orgID).
		Return(&models.Organization{Name: "Acme"}, nil)
	suite.mockSender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(apperrors.NewUpstreamError("email", errors.New("boom")))

	resp, err := suite.service.Create(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), &service.CreateInviteRequest{
		Role:  models.MembershipRoleRep,
		Email: "New.Rep@Example.com",
	})

	require.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "new.rep@example.com", resp.Invite.Email)
	assert.True(suite.T(), apperrors.IsUpstream(err))
}

func (suite *InviteServiceTestSuite) TestRevokeByOtherLeaderForbidden() {
	inviteID := uuid.New()
	suite.mockInvites.EXPECT().
		GetByID(gomock.Any(), suite.orgID, inviteID).
		Return(&models.Invite{BaseModel: models.BaseModel{ID: inviteID}, CreatedBy: uuid.New()}, nil)

	err := suite.service.Revoke(suite.ctx, newActor(suite.orgID, models.MembershipRoleLeader), inviteID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *InviteServiceTestSuite) TestListAsLeaderFiltersByCreator() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)
	suite.mockInvites.EXPECT().
		ListByOrganization(gomock.Any(), suite.orgID, &actor.UserID).
		Return([]models.Invite{{Role: models.MembershipRoleRep, CreatedBy: actor.UserID}}, nil)

	invites, err := suite.service.List(suite.ctx, actor)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), invites, 1)
}

func TestInviteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InviteServiceTestSuite))
}
