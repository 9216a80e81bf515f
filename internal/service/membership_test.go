package service_test

import (
	"context"
	"testing"

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

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockMembershipRepositoryInterface
	service  *service.MembershipService
	orgID    uuid.UUID
	ctx      context.Context
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.service = service.NewMembershipService(suite.mockRepo, service.NewValidator())
	suite.orgID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) member(role models.MembershipRole) *models.Membership {
	return &models.Membership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		UserID:         uuid.New(),
		Role:           role,
		Status:         models.MembershipStatusActive,
		DisplayName:    string(role),
	}
}

func roleRef(r models.MembershipRole) *models.MembershipRole { return &r }

func statusRef(s models.MembershipStatus) *models.MembershipStatus { return &s }

func (suite *MembershipServiceTestSuite) TestResolve() {
	m := suite.member(models.MembershipRoleRep)
	suite.mockRepo.EXPECT().GetByUser(suite.ctx, suite.orgID, m.UserID).Return(m, nil)

	got, err := suite.service.Resolve(suite.ctx, suite.orgID, m.UserID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), m.ID, got.ID)
}

func (suite *MembershipServiceTestSuite) TestResolveHidesOrganization() {
	suite.Run("not a member", func() {
		userID := uuid.New()
		suite.mockRepo.EXPECT().GetByUser(suite.ctx, suite.orgID, userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.service.Resolve(suite.ctx, suite.orgID, userID)
		assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	})

	suite.Run("disabled member", func() {
		m := suite.member(models.MembershipRoleOrg)
		m.Status = models.MembershipStatusDisabled
		suite.mockRepo.EXPECT().GetByUser(suite.ctx, suite.orgID, m.UserID).Return(m, nil)

		_, err := suite.service.Resolve(suite.ctx, suite.orgID, m.UserID)
		assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	})
}

func (suite *MembershipServiceTestSuite) TestList() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	suite.mockRepo.EXPECT().ListByOrganization(suite.ctx, suite.orgID).Return([]models.Membership{
		*suite.member(models.MembershipRoleOrg),
		*suite.member(models.MembershipRoleRep),
	}, nil)

	resp, err := suite.service.List(suite.ctx, actor)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "org", resp[0].Role)
	assert.Equal(suite.T(), "rep", resp[1].Role)
}

func (suite *MembershipServiceTestSuite) TestUpdateRequiresOrgRole() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)

	_, err := suite.service.Update(suite.ctx, actor, uuid.New(), &service.UpdateMembershipRequest{Role: roleRef(models.MembershipRoleRep)})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *MembershipServiceTestSuite) TestUpdateRejectsUnknownRole() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)

	_, err := suite.service.Update(suite.ctx, actor, uuid.New(), &service.UpdateMembershipRequest{Role: roleRef("admin")})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestUpdateLastOrgMember() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	self := actor.Membership

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, self.ID).Return(self, nil)
	suite.mockRepo.EXPECT().CountActiveOrgMembers(suite.ctx, suite.orgID).Return(int64(1), nil)

	_, err := suite.service.Update(suite.ctx, actor, self.ID, &service.UpdateMembershipRequest{Role: roleRef(models.MembershipRoleLeader)})

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastOrgMember)
}

func (suite *MembershipServiceTestSuite) TestUpdateDisableOrgMemberWithAnotherLeft() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	target := suite.member(models.MembershipRoleOrg)

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, target.ID).Return(target, nil)
	suite.mockRepo.EXPECT().CountActiveOrgMembers(suite.ctx, suite.orgID).Return(int64(2), nil)
	suite.mockRepo.EXPECT().Update(suite.ctx, target).Return(nil)

	resp, err := suite.service.Update(suite.ctx, actor, target.ID, &service.UpdateMembershipRequest{Status: statusRef(models.MembershipStatusDisabled)})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "disabled", resp.Status)
}

func (suite *MembershipServiceTestSuite) TestUpdateAssignsParentLeader() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	rep := suite.member(models.MembershipRoleRep)
	leader := suite.member(models.MembershipRoleLeader)

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, rep.ID).Return(rep, nil)
	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, leader.ID).Return(leader, nil)
	suite.mockRepo.EXPECT().Update(suite.ctx, rep).Return(nil)

	resp, err := suite.service.Update(suite.ctx, actor, rep.ID, &service.UpdateMembershipRequest{ParentLeaderID: &leader.ID})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.ParentLeaderID)
	assert.Equal(suite.T(), leader.ID, *resp.ParentLeaderID)
}

func (suite *MembershipServiceTestSuite) TestUpdateParentMustBeLeader() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	rep := suite.member(models.MembershipRoleRep)
	other := suite.member(models.MembershipRoleRep)

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, rep.ID).Return(rep, nil)
	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, other.ID).Return(other, nil)

	_, err := suite.service.Update(suite.ctx, actor, rep.ID, &service.UpdateMembershipRequest{ParentLeaderID: &other.ID})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestUpdateParentOnlyForReps() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	leader := suite.member(models.MembershipRoleLeader)
	parent := uuid.New()

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, leader.ID).Return(leader, nil)

	_, err := suite.service.Update(suite.ctx, actor, leader.ID, &service.UpdateMembershipRequest{ParentLeaderID: &parent})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestUpdatePromotionClearsParent() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	rep := suite.member(models.MembershipRoleRep)
	leaderID := uuid.New()
	rep.ParentLeaderID = &leaderID

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, rep.ID).Return(rep, nil)
	suite.mockRepo.EXPECT().Update(suite.ctx, rep).Return(nil)

	resp, err := suite.service.Update(suite.ctx, actor, rep.ID, &service.UpdateMembershipRequest{Role: roleRef(models.MembershipRoleLeader)})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "leader", resp.Role)
	assert.Nil(suite.T(), resp.ParentLeaderID)
}

func (suite *MembershipServiceTestSuite) TestUpdateDemoteLeaderSavesThroughRepository() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	leader := suite.member(models.MembershipRoleLeader)

	// The repository detaches the leader's reps in the same transaction as the save
	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, leader.ID).Return(leader, nil)
	suite.mockRepo.EXPECT().Update(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Membership) error {
			assert.Equal(suite.T(), leader.ID, m.ID)
			assert.Equal(suite.T(), models.MembershipRoleRep, m.Role)
			assert.Nil(suite.T(), m.ParentLeaderID)
			return nil
		})

	resp, err := suite.service.Update(suite.ctx, actor, leader.ID, &service.UpdateMembershipRequest{Role: roleRef(models.MembershipRoleRep)})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "rep", resp.Role)
}

func (suite *MembershipServiceTestSuite) TestUpdateMemberNotFound() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, actor, id, &service.UpdateMembershipRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func (suite *MembershipServiceTestSuite) TestRemoveByOrgMemberReassignsToRemover() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	rep := suite.member(models.MembershipRoleRep)

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, rep.ID).Return(rep, nil)
	suite.mockRepo.EXPECT().Delete(suite.ctx, rep.ID, actor.MembershipID()).Return(nil)

	err := suite.service.Remove(suite.ctx, actor, rep.ID)

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestRemoveOthersForbidden() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)

	err := suite.service.Remove(suite.ctx, actor, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *MembershipServiceTestSuite) TestLeaveHandsWorkToLeader() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	leaderID := uuid.New()
	actor.Membership.ParentLeaderID = &leaderID

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, actor.MembershipID()).Return(actor.Membership, nil)
	suite.mockRepo.EXPECT().Delete(suite.ctx, actor.MembershipID(), leaderID).Return(nil)

	err := suite.service.Remove(suite.ctx, actor, actor.MembershipID())

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestLeaveHandsWorkToOrgMember() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)
	owner := suite.member(models.MembershipRoleOrg)

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, actor.MembershipID()).Return(actor.Membership, nil)
	suite.mockRepo.EXPECT().ListByOrganization(suite.ctx, suite.orgID).Return([]models.Membership{
		*actor.Membership,
		*suite.member(models.MembershipRoleRep),
		*owner,
	}, nil)
	suite.mockRepo.EXPECT().Delete(suite.ctx, actor.MembershipID(), owner.ID).Return(nil)

	err := suite.service.Remove(suite.ctx, actor, actor.MembershipID())

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestLastOrgMemberCannotLeave() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.orgID, actor.MembershipID()).Return(actor.Membership, nil)
	suite.mockRepo.EXPECT().CountActiveOrgMembers(suite.ctx, suite.orgID).Return(int64(1), nil)

	err := suite.service.Remove(suite.ctx, actor, actor.MembershipID())

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastOrgMember)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
