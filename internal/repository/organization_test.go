//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the organization, membership and invite repositories
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	orgs          *OrganizationRepository
	members       *MembershipRepository
	invites       *InviteRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.orgs = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.members = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.invites = NewInviteRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) createOrg() (*models.Organization, *models.Membership) {
	org := suite.factories.Organization.Create()
	owner := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleOrg)
	owner.UserID = org.CreatedBy
	suite.Require().NoError(suite.orgs.CreateWithOwner(suite.ctx, org, owner))
	return org, owner
}

// TestCreateWithOwner tests that the founding membership is created with the organization
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwner() {
	org, owner := suite.createOrg()

	found, err := suite.members.GetByUser(suite.ctx, org.ID, owner.UserID)
	suite.NoError(err)
	suite.Equal(models.MembershipRoleOrg, found.Role)

	orgs, err := suite.orgs.ListForUser(suite.ctx, owner.UserID)
	suite.NoError(err)
	suite.Len(orgs, 1)
	suite.Equal(org.ID, orgs[0].ID)
}

// TestCreateDuplicateSlug tests that slugs are unique
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateSlug() {
	org, _ := suite.createOrg()

	dup := suite.factories.Organization.WithSlug(org.Slug)
	owner := suite.factories.Membership.WithOrganization(dup.ID, models.MembershipRoleOrg)
	err := suite.orgs.CreateWithOwner(suite.ctx, dup, owner)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))

	_, err = suite.orgs.GetByID(suite.ctx, dup.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateMembership tests the (organization, user) unique index
func (suite *OrganizationRepositoryTestSuite) TestDuplicateMembership() {
	org, owner := suite.createOrg()

	dup := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleRep)
	dup.UserID = owner.UserID
	err := suite.members.Create(suite.ctx, dup)

	suite.True(IsUniqueViolation(err))
}

// TestHierarchy tests rep lookup and leader deletion
func (suite *OrganizationRepositoryTestSuite) TestHierarchy() {
	org, owner := suite.createOrg()

	leader := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleLeader)
	suite.Require().NoError(suite.members.Create(suite.ctx, leader))
	rep := suite.factories.Membership.WithLeader(org.ID, leader.ID)
	suite.Require().NoError(suite.members.Create(suite.ctx, rep))

	ids, err := suite.members.ListRepIDs(suite.ctx, leader.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{rep.ID}, ids)

	suite.NoError(suite.members.Delete(suite.ctx, leader.ID, owner.ID))

	reloaded, err := suite.members.GetByID(suite.ctx, org.ID, rep.ID)
	suite.NoError(err)
	suite.Nil(reloaded.ParentLeaderID)

	count, err := suite.members.CountActiveOrgMembers(suite.ctx, org.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDemotedLeaderReleasesReps tests that reps lose their parent when the leader is demoted or disabled
func (suite *OrganizationRepositoryTestSuite) TestDemotedLeaderReleasesReps() {
	org, _ := suite.createOrg()

	for _, change := range []func(m *models.Membership){
		func(m *models.Membership) { m.Role = models.MembershipRoleRep },
		func(m *models.Membership) { m.Status = models.MembershipStatusDisabled },
	} {
		leader := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleLeader)
		suite.Require().NoError(suite.members.Create(suite.ctx, leader))
		rep := suite.factories.Membership.WithLeader(org.ID, leader.ID)
		suite.Require().NoError(suite.members.Create(suite.ctx, rep))

		change(leader)
		suite.NoError(suite.members.Update(suite.ctx, leader))

		reloaded, err := suite.members.GetByID(suite.ctx, org.ID, rep.ID)
		suite.NoError(err)
		suite.Nil(reloaded.ParentLeaderID)

		ids, err := suite.members.ListRepIDs(suite.ctx, leader.ID)
		suite.NoError(err)
		suite.Empty(ids)
	}
}

// TestLeaderRenameKeepsReps tests that updating an active leader leaves its reps attached
func (suite *OrganizationRepositoryTestSuite) TestLeaderRenameKeepsReps() {
	org, _ := suite.createOrg()

	leader := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleLeader)
	suite.Require().NoError(suite.members.Create(suite.ctx, leader))
	rep := suite.factories.Membership.WithLeader(org.ID, leader.ID)
	suite.Require().NoError(suite.members.Create(suite.ctx, rep))

	leader.DisplayName = "Team West"
	suite.NoError(suite.members.Update(suite.ctx, leader))

	ids, err := suite.members.ListRepIDs(suite.ctx, leader.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{rep.ID}, ids)
}

// TestRedeemRespectsMaxUses tests that an invite cannot be used more than max_uses times
func (suite *OrganizationRepositoryTestSuite) TestRedeemRespectsMaxUses() {
	org, owner := suite.createOrg()
	now := suite.baseTestSuite.DB.NowFunc()

	invite := &models.Invite{
		OrganizationID: org.ID,
		CodeHash:       uuid.NewString(),
		Role:           models.MembershipRoleRep,
		CreatedBy:      owner.UserID,
		ExpiresAt:      now.Add(24 * time.Hour),
		MaxUses:        1,
	}
	suite.Require().NoError(suite.invites.Create(suite.ctx, invite))

	first := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleRep)
	suite.NoError(suite.invites.Redeem(suite.ctx, invite.ID, first, now))

	second := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleRep)
	err := suite.invites.Redeem(suite.ctx, invite.ID, second, now)
	suite.ErrorIs(err, apperrors.ErrInviteExhausted)

	_, err = suite.members.GetByUser(suite.ctx, org.ID, second.UserID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	reloaded, err := suite.invites.GetByCodeHash(suite.ctx, invite.CodeHash)
	suite.NoError(err)
	suite.Equal(1, reloaded.UseCount)
	suite.Equal(org.Name, reloaded.Organization.Name)
}

// TestRedeemExistingMember tests that an existing member cannot redeem and the use is rolled back
func (suite *OrganizationRepositoryTestSuite) TestRedeemExistingMember() {
	org, owner := suite.createOrg()
	now := suite.baseTestSuite.DB.NowFunc()

	invite := &models.Invite{
		OrganizationID: org.ID,
		CodeHash:       uuid.NewString(),
		Role:           models.MembershipRoleRep,
		CreatedBy:      owner.UserID,
		ExpiresAt:      now.Add(24 * time.Hour),
		MaxUses:        5,
	}
	suite.Require().NoError(suite.invites.Create(suite.ctx, invite))

	again := suite.factories.Membership.WithOrganization(org.ID, models.MembershipRoleRep)
	again.UserID = owner.UserID
	err := suite.invites.Redeem(suite.ctx, invite.ID, again, now)
	suite.ErrorIs(err, apperrors.ErrMembershipExists)

	reloaded, err := suite.invites.GetByID(suite.ctx, org.ID, invite.ID)
	suite.NoError(err)
	suite.Equal(0, reloaded.UseCount)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
