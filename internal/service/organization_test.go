package service_test

import (
	"context"
	"errors"
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

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockOrganizationRepositoryInterface
	service  *service.OrganizationService
	ctx      context.Context
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.service = service.NewOrganizationService(suite.mockRepo, service.NewValidator())
	suite.ctx = context.Background()
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) TestCreateMakesCallerOrgMember() {
	actor := &service.Actor{UserID: uuid.New(), Email: "founder@example.com"}
	req := &service.CreateOrganizationRequest{Name: "  Café Crème GmbH ", Country: "DE"}

	suite.mockRepo.EXPECT().
		CreateWithOwner(suite.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organization, owner *models.Membership) error {
			assert.Equal(suite.T(), "cafe-creme-gmbh", org.Slug)
			assert.Equal(suite.T(), "Café Crème GmbH", org.Name)
			assert.Equal(suite.T(), actor.UserID, org.CreatedBy)
			assert.Equal(suite.T(), models.MembershipRoleOrg, owner.Role)
			assert.Equal(suite.T(), models.MembershipStatusActive, owner.Status)
			assert.Equal(suite.T(), "founder", owner.DisplayName)
			org.ID = uuid.New()
			owner.ID = uuid.New()
			owner.OrganizationID = org.ID
			return nil
		})

	resp, err := suite.service.Create(suite.ctx, actor, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "cafe-creme-gmbh", resp.Organization.Slug)
	assert.Equal(suite.T(), "DE", resp.Organization.Country)
	assert.Equal(suite.T(), "org", resp.Membership.Role)
	assert.Equal(suite.T(), resp.Organization.ID, resp.Membership.OrganizationID)
}

func (suite *OrganizationServiceTestSuite) TestCreateUsesExplicitSlug() {
	actor := &service.Actor{UserID: uuid.New(), Email: "founder@example.com"}
	req := &service.CreateOrganizationRequest{Name: "Acme", Country: "US", Slug: "Acme Sales", DisplayName: "Ada"}

	suite.mockRepo.EXPECT().
		CreateWithOwner(suite.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organization, owner *models.Membership) error {
			assert.Equal(suite.T(), "acme-sales", org.Slug)
			assert.Equal(suite.T(), "Ada", owner.DisplayName)
			return nil
		})

	_, err := suite.service.Create(suite.ctx, actor, req)
	require.NoError(suite.T(), err)
}

func (suite *OrganizationServiceTestSuite) TestCreateSlugClash() {
	actor := &service.Actor{UserID: uuid.New(), Email: "founder@example.com"}

	suite.mockRepo.EXPECT().
		CreateWithOwner(suite.ctx, gomock.Any(), gomock.Any()).
		Return(uniqueViolation())

	resp, err := suite.service.Create(suite.ctx, actor, &service.CreateOrganizationRequest{Name: "Acme", Country: "US"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

func (suite *OrganizationServiceTestSuite) TestCreateValidation() {
	actor := &service.Actor{UserID: uuid.New(), Email: "founder@example.com"}

	tests := []struct {
		name string
		req  *service.CreateOrganizationRequest
	}{
		{name: "missing name", req: &service.CreateOrganizationRequest{Country: "US"}},
		{name: "unknown country", req: &service.CreateOrganizationRequest{Name: "Acme", Country: "XX"}},
		{name: "slug without letters", req: &service.CreateOrganizationRequest{Name: "!!!", Country: "US"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Create(suite.ctx, actor, tt.req)
			assert.True(suite.T(), apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func (suite *OrganizationServiceTestSuite) TestGetNotFound() {
	actor := newActor(uuid.New(), models.MembershipRoleRep)
	suite.mockRepo.EXPECT().GetByID(suite.ctx, actor.OrganizationID()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Get(suite.ctx, actor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestUpdateRequiresOrgRole() {
	actor := newActor(uuid.New(), models.MembershipRoleLeader)
	name := "Renamed"

	_, err := suite.service.Update(suite.ctx, actor, &service.UpdateOrganizationRequest{Name: &name})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestUpdate() {
	actor := newActor(uuid.New(), models.MembershipRoleOrg)
	org := &models.Organization{BaseModel: models.BaseModel{ID: actor.OrganizationID()}, Slug: "acme", Name: "Acme", Country: "US"}
	name, country := " Acme Europe ", "FR"

	suite.mockRepo.EXPECT().GetByID(suite.ctx, actor.OrganizationID()).Return(org, nil)
	suite.mockRepo.EXPECT().Update(suite.ctx, org).Return(nil)

	resp, err := suite.service.Update(suite.ctx, actor, &service.UpdateOrganizationRequest{Name: &name, Country: &country})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Europe", resp.Name)
	assert.Equal(suite.T(), "FR", resp.Country)
	assert.Equal(suite.T(), "acme", resp.Slug)
}

func (suite *OrganizationServiceTestSuite) TestUpdateInvalidCountry() {
	actor := newActor(uuid.New(), models.MembershipRoleOrg)
	country := "Atlantis"

	resp, err := suite.service.Update(suite.ctx, actor, &service.UpdateOrganizationRequest{Country: &country})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *OrganizationServiceTestSuite) TestListMine() {
	actor := &service.Actor{UserID: uuid.New()}
	suite.mockRepo.EXPECT().ListForUser(suite.ctx, actor.UserID).Return([]models.Organization{
		{Slug: "acme", Name: "Acme"},
		{Slug: "globex", Name: "Globex"},
	}, nil)

	resp, err := suite.service.ListMine(suite.ctx, actor)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "globex", resp[1].Slug)
}

func (suite *OrganizationServiceTestSuite) TestListMineError() {
	actor := &service.Actor{UserID: uuid.New()}
	suite.mockRepo.EXPECT().ListForUser(suite.ctx, actor.UserID).Return(nil, errors.New("connection reset"))

	_, err := suite.service.ListMine(suite.ctx, actor)

	assert.ErrorContains(suite.T(), err, "connection reset")
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
