package handlers

import (
	"context"
	"net/http"
	"testing"

	"salesdesk-backend/internal/api/middleware"
	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/mocks"
	"salesdesk-backend/internal/service"
	"salesdesk-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HandlersTestSuite drives the handlers through a gin router backed by
// mocked services.
type HandlersTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	organizations *mocks.MockOrganizationServiceInterface
	invites       *mocks.MockInviteServiceInterface
	contacts      *mocks.MockContactServiceInterface
	sequences     *mocks.MockSequenceServiceInterface
	notifications *mocks.MockNotificationServiceInterface
	digest        *mocks.MockDigestServiceInterface

	userID     uuid.UUID
	orgID      uuid.UUID
	membership *models.Membership
	http       *testutils.HTTPTestSuite
}

// asMember stands in for the auth and organization middleware
func asMember(userID uuid.UUID, m *models.Membership) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("email", "rep@example.com")
		if m != nil {
			middleware.SetMembership(c, m)
		}
		c.Next()
	}
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.organizations = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.invites = mocks.NewMockInviteServiceInterface(suite.ctrl)
	suite.contacts = mocks.NewMockContactServiceInterface(suite.ctrl)
	suite.sequences = mocks.NewMockSequenceServiceInterface(suite.ctrl)
	suite.notifications = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.digest = mocks.NewMockDigestServiceInterface(suite.ctrl)

	suite.userID = uuid.New()
	suite.orgID = uuid.New()
	suite.membership = &models.Membership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		UserID:         suite.userID,
		Role:           models.MembershipRoleOrg,
		Status:         models.MembershipStatusActive,
	}

	suite.http = testutils.SetupHTTPTest()
	router := suite.http.Router

	organizationHandler := NewOrganizationHandler(suite.organizations)
	inviteHandler := NewInviteHandler(suite.invites)
	contactHandler := NewContactHandler(suite.contacts)
	sequenceHandler := NewSequenceHandler(suite.sequences)
	notificationHandler := NewNotificationHandler(suite.notifications)
	digestHandler := NewDigestHandler(suite.digest)

	router.GET("/invites/:token", inviteHandler.PreviewInvite)
	router.POST("/internal/weekly-digest", digestHandler.WeeklyDigest)

	authed := router.Group("", asMember(suite.userID, nil))
	authed.POST("/organizations", organizationHandler.CreateOrganization)

	org := router.Group("/organizations/:orgId", asMember(suite.userID, suite.membership))
	org.POST("/invites", inviteHandler.CreateInvite)
	org.GET("/contacts", contactHandler.ListContacts)
	org.POST("/contacts/import", contactHandler.ImportContacts)
	org.GET("/contacts/:contactId", contactHandler.GetContact)
	org.POST("/versions/:versionId/publish", sequenceHandler.PublishVersion)
	org.GET("/notifications", notificationHandler.Feed)
	org.POST("/notifications/read-all", notificationHandler.ReadAll)
	org.POST("/notifications/:notificationId/read", notificationHandler.MarkRead)

	// Same handlers without any identity on the context
	router.GET("/anonymous/contacts/:contactId", contactHandler.GetContact)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HandlersTestSuite) orgURL(path string) string {
	return "/organizations/" + suite.orgID.String() + path
}

func (suite *HandlersTestSuite) TestCreateOrganization() {
	suite.organizations.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, actor *service.Actor, req *service.CreateOrganizationRequest) (*service.CreateOrganizationResponse, error) {
			suite.Equal(suite.userID, actor.UserID)
			suite.Nil(actor.Membership)
			suite.Equal("Acme", req.Name)
			return &service.CreateOrganizationResponse{
				Organization: service.OrganizationResponse{ID: suite.orgID, Name: "Acme", Slug: "acme"},
			}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/organizations", map[string]string{"name": "Acme", "country": "DE"})

	var resp service.CreateOrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.Equal("acme", resp.Organization.Slug)
}

func (suite *HandlersTestSuite) TestMalformedBody() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/organizations", "{not json")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *HandlersTestSuite) TestGetContactMalformedID() {
	recorder := suite.http.MakeRequest(http.MethodGet, suite.orgURL("/contacts/not-a-uuid"), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contact not found")
}

func (suite *HandlersTestSuite) TestGetContactWithoutUser() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/anonymous/contacts/"+uuid.NewString(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

func (suite *HandlersTestSuite) TestGetContactPassesActor() {
	contactID := uuid.New()
	suite.contacts.EXPECT().
		Get(gomock.Any(), gomock.Any(), contactID).
		DoAndReturn(func(_ context.Context, actor *service.Actor, _ uuid.UUID) (*service.ContactResponse, error) {
			suite.Equal(suite.orgID, actor.OrganizationID())
			suite.Equal(suite.membership.ID, actor.MembershipID())
			return &service.ContactResponse{ID: contactID, FullName: "Ada"}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodGet, suite.orgURL("/contacts/"+contactID.String()), nil)

	var resp service.ContactResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("Ada", resp.FullName)
}

func (suite *HandlersTestSuite) TestListContactsDecodesQuery() {
	ownerID := uuid.New()
	suite.contacts.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *service.Actor, q *service.ContactListQuery) (*service.ContactListResponse, error) {
			suite.Equal("qualified", q.Stage)
			suite.Require().NotNil(q.OwnerID)
			suite.Equal(ownerID, *q.OwnerID)
			suite.Equal(2, q.Page)
			return &service.ContactListResponse{Contacts: []service.ContactResponse{}, Page: 2, PageSize: 20}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodGet, suite.orgURL("/contacts?stage=qualified&owner_id="+ownerID.String()+"&page=2&unknown=1"), nil)
	suite.Equal(http.StatusOK, recorder.Code, recorder.Body.String())
}

func (suite *HandlersTestSuite) TestListContactsBadQuery() {
	recorder := suite.http.MakeRequest(http.MethodGet, suite.orgURL("/contacts?owner_id=nope"), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid query parameters")
}

func (suite *HandlersTestSuite) TestImportContactsStatus() {
	testCases := []struct {
		name     string
		dryRun   bool
		expected int
	}{
		{name: "dry run reports without writing", dryRun: true, expected: http.StatusOK},
		{name: "import creates contacts", dryRun: false, expected: http.StatusCreated},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.contacts.EXPECT().
				Import(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *service.Actor, req *service.ImportContactsRequest) (*service.ImportContactsResponse, error) {
					suite.Equal(tc.dryRun, req.DryRun)
					created := 1
					if req.DryRun {
						created = 0
					}
					return &service.ImportContactsResponse{DryRun: req.DryRun, Total: 1, Valid: 1, Created: created}, nil
				})

			body := map[string]interface{}{
				"dry_run": tc.dryRun,
				"rows":    []map[string]string{{"full_name": "Ada Lovelace"}},
			}
			recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/contacts/import"), body)
			suite.Equal(tc.expected, recorder.Code, recorder.Body.String())
		})
	}
}

func (suite *HandlersTestSuite) TestCreateInviteEmailFailure() {
	created := &service.CreateInviteResponse{
		Invite: service.InviteResponse{ID: uuid.New(), Role: "rep"},
		Token:  "signed-token",
		URL:    "http://localhost:3000/invite/signed-token",
	}
	suite.invites.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(created, apperrors.NewUpstreamError("email provider", assert.AnError))

	recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/invites"), map[string]string{"role": "rep", "email": "new@example.com"})

	var resp struct {
		Error   string                       `json:"error"`
		Details service.CreateInviteResponse `json:"details"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadGateway, &resp)
	suite.Contains(resp.Error, "email provider")
	suite.Equal("signed-token", resp.Details.Token)
}

func (suite *HandlersTestSuite) TestCreateInviteForbidden() {
	suite.invites.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrRoleCannotInvite)

	recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/invites"), map[string]string{"role": "org"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "cannot invite")
}

func (suite *HandlersTestSuite) TestPreviewInviteIsPublic() {
	suite.invites.EXPECT().
		Preview(gomock.Any(), "abc.def").
		Return(nil, apperrors.ErrInviteExpired)

	recorder := suite.http.MakeRequest(http.MethodGet, "/invites/abc.def", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusGone, "expired")
}

func (suite *HandlersTestSuite) TestFeed() {
	suite.notifications.EXPECT().
		Feed(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *service.Actor, q *service.FeedQuery) (*service.FeedResponse, error) {
			suite.Equal("tasks", q.Tab)
			suite.Equal("unread", q.Show)
			suite.Equal(10, q.Limit)
			return &service.FeedResponse{Items: []service.NotificationResponse{}}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodGet, suite.orgURL("/notifications?tab=tasks&show=unread&limit=10"), nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Contains(resp, "next_cursor")
	suite.Nil(resp["next_cursor"])
}

func (suite *HandlersTestSuite) TestFeedInvalidCursor() {
	suite.notifications.EXPECT().
		Feed(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidCursor)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.orgURL("/notifications?cursor=garbage"), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid cursor")
}

func (suite *HandlersTestSuite) TestMarkRead() {
	notificationID := uuid.New()
	suite.notifications.EXPECT().
		SetStatus(gomock.Any(), gomock.Any(), notificationID, models.NotificationStatusRead).
		Return(nil)

	recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/notifications/"+notificationID.String()+"/read"), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *HandlersTestSuite) TestReadAllWithoutBody() {
	suite.notifications.EXPECT().
		ReadAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *service.Actor, req *service.ReadAllRequest) (*service.ReadAllResponse, error) {
			suite.Nil(req.Tab)
			suite.Nil(req.Board)
			return &service.ReadAllResponse{}, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/notifications/read-all"), nil)
	suite.Equal(http.StatusOK, recorder.Code, recorder.Body.String())
}

func (suite *HandlersTestSuite) TestPublishVersion() {
	versionID := uuid.New()

	suite.Run("without body", func() {
		suite.sequences.EXPECT().
			Publish(gomock.Any(), gomock.Any(), versionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *service.Actor, _ uuid.UUID, req *service.PublishRequest) (*service.PublishResponse, error) {
				suite.Empty(req.OnPublish)
				return &service.PublishResponse{Strategy: string(models.OnPublishTerminate)}, nil
			})

		recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/versions/"+versionID.String()+"/publish"), nil)
		suite.Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	})

	suite.Run("migrate", func() {
		suite.sequences.EXPECT().
			Publish(gomock.Any(), gomock.Any(), versionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *service.Actor, _ uuid.UUID, req *service.PublishRequest) (*service.PublishResponse, error) {
				suite.Equal(models.OnPublishMigrate, req.OnPublish)
				return &service.PublishResponse{Strategy: string(models.OnPublishMigrate), Migrated: 3}, nil
			})

		recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/versions/"+versionID.String()+"/publish"), map[string]string{"on_publish": "migrate"})

		var resp service.PublishResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
		suite.Equal(3, resp.Migrated)
	})

	suite.Run("no steps", func() {
		suite.sequences.EXPECT().
			Publish(gomock.Any(), gomock.Any(), versionID, gomock.Any()).
			Return(nil, apperrors.ErrVersionHasNoSteps)

		recorder := suite.http.MakeRequest(http.MethodPost, suite.orgURL("/versions/"+versionID.String()+"/publish"), nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "no steps")
	})
}

func (suite *HandlersTestSuite) TestWeeklyDigest() {
	suite.Run("all users", func() {
		suite.digest.EXPECT().
			Run(gomock.Any(), gomock.Nil()).
			Return(&service.DigestResult{Sent: 2, Skipped: 1}, nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/internal/weekly-digest", nil)

		var resp service.DigestResult
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
		suite.Equal(2, resp.Sent)
	})

	suite.Run("single user", func() {
		userID := uuid.New()
		suite.digest.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id *uuid.UUID) (*service.DigestResult, error) {
				suite.Require().NotNil(id)
				suite.Equal(userID, *id)
				return &service.DigestResult{Sent: 1}, nil
			})

		recorder := suite.http.MakeRequest(http.MethodPost, "/internal/weekly-digest?user_id="+userID.String(), nil)
		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("malformed user id", func() {
		recorder := suite.http.MakeRequest(http.MethodPost, "/internal/weekly-digest?user_id=42", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid query parameters")
	})
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
