package service_test

import (
	"context"
	"testing"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/mocks"
	"salesdesk-backend/internal/pagination"
	"salesdesk-backend/internal/repository"
	"salesdesk-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockNotificationRepositoryInterface
	service  *service.NotificationService
	orgID    uuid.UUID
	ctx      context.Context
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.service = service.NewNotificationService(suite.mockRepo, service.NewValidator())
	suite.orgID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationServiceTestSuite) TestNotifySkipsSelfNotification() {
	userID := uuid.New()

	err := suite.service.Notify(suite.ctx, service.NotifyInput{
		OrganizationID: suite.orgID,
		UserID:         userID,
		ActorUserID:    &userID,
		Type:           models.NotificationTypeContactAssigned,
	})

	assert.NoError(suite.T(), err)
}

func (suite *NotificationServiceTestSuite) TestNotifySkipsMuted() {
	suite.mockRepo.EXPECT().IsMuted(gomock.Any(), gomock.Any()).Return(true, nil)

	err := suite.service.Notify(suite.ctx, service.NotifyInput{
		OrganizationID: suite.orgID,
		UserID:         uuid.New(),
		Type:           models.NotificationTypeMemberJoined,
	})

	assert.NoError(suite.T(), err)
}

func (suite *NotificationServiceTestSuite) TestNotifyRequiresRecipient() {
	err := suite.service.Notify(suite.ctx, service.NotifyInput{Type: models.NotificationTypeMemberJoined})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *NotificationServiceTestSuite) TestNotifyStoresUnreadNotification() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().IsMuted(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(suite.T(), userID, n.UserID)
			assert.Equal(suite.T(), models.NotificationTabActivity, n.Tab)
			assert.Equal(suite.T(), models.NotificationStatusUnread, n.Status)
			require.NotNil(suite.T(), n.Board)
			assert.Equal(suite.T(), models.BoardTeam, *n.Board)
			return nil
		})

	err := suite.service.Notify(suite.ctx, service.NotifyInput{
		OrganizationID: suite.orgID,
		UserID:         userID,
		Type:           models.NotificationTypeMemberJoined,
		Board:          models.BoardTeam,
		Title:          "Jane joined as rep",
	})

	assert.NoError(suite.T(), err)
}

func (suite *NotificationServiceTestSuite) TestFeedInvalidCursor() {
	_, err := suite.service.Feed(suite.ctx, newActor(suite.orgID, models.MembershipRoleRep), &service.FeedQuery{Cursor: "not a cursor"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCursor)
}

func (suite *NotificationServiceTestSuite) TestFeedInvalidTab() {
	_, err := suite.service.Feed(suite.ctx, newActor(suite.orgID, models.MembershipRoleRep), &service.FeedQuery{Tab: "spam"})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *NotificationServiceTestSuite) TestFeedReturnsNextCursor() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := make([]models.NotificationFeedItem, 3)
	for i := range rows {
		rows[i].ID = uuid.New()
		rows[i].CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		rows[i].Status = models.NotificationStatusUnread
	}
	after := pagination.Cursor{CreatedAt: base.Add(time.Hour), ID: uuid.New()}

	suite.mockRepo.EXPECT().
		Feed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q repository.FeedQuery) ([]models.NotificationFeedItem, error) {
			assert.Equal(suite.T(), 2, q.Limit)
			assert.Equal(suite.T(), actor.UserID, q.UserID)
			require.NotNil(suite.T(), q.Cursor)
			assert.Equal(suite.T(), after.ID, q.Cursor.ID)
			return rows, nil
		})

	page, err := suite.service.Feed(suite.ctx, actor, &service.FeedQuery{Limit: 2, Cursor: pagination.EncodeCursor(after)})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Items, 2)
	require.NotNil(suite.T(), page.NextCursor)

	next, ok := pagination.DecodeCursor(*page.NextCursor)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), rows[1].ID, next.ID)
}

func (suite *NotificationServiceTestSuite) TestCountsAggregatesTabsAndBoards() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	suite.mockRepo.EXPECT().
		Counters(gomock.Any(), suite.orgID, actor.UserID).
		Return([]models.NotificationCounter{
			{Tab: models.NotificationTabActivity, Board: models.BoardContacts, UnreadCount: 3},
			{Tab: models.NotificationTabActivity, Board: models.BoardTeam, UnreadCount: 1},
			{Tab: models.NotificationTabTasks, Board: models.BoardSequences, UnreadCount: 2},
		}, nil)

	counts, err := suite.service.Counts(suite.ctx, actor)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(6), counts.Total)
	assert.Equal(suite.T(), int64(4), counts.Tabs["activity"])
	assert.Equal(suite.T(), int64(2), counts.Tabs["tasks"])
	assert.Equal(suite.T(), int64(0), counts.Tabs["mentions"])
	assert.Equal(suite.T(), int64(3), counts.Boards["contacts"])
}

func (suite *NotificationServiceTestSuite) TestSetStatusOfForeignNotification() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	id := uuid.New()
	suite.mockRepo.EXPECT().
		SetStatus(gomock.Any(), suite.orgID, actor.UserID, id, models.NotificationStatusRead, gomock.Any()).
		Return(gorm.ErrRecordNotFound)

	err := suite.service.SetStatus(suite.ctx, actor, id, models.NotificationStatusRead)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotificationNotFound)
}

func (suite *NotificationServiceTestSuite) TestReadAllScopedToTab() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	tab := "tasks"
	suite.mockRepo.EXPECT().
		MarkAllRead(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope repository.ReadAllScope, _ time.Time) (int64, error) {
			require.NotNil(suite.T(), scope.Tab)
			assert.Equal(suite.T(), models.NotificationTabTasks, *scope.Tab)
			assert.Nil(suite.T(), scope.Board)
			return 4, nil
		})

	resp, err := suite.service.ReadAll(suite.ctx, actor, &service.ReadAllRequest{Tab: &tab})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4), resp.Updated)
}

func (suite *NotificationServiceTestSuite) TestCreateDuplicateMute() {
	suite.mockRepo.EXPECT().CreateMute(gomock.Any(), gomock.Any()).Return(uniqueViolation())

	_, err := suite.service.CreateMute(suite.ctx, newActor(suite.orgID, models.MembershipRoleRep), &service.CreateMuteRequest{
		Type: models.NotificationTypeAssignmentCreated,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMuteExists)
}

func (suite *NotificationServiceTestSuite) TestCreateMuteSourceRequiresType() {
	sourceID := uuid.New()

	_, err := suite.service.CreateMute(suite.ctx, newActor(suite.orgID, models.MembershipRoleRep), &service.CreateMuteRequest{
		Type:     models.NotificationTypeAssignmentCreated,
		SourceID: &sourceID,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
