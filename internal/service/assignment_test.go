package service_test

import (
	"context"
	"testing"
	"time"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/mocks"
	"salesdesk-backend/internal/repository"
	"salesdesk-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAssignments *mocks.MockAssignmentRepositoryInterface
	mockEnrollments *mocks.MockEnrollmentRepositoryInterface
	mockSequences   *mocks.MockSequenceRepositoryInterface
	mockContacts    *mocks.MockContactRepositoryInterface
	mockMembers     *mocks.MockMembershipRepositoryInterface
	mockNotifier    *mocks.MockNotifier
	service         *service.AssignmentService
	orgID           uuid.UUID
	ctx             context.Context
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAssignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockEnrollments = mocks.NewMockEnrollmentRepositoryInterface(suite.ctrl)
	suite.mockSequences = mocks.NewMockSequenceRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.service = service.NewAssignmentService(
		suite.mockAssignments, suite.mockEnrollments, suite.mockSequences,
		suite.mockContacts, suite.mockMembers, suite.mockNotifier, service.NewValidator(),
	)
	suite.orgID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// pending builds an open assignment for the first step of a live contact enrollment
func (suite *AssignmentServiceTestSuite) pending(assignee uuid.UUID) *models.SequenceAssignment {
	enrollment := &models.SequenceEnrollment{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		OrganizationID:  suite.orgID,
		SequenceID:      uuid.New(),
		VersionID:       uuid.New(),
		TargetType:      models.TargetTypeContact,
		TargetID:        uuid.New(),
		Status:          models.EnrollmentStatusActive,
		CurrentPosition: 1,
	}
	step := &models.SequenceStep{
		BaseModel: models.BaseModel{ID: uuid.New()},
		VersionID: enrollment.VersionID,
		Position:  1,
		Title:     "Intro call",
		Type:      models.StepTypeCall,
	}
	return &models.SequenceAssignment{
		BaseModel:            models.BaseModel{ID: uuid.New()},
		OrganizationID:       suite.orgID,
		EnrollmentID:         enrollment.ID,
		StepID:               step.ID,
		AssigneeMembershipID: assignee,
		Status:               models.AssignmentStatusOpen,
		DueAt:                time.Now().Add(time.Hour),
		Enrollment:           enrollment,
		Step:                 step,
	}
}

func (suite *AssignmentServiceTestSuite) TestListNormalizesAtReadTime() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	past := time.Now().Add(-2 * time.Hour)
	future := time.Now().Add(2 * time.Hour)

	expired := suite.pending(actor.MembershipID())
	expired.Status = models.AssignmentStatusSnoozed
	expired.SnoozedUntil = &past
	expired.DueAt = past

	snoozed := suite.pending(actor.MembershipID())
	snoozed.Status = models.AssignmentStatusSnoozed
	snoozed.SnoozedUntil = &future
	snoozed.DueAt = past

	upcoming := suite.pending(actor.MembershipID())

	suite.mockAssignments.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repository.AssignmentFilter) ([]models.SequenceAssignment, error) {
			assert.Equal(suite.T(), []uuid.UUID{actor.MembershipID()}, filter.AssigneeIDs)
			assert.Positive(suite.T(), filter.Limit)
			return []models.SequenceAssignment{*expired, *snoozed, *upcoming}, nil
		})

	list, err := suite.service.List(suite.ctx, actor, &service.AssignmentListQuery{})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 3)

	assert.Equal(suite.T(), "open", list[0].Status)
	assert.Nil(suite.T(), list[0].SnoozedUntil)
	assert.True(suite.T(), list[0].Overdue)

	assert.Equal(suite.T(), "snoozed", list[1].Status)
	assert.NotNil(suite.T(), list[1].SnoozedUntil)
	assert.False(suite.T(), list[1].Overdue)

	assert.Equal(suite.T(), "open", list[2].Status)
	assert.False(suite.T(), list[2].Overdue)
	assert.Equal(suite.T(), "Intro call", list[2].StepTitle)
	assert.Equal(suite.T(), upcoming.Enrollment.SequenceID, list[2].SequenceID)
}

func (suite *AssignmentServiceTestSuite) TestListTeamScopeForRepForbidden() {
	_, err := suite.service.List(suite.ctx, newActor(suite.orgID, models.MembershipRoleRep), &service.AssignmentListQuery{Scope: service.AssignmentScopeTeam})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *AssignmentServiceTestSuite) TestListTeamScopeForLeader() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)
	repID := uuid.New()
	suite.mockMembers.EXPECT().ListRepIDs(gomock.Any(), actor.MembershipID()).Return([]uuid.UUID{repID}, nil)
	suite.mockAssignments.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter repository.AssignmentFilter) ([]models.SequenceAssignment, error) {
			assert.ElementsMatch(suite.T(), []uuid.UUID{actor.MembershipID(), repID}, filter.AssigneeIDs)
			assert.Equal(suite.T(), models.AssignmentStatusOpen, filter.Status)
			return nil, nil
		})

	list, err := suite.service.List(suite.ctx, actor, &service.AssignmentListQuery{Scope: service.AssignmentScopeTeam, Status: "open"})

	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), list)
}

func (suite *AssignmentServiceTestSuite) TestSnoozeInThePast() {
	_, err := suite.service.Snooze(suite.ctx, newActor(suite.orgID, models.MembershipRoleRep), uuid.New(), &service.SnoozeRequest{
		Until: "2001-01-01T00:00:00Z",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestSnooze() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	assignment := suite.pending(actor.MembershipID())
	until := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond)

	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(assignment, nil).Times(1)
	suite.mockAssignments.EXPECT().
		Snooze(gomock.Any(), assignment.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, got time.Time) error {
			assert.True(suite.T(), until.Equal(got))
			return nil
		})
	snoozed := *assignment
	snoozed.Status = models.AssignmentStatusSnoozed
	snoozed.SnoozedUntil = &until
	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(&snoozed, nil).Times(1)

	resp, err := suite.service.Snooze(suite.ctx, actor, assignment.ID, &service.SnoozeRequest{Until: until.Format(time.RFC3339Nano)})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "snoozed", resp.Status)
}

func (suite *AssignmentServiceTestSuite) TestCompleteAdvancesToNextStep() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	assignment := suite.pending(actor.MembershipID())
	enrollment := assignment.Enrollment
	next := &models.SequenceStep{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		VersionID:    enrollment.VersionID,
		Position:     2,
		Title:        "Follow-up email",
		Type:         models.StepTypeEmail,
		OffsetDays:   3,
		AssigneeMode: models.AssigneeModeOwner,
	}

	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(assignment, nil).Times(1)
	suite.mockSequences.EXPECT().GetStepAt(gomock.Any(), enrollment.VersionID, 2).Return(next, nil)
	suite.mockContacts.EXPECT().
		GetByID(gomock.Any(), suite.orgID, enrollment.TargetID).
		Return(&models.Contact{OwnerMembershipID: actor.MembershipID()}, nil)
	suite.mockEnrollments.EXPECT().
		Advance(gomock.Any(), assignment, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.SequenceAssignment, created *models.SequenceAssignment, _ time.Time) error {
			require.NotNil(suite.T(), created)
			assert.Equal(suite.T(), next.ID, created.StepID)
			assert.Equal(suite.T(), enrollment.ID, created.EnrollmentID)
			assert.Equal(suite.T(), actor.MembershipID(), created.AssigneeMembershipID)
			assert.WithinDuration(suite.T(), time.Now().Add(72*time.Hour), created.DueAt, time.Minute)
			return nil
		})
	suite.mockSequences.EXPECT().
		GetByID(gomock.Any(), suite.orgID, enrollment.SequenceID).
		Return(&models.Sequence{Name: "Onboarding"}, nil)
	suite.mockMembers.EXPECT().
		GetByID(gomock.Any(), suite.orgID, actor.MembershipID()).
		Return(actor.Membership, nil)
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.NotifyInput) error {
			assert.Equal(suite.T(), "Onboarding: Follow-up email", in.Title)
			return nil
		})

	done := *assignment
	done.Status = models.AssignmentStatusDone
	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(&done, nil).Times(1)

	resp, err := suite.service.Complete(suite.ctx, actor, assignment.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "done", resp.Status)
}

func (suite *AssignmentServiceTestSuite) TestCompleteLastStepCompletesEnrollment() {
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	assignment := suite.pending(uuid.New())

	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(assignment, nil).Times(2)
	suite.mockSequences.EXPECT().
		GetStepAt(gomock.Any(), assignment.Enrollment.VersionID, 2).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockEnrollments.EXPECT().
		Advance(gomock.Any(), assignment, gomock.Nil(), gomock.Any()).
		Return(nil)

	_, err := suite.service.Complete(suite.ctx, actor, assignment.ID)

	require.NoError(suite.T(), err)
}

func (suite *AssignmentServiceTestSuite) TestCompleteDoneAssignment() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	assignment := suite.pending(actor.MembershipID())
	assignment.Status = models.AssignmentStatusDone
	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(assignment, nil)

	_, err := suite.service.Complete(suite.ctx, actor, assignment.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTransition)
}

func (suite *AssignmentServiceTestSuite) TestCompletePausedEnrollment() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	assignment := suite.pending(actor.MembershipID())
	assignment.Enrollment.Status = models.EnrollmentStatusPaused
	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(assignment, nil)

	_, err := suite.service.Complete(suite.ctx, actor, assignment.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTransition)
}

func (suite *AssignmentServiceTestSuite) TestCompleteSomeoneElsesAssignment() {
	actor := newActor(suite.orgID, models.MembershipRoleRep)
	assignment := suite.pending(uuid.New())
	suite.mockAssignments.EXPECT().GetByID(gomock.Any(), suite.orgID, assignment.ID).Return(assignment, nil)

	_, err := suite.service.Complete(suite.ctx, actor, assignment.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
