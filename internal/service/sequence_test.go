package service_test

import (
	"context"
	"testing"

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

// SequenceServiceTestSuite defines the test suite for SequenceService
type SequenceServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSequences   *mocks.MockSequenceRepositoryInterface
	mockEnrollments *mocks.MockEnrollmentRepositoryInterface
	mockAssignments *mocks.MockAssignmentRepositoryInterface
	mockContacts    *mocks.MockContactRepositoryInterface
	mockMembers     *mocks.MockMembershipRepositoryInterface
	mockNotifier    *mocks.MockNotifier
	service         *service.SequenceService
	orgID           uuid.UUID
	ctx             context.Context
}

func (suite *SequenceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSequences = mocks.NewMockSequenceRepositoryInterface(suite.ctrl)
	suite.mockEnrollments = mocks.NewMockEnrollmentRepositoryInterface(suite.ctrl)
	suite.mockAssignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.service = service.NewSequenceService(
		suite.mockSequences, suite.mockEnrollments, suite.mockAssignments,
		suite.mockContacts, suite.mockMembers, suite.mockNotifier, service.NewValidator(),
	)
	suite.orgID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *SequenceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// draft registers a sequence with a draft version holding n steps
func (suite *SequenceServiceTestSuite) draft(n int) (*models.Sequence, *models.SequenceVersion) {
	sequence := &models.Sequence{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.orgID,
		Name:           "Onboarding",
		Status:         models.SequenceStatusActive,
		CreatedBy:      uuid.New(),
	}
	version := &models.SequenceVersion{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		SequenceID: sequence.ID,
		Version:    2,
		Status:     models.VersionStatusDraft,
	}
	for i := 1; i <= n; i++ {
		version.Steps = append(version.Steps, models.SequenceStep{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			VersionID:    version.ID,
			Position:     i,
			Title:        "Step",
			Type:         models.StepTypeCall,
			AssigneeMode: models.AssigneeModeOwner,
		})
	}
	return sequence, version
}

func (suite *SequenceServiceTestSuite) expectVersion(sequence *models.Sequence, version *models.SequenceVersion) {
	suite.mockSequences.EXPECT().GetVersionByID(gomock.Any(), version.ID).Return(version, nil).Times(1)
	suite.mockSequences.EXPECT().GetByID(gomock.Any(), suite.orgID, sequence.ID).Return(sequence, nil).Times(1)
}

func (suite *SequenceServiceTestSuite) TestCreateForbiddenForRep() {
	_, err := suite.service.Create(suite.ctx, newActor(suite.orgID, models.MembershipRoleRep), &service.CreateSequenceRequest{Name: "Onboarding"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *SequenceServiceTestSuite) TestCreateStartsWithDraftVersion() {
	actor := newActor(suite.orgID, models.MembershipRoleLeader)
	suite.mockSequences.EXPECT().
		CreateWithDraft(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, seq *models.Sequence, draft *models.SequenceVersion) error {
			seq.ID = uuid.New()
			draft.ID = uuid.New()
			draft.SequenceID = seq.ID
			return nil
		})

	resp, err := suite.service.Create(suite.ctx, actor, &service.CreateSequenceRequest{Name: " Onboarding "})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Onboarding", resp.Name)
	assert.Equal(suite.T(), actor.UserID, resp.CreatedBy)
	require.Len(suite.T(), resp.Versions, 1)
	assert.Equal(suite.T(), 1, resp.Versions[0].Version)
	assert.Equal(suite.T(), "draft", resp.Versions[0].Status)
}

func (suite *SequenceServiceTestSuite) TestCreateVersionWhileDraftExists() {
	sequence, version := suite.draft(1)
	suite.mockSequences.EXPECT().GetByID(gomock.Any(), suite.orgID, sequence.ID).Return(sequence, nil)
	suite.mockSequences.EXPECT().GetLatestVersion(gomock.Any(), sequence.ID).Return(version, nil)

	_, err := suite.service.CreateVersion(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), sequence.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDraftVersionExists)
}

func (suite *SequenceServiceTestSuite) TestCreateVersionCopiesLatestSteps() {
	sequence, latest := suite.draft(2)
	latest.Status = models.VersionStatusPublished
	suite.mockSequences.EXPECT().GetByID(gomock.Any(), suite.orgID, sequence.ID).Return(sequence, nil)
	suite.mockSequences.EXPECT().GetLatestVersion(gomock.Any(), sequence.ID).Return(latest, nil)
	suite.mockSequences.EXPECT().
		CreateVersionCopy(gomock.Any(), gomock.Any(), latest.Steps).
		DoAndReturn(func(_ context.Context, next *models.SequenceVersion, _ []models.SequenceStep) error {
			assert.Equal(suite.T(), 3, next.Version)
			assert.Equal(suite.T(), models.VersionStatusDraft, next.Status)
			return nil
		})

	resp, err := suite.service.CreateVersion(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), sequence.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, resp.Version)
}

func (suite *SequenceServiceTestSuite) TestAddStepToPublishedVersion() {
	sequence, version := suite.draft(1)
	version.Status = models.VersionStatusPublished
	suite.expectVersion(sequence, version)

	_, err := suite.service.AddStep(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), version.ID, &service.CreateStepRequest{
		Title:        "Call",
		Type:         models.StepTypeCall,
		AssigneeMode: models.AssigneeModeOwner,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotEditable)
}

func (suite *SequenceServiceTestSuite) TestAddStepSpecificRequiresAssignee() {
	_, err := suite.service.AddStep(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), uuid.New(), &service.CreateStepRequest{
		Title:        "Call",
		Type:         models.StepTypeCall,
		AssigneeMode: models.AssigneeModeSpecific,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *SequenceServiceTestSuite) TestAddStepInArchivedSequence() {
	sequence, version := suite.draft(0)
	sequence.Status = models.SequenceStatusArchived
	suite.expectVersion(sequence, version)

	_, err := suite.service.AddStep(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), version.ID, &service.CreateStepRequest{
		Title:        "Call",
		Type:         models.StepTypeCall,
		AssigneeMode: models.AssigneeModeOwner,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrSequenceArchived)
}

func (suite *SequenceServiceTestSuite) TestVersionOfAnotherOrganizationIsNotFound() {
	sequence, version := suite.draft(1)
	suite.mockSequences.EXPECT().GetVersionByID(gomock.Any(), version.ID).Return(version, nil)
	suite.mockSequences.EXPECT().GetByID(gomock.Any(), suite.orgID, sequence.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.ReorderSteps(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), version.ID, &service.ReorderStepsRequest{
		StepIDs: []uuid.UUID{version.Steps[0].ID},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotFound)
}

func (suite *SequenceServiceTestSuite) TestReorderRejectsNonPermutation() {
	sequence, version := suite.draft(3)
	actor := newActor(suite.orgID, models.MembershipRoleOrg)

	tests := []struct {
		name string
		ids  []uuid.UUID
	}{
		{"missing step", []uuid.UUID{version.Steps[0].ID, version.Steps[1].ID}},
		{"repeated step", []uuid.UUID{version.Steps[0].ID, version.Steps[0].ID, version.Steps[1].ID}},
		{"foreign step", []uuid.UUID{version.Steps[0].ID, version.Steps[1].ID, uuid.New()}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.expectVersion(sequence, version)

			_, err := suite.service.ReorderSteps(suite.ctx, actor, version.ID, &service.ReorderStepsRequest{StepIDs: tt.ids})

			assert.True(suite.T(), apperrors.IsValidation(err))
		})
	}
}

func (suite *SequenceServiceTestSuite) TestReorderSteps() {
	sequence, version := suite.draft(2)
	order := []uuid.UUID{version.Steps[1].ID, version.Steps[0].ID}
	suite.expectVersion(sequence, version)
	suite.mockSequences.EXPECT().ReorderSteps(gomock.Any(), version.ID, order).Return(nil)
	suite.mockSequences.EXPECT().GetVersionByID(gomock.Any(), version.ID).Return(version, nil)

	resp, err := suite.service.ReorderSteps(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), version.ID, &service.ReorderStepsRequest{StepIDs: order})

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Steps, 2)
}

func (suite *SequenceServiceTestSuite) TestPublishWithoutSteps() {
	sequence, version := suite.draft(0)
	suite.expectVersion(sequence, version)

	_, err := suite.service.Publish(suite.ctx, newActor(suite.orgID, models.MembershipRoleOrg), version.ID, &service.PublishRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionHasNoSteps)
}

func (suite *SequenceServiceTestSuite) TestPublishDefaultsToTerminate() {
	sequence, version := suite.draft(1)
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	live := []models.SequenceEnrollment{
		{BaseModel: models.BaseModel{ID: uuid.New()}, CurrentPosition: 1},
		{BaseModel: models.BaseModel{ID: uuid.New()}, CurrentPosition: 3},
	}

	suite.expectVersion(sequence, version)
	suite.mockEnrollments.EXPECT().ListLiveOutsideVersion(gomock.Any(), sequence.ID, version.ID).Return(live, nil)
	suite.mockSequences.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, plan repository.PublishPlan) (*repository.PublishResult, error) {
			assert.Equal(suite.T(), models.OnPublishTerminate, plan.Strategy)
			assert.Equal(suite.T(), []uuid.UUID{live[0].ID, live[1].ID}, plan.Terminate)
			assert.Empty(suite.T(), plan.Migrate)
			return &repository.PublishResult{Terminated: plan.Terminate}, nil
		})
	suite.mockSequences.EXPECT().GetVersionByID(gomock.Any(), version.ID).Return(version, nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Publish(suite.ctx, actor, version.ID, &service.PublishRequest{})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "terminate", resp.Strategy)
	assert.Equal(suite.T(), 2, resp.Terminated)
	assert.Equal(suite.T(), 0, resp.Migrated)
}

func (suite *SequenceServiceTestSuite) TestPublishMigrateClampsPosition() {
	sequence, version := suite.draft(2)
	actor := newActor(suite.orgID, models.MembershipRoleLeader)
	ownerID := uuid.New()
	pendingID := uuid.New()

	beyond := models.SequenceEnrollment{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		TargetType:      models.TargetTypeContact,
		TargetID:        uuid.New(),
		CurrentPosition: 5,
	}
	unstarted := models.SequenceEnrollment{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		TargetType:      models.TargetTypeContact,
		TargetID:        uuid.New(),
		CurrentPosition: 0,
	}
	orphan := models.SequenceEnrollment{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		TargetType:      models.TargetTypeContact,
		TargetID:        uuid.New(),
		CurrentPosition: 1,
	}

	suite.expectVersion(sequence, version)
	suite.mockEnrollments.EXPECT().
		ListLiveOutsideVersion(gomock.Any(), sequence.ID, version.ID).
		Return([]models.SequenceEnrollment{beyond, unstarted, orphan}, nil)

	suite.mockAssignments.EXPECT().
		GetPendingForEnrollment(gomock.Any(), beyond.ID).
		Return(&models.SequenceAssignment{BaseModel: models.BaseModel{ID: pendingID}}, nil)
	suite.mockContacts.EXPECT().
		GetByID(gomock.Any(), suite.orgID, beyond.TargetID).
		Return(&models.Contact{OwnerMembershipID: ownerID}, nil)

	suite.mockAssignments.EXPECT().
		GetPendingForEnrollment(gomock.Any(), unstarted.ID).
		Return(nil, gorm.ErrRecordNotFound)

	suite.mockAssignments.EXPECT().
		GetPendingForEnrollment(gomock.Any(), orphan.ID).
		Return(&models.SequenceAssignment{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)
	suite.mockContacts.EXPECT().
		GetByID(gomock.Any(), suite.orgID, orphan.TargetID).
		Return(nil, gorm.ErrRecordNotFound)

	suite.mockSequences.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, plan repository.PublishPlan) (*repository.PublishResult, error) {
			assert.Equal(suite.T(), models.OnPublishMigrate, plan.Strategy)
			assert.Equal(suite.T(), actor.UserID, plan.PublishedBy)
			assert.Equal(suite.T(), []uuid.UUID{orphan.ID}, plan.Terminate)
			require.Len(suite.T(), plan.Migrate, 2)

			assert.Equal(suite.T(), beyond.ID, plan.Migrate[0].EnrollmentID)
			assert.Equal(suite.T(), 2, plan.Migrate[0].Position)
			assert.Equal(suite.T(), version.Steps[1].ID, plan.Migrate[0].StepID)
			require.NotNil(suite.T(), plan.Migrate[0].AssignmentID)
			assert.Equal(suite.T(), pendingID, *plan.Migrate[0].AssignmentID)
			assert.Equal(suite.T(), ownerID, plan.Migrate[0].AssigneeID)

			assert.Equal(suite.T(), unstarted.ID, plan.Migrate[1].EnrollmentID)
			assert.Equal(suite.T(), 1, plan.Migrate[1].Position)
			assert.Nil(suite.T(), plan.Migrate[1].AssignmentID)
			return &repository.PublishResult{
				Migrated:   []uuid.UUID{beyond.ID, unstarted.ID},
				Terminated: plan.Terminate,
			}, nil
		})
	suite.mockSequences.EXPECT().GetVersionByID(gomock.Any(), version.ID).Return(version, nil)
	suite.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.NotifyInput) error {
			assert.Equal(suite.T(), sequence.CreatedBy, in.UserID)
			assert.Equal(suite.T(), models.NotificationTypeSequencePublished, in.Type)
			return nil
		})

	resp, err := suite.service.Publish(suite.ctx, actor, version.ID, &service.PublishRequest{OnPublish: models.OnPublishMigrate})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "migrate", resp.Strategy)
	assert.Equal(suite.T(), 1, resp.Terminated)
	assert.Equal(suite.T(), 2, resp.Migrated)
}

func (suite *SequenceServiceTestSuite) TestPublishReportsClashedMigrationAsTerminated() {
	sequence, version := suite.draft(1)
	actor := newActor(suite.orgID, models.MembershipRoleOrg)
	first := models.SequenceEnrollment{BaseModel: models.BaseModel{ID: uuid.New()}, CurrentPosition: 1}
	clashing := models.SequenceEnrollment{BaseModel: models.BaseModel{ID: uuid.New()}, CurrentPosition: 1}

	suite.expectVersion(sequence, version)
	suite.mockEnrollments.EXPECT().
		ListLiveOutsideVersion(gomock.Any(), sequence.ID, version.ID).
		Return([]models.SequenceEnrollment{first, clashing}, nil)
	suite.mockAssignments.EXPECT().
		GetPendingForEnrollment(gomock.Any(), gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).Times(2)
	suite.mockSequences.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, plan repository.PublishPlan) (*repository.PublishResult, error) {
			require.Len(suite.T(), plan.Migrate, 2)
			assert.Empty(suite.T(), plan.Terminate)
			// the second enrollment already has a twin on the new version
			return &repository.PublishResult{
				Migrated:   []uuid.UUID{first.ID},
				Terminated: []uuid.UUID{clashing.ID},
			}, nil
		})
	suite.mockSequences.EXPECT().GetVersionByID(gomock.Any(), version.ID).Return(version, nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Publish(suite.ctx, actor, version.ID, &service.PublishRequest{OnPublish: models.OnPublishMigrate})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Migrated)
	assert.Equal(suite.T(), 1, resp.Terminated)
}

func TestSequenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceServiceTestSuite))
}
