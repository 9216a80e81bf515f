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
)

// SequenceRepositoryTestSuite tests sequences, enrollments and assignments against Postgres
type SequenceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	sequences     *SequenceRepository
	enrollments   *EnrollmentRepository
	assignments   *AssignmentRepository
	orgs          *OrganizationRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	org   *models.Organization
	owner *models.Membership
}

// SetupSuite runs before all tests in the suite
func (suite *SequenceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.sequences = NewSequenceRepository(db)
	suite.enrollments = NewEnrollmentRepository(db)
	suite.assignments = NewAssignmentRepository(db)
	suite.orgs = NewOrganizationRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *SequenceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SequenceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.owner = suite.factories.Membership.WithOrganization(suite.org.ID, models.MembershipRoleOrg)
	suite.Require().NoError(suite.orgs.CreateWithOwner(suite.ctx, suite.org, suite.owner))
}

// TearDownTest runs after each test
func (suite *SequenceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createDraft creates a sequence whose draft version has n steps
func (suite *SequenceRepositoryTestSuite) createDraft(n int) (*models.Sequence, *models.SequenceVersion) {
	seq := suite.factories.Sequence.WithOrganization(suite.org.ID)
	draft := suite.factories.Sequence.Version(uuid.Nil, 1)
	suite.Require().NoError(suite.sequences.CreateWithDraft(suite.ctx, seq, draft))

	for i := 1; i <= n; i++ {
		step := suite.factories.Sequence.Step(draft.ID, 0)
		suite.Require().NoError(suite.sequences.InsertStep(suite.ctx, step))
	}
	version, err := suite.sequences.GetVersion(suite.ctx, seq.ID, draft.ID)
	suite.Require().NoError(err)
	return seq, version
}

func (suite *SequenceRepositoryTestSuite) publish(seq *models.Sequence, version *models.SequenceVersion, plan PublishPlan) *PublishResult {
	plan.SequenceID = seq.ID
	plan.VersionID = version.ID
	plan.PublishedBy = suite.owner.UserID
	plan.PublishedAt = time.Now().UTC()
	if plan.Strategy == "" {
		plan.Strategy = models.OnPublishTerminate
	}
	result, err := suite.sequences.Publish(suite.ctx, plan)
	suite.Require().NoError(err)
	return result
}

func (suite *SequenceRepositoryTestSuite) enroll(seq *models.Sequence, version *models.SequenceVersion, targetID uuid.UUID) (*models.SequenceEnrollment, error) {
	enrollment := &models.SequenceEnrollment{
		OrganizationID:  suite.org.ID,
		SequenceID:      seq.ID,
		VersionID:       version.ID,
		TargetType:      models.TargetTypeContact,
		TargetID:        targetID,
		Status:          models.EnrollmentStatusActive,
		CurrentPosition: 1,
		EnrolledBy:      suite.owner.UserID,
	}
	first := &models.SequenceAssignment{
		OrganizationID:       suite.org.ID,
		StepID:               version.Steps[0].ID,
		AssigneeMembershipID: suite.owner.ID,
		Status:               models.AssignmentStatusOpen,
		DueAt:                time.Now().UTC(),
	}
	err := suite.enrollments.Enroll(suite.ctx, enrollment, first)
	return enrollment, err
}

func (suite *SequenceRepositoryTestSuite) positions(version *models.SequenceVersion) map[uuid.UUID]int {
	reloaded, err := suite.sequences.GetVersion(suite.ctx, version.SequenceID, version.ID)
	suite.Require().NoError(err)
	out := make(map[uuid.UUID]int, len(reloaded.Steps))
	for i, s := range reloaded.Steps {
		suite.Equal(i+1, s.Position, "positions must stay dense")
		out[s.ID] = s.Position
	}
	return out
}

// TestInsertAndDeleteKeepPositionsDense tests inserting in the middle and deleting
func (suite *SequenceRepositoryTestSuite) TestInsertAndDeleteKeepPositionsDense() {
	_, version := suite.createDraft(3)

	inserted := suite.factories.Sequence.Step(version.ID, 2)
	suite.NoError(suite.sequences.InsertStep(suite.ctx, inserted))

	positions := suite.positions(version)
	suite.Len(positions, 4)
	suite.Equal(2, positions[inserted.ID])
	suite.Equal(3, positions[version.Steps[1].ID])

	suite.NoError(suite.sequences.DeleteStep(suite.ctx, &version.Steps[0]))
	positions = suite.positions(version)
	suite.Len(positions, 3)
	suite.Equal(1, positions[inserted.ID])
}

// TestReorderSteps tests the two-phase reorder
func (suite *SequenceRepositoryTestSuite) TestReorderSteps() {
	_, version := suite.createDraft(4)

	order := []uuid.UUID{version.Steps[3].ID, version.Steps[1].ID, version.Steps[0].ID, version.Steps[2].ID}
	suite.NoError(suite.sequences.ReorderSteps(suite.ctx, version.ID, order))

	positions := suite.positions(version)
	for i, id := range order {
		suite.Equal(i+1, positions[id])
	}
}

// TestEnrollDedupe tests that the same target cannot be enrolled twice in a version
func (suite *SequenceRepositoryTestSuite) TestEnrollDedupe() {
	seq, version := suite.createDraft(2)
	suite.publish(seq, version, PublishPlan{})

	target := uuid.New()
	_, err := suite.enroll(seq, version, target)
	suite.NoError(err)

	_, err = suite.enroll(seq, version, target)
	suite.True(IsUniqueViolation(err))

	enrollments, err := suite.enrollments.ListBySequence(suite.ctx, seq.ID, "")
	suite.NoError(err)
	suite.Len(enrollments, 1)
}

// TestPublishTerminate tests that terminate closes old enrollments and blocks their assignments
func (suite *SequenceRepositoryTestSuite) TestPublishTerminate() {
	seq, v1 := suite.createDraft(2)
	suite.publish(seq, v1, PublishPlan{})

	enrollment, err := suite.enroll(seq, v1, uuid.New())
	suite.Require().NoError(err)

	v2 := suite.factories.Sequence.Version(seq.ID, 2)
	suite.Require().NoError(suite.sequences.CreateVersionCopy(suite.ctx, v2, v1.Steps))
	suite.publish(seq, v2, PublishPlan{Strategy: models.OnPublishTerminate, Terminate: []uuid.UUID{enrollment.ID}})

	reloaded, err := suite.enrollments.GetByID(suite.ctx, suite.org.ID, enrollment.ID)
	suite.NoError(err)
	suite.Equal(models.EnrollmentStatusTerminated, reloaded.Status)

	blocked, err := suite.assignments.List(suite.ctx, AssignmentFilter{
		OrganizationID: suite.org.ID,
		Status:         models.AssignmentStatusBlocked,
		Now:            time.Now().UTC(),
	})
	suite.NoError(err)
	suite.Len(blocked, 1)
	suite.Equal(string(models.EnrollmentStatusTerminated), blocked[0].ClosedReason)

	seqReloaded, err := suite.sequences.GetByID(suite.ctx, suite.org.ID, seq.ID)
	suite.NoError(err)
	suite.Equal(v2.ID, *seqReloaded.ActiveVersionID)
	suite.Equal(models.VersionStatusSuperseded, seqReloaded.Versions[0].Status)
	suite.Equal(models.VersionStatusPublished, seqReloaded.Versions[1].Status)
}

// TestPublishMigrateClashTerminates tests that a migration hitting the dedupe key terminates instead
func (suite *SequenceRepositoryTestSuite) TestPublishMigrateClashTerminates() {
	seq, v1 := suite.createDraft(2)
	suite.publish(seq, v1, PublishPlan{})

	target := uuid.New()
	onV1, err := suite.enroll(seq, v1, target)
	suite.Require().NoError(err)

	v2 := suite.factories.Sequence.Version(seq.ID, 2)
	suite.Require().NoError(suite.sequences.CreateVersionCopy(suite.ctx, v2, v1.Steps))
	suite.publish(seq, v2, PublishPlan{Strategy: models.OnPublishMigrate})

	v2, err = suite.sequences.GetVersion(suite.ctx, seq.ID, v2.ID)
	suite.Require().NoError(err)
	onV2, err := suite.enroll(seq, v2, target)
	suite.Require().NoError(err)

	v3 := suite.factories.Sequence.Version(seq.ID, 3)
	suite.Require().NoError(suite.sequences.CreateVersionCopy(suite.ctx, v3, v2.Steps))
	v3, err = suite.sequences.GetVersion(suite.ctx, seq.ID, v3.ID)
	suite.Require().NoError(err)

	pending, err := suite.assignments.GetPendingForEnrollment(suite.ctx, onV1.ID)
	suite.Require().NoError(err)
	result := suite.publish(seq, v3, PublishPlan{
		Strategy: models.OnPublishMigrate,
		Migrate: []EnrollmentMigration{
			{EnrollmentID: onV2.ID, Position: 1, StepID: v3.Steps[0].ID, AssigneeID: suite.owner.ID},
			{EnrollmentID: onV1.ID, Position: 1, AssignmentID: &pending.ID, StepID: v3.Steps[0].ID, AssigneeID: suite.owner.ID},
		},
	})

	migrated, err := suite.enrollments.GetByID(suite.ctx, suite.org.ID, onV2.ID)
	suite.NoError(err)
	suite.Equal(v3.ID, migrated.VersionID)
	suite.Equal(models.EnrollmentStatusActive, migrated.Status)

	clashed, err := suite.enrollments.GetByID(suite.ctx, suite.org.ID, onV1.ID)
	suite.NoError(err)
	suite.Equal(v1.ID, clashed.VersionID)
	suite.Equal(models.EnrollmentStatusTerminated, clashed.Status)

	suite.Equal([]uuid.UUID{onV2.ID}, result.Migrated)
	suite.Equal([]uuid.UUID{onV1.ID}, result.Terminated)
}

// TestAdvanceAndSnooze tests completing an assignment and the snooze transitions
func (suite *SequenceRepositoryTestSuite) TestAdvanceAndSnooze() {
	seq, version := suite.createDraft(2)
	suite.publish(seq, version, PublishPlan{})
	enrollment, err := suite.enroll(seq, version, uuid.New())
	suite.Require().NoError(err)

	first, err := suite.assignments.GetPendingForEnrollment(suite.ctx, enrollment.ID)
	suite.Require().NoError(err)

	suite.NoError(suite.assignments.Snooze(suite.ctx, first.ID, time.Now().Add(time.Hour)))
	suite.NoError(suite.assignments.Unsnooze(suite.ctx, first.ID))
	suite.ErrorIs(suite.assignments.Unsnooze(suite.ctx, first.ID), apperrors.ErrInvalidTransition)

	now := time.Now().UTC()
	second := version.Steps[1]
	next := &models.SequenceAssignment{
		OrganizationID:       suite.org.ID,
		EnrollmentID:         enrollment.ID,
		StepID:               second.ID,
		AssigneeMembershipID: suite.owner.ID,
		Status:               models.AssignmentStatusOpen,
		DueAt:                now.Add(second.Delay()),
		Step:                 &second,
	}
	suite.NoError(suite.enrollments.Advance(suite.ctx, first, next, now))
	suite.ErrorIs(suite.enrollments.Advance(suite.ctx, first, nil, now), apperrors.ErrInvalidTransition)

	reloaded, err := suite.enrollments.GetByID(suite.ctx, suite.org.ID, enrollment.ID)
	suite.NoError(err)
	suite.Equal(2, reloaded.CurrentPosition)

	suite.NoError(suite.enrollments.Advance(suite.ctx, next, nil, now))
	reloaded, err = suite.enrollments.GetByID(suite.ctx, suite.org.ID, enrollment.ID)
	suite.NoError(err)
	suite.Equal(models.EnrollmentStatusCompleted, reloaded.Status)
}

// TestSequenceRepositoryTestSuite runs the test suite
func TestSequenceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceRepositoryTestSuite))
}
