package service_test

import (
	"context"
	"sort"
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

// PreferenceServiceTestSuite defines the test suite for PreferenceService
type PreferenceServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockPreferenceRepositoryInterface
	service  *service.PreferenceService
	actor    *service.Actor
	ctx      context.Context
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPreferenceRepositoryInterface(suite.ctrl)
	suite.service = service.NewPreferenceService(suite.mockRepo, service.NewValidator())
	suite.actor = &service.Actor{UserID: uuid.New(), Email: "jane@example.com"}
	suite.ctx = context.Background()
}

func (suite *PreferenceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PreferenceServiceTestSuite) TestGetDefaults() {
	suite.mockRepo.EXPECT().Get(gomock.Any(), suite.actor.UserID).Return(nil, gorm.ErrRecordNotFound)

	prefs, err := suite.service.Get(suite.ctx, suite.actor)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), prefs.WeeklyDigest)
	assert.Equal(suite.T(), "UTC", prefs.Timezone)
	assert.Equal(suite.T(), "en_US", prefs.Locale)
	assert.Nil(suite.T(), prefs.LastDigestSentAt)
}

func (suite *PreferenceServiceTestSuite) TestUpdateRejectsInvalidTimezone() {
	for _, tz := range []string{"Mars/Olympus", "", "Local"} {
		suite.Run(tz, func() {
			suite.mockRepo.EXPECT().Get(gomock.Any(), suite.actor.UserID).Return(nil, gorm.ErrRecordNotFound)

			_, err := suite.service.Update(suite.ctx, suite.actor, &service.UpdatePreferencesRequest{Timezone: &tz})

			assert.True(suite.T(), apperrors.IsValidation(err))
		})
	}
}

func (suite *PreferenceServiceTestSuite) TestUpdateRejectsUnsupportedLocale() {
	locale := "xx_YY"
	suite.mockRepo.EXPECT().Get(gomock.Any(), suite.actor.UserID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, suite.actor, &service.UpdatePreferencesRequest{Locale: &locale})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *PreferenceServiceTestSuite) TestUpdateMergesIntoStoredPreferences() {
	stored := &models.UserPreference{
		UserID:   suite.actor.UserID,
		Email:    "old@example.com",
		Timezone: "Europe/Paris",
		Locale:   "fr_FR",
	}
	optIn := true
	tz := "Europe/Berlin"

	suite.mockRepo.EXPECT().Get(gomock.Any(), suite.actor.UserID).Return(stored, nil)
	suite.mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pref *models.UserPreference) error {
			assert.Equal(suite.T(), "jane@example.com", pref.Email)
			assert.Equal(suite.T(), "fr_FR", pref.Locale)
			return nil
		})

	prefs, err := suite.service.Update(suite.ctx, suite.actor, &service.UpdatePreferencesRequest{
		WeeklyDigest: &optIn,
		Timezone:     &tz,
	})

	require.NoError(suite.T(), err)
	assert.True(suite.T(), prefs.WeeklyDigest)
	assert.Equal(suite.T(), "Europe/Berlin", prefs.Timezone)
	assert.Equal(suite.T(), "fr_FR", prefs.Locale)
}

func TestSupportedLocalesSorted(t *testing.T) {
	assert.True(t, sort.StringsAreSorted(service.SupportedLocales))
	assert.True(t, service.IsSupportedLocale("de_DE"))
	assert.False(t, service.IsSupportedLocale("de"))
}

func TestPreferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}
