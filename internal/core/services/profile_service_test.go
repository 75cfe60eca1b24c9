package services_test

import (
	"context"
	"testing"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/core/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ProfileServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProfileRepository
	service  portssvc.ProfileSvcFacade
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProfileRepository)
	cfg := &config.Config{
		BusinessName:     "TYPO",
		BusinessSubtitle: "Apparel Co.",
		DefaultTheme:     "dark",
	}
	suite.service = services.NewProfileService(suite.mockRepo, cfg)
}

// --- Test Cases ---

func (suite *ProfileServiceTestSuite) TestGetProfile_DefaultBeforeFirstSave() {
	ctx := context.Background()
	suite.mockRepo.On("GetProfile", ctx).Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.GetProfile(ctx)

	suite.Require().NoError(err)
	suite.Equal("TYPO", profile.Name)
	suite.Equal("Apparel Co.", profile.Subtitle)
	// The default is served, not persisted.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProfile", mock.Anything, mock.Anything)
}

func (suite *ProfileServiceTestSuite) TestGetProfile_StoredWins() {
	ctx := context.Background()
	stored := &domain.BusinessProfile{Name: "Renamed Studio"}
	suite.mockRepo.On("GetProfile", ctx).Return(stored, nil).Once()

	profile, err := suite.service.GetProfile(ctx)

	suite.Require().NoError(err)
	suite.Equal("Renamed Studio", profile.Name)
}

func (suite *ProfileServiceTestSuite) TestUpdateProfile_Saves() {
	ctx := context.Background()
	req := dto.UpdateProfileRequest{Name: "TYPO", Subtitle: "Streetwear", Owner: "Mg Mg"}

	suite.mockRepo.On("SaveProfile", ctx, mock.MatchedBy(func(p domain.BusinessProfile) bool {
		return p.Name == "TYPO" && p.Subtitle == "Streetwear" && p.Owner == "Mg Mg"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Streetwear", updated.Subtitle)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProfileServiceTestSuite) TestUpdateProfile_RequiresName() {
	ctx := context.Background()

	updated, err := suite.service.UpdateProfile(ctx, dto.UpdateProfileRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
}

func (suite *ProfileServiceTestSuite) TestGetTheme_DefaultBeforeFirstSave() {
	ctx := context.Background()
	suite.mockRepo.On("GetTheme", ctx).Return("", apperrors.ErrNotFound).Once()

	theme, err := suite.service.GetTheme(ctx)

	suite.Require().NoError(err)
	suite.Equal("dark", theme)
}

func (suite *ProfileServiceTestSuite) TestSetTheme_Saves() {
	ctx := context.Background()
	suite.mockRepo.On("SaveTheme", ctx, "light").Return(nil).Once()

	err := suite.service.SetTheme(ctx, "light")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
