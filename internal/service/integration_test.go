package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/mocks"
	"github.com/sellerhub/backoffice-api/internal/service/adplatform"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

type IntegrationServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockIntegrations *mocks.AdIntegrationRepository
	mockFacebook     *mocks.FacebookAPI
	mockGoogle       *mocks.GoogleAPI
	service          *IntegrationService
}

func (s *IntegrationServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockIntegrations = new(mocks.AdIntegrationRepository)
	s.mockFacebook = new(mocks.FacebookAPI)
	s.mockGoogle = new(mocks.GoogleAPI)

	s.mockRepo.On("AdIntegration").Return(s.mockIntegrations)

	fbCfg := config.OAuthProviderConfig{ClientID: "fb-app", ClientSecret: "fb-secret"}
	gCfg := config.OAuthProviderConfig{ClientID: "g-app", ClientSecret: "g-secret"}
	s.service = NewIntegrationService(s.mockRepo, nil, s.mockFacebook, s.mockGoogle, fbCfg, gCfg, logger.NewNop())
}

func TestIntegrationService(t *testing.T) {
	suite.Run(t, new(IntegrationServiceTestSuite))
}

func testIntegration(provider domain.AdProvider, expiresAt *time.Time) *domain.AdIntegration {
	integration := domain.NewAdIntegration(42, provider, "app", "secret", "live-token", "refresh-token", expiresAt)
	integration.ID = 3
	return integration
}

func timePtr(t time.Time) *time.Time { return &t }

func (s *IntegrationServiceTestSuite) TestAccessToken_ValidTokenReturnedAsIs() {
	ctx := context.Background()
	expiry := timePtr(time.Now().Add(time.Hour))

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderFacebook).
		Return(testIntegration(domain.AdProviderFacebook, expiry), nil)

	token, err := s.service.AccessToken(ctx, 42, domain.AdProviderFacebook)

	s.NoError(err)
	s.Equal("live-token", token)
}

func (s *IntegrationServiceTestSuite) TestAccessToken_NotFound() {
	ctx := context.Background()

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderGoogle).Return(nil, nil)

	_, err := s.service.AccessToken(ctx, 42, domain.AdProviderGoogle)
	s.ErrorIs(err, ErrIntegrationNotFound)
}

func (s *IntegrationServiceTestSuite) TestAccessToken_ExpiredGoogleTokenRefreshed() {
	ctx := context.Background()
	integration := testIntegration(domain.AdProviderGoogle, timePtr(time.Now().Add(-time.Minute)))
	newExpiry := timePtr(time.Now().Add(time.Hour))

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderGoogle).Return(integration, nil)
	s.mockGoogle.On("RefreshToken", ctx, "refresh-token").
		Return(&adplatform.Token{AccessToken: "rotated-token", ExpiresAt: newExpiry}, nil)
	s.mockIntegrations.On("Update", ctx, integration).Return(nil)

	token, err := s.service.AccessToken(ctx, 42, domain.AdProviderGoogle)

	s.NoError(err)
	s.Equal("rotated-token", token)
	s.Equal("refresh-token", integration.RefreshToken, "refresh token kept when provider omits a new one")
	s.Equal(domain.IntegrationStatusActive, integration.Status)
	s.mockIntegrations.AssertExpectations(s.T())
}

func (s *IntegrationServiceTestSuite) TestAccessToken_GoogleRefreshFailureMarksError() {
	ctx := context.Background()
	integration := testIntegration(domain.AdProviderGoogle, timePtr(time.Now().Add(-time.Minute)))

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderGoogle).Return(integration, nil)
	s.mockGoogle.On("RefreshToken", ctx, "refresh-token").Return(nil, errors.New("invalid_grant"))
	s.mockIntegrations.On("Update", ctx, integration).Return(nil)

	_, err := s.service.AccessToken(ctx, 42, domain.AdProviderGoogle)

	s.Error(err)
	s.Equal(domain.IntegrationStatusError, integration.Status)
}

func (s *IntegrationServiceTestSuite) TestAccessToken_ExpiredFacebookTokenCannotRefresh() {
	ctx := context.Background()
	integration := testIntegration(domain.AdProviderFacebook, timePtr(time.Now().Add(-time.Minute)))

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderFacebook).Return(integration, nil)
	s.mockIntegrations.On("Update", ctx, integration).Return(nil)

	_, err := s.service.AccessToken(ctx, 42, domain.AdProviderFacebook)

	s.ErrorIs(err, ErrIntegrationExpired)
	s.Equal(domain.IntegrationStatusError, integration.Status)
}

func (s *IntegrationServiceTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderFacebook).Return(nil, nil)

	_, err := s.service.Get(ctx, 42, domain.AdProviderFacebook)
	s.ErrorIs(err, ErrIntegrationNotFound)
}

func (s *IntegrationServiceTestSuite) TestGet_OmitsSecrets() {
	ctx := context.Background()

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderFacebook).
		Return(testIntegration(domain.AdProviderFacebook, nil), nil)

	resp, err := s.service.Get(ctx, 42, domain.AdProviderFacebook)

	s.NoError(err)
	s.Equal("facebook_ads", resp.Provider)
	s.Equal("active", resp.Status)
}

func (s *IntegrationServiceTestSuite) TestDelete_Success() {
	ctx := context.Background()

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderGoogle).
		Return(testIntegration(domain.AdProviderGoogle, nil), nil)
	s.mockIntegrations.On("Delete", ctx, int64(3)).Return(nil)

	s.NoError(s.service.Delete(ctx, 42, domain.AdProviderGoogle))
	s.mockIntegrations.AssertExpectations(s.T())
}

func (s *IntegrationServiceTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderGoogle).Return(nil, nil)

	s.ErrorIs(s.service.Delete(ctx, 42, domain.AdProviderGoogle), ErrIntegrationNotFound)
}

func (s *IntegrationServiceTestSuite) TestFacebookAdAccounts_Success() {
	ctx := context.Background()

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderFacebook).
		Return(testIntegration(domain.AdProviderFacebook, nil), nil)
	s.mockFacebook.On("AdAccounts", ctx, "live-token").
		Return([]adplatform.AdAccount{{ID: "act_123", AccountID: "123", Name: "Main Store", Status: 1, Currency: "BRL"}}, nil)

	accounts, err := s.service.FacebookAdAccounts(ctx, 42)

	s.NoError(err)
	s.Len(accounts, 1)
	s.Equal("act_123", accounts[0].ID)
	s.Equal("Main Store", accounts[0].Name)
}

func (s *IntegrationServiceTestSuite) TestFacebookAdAccounts_NoIntegration() {
	ctx := context.Background()

	s.mockIntegrations.On("GetByUserAndProvider", ctx, int64(42), domain.AdProviderFacebook).Return(nil, nil)

	_, err := s.service.FacebookAdAccounts(ctx, 42)

	s.ErrorIs(err, ErrIntegrationNotFound)
	s.mockFacebook.AssertNotCalled(s.T(), "AdAccounts", mock.Anything, mock.Anything)
}
