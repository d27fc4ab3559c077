package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/config"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/repository"
	"github.com/sellerhub/backoffice-api/internal/service/adplatform"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

// stateTTL bounds how long an OAuth dance may take between initiate and
// callback.
const stateTTL = 10 * time.Minute

//go:generate mockery --name FacebookAPI --output ../mocks
type FacebookAPI interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*adplatform.Token, error)
	AdAccounts(ctx context.Context, accessToken string) ([]adplatform.AdAccount, error)
}

//go:generate mockery --name GoogleAPI --output ../mocks
type GoogleAPI interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*adplatform.Token, error)
	RefreshToken(ctx context.Context, refreshToken string) (*adplatform.Token, error)
}

// IntegrationService owns the ad-platform OAuth lifecycle. The state token
// issued on initiate is stored in Redis and identifies the user when the
// provider redirects back, since the callback carries no bearer token.
type IntegrationService struct {
	repo     repository.Repository
	redis    *redis.Client
	facebook FacebookAPI
	google   GoogleAPI
	fbCfg    config.OAuthProviderConfig
	gCfg     config.OAuthProviderConfig
	log      *logger.Logger
}

func NewIntegrationService(
	repo repository.Repository,
	redisClient *redis.Client,
	facebook FacebookAPI,
	google GoogleAPI,
	fbCfg, gCfg config.OAuthProviderConfig,
	log *logger.Logger,
) *IntegrationService {
	return &IntegrationService{
		repo:     repo,
		redis:    redisClient,
		facebook: facebook,
		google:   google,
		fbCfg:    fbCfg,
		gCfg:     gCfg,
		log:      log,
	}
}

// InitiateOAuth issues a one-time state bound to the user and returns the
// provider URL to redirect them to.
func (s *IntegrationService) InitiateOAuth(ctx context.Context, userID int64, provider domain.AdProvider) (string, error) {
	state, err := generateState()
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}

	if err := s.redis.Set(ctx, stateKey(state), userID, stateTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}

	switch provider {
	case domain.AdProviderFacebook:
		return s.facebook.AuthorizationURL(state), nil
	case domain.AdProviderGoogle:
		return s.google.AuthorizationURL(state), nil
	}
	return "", domain.NewValidationError("provider", "provider must be google_ads or facebook_ads")
}

// HandleCallback resolves the state back to a user, exchanges the code and
// upserts the (user, provider) integration.
func (s *IntegrationService) HandleCallback(ctx context.Context, provider domain.AdProvider, code, state string) (*dto.IntegrationResponse, error) {
	userID, err := s.consumeState(ctx, state)
	if err != nil {
		return nil, err
	}

	var (
		token *adplatform.Token
		cfg   config.OAuthProviderConfig
	)
	switch provider {
	case domain.AdProviderFacebook:
		token, err = s.facebook.ExchangeCode(ctx, code)
		cfg = s.fbCfg
	case domain.AdProviderGoogle:
		token, err = s.google.ExchangeCode(ctx, code)
		cfg = s.gCfg
	default:
		return nil, domain.NewValidationError("provider", "provider must be google_ads or facebook_ads")
	}
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	integration := domain.NewAdIntegration(userID, provider, cfg.ClientID, cfg.ClientSecret,
		token.AccessToken, token.RefreshToken, token.ExpiresAt)
	saved, err := s.repo.AdIntegration().Save(ctx, integration)
	if err != nil {
		return nil, fmt.Errorf("failed to save integration: %w", err)
	}

	s.log.Infof("Saved %s integration for user %d", provider, userID)
	return dto.FromAdIntegration(saved), nil
}

func (s *IntegrationService) Get(ctx context.Context, userID int64, provider domain.AdProvider) (*dto.IntegrationResponse, error) {
	integration, err := s.repo.AdIntegration().GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to look up integration: %w", err)
	}
	if integration == nil {
		return nil, ErrIntegrationNotFound
	}
	return dto.FromAdIntegration(integration), nil
}

func (s *IntegrationService) Delete(ctx context.Context, userID int64, provider domain.AdProvider) error {
	integration, err := s.repo.AdIntegration().GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return fmt.Errorf("failed to look up integration: %w", err)
	}
	if integration == nil {
		return ErrIntegrationNotFound
	}
	return s.repo.AdIntegration().Delete(ctx, integration.ID)
}

// AccessToken returns a usable access token for the provider, refreshing a
// Google token transparently when it has expired. An expired Facebook token
// cannot be refreshed server-side and marks the integration errored.
func (s *IntegrationService) AccessToken(ctx context.Context, userID int64, provider domain.AdProvider) (string, error) {
	integration, err := s.repo.AdIntegration().GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		return "", fmt.Errorf("failed to look up integration: %w", err)
	}
	if integration == nil {
		return "", ErrIntegrationNotFound
	}

	if !integration.IsExpired(time.Now()) {
		return integration.AccessToken, nil
	}

	if provider == domain.AdProviderGoogle && integration.RefreshToken != "" {
		token, err := s.google.RefreshToken(ctx, integration.RefreshToken)
		if err != nil {
			integration.MarkError()
			if updateErr := s.repo.AdIntegration().Update(ctx, integration); updateErr != nil {
				s.log.Errorf("Failed to mark integration %d errored: %v", integration.ID, updateErr)
			}
			return "", fmt.Errorf("token refresh failed: %w", err)
		}

		integration.RotateTokens(token.AccessToken, token.RefreshToken, token.ExpiresAt)
		if err := s.repo.AdIntegration().Update(ctx, integration); err != nil {
			return "", fmt.Errorf("failed to persist rotated tokens: %w", err)
		}
		return integration.AccessToken, nil
	}

	integration.MarkError()
	if err := s.repo.AdIntegration().Update(ctx, integration); err != nil {
		s.log.Errorf("Failed to mark integration %d errored: %v", integration.ID, err)
	}
	return "", ErrIntegrationExpired
}

// FacebookAdAccounts lists the ad accounts reachable with the user's
// Facebook integration.
func (s *IntegrationService) FacebookAdAccounts(ctx context.Context, userID int64) ([]dto.AdAccountResponse, error) {
	token, err := s.AccessToken(ctx, userID, domain.AdProviderFacebook)
	if err != nil {
		return nil, err
	}

	accounts, err := s.facebook.AdAccounts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ad accounts: %w", err)
	}

	responses := make([]dto.AdAccountResponse, len(accounts))
	for i, acc := range accounts {
		responses[i] = dto.AdAccountResponse{
			ID:        acc.ID,
			AccountID: acc.AccountID,
			Name:      acc.Name,
			Status:    acc.Status,
			Currency:  acc.Currency,
		}
	}
	return responses, nil
}

func (s *IntegrationService) consumeState(ctx context.Context, state string) (int64, error) {
	if state == "" {
		return 0, ErrInvalidOAuthState
	}

	key := stateKey(state)
	userID, err := s.redis.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, ErrInvalidOAuthState
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up oauth state: %w", err)
	}

	if err := s.redis.Del(ctx, key).Err(); err != nil {
		s.log.Errorf("Failed to delete oauth state %s: %v", state, err)
	}
	return userID, nil
}

func stateKey(state string) string {
	return "oauth:state:" + state
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
