package domain

import "time"

type AdProvider string

const (
	AdProviderGoogle   AdProvider = "google_ads"
	AdProviderFacebook AdProvider = "facebook_ads"
)

func ParseAdProvider(s string) (AdProvider, error) {
	switch AdProvider(s) {
	case AdProviderGoogle, AdProviderFacebook:
		return AdProvider(s), nil
	}
	return "", NewValidationError("provider", "provider must be google_ads or facebook_ads")
}

type IntegrationStatus string

const (
	IntegrationStatusActive   IntegrationStatus = "active"
	IntegrationStatusInactive IntegrationStatus = "inactive"
	IntegrationStatusError    IntegrationStatus = "error"
)

// AdIntegration stores OAuth credentials for one (user, provider) pair.
// The pair is unique at the store level.
type AdIntegration struct {
	ID           int64
	UserID       int64
	Provider     AdProvider
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
	Status       IntegrationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewAdIntegration(userID int64, provider AdProvider, clientID, clientSecret, accessToken, refreshToken string, expiresAt *time.Time) *AdIntegration {
	now := time.Now()
	return &AdIntegration{
		UserID:       userID,
		Provider:     provider,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Status:       IntegrationStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RotateTokens replaces the token pair after a refresh and reactivates the
// integration.
func (i *AdIntegration) RotateTokens(accessToken, refreshToken string, expiresAt *time.Time) {
	i.AccessToken = accessToken
	if refreshToken != "" {
		i.RefreshToken = refreshToken
	}
	i.ExpiresAt = expiresAt
	i.Status = IntegrationStatusActive
	i.UpdatedAt = time.Now()
}

func (i *AdIntegration) MarkError() {
	i.Status = IntegrationStatusError
	i.UpdatedAt = time.Now()
}

func (i *AdIntegration) IsExpired(at time.Time) bool {
	return i.ExpiresAt != nil && at.After(*i.ExpiresAt)
}
