package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/backoffice-api/internal/domain"
)

func testTokenService() *TokenService {
	return NewTokenService(
		"0123456789abcdef0123456789abcdef",
		"fedcba9876543210fedcba9876543210",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func testUser() *domain.User {
	roleID := int64(2)
	return &domain.User{
		ID:     42,
		Email:  domain.RestoreEmail("user@example.com"),
		RoleID: &roleID,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testTokenService()
	user := testUser()

	token, err := svc.GenerateAccessToken(user, "gestor")
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "gestor", claims.Role)
	require.NotNil(t, claims.RoleID)
	assert.Equal(t, int64(2), *claims.RoleID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestAccessAndRefreshSecretsAreSeparate(t *testing.T) {
	svc := testTokenService()
	user := testUser()

	access, err := svc.GenerateAccessToken(user, "")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(user, "")
	require.NoError(t, err)

	// A token verified against the wrong secret must be rejected.
	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := testTokenService()

	_, err := svc.VerifyAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyRefreshToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService(
		"0123456789abcdef0123456789abcdef",
		"fedcba9876543210fedcba9876543210",
		-time.Minute,
		-time.Minute,
	)

	token, err := svc.GenerateAccessToken(testUser(), "")
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashService(t *testing.T) {
	h := NewHashService(4) // minimal cost keeps the test fast

	hash, err := h.Hash("Password123")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, h.Compare("Password123", hash))
	assert.False(t, h.Compare("password123", hash))
	assert.False(t, h.Compare("Password123", "not-a-hash"))
}
