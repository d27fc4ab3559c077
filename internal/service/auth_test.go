package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/mocks"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo  *mocks.Repository
	mockUsers *mocks.UserRepository
	mockRoles *mocks.RoleRepository
	hash      *auth.HashService
	tokens    *auth.TokenService
	service   *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUsers = new(mocks.UserRepository)
	s.mockRoles = new(mocks.RoleRepository)

	s.mockRepo.On("User").Return(s.mockUsers)
	s.mockRepo.On("Role").Return(s.mockRoles)

	s.hash = auth.NewHashService(4) // min cost keeps the suite fast
	s.tokens = auth.NewTokenService(
		"test-access-secret-test-access-secret",
		"test-refresh-secret-test-refresh-sec",
		15*time.Minute, 7*24*time.Hour)

	s.service = NewAuthService(s.mockRepo, s.hash, s.tokens, logger.NewNop())
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) storedUser(plainPassword string) *domain.User {
	email, err := domain.NewEmail("maria@example.com")
	s.Require().NoError(err)
	hashed, err := s.hash.Hash(plainPassword)
	s.Require().NoError(err)

	user := domain.NewUser("Maria Silva", email, domain.PasswordFromHash(hashed), nil)
	user.ID = 7
	return user
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Maria Silva", Email: "maria@example.com", Password: "Strongpass1"}

	gestorRole := domain.NewRole(domain.RoleGestor)
	gestorRole.ID = 2

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)
	s.mockRoles.On("GetByName", ctx, domain.RoleGestor).Return(gestorRole, nil)
	s.mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Return(func(_ context.Context, u *domain.User) *domain.User {
			u.ID = 7
			return u
		}, nil)

	resp, err := s.service.Register(ctx, req)

	s.NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.NotEmpty(resp.RefreshToken)
	s.Equal("maria@example.com", resp.User.Email)
	s.Equal(domain.RoleGestor, resp.User.Role)

	created := s.mockUsers.Calls[1].Arguments.Get(1).(*domain.User)
	s.NotEqual("Strongpass1", created.Password.Value(), "password must be stored hashed")
}

func (s *AuthServiceTestSuite) TestRegister_EmailTaken() {
	ctx := context.Background()

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(s.storedUser("whatever1"), nil)

	_, err := s.service.Register(ctx, dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "Strongpass1"})
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *AuthServiceTestSuite) TestRegister_RejectsInvalidEmail() {
	_, err := s.service.Register(context.Background(), dto.RegisterRequest{Name: "Maria", Email: "not-an-email", Password: "Strongpass1"})

	var vErr *domain.ValidationError
	s.ErrorAs(err, &vErr)
}

func (s *AuthServiceTestSuite) TestRegister_RejectsWeakPassword() {
	// no uppercase letter
	_, err := s.service.Register(context.Background(), dto.RegisterRequest{Name: "Maria", Email: "maria@example.com", Password: "strongpass1"})

	var vErr *domain.ValidationError
	s.ErrorAs(err, &vErr)
	s.mockUsers.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := s.storedUser("Strongpass1")

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(user, nil)

	resp, err := s.service.Login(ctx, dto.LoginRequest{Email: "maria@example.com", Password: "Strongpass1"})

	s.NoError(err)
	s.NotEmpty(resp.AccessToken)

	claims, err := s.tokens.VerifyAccessToken(resp.AccessToken)
	s.NoError(err)
	userID, err := claims.UserID()
	s.NoError(err)
	s.Equal(int64(7), userID)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPasswordAndUnknownEmailLookAlike() {
	ctx := context.Background()

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(s.storedUser("Strongpass1"), nil).Once()
	_, wrongPassErr := s.service.Login(ctx, dto.LoginRequest{Email: "maria@example.com", Password: "wrong-pass"})

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(nil, nil).Once()
	s.mockUsers.On("GetByEmailIncludingDeleted", ctx, mock.Anything).Return(nil, nil).Once()
	_, unknownErr := s.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "Strongpass1"})

	s.ErrorIs(wrongPassErr, ErrInvalidCredentials)
	s.ErrorIs(unknownErr, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_DeactivatedAccount() {
	ctx := context.Background()
	user := s.storedUser("Strongpass1")
	user.SoftDelete()

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)
	s.mockUsers.On("GetByEmailIncludingDeleted", ctx, mock.Anything).Return(user, nil)

	_, err := s.service.Login(ctx, dto.LoginRequest{Email: "maria@example.com", Password: "Strongpass1"})
	s.ErrorIs(err, ErrAccountDeactivated)
}

func (s *AuthServiceTestSuite) TestRefresh_Success() {
	ctx := context.Background()
	user := s.storedUser("Strongpass1")

	refreshToken, err := s.tokens.GenerateRefreshToken(user, "")
	s.Require().NoError(err)

	s.mockUsers.On("GetByID", ctx, int64(7)).Return(user, nil)

	resp, err := s.service.Refresh(ctx, dto.RefreshRequest{RefreshToken: refreshToken})
	s.NoError(err)
	s.NotEmpty(resp.AccessToken)
}

func (s *AuthServiceTestSuite) TestRefresh_RejectsGarbageToken() {
	_, err := s.service.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: "garbage"})
	s.ErrorIs(err, ErrInvalidRefreshToken)
}

func (s *AuthServiceTestSuite) TestRefresh_RejectsAccessTokenAsRefresh() {
	user := s.storedUser("Strongpass1")

	accessToken, err := s.tokens.GenerateAccessToken(user, "")
	s.Require().NoError(err)

	_, err = s.service.Refresh(context.Background(), dto.RefreshRequest{RefreshToken: accessToken})
	s.ErrorIs(err, ErrInvalidRefreshToken)
}

func (s *AuthServiceTestSuite) TestRefresh_DeletedUserCannotRefresh() {
	ctx := context.Background()
	user := s.storedUser("Strongpass1")

	refreshToken, err := s.tokens.GenerateRefreshToken(user, "")
	s.Require().NoError(err)

	s.mockUsers.On("GetByID", ctx, int64(7)).Return(nil, nil)

	_, err = s.service.Refresh(ctx, dto.RefreshRequest{RefreshToken: refreshToken})
	s.ErrorIs(err, ErrInvalidRefreshToken)
}

func (s *AuthServiceTestSuite) TestMe_NotFound() {
	ctx := context.Background()

	s.mockUsers.On("GetByID", ctx, int64(99)).Return(nil, nil)

	_, err := s.service.Me(ctx, 99)
	s.ErrorIs(err, ErrUserNotFound)
}
