package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/repository"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

type AuthService struct {
	repo   repository.Repository
	hash   *auth.HashService
	tokens *auth.TokenService
	log    *logger.Logger
}

func NewAuthService(repo repository.Repository, hash *auth.HashService, tokens *auth.TokenService, log *logger.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		hash:   hash,
		tokens: tokens,
		log:    log,
	}
}

// Register creates a self-service account with the default gestor role and
// returns a token pair so the new user is logged in immediately.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if _, err := domain.NewPassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := s.hash.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var roleID *int64
	roleName := ""
	if role, err := s.repo.Role().GetByName(ctx, domain.RoleGestor); err != nil {
		return nil, fmt.Errorf("failed to load default role: %w", err)
	} else if role != nil {
		roleID = &role.ID
		roleName = role.Name
	}

	user := domain.NewUser(req.Name, email, domain.PasswordFromHash(hashed), roleID)
	created, err := s.repo.User().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.buildAuthResponse(created, roleName)
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error; a soft-deleted account gets its own
// message so the user knows reactivation is needed.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		deleted, err := s.repo.User().GetByEmailIncludingDeleted(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if deleted != nil && deleted.IsDeleted() {
			return nil, ErrAccountDeactivated
		}
		return nil, ErrInvalidCredentials
	}

	if !s.hash.Compare(req.Password, user.Password.Value()) {
		s.log.Warnf("rejected login attempt for user %d", user.ID)
		return nil, ErrInvalidCredentials
	}

	roleName, err := s.roleName(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.buildAuthResponse(user, roleName)
}

// Refresh exchanges a valid refresh token for a new pair. The user is
// re-checked so deactivated accounts cannot keep refreshing.
func (s *AuthService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error) {
	claims, err := s.tokens.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	roleName, err := s.roleName(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.buildAuthResponse(user, roleName)
}

// Me returns the authenticated user's profile.
func (s *AuthService) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := dto.FromUser(user)
	if roleName, err := s.roleName(ctx, user); err == nil {
		resp.Role = roleName
	}
	return resp, nil
}

// buildAuthResponse issues the access and refresh tokens concurrently.
func (s *AuthService) buildAuthResponse(user *domain.User, roleName string) (*dto.AuthResponse, error) {
	var accessToken, refreshToken string

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		accessToken, err = s.tokens.GenerateAccessToken(user, roleName)
		return err
	})
	g.Go(func() error {
		var err error
		refreshToken, err = s.tokens.GenerateRefreshToken(user, roleName)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	userResp := dto.FromUser(user)
	userResp.Role = roleName
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *userResp,
	}, nil
}

func (s *AuthService) roleName(ctx context.Context, user *domain.User) (string, error) {
	if user.RoleID == nil {
		return "", nil
	}
	role, err := s.repo.Role().GetByID(ctx, *user.RoleID)
	if err != nil {
		return "", fmt.Errorf("failed to load role: %w", err)
	}
	if role == nil {
		return "", nil
	}
	return role.Name, nil
}
