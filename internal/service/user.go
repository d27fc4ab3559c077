package service

import (
	"context"
	"fmt"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/repository"
	"github.com/sellerhub/backoffice-api/pkg/utils"
)

// UserService backs the admin-only user management endpoints.
type UserService struct {
	repo repository.Repository
	hash *auth.HashService
}

func NewUserService(repo repository.Repository, hash *auth.HashService) *UserService {
	return &UserService{repo: repo, hash: hash}
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
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

	if req.RoleID != nil {
		role, err := s.repo.Role().GetByID(ctx, *req.RoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to load role: %w", err)
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
	}

	hashed, err := s.hash.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(req.Name, email, domain.PasswordFromHash(hashed), req.RoleID)
	created, err := s.repo.User().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return dto.FromUser(created), nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return dto.FromUser(user), nil
}

// Update applies a partial patch; absent fields are left untouched. A new
// email must not collide with another account.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		user.Rename(*req.Name)
	}
	if req.Email != nil {
		email, err := domain.NewEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if !user.Email.Equals(email) {
			taken, err := s.repo.User().GetByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if taken != nil && taken.ID != user.ID {
				return nil, ErrEmailAlreadyExists
			}
			user.ChangeEmail(email)
		}
	}
	if req.Password != nil {
		if _, err := domain.NewPassword(*req.Password); err != nil {
			return nil, err
		}
		hashed, err := s.hash.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.ChangePassword(domain.PasswordFromHash(hashed))
	}
	if req.RoleID != nil {
		role, err := s.repo.Role().GetByID(ctx, *req.RoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to load role: %w", err)
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
		user.AssignRole(role.ID)
	}

	updated, err := s.repo.User().Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return dto.FromUser(updated), nil
}

// Delete deactivates the account. The row survives as soft-deleted and stops
// matching every regular query.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.repo.User().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) List(ctx context.Context, q dto.ListUsersQuery) ([]dto.UserResponse, utils.Pagination, error) {
	page := utils.NewPageQuery(q.Page, q.Limit)

	users, total, err := s.repo.User().List(ctx, domain.UserFilter{
		Search: q.Search,
		RoleID: q.RoleID,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to list users: %w", err)
	}

	return dto.FromUsers(users), utils.BuildPaginate(total, page.Page, page.Limit), nil
}
