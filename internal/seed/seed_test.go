package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/mocks"
)

func seedMocks() (*mocks.Repository, *mocks.RoleRepository, *mocks.UserRepository) {
	repo := new(mocks.Repository)
	roles := new(mocks.RoleRepository)
	users := new(mocks.UserRepository)
	repo.On("Role").Return(roles)
	repo.On("User").Return(users)
	return repo, roles, users
}

func existingRole(name string, id int64) *domain.Role {
	role := domain.NewRole(name)
	role.ID = id
	return role
}

func TestRun_FreshDatabase(t *testing.T) {
	ctx := context.Background()
	repo, roles, users := seedMocks()

	roles.On("GetByName", ctx, domain.RoleAdmin).Return(nil, nil)
	roles.On("GetByName", ctx, domain.RoleGestor).Return(nil, nil)
	roles.On("Create", ctx, mock.AnythingOfType("*domain.Role")).
		Return(func(_ context.Context, r *domain.Role) *domain.Role {
			if r.Name == domain.RoleAdmin {
				r.ID = 1
			} else {
				r.ID = 2
			}
			return r
		}, nil)
	users.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)
	users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email.Value() == "admin@admin.com" && u.RoleID != nil && *u.RoleID == 1
	})).Return(func(_ context.Context, u *domain.User) *domain.User { return u }, nil)

	err := Run(ctx, repo, auth.NewHashService(4), "Admin123")

	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestRun_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo, roles, users := seedMocks()

	roles.On("GetByName", ctx, domain.RoleAdmin).Return(existingRole(domain.RoleAdmin, 1), nil)
	roles.On("GetByName", ctx, domain.RoleGestor).Return(existingRole(domain.RoleGestor, 2), nil)

	adminEmail, _ := domain.NewEmail("admin@admin.com")
	admin := domain.NewUser("Administrator", adminEmail, domain.PasswordFromHash("$2a$04$hash"), nil)
	users.On("GetByEmail", ctx, mock.Anything).Return(admin, nil)

	err := Run(ctx, repo, auth.NewHashService(4), "Admin123")

	require.NoError(t, err)
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRun_RejectsWeakAdminPassword(t *testing.T) {
	ctx := context.Background()
	repo, roles, users := seedMocks()

	roles.On("GetByName", ctx, mock.Anything).Return(existingRole(domain.RoleAdmin, 1), nil)
	users.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)

	err := Run(ctx, repo, auth.NewHashService(4), "weak")

	require.Error(t, err)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
