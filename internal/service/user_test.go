package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo  *mocks.Repository
	mockUsers *mocks.UserRepository
	mockRoles *mocks.RoleRepository
	service   *UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUsers = new(mocks.UserRepository)
	s.mockRoles = new(mocks.RoleRepository)

	s.mockRepo.On("User").Return(s.mockUsers)
	s.mockRepo.On("Role").Return(s.mockRoles)

	s.service = NewUserService(s.mockRepo, auth.NewHashService(4))
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func testUser(id int64) *domain.User {
	email, _ := domain.NewEmail("maria@example.com")
	user := domain.NewUser("Maria Silva", email, domain.PasswordFromHash("$2a$04$hash"), nil)
	user.ID = id
	return user
}

func (s *UserServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	roleID := int64(2)
	req := dto.CreateUserRequest{Name: "Maria Silva", Email: "maria@example.com", Password: "Strongpass1", RoleID: &roleID}

	gestorRole := domain.NewRole(domain.RoleGestor)
	gestorRole.ID = roleID

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)
	s.mockRoles.On("GetByID", ctx, roleID).Return(gestorRole, nil)
	s.mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Return(func(_ context.Context, u *domain.User) *domain.User {
			u.ID = 7
			return u
		}, nil)

	resp, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal(int64(7), resp.ID)
	s.Equal("maria@example.com", resp.Email)
	s.mockUsers.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreate_EmailTaken() {
	ctx := context.Background()

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(testUser(3), nil)

	_, err := s.service.Create(ctx, dto.CreateUserRequest{Name: "Maria", Email: "maria@example.com", Password: "Strongpass1"})
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *UserServiceTestSuite) TestCreate_UnknownRole() {
	ctx := context.Background()
	roleID := int64(99)

	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(nil, nil)
	s.mockRoles.On("GetByID", ctx, roleID).Return(nil, nil)

	_, err := s.service.Create(ctx, dto.CreateUserRequest{Name: "Maria", Email: "maria@example.com", Password: "Strongpass1", RoleID: &roleID})
	s.ErrorIs(err, ErrRoleNotFound)
}

func (s *UserServiceTestSuite) TestUpdate_PartialPatch() {
	ctx := context.Background()
	user := testUser(7)
	newName := "Maria Souza"

	s.mockUsers.On("GetByID", ctx, int64(7)).Return(user, nil)
	s.mockUsers.On("Update", ctx, user).Return(user, nil)

	resp, err := s.service.Update(ctx, 7, dto.UpdateUserRequest{Name: &newName})

	s.NoError(err)
	s.Equal("Maria Souza", resp.Name)
	s.Equal("maria@example.com", resp.Email, "email untouched by partial patch")
}

func (s *UserServiceTestSuite) TestUpdate_SameEmailSkipsCollisionCheck() {
	ctx := context.Background()
	user := testUser(7)
	sameEmail := "maria@example.com"

	s.mockUsers.On("GetByID", ctx, int64(7)).Return(user, nil)
	s.mockUsers.On("Update", ctx, user).Return(user, nil)

	_, err := s.service.Update(ctx, 7, dto.UpdateUserRequest{Email: &sameEmail})

	s.NoError(err)
	s.mockUsers.AssertNotCalled(s.T(), "GetByEmail", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdate_EmailCollision() {
	ctx := context.Background()
	user := testUser(7)
	newEmail := "taken@example.com"

	s.mockUsers.On("GetByID", ctx, int64(7)).Return(user, nil)
	s.mockUsers.On("GetByEmail", ctx, mock.Anything).Return(testUser(8), nil)

	_, err := s.service.Update(ctx, 7, dto.UpdateUserRequest{Email: &newEmail})
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *UserServiceTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mockUsers.On("GetByID", ctx, int64(99)).Return(nil, nil)

	s.ErrorIs(s.service.Delete(ctx, 99), ErrUserNotFound)
}

func (s *UserServiceTestSuite) TestDelete_SoftDeletes() {
	ctx := context.Background()

	s.mockUsers.On("GetByID", ctx, int64(7)).Return(testUser(7), nil)
	s.mockUsers.On("Delete", ctx, int64(7)).Return(nil)

	s.NoError(s.service.Delete(ctx, 7))
	s.mockUsers.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestList_Paginates() {
	ctx := context.Background()

	s.mockUsers.On("List", ctx, mock.MatchedBy(func(f domain.UserFilter) bool {
		return f.Limit == 10 && f.Offset == 20 && f.Search == "maria"
	})).Return([]domain.User{*testUser(1)}, int64(21), nil)

	users, paginate, err := s.service.List(ctx, dto.ListUsersQuery{Page: 3, Limit: 10, Search: "maria"})

	s.NoError(err)
	s.Len(users, 1)
	s.Equal(int64(21), paginate.Total)
	s.Equal(3, paginate.CurrentPage)
	s.Equal(3, paginate.LastPage)
	s.Nil(paginate.NextPage)
	s.NotNil(paginate.PrevPage)
}
