package repository

import (
	"context"

	"github.com/sellerhub/backoffice-api/internal/domain"
)

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
	// GetByEmailIncludingDeleted also matches soft-deleted accounts; login
	// uses it to tell a deactivated account apart from an unknown one.
	GetByEmailIncludingDeleted(ctx context.Context, email domain.Email) (*domain.User, error)
	// List applies the filter and returns the matching page plus the total
	// count of non-deleted users matching it.
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete soft-deletes; deleted rows are excluded from every query.
	Delete(ctx context.Context, id int64) error
}

//go:generate mockery --name ProductRepository --output ../mocks
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, product *domain.Product) error
}

//go:generate mockery --name RoleRepository --output ../mocks
type RoleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	List(ctx context.Context) ([]domain.Role, error)
}

//go:generate mockery --name SaleRepository --output ../mocks
type SaleRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) error
	// List applies the filter and returns the matching page plus the total
	// count of sales matching it.
	List(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, int64, error)
}

//go:generate mockery --name AdIntegrationRepository --output ../mocks
type AdIntegrationRepository interface {
	GetByUserAndProvider(ctx context.Context, userID int64, provider domain.AdProvider) (*domain.AdIntegration, error)
	Save(ctx context.Context, integration *domain.AdIntegration) (*domain.AdIntegration, error)
	Update(ctx context.Context, integration *domain.AdIntegration) error
	Delete(ctx context.Context, id int64) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	User() UserRepository
	Product() ProductRepository
	Role() RoleRepository
	Sale() SaleRepository
	AdIntegration() AdIntegrationRepository
}
