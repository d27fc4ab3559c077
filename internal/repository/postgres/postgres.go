package postgres

import (
	"gorm.io/gorm"

	"github.com/sellerhub/backoffice-api/internal/repository"
)

type postgresRepository struct {
	db                *gorm.DB
	userRepo          repository.UserRepository
	productRepo       repository.ProductRepository
	roleRepo          repository.RoleRepository
	saleRepo          repository.SaleRepository
	adIntegrationRepo repository.AdIntegrationRepository
}

func NewRepository(db *gorm.DB) repository.Repository {
	return &postgresRepository{
		db:                db,
		userRepo:          NewUserRepository(db),
		productRepo:       NewProductRepository(db),
		roleRepo:          NewRoleRepository(db),
		saleRepo:          NewSaleRepository(db),
		adIntegrationRepo: NewAdIntegrationRepository(db),
	}
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Product() repository.ProductRepository {
	return r.productRepo
}

func (r *postgresRepository) Role() repository.RoleRepository {
	return r.roleRepo
}

func (r *postgresRepository) Sale() repository.SaleRepository {
	return r.saleRepo
}

func (r *postgresRepository) AdIntegration() repository.AdIntegrationRepository {
	return r.adIntegrationRepo
}

// AutoMigrate creates or updates the schema for every row model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roleRow{},
		&userRow{},
		&productRow{},
		&saleRow{},
		&adIntegrationRow{},
	)
}
