package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sellerhub/backoffice-api/internal/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return productsToDomain(rows), nil
}

func (r *ProductRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return productsToDomain(rows), nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	row := productRowFromDomain(product)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	row := productRowFromDomain(product)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// Delete persists the entity's deleted state (status forced inactive) and
// then soft-deletes the row.
func (r *ProductRepository) Delete(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&productRow{}).Where("id = ?", product.ID).
			Update("status", string(domain.ProductStatusInactive)).Error; err != nil {
			return err
		}
		return tx.Delete(&productRow{}, "id = ?", product.ID).Error
	})
}

func productsToDomain(rows []productRow) []domain.Product {
	products := make([]domain.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].toDomain()
	}
	return products
}
