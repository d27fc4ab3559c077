package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sellerhub/backoffice-api/internal/domain"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Sale, error) {
	var row saleRow
	if err := r.db.WithContext(ctx).First(&row, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	row := saleRowFromDomain(sale)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *SaleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	return r.db.WithContext(ctx).Save(saleRowFromDomain(sale)).Error
}

func (r *SaleRepository) List(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, int64, error) {
	query := r.db.WithContext(ctx).Model(&saleRow{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []saleRow
	if err := query.Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	sales := make([]domain.Sale, len(rows))
	for i := range rows {
		sales[i] = *rows[i].toDomain()
	}
	return sales, total, nil
}
