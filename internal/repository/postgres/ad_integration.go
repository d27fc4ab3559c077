package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sellerhub/backoffice-api/internal/domain"
)

type AdIntegrationRepository struct {
	db *gorm.DB
}

func NewAdIntegrationRepository(db *gorm.DB) *AdIntegrationRepository {
	return &AdIntegrationRepository{db: db}
}

func (r *AdIntegrationRepository) GetByUserAndProvider(ctx context.Context, userID int64, provider domain.AdProvider) (*domain.AdIntegration, error) {
	var row adIntegrationRow
	err := r.db.WithContext(ctx).
		First(&row, "user_id = ? AND provider = ?", userID, string(provider)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// Save upserts on the (user_id, provider) unique pair so a repeated OAuth
// callback replaces the stored credentials instead of failing.
func (r *AdIntegrationRepository) Save(ctx context.Context, integration *domain.AdIntegration) (*domain.AdIntegration, error) {
	row := adIntegrationRowFromDomain(integration)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"client_id", "client_secret", "access_token", "refresh_token",
			"expires_at", "status", "updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *AdIntegrationRepository) Update(ctx context.Context, integration *domain.AdIntegration) error {
	return r.db.WithContext(ctx).Save(adIntegrationRowFromDomain(integration)).Error
}

func (r *AdIntegrationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&adIntegrationRow{}, "id = ?", id).Error
}
