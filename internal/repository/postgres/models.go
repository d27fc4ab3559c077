package postgres

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/sellerhub/backoffice-api/internal/domain"
)

// Row models own the persistence mapping. Soft delete is centralized here:
// gorm.DeletedAt makes every query filter deleted rows by default.

type userRow struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	Name         string         `gorm:"type:text;not null"`
	Email        string         `gorm:"type:text;not null;index"`
	PasswordHash string         `gorm:"type:text;not null"`
	RoleID       *int64         `gorm:"index"`
	CreatedAt    time.Time      `gorm:"type:timestamp with time zone"`
	UpdatedAt    time.Time      `gorm:"type:timestamp with time zone"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (userRow) TableName() string {
	return "users"
}

type productRow struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      *int64          `gorm:"index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description *string         `gorm:"type:text"`
	Price       *float64        `gorm:"type:numeric(12,2)"`
	Currency    *string         `gorm:"type:varchar(3)"`
	Category    *string         `gorm:"type:text"`
	Status      string          `gorm:"type:text;not null;default:'active'"`
	Metadata    json.RawMessage `gorm:"type:jsonb"`
	CreatedAt   time.Time       `gorm:"type:timestamp with time zone"`
	UpdatedAt   time.Time       `gorm:"type:timestamp with time zone"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

func (productRow) TableName() string {
	return "products"
}

type roleRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone"`
}

func (roleRow) TableName() string {
	return "roles"
}

type saleRow struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	OrderID    string    `gorm:"type:text;not null;uniqueIndex"`
	ProductID  string    `gorm:"type:text"`
	CustomerID string    `gorm:"type:text"`
	Status     string    `gorm:"type:text;not null"`
	Amount     float64   `gorm:"type:numeric(12,2)"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone"`
}

func (saleRow) TableName() string {
	return "sales"
}

type adIntegrationRow struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	UserID       int64      `gorm:"not null;uniqueIndex:idx_ad_integrations_user_provider"`
	Provider     string     `gorm:"type:text;not null;uniqueIndex:idx_ad_integrations_user_provider"`
	ClientID     string     `gorm:"type:text"`
	ClientSecret string     `gorm:"type:text"`
	AccessToken  string     `gorm:"type:text"`
	RefreshToken string     `gorm:"type:text"`
	ExpiresAt    *time.Time `gorm:"type:timestamp with time zone"`
	Status       string     `gorm:"type:text;not null;default:'active'"`
	CreatedAt    time.Time  `gorm:"type:timestamp with time zone"`
	UpdatedAt    time.Time  `gorm:"type:timestamp with time zone"`
}

func (adIntegrationRow) TableName() string {
	return "ad_integrations"
}

func userRowFromDomain(u *domain.User) *userRow {
	row := &userRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email.Value(),
		PasswordHash: u.Password.Value(),
		RoleID:       u.RoleID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.DeletedAt != nil {
		row.DeletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	}
	return row
}

func (r *userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     domain.RestoreEmail(r.Email),
		Password:  domain.PasswordFromHash(r.PasswordHash),
		RoleID:    r.RoleID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}

func productRowFromDomain(p *domain.Product) *productRow {
	row := &productRow{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Price != nil {
		v := p.Price.Value()
		row.Price = &v
	}
	if p.Currency != nil {
		c := p.Currency.Value()
		row.Currency = &c
	}
	if p.Metadata != nil {
		if raw, err := json.Marshal(p.Metadata); err == nil {
			row.Metadata = raw
		}
	}
	if p.DeletedAt != nil {
		row.DeletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	}
	return row
}

func (r *productRow) toDomain() *domain.Product {
	p := &domain.Product{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Status:      domain.ProductStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Price != nil {
		price := domain.RestorePrice(*r.Price)
		p.Price = &price
	}
	if r.Currency != nil {
		currency := domain.RestoreCurrency(*r.Currency)
		p.Currency = &currency
	}
	if len(r.Metadata) > 0 {
		var metadata map[string]any
		if err := json.Unmarshal(r.Metadata, &metadata); err == nil {
			p.Metadata = metadata
		}
	}
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		p.DeletedAt = &t
	}
	return p
}

func roleRowFromDomain(role *domain.Role) *roleRow {
	return &roleRow{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}

func (r *roleRow) toDomain() *domain.Role {
	return &domain.Role{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func saleRowFromDomain(s *domain.Sale) *saleRow {
	return &saleRow{
		ID:         s.ID,
		OrderID:    s.OrderID,
		ProductID:  s.ProductID,
		CustomerID: s.CustomerID,
		Status:     string(s.Status),
		Amount:     s.Amount,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (r *saleRow) toDomain() *domain.Sale {
	return &domain.Sale{
		ID:         r.ID,
		OrderID:    r.OrderID,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		Status:     domain.SaleStatus(r.Status),
		Amount:     r.Amount,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func adIntegrationRowFromDomain(i *domain.AdIntegration) *adIntegrationRow {
	return &adIntegrationRow{
		ID:           i.ID,
		UserID:       i.UserID,
		Provider:     string(i.Provider),
		ClientID:     i.ClientID,
		ClientSecret: i.ClientSecret,
		AccessToken:  i.AccessToken,
		RefreshToken: i.RefreshToken,
		ExpiresAt:    i.ExpiresAt,
		Status:       string(i.Status),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func (r *adIntegrationRow) toDomain() *domain.AdIntegration {
	return &domain.AdIntegration{
		ID:           r.ID,
		UserID:       r.UserID,
		Provider:     domain.AdProvider(r.Provider),
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
		Status:       domain.IntegrationStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
