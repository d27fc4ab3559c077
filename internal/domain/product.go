package domain

import (
	"strings"
	"time"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDraft    ProductStatus = "draft"
)

func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDraft:
		return ProductStatus(s), nil
	}
	return "", NewValidationError("status", "status must be one of active, inactive, draft")
}

const maxProductNameLen = 255

// Product is a sellable item. A nil UserID marks a house product that any
// authenticated user may modify.
type Product struct {
	ID          int64
	UserID      *int64
	Name        string
	Description *string
	Price       *Price
	Currency    *Currency
	Category    *string
	Status      ProductStatus
	Metadata    map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type NewProductInput struct {
	UserID      *int64
	Name        string
	Description *string
	Price       *Price
	Currency    *Currency
	Category    *string
	Status      ProductStatus
	Metadata    map[string]any
}

// NewProduct validates invariants and applies defaults: currency BRL and
// status active unless overridden.
func NewProduct(in NewProductInput) (*Product, error) {
	name, err := validateProductName(in.Name)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = ProductStatusActive
	}
	if _, err := ParseProductStatus(string(status)); err != nil {
		return nil, err
	}

	currency := in.Currency
	if currency == nil {
		brl := BRL()
		currency = &brl
	}

	now := time.Now()
	return &Product{
		UserID:      in.UserID,
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		Currency:    currency,
		Category:    in.Category,
		Status:      status,
		Metadata:    in.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ProductUpdate carries a partial patch: a nil field is left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *Price
	Currency    *Currency
	Category    *string
	Status      *ProductStatus
	Metadata    map[string]any
}

// Apply re-validates only the supplied fields and bumps UpdatedAt.
func (p *Product) Apply(u ProductUpdate) error {
	if u.Name != nil {
		name, err := validateProductName(*u.Name)
		if err != nil {
			return err
		}
		p.Name = name
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.Price != nil {
		p.Price = u.Price
	}
	if u.Currency != nil {
		p.Currency = u.Currency
	}
	if u.Category != nil {
		p.Category = u.Category
	}
	if u.Status != nil {
		status, err := ParseProductStatus(string(*u.Status))
		if err != nil {
			return err
		}
		p.Status = status
	}
	if u.Metadata != nil {
		p.Metadata = u.Metadata
	}
	p.UpdatedAt = time.Now()
	return nil
}

// MarkDeleted soft-deletes the product and forces it inactive.
func (p *Product) MarkDeleted() {
	now := time.Now()
	p.DeletedAt = &now
	p.Status = ProductStatusInactive
	p.UpdatedAt = now
}

func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive && p.DeletedAt == nil
}

func (p *Product) IsOwnedBy(userID int64) bool {
	return p.UserID != nil && *p.UserID == userID
}

// CanBeModifiedBy is the ownership rule: house products (no owner) are
// modifiable by anyone, owned products only by their owner.
func (p *Product) CanBeModifiedBy(userID int64) bool {
	return p.UserID == nil || p.IsOwnedBy(userID)
}

func validateProductName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", NewValidationError("name", "product name is required")
	}
	if len(raw) > maxProductNameLen {
		return "", NewValidationError("name", "product name must be less than 256 characters")
	}
	return name, nil
}
