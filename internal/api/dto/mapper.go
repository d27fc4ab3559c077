package dto

import (
	"github.com/sellerhub/backoffice-api/internal/domain"
)

// FromUser converts a User domain model to a UserResponse DTO
func FromUser(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.Value(),
		RoleID:    user.RoleID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func FromUsers(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *FromUser(&users[i])
	}
	return responses
}

// FromProduct converts a Product domain model to a ProductResponse DTO
func FromProduct(product *domain.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:          product.ID,
		UserID:      product.UserID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Status:      string(product.Status),
		Metadata:    product.Metadata,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Price != nil {
		v := product.Price.Value()
		resp.Price = &v
	}
	if product.Currency != nil {
		c := product.Currency.Value()
		resp.Currency = &c
	}
	return resp
}

func FromProducts(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *FromProduct(&products[i])
	}
	return responses
}

// FromSale converts a Sale domain model to a SaleResponse DTO
func FromSale(sale *domain.Sale) *SaleResponse {
	return &SaleResponse{
		ID:         sale.ID,
		OrderID:    sale.OrderID,
		ProductID:  sale.ProductID,
		CustomerID: sale.CustomerID,
		Status:     string(sale.Status),
		Amount:     sale.Amount,
		CreatedAt:  sale.CreatedAt,
		UpdatedAt:  sale.UpdatedAt,
	}
}

func FromSales(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = *FromSale(&sales[i])
	}
	return responses
}

// FromAdIntegration converts an AdIntegration domain model to its DTO,
// dropping credentials.
func FromAdIntegration(integration *domain.AdIntegration) *IntegrationResponse {
	return &IntegrationResponse{
		ID:        integration.ID,
		Provider:  string(integration.Provider),
		Status:    string(integration.Status),
		ExpiresAt: integration.ExpiresAt,
		CreatedAt: integration.CreatedAt,
		UpdatedAt: integration.UpdatedAt,
	}
}
