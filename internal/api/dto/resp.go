package dto

import "time"

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID        int64     `json:"id" example:"42"`
	Name      string    `json:"name" example:"Jane Seller"`
	Email     string    `json:"email" example:"jane@store.com"`
	RoleID    *int64    `json:"roleId" example:"2"`
	Role      string    `json:"role,omitempty" example:"gestor"`
	CreatedAt time.Time `json:"createdAt" example:"2025-03-20T15:30:45Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-03-20T15:30:45Z"`
}

// AuthResponse carries the token pair returned by login, register and
// refresh.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

type ProductResponse struct {
	ID          int64          `json:"id" example:"7"`
	UserID      *int64         `json:"userId" example:"42"`
	Name        string         `json:"name" example:"Sales Masterclass"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price" example:"197.90"`
	Currency    *string        `json:"currency" example:"BRL"`
	Category    *string        `json:"category" example:"course"`
	Status      string         `json:"status" example:"active"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt" example:"2025-03-20T15:30:45Z"`
	UpdatedAt   time.Time      `json:"updatedAt" example:"2025-03-20T15:30:45Z"`
}

type SaleResponse struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrderID    string    `json:"orderId" example:"a3f1c2d4-0000-0000-0000-000000000000"`
	ProductID  string    `json:"productId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status" example:"completed"`
	Amount     float64   `json:"amount" example:"197.90"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IntegrationResponse deliberately omits secrets and tokens.
type IntegrationResponse struct {
	ID        int64      `json:"id" example:"3"`
	Provider  string     `json:"provider" example:"facebook_ads"`
	Status    string     `json:"status" example:"active"`
	ExpiresAt *time.Time `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// WebhookAcceptedResponse acknowledges an accepted webhook delivery.
type WebhookAcceptedResponse struct {
	EventID string `json:"eventId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status  string `json:"status" example:"accepted"`
}

// AdAccountResponse is one Facebook ad account reachable with the user's
// integration token.
type AdAccountResponse struct {
	ID        string `json:"id" example:"act_1234567890"`
	AccountID string `json:"accountId" example:"1234567890"`
	Name      string `json:"name" example:"Main Store"`
	Status    int    `json:"status" example:"1"`
	Currency  string `json:"currency" example:"BRL"`
}
