package dto

// RegisterRequest creates a self-service account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Seller"`
	Email    string `json:"email" binding:"required" example:"jane@store.com"`
	Password string `json:"password" binding:"required" example:"Password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@store.com"`
	Password string `json:"password" binding:"required" example:"Password123"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// CreateUserRequest is the admin-only variant of registration and may assign
// a role up front.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Seller"`
	Email    string `json:"email" binding:"required" example:"jane@store.com"`
	Password string `json:"password" binding:"required" example:"Password123"`
	RoleID   *int64 `json:"roleId" example:"2"`
}

// UpdateUserRequest is a partial patch: absent fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	RoleID   *int64  `json:"roleId"`
}

// ListUsersQuery binds the admin listing query string.
type ListUsersQuery struct {
	Page   int    `form:"page" example:"1"`
	Limit  int    `form:"limit" example:"10"`
	Search string `form:"search" example:"jane"`
	RoleID *int64 `form:"roleId"`
}

type CreateProductRequest struct {
	Name        string         `json:"name" binding:"required" example:"Sales Masterclass"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price" example:"197.90"`
	Currency    *string        `json:"currency" example:"BRL"`
	Category    *string        `json:"category" example:"course"`
	Status      *string        `json:"status" example:"active"`
	Metadata    map[string]any `json:"metadata"`
}

type UpdateProductRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Price       *float64       `json:"price"`
	Currency    *string        `json:"currency"`
	Category    *string        `json:"category"`
	Status      *string        `json:"status"`
	Metadata    map[string]any `json:"metadata"`
}

// ListSalesQuery binds the sales listing query string. Dates accept
// RFC3339 or YYYY-MM-DD.
type ListSalesQuery struct {
	Page      int    `form:"page" example:"1"`
	Limit     int    `form:"limit" example:"10"`
	Status    string `form:"status" example:"completed"`
	ProductID string `form:"productId"`
	StartDate string `form:"startDate" example:"2024-01-01"`
	EndDate   string `form:"endDate" example:"2024-01-31"`
}
