package service

import "errors"

var (
	// Auth errors. ErrInvalidCredentials deliberately covers both unknown
	// email and wrong password so responses don't leak which accounts exist.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDeactivated  = errors.New("account is deactivated")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRoleNotFound       = errors.New("role not found")

	// Product errors
	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("operation not allowed for this user")

	// Webhook errors
	ErrUnsupportedWebhookSource = errors.New("unsupported webhook source")
	ErrInvalidSignature         = errors.New("invalid webhook signature")
	ErrDuplicateWebhookEvent    = errors.New("webhook event already processed")

	// Integration errors
	ErrIntegrationNotFound = errors.New("integration not found")
	ErrIntegrationExpired  = errors.New("integration token expired, reconnect the account")
	ErrInvalidOAuthState   = errors.New("invalid or expired oauth state")

	// Sale errors
	ErrSaleNotFound = errors.New("sale not found")
)
