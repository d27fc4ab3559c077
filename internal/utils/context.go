package utils

import (
	"context"
	"errors"

	"github.com/sellerhub/backoffice-api/internal/auth"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
	UserIDKey ContextKey = "user_id"
	RoleKey   ContextKey = "role"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrInvalidClaimsType = errors.New("invalid claims type")
)

func GetClaimsFromContext(c context.Context) (*auth.Claims, error) {
	value := c.Value(ClaimsKey)
	if value == nil {
		return nil, ErrNoClaimsInContext
	}

	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil, ErrInvalidClaimsType
	}
	return claims, nil
}

func GetUserIDFromContext(c context.Context) (int64, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID()
}
