// Package seed provisions the baseline records a fresh installation needs:
// the admin and gestor roles and the default administrator account.
package seed

import (
	"context"
	"fmt"

	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/repository"
)

const adminEmail = "admin@admin.com"

// Run is idempotent, existing roles and the admin account are left alone.
func Run(ctx context.Context, repo repository.Repository, hash *auth.HashService, adminPassword string) error {
	roleIDs := make(map[string]int64, 2)
	for _, name := range []string{domain.RoleAdmin, domain.RoleGestor} {
		role, err := repo.Role().GetByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to look up role %s: %w", name, err)
		}
		if role == nil {
			role, err = repo.Role().Create(ctx, domain.NewRole(name))
			if err != nil {
				return fmt.Errorf("failed to create role %s: %w", name, err)
			}
		}
		roleIDs[name] = role.ID
	}

	email, err := domain.NewEmail(adminEmail)
	if err != nil {
		return err
	}

	existing, err := repo.User().GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	password, err := domain.NewPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("invalid admin password: %w", err)
	}
	hashed, err := hash.Hash(password.Value())
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminRoleID := roleIDs[domain.RoleAdmin]
	admin := domain.NewUser("Administrator", email, domain.PasswordFromHash(hashed), &adminRoleID)
	if _, err := repo.User().Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	return nil
}
