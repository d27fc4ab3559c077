package domain

import "time"

// Well-known role names created by the seed.
const (
	RoleAdmin  = "admin"
	RoleGestor = "gestor"
)

type Role struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRole(name string) *Role {
	now := time.Now()
	return &Role{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *Role) Rename(name string) {
	r.Name = name
	r.UpdatedAt = time.Now()
}
