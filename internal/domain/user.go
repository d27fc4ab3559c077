package domain

import "time"

// User is a back-office account. Password always holds a hash once the user
// has been persisted. Entity methods never perform I/O.
type User struct {
	ID        int64
	Name      string
	Email     Email
	Password  Password
	RoleID    *int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewUser builds a not-yet-persisted user; the repository assigns the real
// id on save.
func NewUser(name string, email Email, password Password, roleID *int64) *User {
	now := time.Now()
	return &User{
		Name:      name,
		Email:     email,
		Password:  password,
		RoleID:    roleID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) Rename(name string) {
	u.Name = name
	u.touch()
}

func (u *User) ChangeEmail(email Email) {
	u.Email = email
	u.touch()
}

func (u *User) ChangePassword(password Password) {
	u.Password = password
	u.touch()
}

func (u *User) AssignRole(roleID int64) {
	u.RoleID = &roleID
	u.touch()
}

func (u *User) RemoveRole() {
	u.RoleID = nil
	u.touch()
}

func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
	u.touch()
}

func (u *User) Restore() {
	u.DeletedAt = nil
	u.touch()
}

func (u *User) touch() {
	u.UpdatedAt = time.Now()
}

// UserFilter narrows admin user listings. Search matches name or email.
type UserFilter struct {
	Search string
	RoleID *int64
	Limit  int
	Offset int
}
