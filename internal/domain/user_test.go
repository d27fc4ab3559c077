package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := NewEmail("user@example.com")
	require.NoError(t, err)
	return NewUser("User", email, PasswordFromHash("$2a$10$hash"), nil)
}

func TestUserSoftDeleteAndRestore(t *testing.T) {
	u := newTestUser(t)
	assert.False(t, u.IsDeleted())

	u.SoftDelete()
	assert.True(t, u.IsDeleted())
	require.NotNil(t, u.DeletedAt)

	u.Restore()
	assert.False(t, u.IsDeleted())
	assert.Nil(t, u.DeletedAt)
}

func TestUserRoleAssignment(t *testing.T) {
	u := newTestUser(t)
	assert.Nil(t, u.RoleID)

	u.AssignRole(3)
	require.NotNil(t, u.RoleID)
	assert.Equal(t, int64(3), *u.RoleID)

	u.RemoveRole()
	assert.Nil(t, u.RoleID)
}

func TestUserMutatorsBumpUpdatedAt(t *testing.T) {
	u := newTestUser(t)
	before := u.UpdatedAt
	time.Sleep(time.Millisecond)

	u.Rename("New Name")
	assert.True(t, u.UpdatedAt.After(before))
	assert.Equal(t, "New Name", u.Name)

	before = u.UpdatedAt
	time.Sleep(time.Millisecond)
	email, err := NewEmail("new@example.com")
	require.NoError(t, err)
	u.ChangeEmail(email)
	assert.True(t, u.UpdatedAt.After(before))
}
