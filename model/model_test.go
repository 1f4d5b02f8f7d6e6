package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoles(t *testing.T) {
	for _, role := range []string{RoleUser, RoleStudent} {
		u := &User{Role: role}
		assert.True(t, u.IsStudent(), role)
		assert.False(t, u.IsAdmin(), role)
	}
	admin := &User{Role: RoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsStudent())

	assert.True(t, ValidRole("student"))
	assert.False(t, ValidRole("Admin"))
	assert.False(t, ValidRole(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@sekolah.id", NormalizeEmail("  Ana@Sekolah.ID "))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusAccepted))
	assert.False(t, ValidStatus("diterima"))
}

func TestSession(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.IsAdmin())

	s := NewSession(&User{ID: "u1", Email: "a@b.com", FullName: "Ana", Role: RoleAdmin})
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "u1", s.UserID)
}
