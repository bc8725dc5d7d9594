package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesHasAdmin(t *testing.T) {
	// Role names arrive from the backend in whatever case it uses;
	// the check must not care.
	for _, name := range []string{"ADMIN", "admin", "Admin"} {
		roles := Roles{{Name: RoleName(name)}}
		assert.True(t, roles.HasAdmin(), "case %q", name)
	}

	assert.False(t, Roles{{Name: "USER"}, {Name: "SELLER"}}.HasAdmin())
	assert.False(t, Roles(nil).HasAdmin())
	assert.False(t, Roles{{Name: "ADMINISTRATOR"}}.HasAdmin())
}

func TestUserProfileIsAdmin(t *testing.T) {
	var nobody *UserProfile
	assert.False(t, nobody.IsAdmin())

	admin := &UserProfile{Roles: Roles{{Name: RoleUser}, {Name: RoleAdmin}}}
	assert.True(t, admin.IsAdmin())

	buyer := &UserProfile{Roles: Roles{{Name: RoleUser}}}
	assert.False(t, buyer.IsAdmin())
}
